package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-diffsync/internal/config"
	"github.com/MKhiriev/go-diffsync/internal/diffsync"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/utils"
	"github.com/MKhiriev/go-diffsync/models"
)

const (
	nodesPath   = "/api/nodes"
	versionPath = "/api/version/"
)

type httpServerAdapter struct {
	client   *utils.HTTPClient
	hasher   *utils.Hasher
	basePath string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It normalises adapterCfg.HTTPAddress into a base URL and signs request
// bodies with appCfg.HashKey when one is set.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher:   utils.NewHasher(appCfg.HashKey),
		basePath: strings.TrimRight(adapterCfg.BasePath, "/"),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// RegisterNode implements [ServerAdapter]. It POSTs to /api/nodes and takes
// the token from the Authorization response header.
func (h *httpServerAdapter) RegisterNode(ctx context.Context) (models.Credentials, error) {
	var node models.Node

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&node).
		Post(nodesPath)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("register node request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credentials{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrMissingToken, err)
	}

	if node.NodeID == "" {
		if node.NodeID, err = utils.ParseNodeIDFromJWT(token); err != nil {
			return models.Credentials{}, fmt.Errorf("register node parse token: %w", err)
		}
	}

	h.SetToken(token)
	h.logger.Info().Str("node_id", node.NodeID).Msg("node registered")

	return models.Credentials{NodeID: node.NodeID, Token: token}, nil
}

// Sync implements [ServerAdapter]. The envelopes go out as one JSON array in
// a PATCH to {base}/{resource}; the response is a single envelope.
func (h *httpServerAdapter) Sync(ctx context.Context, resource string, envelopes []diffsync.VersionedPatch) (diffsync.VersionedPatch, error) {
	if envelopes == nil {
		envelopes = []diffsync.VersionedPatch{}
	}

	body, err := json.Marshal(envelopes)
	if err != nil {
		return diffsync.VersionedPatch{}, fmt.Errorf("encode sync request: %w", err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.hasher != nil {
		req.SetHeader(utils.HashHeader, h.hasher.Sign(body))
	}

	resp, err := req.Patch(h.resourcePath(resource))
	if err != nil {
		return diffsync.VersionedPatch{}, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return diffsync.VersionedPatch{}, err
	}
	if err = h.verify(resp); err != nil {
		return diffsync.VersionedPatch{}, err
	}

	var out diffsync.VersionedPatch
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return diffsync.VersionedPatch{}, fmt.Errorf("decode sync response: %w", err)
	}

	h.logger.Debug().
		Str("resource", resource).
		Int("sent", len(envelopes)).
		Int("received_ops", out.Patch.Size()).
		Msg("sync exchange done")

	return out, nil
}

// Fetch implements [ServerAdapter]. It GETs {base}/{resource} and decodes the
// JSON body into out.
func (h *httpServerAdapter) Fetch(ctx context.Context, resource string, out any) error {
	resp, err := h.authedRequest(ctx).Get(h.resourcePath(resource))
	if err != nil {
		return fmt.Errorf("fetch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = h.verify(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode fetch response: %w", err)
	}

	return nil
}

// GetServerVersion implements [ServerAdapter].
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// verify checks the response signature when both sides hash bodies.
func (h *httpServerAdapter) verify(resp *resty.Response) error {
	signature := resp.Header().Get(utils.HashHeader)
	if h.hasher == nil || signature == "" {
		return nil
	}
	if !h.hasher.Verify(resp.Body(), signature) {
		return ErrInvalidResponseHash
	}

	return nil
}

func (h *httpServerAdapter) resourcePath(resource string) string {
	return h.basePath + "/" + url.PathEscape(resource)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
