// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-diffsync/internal/diffsync"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/patch"
	"github.com/MKhiriev/go-diffsync/internal/utils"
)

const (
	contentTypeJSON      = "application/json"
	contentTypeJSONPatch = "application/json-patch+json"
)

func (h *Handler) fetchResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	nodeID, ok := utils.GetNodeIDFromContext(ctx)
	if !ok {
		writeError(w, log, ErrNoNodeInContext, "fetch rejected")
		return
	}

	resource := chi.URLParam(r, "resource")
	items, err := h.services.SyncService.Fetch(ctx, nodeID, resource)
	if err != nil {
		writeError(w, log, err, "error fetching resource")
		return
	}

	_, _ = utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) syncResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	nodeID, ok := utils.GetNodeIDFromContext(ctx)
	if !ok {
		writeError(w, log, ErrNoNodeInContext, "sync rejected")
		return
	}

	patches, err := decodePatches(r)
	if err != nil {
		writeError(w, log, err, "error decoding patches")
		return
	}

	resource := chi.URLParam(r, "resource")
	response, err := h.services.SyncService.SyncList(ctx, nodeID, resource, patches)
	if err != nil {
		writeError(w, log, err, "error synchronizing resource")
		return
	}

	log.Debug().
		Str("resource", resource).
		Int("patches", len(patches)).
		Int("response_ops", response.Patch.Size()).
		Msg("resource synchronized")

	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) syncEntity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	nodeID, ok := utils.GetNodeIDFromContext(ctx)
	if !ok {
		writeError(w, log, ErrNoNodeInContext, "sync rejected")
		return
	}

	patches, err := decodePatches(r)
	if err != nil {
		writeError(w, log, err, "error decoding patches")
		return
	}

	resource, id := chi.URLParam(r, "resource"), chi.URLParam(r, "id")
	response, err := h.services.SyncService.SyncOne(ctx, nodeID, resource, id, patches)
	if err != nil {
		writeError(w, log, err, "error synchronizing entity")
		return
	}

	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}

// decodePatches reads the patches of a sync request. A JSON Patch document
// is one unversioned patch; a JSON body carries one envelope or an array of
// them.
func decodePatches(r *http.Request) ([]diffsync.Patch, error) {
	mediaType := contentTypeJSON
	if header := r.Header.Get("Content-Type"); header != "" {
		parsed, _, err := mime.ParseMediaType(header)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, header)
		}
		mediaType = parsed
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	switch mediaType {
	case contentTypeJSONPatch:
		var ops patch.Patch
		if err = json.Unmarshal(body, &ops); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
		}
		return []diffsync.Patch{diffsync.PlainPatch(ops)}, nil

	case contentTypeJSON:
		envelopes, err := decodeEnvelopes(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
		}

		patches := make([]diffsync.Patch, 0, len(envelopes))
		for _, envelope := range envelopes {
			patches = append(patches, envelope)
		}
		return patches, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, mediaType)
}

func decodeEnvelopes(body []byte) ([]diffsync.VersionedPatch, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '{' {
		var envelope diffsync.VersionedPatch
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, err
		}
		return []diffsync.VersionedPatch{envelope}, nil
	}

	var envelopes []diffsync.VersionedPatch
	if err := json.Unmarshal(trimmed, &envelopes); err != nil {
		return nil, err
	}
	return envelopes, nil
}
