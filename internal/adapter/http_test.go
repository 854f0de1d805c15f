// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diffsync/internal/config"
	"github.com/MKhiriev/go-diffsync/internal/diffsync"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/patch"
	"github.com/MKhiriev/go-diffsync/internal/utils"
	"github.com/MKhiriev/go-diffsync/models"
)

const testHashKey = "testhashkey"

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL, hashKey string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second, BasePath: "/api/sync"}
	appCfg := config.ClientApp{HashKey: hashKey}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	for _, addr := range []string{"", "   ", "http://"} {
		_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: addr}, config.ClientApp{}, logger.Nop())
		assert.Error(t, err, "address %q", addr)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{raw: " https://sync.example.com ", want: "https://sync.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── RegisterNode ────────────────────────────────────────────────────────────

func TestRegisterNode_Success(t *testing.T) {
	token, err := utils.GenerateJWTToken("go-diffsync", "node-1", time.Hour, "secret")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/nodes", r.URL.Path)

		w.Header().Set("Authorization", "Bearer "+token.SignedString)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Node{NodeID: "node-1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.RegisterNode(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "node-1", got.NodeID)
	assert.Equal(t, token.SignedString, got.Token)
	assert.Equal(t, token.SignedString, a.Token())
}

func TestRegisterNode_NodeIDFromToken(t *testing.T) {
	token, err := utils.GenerateJWTToken("go-diffsync", "node-2", time.Hour, "secret")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer "+token.SignedString)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.RegisterNode(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "node-2", got.NodeID)
}

func TestRegisterNode_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.RegisterNode(context.Background())

	assert.ErrorIs(t, err, ErrMissingToken)
	assert.Empty(t, a.Token())
}

func TestRegisterNode_ServerErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "bad request", status: http.StatusBadRequest, want: ErrBadRequest},
		{name: "forbidden", status: http.StatusForbidden, want: ErrForbidden},
		{name: "conflict", status: http.StatusConflict, want: ErrConflict},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				utils.WriteError(w, "nope", tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, "")
			_, err := a.RegisterNode(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

// ── Sync ─────────────────────────────────────────────────────────────────────

func TestSync_Success(t *testing.T) {
	sent := []diffsync.VersionedPatch{
		{Patch: patch.Patch{patch.Add{Path: "/0", Value: models.Todo{Description: "milk"}}}, ServerVersion: 0, ClientVersion: 0},
		{Patch: patch.Patch{}, ServerVersion: 0, ClientVersion: 1},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/sync/todos", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var got []diffsync.VersionedPatch
		require.NoError(t, json.Unmarshal(body, &got))
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[1].ClientVersion)
		assert.Equal(t, 1, got[0].Patch.Size())

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"patch":[{"op":"replace","path":"/0/id","value":7}],"serverVersion":0,"clientVersion":2}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	a.SetToken("tok")

	got, err := a.Sync(context.Background(), "todos", sent)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ClientVersion)
	assert.Equal(t, int64(0), got.ServerVersion)
	require.Equal(t, 1, got.Patch.Size())
	assert.Equal(t, patch.OpReplace, got.Patch[0].Op())
}

func TestSync_NilEnvelopesSendEmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `[]`, string(body))
		_, _ = w.Write([]byte(`{"patch":[],"serverVersion":0,"clientVersion":0}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Sync(context.Background(), "todos", nil)
	require.NoError(t, err)
}

func TestSync_SignsBody(t *testing.T) {
	hasher := utils.NewHasher(testHashKey)
	response := []byte(`{"patch":[],"serverVersion":1,"clientVersion":1}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.True(t, hasher.Verify(body, r.Header.Get(utils.HashHeader)))

		w.Header().Set(utils.HashHeader, hasher.Sign(response))
		_, _ = w.Write(response)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testHashKey)
	got, err := a.Sync(context.Background(), "todos", []diffsync.VersionedPatch{{Patch: patch.Patch{}}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ServerVersion)
}

func TestSync_RejectsBadResponseHash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(utils.HashHeader, "deadbeef")
		_, _ = w.Write([]byte(`{"patch":[],"serverVersion":1,"clientVersion":1}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testHashKey)
	_, err := a.Sync(context.Background(), "todos", nil)
	assert.ErrorIs(t, err, ErrInvalidResponseHash)
}

func TestSync_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "conflict", status: http.StatusConflict, want: ErrConflict},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "unknown resource", status: http.StatusNotFound, want: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, "")
			_, err := a.Sync(context.Background(), "todos", nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSync_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Sync(context.Background(), "todos", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestSync_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"patch":[{"op":"explode","path":"/0"}]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Sync(context.Background(), "todos", nil)
	assert.ErrorIs(t, err, patch.ErrUnknownOperation)
}

// ── Fetch ────────────────────────────────────────────────────────────────────

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sync/todos", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"description":"A","complete":true}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	a.SetToken("tok")

	var got []models.Todo
	require.NoError(t, a.Fetch(context.Background(), "todos", &got))
	assert.Equal(t, []models.Todo{{ID: 1, Description: "A", Complete: true}}, got)
}

func TestFetch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{
			name:    "unknown resource",
			handler: func(w http.ResponseWriter, r *http.Request) { utils.WriteError(w, "unknown resource", http.StatusNotFound) },
			want:    ErrNotFound,
		},
		{
			name:    "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusUnauthorized) },
			want:    ErrUnauthorized,
		},
		{
			name: "bad hash",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set(utils.HashHeader, "deadbeef")
				_, _ = w.Write([]byte(`[]`))
			},
			want: ErrInvalidResponseHash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, testHashKey)
			var got []models.Todo
			assert.ErrorIs(t, a.Fetch(context.Background(), "todos", &got), tt.want)
		})
	}
}

// ── GetServerVersion ─────────────────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		_, _ = w.Write([]byte("v1.2.3\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.GetServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", got)
}
