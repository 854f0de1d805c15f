package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server")

	l.Info().Msg("hello")

	entry := decode(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	// caller is rendered as the function name
	assert.Contains(t, entry["func"], "TestNewLogger_Fields")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("test"))
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger_IsIndependent(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "server")

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("extra", "x").Logger()

	parent.Info().Msg("parent")
	entry := decode(t, &buf)
	assert.NotContains(t, entry, "extra")
	assert.Equal(t, "server", entry["role"])
}

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server").WithTraceID("abc")

	l.Debug().Msg("traced")
	assert.Equal(t, "abc", decode(t, &buf)["trace_id"])
}

func TestFromContext(t *testing.T) {
	t.Run("empty context", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})

	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		l := newLogger(&buf, "ctx")
		ctx := l.WithContext(context.Background())

		FromContext(ctx).Info().Msg("from ctx")
		assert.Equal(t, "ctx", decode(t, &buf)["role"])
	})
}

func TestAttach(t *testing.T) {
	t.Run("empty context takes the fallback", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := newLogger(&buf, "fallback").Attach(context.Background())

		FromContext(ctx).Info().Msg("attached")
		assert.Equal(t, "fallback", decode(t, &buf)["role"])
	})

	t.Run("request logger wins", func(t *testing.T) {
		var reqBuf, fallbackBuf bytes.Buffer
		ctx := newLogger(&reqBuf, "request").WithTraceID("req-2").WithContext(context.Background())
		ctx = newLogger(&fallbackBuf, "fallback").Attach(ctx)

		FromContext(ctx).Info().Msg("attached")
		assert.Equal(t, "req-2", decode(t, &reqBuf)["trace_id"])
		assert.Zero(t, fallbackBuf.Len())
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "request").WithTraceID("req-1")

	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")
	entry := decode(t, &buf)
	assert.Equal(t, "request", entry["role"])
	assert.Equal(t, "req-1", entry["trace_id"])
}

func TestClientLogPath(t *testing.T) {
	assert.Contains(t, ClientLogPath(), "logs")
}
