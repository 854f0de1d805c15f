package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diffsync/internal/config"
	"github.com/MKhiriev/go-diffsync/internal/logger"
)

func TestNewHandlers(t *testing.T) {
	var cfg config.StructuredConfig
	cfg.Server.HTTPAddress = ":8080"
	cfg.Server.BasePath = "/api/sync"

	// services are only stored at construction time
	h, err := NewHandlers(nil, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(nil, config.StructuredConfig{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	var cfg config.StructuredConfig
	cfg.Server.HTTPAddress = ":8080"

	h1, err1 := NewHandlers(nil, cfg, logger.Nop())
	h2, err2 := NewHandlers(nil, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
