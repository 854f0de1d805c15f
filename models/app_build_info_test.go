package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo(" 1.4.0 ", "2026-10-01", "")

	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.True(t, info.HasVersion())
	assert.Equal(t, "1.4.0 (N/A, 2026-10-01)", info.String())
}

func TestAppBuildInfo_NotInjected(t *testing.T) {
	for _, version := range []string{"", "N/A", "  "} {
		assert.False(t, NewAppBuildInfo(version, "", "").HasVersion(), version)
	}
}
