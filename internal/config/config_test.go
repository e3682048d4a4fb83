package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("USE_MEMORY_STORE", "true")
	t.Setenv("PORT", "")
	t.Setenv("GRAPH_API_VERSION", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DEDUP_CAPACITY", "")
	t.Setenv("GRAPH_API_TOKEN", "")
	t.Setenv("PHONE_NUMBER_ID", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "v20.0", cfg.GraphAPIVersion)
	assert.Equal(t, 10000, cfg.DedupCapacity)
	assert.False(t, cfg.SenderConfigured())
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("USE_MEMORY_STORE", "")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestSenderConfigured(t *testing.T) {
	t.Setenv("USE_MEMORY_STORE", "true")
	t.Setenv("GRAPH_API_TOKEN", "tok")
	t.Setenv("PHONE_NUMBER_ID", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.SenderConfigured())
}

func TestLoadRejectsBadDedupCapacity(t *testing.T) {
	t.Setenv("USE_MEMORY_STORE", "true")

	t.Setenv("DEDUP_CAPACITY", "10x")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEDUP_CAPACITY")

	t.Setenv("DEDUP_CAPACITY", "250")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.DedupCapacity)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("USE_MEMORY_STORE", "true")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}
