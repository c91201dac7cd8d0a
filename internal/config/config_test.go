package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.APIURL)
	assert.Equal(t, "ar", cfg.Lang)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Empty(t, cfg.LogFile)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SOUQ_API_URL", "https://souq.example.com")
	t.Setenv("SOUQ_LANG", "fr")
	t.Setenv("SOUQ_HTTP_TIMEOUT", "5s")
	t.Setenv("SOUQ_LOG_FILE", "/tmp/souq_test.log")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://souq.example.com", cfg.APIURL)
	assert.Equal(t, "fr", cfg.Lang)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "/tmp/souq_test.log", cfg.LogFile)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("SOUQ_HTTP_TIMEOUT", "not-a-duration")

	_, err := Load()
	assert.Error(t, err)
}
