package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://api.realworld.io/api", c.APIBaseURL)
	assert.Equal(t, ".conduit", c.DataDir)
	assert.Equal(t, time.Duration(0), c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "https://api.realworld.io/api", cfg.APIBaseURL)
	assert.Equal(t, ".conduit", cfg.DataDir)
}
