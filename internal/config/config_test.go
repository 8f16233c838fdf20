package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	// The reminder window must cover at least one full beat interval or
	// events slip between runs.
	assert.GreaterOrEqual(t, cfg.RemindWindow, cfg.RemindInterval)
	assert.Equal(t, 2*time.Hour, cfg.ExpireAfter)
	assert.Equal(t, uint32(10), cfg.GatewayMaxInFlight)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("REMIND_WINDOW", "10m")
	t.Setenv("CONSUMER_NAME", "worker-7")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, cfg.RemindWindow)
	assert.Equal(t, "worker-7", cfg.ConsumerName)
}
