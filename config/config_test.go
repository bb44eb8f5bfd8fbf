package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patterns/config"
)

func TestLoadFrom_Defaults(t *testing.T) {
	c, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 5, c.FlyweightWorkers)
	assert.Equal(t, 60*time.Second, c.FlyweightTimeout)
	assert.Equal(t, uint(3), c.ProxyLoadAttempts)
	assert.Empty(t, c.IteratorFile)
}

func TestLoadFrom_Overrides(t *testing.T) {
	c, err := config.LoadFrom(map[string]string{
		"PATTERNS_LOG_LEVEL":           "debug",
		"PATTERNS_FLYWEIGHT_WORKERS":   "2",
		"PATTERNS_FLYWEIGHT_TIMEOUT":   "250ms",
		"PATTERNS_PROXY_LOAD_ATTEMPTS": "7",
		"PATTERNS_ITERATOR_FILE":       "/tmp/access.log",
	})
	require.NoError(t, err)

	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 2, c.FlyweightWorkers)
	assert.Equal(t, 250*time.Millisecond, c.FlyweightTimeout)
	assert.Equal(t, uint(7), c.ProxyLoadAttempts)
	assert.Equal(t, "/tmp/access.log", c.IteratorFile)
}

func TestLoadFrom_Invalid(t *testing.T) {
	for name, vars := range map[string]map[string]string{
		"zero workers":  {"PATTERNS_FLYWEIGHT_WORKERS": "0"},
		"zero timeout":  {"PATTERNS_FLYWEIGHT_TIMEOUT": "0s"},
		"zero attempts": {"PATTERNS_PROXY_LOAD_ATTEMPTS": "0"},
	} {
		_, err := config.LoadFrom(vars)
		assert.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}

	_, err := config.LoadFrom(map[string]string{"PATTERNS_FLYWEIGHT_WORKERS": "many"})
	assert.Error(t, err)
}
