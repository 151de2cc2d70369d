package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userdash/pkg/config"
)

type defaultsConfig struct {
	Addr    string `env:"USERDASH_TEST_ADDR" envDefault:":8080"`
	Workers int    `env:"USERDASH_TEST_WORKERS" envDefault:"4"`
}

type requiredConfig struct {
	URL string `env:"USERDASH_TEST_REQUIRED_URL,required"`
}

type cachedConfig struct {
	Value string `env:"USERDASH_TEST_CACHED" envDefault:"first"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoadRequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("USERDASH_TEST_REQUIRED_URL", "redis://localhost:6379")
	require.NoError(t, config.Load(&cfg), "failed loads must not be cached")
	assert.Equal(t, "redis://localhost:6379", cfg.URL)
}

func TestLoadCaches(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("USERDASH_TEST_CACHED", "second")
	var again cachedConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Value)

	config.Reset()
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "second", again.Value)
}

func TestLoadNil(t *testing.T) {
	assert.ErrorIs(t, config.Load[defaultsConfig](nil), config.ErrNilPointer)
	assert.Panics(t, func() { config.MustLoad[defaultsConfig](nil) })
}
