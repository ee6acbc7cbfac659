package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramscheck/pkg/config"
)

type depthConfig struct {
	MaxDepth      int  `env:"TEST_PARAMSCHECK_MAX_DEPTH" envDefault:"32"`
	LogRejections bool `env:"TEST_PARAMSCHECK_LOG_REJECTIONS" envDefault:"false"`
}

type defaultsConfig struct {
	Lang    string `env:"TEST_DEFAULT_LANG" envDefault:"en"`
	MaxSize int64  `env:"TEST_MAX_SIZE" envDefault:"1048576"`
}

type cachedConfig struct {
	Value string `env:"TEST_CACHED_VALUE" envDefault:"default"`
}

type resetConfig struct {
	Value string `env:"TEST_RESET_VALUE"`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

type badIntConfig struct {
	N int `env:"TEST_BAD_INT"`
}

type fileConfig struct {
	Value string `env:"TEST_FILE_VALUE"`
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_PARAMSCHECK_MAX_DEPTH", "8")
	t.Setenv("TEST_PARAMSCHECK_LOG_REJECTIONS", "true")

	var cfg depthConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 8, cfg.MaxDepth)
	assert.True(t, cfg.LogRejections)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_DEFAULT_LANG")
	os.Unsetenv("TEST_MAX_SIZE")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, int64(1048576), cfg.MaxSize)
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("TEST_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestReset(t *testing.T) {
	t.Setenv("TEST_RESET_VALUE", "first")

	var cfg resetConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Value)

	t.Setenv("TEST_RESET_VALUE", "second")
	config.Reset()

	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "second", cfg.Value)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing required value", func(t *testing.T) {
		os.Unsetenv("TEST_REQUIRED_VALUE")
		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("TEST_BAD_INT", "many")
		var cfg badIntConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *depthConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("not a struct", func(t *testing.T) {
		var n int
		assert.ErrorIs(t, config.Load(&n), config.ErrInvalidConfigType)
	})
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("TEST_REQUIRED_VALUE")
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_FILE_VALUE=from_file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TEST_FILE_VALUE") })

	require.NoError(t, config.LoadEnv(path))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)

	assert.ErrorIs(t, config.LoadEnv(filepath.Join(dir, "missing.env")), config.ErrLoadingEnvFile)
}
