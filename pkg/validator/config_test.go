package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramscheck/pkg/config"
	"github.com/dmitrymomot/paramscheck/pkg/validator"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("PARAMSCHECK_MAX_DEPTH", "4")
	t.Setenv("PARAMSCHECK_LOG_REJECTIONS", "true")
	config.Reset()
	t.Cleanup(config.Reset)

	cfg, err := validator.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, validator.Config{MaxDepth: 4, LogRejections: true}, cfg)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	assert.Equal(t, validator.DefaultMaxDepth, validator.DefaultConfig().MaxDepth)
	assert.False(t, validator.DefaultConfig().LogRejections)
}

func TestWithConfig_KeepsDefaultDepth(t *testing.T) {
	t.Parallel()

	var nest *validator.Validator
	nest = validator.New("nest", func(b *validator.Builder) {
		b.Field("next", validator.Nested(nest, validator.Optional()))
	}, validator.WithConfig(validator.Config{MaxDepth: 0}))

	input := map[string]any{}
	for range validator.DefaultMaxDepth {
		input = map[string]any{"next": input}
	}
	res := nest.Validate(input, nil)
	assert.True(t, res.Success, "%v", res.Err())

	input = map[string]any{"next": input}
	res = nest.Validate(input, nil)
	assert.False(t, res.Success)
}
