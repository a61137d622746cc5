package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.Reset()

		var cfg config.Validator
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "form", cfg.Mode)
		assert.Equal(t, "en", cfg.Locale)
		assert.False(t, cfg.StrictKeys)
	})

	t.Run("environment overrides", func(t *testing.T) {
		config.Reset()
		t.Setenv("FIELDKIT_MODE", "admin")
		t.Setenv("FIELDKIT_LOCALE", "de")
		t.Setenv("FIELDKIT_STRICT_KEYS", "true")

		var cfg config.Validator
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "admin", cfg.Mode)
		assert.Equal(t, "de", cfg.Locale)
		assert.True(t, cfg.StrictKeys)
	})

	t.Run("result is cached per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("FIELDKIT_MODE", "api")

		var first config.Validator
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "api", first.Mode)

		t.Setenv("FIELDKIT_MODE", "form")

		var second config.Validator
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "api", second.Mode, "cached parse wins until Reset")

		config.Reset()

		var third config.Validator
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "form", third.Mode)
	})

	t.Run("nil target", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[config.Validator](nil), config.ErrNilPointer)
	})

	t.Run("invalid value", func(t *testing.T) {
		config.Reset()
		t.Setenv("FIELDKIT_STRICT_KEYS", "definitely")

		var cfg config.Validator
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParse)
	})
}

func TestValidatorOptions(t *testing.T) {
	t.Run("strict keys toggles FailUnknown", func(t *testing.T) {
		loose := config.Validator{StrictKeys: false}
		assert.Empty(t, loose.FieldsOptions())

		strict := config.Validator{StrictKeys: true}
		assert.Len(t, strict.FieldsOptions(), 1)
	})

	t.Run("mode becomes a validator option", func(t *testing.T) {
		cfg := config.Validator{Mode: "admin"}
		assert.Len(t, cfg.ValidatorOptions(), 1)
	})
}
