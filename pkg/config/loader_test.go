package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/config"
)

type testConfig struct {
	Name    string        `env:"LOADER_TEST_NAME,required"`
	Retries int           `env:"LOADER_TEST_RETRIES" envDefault:"3"`
	Wait    time.Duration `env:"LOADER_TEST_WAIT" envDefault:"5s"`
}

type missingConfig struct {
	Token string `env:"LOADER_TEST_ABSENT_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("parses env tags with defaults", func(t *testing.T) {
		t.Setenv("LOADER_TEST_NAME", "fieldrules")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "fieldrules", cfg.Name)
		assert.Equal(t, 3, cfg.Retries)
		assert.Equal(t, 5*time.Second, cfg.Wait)
	})

	t.Run("caches per type across calls", func(t *testing.T) {
		t.Setenv("LOADER_TEST_NAME", "changed-later")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		// First load in this process already cached the type; the new env
		// value must not leak in.
		assert.Equal(t, "fieldrules", cfg.Name)
	})

	t.Run("missing required variable is an error", func(t *testing.T) {
		var cfg missingConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer is rejected", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[testConfig](nil), config.ErrNilPointer)
	})
}
