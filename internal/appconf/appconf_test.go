package appconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvFlagToEnvironment(t *testing.T) {
	tests := []struct {
		flag     string
		expected Environment
	}{
		{"development", Development},
		{"test", Test},
		{"production", Production},
		{"", Development},
		{"staging", Development},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.expected, EnvFlagToEnvironment(tt.flag))
		})
	}
}

func TestEnvironmentString(t *testing.T) {
	assert.Equal(t, "development", Development.String())
	assert.Equal(t, "test", Test.String())
	assert.Equal(t, "production", Production.String())
}

func TestLoadEnvConfigDefaults(t *testing.T) {
	cfg, err := LoadEnvConfig()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, []string{"test"}, cfg.ApiKeys)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, ":memory:", cfg.DBPath)
}

func TestLoadEnvConfigOverrides(t *testing.T) {
	t.Setenv("CHURNBOARD_PORT", "9090")
	t.Setenv("CHURNBOARD_API_KEYS", "alpha, beta")
	t.Setenv("CHURNBOARD_ENV", "test")

	cfg, err := LoadEnvConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "test", cfg.Env)
	assert.Len(t, cfg.ApiKeys, 2)
}
