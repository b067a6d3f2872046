package appconf

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvFlagToEnvironment(t *testing.T) {
	testCases := []struct {
		flag     string
		expected Environment
	}{
		{"development", Development},
		{"test", Test},
		{"TEST", Test},
		{"production", Production},
		{"prod", Production},
		{"staging", Development},
		{"", Development},
	}

	for _, tc := range testCases {
		t.Run(tc.flag, func(t *testing.T) {
			assert.Equal(t, tc.expected, EnvFlagToEnvironment(tc.flag))
		})
	}

	assert.Equal(t, "production", Production.String())
}

func TestDefaultsAreValid(t *testing.T) {
	assert.NoError(t, Defaults().Validate())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"bad port", func(c *Config) { c.Port = 70000 }, "invalid port"},
		{"no api keys", func(c *Config) { c.ApiKeys = nil }, "API key"},
		{"negative rate limit", func(c *Config) { c.RateLimit = -1 }, "rate limit"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
		{"bad compression level", func(c *Config) { c.Compression.Level = "max" }, "compression level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.errMsg)
		})
	}
}

func TestParse(t *testing.T) {
	getenv := func(name string) string {
		if name == "UNITCONV_KEY" {
			return "secret"
		}
		return ""
	}

	t.Run("overrides defaults and interpolates env", func(t *testing.T) {
		cfg, err := Parse([]byte(`
port: 8080
env: production
api_keys: ["${UNITCONV_KEY}", "public"]
log_level: warn
compression:
  enabled: false
`), getenv)
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, Production, cfg.Env)
		assert.Equal(t, []string{"secret", "public"}, cfg.ApiKeys)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.False(t, cfg.Compression.Enabled)
		assert.Equal(t, 1024, cfg.Compression.MinSize, "unset fields keep their default")
		assert.Equal(t, 100, cfg.RateLimit)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("port: [1"), getenv)
		assert.ErrorContains(t, err, "failed to parse config")
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		_, err := Parse([]byte("rate_limit: -5"), getenv)
		assert.ErrorContains(t, err, "invalid config")
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unitconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9090\n"), 0o600))

	cfg, err := LoadFile(path, os.Getenv)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), os.Getenv)
	assert.ErrorContains(t, err, "failed to read config")
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestSplitAPIKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitAPIKeys(" a, ,b "))
	assert.Nil(t, SplitAPIKeys(""))
}
