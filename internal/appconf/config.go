package appconf

import (
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag value to an Environment.
// Unknown values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// UnmarshalYAML lets config files spell the environment as a string.
func (e *Environment) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*e = EnvFlagToEnvironment(s)
	return nil
}

// CompressionConfig controls gzip compression of HTTP responses.
type CompressionConfig struct {
	Enabled bool   `yaml:"enabled"`
	MinSize int    `yaml:"min_size"`
	Level   string `yaml:"level"` // none, fastest, default, best
}

// Config holds all the configuration settings for the Application.
type Config struct {
	Port        int               `yaml:"port"`
	Env         Environment       `yaml:"env"`
	ApiKeys     []string          `yaml:"api_keys"`
	RateLimit   int               `yaml:"rate_limit"` // requests per second per API key
	LogLevel    string            `yaml:"log_level"`
	Compression CompressionConfig `yaml:"compression"`
}

// Defaults returns the configuration used when neither a file nor flags say
// otherwise.
func Defaults() Config {
	return Config{
		Port:      4000,
		Env:       Development,
		ApiKeys:   []string{"test"},
		RateLimit: 100,
		LogLevel:  "info",
		Compression: CompressionConfig{
			Enabled: true,
			MinSize: 1024,
			Level:   "default",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if len(c.ApiKeys) == 0 {
		return fmt.Errorf("at least one API key is required")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must be non-negative, got %d", c.RateLimit)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Compression.Level {
	case "", "none", "fastest", "default", "best":
	default:
		return fmt.Errorf("unknown compression level %q", c.Compression.Level)
	}
	return nil
}

// ParseLogLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if level == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// SplitAPIKeys parses a comma separated list of API keys.
func SplitAPIKeys(value string) []string {
	var keys []string
	for _, key := range strings.Split(value, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
