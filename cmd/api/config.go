package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"strings"

	"unitconv.dev/internal/appconf"
)

// configEnvVar names the config file when -config is not given.
const configEnvVar = "UNITCONV_CONFIG"

// parseConfig builds the server configuration. Settings come from the
// defaults, then the YAML config file if one is given, then any flag that was
// set explicitly on the command line.
func parseConfig(args []string, getenv func(string) string) (appconf.Config, error) {
	var (
		configPath  string
		port        int
		env         string
		apiKeysFlag string
		rateLimit   int
		logLevel    string
		defaults    = appconf.Defaults()
		flags       = flag.NewFlagSet("api", flag.ContinueOnError)
	)
	flags.SetOutput(io.Discard)

	flags.StringVar(&configPath, "config", "", "Path to a YAML config file (default: $"+configEnvVar+")")
	flags.IntVar(&port, "port", defaults.Port, "API server port")
	flags.StringVar(&env, "env", defaults.Env.String(), "Environment (development|test|production)")
	flags.StringVar(&apiKeysFlag, "api-keys", strings.Join(defaults.ApiKeys, ","), "Comma Separated API Keys (test, etc)")
	flags.IntVar(&rateLimit, "rate-limit", defaults.RateLimit, "Requests per second per API key (0 disables limiting)")
	flags.StringVar(&logLevel, "log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			flags.SetOutput(os.Stderr)
			flags.PrintDefaults()
		}
		return appconf.Config{}, err
	}

	if configPath == "" && getenv != nil {
		configPath = getenv(configEnvVar)
	}

	cfg := defaults
	if configPath != "" {
		loaded, err := appconf.LoadFile(configPath, getenv)
		if err != nil {
			return appconf.Config{}, err
		}
		cfg = loaded
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = port
		case "env":
			cfg.Env = appconf.EnvFlagToEnvironment(env)
		case "api-keys":
			cfg.ApiKeys = appconf.SplitAPIKeys(apiKeysFlag)
		case "rate-limit":
			cfg.RateLimit = rateLimit
		case "log-level":
			cfg.LogLevel = logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return appconf.Config{}, err
	}
	return cfg, nil
}
