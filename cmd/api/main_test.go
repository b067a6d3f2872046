package main

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"unitconv.dev/internal/app"
	"unitconv.dev/internal/appconf"
	"unitconv.dev/internal/logging"
	"unitconv.dev/internal/models"
)

func noEnv(string) string { return "" }

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(nil, noEnv)
	require.NoError(t, err)

	assert.Equal(t, appconf.Defaults(), cfg)
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parseConfig([]string{
		"-port", "8080",
		"-env", "prod",
		"-api-keys", "a, b ,c",
		"-rate-limit", "0",
		"-log-level", "debug",
	}, noEnv)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, appconf.Production, cfg.Env)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.ApiKeys)
	assert.Equal(t, 0, cfg.RateLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseConfigFileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unitconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 5000
api_keys: ["${UNITCONV_KEY}"]
rate_limit: 7
compression:
  enabled: false
`), 0o600))

	getenv := func(name string) string {
		switch name {
		case "UNITCONV_KEY":
			return "from-env"
		case configEnvVar:
			return path
		}
		return ""
	}

	t.Run("file from environment", func(t *testing.T) {
		cfg, err := parseConfig(nil, getenv)
		require.NoError(t, err)

		assert.Equal(t, 5000, cfg.Port)
		assert.Equal(t, []string{"from-env"}, cfg.ApiKeys)
		assert.Equal(t, 7, cfg.RateLimit)
		assert.False(t, cfg.Compression.Enabled)
	})

	t.Run("explicit flags win over the file", func(t *testing.T) {
		cfg, err := parseConfig([]string{"-config", path, "-port", "6000"}, getenv)
		require.NoError(t, err)

		assert.Equal(t, 6000, cfg.Port)
		assert.Equal(t, 7, cfg.RateLimit, "flags left at their default do not override the file")
	})
}

func TestParseConfigErrors(t *testing.T) {
	_, err := parseConfig([]string{"-h"}, noEnv)
	assert.ErrorIs(t, err, flag.ErrHelp)

	_, err = parseConfig([]string{"-port", "70000"}, noEnv)
	assert.ErrorContains(t, err, "invalid port")

	_, err = parseConfig([]string{"-api-keys", " , "}, noEnv)
	assert.ErrorContains(t, err, "at least one API key")

	_, err = parseConfig([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, noEnv)
	assert.ErrorContains(t, err, "failed to read config")
}

func TestBuildHandler(t *testing.T) {
	var logs bytes.Buffer
	cfg := appconf.Defaults()
	cfg.ApiKeys = []string{"TEST"}
	cfg.RateLimit = 0
	cfg.Compression.MinSize = 1

	handler, closeHandler, err := buildHandler(app.New(cfg, logging.NewStructuredLogger(&logs, slog.LevelInfo)))
	require.NoError(t, err)
	defer closeHandler()

	server := httptest.NewServer(handler)
	defer server.Close()

	t.Run("api", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/convert.json?key=TEST&category=length&from=Meter&to=Centimeter&value=1")
		require.NoError(t, err)
		defer logging.SafeCloseWithLogging(resp.Body, slog.Default(), "http_response_body")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

		var model models.ResponseModel
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&model))
		entry := model.Data.(map[string]interface{})["entry"].(map[string]interface{})
		assert.Equal(t, "100 Centimeter", entry["display"])
	})

	t.Run("web pages", func(t *testing.T) {
		for _, path := range []string{"/", "/counter", "/debug/"} {
			resp, err := http.Get(server.URL + path)
			require.NoError(t, err)
			_ = resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode, path)
			assert.Contains(t, resp.Header.Get("Content-Type"), "text/html", path)
		}
	})

	t.Run("compression", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, server.URL+"/api/categories.json?key=TEST", nil)
		require.NoError(t, err)
		req.Header.Set("Accept-Encoding", "gzip")

		resp, err := http.DefaultTransport.RoundTrip(req)
		require.NoError(t, err)
		defer logging.SafeCloseWithLogging(resp.Body, slog.Default(), "http_response_body")

		require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
		reader, err := gzip.NewReader(resp.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"name":"temperature"`)
	})

	// Close waits for in-flight requests, so every request has been logged.
	server.Close()
	assert.Contains(t, logs.String(), `"msg":"http_request"`)
}
