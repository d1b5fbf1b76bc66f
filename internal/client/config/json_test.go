package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	dir := t.TempDir()

	t.Run("loads every field", func(t *testing.T) {
		path := writeTempJSON(t, dir, "full.json", map[string]any{
			"server_url":       "http://www.example:9000",
			"request_timeout":  "1500ms",
			"notification_ttl": 2000000000,
			"log_file":         "client.log",
			"plain":            true,
		})

		cfg := &Config{}
		require.NoError(t, parseJson(cfg, []string{"-config", path}))

		assert.Equal(t, "http://www.example:9000", cfg.ServerURL)
		assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
		assert.Equal(t, 2*time.Second, cfg.NotificationTTL)
		assert.Equal(t, "client.log", cfg.LogFile)
		assert.True(t, cfg.Plain)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		path := writeTempJSON(t, dir, "partial.json", map[string]any{
			"server_url": "http://only-url",
		})

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, []string{"-c", path}))

		assert.Equal(t, "http://only-url", cfg.ServerURL)
		assert.Equal(t, 5*time.Second, cfg.NotificationTTL)
	})

	t.Run("no flag → no changes", func(t *testing.T) {
		cfg := &Config{ServerURL: "http://defaults:1234"}
		require.NoError(t, parseJson(cfg, []string{"-a", "ignored"}))

		assert.Equal(t, "http://defaults:1234", cfg.ServerURL)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		require.Error(t, parseJson(cfg, []string{"-c", bad}))
	})
}
