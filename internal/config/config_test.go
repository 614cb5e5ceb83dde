package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.LogDir)
	assert.Equal(t, "chat_log.txt", cfg.ChatLog)
	assert.Equal(t, "order_history.txt", cfg.OrderLog)
	assert.Equal(t, "recommendations.txt", cfg.RecommendationLog)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Styles.Color)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "config.yaml", `
log_dir: /var/log/chefbot
order_log: orders.log
metrics:
  enabled: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/log/chefbot", cfg.LogDir)
	assert.Equal(t, "orders.log", cfg.OrderLog)
	assert.Equal(t, "chat_log.txt", cfg.ChatLog, "unset keys keep their defaults")
	assert.False(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Styles.Color)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "log_dir: [unterminated"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "empty.yaml", `chat_log: ""`))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvLogDir, "/tmp/chefbot")
	t.Setenv(EnvMetrics, "false")
	t.Setenv(EnvColor, "0")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/chefbot", cfg.LogDir)
	assert.False(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Styles.Color)

	t.Setenv(EnvMetrics, "sometimes")
	_, err = Load("")
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	// t.Setenv restores the original value; godotenv never overrides a set variable
	t.Setenv(EnvLogDir, "placeholder")
	require.NoError(t, os.Unsetenv(EnvLogDir))
	path := writeFile(t, ".env", EnvLogDir+"=from-dotenv\n")

	require.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "absent.env"), path))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.LogDir)
}
