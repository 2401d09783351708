package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.NotEmpty(t, cfg.Storage.Dir)
	assert.False(t, cfg.Schedule.StrictReassign)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, 3000, cfg.UI.NotificationMs)
	assert.False(t, cfg.UI.DisableMouse)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_NoFile(t *testing.T) {
	cfg, path, err := LoadConfig(t.TempDir(), "")
	require.NoError(t, err)

	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_JSON(t *testing.T) {
	tmpDir := t.TempDir()
	content := `{
  "version": 2,
  "storage": {"backend": "sqlite"},
  "schedule": {"strictReassign": true},
  "ui": {"theme": "light"}
}`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, JSONFile), []byte(content), 0o644))

	cfg, path, err := LoadConfig(tmpDir, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, JSONFile), path)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.True(t, cfg.Schedule.StrictReassign)
	assert.Equal(t, "light", cfg.UI.Theme)

	// Defaults are filled in
	assert.Equal(t, DefaultDataDir(), cfg.Storage.Dir)
	assert.Equal(t, 3000, cfg.UI.NotificationMs)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[storage]
backend = "file"
dir = "/tmp/plans"

[ui]
theme = "light"
notificationMs = 1500
disableMouse = true

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, TOMLFile), []byte(content), 0o644))

	cfg, path, err := LoadConfig(tmpDir, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, TOMLFile), path)
	assert.Equal(t, "/tmp/plans", cfg.Storage.Dir)
	assert.Equal(t, 1500, cfg.UI.NotificationMs)
	assert.True(t, cfg.UI.DisableMouse)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_TOMLUnknownKey(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[ui]\ncolour = \"blue\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, TOMLFile), []byte(content), 0o644))

	_, _, err := LoadConfig(tmpDir, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.colour")
}

func TestLoadConfig_JSONWinsOverTOML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, JSONFile), []byte(`{"version":2,"ui":{"theme":"light"}}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, TOMLFile), []byte("[ui]\ntheme = \"dark\"\n"), 0o644))

	cfg, _, err := LoadConfig(tmpDir, "")
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	tmpDir := t.TempDir()
	explicit := filepath.Join(tmpDir, "custom.toml")
	require.NoError(t, os.WriteFile(explicit, []byte("[schedule]\nstrictReassign = true\n"), 0o644))

	cfg, path, err := LoadConfig(t.TempDir(), explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, path)
	assert.True(t, cfg.Schedule.StrictReassign)

	_, _, err = LoadConfig(tmpDir, filepath.Join(tmpDir, "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, JSONFile), []byte("{not json"), 0o644))

	_, _, err := LoadConfig(tmpDir, "")
	assert.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", JSONFile)

	cfg := DefaultConfig()
	cfg.Storage.Backend = "sqlite"
	cfg.UI.Theme = "light"
	require.NoError(t, SaveConfig(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": 2`)

	loaded, err := ParseVersionedConfig(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveConfig_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), TOMLFile)

	cfg := DefaultConfig()
	cfg.Schedule.StrictReassign = true
	cfg.Log.File = "/tmp/wp.log"
	require.NoError(t, SaveConfig(cfg, path))

	loaded, _, err := LoadConfig(filepath.Dir(path), "")
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad backend", func(c *Config) { c.Storage.Backend = "redis" }, "storage.backend"},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"negative notification", func(c *Config) { c.UI.NotificationMs = -1 }, "ui.notificationMs"},
		{"bad level", func(c *Config) { c.Log.Level = "chatty" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLogPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Dir = "/data"
	assert.Equal(t, filepath.Join("/data", "weekplan.log"), cfg.LogPath())

	cfg.Log.File = "/var/log/wp.log"
	assert.Equal(t, "/var/log/wp.log", cfg.LogPath())
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvDataDir:        "/env/data",
		EnvBackend:        "sqlite",
		EnvTheme:          "light",
		EnvLogLevel:       "warn",
		EnvStrictReassign: "true",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(cfg, lookup))

	assert.Equal(t, "/env/data", cfg.Storage.Dir)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Schedule.StrictReassign)

	env[EnvStrictReassign] = "sometimes"
	assert.Error(t, ApplyEnv(DefaultConfig(), lookup))
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WEEKPLAN_THEME=light\n"), 0o644))
	t.Setenv(EnvTheme, "")
	os.Unsetenv(EnvTheme)

	require.NoError(t, LoadDotEnv(path, filepath.Join(t.TempDir(), "absent.env")))
	assert.Equal(t, "light", os.Getenv(EnvTheme))
}
