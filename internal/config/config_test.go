package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at an empty temp dir and clears the env.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{"AITODO_API", "API", "AITODO_THEME", "AITODO_LOG_LEVEL", "AITODO_LOG_FILE"} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("", Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Source)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPI)
}

func TestLoadYAMLFromConfigDir(t *testing.T) {
	dir := isolate(t)
	t.Setenv("TODO_HOST", "todo.example.com")
	writeFile(t, filepath.Join(dir, "aitodo", "config.yaml"), "api: https://${TODO_HOST}/\ntheme: neon\nlog:\n  level: debug\n")

	cfg, err := Load("", Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "https://todo.example.com", cfg.API)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "aitodo", "config.yaml"), cfg.Source)
	assert.NoError(t, cfg.Validate())
}

func TestLoadTOMLExplicitPath(t *testing.T) {
	dir := isolate(t)
	p := filepath.Join(dir, "elsewhere", "aitodo.toml")
	writeFile(t, p, "api = \"http://localhost:5000\"\n\n[log]\nformat = \"json\"\n")

	cfg, err := Load(p, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.API)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"), Overrides{})
	assert.Error(t, err)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	dir := isolate(t)
	p := filepath.Join(dir, "config.ini")
	writeFile(t, p, "api=x")
	_, err := Load(p, Overrides{})
	assert.ErrorContains(t, err, "unsupported config format")
}

func TestPrecedenceFileEnvFlags(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "aitodo", "config.yaml"), "api: http://file:1\ntheme: mono\n")

	t.Setenv("API", "http://legacy:2")
	cfg, err := Load("", Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "http://legacy:2", cfg.API)

	t.Setenv("AITODO_API", "http://env:3")
	cfg, err = Load("", Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "http://env:3", cfg.API)
	assert.Equal(t, "mono", cfg.Theme)

	cfg, err = Load("", Overrides{API: "http://flag:4/", Theme: "neon", LogLevel: "warn"})
	require.NoError(t, err)
	assert.Equal(t, "http://flag:4", cfg.API)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		api     string
		wantErr bool
	}{
		{"http://localhost:5000", false},
		{"https://todo.example.com/base", false},
		{"ftp://todo.example.com", true},
		{"localhost:5000", true},
		{"http://", true},
		{"", true},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.API = tt.api
		if tt.wantErr {
			assert.Error(t, cfg.Validate(), tt.api)
		} else {
			assert.NoError(t, cfg.Validate(), tt.api)
		}
	}
}

func TestSaveRoundTripsThroughLoad(t *testing.T) {
	dir := isolate(t)
	p := filepath.Join(dir, "aitodo", "config.yaml")

	cfg := Default()
	cfg.API = "http://saved:9"
	require.NoError(t, Save(cfg, p))

	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load("", Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "http://saved:9", loaded.API)
}

func TestLogFileDefaultsUnderConfigDir(t *testing.T) {
	dir := isolate(t)
	cfg := Default()
	assert.Equal(t, filepath.Join(dir, "aitodo", "aitodo.log"), cfg.LogFile())
	cfg.Log.File = "/tmp/x.log"
	assert.Equal(t, "/tmp/x.log", cfg.LogFile())
}

func TestReadFileIgnoresEnvironment(t *testing.T) {
	dir := isolate(t)
	t.Setenv("AITODO_API", "http://from-env")
	path := filepath.Join(dir, "aitodo", "config.yaml")

	cfg, err := ReadFile(path)
	require.NoError(t, err, "missing file yields defaults")
	assert.Empty(t, cfg.API)

	cfg.API = "http://saved:8080"
	require.NoError(t, Save(cfg, path))

	again, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://saved:8080", again.API)
	assert.Equal(t, path, again.Source)

	def, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, path, def)
}
