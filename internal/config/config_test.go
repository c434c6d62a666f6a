package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup location at fresh temporary directories.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DEO_CONFIG", "")
	t.Setenv("DEO_PACKAGE_MANAGER", "")
	t.Setenv("DEO_TEMPLATES", "")
	t.Setenv("DEO_LOG_LEVEL", "")
	return t.TempDir()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	cwd := isolate(t)

	cfg, err := Load(cwd)
	require.NoError(t, err)
	assert.Equal(t, PackageManager(""), cfg.PackageManager)
	assert.Equal(t, PNPM, cfg.Manager())
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel())
	assert.Empty(t, cfg.Path)
}

func TestLoad_WorkingDirectoryFile(t *testing.T) {
	cwd := isolate(t)
	writeFile(t, filepath.Join(cwd, FileName), "packageManager: yarn\ntemplates: tpl\nlog:\n  level: debug\n")

	cfg, err := Load(cwd)
	require.NoError(t, err)
	assert.Equal(t, Yarn, cfg.Manager())
	assert.Equal(t, filepath.Join(cwd, "tpl"), cfg.Templates)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
	assert.Equal(t, filepath.Join(cwd, FileName), cfg.Path)
}

func TestLoad_UserConfigDir(t *testing.T) {
	cwd := isolate(t)
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	writeFile(t, filepath.Join(home, "deo", "config.yaml"), "packageManager: npm\n")

	cfg, err := Load(cwd)
	require.NoError(t, err)
	assert.Equal(t, NPM, cfg.Manager())
}

func TestLoad_WorkingDirectoryWinsOverUserConfig(t *testing.T) {
	cwd := isolate(t)
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	writeFile(t, filepath.Join(home, "deo", "config.yaml"), "packageManager: npm\n")
	writeFile(t, filepath.Join(cwd, FileName), "packageManager: yarn\n")

	cfg, err := Load(cwd)
	require.NoError(t, err)
	assert.Equal(t, Yarn, cfg.Manager())
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	cwd := isolate(t)
	writeFile(t, filepath.Join(cwd, FileName), "packageManager: yarn\n")
	t.Setenv("DEO_PACKAGE_MANAGER", "npm")
	t.Setenv("DEO_TEMPLATES", "/opt/templates")

	cfg, err := Load(cwd)
	require.NoError(t, err)
	assert.Equal(t, NPM, cfg.Manager())
	assert.Equal(t, "/opt/templates", cfg.Templates)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	cwd := isolate(t)
	t.Setenv("DEO_CONFIG", filepath.Join(cwd, "missing.yaml"))

	_, err := Load(cwd)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidPackageManager(t *testing.T) {
	cwd := isolate(t)
	writeFile(t, filepath.Join(cwd, FileName), "packageManager: bun\n")

	_, err := Load(cwd)
	assert.ErrorContains(t, err, `invalid package manager "bun"`)
}

func TestLoad_InvalidYAML(t *testing.T) {
	cwd := isolate(t)
	writeFile(t, filepath.Join(cwd, FileName), "packageManager: [\n")

	_, err := Load(cwd)
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := &Config{Log: LogConfig{Level: "loud"}}
	assert.Error(t, cfg.Validate())

	cfg.Log.Level = "error"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, slog.LevelError, cfg.LogLevel())
}
