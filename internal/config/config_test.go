package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizgrid/quizgrid/internal/game"
)

// isolate points every lookup location at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, game.DefaultTiming(), cfg.Timing.Game())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.File)
}

func TestLoad_SearchPath(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config", "config.yaml"), `
timing:
  auto_close_delay: 2s
log:
  level: debug
`)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Timing.AutoCloseDelay)
	assert.Equal(t, 100*time.Millisecond, cfg.Timing.FocusDelay)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_XDGConfigDir(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "quizgrid", "config.yaml"), "timing:\n  game_over_delay: 3s\n")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Timing.GameOverDelay)
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "log:\n  file: /tmp/qg.log\n")

	cfg, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/qg.log", cfg.Log.File)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	dir := isolate(t)
	_, err := Load(LoadOptions{ConfigFile: filepath.Join(dir, "nope.yaml")})
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config", "config.yaml"), "timing:\n  focus_delay: 50ms\n")
	t.Setenv("QUIZGRID_TIMING_FOCUS_DELAY", "250ms")
	t.Setenv("QUIZGRID_LOG_LEVEL", "warn")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Timing.FocusDelay)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := isolate(t)
	envPath := filepath.Join(dir, ".env")
	writeFile(t, envPath, "QUIZGRID_TIMING_AUTO_CLOSE_DELAY=750ms\n")
	t.Cleanup(func() { os.Unsetenv("QUIZGRID_TIMING_AUTO_CLOSE_DELAY") })

	cfg, err := Load(LoadOptions{EnvFile: envPath})
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, cfg.Timing.AutoCloseDelay)
}

func TestLoad_MissingEnvFileIgnored(t *testing.T) {
	dir := isolate(t)
	_, err := Load(LoadOptions{EnvFile: filepath.Join(dir, "absent.env")})
	require.NoError(t, err)
}

func TestLoad_NegativeDelay(t *testing.T) {
	isolate(t)
	t.Setenv("QUIZGRID_TIMING_GAME_OVER_DELAY", "-1s")

	_, err := Load(LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config", "config.yaml"), "timing: [unclosed\n")

	_, err := Load(LoadOptions{})
	require.Error(t, err)
}
