package adapter

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/mmcdole/bookcase/internal/catalog"
	"github.com/mmcdole/bookcase/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir and runs the test from another one,
// so neither a real config nor a stray .env leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())
	return home
}

func TestLoadConfigDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, domain.ThemeAuto, cfg.UI.Theme)
	assert.Equal(t, catalog.DefaultPageSize, cfg.UI.PageSize)
	assert.Equal(t, "", cfg.Data.File)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	if runtime.GOOS != "windows" {
		assert.Equal(t, filepath.Join(home, ".local", "share", "bookcase", "cache"), cfg.Data.CacheDir)
	}
}

func TestLoadConfigFile(t *testing.T) {
	home := isolate(t)

	path := filepath.Join(t.TempDir(), "bookcase.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data:
  file: ~/books.yaml
  cache_dir: ""
ui:
  theme: Night
  page_size: 12
logging:
  level: debug
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "books.yaml"), cfg.Data.File)
	assert.Equal(t, "", cfg.Data.CacheDir)
	assert.Equal(t, domain.ThemeNight, cfg.UI.Theme)
	assert.Equal(t, 12, cfg.UI.PageSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("BOOKCASE_UI_THEME", "day")
	t.Setenv("BOOKCASE_UI_PAGE_SIZE", "5")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDay, cfg.UI.Theme)
	assert.Equal(t, 5, cfg.UI.PageSize)
}

func TestLoadConfigDotEnv(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".env", []byte("BOOKCASE_LOGGING_LEVEL=ERROR\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("BOOKCASE_LOGGING_LEVEL") })

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "ERROR", cfg.Logging.Level)
}

func TestLoadConfigErrors(t *testing.T) {
	isolate(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("BOOKCASE_UI_THEME", "sepia")
	_, err = LoadConfig("")
	assert.ErrorIs(t, err, domain.ErrUnknownTheme)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	isolate(t)

	cfg := DefaultConfig()
	cfg.UI.Theme = domain.ThemeNight
	cfg.UI.PageSize = 7
	cfg.UI.OpenCommand = "feh --scale-down"

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.UI, loaded.UI)
	assert.Equal(t, cfg.Data.CacheDir, loaded.Data.CacheDir)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLogLevel(" error "))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
}

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "WARN")

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown", "id", "b1")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"id":"b1"`)
}

func TestSetupLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bookcase.log")
	logger, closer, err := SetupLogger(&LoggingConfig{File: path, Level: "INFO"})
	require.NoError(t, err)

	logger.Info("catalog loaded", "count", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "catalog loaded")

	logger, closer, err = SetupLogger(&LoggingConfig{})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, closer.Close())
}

func TestOpener(t *testing.T) {
	var gotName string
	var gotArgs []string
	o := NewOpener("feh --scale-down", NullLogger())
	o.start = func(name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}

	require.NoError(t, o.Open("https://example.com/cover.jpg"))
	assert.Equal(t, "feh", gotName)
	assert.Equal(t, []string{"--scale-down", "https://example.com/cover.jpg"}, gotArgs)

	assert.Error(t, o.Open("not a url"))
	assert.Error(t, o.Open("javascript:alert(1)"))

	o.start = func(string, ...string) error { return errors.New("boom") }
	assert.Error(t, o.Open("https://example.com/cover.jpg"))
}

func TestOpenerSystemDefault(t *testing.T) {
	name, args := NewOpener("", nil).commandFor("https://example.com/a.png")
	assert.NotEmpty(t, name)
	assert.Equal(t, "https://example.com/a.png", args[len(args)-1])
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
