package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/footprint-tools/chunky/internal/config"
	"github.com/footprint-tools/chunky/internal/domain"
	"github.com/footprint-tools/chunky/internal/log"
	"github.com/footprint-tools/chunky/internal/paths"
	"github.com/footprint-tools/chunky/internal/testutil"
	"github.com/footprint-tools/chunky/internal/usage"
	"github.com/stretchr/testify/require"
)

func setupTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	return home
}

func TestDefaultOptions(t *testing.T) {
	home := setupTempHome(t)
	content := "enable_log=false\nlog_level=debug\ncolor=always\ncolor_error=9\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".chunkyrc"), []byte(content), 0600))

	settings, err := Settings()
	require.NoError(t, err)
	opts := DefaultOptions(settings)

	require.False(t, opts.LogEnabled)
	require.Equal(t, log.LevelDebug, opts.LogLevel)
	require.True(t, opts.StyleEnabled)
	require.Equal(t, "9", opts.StyleConfig["color_error"])
}

func TestDefaultOptions_ColorNever(t *testing.T) {
	home := setupTempHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".chunkyrc"), []byte("color=never\n"), 0600))

	settings, err := Settings()
	require.NoError(t, err)
	require.False(t, DefaultOptions(settings).StyleEnabled)
}

func TestSettings_PrivateFile(t *testing.T) {
	home := setupTempHome(t)

	settings, err := Settings()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".chunkyrc"), settings.Path())
	require.NoError(t, settings.Set("color", "never"))

	info, err := os.Stat(settings.Path())
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestNew_WiresEverything(t *testing.T) {
	setupTempHome(t)

	app, err := New(Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(app) })

	require.NotNil(t, app.Files)
	require.NotNil(t, app.Config)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Diagnostics)
	require.NotNil(t, app.Styler)
	require.IsType(t, log.NopLogger{}, app.Logger)
	require.IsType(t, &config.Provider{}, app.Config)
}

func TestNew_WithLogging(t *testing.T) {
	setupTempHome(t)

	app, err := New(Options{LogEnabled: true, LogLevel: log.LevelDebug})
	require.NoError(t, err)

	_, isFileLogger := app.Logger.(*log.Logger)
	require.True(t, isFileLogger)

	log.Warn("reached the default logger")
	require.NoError(t, Close(app))
	log.Warn("after close")

	content, err := os.ReadFile(paths.LogFilePath())
	require.NoError(t, err)
	require.Contains(t, string(content), "DEBUG: app: chunky "+Version+" starting")
	require.Contains(t, string(content), "reached the default logger")
	require.NotContains(t, string(content), "after close")
}

func newQuietApp(t *testing.T) *domain.Application {
	t.Helper()
	app, err := New(Options{Settings: testutil.NewMemConfig(nil)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(app) })
	return app
}

func TestNew_InjectedSettings(t *testing.T) {
	settings := testutil.NewMemConfig(map[string]string{"scene_dir": "/srv/scenes"})

	app, err := New(Options{Settings: settings})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(app) })

	require.Same(t, settings, app.Config)
	require.False(t, app.Styler.Enabled())
}

func TestUnavailableCollaborators(t *testing.T) {
	app := newQuietApp(t)

	var ue *usage.Error
	err := app.Downloader.Download("1.21", "/tmp/minecraft.jar")
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrUnavailable, ue.Kind)

	_, _, err = app.Merger.Merge("a.json", "b.dump")
	require.True(t, errors.As(err, &ue))
	require.Equal(t, 1, ue.GetExitCode())
}

func TestClose_NilLogger(t *testing.T) {
	app := newQuietApp(t)
	app.Logger = nil

	require.NoError(t, Close(app))
}
