package app

import (
	"fmt"

	"github.com/footprint-tools/chunky/internal/config"
	"github.com/footprint-tools/chunky/internal/domain"
	"github.com/footprint-tools/chunky/internal/log"
	"github.com/footprint-tools/chunky/internal/paths"
	"github.com/footprint-tools/chunky/internal/scene"
	"github.com/footprint-tools/chunky/internal/ui"
	"github.com/footprint-tools/chunky/internal/ui/style"
)

// settingsFileMode keeps the settings file private to the user.
const settingsFileMode = 0600

// Options configures the application factory.
type Options struct {
	// Settings is the persisted configuration. New opens ~/.chunkyrc when nil.
	Settings domain.ConfigProvider

	// Log options
	LogEnabled bool
	LogLevel   log.Level

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string
}

// Settings opens the settings file in the user's home directory.
func Settings() (*config.Provider, error) {
	path, err := paths.ConfigFilePath()
	if err != nil {
		return nil, fmt.Errorf("locate settings file: %w", err)
	}
	return config.NewProvider(scene.NewOSFileStore(scene.WithFileMode(settingsFileMode)), path), nil
}

// DefaultOptions reads the factory options from the persisted settings.
// color=auto styles output only on a terminal.
func DefaultOptions(cfg domain.ConfigProvider) Options {
	settings, _ := cfg.GetAll()

	styleEnabled := ui.IsTerminal()
	switch settings["color"] {
	case "always":
		styleEnabled = true
	case "never":
		styleEnabled = false
	}

	return Options{
		Settings:     cfg,
		LogEnabled:   settings["enable_log"] == "true",
		LogLevel:     log.ParseLevel(settings["log_level"]),
		StyleEnabled: styleEnabled,
		StyleConfig:  settings,
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	cfg := opts.Settings
	if cfg == nil {
		settings, err := Settings()
		if err != nil {
			return nil, err
		}
		cfg = settings
	}

	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		l, err := log.New(paths.LogFilePath(), opts.LogLevel)
		if err == nil {
			log.SetDefault(l)
			logger = l
			l.Debug("app: chunky %s starting", Version)
		}
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	return &domain.Application{
		Files:       scene.NewOSFileStore(),
		Config:      cfg,
		Logger:      logger,
		Diagnostics: ui.NewWriter(ui.WithErrorStyling()),
		Styler:      style.NewStyler(),
		Downloader:  unavailableDownloader{},
		Merger:      unavailableMerger{},
	}, nil
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	log.SetDefault(nil)
	return nil
}
