package actions

import (
	"os"

	"github.com/footprint-tools/chunky/internal/dispatchers"
	"github.com/footprint-tools/chunky/internal/domain"
	"github.com/footprint-tools/chunky/internal/log"
	"github.com/footprint-tools/chunky/internal/options"
	"github.com/footprint-tools/chunky/internal/paths"
	"github.com/footprint-tools/chunky/internal/ui/style"
)

// State is the dispatch state every handler in this package works on.
type State = dispatchers.State[options.Options]

// Deps carries the collaborators flag handlers use.
type Deps struct {
	Files       domain.FileStore
	Config      domain.ConfigProvider
	Diagnostics domain.DiagnosticsSink
	Styler      domain.Styler
	Logger      domain.Logger
	Downloader  domain.MinecraftDownloader
	Merger      domain.DumpMerger

	Version         string
	Usage           func() string
	DefaultSceneDir func() string
	ResourcesDir    func() string
	MkdirAll        func(path string, perm os.FileMode) error
}

// DepsFrom builds handler dependencies from the application context.
func DepsFrom(app *domain.Application, version string) Deps {
	styler := app.Styler
	if styler == nil {
		styler = style.NopStyler{}
	}
	logger := app.Logger
	if logger == nil {
		logger = log.NopLogger{}
	}

	return Deps{
		Files:           app.Files,
		Config:          app.Config,
		Diagnostics:     app.Diagnostics,
		Styler:          styler,
		Logger:          logger,
		Downloader:      app.Downloader,
		Merger:          app.Merger,
		Version:         version,
		Usage:           func() string { return "" },
		DefaultSceneDir: paths.DefaultSceneDir,
		ResourcesDir:    paths.ResourcesDir,
		MkdirAll:        os.MkdirAll,
	}
}

func (d Deps) println(format string, args ...any) {
	d.Diagnostics.PrintLine(sprintf(format, args...))
}

func (d Deps) errorln(format string, args ...any) {
	d.Diagnostics.ErrorLine(sprintf(format, args...))
}
