package main

import (
	"fmt"
	"os"

	"github.com/footprint-tools/chunky/internal/actions"
	"github.com/footprint-tools/chunky/internal/app"
	"github.com/footprint-tools/chunky/internal/cli"
	"github.com/footprint-tools/chunky/internal/dispatchers"
	"github.com/footprint-tools/chunky/internal/domain"
	"github.com/footprint-tools/chunky/internal/options"
	"github.com/footprint-tools/chunky/internal/paths"
	"github.com/footprint-tools/chunky/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	settings, err := app.Settings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}

	application, err := app.New(app.DefaultOptions(settings))
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	defer func() { _ = app.Close(application) }()

	return execute(application, args)
}

// execute parses args and returns the process exit code.
func execute(application *domain.Application, args []string) int {
	deps := actions.DepsFrom(application, app.Version)
	out := cli.NewDispatcher(deps).Run(args, options.New(sceneDir(application.Config)))

	application.Logger.Debug("main: mode=%s exit=%d configuration_error=%t", out.Mode, out.ExitCode, out.ConfigurationError)

	if out.ExitCode != 0 {
		return out.ExitCode
	}
	if out.ConfigurationError {
		return 1
	}
	if out.Mode == dispatchers.ModeOperation {
		return 0
	}

	if out.Mode.RequiresTextures() {
		application.Logger.Info("main: resource packs %v", out.Options.ResourcePacks)
	}
	ue := usage.Unavailable(modeName(out.Mode))
	application.Diagnostics.ErrorLine(ue.Message)
	return ue.GetExitCode()
}

func sceneDir(cfg domain.ConfigProvider) string {
	if dir, ok := cfg.Get("scene_dir"); ok && dir != "" {
		return dir
	}
	return paths.DefaultSceneDir()
}

func modeName(m dispatchers.Mode) string {
	switch m {
	case dispatchers.ModeRender:
		return "Headless rendering"
	case dispatchers.ModeSnapshot:
		return "Snapshot creation"
	default:
		return "The graphical interface"
	}
}
