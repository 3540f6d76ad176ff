package actions

import (
	"github.com/footprint-tools/chunky/internal/dispatchers"
	"github.com/footprint-tools/chunky/internal/options"
	"github.com/footprint-tools/chunky/internal/scene"
)

// ShowVersion prints the program version.
func ShowVersion(deps Deps) dispatchers.SuccessFunc[options.Options] {
	return func(st State, _ []string) State {
		deps.println("Chunky %s", deps.Version)
		return st.Operation()
	}
}

// ShowHelp prints the usage page and the default scene directory.
func ShowHelp(deps Deps) dispatchers.SuccessFunc[options.Options] {
	return func(st State, _ []string) State {
		deps.Diagnostics.PrintLine(deps.Usage())
		deps.println("The default scene directory is %s", deps.DefaultSceneDir())
		return st.Operation()
	}
}

// ListScenes prints the scenes in the current scene directory.
func ListScenes(deps Deps) dispatchers.SuccessFunc[options.Options] {
	return func(st State, _ []string) State {
		printAvailableScenes(deps, st.Options.SceneDir, deps.Diagnostics.PrintLine)
		return st.Operation()
	}
}

func printAvailableScenes(deps Deps, sceneDir string, emit func(string)) {
	emit(deps.Styler.Header("Scene directory: ") + sceneDir)

	names, err := scene.Available(deps.Files, sceneDir)
	if err != nil {
		deps.Logger.Warn("list scenes in %s: %v", sceneDir, err)
	}
	if len(names) == 0 {
		emit(deps.Styler.Warning("No scenes found. Is the scene directory correct?"))
		return
	}

	emit(deps.Styler.Header("Available scenes:"))
	for _, name := range names {
		emit("\t" + name)
	}
}
