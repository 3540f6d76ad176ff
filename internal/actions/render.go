package actions

import (
	"strconv"

	"github.com/footprint-tools/chunky/internal/dispatchers"
	"github.com/footprint-tools/chunky/internal/options"
	"github.com/footprint-tools/chunky/internal/usage"
)

// Render selects a headless render of the named scene.
func Render(st State, args []string) State {
	st.Mode = dispatchers.ModeRender
	st.Options.SceneName = args[0]
	return st
}

// Snapshot selects snapshot output for a scene, with an optional PNG path.
func Snapshot(st State, args []string) State {
	st.Mode = dispatchers.ModeSnapshot
	st.Options.SceneName = args[0]
	if len(args) == 2 {
		st.Options.ImageOutputFile = args[1]
	}
	return st
}

// MissingScene reports a scene flag given without a scene name and lists
// what the scene directory holds.
func MissingScene(deps Deps, flag string) dispatchers.ArityErrorFunc[options.Options] {
	return func(st State) State {
		deps.errorln("You must specify a scene name for the %s command", flag)
		printAvailableScenes(deps, st.Options.SceneDir, deps.Diagnostics.ErrorLine)
		return st
	}
}

func SceneDir(st State, args []string) State {
	st.Options.SceneDir = args[0]
	return st
}

func Textures(st State, args []string) State {
	st.Options = st.Options.WithResourcePacks(args[0])
	return st
}

func Force(st State, _ []string) State {
	st.Options.Force = true
	return st
}

func ReloadChunks(st State, _ []string) State {
	st.Options.ReloadChunks = true
	return st
}

// IntOption parses the single argument of flag as an integer clamped to at
// least 1 and stores it with assign.
func IntOption(deps Deps, flag string, assign func(o *options.Options, n int)) dispatchers.SuccessFunc[options.Options] {
	return func(st State, args []string) State {
		n, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fail(deps, st, usage.InvalidValue(flag, args[0]))
		}
		assign(&st.Options, max(1, int(n)))
		return st
	}
}
