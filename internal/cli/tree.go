package cli

import (
	"fmt"

	"github.com/footprint-tools/chunky/internal/actions"
	"github.com/footprint-tools/chunky/internal/dispatchers"
	"github.com/footprint-tools/chunky/internal/options"
	"github.com/footprint-tools/chunky/internal/scene"
)

// Registry is the flag registry of the chunky command line.
type Registry = dispatchers.Registry[options.Options]

// Dispatcher runs the chunky command line.
type Dispatcher = dispatchers.Dispatcher[options.Options]

type spec = dispatchers.FlagSpec[options.Options]

// BuildRegistry registers every command line flag.
func BuildRegistry(deps actions.Deps) *Registry {
	reg := dispatchers.NewRegistry[options.Options]()
	deps.Usage = func() string { return reg.Usage(Page(deps.Version)) }

	for _, s := range flagSpecs(deps) {
		reg.MustRegister(s)
	}
	return reg
}

// NewDispatcher builds the registry and a dispatcher that normalizes scene
// paths and records the world directory once parsing ends.
func NewDispatcher(deps actions.Deps) *Dispatcher {
	reg := BuildRegistry(deps)
	return dispatchers.NewDispatcher(reg, deps.Diagnostics,
		dispatchers.WithUsage[options.Options](func() string { return reg.Usage(Page(deps.Version)) }),
		dispatchers.WithFinalizer(finalize(deps)),
	)
}

func finalize(deps actions.Deps) dispatchers.FinalizeFunc[options.Options] {
	return func(out dispatchers.Outcome[options.Options]) dispatchers.Outcome[options.Options] {
		if out.HasPositional {
			out.Options.WorldDir = out.Positional
		}
		if out.Options.SceneName != "" {
			dir, name, changed := scene.Normalize(deps.Files, out.Options.SceneDir, out.Options.SceneName)
			if changed {
				out.Options.SceneDir, out.Options.SceneName = dir, name
			}
		}
		return out
	}
}

func intFlag(deps actions.Deps, name, description string, assign func(o *options.Options, n int)) spec {
	return spec{
		Names:            []string{name},
		ValueHint:        "<NUM>",
		Description:      description,
		Arity:            dispatchers.Exactly(1),
		NumericPositions: []int{0},
		OnSuccess:        actions.IntOption(deps, name, assign),
	}
}

func flagSpecs(deps actions.Deps) []spec {
	return []spec{
		{
			Names:       []string{"-texture"},
			ValueHint:   "<FILE>",
			Description: "use FILE as the texture pack (must be a Zip file)",
			Arity:       dispatchers.Exactly(1),
			OnSuccess:   actions.Textures,
		},
		{
			Names:       []string{"-textures"},
			ValueHint:   "<FILES>",
			Description: "use FILES as the texture packs, separated by the system path list separator",
			Arity:       dispatchers.Exactly(1),
			OnSuccess:   actions.Textures,
		},
		{
			Names:        []string{"-render"},
			ValueHint:    "<SCENE>",
			Description:  "render the specified scene (see notes)",
			Arity:        dispatchers.Exactly(1),
			OnSuccess:    actions.Render,
			OnArityError: actions.MissingScene(deps, "-render"),
		},
		{
			Names:        []string{"-snapshot"},
			ValueHint:    "<SCENE> [PNG]",
			Description:  "create a snapshot of the specified scene",
			Arity:        dispatchers.Between(1, 2),
			OnSuccess:    actions.Snapshot,
			OnArityError: actions.MissingScene(deps, "-snapshot"),
		},
		{
			Names:       []string{"-scene-dir"},
			ValueHint:   "<DIR>",
			Description: "use the directory DIR for loading/saving scenes",
			Arity:       dispatchers.Exactly(1),
			OnSuccess:   actions.SceneDir,
		},
		intFlag(deps, "-threads", "use the specified number of threads for rendering",
			func(o *options.Options, n int) { o.Threads = n }),
		intFlag(deps, "-tile-width", "use the specified tile width for rendering",
			func(o *options.Options, n int) { o.TileWidth = n }),
		intFlag(deps, "-spp-per-pass", "use the specified samples per pixel per pass for rendering",
			func(o *options.Options, n int) { o.SppPerPass = n }),
		intFlag(deps, "-target", "override target SPP to be NUM in headless mode",
			func(o *options.Options, n int) { o.Target = n }),
		{
			Names:       []string{"-reload-chunks"},
			Description: "reload the selected chunks before rendering the scene",
			Arity:       dispatchers.Exactly(0),
			OnSuccess:   actions.ReloadChunks,
		},
		{
			Names:       []string{"-f"},
			Description: "render the scene even if loading the scene fails",
			Arity:       dispatchers.Exactly(0),
			OnSuccess:   actions.Force,
		},
		{
			Names:            []string{"-set"},
			ValueHint:        "<NAME> <VALUE> [SCENE]",
			Description:      "set a global option, or an option of SCENE, and exit",
			Arity:            dispatchers.Between(2, 3),
			NumericPositions: []int{1},
			OnSuccess:        actions.Set(deps),
		},
		{
			Names:       []string{"-reset"},
			ValueHint:   "<NAME> [SCENE]",
			Description: "reset a global option, or remove an option of SCENE, and exit",
			Arity:       dispatchers.Between(1, 2),
			OnSuccess:   actions.Reset(deps),
		},
		{
			Names:       []string{"-download-mc"},
			ValueHint:   "<VERSION>",
			Description: "download the given Minecraft version and exit",
			Arity:       dispatchers.Exactly(1),
			OnSuccess:   actions.DownloadMinecraft(deps),
		},
		{
			Names:       []string{"-list-scenes"},
			Description: "print a list of all scenes in the scene directory",
			Arity:       dispatchers.Exactly(0),
			OnSuccess:   actions.ListScenes(deps),
		},
		{
			Names:       []string{"-merge-dump"},
			ValueHint:   "<SCENE> <PATH>",
			Description: "merge a render dump into the given scene",
			Arity:       dispatchers.Exactly(2),
			OnSuccess:   actions.MergeDump(deps),
		},
		{
			Names:       []string{"-version"},
			Description: "print the version and exit",
			Arity:       dispatchers.Exactly(0),
			OnSuccess:   actions.ShowVersion(deps),
		},
		{
			Names:       []string{"-help", "-h", "-?", "--help"},
			Description: "show this text",
			Arity:       dispatchers.Exactly(0),
			OnSuccess:   actions.ShowHelp(deps),
		},
	}
}

// Page returns the fixed parts of the usage text.
func Page(version string) dispatchers.HelpPage {
	return dispatchers.HelpPage{
		Banner: []string{
			fmt.Sprintf("Chunky %s", version),
			"Chunky comes with ABSOLUTELY NO WARRANTY. This is free software,",
			"and you are welcome to redistribute it under certain conditions.",
			"See the GNU General Public License v3 for more details.",
		},
		Usage: "chunky [OPTIONS] [WORLD DIRECTORY]",
		Notes: []string{
			"<SCENE> can be either the path to a Scene Description File (" + scene.Extension + "),",
			"*OR* the name of a scene relative to the scene directory (excluding extension).",
			"If the scene name is a path to an existing file then the scene directory will be",
			"the parent directory of the Scene Description File, otherwise the scene directory",
			"can be overridden temporarily by the -scene-dir option.",
		},
	}
}
