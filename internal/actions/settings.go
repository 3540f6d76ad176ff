package actions

import (
	"path/filepath"
	"strconv"

	"github.com/footprint-tools/chunky/internal/dispatchers"
	"github.com/footprint-tools/chunky/internal/domain"
	"github.com/footprint-tools/chunky/internal/jsonpath"
	"github.com/footprint-tools/chunky/internal/options"
	"github.com/footprint-tools/chunky/internal/scene"
)

// Set writes a value. With a scene argument the value is stored at a dot-path
// in the scene description; otherwise it becomes a global setting.
func Set(deps Deps) dispatchers.SuccessFunc[options.Options] {
	return func(st State, args []string) State {
		st = st.Operation()
		name, value := args[0], args[1]

		if len(args) == 3 {
			st.Options.SceneName = args[2]
			file := st.Options.SceneDescriptionFile()
			deps.println("%s <- %s", name, value)

			err := scene.Patch(deps.Files, file, func(doc *jsonpath.Document) error {
				return doc.Set(name, value)
			})
			if err != nil {
				return report(deps, st, "Scene Description File", err)
			}
			deps.println("%s %s", deps.Styler.Success("Updated scene"), absPath(file))
			return st
		}

		// Integers are stored in canonical form.
		if n, err := strconv.ParseInt(value, 10, 32); err == nil {
			value = strconv.FormatInt(n, 10)
		}
		if !domain.IsKnownConfigKey(name) {
			deps.Logger.Debug("settings: %s is stored but not read by chunky", name)
		}
		if err := deps.Config.Set(name, value); err != nil {
			return report(deps, st, "settings", err)
		}
		deps.Logger.Info("settings: %s=%s", name, value)
		return st
	}
}

// Reset removes a value, from a scene description when a scene is given and
// from the global settings otherwise.
func Reset(deps Deps) dispatchers.SuccessFunc[options.Options] {
	return func(st State, args []string) State {
		st = st.Operation()
		name := args[0]

		if len(args) == 2 {
			st.Options.SceneName = args[1]
			file := st.Options.SceneDescriptionFile()
			deps.println("- %s", name)

			err := scene.Patch(deps.Files, file, func(doc *jsonpath.Document) error {
				return doc.Remove(name)
			})
			if err != nil {
				return report(deps, st, "Scene Description File", err)
			}
			deps.println("%s %s", deps.Styler.Success("Updated scene"), absPath(file))
			return st
		}

		if err := deps.Config.Unset(name); err != nil {
			return report(deps, st, "settings", err)
		}
		deps.Logger.Info("settings: reset %s", name)
		return st
	}
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
