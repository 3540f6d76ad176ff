package actions

import (
	"path/filepath"

	"github.com/footprint-tools/chunky/internal/dispatchers"
	"github.com/footprint-tools/chunky/internal/options"
	"github.com/footprint-tools/chunky/internal/usage"
)

const minecraftJar = "minecraft.jar"

// DownloadMinecraft fetches a Minecraft client jar into the resources directory.
func DownloadMinecraft(deps Deps) dispatchers.SuccessFunc[options.Options] {
	return func(st State, args []string) State {
		st = st.Operation()
		version := args[0]

		dir := deps.ResourcesDir()
		if err := deps.MkdirAll(dir, 0755); err != nil || !deps.Files.IsDirectory(dir) {
			deps.errorln("Failed to create destination directory %s", dir)
			st.ExitCode = 1
			return st
		}

		deps.println("Downloading Minecraft %s...", version)
		if err := deps.Downloader.Download(version, filepath.Join(dir, minecraftJar)); err != nil {
			deps.errorln("Download failed (%s)", classify("download", err).Message)
			deps.Logger.Error("download-mc %s: %v", version, err)
			st.ExitCode = 1
			return st
		}

		deps.println("%s", deps.Styler.Success("Done!"))
		return st
	}
}

// MergeDump merges a render dump into a scene's dump after validating both paths.
func MergeDump(deps Deps) dispatchers.SuccessFunc[options.Options] {
	return func(st State, args []string) State {
		st = st.Operation()
		st.Options.SceneName = args[0]
		dumpPath := args[1]

		if !isFile(deps, dumpPath) {
			return fail(deps, st, usage.InvalidDump(dumpPath))
		}
		sceneFile := st.Options.SceneDescriptionFile()
		if !isFile(deps, sceneFile) {
			return fail(deps, st, usage.InvalidScene(st.Options.SceneName))
		}

		before, after, err := deps.Merger.Merge(sceneFile, dumpPath)
		if err != nil {
			deps.errorln("Failed to merge render dump: %s", classify("render dump", err).Message)
			deps.Logger.Error("merge-dump %s: %v", dumpPath, err)
			st.ExitCode = 1
			return st
		}

		deps.println("Original scene SPP: %d", before)
		deps.println("Current scene SPP: %d", after)
		return st
	}
}

func isFile(deps Deps, path string) bool {
	return deps.Files.Exists(path) && !deps.Files.IsDirectory(path)
}
