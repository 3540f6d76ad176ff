package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "chunky"

// AppDataDir returns the application data directory for settings and logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory.
// This is where application-managed data (like exports) should live.
//   - macOS: ~/Library/Application Support/chunky
//   - Linux: $XDG_DATA_HOME/chunky or ~/.local/share/chunky
//   - Windows: %LOCALAPPDATA%\chunky
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		// macOS: ~/Library/Application Support
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		// Windows: %LOCALAPPDATA%
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		// Linux/Unix: $XDG_DATA_HOME or ~/.local/share
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// DefaultSceneDir returns the scene directory used when no scene_dir setting exists.
//   - macOS: ~/Library/Application Support/chunky/scenes
//   - Linux: $XDG_DATA_HOME/chunky/scenes or ~/.local/share/chunky/scenes
//   - Windows: %LOCALAPPDATA%\chunky\scenes
func DefaultSceneDir() string {
	return filepath.Join(AppLocalDataDir(), "scenes")
}

// ResourcesDir returns the directory downloaded Minecraft jars are stored in.
func ResourcesDir() string {
	return filepath.Join(AppDataDir(), "resources")
}

// ConfigFilePath returns the path of the persisted settings file, ~/.chunkyrc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".chunkyrc"), nil
}

// LogFilePath returns the path to the application log file.
// Logs are stored in the application data directory:
//   - macOS: ~/Library/Application Support/chunky/chunky.log
//   - Linux: $XDG_CONFIG_HOME/chunky/chunky.log or ~/.config/chunky/chunky.log
//   - Windows: %AppData%\chunky\chunky.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "chunky.log")
}
