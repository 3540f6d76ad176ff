package domain

// FileStore defines the file system operations the command line needs.
type FileStore interface {
	// ReadBytes returns the full contents of the file at path.
	// A missing file yields an error matching fs.ErrNotExist.
	ReadBytes(path string) ([]byte, error)

	// WriteBytes replaces the file at path with data.
	// Either the whole content is written or the original file is left untouched.
	WriteBytes(path string, data []byte) error

	// Exists reports whether something exists at path.
	Exists(path string) bool

	// IsDirectory reports whether path names a directory.
	IsDirectory(path string) bool

	// ReadDir returns the names of the entries in the directory at path.
	ReadDir(path string) ([]string, error)
}

// ConfigProvider defines operations for reading and writing persisted settings.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// DiagnosticsSink prints user-facing lines on two separate channels.
type DiagnosticsSink interface {
	// PrintLine prints a line on the standard channel.
	PrintLine(line string)

	// ErrorLine prints a line on the error channel.
	ErrorLine(line string)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// MinecraftDownloader fetches a Minecraft client jar.
type MinecraftDownloader interface {
	Download(version, destination string) error
}

// DumpMerger merges a render dump into the dump of a scene.
// It returns the scene sample count before and after the merge.
type DumpMerger interface {
	Merge(sceneFile, dumpFile string) (before, after int, err error)
}

// Application represents the main application context with all dependencies.
type Application struct {
	Files       FileStore
	Config      ConfigProvider
	Logger      Logger
	Diagnostics DiagnosticsSink
	Styler      Styler
	Downloader  MinecraftDownloader
	Merger      DumpMerger
}
