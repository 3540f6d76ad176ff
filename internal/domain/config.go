package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Hidden      bool // Hidden keys are not written to a fresh settings file
}

// ConfigKeys defines the settings the command line itself reads.
// Other keys may still be stored with -set; they are kept as-is.
var ConfigKeys = []ConfigKey{
	{
		Name:        "scene_dir",
		Default:     "", // Set dynamically to paths.DefaultSceneDir()
		Description: "Directory used for loading and saving scenes",
	},
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
	},
	{
		Name:        "log_level",
		Default:     "info",
		Description: "Minimum log level: debug, info, warn, error",
	},
	{
		Name:        "color",
		Default:     "auto",
		Description: "Colored diagnostics: auto, always, never",
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// IsKnownConfigKey checks if a key name is one the command line reads.
func IsKnownConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}
