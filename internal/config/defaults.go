package config

import (
	"github.com/footprint-tools/chunky/internal/paths"
)

// Default configuration values (in code, not persisted)
var Defaults = map[string]func() string{
	"scene_dir":  func() string { return paths.DefaultSceneDir() },
	"enable_log": func() string { return "true" },
	"log_level":  func() string { return "info" },
	"color":      func() string { return "auto" },
}

func defaultValue(key string) (string, bool) {
	fn, ok := Defaults[key]
	if !ok {
		return "", false
	}
	return fn(), true
}

// Get returns the value for a config key.
// The settings file wins over the defaults. An unreadable or malformed
// file is treated as empty.
func (p *Provider) Get(key string) (string, bool) {
	if value, ok := p.stored()[key]; ok {
		return value, true
	}
	return defaultValue(key)
}

// GetAll returns the defaults overlaid with every stored setting.
func (p *Provider) GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}
	for key, value := range p.stored() {
		result[key] = value
	}
	return result, nil
}

// SceneDir returns the configured scene directory.
func (p *Provider) SceneDir() string {
	dir, _ := p.Get("scene_dir")
	if dir == "" {
		return paths.DefaultSceneDir()
	}
	return dir
}

func (p *Provider) stored() map[string]string {
	lines, err := p.Lines()
	if err != nil {
		return nil
	}
	cfg, err := Parse(lines)
	if err != nil {
		return nil
	}
	return cfg
}
