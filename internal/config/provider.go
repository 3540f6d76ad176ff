package config

import "github.com/footprint-tools/chunky/internal/domain"

// Provider reads and edits the settings file through a FileStore.
type Provider struct {
	files domain.FileStore
	path  string
	lock  fileLock
}

// NewProvider returns a provider for the settings file at path.
func NewProvider(files domain.FileStore, path string) *Provider {
	return &Provider{
		files: files,
		path:  path,
		lock:  newFileLock(path),
	}
}

// Path returns the settings file location.
func (p *Provider) Path() string {
	return p.path
}

// Set stores value under key, replacing an earlier assignment in place.
func (p *Provider) Set(key, value string) error {
	return p.update(func(lines []string) []string {
		lines, _ = Set(lines, key, value)
		return lines
	})
}

// Unset removes every assignment of key.
func (p *Provider) Unset(key string) error {
	return p.update(func(lines []string) []string {
		lines, _ = Unset(lines, key)
		return lines
	})
}

func (p *Provider) update(edit func([]string) []string) error {
	return p.lock.hold(func() error {
		lines, err := p.Lines()
		if err != nil {
			return err
		}
		return p.writeLines(edit(lines))
	})
}

var _ domain.ConfigProvider = (*Provider)(nil)
