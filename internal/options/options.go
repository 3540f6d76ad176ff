// Package options holds the values collected from the command line.
package options

import (
	"path/filepath"
	"strings"

	"github.com/footprint-tools/chunky/internal/scene"
)

// Unset marks a numeric render option that was not given.
const Unset = 0

// Options is the record flag handlers fill in while the command line is parsed.
type Options struct {
	SceneDir        string
	SceneName       string
	WorldDir        string
	ImageOutputFile string

	Threads    int
	Target     int
	TileWidth  int
	SppPerPass int

	Force        bool
	ReloadChunks bool

	ResourcePacks []string
}

// New returns options rooted at sceneDir.
func New(sceneDir string) Options {
	return Options{SceneDir: sceneDir}
}

// SceneDescriptionFile returns the description file of the selected scene.
func (o Options) SceneDescriptionFile() string {
	return scene.DescriptionFile(o.SceneDir, o.SceneName)
}

// WithResourcePacks returns a copy of o with the packs of a path list appended.
// The list uses the OS path list separator.
func (o Options) WithResourcePacks(list string) Options {
	packs := make([]string, 0, len(o.ResourcePacks)+1)
	packs = append(packs, o.ResourcePacks...)
	for _, p := range filepath.SplitList(list) {
		if p = strings.TrimSpace(p); p != "" {
			packs = append(packs, p)
		}
	}
	o.ResourcePacks = packs
	return o
}
