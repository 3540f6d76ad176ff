// Package scene resolves and edits scene description files.
package scene

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/footprint-tools/chunky/internal/domain"
	"github.com/footprint-tools/chunky/internal/jsonpath"
	"github.com/footprint-tools/chunky/internal/log"
)

// Extension is the suffix of a scene description file.
const Extension = ".json"

// DescriptionFile returns the description file for a scene. A name that
// already ends in Extension is used as a path; otherwise it is resolved
// against sceneDir.
func DescriptionFile(sceneDir, name string) string {
	if strings.HasSuffix(name, Extension) {
		return name
	}
	return filepath.Join(sceneDir, name+Extension)
}

// Normalize turns a scene name that points at an existing description file
// into that file's directory and bare scene name.
func Normalize(files domain.FileStore, sceneDir, name string) (string, string, bool) {
	if !strings.HasSuffix(name, Extension) {
		return sceneDir, name, false
	}
	if !files.Exists(name) || files.IsDirectory(name) {
		return sceneDir, name, false
	}

	base := filepath.Base(name)
	return filepath.Dir(name), strings.TrimSuffix(base, Extension), true
}

// Available lists the scene names found in sceneDir, sorted.
func Available(files domain.FileStore, sceneDir string) ([]string, error) {
	entries, err := files.ReadDir(sceneDir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !strings.HasSuffix(entry, Extension) || entry == Extension {
			continue
		}
		if files.IsDirectory(filepath.Join(sceneDir, entry)) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry, Extension))
	}
	sort.Strings(names)
	return names, nil
}

// Patch reads the description file at path, applies edit and writes the
// result back. Nothing is written unless every step succeeds.
func Patch(files domain.FileStore, path string, edit func(doc *jsonpath.Document) error) error {
	data, err := files.ReadBytes(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := jsonpath.Parse(data)
	if err != nil {
		return err
	}

	if err := edit(doc); err != nil {
		return err
	}

	if err := files.WriteBytes(path, doc.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.Debug("scene: patched %s", path)
	return nil
}
