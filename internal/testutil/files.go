package testutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/footprint-tools/chunky/internal/domain"
)

// MemFiles is an in-memory domain.FileStore.
type MemFiles struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool

	// WriteErr, when set, is returned by every WriteBytes call.
	WriteErr error
	// Writes counts successful WriteBytes calls.
	Writes int
}

// NewMemFiles returns an empty in-memory file store.
func NewMemFiles() *MemFiles {
	return &MemFiles{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// AddFile stores content at path and registers its parent directories.
func (m *MemFiles) AddFile(t *testing.T, path, content string) {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	m.files[path] = []byte(content)
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		m.dirs[dir] = true
		if dir == filepath.Dir(dir) {
			break
		}
	}
}

// AddDir registers an empty directory.
func (m *MemFiles) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[filepath.Clean(path)] = true
}

// Content returns the stored content of path, or "" when absent.
func (m *MemFiles) Content(path string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.files[filepath.Clean(path)])
}

func (m *MemFiles) ReadBytes(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemFiles) WriteBytes(path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		return m.WriteErr
	}
	if m.dirs[filepath.Clean(path)] {
		return errors.New("is a directory")
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[filepath.Clean(path)] = stored
	m.Writes++
	return nil
}

func (m *MemFiles) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	_, isFile := m.files[path]
	return isFile || m.dirs[path]
}

func (m *MemFiles) IsDirectory(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dirs[filepath.Clean(path)]
}

func (m *MemFiles) ReadDir(path string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if !m.dirs[path] {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrNotExist}
	}

	seen := make(map[string]bool)
	collect := func(p string) {
		if filepath.Dir(p) == path && p != path {
			seen[filepath.Base(p)] = true
		}
	}
	for p := range m.files {
		collect(p)
	}
	for p := range m.dirs {
		collect(p)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// HasPrefix reports whether any stored file path starts with prefix.
func (m *MemFiles) HasPrefix(prefix string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for p := range m.files {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

var _ domain.FileStore = (*MemFiles)(nil)
