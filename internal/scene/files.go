package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/footprint-tools/chunky/internal/domain"
)

const sceneFileMode = 0644

// OSFileStore is the FileStore backed by the local file system.
type OSFileStore struct {
	// mode, when non-zero, is applied to every written file.
	// Otherwise an existing file keeps its mode and new files get sceneFileMode.
	mode os.FileMode
}

// FileStoreOption configures an OSFileStore.
type FileStoreOption func(*OSFileStore)

// WithFileMode makes every write leave the file with mode.
func WithFileMode(mode os.FileMode) FileStoreOption {
	return func(s *OSFileStore) {
		s.mode = mode.Perm()
	}
}

// NewOSFileStore returns a FileStore for the local file system.
func NewOSFileStore(opts ...FileStoreOption) *OSFileStore {
	s := &OSFileStore{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadBytes reads the whole file. The handle is closed on every path.
func (OSFileStore) ReadBytes(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	return io.ReadAll(f)
}

// WriteBytes writes data to a temporary file in the same directory and
// renames it over path, so a failed write leaves the original untouched.
func (s OSFileStore) WriteBytes(path string, data []byte) error {
	mode := s.mode
	if mode == 0 {
		mode = sceneFileMode
		if info, err := os.Stat(path); err == nil {
			mode = info.Mode().Perm()
		}
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := tmpFile.Chmod(mode); err != nil {
		return err
	}

	writer := bufio.NewWriter(tmpFile)
	if _, err := writer.Write(data); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}

func (OSFileStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSFileStore) IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ReadDir returns the sorted entry names of a directory.
func (OSFileStore) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

var _ domain.FileStore = (*OSFileStore)(nil)
