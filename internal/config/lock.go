package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// ErrLockTimeout is returned when another process holds the settings lock for too long.
var ErrLockTimeout = errors.New("config: lock timeout")

// fileLock serialises read-modify-write cycles on the settings file
// across processes. The lock is a file created with O_EXCL.
type fileLock struct {
	path    string
	timeout time.Duration
	stale   time.Duration
	poll    time.Duration
}

func newFileLock(settingsPath string) fileLock {
	return fileLock{
		path:    settingsPath + ".lock",
		timeout: 5 * time.Second,
		stale:   30 * time.Second,
		poll:    50 * time.Millisecond,
	}
}

// hold runs fn with the lock taken and removes the lock file afterwards.
func (l fileLock) hold(fn func() error) error {
	f, err := l.acquire()
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
		_ = os.Remove(l.path)
	}()
	return fn()
}

func (l fileLock) acquire() (*os.File, error) {
	deadline := time.Now().Add(l.timeout)
	for {
		// A lock left behind by a crashed process is taken over.
		if info, err := os.Stat(l.path); err == nil && time.Since(info.ModTime()) > l.stale {
			_ = os.Remove(l.path)
		}

		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return f, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, err
		}
		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}
		time.Sleep(l.poll)
	}
}
