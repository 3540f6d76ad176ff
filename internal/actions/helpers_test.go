package actions

import (
	"errors"
	"os"
	"testing"

	"github.com/footprint-tools/chunky/internal/log"
	"github.com/footprint-tools/chunky/internal/options"
	"github.com/footprint-tools/chunky/internal/testutil"
	"github.com/footprint-tools/chunky/internal/ui/style"
)

type fakeDownloader struct {
	version, destination string
	err                  error
}

func (f *fakeDownloader) Download(version, destination string) error {
	f.version, f.destination = version, destination
	return f.err
}

type fakeMerger struct {
	sceneFile, dumpFile string
	before, after       int
	err                 error
	calls               int
}

func (f *fakeMerger) Merge(sceneFile, dumpFile string) (int, int, error) {
	f.calls++
	f.sceneFile, f.dumpFile = sceneFile, dumpFile
	return f.before, f.after, f.err
}

type testEnv struct {
	deps       Deps
	files      *testutil.MemFiles
	sink       *testutil.Sink
	config     *testutil.MemConfig
	downloader *fakeDownloader
	merger     *fakeMerger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		files:      testutil.NewMemFiles(),
		sink:       &testutil.Sink{},
		config:     testutil.NewMemConfig(nil),
		downloader: &fakeDownloader{},
		merger:     &fakeMerger{},
	}
	env.deps = Deps{
		Files:           env.files,
		Config:          env.config,
		Diagnostics:     env.sink,
		Styler:          style.NopStyler{},
		Logger:          log.NopLogger{},
		Downloader:      env.downloader,
		Merger:          env.merger,
		Version:         "2.5.0",
		Usage:           func() string { return "USAGE" },
		DefaultSceneDir: func() string { return "/home/u/.chunky/scenes" },
		ResourcesDir:    func() string { return "/home/u/.chunky/resources" },
		MkdirAll: func(path string, _ os.FileMode) error {
			env.files.AddDir(path)
			return nil
		},
	}
	return env
}

func newState() State {
	return State{Options: options.New("/scenes")}
}

var errDisk = errors.New("disk full")
