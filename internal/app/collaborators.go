package app

import (
	"github.com/footprint-tools/chunky/internal/domain"
	"github.com/footprint-tools/chunky/internal/usage"
)

// unavailableDownloader stands in for the Minecraft download client,
// which is not part of this build.
type unavailableDownloader struct{}

func (unavailableDownloader) Download(_, _ string) error {
	return usage.Unavailable("Minecraft download")
}

// unavailableMerger stands in for the render dump merger.
type unavailableMerger struct{}

func (unavailableMerger) Merge(_, _ string) (int, int, error) {
	return 0, 0, usage.Unavailable("Render dump merging")
}

var (
	_ domain.MinecraftDownloader = unavailableDownloader{}
	_ domain.DumpMerger          = unavailableMerger{}
)
