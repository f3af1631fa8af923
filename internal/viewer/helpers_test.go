package viewer

import (
	"io/fs"
	"testing/fstest"

	"point-visualizer/internal/asset"
	"point-visualizer/internal/points"

	"github.com/google/uuid"
)

// gatedFS blocks every Open until release is closed.
type gatedFS struct {
	inner   fstest.MapFS
	release chan struct{}
}

func (g gatedFS) Open(name string) (fs.File, error) {
	<-g.release
	return g.inner.Open(name)
}

// countingBinding resolves instantly to ds (or fails Take with takeErr) and
// counts how often the renderer touches it.
type countingBinding struct {
	ds        *points.Dataset
	takeErr   error
	requested []string
	polls     int
	takes     int
}

func (b *countingBinding) RequestLoad(path string) asset.Handle {
	b.requested = append(b.requested, path)
	return asset.Handle(uuid.New())
}

func (b *countingBinding) Poll(asset.Handle) (asset.Status, error) {
	b.polls++
	return asset.StatusReady, nil
}

func (b *countingBinding) Take(asset.Handle) (*points.Dataset, error) {
	b.takes++
	if b.takeErr != nil {
		return nil, b.takeErr
	}
	if b.ds == nil {
		return &points.Dataset{}, nil
	}
	return b.ds, nil
}
