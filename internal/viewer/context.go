// Package viewer wires the point dataset into the frame loop: Setup requests the
// dataset and places the camera once, and Renderer turns the dataset into circle
// primitives when it becomes available.
package viewer

import (
	"point-visualizer/internal/asset"
	"point-visualizer/internal/points"
)

// Binding is the loader capability the viewer depends on. *asset.Loader implements it.
type Binding interface {
	RequestLoad(path string) asset.Handle
	Poll(h asset.Handle) (asset.Status, error)
	Take(h asset.Handle) (*points.Dataset, error)
}

// Context is the process-wide viewer state shared by Setup and Renderer.
// Everything the frame systems need is reachable from here; nothing is global.
type Context struct {
	loader Binding
	handle asset.Handle
	state  stateMachine
}

// NewContext returns a Context in StateLoading with no dataset requested.
func NewContext(loader Binding) *Context {
	return &Context{loader: loader}
}

// State returns the current viewer state. It is safe for overlays to read.
func (c *Context) State() State {
	return c.state.state
}

// Handle returns the dataset handle stored by Setup, or the zero Handle before Setup.
func (c *Context) Handle() asset.Handle {
	return c.handle
}
