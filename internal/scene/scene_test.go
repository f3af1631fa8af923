package scene

import (
	"testing"

	"point-visualizer/internal/orbit"
	"point-visualizer/internal/viewer"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

var _ viewer.CameraRig = (*Scene)(nil)

func TestNew_DefaultsFovy(t *testing.T) {
	s := New(0, nil)
	assert.Equal(t, float32(DefaultFovy), s.Camera.Fovy)
	assert.Equal(t, rl.NewVector3(0, 1, 0), s.Camera.Up)

	s = New(60, nil)
	assert.Equal(t, float32(60), s.Camera.Fovy)
}

func TestSpawn_PlacesCamera(t *testing.T) {
	s := New(DefaultFovy, nil)
	s.Spawn(viewer.Transform{
		Position: [3]float32{0, 1.5, 5},
		Target:   [3]float32{0, 0, 0},
	}, orbit.DefaultOptions())

	assert.InDelta(t, 0, s.Camera.Position.X, 1e-4)
	assert.InDelta(t, 1.5, s.Camera.Position.Y, 1e-4)
	assert.InDelta(t, 5, s.Camera.Position.Z, 1e-4)
	assert.Equal(t, rl.NewVector3(0, 0, 0), s.Camera.Target)
}

func TestMouseButton(t *testing.T) {
	assert.Equal(t, rl.MouseButtonLeft, mouseButton(orbit.ButtonLeft))
	assert.Equal(t, rl.MouseButtonRight, mouseButton(orbit.ButtonRight))
	assert.Equal(t, rl.MouseButtonMiddle, mouseButton(orbit.ButtonMiddle))
}
