package scene

import (
	"point-visualizer/internal/orbit"
	"point-visualizer/internal/primitives"
	"point-visualizer/internal/viewer"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultFovy is the vertical field of view in degrees.
const DefaultFovy = 45

// Scene holds the 3D camera and its orbit controller. Update feeds mouse input to
// the controller; Draw wraps the 3D pass between BeginMode3D and EndMode3D and
// hands the camera orientation to the primitive registry so billboards face it.
type Scene struct {
	Camera   rl.Camera3D
	orbit    *orbit.Controller
	registry *primitives.Registry
}

// New returns a scene with a perspective camera at (0,0,1) looking at the origin.
// The camera does not respond to input until Spawn is called.
func New(fovy float32, registry *primitives.Registry) *Scene {
	if fovy <= 0 {
		fovy = DefaultFovy
	}
	s := &Scene{registry: registry}
	s.Camera.Position = rl.NewVector3(0, 0, 1)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = fovy
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// Spawn places the camera and attaches orbit control. It implements viewer.CameraRig.
func (s *Scene) Spawn(t viewer.Transform, opts orbit.Options) {
	s.orbit = orbit.New(t.Position, t.Target, opts)
	s.syncCamera()
}

// Update runs once per frame: the pan button drags the focus, the orbit button
// rotates around it, the wheel zooms.
func (s *Scene) Update() {
	if s.orbit == nil {
		return
	}
	opts := s.orbit.Options()
	d := rl.GetMouseDelta()
	delta := [2]float32{d.X, d.Y}

	var in orbit.Input
	switch {
	case rl.IsMouseButtonDown(mouseButton(opts.PanButton)):
		in.Pan = delta
	case rl.IsMouseButtonDown(mouseButton(opts.OrbitButton)):
		in.Orbit = delta
	}
	in.Zoom = rl.GetMouseWheelMove()

	viewport := [2]float32{float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())}
	s.orbit.Update(in, viewport)
	s.syncCamera()
}

func (s *Scene) syncCamera() {
	p, f := s.orbit.Position(), s.orbit.Focus()
	s.Camera.Position = rl.NewVector3(p[0], p[1], p[2])
	s.Camera.Target = rl.NewVector3(f[0], f[1], f[2])
}

// Draw renders the 3D pass. draw is called inside BeginMode3D/EndMode3D after the
// registry has the current view. Call after ClearBackground and before 2D overlays.
func (s *Scene) Draw(draw func()) {
	rl.BeginMode3D(s.Camera)
	if s.registry != nil {
		s.registry.SetView(s.Camera)
	}
	draw()
	rl.EndMode3D()
}

func mouseButton(b orbit.Button) rl.MouseButton {
	switch b {
	case orbit.ButtonRight:
		return rl.MouseButtonRight
	case orbit.ButtonMiddle:
		return rl.MouseButtonMiddle
	default:
		return rl.MouseButtonLeft
	}
}
