package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultCircleSegments is the triangle count of a circle fan when none is configured.
const DefaultCircleSegments = 24

// minCircleSegments keeps the fan a visible polygon.
const minCircleSegments = 3

// Registry is the raylib Submitter. It draws circles as triangle fans in the
// camera's view plane. The unit circle table is built lazily on first Submit;
// the rim buffer is reused across calls to avoid per-point allocations.
type Registry struct {
	segments int
	unit     [][2]float32
	rim      [][3]float32

	right [3]float32 // view-plane basis, set each frame by SetView
	up    [3]float32
	drawn int
}

// NewRegistry returns a registry drawing circles with the given number of segments.
// Values below 3 fall back to DefaultCircleSegments.
func NewRegistry(segments int) *Registry {
	if segments < minCircleSegments {
		segments = DefaultCircleSegments
	}
	return &Registry{
		segments: segments,
		right:    [3]float32{1, 0, 0},
		up:       [3]float32{0, 1, 0},
	}
}

// SetView captures the camera orientation for this frame. Call once per frame
// before any Submit so billboards face the active camera.
func (r *Registry) SetView(cam rl.Camera3D) {
	r.right, r.up = ViewBasis(vec(cam.Position), vec(cam.Target), vec(cam.Up))
	r.drawn = 0
}

// Drawn returns the number of primitives drawn since the last SetView.
func (r *Registry) Drawn() int {
	return r.drawn
}

func (r *Registry) ensureCircle() {
	if r.unit != nil {
		return
	}
	r.unit = unitCircle(r.segments)
	r.rim = make([][3]float32, 0, r.segments)
}

// Submit draws d. Must be called between BeginMode3D and EndMode3D.
// Unknown shapes and alignments are skipped.
func (r *Registry) Submit(d Descriptor) {
	if d.Shape != ShapeCircle || d.Alignment != AlignBillboard {
		return
	}
	r.ensureCircle()
	r.rim = appendRim(r.rim[:0], d.Position, r.right, r.up, d.Radius, r.unit)

	col := toRGBA(d.Color)
	center := rl.NewVector3(d.Position[0], d.Position[1], d.Position[2])
	n := len(r.rim)
	for i := 0; i < n; i++ {
		a, b := r.rim[i], r.rim[(i+1)%n]
		rl.DrawTriangle3D(center, rl.NewVector3(a[0], a[1], a[2]), rl.NewVector3(b[0], b[1], b[2]), col)
	}
	r.drawn++
}

func vec(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
