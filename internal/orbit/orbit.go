// Package orbit implements a pan/orbit/zoom camera controller around a focus point.
// It is pure math; the scene package feeds it mouse input and copies the result
// into a raylib camera.
package orbit

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Button is a mouse button that can trigger orbit or pan.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// ParseButton accepts "left", "right" or "middle" (case-insensitive).
func ParseButton(s string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return ButtonLeft, nil
	case "right":
		return ButtonRight, nil
	case "middle":
		return ButtonMiddle, nil
	}
	return 0, fmt.Errorf("unknown mouse button: %q", s)
}

// Options configures a Controller.
// Smoothness in [0,MaxSmoothness] is the fraction of the remaining motion kept for
// the next frame: 0 follows input immediately, values near the cap glide.
type Options struct {
	OrbitButton Button
	PanButton   Button
	Smoothness  float32
}

// DefaultOptions orbits with the left button and pans with the middle one.
func DefaultOptions() Options {
	return Options{OrbitButton: ButtonLeft, PanButton: ButtonMiddle}
}

// MaxSmoothness is the largest usable Smoothness. At 1 the camera would never move.
const MaxSmoothness = 0.99

const (
	minRadius     = 0.05
	zoomStep      = 0.2 // radius fraction per wheel notch
	maxPitch      = math32.Pi/2 - 0.01
	fallbackRange = 1
)

// Input is one frame of pointer input. Orbit and Pan are pointer deltas in pixels
// while the respective button is held; Zoom is wheel movement (positive zooms in).
type Input struct {
	Orbit [2]float32
	Pan   [2]float32
	Zoom  float32
}

type pose struct {
	focus  [3]float32
	yaw    float32
	pitch  float32
	radius float32
}

// Controller tracks a target pose driven by input and a current pose that eases
// toward it.
type Controller struct {
	opts    Options
	target  pose
	current pose
}

// New returns a controller whose camera sits at position looking at focus.
func New(position, focus [3]float32, opts Options) *Controller {
	opts.Smoothness = clamp(opts.Smoothness, 0, MaxSmoothness)
	p := poseFrom(position, focus)
	return &Controller{opts: opts, target: p, current: p}
}

func poseFrom(position, focus [3]float32) pose {
	ox, oy, oz := position[0]-focus[0], position[1]-focus[1], position[2]-focus[2]
	r := math32.Sqrt(ox*ox + oy*oy + oz*oz)
	if r < minRadius {
		return pose{focus: focus, radius: fallbackRange}
	}
	return pose{
		focus:  focus,
		yaw:    math32.Atan2(ox, oz),
		pitch:  clamp(math32.Asin(oy/r), -maxPitch, maxPitch),
		radius: r,
	}
}

// Options returns the controller's configuration.
func (c *Controller) Options() Options {
	return c.opts
}

// Update applies one frame of input. viewport is the window size in pixels.
func (c *Controller) Update(in Input, viewport [2]float32) {
	w, h := viewport[0], viewport[1]
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	t := &c.target

	if in.Orbit != [2]float32{} {
		t.yaw -= in.Orbit[0] / w * 2 * math32.Pi
		t.pitch = clamp(t.pitch+in.Orbit[1]/h*math32.Pi, -maxPitch, maxPitch)
	}
	if in.Pan != [2]float32{} {
		right, up := basis(t.yaw, t.pitch)
		k := t.radius / h
		for i := 0; i < 3; i++ {
			t.focus[i] += -right[i]*in.Pan[0]*k + up[i]*in.Pan[1]*k
		}
	}
	if in.Zoom != 0 {
		t.radius = math32.Max(minRadius, t.radius*(1-in.Zoom*zoomStep))
	}

	f := 1 - c.opts.Smoothness
	cur := &c.current
	cur.yaw += (t.yaw - cur.yaw) * f
	cur.pitch += (t.pitch - cur.pitch) * f
	cur.radius += (t.radius - cur.radius) * f
	for i := 0; i < 3; i++ {
		cur.focus[i] += (t.focus[i] - cur.focus[i]) * f
	}
}

// Position returns the current camera position.
func (c *Controller) Position() [3]float32 {
	p := c.current
	cp := math32.Cos(p.pitch)
	return [3]float32{
		p.focus[0] + p.radius*cp*math32.Sin(p.yaw),
		p.focus[1] + p.radius*math32.Sin(p.pitch),
		p.focus[2] + p.radius*cp*math32.Cos(p.yaw),
	}
}

// Focus returns the point the camera currently looks at.
func (c *Controller) Focus() [3]float32 {
	return c.current.focus
}

// basis returns the camera right and up vectors for a yaw/pitch pose.
func basis(yaw, pitch float32) (right, up [3]float32) {
	sy, cy := math32.Sin(yaw), math32.Cos(yaw)
	sp, cp := math32.Sin(pitch), math32.Cos(pitch)
	right = [3]float32{cy, 0, -sy}
	up = [3]float32{-sp * sy, cp, -sp * cy}
	return right, up
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
