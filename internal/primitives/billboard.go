package primitives

import (
	"image/color"

	"github.com/chewxy/math32"
)

// degenerateEpsilon: below this length a cross product is treated as zero
// (camera looking straight along its up vector).
const degenerateEpsilon = 1e-6

// ViewBasis returns the unit right and up vectors of the view plane for a camera at
// eye looking at target. Billboards are spanned by these two vectors so they face
// the camera. When forward is parallel to worldUp, +X is used as right.
func ViewBasis(eye, target, worldUp [3]float32) (right, up [3]float32) {
	forward, ok := normalize(sub(target, eye))
	if !ok {
		forward = [3]float32{0, 0, -1}
	}
	right, ok = normalize(cross(forward, worldUp))
	if !ok {
		right = [3]float32{1, 0, 0}
	}
	up, _ = normalize(cross(right, forward))
	return right, up
}

// unitCircle returns segments points on the unit circle, counter-clockwise from +X.
func unitCircle(segments int) [][2]float32 {
	out := make([][2]float32, segments)
	step := 2 * math32.Pi / float32(segments)
	for i := range out {
		a := float32(i) * step
		out[i] = [2]float32{math32.Cos(a), math32.Sin(a)}
	}
	return out
}

// appendRim appends the rim vertices of a circle at center with the given radius,
// lying in the plane spanned by right and up. Consecutive rim vertices and the
// center form counter-clockwise triangles when seen from the camera.
func appendRim(dst [][3]float32, center, right, up [3]float32, radius float32, unit [][2]float32) [][3]float32 {
	for _, u := range unit {
		cx, cy := u[0]*radius, u[1]*radius
		dst = append(dst, [3]float32{
			center[0] + right[0]*cx + up[0]*cy,
			center[1] + right[1]*cx + up[1]*cy,
			center[2] + right[2]*cx + up[2]*cy,
		})
	}
	return dst
}

// toRGBA converts [0,1] float channels to 8-bit color, clamping out-of-range values.
func toRGBA(c [4]float32) color.RGBA {
	return color.RGBA{R: channel(c[0]), G: channel(c[1]), B: channel(c[2]), A: channel(c[3])}
}

func channel(v float32) uint8 {
	if math32.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v [3]float32) ([3]float32, bool) {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l < degenerateEpsilon {
		return v, false
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}, true
}
