package points

// Color is an RGBA tint. Channels are conventionally in [0,1] but are not validated.
type Color struct {
	R, G, B, A float32
}

// RGBA returns the channels as an array in r, g, b, a order.
func (c Color) RGBA() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Location is a world-space position.
type Location struct {
	X, Y, Z float32
}

// Vec returns the coordinates as an array in x, y, z order.
func (l Location) Vec() [3]float32 {
	return [3]float32{l.X, l.Y, l.Z}
}

// Point is one record of a dataset. Size is the circle radius.
// Highlight is parsed and kept but has no effect on rendering yet.
type Point struct {
	Color     Color
	Location  Location
	Size      float32
	Highlight bool
}

// Dataset is an ordered list of points. Order is render order only.
type Dataset struct {
	Points []Point
}

// Len returns the number of points.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Points)
}
