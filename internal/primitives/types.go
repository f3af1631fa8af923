package primitives

// Shape selects the primitive drawn for a Descriptor.
type Shape int

const (
	// ShapeCircle is a filled disc of Descriptor.Radius.
	ShapeCircle Shape = iota + 1
)

// Alignment selects how a flat primitive is oriented in 3D.
type Alignment int

const (
	// AlignBillboard keeps the primitive parallel to the camera's view plane.
	// The orientation is recomputed by the backend every frame and never stored.
	AlignBillboard Alignment = iota + 1
)

// Descriptor fully describes one primitive. It carries no hidden state, so
// submitting descriptors in any order yields the same result.
type Descriptor struct {
	Shape     Shape
	Alignment Alignment
	Position  [3]float32 // world space
	Color     [4]float32 // RGBA in [0,1]
	Radius    float32
}

// Submitter accepts primitives for the current frame.
type Submitter interface {
	Submit(d Descriptor)
}

// Recorder is a Submitter that keeps everything it is given, in order.
type Recorder struct {
	Submitted []Descriptor
}

func (r *Recorder) Submit(d Descriptor) {
	r.Submitted = append(r.Submitted, d)
}

// Reset forgets recorded primitives, e.g. between frames.
func (r *Recorder) Reset() {
	r.Submitted = r.Submitted[:0]
}
