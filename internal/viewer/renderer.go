package viewer

import (
	"errors"

	"point-visualizer/internal/asset"
	"point-visualizer/internal/points"
	"point-visualizer/internal/primitives"

	"go.uber.org/zap"
)

// RenderOptions tunes how points become primitives.
type RenderOptions struct {
	// PositionScale multiplies every location. 1 draws locations as-is.
	PositionScale float32
}

// DefaultRenderOptions draws locations unscaled.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{PositionScale: 1}
}

// Renderer is the per-frame point system. On the frame the dataset first becomes
// ready it drains it from the loader, submits one billboard circle per point and
// moves the Context to StateReady. The backend is immediate-mode, so the
// descriptors built at that moment are kept and resubmitted on every later frame.
type Renderer struct {
	vc     *Context
	out    primitives.Submitter
	log    *zap.Logger
	opts   RenderOptions
	scene  []primitives.Descriptor
	failed bool
}

// NewRenderer returns a renderer drawing vc's dataset into out. A zero
// PositionScale is treated as 1.
func NewRenderer(vc *Context, out primitives.Submitter, opts RenderOptions, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.PositionScale == 0 {
		opts.PositionScale = 1
	}
	return &Renderer{vc: vc, out: out, opts: opts, log: log}
}

// Frame runs the renderer for one frame. It never blocks on the loader.
func (r *Renderer) Frame() {
	if r.vc.State() == StateReady {
		r.submitScene()
		return
	}
	if r.failed || r.vc.handle.IsZero() {
		return
	}

	status, err := r.vc.loader.Poll(r.vc.handle)
	switch status {
	case asset.StatusNotReady:
		return
	case asset.StatusFailed:
		r.failed = true
		r.log.Error("dataset failed to load; scene stays empty",
			zap.Stringer("handle", r.vc.handle), zap.Error(err))
		return
	}

	ds, err := r.vc.loader.Take(r.vc.handle)
	if err != nil {
		if errors.Is(err, asset.ErrAlreadyConsumed) {
			r.log.Panic("dataset taken twice", zap.Stringer("handle", r.vc.handle), zap.Error(err))
		} else {
			r.log.Error("take ready dataset", zap.Stringer("handle", r.vc.handle), zap.Error(err))
		}
		r.failed = true
		return
	}

	r.scene = r.describe(ds)
	r.submitScene()
	r.vc.state.markReady()
	r.log.Info("dataset rendered", zap.Int("primitives", len(r.scene)))
}

// Primitives returns the number of primitives submitted per frame once ready.
func (r *Renderer) Primitives() int {
	return len(r.scene)
}

// Failed reports whether the dataset load failed; the scene then stays empty.
func (r *Renderer) Failed() bool {
	return r.failed
}

func (r *Renderer) describe(ds *points.Dataset) []primitives.Descriptor {
	s := r.opts.PositionScale
	out := make([]primitives.Descriptor, 0, ds.Len())
	for _, p := range ds.Points {
		pos := p.Location.Vec()
		if s != 1 {
			pos = [3]float32{pos[0] * s, pos[1] * s, pos[2] * s}
		}
		out = append(out, primitives.Descriptor{
			Shape:     primitives.ShapeCircle,
			Alignment: primitives.AlignBillboard,
			Position:  pos,
			Color:     p.Color.RGBA(),
			Radius:    p.Size,
		})
	}
	return out
}

func (r *Renderer) submitScene() {
	for _, d := range r.scene {
		r.out.Submit(d)
	}
}
