package viewer

import (
	"point-visualizer/internal/orbit"

	"go.uber.org/zap"
)

// DefaultDatasetPath is the dataset requested when none is configured.
const DefaultDatasetPath = "tsne_p100_i1000.points.json"

// Transform places the camera: it sits at Position and looks at Target.
type Transform struct {
	Position [3]float32
	Target   [3]float32
}

// CameraRig is the host camera capability: it creates the viewport camera with
// orbit control attached.
type CameraRig interface {
	Spawn(t Transform, opts orbit.Options)
}

// SetupConfig is everything Setup needs; none of it depends on dataset content.
type SetupConfig struct {
	DatasetPath string
	Camera      Transform
	Orbit       orbit.Options
}

// DefaultSetupConfig places the camera above and behind the origin and pans with
// the middle mouse button.
func DefaultSetupConfig() SetupConfig {
	return SetupConfig{
		DatasetPath: DefaultDatasetPath,
		Camera: Transform{
			Position: [3]float32{0, 1.5, 5},
		},
		Orbit: orbit.DefaultOptions(),
	}
}

// Setup runs once before the first frame. It requests the dataset, stores the handle
// in vc, then spawns the camera. A bad path is not reported here; it surfaces as a
// failed Poll in the renderer. Calling Setup again on the same Context does nothing.
func Setup(vc *Context, cfg SetupConfig, rig CameraRig, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	if !vc.handle.IsZero() {
		log.Warn("setup already ran; ignoring", zap.Stringer("handle", vc.handle))
		return
	}
	vc.handle = vc.loader.RequestLoad(cfg.DatasetPath)
	rig.Spawn(cfg.Camera, cfg.Orbit)
	log.Info("scene initialized",
		zap.String("dataset", cfg.DatasetPath),
		zap.Stringer("handle", vc.handle),
		zap.Float32s("camera", cfg.Camera.Position[:]),
		zap.Stringer("orbit_button", cfg.Orbit.OrbitButton),
		zap.Stringer("pan_button", cfg.Orbit.PanButton),
		zap.Float32("smoothness", cfg.Orbit.Smoothness))
}
