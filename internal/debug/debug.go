package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize    = 30
	padding     = 15
	lineSpacing = 4
	label       = "fps: "
	// updateInterval: only refresh the FPS text every N frames to reduce allocations.
	updateInterval = 30
	// smoothing is the weight kept from the previous FPS sample.
	smoothing = 0.9
)

// Overlay draws the bottom-left diagnostics: a smoothed FPS counter and, while
// Status returns a non-empty string, a status line above it.
type Overlay struct {
	ShowFPS bool
	// Status is polled every frame; nil or "" hides the line.
	Status func() string

	frameCount uint32
	smoothed   float32
	fpsText    string
}

// New returns an overlay with the FPS counter enabled or not.
func New(showFPS bool) *Overlay {
	return &Overlay{ShowFPS: showFPS}
}

// Sample feeds one frame time in seconds into the smoothed FPS value and reports
// whether the displayed text changed.
func (o *Overlay) Sample(frameTime float32) bool {
	if frameTime > 0 {
		fps := 1 / frameTime
		if o.smoothed == 0 {
			o.smoothed = fps
		} else {
			o.smoothed = o.smoothed*smoothing + fps*(1-smoothing)
		}
	}
	o.frameCount++
	if o.fpsText != "" && o.frameCount%updateInterval != 0 {
		return false
	}
	o.fpsText = fmt.Sprintf("%.2f", o.smoothed)
	return true
}

// FPS returns the smoothed frames per second.
func (o *Overlay) FPS() float32 {
	return o.smoothed
}

// Draw renders the overlay in screen space. Call after the 3D pass.
func (o *Overlay) Draw() {
	y := int32(rl.GetScreenHeight()) - padding - fontSize
	if o.ShowFPS {
		o.Sample(rl.GetFrameTime())
		rl.DrawText(label, padding, y, fontSize, rl.White)
		rl.DrawText(o.fpsText, padding+rl.MeasureText(label, fontSize), y, fontSize, rl.Gold)
		y -= fontSize + lineSpacing
	}
	if o.Status == nil {
		return
	}
	if s := o.Status(); s != "" {
		rl.DrawText(s, padding, y, fontSize, rl.LightGray)
	}
}
