package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample_FirstFrameSetsText(t *testing.T) {
	o := New(true)
	assert.True(t, o.Sample(1.0/60))
	assert.InDelta(t, 60, o.FPS(), 1e-3)
	assert.Equal(t, "60.00", o.fpsText)
}

func TestSample_SmoothsAndThrottles(t *testing.T) {
	o := New(true)
	o.Sample(1.0 / 100)

	changed := 0
	for i := 2; i < updateInterval; i++ {
		if o.Sample(1.0 / 50) {
			changed++
		}
	}
	assert.Equal(t, 0, changed, "text is only refreshed every updateInterval frames")
	assert.Equal(t, "100.00", o.fpsText)
	assert.Less(t, o.FPS(), float32(100))
	assert.Greater(t, o.FPS(), float32(50))

	assert.True(t, o.Sample(1.0/50))
	assert.NotEqual(t, "100.00", o.fpsText)
}

func TestSample_IgnoresZeroFrameTime(t *testing.T) {
	o := New(true)
	o.Sample(0)
	assert.Equal(t, float32(0), o.FPS())
}
