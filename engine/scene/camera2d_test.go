package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenCameraCorners(t *testing.T) {
	c := NewScreen2D(800, 600)
	tests := []struct {
		x, y   float32
		cx, cy float32
	}{
		{0, 0, -1, 1},
		{800, 600, 1, -1},
		{400, 300, 0, 0},
		{800, 0, 1, 1},
	}
	for _, tt := range tests {
		cx, cy := c.Apply(tt.x, tt.y)
		assert.InDelta(t, tt.cx, cx, 1e-5)
		assert.InDelta(t, tt.cy, cy, 1e-5)
	}
}

func TestScreenCameraZoomAndResize(t *testing.T) {
	c := NewScreen2D(800, 600)
	c.SetZoom(2)
	cx, cy := c.Apply(400, 300)
	assert.InDelta(t, 1, cx, 1e-5)
	assert.InDelta(t, -1, cy, 1e-5)

	c.SetZoom(0)
	assert.Equal(t, float32(0.05), c.Zoom)

	c.SetZoom(1)
	c.SetViewportPixels(100, 100)
	cx, cy = c.Apply(100, 100)
	assert.InDelta(t, 1, cx, 1e-5)
	assert.InDelta(t, -1, cy, 1e-5)
}
