package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core/coretest"
	"github.com/hubastard/sprig/engine/gfx/renderer2d"
	"github.com/hubastard/sprig/engine/gui"
	"github.com/hubastard/sprig/engine/text"
)

func newCanvas(t *testing.T) (*Canvas, *coretest.Renderer) {
	t.Helper()
	rec := &coretest.Renderer{}
	r2d, err := renderer2d.New(rec, "vs", "fs", 1000)
	require.NoError(t, err)
	fonts, err := text.DefaultLibrary(16)
	require.NoError(t, err)
	t.Cleanup(fonts.Close)
	return New(rec, r2d, fonts, nil), rec
}

func TestSaveRestoreUnwindsClips(t *testing.T) {
	c, rec := newCanvas(t)
	c.Begin(200, 100)
	w, h := c.Size()
	assert.Equal(t, float32(200), w)
	assert.Equal(t, float32(100), h)

	c.Save()
	c.ClipRect(gui.Rect{W: 50, H: 50})
	c.ClipRect(gui.Rect{X: 10, Y: 10, W: 100, H: 100})
	c.FillRect(gui.Rect{W: 20, H: 20}, colors.Red, 0)
	c.Restore()
	c.Restore()
	c.End()

	assert.Equal(t, 0, c.Renderer2D().ClipDepth())
	assert.Equal(t, []string{"off", "0,0,50,50", "10,10,40,40", "0,0,50,50", "off"}, rec.Scissors)
}

func TestFillRectShapes(t *testing.T) {
	c, _ := newCanvas(t)
	c.Begin(100, 100)
	c.FillRect(gui.Rect{W: 20, H: 20}, colors.Red, 0)
	c.FillRect(gui.Rect{W: 20, H: 20}, colors.Red, 5)
	c.FillRect(gui.Rect{W: 0, H: 20}, colors.Red, 5)
	c.FillRect(gui.Rect{W: 20, H: 20}, colors.Transparent, 0)
	stats := c.Renderer2D().Stats()
	c.End()

	assert.Equal(t, 1, stats.QuadCount)
	assert.Equal(t, 4*(cornerSegments+1)-2, stats.TriangleCount)
}

func TestStrokeAndPaths(t *testing.T) {
	c, _ := newCanvas(t)
	c.Begin(100, 100)
	c.StrokeRect(gui.Rect{W: 20, H: 20}, colors.Black, 1)
	square := gui.RectPath(gui.Rect{W: 10, H: 10})
	c.StrokePath(square, colors.Black, 1)
	c.FillPath(square, colors.Black)
	stats := c.Renderer2D().Stats()
	c.End()

	assert.Equal(t, 4+4, stats.QuadCount)
	assert.Equal(t, 2, stats.TriangleCount)
}

func TestTextBuildsAtlasOnce(t *testing.T) {
	c, rec := newCanvas(t)
	c.Begin(100, 100)
	c.Text(0, 0, "ab", gui.DefaultFont, 16, colors.Black)
	c.Text(0, 20, "a b", "regular", 32, colors.Black)
	stats := c.Renderer2D().Stats()
	c.End()

	assert.Len(t, rec.Textures, 2, "white pixel plus one atlas")
	assert.Equal(t, 4, stats.QuadCount)

	w, h := c.MeasureText("ab", gui.DefaultFont, 16)
	assert.Greater(t, w, float32(0))
	assert.Greater(t, h, float32(0))
}

func TestRoundedRectOutline(t *testing.T) {
	pts := roundedRect(nil, gui.Rect{X: 0, Y: 0, W: 20, H: 10}, 5)
	require.Len(t, pts, 4*(cornerSegments+1))
	for _, p := range pts {
		assert.InDelta(t, 10, p[0], 10.001)
		assert.InDelta(t, 5, p[1], 5.001)
	}
	assert.InDelta(t, 0, pts[0][0], 1e-4)
	assert.InDelta(t, 5, pts[0][1], 1e-4)
}
