package renderer2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core/coretest"
)

func newTest(t *testing.T, maxQuads int) (*Renderer2D, *coretest.Renderer) {
	t.Helper()
	rec := &coretest.Renderer{}
	rd, err := New(rec, "vs", "fs", maxQuads)
	require.NoError(t, err)
	return rd, rec
}

func TestClipStackIntersectsAndRestores(t *testing.T) {
	rd, rec := newTest(t, 100)
	rd.BeginScene([16]float32{})

	rd.DrawQuad(5, 5, 10, 10, colors.Red, 0)
	rd.PushClip(ClipRect{X: 10.5, Y: 10.2, W: 20, H: 20})
	rd.PushClip(ClipRect{X: 0, Y: 0, W: 15, H: 15})
	assert.Equal(t, 2, rd.ClipDepth())
	rd.PopClip()
	rd.PopClip()
	rd.PopClip()
	rd.EndScene()

	assert.Equal(t, []string{"off", "10,10,21,21", "10,10,5,5", "10,10,21,21", "off"}, rec.Scissors)
	assert.Equal(t, 1, rd.Stats().DrawCalls, "the pending quad flushes before the first clip")
	assert.Equal(t, 4, rd.Stats().ClipChanges)
}

func TestBatchFlushesAtCapacity(t *testing.T) {
	rd, rec := newTest(t, 2)
	rd.BeginScene([16]float32{})
	for i := 0; i < 3; i++ {
		rd.DrawQuad(0, 0, 1, 1, colors.White, 0)
	}
	rd.EndScene()

	assert.Equal(t, []int{12, 6}, rec.Indices)
	assert.Equal(t, 2, rd.Stats().DrawCalls)
	assert.Equal(t, 3, rd.Stats().QuadCount)
}

func TestConvexAndLines(t *testing.T) {
	rd, _ := newTest(t, 100)
	rd.BeginScene([16]float32{})
	rd.DrawConvex([][2]float32{{0, 0}, {10, 0}, {12, 5}, {10, 10}, {0, 10}}, colors.Blue)
	rd.DrawLine(0, 0, 0, 0, 2, colors.Blue)
	rd.DrawLine(0, 0, 10, 0, 0, colors.Blue)
	rd.DrawLine(0, 0, 10, 10, 1, colors.Blue)
	rd.EndScene()

	s := rd.Stats()
	assert.Equal(t, 3, s.TriangleCount)
	assert.Equal(t, 1, s.QuadCount)
	assert.Equal(t, 3*3+4, s.TotalVertexCount())
}

func TestEmptySceneDoesNotDraw(t *testing.T) {
	rd, rec := newTest(t, 0)
	rd.BeginScene([16]float32{})
	rd.EndScene()
	assert.Empty(t, rec.Draws)
}
