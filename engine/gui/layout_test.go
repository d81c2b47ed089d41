package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// layoutOnce runs a Build pass and the layout solver only.
func layoutOnce(w, h float32, fn func(g *Gui)) *Gui {
	g := New()
	g.SetStage(StageBuild)
	g.BeginFrame(newRecorder(w, h))
	fn(g)
	g.CalculateLayout()
	g.EndFrame()
	return g
}

func TestFlexExpandSharesFreeSpace(t *testing.T) {
	var a, b, c *Node
	layoutOnce(400, 300, func(g *Gui) {
		row := g.Node(Px(300), Px(50)).SetDirection(Horizontal).SetPadding(Pad(10)).SetGap(10)
		g.Scoped(row, func(*Scope) {
			a = g.Node(Px(50), Auto())
			b = g.Node(Expand(), Auto())
			c = g.Node(Expand(), Auto())
		})
	})
	assert.Equal(t, Rect{10, 10, 50, 0}, a.Rect())
	assert.Equal(t, Rect{70, 10, 105, 0}, b.Rect())
	assert.Equal(t, Rect{185, 10, 105, 0}, c.Rect())
}

func TestFlexAlignment(t *testing.T) {
	tests := []struct {
		name        string
		main, cross Align
		want        Rect
	}{
		{"start", AlignStart, AlignStart, Rect{0, 0, 20, 20}},
		{"center", AlignCenter, AlignCenter, Rect{40, 40, 20, 20}},
		{"end", AlignEnd, AlignEnd, Rect{80, 80, 20, 20}},
		{"stretch", AlignStart, AlignStretch, Rect{0, 0, 100, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var child *Node
			layoutOnce(400, 300, func(g *Gui) {
				box := g.Node(Px(100), Px(100)).SetAlign(tt.main, tt.cross)
				g.Scoped(box, func(*Scope) {
					w := Px(20)
					if tt.cross == AlignStretch {
						w = Auto()
					}
					child = g.Node(w, Px(20))
				})
			})
			assert.Equal(t, tt.want, child.Rect())
		})
	}
}

func TestFlexAutoFitsChildren(t *testing.T) {
	var col, float *Node
	layoutOnce(400, 300, func(g *Gui) {
		col = g.Node(Auto(), Auto()).SetPadding(Pad(5)).SetGap(4)
		g.Scoped(col, func(*Scope) {
			g.Node(Px(30), Px(10))
			g.Node(Px(50), Px(10))
			float = g.Node(Px(100), Px(100)).SetFloating(Float{Anchor: Vec2{0, 1}, Offset: Vec2{5, 0}})
		})
	})
	assert.Equal(t, Rect{0, 0, 60, 34}, col.Rect())
	assert.Equal(t, Rect{5, 34, 100, 100}, float.Rect())
}

func TestFlexRootFillsViewport(t *testing.T) {
	var fill *Node
	g := layoutOnce(640, 480, func(g *Gui) {
		fill = g.Node(Expand(), Expand())
	})
	assert.Equal(t, Rect{0, 0, 640, 480}, g.Root().Rect())
	assert.Equal(t, Rect{0, 0, 640, 480}, fill.Rect())
}

func TestFlexNestedExpand(t *testing.T) {
	var inner *Node
	layoutOnce(200, 100, func(g *Gui) {
		outer := g.Node(Expand(), Expand()).SetPadding(Pad(10))
		g.Scoped(outer, func(*Scope) {
			inner = g.Node(Expand(), Expand())
		})
	})
	assert.Equal(t, Rect{10, 10, 180, 80}, inner.Rect())
}
