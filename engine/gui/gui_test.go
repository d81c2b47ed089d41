package gui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/sprig/engine/colors"
)

func TestIdentityStableAcrossPassesAndFrames(t *testing.T) {
	g := New()
	surf := newRecorder(400, 300)

	var build, render []*Node
	ui := func(g *Gui) {
		var got []*Node
		for i := 0; i < 3; i++ {
			got = append(got, g.Node(Px(10), Px(10)))
		}
		got = append(got, g.Node(Px(10), Px(10), WithID("named")))
		if g.Rendering() {
			render = got
		} else {
			build = got
		}
	}

	var frames [][]string
	for f := 0; f < 2; f++ {
		require.NoError(t, g.Frame(surf, ui))
		require.Len(t, render, len(build))
		var ids []string
		for i := range build {
			assert.Same(t, build[i], render[i])
			ids = append(ids, render[i].ID())
		}
		frames = append(frames, ids)
	}

	assert.Equal(t, frames[0], frames[1])
	assert.Equal(t, "named", frames[0][3])
	for i := 0; i < 3; i++ {
		id := frames[0][i]
		assert.True(t, strings.HasPrefix(id, "gui_test.go:"), id)
		assert.True(t, strings.HasSuffix(id, fmt.Sprintf("#%d", i)), id)
	}

	st := g.Stats()
	assert.Equal(t, uint64(2), st.Frame)
	assert.Equal(t, 4, st.Built)
	assert.Equal(t, 4, st.Reused)
	assert.Zero(t, st.Orphans)
}

func TestSameCallSiteUnderDifferentParents(t *testing.T) {
	g := New()
	leaf := func(g *Gui) *Node { return g.Node(Px(1), Px(1)) }

	var a, b *Node
	require.NoError(t, g.Frame(newRecorder(100, 100), func(g *Gui) {
		p1 := g.Node(Auto(), Auto())
		g.Scoped(p1, func(*Scope) { a = leaf(g) })
		p2 := g.Node(Auto(), Auto())
		g.Scoped(p2, func(*Scope) { b = leaf(g) })
	}))
	assert.NotEqual(t, a.ID(), b.ID())
	assert.True(t, strings.HasPrefix(a.ID(), a.Parent().ID()+"/"))
}

func TestRenderOnlyNodeIsDetached(t *testing.T) {
	g := New()
	var orphan *Node
	require.NoError(t, g.Frame(newRecorder(100, 100), func(g *Gui) {
		if g.Rendering() {
			orphan = g.Node(Px(10), Px(10))
			orphan.DrawList().FillRect(Rect{0, 0, 10, 10}, colors.Red, 0)
		}
	}))
	require.NotNil(t, orphan)
	assert.True(t, orphan.Detached())
	assert.Empty(t, g.Root().Children())
	assert.Equal(t, 1, g.Stats().Orphans)
	assert.Zero(t, g.Stats().DrawOps)
}

func TestScopeInheritance(t *testing.T) {
	g := New()
	g.SetStage(StageBuild)
	g.BeginFrame(newRecorder(100, 100))

	parent := g.Node(Auto(), Auto())
	g.Enter(parent).SetTextColor(colors.Red).SetTextSize(30)
	child := g.Node(Auto(), Auto())
	g.Enter(child).SetTextSize(12).SetZIndex(3)
	grand := g.Node(Auto(), Auto())
	g.Exit()
	g.Exit()
	sibling := g.Node(Auto(), Auto())

	assert.Equal(t, colors.Red, g.TextColor(child))
	assert.Equal(t, float32(12), g.TextSize(child))
	assert.Equal(t, colors.Red, g.TextColor(grand))
	assert.Equal(t, float32(12), g.TextSize(grand))
	assert.Equal(t, 3, g.ZIndex(grand))
	assert.Equal(t, float32(30), g.TextSize(parent))

	assert.Equal(t, colors.Black, g.TextColor(sibling))
	assert.Equal(t, float32(20), g.TextSize(sibling))
	assert.Equal(t, 0, g.ZIndex(sibling))
	assert.False(t, g.Clipped(sibling))
	assert.Equal(t, DefaultFont, g.Font(nil))

	// re-entering starts from an empty scope
	g.Enter(parent)
	assert.Equal(t, colors.Black, g.TextColor(grand))
	g.Exit()
}

func TestExitOnRootIsNoop(t *testing.T) {
	g := New()
	g.SetStage(StageBuild)
	g.BeginFrame(newRecorder(10, 10))

	assert.Same(t, g.Root(), g.Exit())
	assert.Same(t, g.Root(), g.Exit())
	assert.Same(t, g.Root(), g.Current())

	n := g.Node(Auto(), Auto())
	g.Enter(n)
	assert.Same(t, n, g.Exit())
	assert.Same(t, g.Root(), g.Current())
}

func TestZOrder(t *testing.T) {
	g := New()
	surf := newRecorder(100, 100)
	var n1, n2, n3 *Node
	require.NoError(t, g.Frame(surf, func(g *Gui) {
		n1 = g.Node(Px(10), Px(10))
		g.Enter(n1).SetZIndex(5)
		g.Exit()
		n2 = g.Node(Px(10), Px(10))
		g.Enter(n2).SetZIndex(-1)
		g.Exit()
		n3 = g.Node(Px(10), Px(10))
		if g.Rendering() {
			n1.DrawList().FillRect(g.Bounds(n1), colors.Red, 0)
			n2.DrawList().FillRect(g.Bounds(n2), colors.Green, 0)
			n3.DrawList().FillRect(g.Bounds(n3), colors.Blue, 0)
		}
	}))

	assert.Equal(t, []colors.Color{colors.Green, colors.Blue, colors.Red}, surf.fills)

	var order []*Node
	for _, n := range g.RenderOrder() {
		if n != g.Root() {
			order = append(order, n)
		}
	}
	assert.Equal(t, []*Node{n2, n3, n1}, order)
	assert.Zero(t, surf.depth)
}

func TestClickScenario(t *testing.T) {
	in := &fakeInput{}
	g := New(WithInput(in))
	in.press(50, 20)

	var btn, other *Node
	var btnClick, otherClick, btnHold bool
	require.NoError(t, g.Frame(newRecorder(400, 300), func(g *Gui) {
		w, h := g.MeasureText("OK", DefaultFont, 14)
		btn = g.Node(Auto(), Auto()).SetPadding(Pad2(20, 10)).SetIntrinsic(w, h)
		other = g.Node(Px(100), Px(40))
		if g.Rendering() {
			btnClick = g.Query(btn).Click()
			btnHold = g.Query(btn).Hold()
			otherClick = g.Query(other).Click()
		}
	}))

	assert.Equal(t, Rect{0, 0, 100, 40}, btn.Rect())
	assert.Equal(t, Rect{0, 40, 100, 40}, other.Rect())
	assert.True(t, btnClick)
	assert.True(t, btnHold)
	assert.False(t, otherClick)

	// held but not pressed this frame is not a click
	in.next()
	require.NoError(t, g.Frame(newRecorder(400, 300), func(g *Gui) {
		w, h := g.MeasureText("OK", DefaultFont, 14)
		btn = g.Node(Auto(), Auto()).SetPadding(Pad2(20, 10)).SetIntrinsic(w, h)
		if g.Rendering() {
			btnClick = g.Query(btn).Click()
			btnHold = g.Query(btn).Hold()
		}
	}))
	assert.False(t, btnClick)
	assert.True(t, btnHold)
}

func TestNoSurface(t *testing.T) {
	g := New()
	assert.ErrorIs(t, g.Render(), ErrNoSurface)
	assert.PanicsWithValue(t, ErrNoSurface, func() { g.MeasureText("x", DefaultFont, 10) })
	assert.ErrorIs(t, g.Frame(nil, func(*Gui) {}), ErrNoSurface)
}

func TestRenderIsolatesNodes(t *testing.T) {
	g := New()
	surf := newRecorder(100, 100)
	require.NoError(t, g.Frame(surf, func(g *Gui) {
		a := g.Node(Px(10), Px(10))
		b := g.Node(Px(10), Px(10))
		if g.Rendering() {
			a.DrawList().ClipRect(Rect{0, 0, 5, 5})
			a.DrawList().FillRect(g.Bounds(a), colors.Red, 0)
			b.DrawList().FillRect(g.Bounds(b), colors.Blue, 0)
		}
	}))
	assert.Equal(t, []string{
		"save", "clip {0 0 5 5}", "fill {0 0 10 10}", "restore",
		"save", "fill {0 10 10 10}", "restore",
	}, surf.calls)
	assert.Equal(t, 3, g.Stats().DrawOps)
}

func TestKeyedState(t *testing.T) {
	g := New()

	n := State(g, "clicks", 0)
	*n += 2
	assert.Equal(t, 2, *State(g, "clicks", 0))

	v, ok := StateOf[int](g).Get("missing")
	assert.False(t, ok)
	assert.Zero(t, v)

	type toggle struct{ On bool }
	StateOf[toggle](g).Set("t", toggle{On: true})
	got, ok := StateOf[toggle](g).Get("t")
	assert.True(t, ok)
	assert.True(t, got.On)
	assert.Equal(t, 1, StateOf[int](g).Len())

	g.ClearState()
	assert.Zero(t, StateOf[int](g).Len())
	assert.Zero(t, StateOf[toggle](g).Len())
	assert.Equal(t, 7, *State(g, "clicks", 7))
}

func TestStoreSetKeepsPointer(t *testing.T) {
	s := NewStore[string]()
	p := s.GetOrCreate("k", "a")
	s.Set("k", "b")
	assert.Equal(t, "b", *p)
	s.Delete("k")
	_, ok := s.Get("k")
	assert.False(t, ok)
}
