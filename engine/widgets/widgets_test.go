package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gui"
	"github.com/hubastard/sprig/engine/headless"
)

func TestLabelSizesToText(t *testing.T) {
	h := newHarness(t)
	var small, big *gui.Node
	h.frame(func(g *gui.Gui) {
		small = Label(g, "hello")
		Column(g, func() {
			g.CurrentScope().SetTextSize(40)
			big = Label(g, "big")
		})
	})
	assert.Equal(t, gui.Rect{W: 50, H: 20}, small.Rect())
	assert.Equal(t, gui.Rect{Y: 20, W: 60, H: 40}, big.Rect())
	assert.Equal(t, []string{"hello", "big"}, h.s.Texts())
}

func TestWrap(t *testing.T) {
	s := headless.New(100, 100)
	out, w, hgt := Wrap(s, "aa bb cc", gui.DefaultFont, 10, 30)
	assert.Equal(t, "aa bb\ncc", out)
	assert.Equal(t, float32(25), w)
	assert.Equal(t, float32(20), hgt)

	out, _, hgt = Wrap(s, "one\n\ntwo", gui.DefaultFont, 10, 100)
	assert.Equal(t, "one\n\ntwo", out)
	assert.Equal(t, float32(30), hgt)

	out, w, _ = Wrap(s, "enormous", gui.DefaultFont, 10, 5)
	assert.Equal(t, "enormous", out)
	assert.Equal(t, float32(40), w)
}

func TestButtonClick(t *testing.T) {
	h := newHarness(t)
	clicks := 0
	ui := func(g *gui.Gui) {
		if Button(g, "OK") {
			clicks++
		}
	}
	h.frame(ui)
	assert.Zero(t, clicks)
	assert.True(t, h.s.HasText("OK"))

	h.click(10, 10)
	h.frame(ui)
	assert.Equal(t, 1, clicks, "only the render pass reports clicks")

	h.frame(ui)
	assert.Equal(t, 1, clicks, "holding is not clicking")

	h.click(300, 200)
	h.frame(ui)
	assert.Equal(t, 1, clicks)
}

func TestCheckboxToggles(t *testing.T) {
	h := newHarness(t)
	on := false
	var changed bool
	ui := func(g *gui.Gui) {
		if Checkbox(g, "A", &on) {
			changed = true
		}
	}
	h.frame(ui)
	assert.False(t, on)

	h.click(5, 5)
	h.frame(ui)
	assert.True(t, on)
	assert.True(t, changed)

	changed = false
	h.frame(ui)
	assert.True(t, on)
	assert.False(t, changed)
	assert.NotEmpty(t, h.s.Filter(gui.OpStrokePath), "checked boxes draw a tick")
}

func TestDropdownSelects(t *testing.T) {
	h := newHarness(t)
	items := []string{"one", "two", "three"}
	var sel int
	var changed bool
	ui := func(g *gui.Gui) {
		sel, changed = Dropdown(g, items, gui.WithID("dd"))
	}

	h.frame(ui)
	assert.Equal(t, []string{"one"}, h.s.Texts())
	st, ok := gui.StateOf[DropdownState](h.g).Get("dd")
	require.True(t, ok)
	assert.False(t, st.Open)

	h.click(10, 10)
	h.frame(ui)
	h.frame(ui)
	assert.Equal(t, []string{"one", "one", "two", "three"}, h.s.Texts())
	order := h.g.RenderOrder()
	assert.Equal(t, "dd/popup/2", order[len(order)-1].ID(), "popup rows draw last")
	assert.Equal(t, gui.Rect{X: 0, Y: 40, W: 110, H: 120}, h.g.Bounds(h.g.Root().Children()[0].Children()[0]))

	h.move(10, 90)
	h.frame(ui)
	st, _ = gui.StateOf[DropdownState](h.g).Get("dd")
	assert.Equal(t, 1, st.Hovered)

	h.click(10, 90)
	h.frame(ui)
	assert.Equal(t, 1, sel)
	assert.True(t, changed)

	h.frame(ui)
	assert.False(t, changed)
	assert.Equal(t, []string{"two"}, h.s.Texts())
}

func TestDropdownClosesOnOutsideClick(t *testing.T) {
	h := newHarness(t)
	ui := func(g *gui.Gui) { Dropdown(g, []string{"a", "b"}, gui.WithID("dd")) }
	h.frame(ui)
	h.click(5, 5)
	h.frame(ui)
	st, _ := gui.StateOf[DropdownState](h.g).Get("dd")
	require.True(t, st.Open)

	h.click(390, 290)
	h.frame(ui)
	st, _ = gui.StateOf[DropdownState](h.g).Get("dd")
	assert.False(t, st.Open)
}

func TestDropdownPopupEscapesClip(t *testing.T) {
	h := newHarness(t)
	ui := func(g *gui.Gui) {
		Scroll(g, gui.Px(200), gui.Px(45), gui.ScrollVertical, func() {
			Dropdown(g, []string{"a", "b"}, gui.WithID("dd"))
		}, gui.WithID("scroll"))
	}
	h.frame(ui)
	h.click(5, 5)
	h.frame(ui)
	h.frame(ui)
	assert.Equal(t, []string{"a", "a", "b"}, h.s.Texts())
}

func TestTextInputEditing(t *testing.T) {
	h := newHarness(t)
	value := "hi"
	var changed bool
	ui := func(g *gui.Gui) {
		changed = TextInput(g, &value, gui.Px(200), gui.WithID("name"))
	}
	state := func() TextInputState {
		st, _ := gui.StateOf[TextInputState](h.g).Get("name")
		return st
	}

	h.frame(ui)
	assert.False(t, state().Focused)

	h.click(190, 10)
	h.frame(ui)
	assert.True(t, state().Focused)
	assert.Equal(t, 2, state().Cursor)

	h.typeText("!")
	h.frame(ui)
	assert.Equal(t, "hi!", value)
	assert.True(t, changed)

	h.key(core.KeyLeft, core.ModNone)
	h.frame(ui)
	assert.False(t, changed)
	h.key(core.KeyBackspace, core.ModNone)
	h.frame(ui)
	assert.Equal(t, "h!", value)

	h.key(core.KeyHome, core.ModNone)
	h.frame(ui)
	h.typeText("a")
	h.frame(ui)
	assert.Equal(t, "ah!", value)

	h.key(core.KeyC, core.ModCtrl)
	h.frame(ui)
	assert.Equal(t, "ah!", h.in.Clipboard())

	h.key(core.KeyEnd, core.ModNone)
	h.frame(ui)
	h.key(core.KeyV, core.ModCtrl)
	h.frame(ui)
	assert.Equal(t, "ah!ah!", value)
	assert.Equal(t, 6, state().Cursor)

	h.key(core.KeyEscape, core.ModNone)
	h.frame(ui)
	h.typeText("z")
	h.frame(ui)
	assert.Equal(t, "ah!ah!", value)
	assert.False(t, state().Focused)
}

func TestTextInputClickPlacesCursor(t *testing.T) {
	h := newHarness(t)
	value := "abcd"
	ui := func(g *gui.Gui) { TextInput(g, &value, gui.Px(200), gui.WithID("in")) }
	h.frame(ui)

	// inner text starts at x=8; "ab" ends at 28
	h.click(27, 10)
	h.frame(ui)
	st, _ := gui.StateOf[TextInputState](h.g).Get("in")
	assert.Equal(t, 2, st.Cursor)

	h.click(300, 200)
	h.frame(ui)
	st, _ = gui.StateOf[TextInputState](h.g).Get("in")
	assert.False(t, st.Focused)
}

func TestPanelAndRow(t *testing.T) {
	h := newHarness(t)
	var panel, a, b, r1, r2 *gui.Node
	h.frame(func(g *gui.Gui) {
		panel = Panel(g, gui.Auto(), gui.Auto(), func() {
			a = Label(g, "ab")
			b = Label(g, "c")
		})
		Row(g, func() {
			r1 = Label(g, "x", gui.WithID("x"))
			r2 = Label(g, "yy", gui.WithID("y"))
		})
	})
	assert.Equal(t, gui.Rect{W: 36, H: 64}, panel.Rect())
	assert.Equal(t, gui.Rect{X: 8, Y: 8, W: 20, H: 20}, a.Rect())
	assert.Equal(t, gui.Rect{X: 8, Y: 36, W: 10, H: 20}, b.Rect())
	assert.Equal(t, gui.Rect{X: 0, Y: 64, W: 10, H: 20}, r1.Rect())
	assert.Equal(t, gui.Rect{X: 18, Y: 64, W: 20, H: 20}, r2.Rect())
}

func TestScrollClipsAndWheels(t *testing.T) {
	h := newHarness(t)
	rows := []string{"r0", "r1", "r2", "r3", "r4"}
	ui := func(g *gui.Gui) {
		Scroll(g, gui.Px(100), gui.Px(50), gui.ScrollVertical, func() {
			for _, r := range rows {
				Label(g, r, gui.WithID(r))
			}
		}, gui.WithID("list"))
	}
	h.frame(ui)
	assert.Equal(t, []string{"r0", "r1", "r2"}, h.s.Texts())

	h.move(10, 10)
	h.in.Handle(core.EventScroll{Yoff: -1})
	h.frame(ui)
	assert.Equal(t, []string{"r1", "r2", "r3"}, h.s.Texts())
	st, ok := h.g.ScrollState("list")
	require.True(t, ok)
	assert.Equal(t, float32(30), st.Offset.Y)
}
