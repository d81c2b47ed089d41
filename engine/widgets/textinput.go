package widgets

import (
	"slices"
	"unicode"

	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gui"
)

// TextInputState is kept per input id across frames. Cursor counts runes.
type TextInputState struct {
	Focused bool
	Cursor  int
}

// TextInput edits *value in place while focused and reports whether it
// changed this frame. Pressing the mouse focuses it and moves the cursor
// to the nearest character; pressing elsewhere, Enter or Escape blurs it.
func TextInput(g *gui.Gui, value *string, width gui.Size, opts ...gui.NodeOption) bool {
	t := g.Theme()
	font, size := g.Font(nil), g.TextSize(nil)
	w, _ := g.MeasureText(*value, font, size)
	_, lineH := g.MeasureText("M", font, size)
	n := g.NodeAt(gui.Caller(1), width, gui.Auto(), opts...).
		SetPadding(gui.Pad2(t.Gap, t.Gap/2)).
		SetIntrinsic(w, lineH)
	st := gui.State(g, n.ID(), TextInputState{})
	if !g.Rendering() {
		return false
	}

	in := g.Input()
	q := g.Query(n)
	inner := g.InnerBounds(n)
	runes := []rune(*value)
	st.Cursor = min(max(st.Cursor, 0), len(runes))

	if in.MousePressed(core.MouseLeft) {
		st.Focused = q.Hover()
		if st.Focused {
			mx, _ := in.Mouse()
			st.Cursor = cursorAt(g, runes, font, size, mx-inner.X)
		}
	}
	changed := false
	if st.Focused {
		runes, changed = edit(st, in, runes)
		if changed {
			*value = string(runes)
		}
	}

	b := q.Rect()
	dl := n.DrawList()
	border := t.Border
	if st.Focused {
		border = t.Accent
	}
	dl.FillRect(b, t.Panel, t.CornerRadius)
	dl.StrokeRect(b, border, t.BorderWidth)

	dl.ClipRect(inner)
	cx, _ := g.MeasureText(string(runes[:st.Cursor]), font, size)
	// keep the cursor in view
	shift := max(0, cx-inner.W+1)
	color := g.TextColor(n)
	dl.Text(inner.X-shift, inner.Y+(inner.H-lineH)/2, string(runes), font, size, color)
	if st.Focused {
		x := inner.X - shift + cx
		dl.Line(gui.Vec2{X: x, Y: inner.Y}, gui.Vec2{X: x, Y: inner.Bottom()}, color, 1)
	}
	return changed
}

func edit(st *TextInputState, in gui.InputSource, r []rune) ([]rune, bool) {
	changed := false
	ctrl := in.Mods()&(core.ModCtrl|core.ModSuper) != 0
	switch {
	case ctrl && in.KeyPressed(core.KeyC):
		in.SetClipboard(string(r))
	case ctrl && in.KeyPressed(core.KeyX):
		in.SetClipboard(string(r))
		r, st.Cursor, changed = r[:0], 0, len(r) > 0
	case ctrl && in.KeyPressed(core.KeyV):
		paste := []rune(in.Clipboard())
		paste = slices.DeleteFunc(paste, func(c rune) bool { return !unicode.IsPrint(c) })
		r = slices.Insert(r, st.Cursor, paste...)
		st.Cursor += len(paste)
		changed = len(paste) > 0
	case ctrl && in.KeyPressed(core.KeyA):
		st.Cursor = len(r)
	}
	if !ctrl {
		for _, c := range in.Chars() {
			if !unicode.IsPrint(c) {
				continue
			}
			r = slices.Insert(r, st.Cursor, c)
			st.Cursor++
			changed = true
		}
	}

	switch {
	case in.KeyPressed(core.KeyBackspace) && st.Cursor > 0:
		r = slices.Delete(r, st.Cursor-1, st.Cursor)
		st.Cursor--
		changed = true
	case in.KeyPressed(core.KeyDelete) && st.Cursor < len(r):
		r = slices.Delete(r, st.Cursor, st.Cursor+1)
		changed = true
	case in.KeyPressed(core.KeyLeft):
		st.Cursor = max(st.Cursor-1, 0)
	case in.KeyPressed(core.KeyRight):
		st.Cursor = min(st.Cursor+1, len(r))
	case in.KeyPressed(core.KeyHome):
		st.Cursor = 0
	case in.KeyPressed(core.KeyEnd):
		st.Cursor = len(r)
	case in.KeyPressed(core.KeyEnter), in.KeyPressed(core.KeyEscape):
		st.Focused = false
	}
	return r, changed
}

// cursorAt returns the rune boundary nearest to x, measured from the
// start of the text.
func cursorAt(m gui.TextMeasurer, r []rune, font string, size, x float32) int {
	prev := float32(0)
	for i := 1; i <= len(r); i++ {
		w, _ := m.MeasureText(string(r[:i]), font, size)
		if x < (prev+w)/2 {
			return i - 1
		}
		prev = w
	}
	return len(r)
}
