package widgets

import (
	"strconv"

	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gui"
)

// popupZ lifts open popups above the content around them.
const popupZ = 1000

// DropdownState is kept per dropdown id across frames.
type DropdownState struct {
	Open     bool
	Selected int
	Hovered  int // row under the pointer while open, or -1
}

// Dropdown shows items[Selected] and, while open, a floating list of all
// items drawn above everything else and outside any ancestor clip. It
// returns the selected index and whether a row click changed it.
func Dropdown(g *gui.Gui, items []string, opts ...gui.NodeOption) (int, bool) {
	t := g.Theme()
	font, size := g.Font(nil), g.TextSize(nil)
	var itemW, itemH float32
	for _, it := range items {
		w, h := g.MeasureText(it, font, size)
		itemW, itemH = max(itemW, w), max(itemH, h)
	}
	if itemH == 0 {
		_, itemH = g.MeasureText("M", font, size)
	}
	arrow := size * 0.6

	n := g.NodeAt(gui.Caller(1), gui.Auto(), gui.Auto(), opts...).
		SetPadding(t.Padding).
		SetIntrinsic(itemW+t.Gap+arrow, itemH)
	st := gui.State(g, n.ID(), DropdownState{Hovered: -1})
	if st.Selected < 0 || st.Selected >= len(items) {
		st.Selected = 0
	}

	// Open only changes at the end of the Render pass, so both passes of a
	// frame declare the same popup nodes.
	open := st.Open && len(items) > 0
	var popup *gui.Node
	var rows []*gui.Node
	if open {
		g.Enter(n)
		popup = g.NodeAt(gui.CallSite{}, gui.Px(itemW+t.Gap+arrow+t.Padding.Horizontal()), gui.Auto(),
			gui.WithID(n.ID()+"/popup")).
			SetFloating(gui.Float{Anchor: gui.Vec2{Y: 1}})
		g.Enter(popup).SetZIndex(g.ZIndex(n) + popupZ).SetClip(false)
		for i := range items {
			row := g.NodeAt(gui.CallSite{}, gui.Expand(), gui.Auto(), gui.WithID(popup.ID()+"/"+strconv.Itoa(i))).
				SetPadding(t.Padding).
				SetIntrinsic(itemW, itemH)
			rows = append(rows, row)
		}
		g.Exit()
		g.Exit()
	}
	if !g.Rendering() {
		return st.Selected, false
	}

	q := g.Query(n)
	b := q.Rect()
	dl := n.DrawList()
	bg := t.Widget
	if open || q.Hover() {
		bg = t.Hover
	}
	dl.FillRect(b, bg, t.CornerRadius)
	dl.StrokeRect(b, t.Border, t.BorderWidth)
	inner := g.InnerBounds(n)
	color := g.TextColor(n)
	if len(items) > 0 {
		dl.Text(inner.X, inner.Y+(inner.H-itemH)/2, items[st.Selected], font, size, color)
	}
	ax, cy := inner.Right()-arrow, inner.Y+inner.H/2
	dl.FillPath(gui.Path{Points: []gui.Vec2{
		{X: ax, Y: cy - arrow/4},
		{X: ax + arrow, Y: cy - arrow/4},
		{X: ax + arrow/2, Y: cy + arrow/4},
	}, Closed: true}, color)

	changed := false
	st.Hovered = -1
	in := g.Input()
	if open {
		pq := g.Query(popup)
		pdl := popup.DrawList()
		pdl.FillRect(pq.Rect(), t.Panel, t.CornerRadius)
		pdl.StrokeRect(pq.Rect(), t.Border, t.BorderWidth)
		for i, row := range rows {
			rq := g.Query(row)
			rdl := row.DrawList()
			switch {
			case rq.Hover():
				st.Hovered = i
				rdl.FillRect(rq.Rect(), t.Hover, 0)
			case i == st.Selected:
				rdl.FillRect(rq.Rect(), t.Active, 0)
			}
			ri := g.InnerBounds(row)
			rdl.Text(ri.X, ri.Y, items[i], font, size, g.TextColor(row))
			if rq.Click() {
				changed = i != st.Selected
				st.Selected = i
				st.Open = false
			}
		}
		if in.KeyPressed(core.KeyEscape) || (in.MousePressed(core.MouseLeft) && !pq.Hover() && !q.Hover()) {
			st.Open = false
		}
	}
	if q.Click() {
		st.Open = !open
	}
	return st.Selected, changed
}
