package widgets

import "github.com/hubastard/sprig/engine/gui"

// Button draws a themed push button and reports a click on it.
func Button(g *gui.Gui, text string, opts ...gui.NodeOption) bool {
	t := g.Theme()
	font, size := g.Font(nil), g.TextSize(nil)
	w, h := g.MeasureText(text, font, size)
	n := g.NodeAt(gui.Caller(1), gui.Auto(), gui.Auto(), opts...).
		SetPadding(t.Padding).
		SetIntrinsic(w, h)
	if !g.Rendering() {
		return false
	}

	q := g.Query(n)
	bg := t.Widget
	switch {
	case q.Hold():
		bg = t.Active
	case q.Hover():
		bg = t.Hover
	}
	b := q.Rect()
	dl := n.DrawList()
	dl.FillRect(b, bg, t.CornerRadius)
	dl.StrokeRect(b, t.Border, t.BorderWidth)
	in := g.InnerBounds(n)
	dl.Text(in.X+(in.W-w)/2, in.Y+(in.H-h)/2, text, font, size, g.TextColor(n))
	return q.Click()
}

// Checkbox toggles *value when clicked and reports whether it did.
func Checkbox(g *gui.Gui, text string, value *bool, opts ...gui.NodeOption) bool {
	t := g.Theme()
	font, size := g.Font(nil), g.TextSize(nil)
	w, h := g.MeasureText(text, font, size)
	box := size
	n := g.NodeAt(gui.Caller(1), gui.Auto(), gui.Auto(), opts...).
		SetIntrinsic(box+t.Gap+w, max(box, h))
	if !g.Rendering() {
		return false
	}

	q := g.Query(n)
	changed := q.Click()
	if changed {
		*value = !*value
	}

	b := q.Rect()
	br := gui.Rect{X: b.X, Y: b.Y + (b.H-box)/2, W: box, H: box}
	fill := t.Widget
	switch {
	case *value:
		fill = t.Accent
	case q.Hover():
		fill = t.Hover
	}
	dl := n.DrawList()
	dl.FillRect(br, fill, t.CornerRadius)
	dl.StrokeRect(br, t.Border, t.BorderWidth)
	if *value {
		check := gui.Path{Points: []gui.Vec2{
			{X: br.X + box*0.2, Y: br.Y + box*0.5},
			{X: br.X + box*0.42, Y: br.Y + box*0.72},
			{X: br.X + box*0.8, Y: br.Y + box*0.28},
		}}
		dl.StrokePath(check, t.AccentText, max(2, box/8))
	}
	dl.Text(br.Right()+t.Gap, b.Y+(b.H-h)/2, text, font, size, g.TextColor(n))
	return changed
}
