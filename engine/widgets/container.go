package widgets

import "github.com/hubastard/sprig/engine/gui"

// Panel draws a themed card behind the nodes body declares. Children stack
// vertically with the theme gap.
func Panel(g *gui.Gui, w, h gui.Size, body func(), opts ...gui.NodeOption) *gui.Node {
	t := g.Theme()
	n := g.NodeAt(gui.Caller(1), w, h, opts...).
		SetPadding(gui.Pad(t.Gap)).
		SetGap(t.Gap)
	g.Enter(n)
	if g.Rendering() {
		b := g.Bounds(n)
		dl := n.DrawList()
		dl.FillRect(b, t.Panel, t.CornerRadius)
		dl.StrokeRect(b, t.Border, t.BorderWidth)
	}
	body()
	g.Exit()
	return n
}

// Row lays body's nodes out left to right, vertically centered.
func Row(g *gui.Gui, body func(), opts ...gui.NodeOption) *gui.Node {
	return stack(g, gui.Caller(1), gui.Horizontal, body, opts)
}

// Column lays body's nodes out top to bottom.
func Column(g *gui.Gui, body func(), opts ...gui.NodeOption) *gui.Node {
	return stack(g, gui.Caller(1), gui.Vertical, body, opts)
}

func stack(g *gui.Gui, site gui.CallSite, dir gui.Axis, body func(), opts []gui.NodeOption) *gui.Node {
	cross := gui.AlignStart
	if dir == gui.Horizontal {
		cross = gui.AlignCenter
	}
	n := g.NodeAt(site, gui.Auto(), gui.Auto(), opts...).
		SetDirection(dir).
		SetGap(g.Theme().Gap).
		SetAlign(gui.AlignStart, cross)
	g.Enter(n)
	body()
	g.Exit()
	return n
}

// Scroll wraps body in a scroll container with scrollbars on axes.
func Scroll(g *gui.Gui, w, h gui.Size, axes gui.ScrollAxes, body func(), opts ...gui.NodeOption) *gui.Node {
	n := g.BeginScrollAt(gui.Caller(1), w, h, axes, opts...)
	body()
	g.EndScroll()
	return n
}
