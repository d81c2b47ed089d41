package gui

import "github.com/hubastard/sprig/engine/core"

// InputSource is the per-frame input snapshot. *core.Input implements it.
type InputSource interface {
	Mouse() (x, y float32)
	MouseDelta() (dx, dy float32)
	MousePressed(b core.MouseButton) bool
	MouseHeld(b core.MouseButton) bool
	MouseReleased(b core.MouseButton) bool
	KeyPressed(k core.Key) bool
	KeyHeld(k core.Key) bool
	KeyReleased(k core.Key) bool
	Mods() core.Mod
	Wheel() (x, y float32)
	Chars() []rune
	Clipboard() string
	SetClipboard(s string)
}

var _ InputSource = (*core.Input)(nil)

// Query answers pointer questions about one node against the current input.
// It holds no state; build a new one whenever needed.
type Query struct {
	rect    Rect
	clip    Rect
	clipped bool
	in      InputSource
}

// Query resolves n's on-screen rectangle and clip chain. Rectangles are
// final only during the Render pass.
func (g *Gui) Query(n *Node) Query {
	q := Query{rect: g.Bounds(n), in: g.input}
	q.clip, q.clipped = g.clipFor(n)
	return q
}

func (q Query) Rect() Rect { return q.rect }

func (q Query) Hover() bool {
	x, y := q.in.Mouse()
	if !q.rect.Contains(x, y) {
		return false
	}
	return !q.clipped || (!q.clip.Empty() && q.clip.Contains(x, y))
}

// Click is a primary press this frame over the node.
func (q Query) Click() bool { return q.in.MousePressed(core.MouseLeft) && q.Hover() }

func (q Query) Hold() bool       { return q.in.MouseHeld(core.MouseLeft) && q.Hover() }
func (q Query) Released() bool   { return q.in.MouseReleased(core.MouseLeft) && q.Hover() }
func (q Query) RightClick() bool { return q.in.MousePressed(core.MouseRight) && q.Hover() }

type nopInput struct{}

func (nopInput) Mouse() (float32, float32)           { return -1, -1 }
func (nopInput) MouseDelta() (float32, float32)      { return 0, 0 }
func (nopInput) MousePressed(core.MouseButton) bool  { return false }
func (nopInput) MouseHeld(core.MouseButton) bool     { return false }
func (nopInput) MouseReleased(core.MouseButton) bool { return false }
func (nopInput) KeyPressed(core.Key) bool            { return false }
func (nopInput) KeyHeld(core.Key) bool               { return false }
func (nopInput) KeyReleased(core.Key) bool           { return false }
func (nopInput) Mods() core.Mod                      { return core.ModNone }
func (nopInput) Wheel() (float32, float32)           { return 0, 0 }
func (nopInput) Chars() []rune                       { return nil }
func (nopInput) Clipboard() string                   { return "" }
func (nopInput) SetClipboard(string)                 {}
