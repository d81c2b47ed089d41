package gui

import "github.com/hubastard/sprig/engine/colors"

// Scope holds the cascading overrides of one node. A nil field inherits
// from the nearest ancestor that sets it, falling back to the Theme.
type Scope struct {
	node *Node

	textColor         *colors.Color
	textSize          *float32
	font              *string
	iconFont          *string
	zIndex            *int
	clip              *bool
	scrollContainer   *string
	scrollOffset      *Vec2
	localScroll       *Vec2
	isScrollContainer *bool
}

func (s *Scope) Node() *Node { return s.node }

func (s *Scope) SetTextColor(c colors.Color) *Scope {
	s.textColor = &c
	return s
}

func (s *Scope) SetTextSize(size float32) *Scope {
	s.textSize = &size
	return s
}

func (s *Scope) SetFont(name string) *Scope {
	s.font = &name
	return s
}

func (s *Scope) SetIconFont(name string) *Scope {
	s.iconFont = &name
	return s
}

func (s *Scope) SetZIndex(z int) *Scope {
	s.zIndex = &z
	return s
}

// SetClip with true clips descendants to this node's visible inner
// rectangle. false lets this node and its descendants escape every
// ancestor clip (popups, tooltips).
func (s *Scope) SetClip(clip bool) *Scope {
	s.clip = &clip
	return s
}

func (s *Scope) SetScrollContainer(id string) *Scope {
	s.scrollContainer = &id
	return s
}

// SetScrollOffset sets the cumulative offset applied to descendants.
func (s *Scope) SetScrollOffset(off Vec2) *Scope {
	s.scrollOffset = &off
	return s
}

func (s *Scope) SetLocalScroll(off Vec2) *Scope {
	s.localScroll = &off
	return s
}

func (s *Scope) SetIsScrollContainer(v bool) *Scope {
	s.isScrollContainer = &v
	return s
}

// Enter pushes n's scope, recreating it empty.
func (g *Gui) Enter(n *Node) *Scope {
	n.scope = Scope{node: n}
	g.stack = append(g.stack, n)
	return &n.scope
}

// Exit pops the current scope and returns the node it belonged to. The
// last entry is never popped; Exit then returns the current node.
func (g *Gui) Exit() *Node {
	if len(g.stack) <= 1 {
		g.log.Debug("gui: exit on root scope ignored", "frame", g.stats.Frame)
		return g.Current()
	}
	n := g.stack[len(g.stack)-1]
	g.stack[len(g.stack)-1] = nil
	g.stack = g.stack[:len(g.stack)-1]
	return n
}

// Scoped runs fn with n entered.
func (g *Gui) Scoped(n *Node, fn func(*Scope)) {
	s := g.Enter(n)
	fn(s)
	g.Exit()
}

// Current is the node on top of the scope stack.
func (g *Gui) Current() *Node {
	if len(g.stack) == 0 {
		return g.root
	}
	return g.stack[len(g.stack)-1]
}

// CurrentScope is the scope on top of the stack.
func (g *Gui) CurrentScope() *Scope {
	if n := g.Current(); n != nil {
		return &n.scope
	}
	return nil
}

func lookup[T any](n *Node, field func(*Scope) *T) (T, bool) {
	for ; n != nil; n = n.parent {
		if v := field(&n.scope); v != nil {
			return *v, true
		}
	}
	var zero T
	return zero, false
}

func (g *Gui) or(n *Node) *Node {
	if n == nil {
		return g.Current()
	}
	return n
}

// The getters below resolve for n, or for the current node when n is nil.

func (g *Gui) TextColor(n *Node) colors.Color {
	if v, ok := lookup(g.or(n), func(s *Scope) *colors.Color { return s.textColor }); ok {
		return v
	}
	return g.theme.TextColor
}

func (g *Gui) TextSize(n *Node) float32 {
	if v, ok := lookup(g.or(n), func(s *Scope) *float32 { return s.textSize }); ok {
		return v
	}
	return g.theme.TextSize
}

func (g *Gui) Font(n *Node) string {
	if v, ok := lookup(g.or(n), func(s *Scope) *string { return s.font }); ok {
		return v
	}
	return g.theme.Font
}

func (g *Gui) IconFont(n *Node) string {
	if v, ok := lookup(g.or(n), func(s *Scope) *string { return s.iconFont }); ok {
		return v
	}
	return g.theme.IconFont
}

func (g *Gui) ZIndex(n *Node) int {
	v, _ := lookup(g.or(n), func(s *Scope) *int { return s.zIndex })
	return v
}

func (g *Gui) Clipped(n *Node) bool {
	v, _ := lookup(g.or(n), func(s *Scope) *bool { return s.clip })
	return v
}

// ScrollContainer returns the id of the nearest enclosing scroll container.
func (g *Gui) ScrollContainer(n *Node) (string, bool) {
	return lookup(g.or(n), func(s *Scope) *string { return s.scrollContainer })
}

// ScrollOffset is the cumulative scroll offset applied to n's descendants.
func (g *Gui) ScrollOffset(n *Node) Vec2 {
	v, _ := lookup(g.or(n), func(s *Scope) *Vec2 { return s.scrollOffset })
	return v
}

func (g *Gui) LocalScroll(n *Node) Vec2 {
	v, _ := lookup(g.or(n), func(s *Scope) *Vec2 { return s.localScroll })
	return v
}

func (g *Gui) IsScrollContainer(n *Node) bool {
	v, _ := lookup(g.or(n), func(s *Scope) *bool { return s.isScrollContainer })
	return v
}

// Bounds is n's on-screen rectangle: its layout rectangle shifted by the
// scroll offset of its enclosing containers.
func (g *Gui) Bounds(n *Node) Rect {
	if n.parent == nil {
		return n.rect
	}
	off := g.ScrollOffset(n.parent)
	return n.rect.Translate(-off.X, -off.Y)
}

// InnerBounds is Bounds minus padding.
func (g *Gui) InnerBounds(n *Node) Rect {
	return g.Bounds(n).Inset(n.padding)
}

// clipFor intersects the visible inner rectangles of n's clipping
// ancestors. ok is false when nothing clips n.
func (g *Gui) clipFor(n *Node) (clip Rect, ok bool) {
	if n.scope.clip != nil && !*n.scope.clip {
		return Rect{}, false
	}
	for a := n.parent; a != nil; a = a.parent {
		if a.scope.clip == nil {
			continue
		}
		if !*a.scope.clip {
			break
		}
		r := g.InnerBounds(a)
		if r.Empty() {
			continue
		}
		if !ok {
			clip, ok = r, true
			continue
		}
		clip = clip.Intersect(r)
	}
	return clip, ok
}
