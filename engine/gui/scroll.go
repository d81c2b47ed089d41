package gui

import (
	"github.com/chewxy/math32"

	"github.com/hubastard/sprig/engine/core"
)

type ScrollAxes uint8

const (
	ScrollHorizontal ScrollAxes = 1 << iota
	ScrollVertical

	ScrollNone ScrollAxes = 0
	ScrollBoth            = ScrollHorizontal | ScrollVertical
)

func (a ScrollAxes) Has(axis Axis) bool {
	if axis == Vertical {
		return a&ScrollVertical != 0
	}
	return a&ScrollHorizontal != 0
}

type ScrollPhase int

const (
	ScrollIdle ScrollPhase = iota
	ScrollHoverThumb
	ScrollDragging
)

func (p ScrollPhase) String() string {
	switch p {
	case ScrollHoverThumb:
		return "hover-thumb"
	case ScrollDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// ScrollState is the persistent state of one scroll container, indexed by
// axis (Horizontal, Vertical). Offset is kept within [0, MaxScroll] on
// both axes after every mutation.
type ScrollState struct {
	Offset    Vec2
	Content   Vec2
	Viewport  Vec2
	Enabled   [2]bool
	NeedsBar  [2]bool
	Hover     [2]bool
	Dragging  [2]bool
	DragStart [2]float32 // pointer position along the axis
	DragFrom  [2]float32 // offset along the axis
	Thickness float32
	MinThumb  float32
}

func (s *ScrollState) MaxScroll(a Axis) float32 {
	return math32.Max(0, s.Content.Dim(a)-s.Viewport.Dim(a))
}

// Clamp pulls Offset back into [0, MaxScroll] on both axes.
func (s *ScrollState) Clamp() {
	for _, a := range [...]Axis{Horizontal, Vertical} {
		s.Offset.SetDim(a, clamp(s.Offset.Dim(a), 0, s.MaxScroll(a)))
	}
}

func (s *ScrollState) ScrollTo(a Axis, v float32) {
	s.Offset.SetDim(a, v)
	s.Clamp()
}

func (s *ScrollState) ScrollBy(a Axis, dv float32) {
	s.ScrollTo(a, s.Offset.Dim(a)+dv)
}

func (s *ScrollState) Phase(a Axis) ScrollPhase {
	switch {
	case s.Dragging[a]:
		return ScrollDragging
	case s.Hover[a]:
		return ScrollHoverThumb
	default:
		return ScrollIdle
	}
}

// Track is the scrollbar track for axis a inside the visible viewport vp.
func (s *ScrollState) Track(a Axis, vp Rect) Rect {
	t := s.Thickness
	if a == Vertical {
		h := vp.H
		if s.NeedsBar[Horizontal] {
			h -= t
		}
		return Rect{vp.Right() - t, vp.Y, t, math32.Max(0, h)}
	}
	w := vp.W
	if s.NeedsBar[Vertical] {
		w -= t
	}
	return Rect{vp.X, vp.Bottom() - t, math32.Max(0, w), t}
}

// Thumb is the draggable part of the track for axis a.
func (s *ScrollState) Thumb(a Axis, vp Rect) Rect {
	track := s.Track(a, vp)
	start, length := track.Dim(a)
	thumb := s.thumbLength(a, length)
	pos := start
	if m := s.MaxScroll(a); m > 0 {
		pos += s.Offset.Dim(a) / m * (length - thumb)
	}
	if a == Vertical {
		return Rect{track.X, pos, track.W, thumb}
	}
	return Rect{pos, track.Y, thumb, track.H}
}

func (s *ScrollState) thumbLength(a Axis, track float32) float32 {
	content := s.Content.Dim(a)
	if content <= 0 || track <= 0 {
		return 0
	}
	l := track * s.Viewport.Dim(a) / content
	return clamp(l, math32.Min(s.MinThumb, track), track)
}

// ScrollState returns the state of the scroll container with id.
func (g *Gui) ScrollState(id string) (*ScrollState, bool) {
	s, ok := g.scrolls[id]
	return s, ok
}

func (g *Gui) scrollState(id string) *ScrollState {
	if s, ok := g.scrolls[id]; ok {
		return s
	}
	s := &ScrollState{}
	g.scrolls[id] = s
	return s
}

// UpdateScroll runs the scroll state machine of container n for this
// frame. It needs final layout rectangles and so belongs to the Render pass.
func (g *Gui) UpdateScroll(n *Node, axes ScrollAxes) *ScrollState {
	st := g.scrollState(n.id)
	st.Thickness = g.theme.ScrollbarThickness
	st.MinThumb = g.theme.ScrollbarMinThumb
	st.Enabled = [2]bool{axes.Has(Horizontal), axes.Has(Vertical)}

	inner := n.Inner()
	st.Viewport = inner.Size()
	st.Content = contentSize(n, inner)
	for _, a := range [...]Axis{Horizontal, Vertical} {
		st.NeedsBar[a] = st.Enabled[a] && st.MaxScroll(a) > 0
		if !st.Enabled[a] {
			st.Offset.SetDim(a, 0)
		}
	}
	st.Clamp()

	if inner.Empty() {
		st.Hover, st.Dragging = [2]bool{}, [2]bool{}
		return st
	}

	vp := g.InnerBounds(n)
	mx, my := g.input.Mouse()
	pointer := Vec2{mx, my}
	inside := vp.Contains(mx, my)
	if clip, ok := g.clipFor(n); ok {
		inside = inside && clip.Contains(mx, my)
	}

	if wx, wy := g.input.Wheel(); inside && (wx != 0 || wy != 0) {
		g.applyWheel(st, wx, wy)
	}

	for _, a := range [...]Axis{Horizontal, Vertical} {
		g.updateDrag(st, a, vp, pointer, inside)
	}
	return st
}

func (g *Gui) applyWheel(st *ScrollState, wx, wy float32) {
	speed := g.theme.ScrollSpeed
	horizontal := g.input.Mods()&core.ModShift != 0 || !st.Enabled[Vertical]
	if horizontal && st.Enabled[Horizontal] {
		st.ScrollBy(Horizontal, -(wy+wx)*speed)
		return
	}
	if st.Enabled[Vertical] {
		st.ScrollBy(Vertical, -wy*speed)
	}
	if wx != 0 && st.Enabled[Horizontal] {
		st.ScrollBy(Horizontal, -wx*speed)
	}
}

func (g *Gui) updateDrag(st *ScrollState, a Axis, vp Rect, pointer Vec2, inside bool) {
	if !st.NeedsBar[a] {
		st.Hover[a], st.Dragging[a] = false, false
		return
	}
	if st.Dragging[a] {
		if !g.input.MouseHeld(core.MouseLeft) {
			st.Dragging[a] = false
		} else {
			_, track := st.Track(a, vp).Dim(a)
			span := track - st.thumbLength(a, track)
			if span > 0 {
				delta := pointer.Dim(a) - st.DragStart[a]
				st.ScrollTo(a, st.DragFrom[a]+delta/span*st.MaxScroll(a))
			}
		}
	}
	if st.Dragging[a] {
		st.Hover[a] = true
		return
	}

	other := a.Other()
	st.Hover[a] = inside && !st.Dragging[other] && st.Thumb(a, vp).Contains(pointer.X, pointer.Y)
	if !g.input.MousePressed(core.MouseLeft) || st.Dragging[other] {
		return
	}
	switch {
	case st.Hover[a]:
		st.Dragging[a] = true
		st.DragStart[a] = pointer.Dim(a)
		st.DragFrom[a] = st.Offset.Dim(a)
	case inside && st.Track(a, vp).Contains(pointer.X, pointer.Y):
		// page towards the pointer
		thumbPos, _ := st.Thumb(a, vp).Dim(a)
		page := st.Viewport.Dim(a)
		if pointer.Dim(a) < thumbPos {
			page = -page
		}
		st.ScrollBy(a, page)
	}
}

// contentSize is the extent of n's flow children measured from the inner
// origin, floored at the viewport.
func contentSize(n *Node, inner Rect) Vec2 {
	size := inner.Size()
	for _, c := range n.children {
		if c.float != nil {
			continue
		}
		size.X = math32.Max(size.X, c.rect.Right()-inner.X)
		size.Y = math32.Max(size.Y, c.rect.Bottom()-inner.Y)
	}
	return size
}

// BeginScroll declares a scroll container and enters it. Children declared
// until EndScroll are translated by its offset and clipped to its inner
// rectangle.
func (g *Gui) BeginScroll(w, h Size, axes ScrollAxes, opts ...NodeOption) *Node {
	return g.BeginScrollAt(Caller(1), w, h, axes, opts...)
}

func (g *Gui) BeginScrollAt(site CallSite, w, h Size, axes ScrollAxes, opts ...NodeOption) *Node {
	n := g.NodeAt(site, w, h, opts...)
	n.scrollAxes = axes
	sc := g.Enter(n)
	sc.SetIsScrollContainer(true).SetScrollContainer(n.id)
	if axes != ScrollNone {
		sc.SetClip(true)
	}
	if g.stage == StageRender && !n.detached {
		st := g.UpdateScroll(n, axes)
		sc.SetLocalScroll(st.Offset)
		sc.SetScrollOffset(g.ScrollOffset(n.parent).Add(st.Offset))
	}
	g.scrollStack = append(g.scrollStack, n)
	return n
}

// EndScroll draws the scrollbars of the innermost open container and exits
// it. Unbalanced calls are ignored.
func (g *Gui) EndScroll() {
	if len(g.scrollStack) == 0 {
		g.log.Debug("gui: EndScroll without BeginScroll", "frame", g.stats.Frame)
		return
	}
	n := g.scrollStack[len(g.scrollStack)-1]
	g.scrollStack = g.scrollStack[:len(g.scrollStack)-1]
	for g.Current() != n && len(g.stack) > 1 {
		g.Exit()
	}

	bars := g.NodeAt(CallSite{}, Auto(), Auto(), WithID(n.id+"/scrollbars"))
	bars.SetFloating(Float{})
	if g.stage == StageRender && !n.detached && !bars.detached {
		st, _ := g.ScrollState(n.id)
		g.drawScrollbars(n, bars, st)
	}
	g.Exit()
}

func (g *Gui) drawScrollbars(n, bars *Node, st *ScrollState) {
	// place the overlay so that, once shifted by n's own offset, it covers
	// n's visible viewport
	bars.rect = n.Inner().Translate(st.Offset.X, st.Offset.Y)
	g.Enter(bars).SetZIndex(g.ZIndex(n) + 1)
	g.Exit()

	vp := g.InnerBounds(n)
	if vp.Empty() {
		return
	}
	t := g.theme
	dl := bars.DrawList()
	for _, a := range [...]Axis{Horizontal, Vertical} {
		if !st.NeedsBar[a] {
			continue
		}
		dl.FillRect(st.Track(a, vp), t.ScrollbarTrack, 0)
		c := t.ScrollbarThumb
		switch st.Phase(a) {
		case ScrollHoverThumb:
			c = t.ScrollbarThumbHover
		case ScrollDragging:
			c = t.ScrollbarThumbActive
		}
		dl.FillRect(st.Thumb(a, vp), c, st.Thickness/2)
	}
}
