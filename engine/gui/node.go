package gui

type SizeMode int

const (
	SizeAuto SizeMode = iota
	SizeFixed
	SizeExpand
)

func (m SizeMode) String() string {
	switch m {
	case SizeFixed:
		return "fixed"
	case SizeExpand:
		return "expand"
	default:
		return "auto"
	}
}

// Size is a declared width or height.
type Size struct {
	Mode  SizeMode
	Value float32
}

func Auto() Size            { return Size{Mode: SizeAuto} }
func Px(v float32) Size     { return Size{Mode: SizeFixed, Value: v} }
func Expand() Size          { return Size{Mode: SizeExpand} }
func (s Size) IsAuto() bool { return s.Mode == SizeAuto }

type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// Float positions a node outside the layout flow, relative to its parent's
// rectangle: origin = parent.min + parent.size*Anchor + Offset.
type Float struct {
	Anchor Vec2
	Offset Vec2
}

// Node is one rectangular element of the frame tree.
type Node struct {
	id       string
	parent   *Node
	children []*Node

	width, height Size
	direction     Axis
	padding       Insets
	gap           float32
	mainAlign     Align
	crossAlign    Align
	intrinsic     Vec2
	float         *Float
	scrollAxes    ScrollAxes

	rect     Rect
	drawList DrawList
	counter  int
	scope    Scope
	detached bool
}

func newNode(id string, parent *Node, w, h Size) *Node {
	n := &Node{id: id, parent: parent, width: w, height: h, direction: Vertical}
	n.scope.node = n
	return n
}

func (n *Node) ID() string          { return n.id }
func (n *Node) Parent() *Node       { return n.parent }
func (n *Node) Children() []*Node   { return n.children }
func (n *Node) Width() Size         { return n.width }
func (n *Node) Height() Size        { return n.height }
func (n *Node) Direction() Axis     { return n.direction }
func (n *Node) Padding() Insets     { return n.padding }
func (n *Node) Gap() float32        { return n.gap }
func (n *Node) Intrinsic() Vec2     { return n.intrinsic }
func (n *Node) Floating() bool      { return n.float != nil }
func (n *Node) Scope() *Scope       { return &n.scope }
func (n *Node) DrawList() *DrawList { return &n.drawList }

// Detached reports a node resolved during Render without a Build
// counterpart. Detached nodes are never laid out or rendered.
func (n *Node) Detached() bool { return n.detached }

// Rect is the layout rectangle in content coordinates (before any scroll
// translation). Use Gui.Bounds for the on-screen rectangle.
func (n *Node) Rect() Rect { return n.rect }

// Inner is Rect minus padding.
func (n *Node) Inner() Rect { return n.rect.Inset(n.padding) }

func (n *Node) SetSize(w, h Size) *Node {
	n.width, n.height = w, h
	return n
}

func (n *Node) SetDirection(a Axis) *Node {
	n.direction = a
	return n
}

func (n *Node) SetPadding(in Insets) *Node {
	n.padding = in
	return n
}

func (n *Node) SetGap(gap float32) *Node {
	n.gap = gap
	return n
}

func (n *Node) SetAlign(main, cross Align) *Node {
	n.mainAlign, n.crossAlign = main, cross
	return n
}

// SetIntrinsic sets the content size an auto-sized leaf measures to, e.g.
// the extent of its label.
func (n *Node) SetIntrinsic(w, h float32) *Node {
	n.intrinsic = Vec2{w, h}
	return n
}

// SetFloating takes n out of the layout flow and content-size inference.
func (n *Node) SetFloating(f Float) *Node {
	n.float = &f
	return n
}

// SetRect overrides the layout rectangle. Layout solvers use it; widgets
// may use it for floating nodes after layout.
func (n *Node) SetRect(r Rect) *Node {
	n.rect = r
	return n
}

// Walk visits n and its subtree in pre-order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Depth is the number of ancestors.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// findChild returns the child with id, trying the expected ordinal first.
func (n *Node) findChild(id string, ordinal int) *Node {
	if ordinal < len(n.children) && n.children[ordinal].id == id {
		return n.children[ordinal]
	}
	for _, c := range n.children {
		if c.id == id {
			return c
		}
	}
	return nil
}
