package gui

import (
	"math"

	"github.com/chewxy/math32"
)

// LayoutSolver assigns a layout rectangle to every node of the tree.
type LayoutSolver interface {
	Solve(root *Node, viewport Rect)
}

// FlexSolver is a single-line flex layout: each node stacks its flow
// children along its Direction, honoring padding, gap, main and cross
// alignment. Auto sizes fit their content, Fixed sizes are exact and
// Expand sizes share the free space of the parent. Scroll axes are
// unbounded for children, so Expand along a scroll axis fits content.
type FlexSolver struct{}

type constraints struct {
	min, max Vec2
}

const unbounded = float32(math.MaxFloat32)

func (f FlexSolver) Solve(root *Node, viewport Rect) {
	size := viewport.Size()
	f.measure(root, constraints{min: size, max: size})
	f.place(root, viewport.X, viewport.Y)
}

func resolveAxis(s Size, content, min, max float32) float32 {
	switch s.Mode {
	case SizeFixed:
		return clamp(s.Value, min, max)
	case SizeExpand:
		if max >= unbounded {
			return math32.Max(content, min)
		}
		return max
	default:
		return clamp(content, min, max)
	}
}

func axisSize(n *Node, a Axis) Size {
	if a == Vertical {
		return n.height
	}
	return n.width
}

// measure resolves the size of n and its subtree within c.
func (f FlexSolver) measure(n *Node, c constraints) Vec2 {
	pad := n.padding
	main, cross := n.direction, n.direction.Other()

	innerMax := Vec2{
		math32.Max(0, c.max.X-pad.Horizontal()),
		math32.Max(0, c.max.Y-pad.Vertical()),
	}
	if c.max.X >= unbounded || n.scrollAxes.Has(Horizontal) {
		innerMax.X = unbounded
	}
	if c.max.Y >= unbounded || n.scrollAxes.Has(Vertical) {
		innerMax.Y = unbounded
	}

	var fixedMain, expandMain, maxCross float32
	var expandCount, flowCount int
	for _, child := range n.children {
		if child.float != nil {
			// floating nodes size to content, unconstrained
			f.measure(child, constraints{max: Vec2{unbounded, unbounded}})
			continue
		}
		flowCount++
		cc := constraints{max: innerMax}
		// measure expanding axes at their natural size first
		if child.width.Mode == SizeExpand {
			cc.max.X = unbounded
		}
		if child.height.Mode == SizeExpand {
			cc.max.Y = unbounded
		}
		size := f.measure(child, cc)
		if axisSize(child, main).Mode == SizeExpand {
			expandMain += size.Dim(main)
			expandCount++
		} else {
			fixedMain += size.Dim(main)
		}
		maxCross = math32.Max(maxCross, size.Dim(cross))
	}

	var gapTotal float32
	if flowCount > 1 {
		gapTotal = n.gap * float32(flowCount-1)
	}
	var content Vec2
	content.SetDim(main, fixedMain+expandMain+gapTotal)
	content.SetDim(cross, maxCross)
	content.X = math32.Max(content.X, n.intrinsic.X)
	content.Y = math32.Max(content.Y, n.intrinsic.Y)

	outer := Vec2{
		resolveAxis(n.width, content.X+pad.Horizontal(), c.min.X, c.max.X),
		resolveAxis(n.height, content.Y+pad.Vertical(), c.min.Y, c.max.Y),
	}
	n.rect.W, n.rect.H = outer.X, outer.Y
	inner := n.Inner().Size()
	innerMain, innerCross := inner.Dim(main), inner.Dim(cross)

	var share float32
	if expandCount > 0 && !n.scrollAxes.Has(main) {
		share = math32.Max(0, innerMain-(fixedMain+expandMain+gapTotal)) / float32(expandCount)
	}

	for _, child := range n.children {
		if child.float != nil {
			continue
		}
		natural := child.rect.Size()
		final := natural
		if axisSize(child, main).Mode == SizeExpand {
			final.SetDim(main, natural.Dim(main)+share)
		}
		if !n.scrollAxes.Has(cross) {
			cs := natural.Dim(cross)
			if n.crossAlign == AlignStretch || axisSize(child, cross).Mode == SizeExpand {
				cs = innerCross
			}
			final.SetDim(cross, clamp(cs, 0, innerCross))
		}
		if final != natural {
			f.measure(child, constraints{min: final, max: final})
		}
	}
	return outer
}

// place positions n at (x, y) and lays its children out inside it.
func (f FlexSolver) place(n *Node, x, y float32) {
	n.rect.X, n.rect.Y = x, y
	main, cross := n.direction, n.direction.Other()
	inner := n.Inner()
	innerMainPos, innerMain := inner.Dim(main)
	innerCrossPos, innerCross := inner.Dim(cross)

	var used float32
	flow := 0
	for _, child := range n.children {
		if child.float == nil {
			used += child.rect.Size().Dim(main)
			flow++
		}
	}
	if flow > 1 {
		used += n.gap * float32(flow-1)
	}

	cursor := innerMainPos
	remaining := math32.Max(0, innerMain-used)
	switch n.mainAlign {
	case AlignCenter:
		cursor += remaining / 2
	case AlignEnd:
		cursor += remaining
	}

	for _, child := range n.children {
		if fl := child.float; fl != nil {
			f.place(child,
				n.rect.X+n.rect.W*fl.Anchor.X+fl.Offset.X,
				n.rect.Y+n.rect.H*fl.Anchor.Y+fl.Offset.Y)
			continue
		}
		size := child.rect.Size()
		crossPos := innerCrossPos
		switch n.crossAlign {
		case AlignCenter:
			crossPos += (innerCross - size.Dim(cross)) / 2
		case AlignEnd:
			crossPos += innerCross - size.Dim(cross)
		}
		var pos Vec2
		pos.SetDim(main, cursor)
		pos.SetDim(cross, crossPos)
		f.place(child, pos.X, pos.Y)
		cursor += size.Dim(main) + n.gap
	}
}
