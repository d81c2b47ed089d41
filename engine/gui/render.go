package gui

import (
	"cmp"
	"slices"

	"github.com/hubastard/sprig/engine/profiler"
)

type zItem struct {
	z int
	n *Node
}

// Render draws every node's list in ascending z order, each inside its own
// Save/Restore with the clip of its ancestors applied. Equal z keeps tree
// order.
func (g *Gui) Render() error {
	if g.surface == nil {
		return ErrNoSurface
	}
	if g.root == nil {
		return nil
	}
	defer profiler.Start("gui.Render")()

	items := g.items[:0]
	g.root.Walk(func(n *Node) {
		items = append(items, zItem{z: g.ZIndex(n), n: n})
	})
	slices.SortStableFunc(items, func(a, b zItem) int { return cmp.Compare(a.z, b.z) })

	s := g.surface
	for _, it := range items {
		ops := it.n.drawList.ops
		if len(ops) == 0 {
			continue
		}
		clip, clipped := g.clipFor(it.n)
		if clipped && clip.Empty() {
			continue
		}
		s.Save()
		if clipped {
			s.ClipRect(clip)
		}
		for i := range ops {
			ops[i].execute(s)
		}
		s.Restore()
		g.stats.DrawOps += len(ops)
	}

	g.root.Walk(func(n *Node) { n.counter = 0 })
	clear(items)
	g.items = items[:0]
	return nil
}

// RenderOrder returns the nodes in the order Render draws them, including
// nodes with empty draw lists.
func (g *Gui) RenderOrder() []*Node {
	if g.root == nil {
		return nil
	}
	var items []zItem
	g.root.Walk(func(n *Node) {
		items = append(items, zItem{z: g.ZIndex(n), n: n})
	})
	slices.SortStableFunc(items, func(a, b zItem) int { return cmp.Compare(a.z, b.z) })
	nodes := make([]*Node, len(items))
	for i, it := range items {
		nodes[i] = it.n
	}
	return nodes
}
