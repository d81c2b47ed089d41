// Package inspect prints the node tree of a gui frame for debugging.
package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/hubastard/sprig/engine/gui"
)

type Options struct {
	// MaxDepth limits how deep the tree is printed; 0 prints everything.
	MaxDepth int
	// Ops lists each node's recorded draw ops under it.
	Ops bool
}

type styles struct {
	id, rect, flag, op, enum lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		id:   r.NewStyle().Bold(true),
		rect: r.NewStyle().Foreground(lipgloss.Color("245")),
		flag: r.NewStyle().Foreground(lipgloss.Color("39")),
		op:   r.NewStyle().Foreground(lipgloss.Color("242")).Italic(true),
		enum: r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Fprint writes the tree rooted at g.Root to w, styled for w's terminal.
func Fprint(w io.Writer, g *gui.Gui, opts Options) error {
	s := newStyles(lipgloss.NewRenderer(w))
	root := g.Root()
	if root == nil {
		_, err := fmt.Fprintln(w, "(no frame)")
		return err
	}
	t := build(g, root, s, opts, 0).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(s.enum)
	_, err := fmt.Fprintln(w, t.String())
	return err
}

// String returns the unstyled tree.
func String(g *gui.Gui, opts Options) string {
	var b strings.Builder
	_ = Fprint(&b, g, opts)
	return b.String()
}

func build(g *gui.Gui, n *gui.Node, s styles, opts Options, depth int) *tree.Tree {
	t := tree.Root(describe(g, n, s))
	if opts.Ops {
		for _, op := range n.DrawList().Ops() {
			t.Child(s.op.Render(describeOp(op)))
		}
	}
	if opts.MaxDepth > 0 && depth+1 >= opts.MaxDepth {
		if k := len(n.Children()); k > 0 {
			t.Child(s.op.Render(fmt.Sprintf("… %d more", k)))
		}
		return t
	}
	for _, c := range n.Children() {
		if len(c.Children()) == 0 && !opts.Ops {
			t.Child(describe(g, c, s))
			continue
		}
		t.Child(build(g, c, s, opts, depth+1))
	}
	return t
}

// Describe formats one node without styling: id, screen bounds, z and the
// scope flags that differ from a plain node.
func Describe(g *gui.Gui, n *gui.Node) string {
	return describe(g, n, newStyles(lipgloss.NewRenderer(io.Discard)))
}

func describe(g *gui.Gui, n *gui.Node, s styles) string {
	r := g.Bounds(n)
	parts := []string{
		s.id.Render(n.ID()),
		s.rect.Render(fmt.Sprintf("[%g %g %g×%g]", r.X, r.Y, r.W, r.H)),
	}
	var flags []string
	if z := g.ZIndex(n); z != 0 {
		flags = append(flags, fmt.Sprintf("z=%d", z))
	}
	if g.Clipped(n) {
		flags = append(flags, "clip")
	}
	if n.Floating() {
		flags = append(flags, "float")
	}
	if n.Detached() {
		flags = append(flags, "detached")
	}
	if g.IsScrollContainer(n) {
		if st, ok := g.ScrollState(n.ID()); ok {
			flags = append(flags, fmt.Sprintf("scroll=%g,%g of %g×%g", st.Offset.X, st.Offset.Y, st.Content.X, st.Content.Y))
		}
	}
	if k := n.DrawList().Len(); k > 0 {
		flags = append(flags, fmt.Sprintf("ops=%d", k))
	}
	for _, f := range flags {
		parts = append(parts, s.flag.Render(f))
	}
	return strings.Join(parts, " ")
}

func describeOp(op gui.DrawOp) string {
	switch op.Kind {
	case gui.OpText:
		return fmt.Sprintf("%s %q", op.Kind, op.Text)
	case gui.OpLine:
		return fmt.Sprintf("%s %v→%v", op.Kind, op.From, op.To)
	case gui.OpFillPath, gui.OpStrokePath, gui.OpClipPath:
		return fmt.Sprintf("%s %d pts", op.Kind, len(op.Path.Points))
	default:
		return fmt.Sprintf("%s %v", op.Kind, op.Rect)
	}
}
