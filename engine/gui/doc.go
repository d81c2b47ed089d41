// Package gui is an immediate-mode UI core.
//
// Application code declares its UI by calling widget functions every frame.
// Each frame runs that code twice: the Build pass creates the node tree, the
// layout solver assigns rectangles, and the Render pass replays the same
// calls, which now resolve to the laid out nodes, to handle input and record
// draw lists. Render then draws all lists in z order.
//
//	err := g.Frame(surface, func(g *gui.Gui) {
//		n := g.Node(gui.Px(100), gui.Px(40))
//		if g.Rendering() {
//			if g.Query(n).Click() {
//				...
//			}
//			n.DrawList().FillRect(g.Bounds(n), colors.Red, 0)
//		}
//	})
//
// Nodes are identified by the source line that declares them and their
// position among their siblings; WithID overrides that for nodes declared in
// loops whose order changes. Both passes must declare the same tree.
package gui
