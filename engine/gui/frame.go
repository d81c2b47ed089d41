package gui

import "github.com/hubastard/sprig/engine/profiler"

// Stage is the pass the application closure is running in.
type Stage int

const (
	// StageBuild declares the tree; it is authoritative for topology.
	StageBuild Stage = iota
	// StageRender replays the same declarations against the laid out tree,
	// recording draw lists and handling input.
	StageRender
)

func (s Stage) String() string {
	if s == StageRender {
		return "render"
	}
	return "build"
}

// SetStage switches the pass. Entering Render rewinds the root so the
// replay resolves the same ids Build produced.
func (g *Gui) SetStage(s Stage) {
	g.stage = s
	g.created = 0
	if g.root == nil {
		return
	}
	g.root.counter = 0
	if s == StageRender {
		g.resetStack()
		g.root.drawList.Reset()
		g.Enter(g.root)
	}
}

// Rendering reports whether the Render pass is running; widgets record
// draw lists and handle input only then.
func (g *Gui) Rendering() bool { return g.stage == StageRender }

// BeginFrame binds surface, resets the root's topology and enters it.
func (g *Gui) BeginFrame(surface Surface) {
	g.surface = surface
	var w, h float32
	if surface != nil {
		w, h = surface.Size()
	}
	if g.root == nil {
		g.root = newNode(rootID, nil, Px(w), Px(h))
	}
	root := g.root
	clear(root.children)
	root.children = root.children[:0]
	root.drawList.Reset()
	root.counter = 0
	root.width, root.height = Px(w), Px(h)
	root.rect = Rect{0, 0, w, h}

	g.stats = Stats{Frame: g.stats.Frame + 1}
	clear(g.orphaned)
	g.resetStack()
	g.Enter(root)
}

func (g *Gui) resetStack() {
	clear(g.stack)
	g.stack = g.stack[:0]
	g.scrollStack = g.scrollStack[:0]
}

// CalculateLayout runs the layout solver over the tree built this frame.
func (g *Gui) CalculateLayout() {
	if g.root == nil {
		return
	}
	defer profiler.Start("gui.Layout")()
	g.layout.Solve(g.root, Rect{0, 0, g.root.width.Value, g.root.height.Value})
}

// EndFrame closes any scopes left open and logs the frame counters.
func (g *Gui) EndFrame() {
	if len(g.stack) > 1 {
		g.log.Debug("gui: unbalanced scopes at end of frame", "open", len(g.stack)-1)
	}
	g.resetStack()
	if g.root != nil {
		g.stack = append(g.stack, g.root)
	}
	g.log.Debug("gui: frame",
		"frame", g.stats.Frame,
		"built", g.stats.Built,
		"reused", g.stats.Reused,
		"orphans", g.stats.Orphans,
		"ops", g.stats.DrawOps)
}

// Frame runs one complete frame: Build, layout, Render and flush.
func (g *Gui) Frame(surface Surface, fn func(*Gui)) error {
	defer profiler.Start("gui.Frame")()

	g.SetStage(StageBuild)
	g.BeginFrame(surface)
	end := profiler.Start("gui.Build")
	fn(g)
	end()

	g.CalculateLayout()

	g.SetStage(StageRender)
	end = profiler.Start("gui.Record")
	fn(g)
	end()

	err := g.Render()
	g.EndFrame()
	return err
}
