package main

import (
	"fmt"
	"time"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx/canvas"
	"github.com/hubastard/sprig/engine/gui"
	"github.com/hubastard/sprig/engine/profiler"
	"github.com/hubastard/sprig/engine/widgets"
)

// LayerDebug overlays frame, renderer and runtime statistics. Ctrl+D
// toggles it. It has no input so it never takes clicks from the demo.
type LayerDebug struct {
	canvas  *canvas.Canvas
	main    *gui.Gui
	gui     *gui.Gui
	visible bool

	frameMS float32
	last    time.Time
	tick    int
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	l.gui = gui.New(gui.WithLogger(e.Log))
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) { l.tick++ }

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("LayerDebug.OnRender")()

	now := time.Now()
	if !l.last.IsZero() {
		l.frameMS = float32(now.Sub(l.last).Seconds() * 1000)
	}
	l.last = now
	if !l.visible {
		return
	}

	// the main layer's scene, read before this layer starts its own
	r2d := l.canvas.Renderer2D().Stats()
	gs := l.main.Stats()
	rt := profiler.ReadRuntime()

	w, h := e.Window.FramebufferSize()
	l.canvas.Begin(w, h)
	err := l.gui.Frame(l.canvas, func(g *gui.Gui) {
		panel := g.Node(gui.Px(300), gui.Auto()).
			SetFloating(gui.Float{Anchor: gui.Vec2{X: 1}, Offset: gui.Vec2{X: -316, Y: 16}}).
			SetPadding(gui.Pad(12))
		g.Enter(panel).SetTextColor(colors.White).SetTextSize(16).SetZIndex(10)
		if g.Rendering() {
			panel.DrawList().FillRect(g.Bounds(panel), colors.Black.WithAlpha(0.6), 6)
		}

		section(g, "Frame")
		line(g, "%d  %.3f ms (%.1f FPS)", l.tick, l.frameMS, 1000/max(l.frameMS, 0.001))
		line(g, "nodes %d  reused %d  orphans %d", gs.Built, gs.Reused, gs.Orphans)
		line(g, "draw ops %d", gs.DrawOps)
		section(g, "2D Renderer")
		line(g, "draw calls %d  clips %d", r2d.DrawCalls, r2d.ClipChanges)
		line(g, "quads %d  triangles %d", r2d.QuadCount, r2d.TriangleCount)
		line(g, "vertices %d  textures %d", r2d.TotalVertexCount(), r2d.TextureCount)
		section(g, "Runtime")
		line(g, "heap %.3f MB  allocs %d", float32(rt.Alloc)/(1<<20), rt.Mallocs)
		line(g, "gc %d  goroutines %d  cpus %d", rt.NumGC, rt.Goroutines, rt.CPUs)
		section(g, "GPU")
		line(g, "%s", e.Renderer.GPURenderer())
		line(g, "%s", e.Renderer.GPUVersion())
		g.Exit()
	})
	if err != nil {
		e.Log.Error("debug frame", "err", err)
	}
	l.canvas.End()
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyD && k.Mods&core.ModCtrl != 0 {
		l.visible = !l.visible
		return true
	}
	return false
}

func section(g *gui.Gui, title string) {
	g.Scoped(widgets.Label(g, title), func(s *gui.Scope) { s.SetTextColor(colors.Yellow) })
}

func line(g *gui.Gui, format string, args ...any) {
	widgets.Label(g, "  "+fmt.Sprintf(format, args...))
}
