package main

import (
	"github.com/hubastard/sprig/engine/config"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx/canvas"
	"github.com/hubastard/sprig/engine/gui"
	"github.com/hubastard/sprig/engine/profiler"
)

// LayerGUI runs the demo UI once per rendered frame.
type LayerGUI struct {
	gui     *gui.Gui
	canvas  *canvas.Canvas
	demo    *demo
	watcher *config.Watcher
}

func (l *LayerGUI) OnAttach(e *core.Engine)             {}
func (l *LayerGUI) OnDetach(e *core.Engine)             {}
func (l *LayerGUI) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerGUI) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("LayerGUI.OnRender")()

	if l.watcher != nil {
		if t, ok := l.watcher.Poll(); ok {
			l.gui.SetTheme(t)
		}
	}
	w, h := e.Window.FramebufferSize()
	l.canvas.Begin(w, h)
	if err := l.gui.Frame(l.canvas, l.demo.UI); err != nil {
		e.Log.Error("gui frame", "err", err)
	}
	l.canvas.End()
	l.demo.Flush()
}

func (l *LayerGUI) OnEvent(e *core.Engine, ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down || k.Key != core.KeyP || k.Mods&core.ModCtrl == 0 {
		return false
	}
	path, err := profiler.Open()
	if err != nil {
		e.Log.Warn("profiler dump", "err", err)
	} else {
		e.Log.Info("speedscope dump", "path", path)
	}
	return true
}
