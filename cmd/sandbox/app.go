package main

import (
	"log/slog"

	"github.com/hubastard/sprig/engine/assets"
	"github.com/hubastard/sprig/engine/config"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx/canvas"
	"github.com/hubastard/sprig/engine/gfx/renderer2d"
	"github.com/hubastard/sprig/engine/gui"
	"github.com/hubastard/sprig/engine/profiler"
	"github.com/hubastard/sprig/engine/text"
)

type App struct {
	cfg       core.Config
	theme     gui.Theme
	log       *slog.Logger
	shaderDir string
	err       error

	fonts   *text.Library
	watcher *config.Watcher
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 16)
	if err := a.start(e); err != nil {
		a.err = err
		a.log.Error("startup failed", "err", err)
		e.Window.RequestClose()
	}
}

func (a *App) start(e *core.Engine) error {
	vs, err := assets.LoadShader(a.shaderDir, "renderer2d.vert")
	if err != nil {
		return err
	}
	fs, err := assets.LoadShader(a.shaderDir, "renderer2d.frag")
	if err != nil {
		return err
	}
	r2d, err := renderer2d.New(e.Renderer, vs, fs, a.cfg.MaxQuads)
	if err != nil {
		return err
	}
	if a.fonts, err = loadFonts(a.cfg); err != nil {
		return err
	}
	cv := canvas.New(e.Renderer, r2d, a.fonts, a.log)

	if a.cfg.ThemePath != "" {
		if a.watcher, err = config.WatchTheme(a.cfg.ThemePath, a.log); err != nil {
			a.log.Warn("theme hot reload disabled", "path", a.cfg.ThemePath, "err", err)
		}
	}

	g := gui.New(gui.WithLogger(a.log), gui.WithInput(e.Input), gui.WithTheme(a.theme))
	e.Layers.Push(&LayerGUI{gui: g, canvas: cv, demo: newDemo(a.log), watcher: a.watcher})
	e.Layers.Push(&LayerDebug{canvas: cv, main: g, visible: true})
	a.log.Info("renderer ready",
		"vendor", e.Renderer.GPUVendor(),
		"renderer", e.Renderer.GPURenderer(),
		"fonts", a.fonts.Names())
	return nil
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}

func (a *App) OnShutdown(e *core.Engine) {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	if a.fonts != nil {
		a.fonts.Close()
	}
}
