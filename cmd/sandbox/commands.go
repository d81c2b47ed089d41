package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/hubastard/sprig/engine/config"
	"github.com/hubastard/sprig/engine/core"
	glbackend "github.com/hubastard/sprig/engine/gfx/gl"
	"github.com/hubastard/sprig/engine/gui"
	"github.com/hubastard/sprig/engine/headless"
	"github.com/hubastard/sprig/engine/inspect"
	"github.com/hubastard/sprig/engine/platform"
)

func newRunCmd(o *options) *cobra.Command {
	var shaderDir string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window with the demo UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, theme, log, err := o.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			app := &App{cfg: cfg, theme: theme, log: log, shaderDir: shaderDir}

			newWindow := func(cfg core.Config) (core.Window, error) {
				w, err := platform.NewGLFWWindow(cfg, log, nil)
				if err != nil {
					return nil, err
				}
				return w, nil
			}
			newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
				r, err := glbackend.NewRendererGL(win, cfg, log)
				if err != nil {
					return nil, err
				}
				return r, nil
			}
			if err := core.Run(app, cfg, log, newWindow, newRenderer); err != nil {
				return err
			}
			return app.err
		},
	}
	cmd.Flags().StringVar(&shaderDir, "shaders", "", "directory whose shaders replace the embedded ones")
	return cmd
}

func newDumpCmd(o *options) *cobra.Command {
	var (
		frames        int
		width, height int
		depth         int
		ops           bool
	)
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Run the demo headless and print its node tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, theme, log, err := o.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			fonts, err := loadFonts(cfg)
			if err != nil {
				return err
			}
			defer fonts.Close()

			s := headless.WithFonts(float32(width), float32(height), fonts)
			g := gui.New(gui.WithLogger(log), gui.WithTheme(theme))
			d := newDemo(log)
			for range frames {
				s.Reset()
				if err := g.Frame(s, d.UI); err != nil {
					return err
				}
				d.Flush()
			}

			out := cmd.OutOrStdout()
			st := g.Stats()
			fmt.Fprintf(out, "frame %d: %d nodes, %d reused, %d orphans, %d draw ops\n",
				st.Frame, st.Built, st.Reused, st.Orphans, st.DrawOps)
			return inspect.Fprint(out, g, inspect.Options{MaxDepth: depth, Ops: ops})
		},
	}
	f := cmd.Flags()
	f.IntVar(&frames, "frames", 2, "frames to run before printing")
	f.IntVar(&width, "width", 1280, "surface width")
	f.IntVar(&height, "height", 720, "surface height")
	f.IntVar(&depth, "depth", 0, "deepest tree level to print; 0 prints all")
	f.BoolVar(&ops, "ops", false, "list each node's draw ops")
	return cmd
}

func newInitCmd(o *options) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write default engine and theme files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			themePath := o.themePath
			if themePath == "" {
				themePath = "theme.toml"
			}
			if !force {
				for _, p := range []string{o.configPath, themePath} {
					if _, err := os.Stat(p); err == nil {
						return fmt.Errorf("%s exists; use --force to overwrite", p)
					} else if !errors.Is(err, fs.ErrNotExist) {
						return err
					}
				}
			}
			cfg := core.DefaultConfig()
			cfg.ThemePath = themePath
			if err := config.SaveEngine(o.configPath, cfg); err != nil {
				return err
			}
			if err := config.SaveTheme(themePath, gui.DefaultTheme()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", o.configPath, "and", themePath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return cmd
}
