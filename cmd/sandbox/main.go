package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hubastard/sprig/engine/config"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gui"
	"github.com/hubastard/sprig/engine/text"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
	themePath  string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var o options
	root := &cobra.Command{
		Use:          "sandbox",
		Short:        "Immediate-mode GUI playground",
		SilenceUsage: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "engine.toml", "engine settings file")
	flags.StringVar(&o.themePath, "theme", "", "theme file; overrides theme_path from the config")
	flags.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error; overrides the config")
	root.AddCommand(newRunCmd(&o), newDumpCmd(&o), newInitCmd(&o))
	return root
}

// load reads the engine config and the theme it points at, and builds a
// text logger writing to w.
func (o *options) load(w io.Writer) (core.Config, gui.Theme, *slog.Logger, error) {
	cfg, err := config.LoadEngine(o.configPath)
	if err != nil {
		return cfg, gui.Theme{}, nil, err
	}
	if o.themePath != "" {
		cfg.ThemePath = o.themePath
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: config.LogLevel(cfg.LogLevel)}))
	theme, err := config.LoadTheme(cfg.ThemePath)
	return cfg, theme, log, err
}

// loadFonts builds the font library; font_path replaces the default face.
func loadFonts(cfg core.Config) (*text.Library, error) {
	fonts, err := text.DefaultLibrary(cfg.FontSize)
	if err != nil {
		return nil, err
	}
	if cfg.FontPath != "" {
		f, err := text.LoadTTF("custom", cfg.FontPath, cfg.FontSize)
		if err != nil {
			fonts.Close()
			return nil, err
		}
		fonts.Add(gui.DefaultFont, f)
		fonts.Add("custom", f)
	}
	return fonts, nil
}
