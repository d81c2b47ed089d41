package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/hubastard/sprig/engine/gui"
	"github.com/hubastard/sprig/engine/widgets"
)

const controlsWidth = 360

var textSizes = []float32{16, 20, 24, 32}

// demo is the playground UI. Widgets only report clicks during the Render
// pass, so anything that would change the node tree is queued and applied
// by Flush once the frame is over.
type demo struct {
	log    *slog.Logger
	name   string
	accent bool
	clicks int
	items  []string
	after  []func()
}

func newDemo(log *slog.Logger) *demo {
	d := &demo{log: log, name: "sprig"}
	for i := range 12 {
		d.items = append(d.items, fmt.Sprintf("entry %d", i+1))
	}
	return d
}

func (d *demo) later(fn func()) { d.after = append(d.after, fn) }

// Flush applies the mutations queued during the last frame.
func (d *demo) Flush() {
	for _, fn := range d.after {
		fn()
	}
	d.after = d.after[:0]
}

func (d *demo) UI(g *gui.Gui) {
	t := g.Theme()
	root := g.Root()
	if g.Rendering() {
		root.DrawList().FillRect(g.Bounds(root), t.Background, 0)
	}

	body := g.Node(gui.Expand(), gui.Expand()).
		SetDirection(gui.Horizontal).
		SetPadding(gui.Pad(t.Gap * 2)).
		SetGap(t.Gap * 2)
	g.Enter(body)
	widgets.Panel(g, gui.Px(controlsWidth), gui.Expand(), func() { d.controls(g) })
	widgets.Panel(g, gui.Expand(), gui.Expand(), func() { d.list(g) })
	g.Exit()
}

func (d *demo) controls(g *gui.Gui) {
	widgets.Label(g, "Hello, "+d.name+"!")
	widgets.TextInput(g, &d.name, gui.Expand())

	widgets.Row(g, func() {
		if widgets.Button(g, "Add") {
			d.later(func() {
				d.clicks++
				d.items = append(d.items, fmt.Sprintf("%s #%d", d.name, d.clicks))
			})
		}
		if widgets.Button(g, "Remove") && len(d.items) > 0 {
			d.later(func() {
				if len(d.items) > 0 {
					d.items = d.items[:len(d.items)-1]
				}
			})
		}
		if widgets.Button(g, "Clear") {
			d.later(func() { d.items = d.items[:0] })
		}
	})

	widgets.Checkbox(g, "Accent labels", &d.accent)

	labels := make([]string, len(textSizes))
	for i, s := range textSizes {
		labels[i] = strconv.Itoa(int(s)) + " px"
	}
	widgets.Row(g, func() {
		widgets.Label(g, "Text size")
		if i, changed := widgets.Dropdown(g, labels, gui.WithID("text-size")); changed {
			d.later(func() {
				g.Theme().TextSize = textSizes[i]
				d.log.Debug("text size changed", "size", textSizes[i])
			})
		}
	})

	widgets.WrappedLabel(g, "Items are keyed by their index, so their scroll and hover state survives when buttons above add or remove rows.",
		controlsWidth-2*g.Theme().Gap)
}

func (d *demo) list(g *gui.Gui) {
	widgets.Label(g, fmt.Sprintf("%d items", len(d.items)))
	widgets.Scroll(g, gui.Expand(), gui.Expand(), gui.ScrollVertical, func() {
		widgets.Column(g, func() {
			if d.accent {
				g.CurrentScope().SetTextColor(g.Theme().Accent)
			}
			for i, it := range d.items {
				widgets.Label(g, it, gui.WithID("item/"+strconv.Itoa(i)))
			}
		})
	})
}
