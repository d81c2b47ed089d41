package widgets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gui"
	"github.com/hubastard/sprig/engine/headless"
)

// harness drives frames against a headless surface with real input.
// Headless text is 10px per rune at the default 20px size.
type harness struct {
	t  *testing.T
	g  *gui.Gui
	s  *headless.Surface
	in *core.Input
}

func newHarness(t *testing.T) *harness {
	in := core.NewInput()
	return &harness{t: t, g: gui.New(gui.WithInput(in)), s: headless.New(400, 300), in: in}
}

func (h *harness) frame(fn func(g *gui.Gui)) {
	h.t.Helper()
	h.s.Reset()
	require.NoError(h.t, h.g.Frame(h.s, fn))
	require.Zero(h.t, h.g.Stats().Orphans, "render declared nodes build did not")
	h.in.NewFrame()
}

func (h *harness) move(x, y float32) {
	h.in.Handle(core.EventMouseMove{X: float64(x), Y: float64(y)})
}

func (h *harness) click(x, y float32) {
	h.move(x, y)
	h.in.Handle(core.EventMouseButton{Button: core.MouseLeft})
	h.in.Handle(core.EventMouseButton{Button: core.MouseLeft, Down: true})
}

func (h *harness) key(k core.Key, mods core.Mod) {
	h.in.Handle(core.EventKey{Key: k, Down: true, Mods: mods})
	h.in.Handle(core.EventKey{Key: k, Mods: mods})
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.in.Handle(core.EventChar{Char: r})
	}
}
