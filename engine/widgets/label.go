package widgets

import (
	"strings"

	"github.com/hubastard/sprig/engine/gui"
)

// Label draws s with the cascading text color, size and font.
func Label(g *gui.Gui, s string, opts ...gui.NodeOption) *gui.Node {
	return label(g, gui.Caller(1), s, 0, opts)
}

// WrappedLabel breaks s at spaces so no line is wider than maxWidth.
func WrappedLabel(g *gui.Gui, s string, maxWidth float32, opts ...gui.NodeOption) *gui.Node {
	return label(g, gui.Caller(1), s, maxWidth, opts)
}

func label(g *gui.Gui, site gui.CallSite, s string, maxWidth float32, opts []gui.NodeOption) *gui.Node {
	font, size := g.Font(nil), g.TextSize(nil)
	var w, h float32
	if maxWidth > 0 {
		s, w, h = Wrap(g, s, font, size, maxWidth)
	} else {
		w, h = g.MeasureText(s, font, size)
	}
	n := g.NodeAt(site, gui.Auto(), gui.Auto(), opts...).SetIntrinsic(w, h)
	if g.Rendering() && s != "" {
		b := g.Bounds(n)
		n.DrawList().Text(b.X, b.Y, s, font, size, g.TextColor(n))
	}
	return n
}

// Wrap greedily breaks s into lines no wider than maxWidth, keeping
// explicit newlines. Words wider than maxWidth get a line of their own.
// It returns the joined lines and their extent.
func Wrap(m gui.TextMeasurer, s, font string, size, maxWidth float32) (string, float32, float32) {
	if s == "" {
		return "", 0, 0
	}
	_, lineH := m.MeasureText("M", font, size)
	if lineH == 0 {
		lineH = size
	}
	space, _ := m.MeasureText(" ", font, size)

	var wrapped []string
	var widest float32
	for _, raw := range strings.Split(s, "\n") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			wrapped = append(wrapped, "")
			continue
		}
		current := words[0]
		currentW, _ := m.MeasureText(current, font, size)
		for _, word := range words[1:] {
			wordW, _ := m.MeasureText(word, font, size)
			if currentW+space+wordW > maxWidth {
				wrapped = append(wrapped, current)
				widest = max(widest, currentW)
				current, currentW = word, wordW
				continue
			}
			current += " " + word
			currentW += space + wordW
		}
		wrapped = append(wrapped, current)
		widest = max(widest, currentW)
	}
	return strings.Join(wrapped, "\n"), widest, lineH * float32(len(wrapped))
}
