// Package headless provides a gui.Surface that records draw calls instead
// of rasterizing them. It backs tests and the sandbox dump command.
package headless

import (
	"fmt"
	"strings"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/gui"
	"github.com/hubastard/sprig/engine/text"
)

// Call is one recorded draw call. Clip is the effective clip when the
// call was made; it covers the whole surface when nothing is clipped.
type Call struct {
	Op    gui.OpKind
	Rect  gui.Rect
	Clip  gui.Rect
	Color colors.Color
	Text  string
}

func (c Call) String() string {
	if c.Text != "" {
		return fmt.Sprintf("%s %q at %v", c.Op, c.Text, c.Rect)
	}
	return fmt.Sprintf("%s %v", c.Op, c.Rect)
}

// Surface records calls. Without Fonts, text is measured as fixed-width
// glyphs of half the font size.
type Surface struct {
	W, H  float32
	Fonts *text.Library
	Calls []Call

	clips []gui.Rect
	saves []int
}

var _ gui.Surface = (*Surface)(nil)

func New(w, h float32) *Surface { return &Surface{W: w, H: h} }

// WithFonts measures text with real font metrics.
func WithFonts(w, h float32, fonts *text.Library) *Surface {
	return &Surface{W: w, H: h, Fonts: fonts}
}

// Reset drops the recorded calls and clip state.
func (s *Surface) Reset() {
	s.Calls = s.Calls[:0]
	s.clips = s.clips[:0]
	s.saves = s.saves[:0]
}

func (s *Surface) Size() (float32, float32) { return s.W, s.H }

func (s *Surface) Save() { s.saves = append(s.saves, len(s.clips)) }

func (s *Surface) Restore() {
	if len(s.saves) == 0 {
		return
	}
	s.clips = s.clips[:s.saves[len(s.saves)-1]]
	s.saves = s.saves[:len(s.saves)-1]
}

func (s *Surface) ClipRect(r gui.Rect) { s.pushClip(gui.OpClipRect, r) }

// ClipPath clips to the bounds of p.
func (s *Surface) ClipPath(p gui.Path) { s.pushClip(gui.OpClipPath, p.Bounds()) }

func (s *Surface) pushClip(op gui.OpKind, r gui.Rect) {
	c := s.clip().Intersect(r)
	s.clips = append(s.clips, c)
	s.Calls = append(s.Calls, Call{Op: op, Rect: r, Clip: c})
}

func (s *Surface) FillRect(r gui.Rect, c colors.Color, _ float32) {
	s.record(Call{Op: gui.OpFillRect, Rect: r, Color: c})
}

func (s *Surface) StrokeRect(r gui.Rect, c colors.Color, _ float32) {
	s.record(Call{Op: gui.OpStrokeRect, Rect: r, Color: c})
}

func (s *Surface) FillPath(p gui.Path, c colors.Color) {
	s.record(Call{Op: gui.OpFillPath, Rect: p.Bounds(), Color: c})
}

func (s *Surface) StrokePath(p gui.Path, c colors.Color, _ float32) {
	s.record(Call{Op: gui.OpStrokePath, Rect: p.Bounds(), Color: c})
}

func (s *Surface) Line(a, b gui.Vec2, c colors.Color, _ float32) {
	s.record(Call{Op: gui.OpLine, Rect: gui.Path{Points: []gui.Vec2{a, b}}.Bounds(), Color: c})
}

func (s *Surface) Text(x, y float32, str, font string, size float32, c colors.Color) {
	w, h := s.MeasureText(str, font, size)
	s.record(Call{Op: gui.OpText, Rect: gui.Rect{X: x, Y: y, W: w, H: h}, Color: c, Text: str})
}

func (s *Surface) MeasureText(str, font string, size float32) (float32, float32) {
	if s.Fonts != nil {
		return s.Fonts.MeasureText(str, font, size)
	}
	if str == "" {
		return 0, 0
	}
	var w, lineW float32
	lines := 1
	for _, r := range str {
		if r == '\n' {
			lines++
			lineW = 0
			continue
		}
		lineW += size / 2
		w = max(w, lineW)
	}
	return w, float32(lines) * size
}

func (s *Surface) clip() gui.Rect {
	if len(s.clips) == 0 {
		return gui.Rect{W: s.W, H: s.H}
	}
	return s.clips[len(s.clips)-1]
}

func (s *Surface) record(c Call) {
	c.Clip = s.clip()
	s.Calls = append(s.Calls, c)
}

// Filter returns the recorded calls of kind op.
func (s *Surface) Filter(op gui.OpKind) []Call {
	var out []Call
	for _, c := range s.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns every drawn string whose rect intersects its clip.
func (s *Surface) Texts() []string {
	var out []string
	for _, c := range s.Filter(gui.OpText) {
		if !c.Clip.Intersect(c.Rect).Empty() {
			out = append(out, c.Text)
		}
	}
	return out
}

// HasText reports whether a visible text call contains sub.
func (s *Surface) HasText(sub string) bool {
	for _, t := range s.Texts() {
		if strings.Contains(t, sub) {
			return true
		}
	}
	return false
}

// Dump renders the call log one call per line.
func (s *Surface) Dump() string {
	var b strings.Builder
	for _, c := range s.Calls {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}
