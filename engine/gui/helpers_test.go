package gui

import (
	"fmt"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
)

// recorder is a Surface that records calls. Text measures 30 units per
// byte wide and size+6 high.
type recorder struct {
	w, h  float32
	calls []string
	fills []colors.Color
	clips []Rect
	depth int
}

func newRecorder(w, h float32) *recorder { return &recorder{w: w, h: h} }

func (r *recorder) Size() (float32, float32) { return r.w, r.h }

func (r *recorder) Save() {
	r.depth++
	r.calls = append(r.calls, "save")
}

func (r *recorder) Restore() {
	r.depth--
	r.calls = append(r.calls, "restore")
}

func (r *recorder) ClipRect(rect Rect) {
	r.clips = append(r.clips, rect)
	r.calls = append(r.calls, fmt.Sprintf("clip %v", rect))
}

func (r *recorder) ClipPath(p Path) { r.calls = append(r.calls, "clip-path") }

func (r *recorder) FillRect(rect Rect, c colors.Color, radius float32) {
	r.fills = append(r.fills, c)
	r.calls = append(r.calls, fmt.Sprintf("fill %v", rect))
}

func (r *recorder) StrokeRect(rect Rect, c colors.Color, width float32) {
	r.calls = append(r.calls, "stroke")
}

func (r *recorder) FillPath(p Path, c colors.Color) { r.calls = append(r.calls, "fill-path") }

func (r *recorder) StrokePath(p Path, c colors.Color, width float32) {
	r.calls = append(r.calls, "stroke-path")
}

func (r *recorder) Line(a, b Vec2, c colors.Color, width float32) { r.calls = append(r.calls, "line") }

func (r *recorder) Text(x, y float32, s, font string, size float32, c colors.Color) {
	r.calls = append(r.calls, "text "+s)
}

func (r *recorder) MeasureText(s, font string, size float32) (float32, float32) {
	return 30 * float32(len(s)), size + 6
}

type fakeInput struct {
	x, y     float32
	pressed  [3]bool
	held     [3]bool
	released [3]bool
	wheelX   float32
	wheelY   float32
	mods     core.Mod
	clip     string
}

func (f *fakeInput) Mouse() (float32, float32)             { return f.x, f.y }
func (f *fakeInput) MouseDelta() (float32, float32)        { return 0, 0 }
func (f *fakeInput) MousePressed(b core.MouseButton) bool  { return f.pressed[b] }
func (f *fakeInput) MouseHeld(b core.MouseButton) bool     { return f.held[b] }
func (f *fakeInput) MouseReleased(b core.MouseButton) bool { return f.released[b] }
func (f *fakeInput) KeyPressed(core.Key) bool              { return false }
func (f *fakeInput) KeyHeld(core.Key) bool                 { return false }
func (f *fakeInput) KeyReleased(core.Key) bool             { return false }
func (f *fakeInput) Mods() core.Mod                        { return f.mods }
func (f *fakeInput) Wheel() (float32, float32)             { return f.wheelX, f.wheelY }
func (f *fakeInput) Chars() []rune                         { return nil }
func (f *fakeInput) Clipboard() string                     { return f.clip }
func (f *fakeInput) SetClipboard(s string)                 { f.clip = s }

// press simulates the primary button going down at (x, y) this frame.
func (f *fakeInput) press(x, y float32) {
	f.x, f.y = x, y
	f.pressed[core.MouseLeft] = true
	f.held[core.MouseLeft] = true
}

// next clears per-frame edges.
func (f *fakeInput) next() {
	f.pressed = [3]bool{}
	f.released = [3]bool{}
	f.wheelX, f.wheelY = 0, 0
}
