// Package canvas draws gui frames with the batched 2D renderer.
package canvas

import (
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx/renderer2d"
	"github.com/hubastard/sprig/engine/gui"
	"github.com/hubastard/sprig/engine/scene"
	"github.com/hubastard/sprig/engine/text"
)

// cornerSegments is the number of segments per rounded corner.
const cornerSegments = 6

// Canvas implements gui.Surface. Clips become scissor rectangles, so
// ClipPath clips to the bounds of the path.
type Canvas struct {
	r     core.Renderer
	r2d   *renderer2d.Renderer2D
	cam   *scene.ScreenCamera2D
	fonts *text.Library
	log   *slog.Logger

	atlases map[*text.Face]*text.Atlas
	failed  map[*text.Face]bool
	saves   []int
	points  [][2]float32
	w, h    float32
}

var _ gui.Surface = (*Canvas)(nil)

func New(r core.Renderer, r2d *renderer2d.Renderer2D, fonts *text.Library, log *slog.Logger) *Canvas {
	if log == nil {
		log = slog.Default()
	}
	return &Canvas{
		r:       r,
		r2d:     r2d,
		cam:     scene.NewScreen2D(1, 1),
		fonts:   fonts,
		log:     log,
		atlases: make(map[*text.Face]*text.Atlas),
		failed:  make(map[*text.Face]bool),
	}
}

// Begin starts a scene covering a w x h pixel framebuffer.
func (c *Canvas) Begin(w, h int) {
	c.w, c.h = float32(w), float32(h)
	c.cam.SetViewportPixels(w, h)
	c.saves = c.saves[:0]
	c.r2d.BeginScene(c.cam.VP())
}

// End flushes everything drawn since Begin.
func (c *Canvas) End() { c.r2d.EndScene() }

func (c *Canvas) Renderer2D() *renderer2d.Renderer2D { return c.r2d }

func (c *Canvas) Size() (float32, float32) { return c.w, c.h }

func (c *Canvas) Save() { c.saves = append(c.saves, c.r2d.ClipDepth()) }

func (c *Canvas) Restore() {
	if len(c.saves) == 0 {
		return
	}
	depth := c.saves[len(c.saves)-1]
	c.saves = c.saves[:len(c.saves)-1]
	for c.r2d.ClipDepth() > depth {
		c.r2d.PopClip()
	}
}

func (c *Canvas) ClipRect(r gui.Rect) {
	c.r2d.PushClip(renderer2d.ClipRect{X: r.X, Y: r.Y, W: r.W, H: r.H})
}

func (c *Canvas) ClipPath(p gui.Path) { c.ClipRect(p.Bounds()) }

func (c *Canvas) FillRect(r gui.Rect, col colors.Color, radius float32) {
	if r.Empty() || !col.Visible() {
		return
	}
	radius = math32.Min(radius, math32.Min(r.W, r.H)/2)
	if radius <= 0.5 {
		c.r2d.DrawQuad(r.X+r.W/2, r.Y+r.H/2, r.W, r.H, col, 0)
		return
	}
	c.points = roundedRect(c.points[:0], r, radius)
	c.r2d.DrawConvex(c.points, col)
}

func (c *Canvas) StrokeRect(r gui.Rect, col colors.Color, width float32) {
	if r.Empty() || width <= 0 || !col.Visible() {
		return
	}
	w := math32.Min(width, math32.Min(r.W, r.H)/2)
	c.FillRect(gui.Rect{X: r.X, Y: r.Y, W: r.W, H: w}, col, 0)
	c.FillRect(gui.Rect{X: r.X, Y: r.Bottom() - w, W: r.W, H: w}, col, 0)
	c.FillRect(gui.Rect{X: r.X, Y: r.Y + w, W: w, H: r.H - 2*w}, col, 0)
	c.FillRect(gui.Rect{X: r.Right() - w, Y: r.Y + w, W: w, H: r.H - 2*w}, col, 0)
}

// FillPath fills p as a convex polygon.
func (c *Canvas) FillPath(p gui.Path, col colors.Color) {
	if len(p.Points) < 3 || !col.Visible() {
		return
	}
	c.points = c.points[:0]
	for _, pt := range p.Points {
		c.points = append(c.points, [2]float32{pt.X, pt.Y})
	}
	c.r2d.DrawConvex(c.points, col)
}

func (c *Canvas) StrokePath(p gui.Path, col colors.Color, width float32) {
	pts := p.Points
	for i := 1; i < len(pts); i++ {
		c.Line(pts[i-1], pts[i], col, width)
	}
	if p.Closed && len(pts) > 2 {
		c.Line(pts[len(pts)-1], pts[0], col, width)
	}
}

func (c *Canvas) Line(a, b gui.Vec2, col colors.Color, width float32) {
	if !col.Visible() {
		return
	}
	c.r2d.DrawLine(a.X, a.Y, b.X, b.Y, width, col)
}

func (c *Canvas) Text(x, y float32, s, font string, size float32, col colors.Color) {
	if s == "" || !col.Visible() {
		return
	}
	if a := c.atlas(font); a != nil {
		text.DrawText(c.r2d, a, x, y, s, size, col)
	}
}

func (c *Canvas) MeasureText(s, font string, size float32) (float32, float32) {
	return c.fonts.MeasureText(s, font, size)
}

func (c *Canvas) atlas(font string) *text.Atlas {
	f := c.fonts.Face(font)
	if f == nil || c.failed[f] {
		return nil
	}
	if a, ok := c.atlases[f]; ok {
		return a
	}
	a, err := text.NewAtlas(c.r, f)
	if err != nil {
		c.failed[f] = true
		c.log.Error("font atlas", "font", font, "err", err)
		return nil
	}
	c.atlases[f] = a
	return a
}

// roundedRect appends the outline of r with rounded corners, clockwise
// from the top-left arc.
func roundedRect(dst [][2]float32, r gui.Rect, radius float32) [][2]float32 {
	corners := [4]struct{ cx, cy, start float32 }{
		{r.X + radius, r.Y + radius, math32.Pi},
		{r.Right() - radius, r.Y + radius, 1.5 * math32.Pi},
		{r.Right() - radius, r.Bottom() - radius, 0},
		{r.X + radius, r.Bottom() - radius, 0.5 * math32.Pi},
	}
	for _, k := range corners {
		for i := 0; i <= cornerSegments; i++ {
			a := k.start + float32(i)/cornerSegments*math32.Pi/2
			dst = append(dst, [2]float32{k.cx + math32.Cos(a)*radius, k.cy + math32.Sin(a)*radius})
		}
	}
	return dst
}
