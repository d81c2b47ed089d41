package text

import (
	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/gfx/renderer2d"
)

// DrawText draws s with its top-left corner at (x, y), scaling the atlas
// glyphs to size. Positive Y goes down.
func DrawText(r2d *renderer2d.Renderer2D, a *Atlas, x, y float32, s string, size float32, color colors.Color) {
	f := a.Face
	scale := size / f.SizePx
	penX := x
	baseY := y + f.Ascent*scale
	prev := rune(-1)

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += f.LineHeight() * scale
			prev = -1
			continue
		}
		if prev >= 0 {
			penX += f.Kern(prev, r) * scale
		}
		prev = r

		g, ok := a.Glyphs[r]
		if !ok {
			penX += f.Advance(' ') * scale
			continue
		}
		if g.W > 0 && g.H > 0 {
			w, h := float32(g.W)*scale, float32(g.H)*scale
			left := penX + g.BearingX*scale
			top := baseY - g.BearingY*scale
			// quads are centered
			r2d.DrawSubTexQuad(left+w*0.5, top+h*0.5, w, h, g.Sub, color, 0)
		}
		penX += g.Advance * scale
	}
}
