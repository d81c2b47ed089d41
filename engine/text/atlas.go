package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx/renderer2d"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // baseline to glyph top
	W, H     int
	Sub      renderer2d.SubTexture2D
}

// Atlas is the glyph texture of one Face at its SizePx.
type Atlas struct {
	Face           *Face
	Glyphs         map[rune]Glyph
	Texture        core.Texture
	AtlasW, AtlasH int
}

const (
	atlasPadding = 2
	atlasMaxSize = 4096
)

// NewAtlas rasterizes Latin-1 into a shelf-packed white-on-transparent
// texture and uploads it through r.
func NewAtlas(r core.Renderer, f *Face) (*Atlas, error) {
	pix, size, glyphs, err := rasterize(f)
	if err != nil {
		return nil, err
	}
	tex, err := r.CreateTexture(core.TextureDesc{
		Width: size, Height: size,
		Format:    core.TextureRGBA8,
		Pixels:    pix.Pix,
		MinFilter: "linear",
		MagFilter: "linear",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return nil, fmt.Errorf("upload atlas %q: %w", f.Name, err)
	}
	for rr, g := range glyphs {
		if g.W > 0 && g.H > 0 {
			g.Sub.Texture = tex
			glyphs[rr] = g
		}
	}
	return &Atlas{Face: f, Glyphs: glyphs, Texture: tex, AtlasW: size, AtlasH: size}, nil
}

type glyphBox struct {
	r      rune
	w, h   int
	adv    float32
	bx, by float32
}

func rasterize(f *Face) (*image.RGBA, int, map[rune]Glyph, error) {
	face := f.face
	boxes := make([]glyphBox, 0, 224)
	for rr := rune(32); rr <= 255; rr++ {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		boxes = append(boxes, glyphBox{
			r:   rr,
			w:   (br.Max.X - br.Min.X).Ceil(),
			h:   (br.Max.Y - br.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Floor()),
			by:  float32(-br.Min.Y.Floor()),
		})
	}

	size := 256
	var pos map[rune]image.Point
	for {
		var fits bool
		pos, fits = pack(boxes, size)
		if fits {
			break
		}
		size *= 2
		if size > atlasMaxSize {
			return nil, 0, nil, fmt.Errorf("font atlas too large (>%d)", atlasMaxSize)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}
	glyphs := make(map[rune]Glyph, len(boxes))
	for _, b := range boxes {
		g := Glyph{Rune: b.r, Advance: b.adv, BearingX: b.bx, BearingY: b.by, W: b.w, H: b.h}
		if b.w > 0 && b.h > 0 {
			p := pos[b.r]
			// the drawer's dot sits on the baseline
			drawer.Dot = fixed.P(p.X-int(b.bx), p.Y+int(b.by))
			drawer.DrawString(string(b.r))
			g.Sub = renderer2d.FromPixels(nil, p.X, p.Y, b.w, b.h, size, size)
		}
		glyphs[b.r] = g
	}
	return dst, size, glyphs, nil
}

// pack places boxes on shelves inside a size x size square.
func pack(boxes []glyphBox, size int) (map[rune]image.Point, bool) {
	pos := make(map[rune]image.Point, len(boxes))
	x, y, rowH := atlasPadding, atlasPadding, 0
	for _, b := range boxes {
		if b.w == 0 || b.h == 0 {
			continue
		}
		if b.w+atlasPadding*2 > size || b.h+atlasPadding*2 > size {
			return nil, false
		}
		if x+b.w+atlasPadding > size {
			x = atlasPadding
			y += rowH + atlasPadding
			rowH = 0
		}
		if y+b.h+atlasPadding > size {
			return nil, false
		}
		pos[b.r] = image.Pt(x, y)
		x += b.w + atlasPadding
		rowH = max(rowH, b.h)
	}
	return pos, true
}
