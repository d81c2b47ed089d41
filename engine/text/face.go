package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face is a parsed font rasterized at SizePx. Measurements at other sizes
// scale linearly from it.
type Face struct {
	Name                     string
	SizePx                   float32
	Ascent, Descent, LineGap float32

	face    font.Face
	advance map[rune]float32
}

// ParseTTF parses TrueType/OpenType data.
func ParseTTF(name string, data []byte, sizePx float32) (*Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", name, err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face %q: %w", name, err)
	}

	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	return &Face{
		Name:    name,
		SizePx:  sizePx,
		Ascent:  ascent,
		Descent: descent,
		LineGap: float32(m.Height.Round()) - ascent + descent,
		face:    face,
		advance: make(map[rune]float32),
	}, nil
}

func LoadTTF(name, path string, sizePx float32) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return ParseTTF(name, data, sizePx)
}

// Regular is the embedded Go Regular face.
func Regular(sizePx float32) (*Face, error) { return ParseTTF("regular", goregular.TTF, sizePx) }

// Mono is the embedded Go Mono face.
func Mono(sizePx float32) (*Face, error) { return ParseTTF("mono", gomono.TTF, sizePx) }

func (f *Face) Close() {
	if f != nil && f.face != nil {
		_ = f.face.Close()
		f.face = nil
	}
}

// LineHeight is the baseline-to-baseline distance at SizePx.
func (f *Face) LineHeight() float32 { return f.Ascent - f.Descent + f.LineGap }

func (f *Face) Advance(r rune) float32 {
	if a, ok := f.advance[r]; ok {
		return a
	}
	adv, ok := f.face.GlyphAdvance(r)
	if !ok {
		adv, _ = f.face.GlyphAdvance(' ')
	}
	a := float32(adv.Round())
	f.advance[r] = a
	return a
}

func (f *Face) Kern(a, b rune) float32 {
	return fixedToFloat(f.face.Kern(a, b))
}

// Measure returns the extent of s drawn at size. Newlines start new lines.
func (f *Face) Measure(s string, size float32) (width, height float32) {
	var lineW float32
	prev := rune(-1)
	lineH := f.LineHeight()
	height = lineH

	for _, r := range s {
		if r == '\n' {
			width = max(width, lineW)
			lineW = 0
			height += lineH
			prev = -1
			continue
		}
		if prev >= 0 {
			lineW += f.Kern(prev, r)
		}
		lineW += f.Advance(r)
		prev = r
	}
	width = max(width, lineW)

	scale := size / f.SizePx
	return width * scale, height * scale
}

func fixedToFloat(v fixed.Int26_6) float32 { return float32(v) / 64 }
