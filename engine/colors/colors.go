package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type Color [4]float32

var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	LightGray   = Color{0.85, 0.86, 0.88, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Scale multiplies the RGB channels by f, leaving alpha untouched.
func (c Color) Scale(f float32) Color {
	for i := 0; i < 3; i++ {
		v := c[i] * f
		if v > 1 {
			v = 1
		}
		c[i] = v
	}
	return c
}

// Lerp blends c towards o by t in RGB space. Alpha is interpolated linearly.
func (c Color) Lerp(o Color, t float32) Color {
	a := colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}
	b := colorful.Color{R: float64(o[0]), G: float64(o[1]), B: float64(o[2])}
	m := a.BlendRgb(b, float64(t))
	return Color{float32(m.R), float32(m.G), float32(m.B), c[3] + (o[3]-c[3])*t}
}

func (c Color) Visible() bool { return c[3] > 0 }

// Hex formats the color as #rrggbbaa.
func (c Color) Hex() string {
	rgb := colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Clamped()
	return fmt.Sprintf("%s%02x", rgb.Hex(), uint8(c[3]*255+0.5))
}

// Hex parses #rgb, #rrggbb or #rrggbbaa.
func Hex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	alpha := float32(1)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse alpha %q: %w", s, err)
		}
		alpha = float32(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{float32(c.R), float32(c.G), float32(c.B), alpha}, nil
}

// MustHex is Hex for package-level palette definitions.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalText lets colors round-trip through config files as hex strings.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

func (c *Color) UnmarshalText(b []byte) error {
	v, err := Hex(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
