package gui

import "github.com/chewxy/math32"

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) Other() Axis { return 1 - a }

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

type Vec2 struct{ X, Y float32 }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Dim returns the component along a.
func (v Vec2) Dim(a Axis) float32 {
	if a == Vertical {
		return v.Y
	}
	return v.X
}

func (v *Vec2) SetDim(a Axis, f float32) {
	if a == Vertical {
		v.Y = f
		return
	}
	v.X = f
}

// Rect is an axis-aligned rectangle, top-left origin, Y down.
type Rect struct{ X, Y, W, H float32 }

func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Bottom() float32 { return r.Y + r.H }
func (r Rect) Min() Vec2       { return Vec2{r.X, r.Y} }
func (r Rect) Size() Vec2      { return Vec2{r.W, r.H} }

// Empty reports degenerate rectangles (zero or negative extent).
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains is inclusive on all edges.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Translate(dx, dy float32) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersect returns the overlap of r and o; the result may be Empty.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math32.Max(r.X, o.X)
	y0 := math32.Max(r.Y, o.Y)
	x1 := math32.Min(r.Right(), o.Right())
	y1 := math32.Min(r.Bottom(), o.Bottom())
	return Rect{x0, y0, math32.Max(0, x1-x0), math32.Max(0, y1-y0)}
}

// Inset shrinks r by the insets, never below zero size.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X: r.X + in.L,
		Y: r.Y + in.T,
		W: math32.Max(0, r.W-in.L-in.R),
		H: math32.Max(0, r.H-in.T-in.B),
	}
}

// Dim returns the origin and extent along a.
func (r Rect) Dim(a Axis) (pos, size float32) {
	if a == Vertical {
		return r.Y, r.H
	}
	return r.X, r.W
}

type Insets struct {
	L float32 `toml:"left"`
	T float32 `toml:"top"`
	R float32 `toml:"right"`
	B float32 `toml:"bottom"`
}

func Pad(all float32) Insets                   { return Insets{all, all, all, all} }
func Pad2(horizontal, vertical float32) Insets { return Insets{horizontal, vertical, horizontal, vertical} }
func Pad4(l, t, r, b float32) Insets           { return Insets{l, t, r, b} }

func (in Insets) Horizontal() float32 { return in.L + in.R }
func (in Insets) Vertical() float32   { return in.T + in.B }

// Path is a polyline; Closed paths connect the last point back to the first.
type Path struct {
	Points []Vec2
	Closed bool
}

func RectPath(r Rect) Path {
	return Path{
		Points: []Vec2{{r.X, r.Y}, {r.Right(), r.Y}, {r.Right(), r.Bottom()}, {r.X, r.Bottom()}},
		Closed: true,
	}
}

func (p Path) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	minX, minY := p.Points[0].X, p.Points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p.Points[1:] {
		minX = math32.Min(minX, pt.X)
		minY = math32.Min(minY, pt.Y)
		maxX = math32.Max(maxX, pt.X)
		maxY = math32.Max(maxY, pt.Y)
	}
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
