package gui

import "github.com/hubastard/sprig/engine/colors"

// Surface is the drawing backend bound to a frame. Coordinates are in
// pixels, top-left origin. Clip calls intersect with the current clip and
// are undone by the matching Restore.
type Surface interface {
	TextMeasurer
	Size() (w, h float32)
	Save()
	Restore()
	ClipRect(r Rect)
	ClipPath(p Path)
	FillRect(r Rect, c colors.Color, radius float32)
	StrokeRect(r Rect, c colors.Color, width float32)
	FillPath(p Path, c colors.Color)
	StrokePath(p Path, c colors.Color, width float32)
	Line(a, b Vec2, c colors.Color, width float32)
	// Text draws s with its top-left corner at (x, y).
	Text(x, y float32, s, font string, size float32, c colors.Color)
}

type TextMeasurer interface {
	MeasureText(s, font string, size float32) (w, h float32)
}

type OpKind uint8

const (
	OpFillRect OpKind = iota
	OpStrokeRect
	OpFillPath
	OpStrokePath
	OpLine
	OpText
	OpClipRect
	OpClipPath
)

var opNames = [...]string{"fill-rect", "stroke-rect", "fill-path", "stroke-path", "line", "text", "clip-rect", "clip-path"}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "unknown"
}

// DrawOp is one recorded drawing or clip operation with its own paint.
type DrawOp struct {
	Kind   OpKind
	Rect   Rect
	Path   Path
	From   Vec2
	To     Vec2
	Color  colors.Color
	Width  float32
	Radius float32
	Text   string
	Font   string
	Size   float32
}

func (op *DrawOp) execute(s Surface) {
	switch op.Kind {
	case OpFillRect:
		s.FillRect(op.Rect, op.Color, op.Radius)
	case OpStrokeRect:
		s.StrokeRect(op.Rect, op.Color, op.Width)
	case OpFillPath:
		s.FillPath(op.Path, op.Color)
	case OpStrokePath:
		s.StrokePath(op.Path, op.Color, op.Width)
	case OpLine:
		s.Line(op.From, op.To, op.Color, op.Width)
	case OpText:
		s.Text(op.Rect.X, op.Rect.Y, op.Text, op.Font, op.Size, op.Color)
	case OpClipRect:
		if !op.Rect.Empty() {
			s.ClipRect(op.Rect)
		}
	case OpClipPath:
		if len(op.Path.Points) > 2 {
			s.ClipPath(op.Path)
		}
	}
}

// DrawList is the ordered list of operations a node records during the
// Render pass. Operations run in insertion order.
type DrawList struct {
	ops []DrawOp
}

func (d *DrawList) Ops() []DrawOp { return d.ops }
func (d *DrawList) Len() int      { return len(d.ops) }
func (d *DrawList) Reset()        { d.ops = d.ops[:0] }

func (d *DrawList) Add(op DrawOp) { d.ops = append(d.ops, op) }

func (d *DrawList) FillRect(r Rect, c colors.Color, radius float32) {
	d.Add(DrawOp{Kind: OpFillRect, Rect: r, Color: c, Radius: radius})
}

func (d *DrawList) StrokeRect(r Rect, c colors.Color, width float32) {
	d.Add(DrawOp{Kind: OpStrokeRect, Rect: r, Color: c, Width: width})
}

func (d *DrawList) FillPath(p Path, c colors.Color) {
	d.Add(DrawOp{Kind: OpFillPath, Path: p, Color: c})
}

func (d *DrawList) StrokePath(p Path, c colors.Color, width float32) {
	d.Add(DrawOp{Kind: OpStrokePath, Path: p, Color: c, Width: width})
}

func (d *DrawList) Line(a, b Vec2, c colors.Color, width float32) {
	d.Add(DrawOp{Kind: OpLine, From: a, To: b, Color: c, Width: width})
}

func (d *DrawList) Text(x, y float32, s, font string, size float32, c colors.Color) {
	d.Add(DrawOp{Kind: OpText, Rect: Rect{X: x, Y: y}, Text: s, Font: font, Size: size, Color: c})
}

// ClipRect restricts the operations that follow it in this list.
func (d *DrawList) ClipRect(r Rect) {
	d.Add(DrawOp{Kind: OpClipRect, Rect: r})
}

func (d *DrawList) ClipPath(p Path) {
	d.Add(DrawOp{Kind: OpClipPath, Path: p})
}
