package core

import "image/color"

// OpKind identifies a recorded drawing primitive.
type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpFillEllipse
	OpFillCircle
	OpDrawText
)

// String returns a short name for the primitive.
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFillRect:
		return "rect"
	case OpFillEllipse:
		return "ellipse"
	case OpFillCircle:
		return "circle"
	case OpDrawText:
		return "text"
	default:
		return "unknown"
	}
}

// DrawOp is one recorded call on a Recorder.
// Rect carries the rectangle for FillRect; for ellipses and circles X, Y is
// the center and W, H are the radii.
type DrawOp struct {
	Kind  OpKind
	Rect  Rect
	Color color.RGBA
	Text  string
	Style TextStyle
}

// Recorder is a Surface that keeps every call in order.
// Headless runs use it in place of a real display.
type Recorder struct {
	Ops []DrawOp
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear records a clear and drops everything recorded before it,
// matching what a real surface would show afterwards.
func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], DrawOp{Kind: OpClear})
}

// FillRect records a filled rectangle.
func (r *Recorder) FillRect(rect Rect, c color.RGBA) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpFillRect, Rect: rect, Color: c})
}

// FillEllipse records a filled ellipse.
func (r *Recorder) FillEllipse(cx, cy, rx, ry float64, c color.RGBA) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpFillEllipse, Rect: NewRect(cx, cy, rx, ry), Color: c})
}

// FillCircle records a filled circle.
func (r *Recorder) FillCircle(cx, cy, radius float64, c color.RGBA) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpFillCircle, Rect: NewRect(cx, cy, radius, radius), Color: c})
}

// DrawText records a text draw.
func (r *Recorder) DrawText(text string, x, y float64, style TextStyle) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpDrawText, Rect: NewRect(x, y, 0, 0), Text: text, Style: style, Color: style.Color})
}

// Texts returns every recorded text string in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpDrawText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
