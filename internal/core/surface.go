package core

import "image/color"

// Align controls horizontal placement of text relative to its anchor.
type Align int

const (
	AlignStart  Align = iota // anchor is the left edge of the text
	AlignCenter              // anchor is the horizontal center of the text
)

// TextStyle describes how a piece of text is drawn.
// Size is the nominal font height in field pixels.
type TextStyle struct {
	Size  float64
	Color color.RGBA
	Align Align
}

// Surface is the drawing collaborator the renderer paints onto.
// Coordinates are in field pixels. Text is anchored at its baseline.
// The simulation never reads from a Surface.
type Surface interface {
	// Clear resets the whole surface to the background.
	Clear()
	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c color.RGBA)
	// FillEllipse fills an ellipse centered at (cx, cy) with radii rx, ry.
	FillEllipse(cx, cy, rx, ry float64, c color.RGBA)
	// FillCircle fills a circle centered at (cx, cy).
	FillCircle(cx, cy, radius float64, c color.RGBA)
	// DrawText draws a single line of text.
	DrawText(text string, x, y float64, style TextStyle)
}
