package tui

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/paraglider/internal/core"
)

// CellSurface draws field-pixel primitives onto a character Screen.
// Every cell a shape touches is painted, so thin shapes such as cables stay
// visible at any terminal size.
type CellSurface struct {
	screen *core.Screen
	fieldW float64
	fieldH float64
}

// NewCellSurface maps a fieldW x fieldH playfield onto screen.
func NewCellSurface(screen *core.Screen, fieldW, fieldH float64) *CellSurface {
	return &CellSurface{screen: screen, fieldW: fieldW, fieldH: fieldH}
}

// Screen returns the backing screen.
func (s *CellSurface) Screen() *core.Screen {
	return s.screen
}

// SetField changes the playfield size used for scaling.
func (s *CellSurface) SetField(fieldW, fieldH float64) {
	s.fieldW, s.fieldH = fieldW, fieldH
}

// col and row convert field pixels to fractional cell coordinates.
// Multiplying before dividing keeps whole-cell boundaries exact.
func (s *CellSurface) col(x float64) float64 {
	return x * float64(s.screen.Width()) / s.fieldW
}

func (s *CellSurface) row(y float64) float64 {
	return y * float64(s.screen.Height()) / s.fieldH
}

// Clear resets every cell to the sky.
func (s *CellSurface) Clear() {
	s.screen.Clear()
}

// FillRect paints the cells covered by r.
func (s *CellSurface) FillRect(r core.Rect, c color.RGBA) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0 := int(math.Floor(s.col(r.X)))
	y0 := int(math.Floor(s.row(r.Y)))
	x1 := int(math.Ceil(s.col(r.Right())))
	y1 := int(math.Ceil(s.row(r.Bottom())))
	s.screen.Paint(x0, y0, max(x1, x0+1), max(y1, y0+1), c)
}

// FillEllipse paints the cells whose centers fall inside the ellipse, and
// always the cell holding its center.
func (s *CellSurface) FillEllipse(cx, cy, rx, ry float64, c color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	ccx, ccy := s.col(cx), s.row(cy)
	erx, ery := s.col(rx), s.row(ry)

	x0, x1 := int(math.Floor(ccx-erx)), int(math.Ceil(ccx+erx))
	y0, y1 := int(math.Floor(ccy-ery)), int(math.Ceil(ccy+ery))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := (float64(x) + 0.5 - ccx) / erx
			dy := (float64(y) + 0.5 - ccy) / ery
			if dx*dx+dy*dy <= 1 {
				s.screen.Paint(x, y, x+1, y+1, c)
			}
		}
	}
	px, py := int(math.Floor(ccx)), int(math.Floor(ccy))
	s.screen.Paint(px, py, px+1, py+1, c)
}

// FillCircle paints a circle as an ellipse with equal radii.
func (s *CellSurface) FillCircle(cx, cy, radius float64, c color.RGBA) {
	s.FillEllipse(cx, cy, radius, radius, c)
}

// DrawText writes text on the row holding the baseline. The text keeps the
// colors painted underneath it.
func (s *CellSurface) DrawText(text string, x, y float64, style core.TextStyle) {
	col := int(math.Round(s.col(x)))
	row := int(math.Floor(s.row(y)))
	if style.Align == core.AlignCenter {
		col -= utf8.RuneCountInString(text) / 2
	}
	row = core.Clamp(row, 0, s.screen.Height()-1)
	s.screen.DrawText(col, row, text, style.Color)
}
