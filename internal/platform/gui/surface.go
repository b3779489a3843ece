//go:build ebiten

package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/paraglider/internal/core"
)

// textFace is the bitmap font all text is drawn with.
var textFace = text.NewGoXFace(basicfont.Face7x13)

// discRadius is the radius of the cached disc ellipses are stretched from.
const discRadius = 64

// ImageSurface draws field-pixel primitives onto an offscreen image.
// The game renders into it during Update; Draw only copies it to the screen.
type ImageSurface struct {
	img  *ebiten.Image
	disc *ebiten.Image
}

// NewImageSurface creates a surface the size of the playfield.
func NewImageSurface(width, height int) *ImageSurface {
	disc := ebiten.NewImage(2*discRadius, 2*discRadius)
	vector.DrawFilledCircle(disc, discRadius, discRadius, discRadius, color.White, true)

	s := &ImageSurface{
		img:  ebiten.NewImage(width, height),
		disc: disc,
	}
	s.Clear()
	return s
}

// Image returns the backing image.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.img
}

// Clear fills the surface with the sky color.
func (s *ImageSurface) Clear() {
	s.img.Fill(core.ColorSky)
}

// FillRect fills an axis-aligned rectangle.
func (s *ImageSurface) FillRect(r core.Rect, c color.RGBA) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// FillEllipse stretches the cached disc to radii rx, ry around (cx, cy).
func (s *ImageSurface) FillEllipse(cx, cy, rx, ry float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rx/discRadius, ry/discRadius)
	op.GeoM.Translate(cx-rx, cy-ry)
	op.ColorScale.ScaleWithColor(c)
	op.Filter = ebiten.FilterLinear
	s.img.DrawImage(s.disc, op)
}

// FillCircle fills a circle.
func (s *ImageSurface) FillCircle(cx, cy, radius float64, c color.RGBA) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(radius), c, true)
}

// DrawText renders text with the bitmap font, scaled to style.Size.
// y is the baseline.
func (s *ImageSurface) DrawText(str string, x, y float64, style core.TextStyle) {
	width, _ := text.Measure(str, textFace, 0)
	left, top, scale := textOrigin(width, textFace.Metrics().HAscent, x, y, style)

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(left, top)
	op.ColorScale.ScaleWithColor(style.Color)
	text.Draw(s.img, str, textFace, op)
}
