package core

import (
	"fmt"
	"image/color"
)

// Palette used by the glider renderer.
var (
	ColorForestGreen = color.RGBA{R: 0x22, G: 0x8B, B: 0x22, A: 0xFF} // ground band
	ColorRed         = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF} // glider, game over title
	ColorGold        = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF} // pilot
	ColorSaddleBrown = color.RGBA{R: 0x8B, G: 0x45, B: 0x13, A: 0xFF} // mountains
	ColorBlack       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF} // cables, text
	ColorLightGray   = color.RGBA{R: 0xD3, G: 0xD3, B: 0xD3, A: 0xFF} // clouds
	ColorDarkOrange  = color.RGBA{R: 0xFF, G: 0x8C, B: 0x00, A: 0xFF} // thermals
	ColorSky         = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF} // cleared surface
)

// Hex formats c as "#RRGGBB". Alpha is ignored.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
