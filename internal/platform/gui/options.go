// Package gui runs the game in a desktop window with Ebitengine.
// The window build needs the 'ebiten' build tag; without it Run reports
// ErrUnavailable.
package gui

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paraglider/internal/core"
	"github.com/vovakirdan/paraglider/internal/registry"
	"github.com/vovakirdan/paraglider/internal/storage"
)

// ErrUnavailable is returned by Run in builds without the 'ebiten' tag.
var ErrUnavailable = errors.New("gui: window support requires building with -tags ebiten")

// Options configures a window session.
type Options struct {
	Game    registry.Game
	Store   *storage.Store     // may be nil
	Runtime core.RuntimeConfig // TickRate and Seed are used; size comes from the game
	Scale   float64            // window pixels per field pixel, 0 means 1
	Logger  *log.Logger        // may be nil
}

// glyphHeight is the pixel height of the bitmap font text is rendered with.
const glyphHeight = 13

// textOrigin returns where the top-left of a line of text goes and the scale
// to draw it at. width and ascent are the unscaled line metrics; y is the
// baseline.
func textOrigin(width, ascent, x, y float64, style core.TextStyle) (left, top, scale float64) {
	scale = 1
	if style.Size > 0 {
		scale = style.Size / glyphHeight
	}
	left = x
	if style.Align == core.AlignCenter {
		left -= width * scale / 2
	}
	top = y - ascent*scale
	return left, top, scale
}
