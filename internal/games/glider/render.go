package glider

import (
	"fmt"

	"github.com/vovakirdan/paraglider/internal/core"
)

// RestartHint is the instruction shown on the game over screen.
const RestartHint = "Press R to play again."

// HUD and marker layout in field pixels.
const (
	pilotOffsetY = 10
	pilotRadius  = 5

	scoreX    = 10
	scoreY    = 30
	scoreSize = 20

	titleSize    = 50
	finalSize    = 30
	hintSize     = 20
	screenLineDY = 50 // vertical distance between game over lines
)

// Render paints the running world back to front. It never mutates w.
func Render(w *World, dst core.Surface) {
	dst.Clear()
	drawGround(w, dst)

	g := w.Glider
	dst.FillRect(g.Rect(), core.ColorRed)
	dst.FillCircle(g.X+g.Width/2, g.Y+pilotOffsetY, pilotRadius, core.ColorGold)

	for _, m := range w.Mountains {
		dst.FillRect(m.Rect, core.ColorSaddleBrown)
	}
	for _, c := range w.Cables {
		dst.FillRect(c.Rect, core.ColorBlack)
	}
	// Clouds are drawn centred on their corner, unlike their hitbox.
	for _, c := range w.Clouds {
		dst.FillEllipse(c.Rect.X, c.Rect.Y, c.Rect.W/2, c.Rect.H/2, core.ColorLightGray)
	}
	for _, t := range w.Thermals {
		dst.FillRect(t.Rect, core.ColorDarkOrange)
	}

	dst.DrawText(fmt.Sprintf("Score: %d", w.Score), scoreX, scoreY,
		core.TextStyle{Size: scoreSize, Color: core.ColorBlack})
}

// RenderGameOver paints the summary screen. Calling it again draws the same frame.
func RenderGameOver(w *World, dst core.Surface) {
	dst.Clear()
	drawGround(w, dst)

	fieldW, fieldH := w.Field()
	cx, cy := fieldW/2, fieldH/2

	dst.DrawText("Game Over!", cx, cy-screenLineDY,
		core.TextStyle{Size: titleSize, Color: core.ColorRed, Align: core.AlignCenter})
	dst.DrawText(fmt.Sprintf("Final Score: %d", w.Score), cx, cy,
		core.TextStyle{Size: finalSize, Color: core.ColorBlack, Align: core.AlignCenter})
	dst.DrawText(RestartHint, cx, cy+screenLineDY,
		core.TextStyle{Size: hintSize, Color: core.ColorBlack, Align: core.AlignCenter})
}

func drawGround(w *World, dst core.Surface) {
	fieldW, _ := w.Field()
	top := w.GroundTop()
	dst.FillRect(core.NewRect(0, top, fieldW, w.cfg.Field.GroundHeight), core.ColorForestGreen)
}
