package glider

import (
	"math"

	"github.com/vovakirdan/paraglider/internal/core"
)

// Autopilot steers toward the thermal whose centre is vertically closest to
// the glider. It ignores obstacles; it exists to drive headless runs.
func Autopilot(w *World) core.SteerState {
	g := w.Glider
	gx := g.X + g.Width/2
	gy := g.Y + g.Height/2

	best, found := 0.0, false
	dist := math.Inf(1)
	for _, t := range w.Thermals {
		tx, ty := t.Rect.Center()
		if d := math.Abs(ty - gy); d < dist {
			dist, best, found = d, tx, true
		}
	}
	if !found {
		return core.SteerState{}
	}

	switch {
	case best < gx-g.SpeedX:
		return core.SteerState{Left: true}
	case best > gx+g.SpeedX:
		return core.SteerState{Right: true}
	default:
		return core.SteerState{}
	}
}
