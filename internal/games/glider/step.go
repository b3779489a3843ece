package glider

import (
	"github.com/vovakirdan/paraglider/internal/core"
)

// Step advances the world by one tick using the sampled steering input.
// Once the world is over, Step changes nothing.
func (w *World) Step(in core.SteerState) core.StepResult {
	if w.Over {
		return core.StepResult{State: w.State()}
	}

	var res core.StepResult
	g := &w.Glider
	fieldW, fieldH := w.Field()
	w.Ticks++

	// Steering. Both directions may apply in the same tick.
	if in.Left && g.X > 0 {
		g.X -= g.SpeedX
	}
	if in.Right && g.X+g.Width < fieldW {
		g.X += g.SpeedX
	}
	g.X = core.ClampF(g.X, 0, fieldW-g.Width)

	// Gravity, no terminal velocity.
	g.VelY += g.Gravity
	g.Y += g.VelY

	body := g.Rect()

	// Thermals: every overlap overwrites the velocity and pays the bonus.
	var taken []int
	for i, t := range w.Thermals {
		if body.Intersects(t.Rect) {
			g.VelY = g.Lift
			w.Score += w.cfg.Scoring.ThermalBonus
			taken = append(taken, i)
		}
	}
	if len(taken) > 0 {
		w.Thermals = w.replace(KindThermal, w.Thermals, taken)
		w.ThermalsCollected += len(taken)
		res.ThermalsCollected = len(taken)
	}

	// Obstacles.
	if touchesAny(body, w.Mountains) {
		w.end(ReasonMountain)
	}
	if touchesAny(body, w.Cables) {
		w.end(ReasonCable)
	}

	// Clouds stack their penalty.
	for _, c := range w.Clouds {
		if body.Intersects(c.Rect) {
			g.VelY += g.Gravity * w.cfg.Hazards.CloudPenalty
			res.CloudsTouched++
		}
	}

	if g.Y+g.Height >= w.GroundTop() {
		w.end(ReasonGround)
	}

	// Scroll the field by the glider's velocity and respawn what fell off.
	w.Mountains = w.scroll(KindMountain, w.Mountains, fieldH)
	w.Cables = w.scroll(KindCable, w.Cables, fieldH)
	w.Clouds = w.scroll(KindCloud, w.Clouds, fieldH)
	w.Thermals = w.scroll(KindThermal, w.Thermals, fieldH)

	w.Score += w.cfg.Scoring.TickBonus

	w.checkSizes()
	res.State = w.State()
	return res
}

// scroll shifts every entity by the glider's velocity and replaces those
// whose top edge passed below the field.
func (w *World) scroll(kind Kind, list []Entity, fieldH float64) []Entity {
	var gone []int
	for i := range list {
		list[i].Rect.Y += w.Glider.VelY
		if list[i].Rect.Y > fieldH {
			gone = append(gone, i)
		}
	}
	if len(gone) == 0 {
		return list
	}
	return w.replace(kind, list, gone)
}

// replace removes the entities at the given ascending indices and appends one
// fresh entity of kind per removal. Survivors keep their relative order.
func (w *World) replace(kind Kind, list []Entity, indices []int) []Entity {
	kept := list[:0]
	next := 0
	for i, e := range list {
		if next < len(indices) && indices[next] == i {
			next++
			continue
		}
		kept = append(kept, e)
	}
	for range indices {
		kept = append(kept, w.spawner.Spawn(kind))
	}
	return kept
}

// touchesAny reports whether r overlaps any entity in list.
func touchesAny(r core.Rect, list []Entity) bool {
	for _, e := range list {
		if r.Intersects(e.Rect) {
			return true
		}
	}
	return false
}
