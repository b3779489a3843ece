package glider

import (
	"fmt"

	"github.com/vovakirdan/paraglider/internal/config"
	"github.com/vovakirdan/paraglider/internal/core"
)

// EndReason records what ended a run.
type EndReason string

const (
	ReasonNone     EndReason = ""
	ReasonMountain EndReason = "mountain"
	ReasonCable    EndReason = "cable"
	ReasonGround   EndReason = "ground"
)

// Glider is the player's kinematic state.
type Glider struct {
	X, Y          float64
	Width, Height float64
	SpeedX        float64 // horizontal step while steering
	VelY          float64 // vertical velocity, positive = down
	Gravity       float64
	Lift          float64 // velocity set by a thermal, negative = up
}

// Rect returns the glider's collision rectangle.
func (g Glider) Rect() core.Rect {
	return core.NewRect(g.X, g.Y, g.Width, g.Height)
}

// World is the whole mutable simulation state of one session.
// A World is owned by exactly one Scheduler; once Over is set it never resets.
type World struct {
	Glider Glider

	Mountains []Entity
	Clouds    []Entity
	Cables    []Entity
	Thermals  []Entity

	Score     int
	Over      bool
	EndReason EndReason

	Ticks             int
	ThermalsCollected int

	cfg     config.GliderConfig
	spawner *Spawner
}

// NewWorld builds a fresh world for cfg. The glider starts horizontally
// centred a quarter of the way down with zero velocity, and every collection
// is filled to cfg.Entities.Count.
func NewWorld(cfg config.GliderConfig, seed int64) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("glider: %w", err)
	}

	fw, fh := cfg.Field.Width, cfg.Field.Height
	w := &World{
		Glider: Glider{
			X:       fw/2 - cfg.Glider.Width/2,
			Y:       fh / 4,
			Width:   cfg.Glider.Width,
			Height:  cfg.Glider.Height,
			SpeedX:  cfg.Glider.SpeedX,
			Gravity: cfg.Glider.Gravity,
			Lift:    cfg.Glider.Lift,
		},
		cfg:     cfg,
		spawner: NewSpawner(seed, fw, fh, cfg.Field.GroundHeight),
	}

	n := cfg.Entities.Count
	w.Mountains = make([]Entity, 0, n)
	w.Clouds = make([]Entity, 0, n)
	w.Cables = make([]Entity, 0, n)
	w.Thermals = make([]Entity, 0, n+1)
	for i := 0; i < n; i++ {
		w.Mountains = append(w.Mountains, w.spawner.Mountain())
		w.Clouds = append(w.Clouds, w.spawner.Cloud())
		w.Cables = append(w.Cables, w.spawner.Cable())
		w.Thermals = append(w.Thermals, w.spawner.Thermal())
	}
	return w, nil
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.GliderConfig {
	return w.cfg
}

// Field returns the playfield size in pixels.
func (w *World) Field() (width, height float64) {
	return w.cfg.Field.Width, w.cfg.Field.Height
}

// GroundTop returns the y coordinate of the top of the ground band.
func (w *World) GroundTop() float64 {
	return w.cfg.Field.Height - w.cfg.Field.GroundHeight
}

// State summarizes the world for the platform.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:     w.Score,
		GameOver:  w.Over,
		Ticks:     w.Ticks,
		Thermals:  w.ThermalsCollected,
		EndReason: string(w.EndReason),
	}
}

// end latches the terminal flag. The first reason is kept.
func (w *World) end(reason EndReason) {
	if w.Over {
		return
	}
	w.Over = true
	w.EndReason = reason
}

// checkSizes panics if any collection lost or gained members.
// The step keeps every collection at cfg.Entities.Count, so a mismatch is a bug.
func (w *World) checkSizes() {
	n := w.cfg.Entities.Count
	for _, c := range []struct {
		kind Kind
		list []Entity
	}{
		{KindMountain, w.Mountains},
		{KindCloud, w.Clouds},
		{KindCable, w.Cables},
		{KindThermal, w.Thermals},
	} {
		if len(c.list) != n {
			panic(fmt.Sprintf("glider: %s collection has %d members, want %d", c.kind, len(c.list), n))
		}
	}
}
