// Package config provides YAML-based game configuration loading, validation
// and change watching for the paraglider game.
package config

import (
	"errors"
	"fmt"
)

// GliderConfig contains all configuration for the paraglider game.
type GliderConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Glider   GliderPhysics  `yaml:"glider"`
	Entities EntityConfig   `yaml:"entities"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Hazards  HazardConfig   `yaml:"hazards"`
	TUI      TerminalConfig `yaml:"tui"`
}

// FieldConfig defines the playfield in pixels.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// GliderPhysics defines the glider's size and motion constants.
type GliderPhysics struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	SpeedX  float64 `yaml:"speed_x"`
	Gravity float64 `yaml:"gravity"`
	Lift    float64 `yaml:"lift"` // negative = up
}

// EntityConfig defines how many members each entity collection holds.
type EntityConfig struct {
	Count int `yaml:"count"`
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	ThermalBonus int `yaml:"thermal_bonus"`
	TickBonus    int `yaml:"tick_bonus"`
}

// HazardConfig defines cloud behaviour.
type HazardConfig struct {
	CloudPenalty float64 `yaml:"cloud_penalty"`
}

// TerminalConfig holds settings used only by the terminal frontend.
type TerminalConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid glider config")

// Validate reports configurations no world can be built from.
func (c GliderConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %gx%g", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.Field.GroundHeight < 0 || c.Field.GroundHeight >= c.Field.Height:
		return fmt.Errorf("%w: ground height %g must be in [0, %g)", ErrInvalidConfig, c.Field.GroundHeight, c.Field.Height)
	case c.Glider.Width <= 0 || c.Glider.Height <= 0:
		return fmt.Errorf("%w: glider must be positive, got %gx%g", ErrInvalidConfig, c.Glider.Width, c.Glider.Height)
	case c.Glider.Width > c.Field.Width:
		return fmt.Errorf("%w: glider width %g exceeds field width %g", ErrInvalidConfig, c.Glider.Width, c.Field.Width)
	case c.Glider.Height >= c.Field.Height-c.Field.GroundHeight:
		return fmt.Errorf("%w: glider height %g does not fit above the ground (%g)", ErrInvalidConfig, c.Glider.Height, c.Field.Height-c.Field.GroundHeight)
	case c.Glider.SpeedX < 0:
		return fmt.Errorf("%w: speed_x must not be negative", ErrInvalidConfig)
	case c.Entities.Count <= 0:
		return fmt.Errorf("%w: entities.count must be positive, got %d", ErrInvalidConfig, c.Entities.Count)
	case c.Scoring.ThermalBonus < 0 || c.Scoring.TickBonus < 0:
		return fmt.Errorf("%w: score awards must not be negative", ErrInvalidConfig)
	}
	return nil
}
