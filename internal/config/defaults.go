package config

import (
	_ "embed"
)

//go:embed defaults/glider.yaml
var defaultGliderYAML []byte

// DefaultGliderConfig returns the default paraglider configuration.
func DefaultGliderConfig() GliderConfig {
	return GliderConfig{
		Field: FieldConfig{
			Width:        800,
			Height:       600,
			GroundHeight: 50,
		},
		Glider: GliderPhysics{
			Width:   40,
			Height:  40,
			SpeedX:  5,
			Gravity: 0.05,
			Lift:    -5,
		},
		Entities: EntityConfig{
			Count: 3,
		},
		Scoring: ScoringConfig{
			ThermalBonus: 10,
			TickBonus:    1,
		},
		Hazards: HazardConfig{
			CloudPenalty: 2,
		},
		TUI: TerminalConfig{
			HoldTicks: 30,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "glider":
		return defaultGliderYAML
	default:
		return nil
	}
}
