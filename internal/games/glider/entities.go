package glider

import (
	"math/rand"

	"github.com/vovakirdan/paraglider/internal/core"
)

// Kind tags which collection an entity belongs to.
type Kind int

const (
	KindMountain Kind = iota // obstacle, ends the run
	KindCloud                // hazard, adds descent
	KindCable                // obstacle, ends the run
	KindThermal              // pickup, lift and bonus
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMountain:
		return "mountain"
	case KindCloud:
		return "cloud"
	case KindCable:
		return "cable"
	case KindThermal:
		return "thermal"
	default:
		return "unknown"
	}
}

// Entity is a collidable rectangle with its category.
type Entity struct {
	Kind Kind
	Rect core.Rect
}

// Spawn geometry in field pixels.
const (
	mountainMinW    = 100
	mountainMaxW    = 200
	mountainMinH    = 50
	mountainMaxH    = 150
	mountainMaxRise = 100 // how far above the ground band a mountain's top may start
	mountainMargin  = 100 // right margin for x

	cloudW = 100
	cloudH = 60

	cableW       = 10
	cableH       = 200
	cableMinY    = 100
	cableBottomY = 200 // y range ends this far above the field bottom

	thermalW       = 50
	thermalH       = 10
	thermalMinY    = 100
	thermalBottomY = 100
)

// Spawner builds entities at random positions inside the field.
// Every draw is uniform over a half-open range.
type Spawner struct {
	rng    *rand.Rand
	width  float64
	height float64
	ground float64
}

// NewSpawner creates a spawner for a width x height field whose ground band
// is ground pixels tall.
func NewSpawner(seed int64, width, height, ground float64) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		width:  width,
		height: height,
		ground: ground,
	}
}

// uniform draws from [lo, hi). An empty range yields lo.
func (s *Spawner) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// Mountain returns a mountain anchored near the ground band.
func (s *Spawner) Mountain() Entity {
	x := s.uniform(0, s.width-mountainMargin)
	y := s.height - s.ground - s.uniform(0, mountainMaxRise)
	w := s.uniform(mountainMinW, mountainMaxW)
	h := s.uniform(mountainMinH, mountainMaxH)
	return Entity{Kind: KindMountain, Rect: core.NewRect(x, y, w, h)}
}

// Cloud returns a cloud in the upper half of the field.
func (s *Spawner) Cloud() Entity {
	x := s.uniform(0, s.width-cloudW)
	y := s.uniform(0, s.height/2)
	return Entity{Kind: KindCloud, Rect: core.NewRect(x, y, cloudW, cloudH)}
}

// Cable returns a vertical cable.
func (s *Spawner) Cable() Entity {
	x := s.uniform(0, s.width-cableW)
	y := s.uniform(cableMinY, s.height-cableBottomY)
	return Entity{Kind: KindCable, Rect: core.NewRect(x, y, cableW, cableH)}
}

// Thermal returns a thin thermal pickup.
func (s *Spawner) Thermal() Entity {
	x := s.uniform(0, s.width-thermalW)
	y := s.uniform(thermalMinY, s.height-thermalBottomY)
	return Entity{Kind: KindThermal, Rect: core.NewRect(x, y, thermalW, thermalH)}
}

// Spawn builds one entity of the given kind.
func (s *Spawner) Spawn(kind Kind) Entity {
	switch kind {
	case KindMountain:
		return s.Mountain()
	case KindCloud:
		return s.Cloud()
	case KindCable:
		return s.Cable()
	case KindThermal:
		return s.Thermal()
	default:
		panic("glider: spawn of unknown kind " + kind.String())
	}
}
