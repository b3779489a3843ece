// Package glider implements the paraglider game: a glider sinks through a
// field of mountains, cables, clouds and thermals while the player steers it
// left and right.
package glider

import (
	"sync"
	"time"

	"github.com/vovakirdan/paraglider/internal/config"
	"github.com/vovakirdan/paraglider/internal/core"
	"github.com/vovakirdan/paraglider/internal/registry"
)

// ID is the registry and score storage identifier.
const ID = "glider"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a World and its Scheduler to the registry.Game interface.
type Game struct {
	mu      sync.Mutex
	pending *config.GliderConfig // applied on the next Reset

	sched *Scheduler
}

// New creates a new paraglider game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Paraglider"
}

// ApplyConfig queues cfg for the next run. The current run keeps its config.
func (g *Game) ApplyConfig(cfg config.GliderConfig) {
	g.mu.Lock()
	g.pending = &cfg
	g.mu.Unlock()
}

// Reset starts a fresh run. A zero seed is replaced by the current time.
func (g *Game) Reset(rt core.RuntimeConfig) error {
	cfg, err := g.nextConfig()
	if err != nil {
		return err
	}

	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w, err := NewWorld(cfg, seed)
	if err != nil {
		return err
	}
	g.sched = NewScheduler(w)
	return nil
}

func (g *Game) nextConfig() (config.GliderConfig, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending != nil {
		cfg := *g.pending
		g.pending = nil
		return cfg, nil
	}
	if g.sched != nil {
		return g.sched.World().Config(), nil
	}
	return config.LoadGlider(configPath)
}

// Frame advances the run by one frame. Before the first Reset it does nothing.
func (g *Game) Frame(in core.SteerState, dst core.Surface) bool {
	if g.sched == nil {
		return false
	}
	return g.sched.Frame(in, dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sched == nil {
		return core.GameState{}
	}
	return g.sched.World().State()
}

// Field returns the playfield size of the current run.
func (g *Game) Field() (width, height float64) {
	if g.sched == nil {
		d := config.DefaultGliderConfig()
		return d.Field.Width, d.Field.Height
	}
	return g.sched.World().Field()
}

// Scheduler exposes the running scheduler, nil before the first Reset.
func (g *Game) Scheduler() *Scheduler {
	return g.sched
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
