package glider

import "github.com/vovakirdan/paraglider/internal/core"

// SchedulerState is the frame scheduler's run state.
type SchedulerState int

const (
	Running SchedulerState = iota
	Stopped
)

// String returns the state name.
func (s SchedulerState) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Scheduler drives one World: one update and one render per frame while the
// world is running, then a single game over render. Stopped is final; a new
// run needs a new World and Scheduler.
type Scheduler struct {
	world *World
	state SchedulerState
	last  core.StepResult
}

// NewScheduler creates a running scheduler that owns w.
func NewScheduler(w *World) *Scheduler {
	return &Scheduler{world: w, state: Running}
}

// Frame runs one scheduling opportunity and reports whether the host should
// call Frame again.
func (s *Scheduler) Frame(in core.SteerState, dst core.Surface) bool {
	if s.state == Stopped {
		return false
	}

	s.last = s.world.Step(in)
	Render(s.world, dst)

	if s.world.Over {
		RenderGameOver(s.world, dst)
		s.state = Stopped
		return false
	}
	return true
}

// State returns the scheduler's run state.
func (s *Scheduler) State() SchedulerState {
	return s.state
}

// World returns the world being driven. Callers must treat it as read-only.
func (s *Scheduler) World() *World {
	return s.world
}

// Last returns the result of the most recent tick.
func (s *Scheduler) Last() core.StepResult {
	return s.last
}
