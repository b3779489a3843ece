package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionSteerLeft         // Left arrow, A
	ActionSteerRight        // Right arrow, D
	ActionRestart           // R - start a fresh world after game over
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSteerLeft:
		return "SteerLeft"
	case ActionSteerRight:
		return "SteerRight"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// SteerState is the input sampled by one simulation tick: which steering
// directions are currently held. Both may be held at once.
type SteerState struct {
	Left  bool
	Right bool
}

// InputState is the latest known key state, written by press/release events
// and sampled once per tick. Only the last value per direction is kept;
// presses between two samples are not queued.
type InputState struct {
	left  bool
	right bool
}

// Press marks a steering action as held. Non-steering actions are ignored.
func (s *InputState) Press(a Action) {
	s.set(a, true)
}

// Release marks a steering action as no longer held.
func (s *InputState) Release(a Action) {
	s.set(a, false)
}

func (s *InputState) set(a Action, held bool) {
	switch a {
	case ActionSteerLeft:
		s.left = held
	case ActionSteerRight:
		s.right = held
	}
}

// Sample returns the current steering state.
func (s *InputState) Sample() SteerState {
	return SteerState{Left: s.left, Right: s.right}
}

// Reset releases both directions.
func (s *InputState) Reset() {
	s.left, s.right = false, false
}

// InputFrame collects one-shot actions (restart, quit) triggered between two
// frames.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
