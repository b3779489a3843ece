package tui

import "github.com/vovakirdan/paraglider/internal/core"

// DefaultHoldTicks is how long one key press keeps a direction held.
const DefaultHoldTicks = 30

// HoldInput turns terminal key presses into held steering.
// Terminals report presses and auto-repeats but no releases, so a press holds
// its direction for a fixed number of ticks. Auto-repeat refreshes the hold
// and pressing the opposite direction cancels it.
type HoldInput struct {
	ticks int
	left  int
	right int
	state core.InputState
}

// NewHoldInput creates a hold tracker. ticks <= 0 uses DefaultHoldTicks.
func NewHoldInput(ticks int) *HoldInput {
	if ticks <= 0 {
		ticks = DefaultHoldTicks
	}
	return &HoldInput{ticks: ticks}
}

// Press records a key press. Non-steering actions are ignored.
func (h *HoldInput) Press(a core.Action) {
	switch a {
	case core.ActionSteerLeft:
		h.left, h.right = h.ticks, 0
	case core.ActionSteerRight:
		h.right, h.left = h.ticks, 0
	}
}

// Tick samples the held directions for one simulation tick and counts the
// holds down.
func (h *HoldInput) Tick() core.SteerState {
	h.apply(core.ActionSteerLeft, &h.left)
	h.apply(core.ActionSteerRight, &h.right)
	return h.state.Sample()
}

func (h *HoldInput) apply(a core.Action, remaining *int) {
	if *remaining > 0 {
		h.state.Press(a)
		*remaining--
		return
	}
	h.state.Release(a)
}

// Reset releases both directions.
func (h *HoldInput) Reset() {
	h.left, h.right = 0, 0
	h.state.Reset()
}
