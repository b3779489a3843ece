package glider

import (
	"testing"

	"github.com/vovakirdan/paraglider/internal/core"
)

func TestAutopilot(t *testing.T) {
	tests := []struct {
		name    string
		nearest core.Rect // the glider's centre is at (400, 170)
		want    core.SteerState
	}{
		{"thermal to the left", core.NewRect(100, 165, 50, 10), core.SteerState{Left: true}},
		{"thermal to the right", core.NewRect(600, 165, 50, 10), core.SteerState{Right: true}},
		{"thermal overhead", core.NewRect(378, 165, 50, 10), core.SteerState{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := quietWorld(t)
			w.Thermals[0].Rect = tt.nearest
			// Farther away vertically, on the opposite side.
			w.Thermals[1].Rect = core.NewRect(800-tt.nearest.X, 450, 50, 10)

			if got := Autopilot(w); got != tt.want {
				t.Errorf("Autopilot = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAutopilotReachesThermal(t *testing.T) {
	w := quietWorld(t)
	w.Thermals[0].Rect = core.NewRect(100, 150, 50, 10)

	for i := 0; i < 2000 && !w.Over; i++ {
		w.Step(Autopilot(w))
	}
	if w.ThermalsCollected == 0 {
		t.Fatal("autopilot collected no thermal")
	}
	if w.Score != w.Ticks+10*w.ThermalsCollected {
		t.Errorf("score %d != ticks %d + 10*%d", w.Score, w.Ticks, w.ThermalsCollected)
	}
}
