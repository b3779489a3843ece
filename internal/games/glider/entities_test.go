package glider

import "testing"

func TestSpawnerRanges(t *testing.T) {
	s := NewSpawner(42, 800, 600, 50)

	tests := []struct {
		kind       Kind
		minX, maxX float64 // x in [minX, maxX)
		minY, maxY float64 // y in [minY, maxY)
		minW, maxW float64 // w in [minW, maxW]
		minH, maxH float64
	}{
		{KindMountain, 0, 700, 450, 550.0001, 100, 200, 50, 150},
		{KindCloud, 0, 700, 0, 300, 100, 100, 60, 60},
		{KindCable, 0, 790, 100, 400, 10, 10, 200, 200},
		{KindThermal, 0, 750, 100, 500, 50, 50, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			for i := 0; i < 2000; i++ {
				e := s.Spawn(tt.kind)
				r := e.Rect
				if e.Kind != tt.kind {
					t.Fatalf("Spawn(%s) returned kind %s", tt.kind, e.Kind)
				}
				if r.X < tt.minX || r.X >= tt.maxX {
					t.Fatalf("x = %v, want [%v, %v)", r.X, tt.minX, tt.maxX)
				}
				if r.Y < tt.minY || r.Y >= tt.maxY {
					t.Fatalf("y = %v, want [%v, %v)", r.Y, tt.minY, tt.maxY)
				}
				if r.W < tt.minW || r.W > tt.maxW || r.H < tt.minH || r.H > tt.maxH {
					t.Fatalf("size = %vx%v out of range", r.W, r.H)
				}
			}
		})
	}
}

func TestMountainTopNeverBelowGround(t *testing.T) {
	s := NewSpawner(7, 800, 600, 50)
	for i := 0; i < 1000; i++ {
		m := s.Mountain()
		if m.Rect.Y > 550 {
			t.Fatalf("mountain top %v below ground top 550", m.Rect.Y)
		}
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	a := NewSpawner(99, 800, 600, 50)
	b := NewSpawner(99, 800, 600, 50)
	for i := 0; i < 50; i++ {
		k := Kind(i % 4)
		if ea, eb := a.Spawn(k), b.Spawn(k); ea != eb {
			t.Fatalf("draw %d differs: %+v vs %+v", i, ea, eb)
		}
	}
}

func TestSpawnerEmptyRangeUsesLowerBound(t *testing.T) {
	// Field exactly as wide as a thermal leaves no room for x.
	s := NewSpawner(1, 50, 600, 50)
	if got := s.Thermal().Rect.X; got != 0 {
		t.Errorf("thermal x = %v, want 0", got)
	}
}

func TestSpawnUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewSpawner(1, 800, 600, 50).Spawn(Kind(9))
}

func TestKindString(t *testing.T) {
	want := map[Kind]string{
		KindMountain: "mountain",
		KindCloud:    "cloud",
		KindCable:    "cable",
		KindThermal:  "thermal",
		Kind(9):      "unknown",
	}
	for k, s := range want {
		if k.String() != s {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), k.String(), s)
		}
	}
}
