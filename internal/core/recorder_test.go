package core

import "testing"

func TestRecorderKeepsOrder(t *testing.T) {
	r := NewRecorder()
	r.FillRect(NewRect(0, 0, 1, 1), ColorRed)
	r.Clear()
	r.FillRect(NewRect(1, 2, 3, 4), ColorBlack)
	r.FillEllipse(10, 20, 5, 3, ColorLightGray)
	r.FillCircle(7, 8, 2, ColorGold)
	r.DrawText("hi", 1, 2, TextStyle{Size: 20, Color: ColorBlack})

	want := []OpKind{OpClear, OpFillRect, OpFillEllipse, OpFillCircle, OpDrawText}
	if len(r.Ops) != len(want) {
		t.Fatalf("recorded %d ops, want %d (Clear drops earlier ops)", len(r.Ops), len(want))
	}
	for i, k := range want {
		if r.Ops[i].Kind != k {
			t.Errorf("op %d = %s, want %s", i, r.Ops[i].Kind, k)
		}
	}

	ellipse := r.Ops[2]
	if ellipse.Rect != NewRect(10, 20, 5, 3) {
		t.Errorf("ellipse recorded as %+v", ellipse.Rect)
	}
	if texts := r.Texts(); len(texts) != 1 || texts[0] != "hi" {
		t.Errorf("Texts() = %v", texts)
	}
	if r.Count(OpFillRect) != 1 {
		t.Errorf("Count(rect) = %d, want 1", r.Count(OpFillRect))
	}
}

func TestHex(t *testing.T) {
	if got := Hex(ColorForestGreen); got != "#228B22" {
		t.Errorf("Hex() = %q, want #228B22", got)
	}
}
