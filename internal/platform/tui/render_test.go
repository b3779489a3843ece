package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paraglider/internal/core"
)

func TestPainterKeepsTextAndRows(t *testing.T) {
	scr := core.NewScreen(6, 3)
	scr.Paint(0, 1, 3, 2, core.ColorForestGreen)
	scr.DrawText(1, 1, "hi", core.ColorBlack)

	out := NewPainter(nil).Render(scr)
	if strings.Count(out, "\n") != 2 {
		t.Errorf("want 3 rows, got %q", out)
	}
	if !strings.Contains(out, "hi") {
		t.Errorf("text missing from %q", out)
	}
}

func TestPainterCachesStyles(t *testing.T) {
	p := NewPainter(nil)
	scr := core.NewScreen(4, 2)
	scr.Paint(0, 0, 2, 1, core.ColorRed)
	p.Render(scr)
	p.Render(scr)

	// sky with black text and red with black text
	if len(p.styles) != 2 {
		t.Errorf("cached %d styles, want 2", len(p.styles))
	}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionSteerLeft},
		{runeKey('a'), core.ActionSteerLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionSteerRight},
		{runeKey('d'), core.ActionSteerRight},
		{runeKey('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey('r'), core.ActionNone}, // restart starts disabled
		{runeKey('x'), core.ActionNone},
	}
	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %s, want %s", tt.msg.String(), got, tt.want)
		}
	}

	keys.Restart.SetEnabled(true)
	if got := keys.Action(runeKey('r')); got != core.ActionRestart {
		t.Errorf("enabled restart = %s", got)
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlS}, keys.Screenshot) {
		t.Error("ctrl+s should take a screenshot")
	}
}
