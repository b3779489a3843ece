package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paraglider/internal/config"
	"github.com/vovakirdan/paraglider/internal/core"
	"github.com/vovakirdan/paraglider/internal/storage"
)

// fakeGame ends after a fixed number of frames and records its input.
type fakeGame struct {
	endAfter int
	ticks    int
	resets   int
	last     core.SteerState
	applied  *config.GliderConfig
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) error {
	g.ticks = 0
	g.resets++
	return nil
}

func (g *fakeGame) Frame(in core.SteerState, dst core.Surface) bool {
	if g.ticks >= g.endAfter {
		return false
	}
	g.ticks++
	g.last = in
	dst.Clear()
	dst.FillRect(core.NewRect(0, 0, 10, 10), core.ColorRed)
	return g.ticks < g.endAfter
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{
		Score:     g.ticks * 3,
		Ticks:     g.ticks,
		GameOver:  g.ticks >= g.endAfter,
		EndReason: "ground",
	}
}

func (g *fakeGame) Field() (float64, float64) { return 800, 600 }

func (g *fakeGame) ApplyConfig(cfg config.GliderConfig) { g.applied = &cfg }

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func newTestModel(t *testing.T, g *fakeGame, store *storage.Store) Model {
	t.Helper()
	return NewModel(Options{
		Game:      g,
		Store:     store,
		Runtime:   core.RuntimeConfig{ScreenW: 40, ScreenH: 21, TickRate: 60},
		HoldTicks: 2,
	})
}

func TestModelRunsUntilGameStops(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	g := &fakeGame{endAfter: 3}
	m := newTestModel(t, g, store)
	if !m.Running() {
		t.Fatal("model should start running")
	}

	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		m, cmd = update(t, m, TickMsg{})
	}
	if m.Running() {
		t.Fatal("model still running after the game stopped")
	}
	if cmd != nil {
		t.Error("tick loop should stop with the run")
	}
	if m.HighScore() != 9 {
		t.Errorf("HighScore = %d, want 9", m.HighScore())
	}

	runs, err := store.RecentRuns("fake", 5)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 9 || runs[0].Ticks != 3 || runs[0].EndReason != "ground" {
		t.Errorf("saved runs = %+v", runs)
	}

	// Extra ticks neither step the game nor save again.
	m, _ = update(t, m, TickMsg{})
	if g.ticks != 3 {
		t.Errorf("stopped model stepped the game: ticks %d", g.ticks)
	}
	if runs, _ := store.RecentRuns("fake", 5); len(runs) != 1 {
		t.Errorf("run saved %d times", len(runs))
	}
}

func TestModelSteeringHold(t *testing.T) {
	g := &fakeGame{endAfter: 100}
	m := newTestModel(t, g, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg{})
	if !g.last.Left || g.last.Right {
		t.Errorf("input after left press = %+v", g.last)
	}

	m, _ = update(t, m, runeKey('d'))
	m, _ = update(t, m, TickMsg{})
	if g.last.Left || !g.last.Right {
		t.Errorf("input after right press = %+v", g.last)
	}

	// HoldTicks is 2: the second tick still holds, the third releases.
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})
	if g.last.Right {
		t.Error("hold did not expire")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &fakeGame{endAfter: 2}
	m := newTestModel(t, g, nil)

	m, _ = update(t, m, runeKey('r'))
	if g.resets != 1 {
		t.Fatalf("restart accepted while running: %d resets", g.resets)
	}

	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})
	if m.Running() {
		t.Fatal("setup: run should be over")
	}

	m, cmd := update(t, m, runeKey('r'))
	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if !m.Running() || cmd == nil {
		t.Error("restart should resume the tick loop")
	}
}

func TestModelQuitDoesNotSaveUnfinishedRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	g := &fakeGame{endAfter: 100}
	m := newTestModel(t, g, store)
	m, _ = update(t, m, TickMsg{})
	m, cmd := update(t, m, runeKey('q'))

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
	if runs, _ := store.RecentRuns("fake", 5); len(runs) != 0 {
		t.Errorf("unfinished run saved: %+v", runs)
	}
}

func TestModelQuitAfterGameOverSavesOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	g := &fakeGame{endAfter: 1}
	m := newTestModel(t, g, store)
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, runeKey('q'))

	if runs, _ := store.RecentRuns("fake", 5); len(runs) != 1 {
		t.Errorf("saved %d runs, want 1", len(runs))
	}
}

func TestModelQuitWinsOverRestart(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	m := newTestModel(t, g, nil)
	m, _ = update(t, m, TickMsg{})

	m.actions.Set(core.ActionRestart)
	m.actions.Set(core.ActionQuit)
	next, cmd := m.handleActions()
	nm := next.(Model)

	if cmd == nil || nm.View() != "" {
		t.Error("quit was not handled")
	}
	if g.resets != 1 {
		t.Errorf("restart ran alongside quit: %d resets", g.resets)
	}
	if nm.actions.Has(core.ActionQuit) || nm.actions.Has(core.ActionRestart) {
		t.Error("handled actions were not cleared")
	}
}

func TestModelAppliesConfigReload(t *testing.T) {
	g := &fakeGame{endAfter: 100}
	m := newTestModel(t, g, nil)

	cfg := config.DefaultGliderConfig()
	cfg.Glider.Gravity = 0.2
	m, _ = update(t, m, configMsg(cfg))

	if g.applied == nil || g.applied.Glider.Gravity != 0.2 {
		t.Errorf("config not applied: %+v", g.applied)
	}
}

func TestModelViewIncludesScreenAndHelp(t *testing.T) {
	g := &fakeGame{endAfter: 100}
	m := newTestModel(t, g, nil)
	m, _ = update(t, m, TickMsg{})

	view := m.View()
	if !strings.Contains(view, "High: 0") {
		t.Errorf("view missing high score: %q", view)
	}
	if !strings.Contains(view, "steer left") {
		t.Error("view missing help bar")
	}
	if lines := strings.Count(view, "\n"); lines < 20 {
		t.Errorf("view has %d line breaks, want the 20-row screen plus help", lines)
	}
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{endAfter: 100}
	m := newTestModel(t, g, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})

	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 1 {
		t.Error("resize should not restart the run")
	}
}
