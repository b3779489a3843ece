package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paraglider/internal/config"
	"github.com/vovakirdan/paraglider/internal/core"
	"github.com/vovakirdan/paraglider/internal/registry"
	"github.com/vovakirdan/paraglider/internal/storage"
)

// Options configures a game session model.
type Options struct {
	Game      registry.Game
	Store     *storage.Store     // may be nil
	Runtime   core.RuntimeConfig // host size, tick rate and seed
	HoldTicks int                // ticks one key press holds a direction
	Watcher   *config.Watcher    // may be nil; reloads apply on restart
	Logger    *log.Logger        // may be nil
	Renderer  *lipgloss.Renderer // may be nil for the local terminal
	Player    string             // recorded in logs
}

// Reconfigurable is implemented by games that accept a new configuration
// between runs, for example after the config file was edited.
type Reconfigurable interface {
	ApplyConfig(cfg config.GliderConfig)
}

// configMsg carries a reloaded configuration from the watcher.
type configMsg config.GliderConfig

// configErrMsg carries a watcher error.
type configErrMsg struct{ err error }

// Model is the Bubble Tea model for one paraglider session.
type Model struct {
	game    registry.Game
	store   *storage.Store
	runtime core.RuntimeConfig
	watcher *config.Watcher
	logger  *log.Logger
	player  string

	screen  *core.Screen
	surface *CellSurface
	painter *Painter
	hold    *HoldInput
	actions core.InputFrame // one-shot actions not yet handled
	keys    KeyMap
	help    help.Model

	running    bool
	state      core.GameState
	highScore  int
	scoreSaved bool
	quitting   bool
	err        error
}

// NewModel creates a new Bubble Tea model for the given options.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 1 {
		d := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = d.ScreenW, d.ScreenH
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(rt.ScreenW, rt.ScreenH-1) // last row is the help bar
	fw, fh := opts.Game.Field()

	m := Model{
		game:    opts.Game,
		store:   opts.Store,
		runtime: rt,
		watcher: opts.Watcher,
		logger:  logger,
		player:  opts.Player,
		screen:  screen,
		surface: NewCellSurface(screen, fw, fh),
		painter: NewPainter(opts.Renderer),
		hold:    NewHoldInput(opts.HoldTicks),
		actions: core.NewInputFrame(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.help.Width = rt.ScreenW

	if m.store != nil {
		if high, err := m.store.HighScore(m.game.ID()); err == nil {
			m.highScore = high
		} else {
			logger.Warn("could not read high score", "error", err)
		}
	}

	m.start()
	return m
}

// start begins a fresh run.
func (m *Model) start() {
	if err := m.game.Reset(m.runtime); err != nil {
		m.err = err
		m.running = false
		m.logger.Error("cannot start run", "error", err)
		return
	}
	m.err = nil
	m.running = true
	m.scoreSaved = false
	m.state = m.game.State()
	m.hold.Reset()
	m.keys.Restart.SetEnabled(false)
	m.surface.SetField(m.game.Field())
	m.logger.Debug("run started", "player", m.player)
}

// Init starts the tick loop and, if configured, the config watcher.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForConfig(m.watcher)}
	if m.running {
		cmds = append(cmds, tickCmd(m.runtime.TickRate))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case configMsg:
		if c, ok := m.game.(Reconfigurable); ok {
			c.ApplyConfig(config.GliderConfig(msg))
			m.logger.Info("config reloaded, applies to the next run")
		}
		return m, waitForConfig(m.watcher)

	case configErrMsg:
		m.logger.Warn("config reload failed", "error", msg.err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionSteerLeft, core.ActionSteerRight:
		m.hold.Press(a)
	case core.ActionQuit, core.ActionRestart:
		m.actions.Set(a)
		return m.handleActions()
	}

	return m, nil
}

// handleActions runs the pending one-shot actions. Quit wins over restart.
func (m Model) handleActions() (tea.Model, tea.Cmd) {
	quit := m.actions.Has(core.ActionQuit)
	restart := m.actions.Has(core.ActionRestart)
	m.actions.Clear()

	switch {
	case quit:
		m.quitting = true
		if m.running && m.state.Ticks > 0 {
			m.logger.Info("run abandoned", "player", m.player, "score", m.state.Score, "ticks", m.state.Ticks)
		}
		return m, tea.Quit
	case restart && !m.running:
		m.start()
		if m.running {
			return m, tickCmd(m.runtime.TickRate)
		}
	}
	return m, nil
}

// handleTick runs one frame. The tick loop stops with the run and is started
// again by a restart.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.running {
		return m, nil
	}

	m.running = m.game.Frame(m.hold.Tick(), m.surface)
	m.state = m.game.State()

	if !m.running {
		m.finish()
		m.keys.Restart.SetEnabled(true)
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate)
}

// finish records the run once, after it has ended. Abandoned runs are not
// recorded.
func (m *Model) finish() {
	if m.scoreSaved || !m.state.GameOver {
		return
	}
	m.scoreSaved = true

	m.logger.Info("run finished",
		"player", m.player,
		"score", m.state.Score,
		"ticks", m.state.Ticks,
		"thermals", m.state.Thermals,
		"reason", m.state.EndReason,
	)

	if m.state.Score > m.highScore {
		m.highScore = m.state.Score
	}
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		GameID:    m.game.ID(),
		Score:     m.state.Score,
		Ticks:     m.state.Ticks,
		Thermals:  m.state.Thermals,
		EndReason: m.state.EndReason,
	})
	if err != nil {
		m.logger.Error("could not save run", "error", err)
	}
}

// saveScreenshot writes the current screen as plain text under
// ~/.arcade/screenshots.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("cannot start game: %v\n\npress q to quit", m.err)
	}

	status := fmt.Sprintf("High: %d  ", m.highScore)
	return m.painter.Render(m.screen) + "\n" + m.painter.Status(status) + m.help.View(m.keys)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// Running reports whether the current run is still in progress.
func (m Model) Running() bool {
	return m.running
}

// HighScore returns the best score known to this session.
func (m Model) HighScore() int {
	return m.highScore
}

// waitForConfig blocks on the watcher's channels. A nil watcher never fires.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Configs:
			if !ok {
				return nil
			}
			return configMsg(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(opts Options) (Model, error) {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}
	m, _ := final.(Model)
	return m, nil
}
