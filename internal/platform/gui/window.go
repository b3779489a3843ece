//go:build ebiten

package gui

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/paraglider/internal/core"
	"github.com/vovakirdan/paraglider/internal/storage"
)

// Window adapts a registry.Game to the ebiten.Game interface.
// Steering reads real key state, so holding a key steers and releasing it
// stops, unlike the terminal frontend.
type Window struct {
	opts    Options
	logger  *log.Logger
	surface *ImageSurface
	input   core.InputState
	actions core.InputFrame

	running bool
	saved   bool
	width   int
	height  int
}

// NewWindow starts the first run and sizes the surface to the playfield.
func NewWindow(opts Options) (*Window, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &Window{opts: opts, logger: logger, actions: core.NewInputFrame()}
	if err := w.restart(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Window) restart() error {
	if err := w.opts.Game.Reset(w.opts.Runtime); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	fw, fh := w.opts.Game.Field()
	width, height := int(math.Ceil(fw)), int(math.Ceil(fh))
	if w.surface == nil || width != w.width || height != w.height {
		w.surface = NewImageSurface(width, height)
		w.width, w.height = width, height
	}
	w.input.Reset()
	w.running = true
	w.saved = false
	return nil
}

// Update samples the keyboard and runs one frame.
func (w *Window) Update() error {
	w.actions.Clear()
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.actions.Set(core.ActionQuit)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.actions.Set(core.ActionRestart)
	}

	switch {
	case w.actions.Has(core.ActionQuit):
		if w.running && w.opts.Game.State().Ticks > 0 {
			w.logger.Info("run abandoned", "score", w.opts.Game.State().Score)
		}
		return ebiten.Termination
	case !w.running:
		if w.actions.Has(core.ActionRestart) {
			return w.restart()
		}
		return nil
	}

	w.track(core.ActionSteerLeft, ebiten.KeyArrowLeft, ebiten.KeyA)
	w.track(core.ActionSteerRight, ebiten.KeyArrowRight, ebiten.KeyD)

	w.running = w.opts.Game.Frame(w.input.Sample(), w.surface)
	if !w.running {
		w.finish()
	}
	return nil
}

// track mirrors the pressed state of keys into the input state.
func (w *Window) track(a core.Action, keys ...ebiten.Key) {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			w.input.Press(a)
			return
		}
	}
	w.input.Release(a)
}

// finish records the run once, after it has ended.
func (w *Window) finish() {
	st := w.opts.Game.State()
	if w.saved || !st.GameOver {
		return
	}
	w.saved = true

	w.logger.Info("run finished", "score", st.Score, "ticks", st.Ticks, "thermals", st.Thermals, "reason", st.EndReason)
	if w.opts.Store == nil {
		return
	}
	if _, err := w.opts.Store.SaveRun(storage.RunRecord{
		GameID:    w.opts.Game.ID(),
		Score:     st.Score,
		Ticks:     st.Ticks,
		Thermals:  st.Thermals,
		EndReason: st.EndReason,
	}); err != nil {
		w.logger.Error("could not save run", "error", err)
	}
}

// Draw presents the last rendered frame.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.DrawImage(w.surface.Image(), nil)
}

// Layout keeps the logical screen at playfield size; ebiten scales it to the window.
func (w *Window) Layout(int, int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	win, err := NewWindow(opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}
	ebiten.SetWindowTitle(opts.Game.Title())
	ebiten.SetWindowSize(int(float64(win.width)*scale), int(float64(win.height)*scale))

	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
