package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paraglider/internal/config"
	"github.com/vovakirdan/paraglider/internal/core"
	"github.com/vovakirdan/paraglider/internal/games/glider"
	"github.com/vovakirdan/paraglider/internal/platform/tui"
	"github.com/vovakirdan/paraglider/internal/registry"
)

var (
	flagHoldTicks int
	flagNoWatch   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a paraglider run in the terminal.

Controls:
  Left/A/H    - Steer left
  Right/D/L   - Steer right
  R           - Play again (after game over)
  Ctrl+S      - Save a screenshot
  Q/Esc       - Quit

Terminals only report key presses, so a press keeps steering for
--hold-ticks frames. Holding the key refreshes it; the opposite
direction cancels it.

The config file is watched while playing; edits apply on the next run.

Examples:
  paraglider play
  paraglider play --seed 42
  paraglider play --config ./my-glider.yaml --log-file play.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", 0, "Frames one key press steers for (0 = from config)")
	playCmd.Flags().BoolVar(&flagNoWatch, "no-watch", false, "Do not reload the config file when it changes")
}

func runPlay(cmd *cobra.Command, args []string) {
	// The alt-screen owns the terminal, so logs go to --log-file or nowhere.
	logger, closeLog, err := newLogger(io.Discard, "paraglider")
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	cfg, err := config.LoadGlider(flagConfig)
	if err != nil {
		fatal("loading config: %v", err)
	}

	game, err := registry.Create(glider.ID)
	if err != nil {
		fatal("creating game: %v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	holdTicks := flagHoldTicks
	if holdTicks <= 0 {
		holdTicks = cfg.TUI.HoldTicks
	}

	var watcher *config.Watcher
	if path := config.ResolvePath(flagConfig); path != "" && !flagNoWatch {
		watcher, err = config.NewWatcher(path)
		if err != nil {
			logger.Warn("config watch disabled", "path", path, "error", err)
			watcher = nil
		} else {
			defer watcher.Close()
			logger.Info("watching config", "path", watcher.Path())
		}
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	final, err := tui.Run(tui.Options{
		Game:  game,
		Store: store,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		HoldTicks: holdTicks,
		Watcher:   watcher,
		Logger:    logger,
	})
	if err != nil {
		fatal("running game: %v", err)
	}

	st := final.State()
	if st.Ticks > 0 {
		fmt.Printf("Score: %d  (ticks %d, thermals %d)\n", st.Score, st.Ticks, st.Thermals)
	}
}
