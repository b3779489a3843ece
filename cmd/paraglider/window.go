package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paraglider/internal/core"
	"github.com/vovakirdan/paraglider/internal/games/glider"
	"github.com/vovakirdan/paraglider/internal/platform/gui"
	"github.com/vovakirdan/paraglider/internal/registry"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window rendered with Ebitengine.

Window support is only compiled in with the 'ebiten' build tag:

  go build -tags ebiten ./cmd/paraglider

Controls:
  Left/A     - Steer left (while held)
  Right/D    - Steer right (while held)
  R          - Play again (after game over)
  Q/Esc      - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window pixels per field pixel")
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr, "paraglider")
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	game, err := registry.Create(glider.ID)
	if err != nil {
		fatal("creating game: %v", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	err = gui.Run(gui.Options{
		Game:    game,
		Store:   store,
		Runtime: core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
		Scale:   flagScale,
		Logger:  logger,
	})
	if errors.Is(err, gui.ErrUnavailable) {
		fatal("%v\nUse 'paraglider play' for the terminal version.", err)
	}
	if err != nil {
		fatal("running window: %v", err)
	}
}
