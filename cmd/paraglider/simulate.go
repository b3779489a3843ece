package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paraglider/internal/config"
	"github.com/vovakirdan/paraglider/internal/core"
	"github.com/vovakirdan/paraglider/internal/games/glider"
	"github.com/vovakirdan/paraglider/internal/storage"
)

var (
	flagRuns     int
	flagMaxTicks int
	flagSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless games with the autopilot",
	Long: `Run games without a screen. The autopilot steers toward the nearest
thermal; every frame is still rendered into an in-memory recorder.

Run i uses seed --seed+i, so a fixed --seed reproduces the same results.

Examples:
  paraglider simulate
  paraglider simulate --runs 10 --seed 1
  paraglider simulate --runs 3 --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 100000, "Stop a run after this many frames")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Record finished runs in the scores database")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr, "paraglider-sim")
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	cfg, err := config.LoadGlider(flagConfig)
	if err != nil {
		fatal("loading config: %v", err)
	}

	var store *storage.Store
	if flagSave {
		store = openStore(logger)
		if store != nil {
			defer store.Close()
		}
	}

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	fmt.Printf("  %-4s  %-20s  %-8s  %-7s  %-8s  %-6s  %s\n", "Run", "Seed", "Score", "Ticks", "Thermals", "Clouds", "Ended by")
	fmt.Printf("  %-4s  %-20s  %-8s  %-7s  %-8s  %-6s  %s\n", "---", "----", "-----", "-----", "--------", "------", "--------")

	best := 0
	for i := 0; i < flagRuns; i++ {
		seed := base + int64(i)
		st, clouds, err := simulate(cfg, seed, flagMaxTicks)
		if err != nil {
			fatal("run %d: %v", i+1, err)
		}
		best = max(best, st.Score)

		reason := st.EndReason
		if !st.GameOver {
			reason = "max-ticks"
		}
		fmt.Printf("  %-4d  %-20d  %-8d  %-7d  %-8d  %-6d  %s\n", i+1, seed, st.Score, st.Ticks, st.Thermals, clouds, reason)
		logger.Debug("simulated run", "seed", seed, "score", st.Score, "reason", reason)

		if store != nil && st.GameOver {
			if _, err := store.SaveRun(storage.RunRecord{
				GameID:    glider.ID,
				Score:     st.Score,
				Ticks:     st.Ticks,
				Thermals:  st.Thermals,
				EndReason: st.EndReason,
			}); err != nil {
				logger.Warn("could not save run", "error", err)
			}
		}
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", best)
}

// simulate plays one run to game over, or until maxTicks frames have passed.
// It also returns how many cloud contacts slowed the glider down.
func simulate(cfg config.GliderConfig, seed int64, maxTicks int) (core.GameState, int, error) {
	g := glider.New()
	g.ApplyConfig(cfg)
	if err := g.Reset(core.RuntimeConfig{Seed: seed}); err != nil {
		return core.GameState{}, 0, err
	}
	sched := g.Scheduler()
	rec := core.NewRecorder()

	clouds := 0
	for frames := 0; frames < maxTicks; frames++ {
		more := sched.Frame(glider.Autopilot(sched.World()), rec)
		clouds += sched.Last().CloudsTouched
		if !more {
			break
		}
	}
	return g.State(), clouds, nil
}
