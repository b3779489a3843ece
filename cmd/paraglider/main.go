// paraglider is an arcade game about riding thermals while avoiding mountains,
// cables and clouds, playable in the terminal, in a window or over SSH.
//
// Usage:
//
//	paraglider list              - List available games
//	paraglider play              - Play in the terminal
//	paraglider window            - Play in a desktop window (build with -tags ebiten)
//	paraglider serve             - Start SSH server for remote play
//	paraglider scores            - Show high scores
//	paraglider simulate          - Run headless with the autopilot
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/paraglider.db)
//	--config <path>     - Use a custom glider YAML config
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paraglider/internal/games/glider"
	"github.com/vovakirdan/paraglider/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paraglider",
	Short: "Paraglider - ride thermals, dodge mountains",
	Long: `Paraglider is an arcade game: steer a falling glider left and right,
catch thermals to climb and score, and keep away from mountains, cables,
clouds and the ground.

Available commands:
  list      - Show all available games
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run a headless game with the autopilot

Examples:
  paraglider play
  paraglider play --seed 42 --fps 30
  paraglider serve --ssh :2222
  paraglider scores --interactive
  paraglider simulate --runs 5`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		glider.SetConfigPath(flagConfig)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom glider config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play discards them otherwise)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
