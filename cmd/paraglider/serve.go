package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paraglider/internal/games/glider"
	"github.com/vovakirdan/paraglider/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeHold   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the paraglider SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own run. Scores are stored per-server
(all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  paraglider serve                           # Listen on :23234 with auto-generated key
  paraglider serve --ssh :2222               # Listen on port 2222
  paraglider serve --host-key ./my_host_key  # Use specific host key
  paraglider serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagServeHold, "hold-ticks", def.HoldTicks, "Frames one key press steers for")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr, "paraglider-ssh")
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		GameID:      glider.ID,
		TickRate:    flagFPS,
		HoldTicks:   flagServeHold,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting paraglider SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(context.Background()); err != nil {
		fatal("server: %v", err)
	}
}
