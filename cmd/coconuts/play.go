package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/oh-coconuts/internal/config"
	"github.com/vovakirdan/oh-coconuts/internal/core"
	"github.com/vovakirdan/oh-coconuts/internal/platform/tui"
	"github.com/vovakirdan/oh-coconuts/internal/registry"
	"github.com/vovakirdan/oh-coconuts/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a round of Oh Coconuts in this terminal.

Controls:
  Space/P        - Start / pause
  Left/A, Right/D - Crawl
  Up/W           - Fire a laser
  R              - Restart (after the round is over)
  Q/Ctrl+C       - Quit

A round ends once 100 ticks have passed and no coconut is left in the sky.
Rounds played in this session are ranked on the results screen; nothing is
kept after you quit.

Examples:
  coconuts play
  coconuts play --seed 7
  coconuts play --config ./my-coconuts.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger("coconuts")

	// Fail early on a broken config file rather than inside the TUI
	gameCfg, err := config.LoadCoconuts(flagConfig)
	if err != nil {
		if errors.Is(err, config.ErrInvalid) {
			fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(cmd, gameCfg),
		Seed:     flagSeed,
	}

	// Create game instance
	game, err := registry.Create("coconuts")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open the round ledger
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open round ledger", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	session := tui.NewSession(os.Getenv("USER"))

	// Run the game. Logging during the round would tear the alt screen.
	runErr := tui.Run(game, store, cfg, tui.WithSession(session))

	if store != nil {
		if stats, err := store.Stats(); err == nil && stats.Rounds > 0 {
			logger.Info("session finished",
				"rounds", stats.Rounds,
				"best", stats.BestDestroyed,
				"crabs_lost", stats.CrabsLost,
			)
		}
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
