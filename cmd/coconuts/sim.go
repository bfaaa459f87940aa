package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/oh-coconuts/internal/core"
	"github.com/vovakirdan/oh-coconuts/internal/games/coconuts"
	"github.com/vovakirdan/oh-coconuts/internal/platform/tui"
	"github.com/vovakirdan/oh-coconuts/internal/storage"
)

var (
	flagRounds    int
	flagFireEvery int
	flagMaxFrames int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run autopilot rounds without a terminal UI",
	Long: `Play rounds with an autopilot crab and print the results.

The autopilot walks under the lowest coconut and fires when its eyes line
up. Each round uses --seed plus the round number, so a fixed seed gives the
same results every time.

Examples:
  coconuts sim
  coconuts sim --rounds 20 --seed 1
  coconuts sim --fire-every 1 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRounds, "rounds", 5, "Number of rounds to play")
	simCmd.Flags().IntVar(&flagFireEvery, "fire-every", 4, "Frames between autopilot shots")
	simCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 10000, "Give up on a round after this many frames")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger("coconuts-sim")
	coconuts.SetLogger(logger)

	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening round ledger: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := tui.NewSession("autopilot")

	for i := 0; i < flagRounds; i++ {
		game := coconuts.New()
		game.Reset(core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  24,
			TickRate: flagFPS,
			Seed:     seed + int64(i),
		})

		pilot := coconuts.NewAutopilot(flagFireEvery)
		frames := 0
		for ; frames < flagMaxFrames && !game.State().GameOver; frames++ {
			game.Step(pilot.Next(game))
		}

		state := game.State()
		if !state.GameOver {
			logger.Warn("round did not finish", "round", i+1, "frames", frames)
			continue
		}

		id, err := store.SaveRound(storage.Round{
			SessionID: session.ID,
			Player:    fmt.Sprintf("seed %d", seed+int64(i)),
			Destroyed: state.Destroyed,
			Beached:   state.Beached,
			Health:    state.Health,
			Ticks:     state.Ticks,
			CrabAlive: state.CrabAlive,
		})
		if err != nil {
			logger.Error("could not record round", "err", err)
			continue
		}

		logger.Info("round finished",
			"round", i+1,
			"id", id,
			"destroyed", state.Destroyed,
			"beached", state.Beached,
			"health", state.Health,
			"frames", frames,
		)
	}

	printRounds(store)
}

// printRounds writes the ranked rounds and a summary to stdout.
func printRounds(store *storage.Store) {
	rounds, err := store.TopRounds(flagRounds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Autopilot rounds")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds finished.")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-22s  %-9s  %-7s  %-6s  %s\n", "Rank", "Seed", "Destroyed", "Beached", "Health", "Crab")
	fmt.Printf("  %-4s  %-22s  %-9s  %-7s  %-6s  %s\n", "----", "----", "---------", "-------", "------", "----")

	for i, r := range rounds {
		crab := "alive"
		if !r.CrabAlive {
			crab = "lost"
		}
		fmt.Printf("  %-4d  %-22s  %-9d  %-7d  %-6d  %s\n", i+1, r.Player, r.Destroyed, r.Beached, r.Health, crab)
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Rounds: %d  Best: %d  Avg destroyed: %.1f  Crabs lost: %d\n",
			stats.Rounds, stats.BestDestroyed, stats.AvgDestroyed, stats.CrabsLost)
	}
}
