// coconuts is a terminal game: a crab on the beach fires lasers at coconuts
// falling from the palms.
//
// Usage:
//
//	coconuts play            - Play in this terminal
//	coconuts serve           - Start SSH server for remote play
//	coconuts sim             - Run autopilot rounds without a terminal UI
//	coconuts config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom game config YAML
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/oh-coconuts/internal/config"
	"github.com/vovakirdan/oh-coconuts/internal/games/coconuts"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coconuts",
	Short: "Oh Coconuts - defend the beach from falling coconuts",
	Long: `Oh Coconuts drops coconuts from the top of the screen. Move the crab
along the beach and fire lasers from its eyes to destroy them before they
land. Coconuts that reach the sand are beached; coconuts that land on the
crab cost it health.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run autopilot rounds and print the results
  config   - Print the effective configuration

Examples:
  coconuts play
  coconuts play --seed 42 --fps 60
  coconuts serve --ssh :2222
  coconuts sim --rounds 10 --log-level debug
  coconuts config > my-coconuts.yaml`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		coconuts.SetConfigPath(flagConfig)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a stderr logger at the level given by --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// tickRate returns --fps when given, otherwise the config's tick_rate.
func tickRate(cmd *cobra.Command, cfg config.CoconutsConfig) int {
	if cmd.Flags().Changed("fps") || cfg.Timing.TickRate <= 0 {
		return flagFPS
	}
	return cfg.Timing.TickRate
}
