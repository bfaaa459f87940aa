package core

// DefaultTickRate is the driver cadence used when none is configured.
const DefaultTickRate = 30

// RuntimeConfig is what the platform hands a game on Reset: the cell area it
// may draw into, the tick cadence, and the seed for coconut placement.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int
	Seed     int64 // 0 lets the platform pick a time-based seed
}

// DefaultConfig returns an 80x24 runtime at DefaultTickRate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// GameState is the snapshot a game reports to the platform after each step.
type GameState struct {
	Score    int  // destroyed coconuts
	GameOver bool // round finished: crab gone and the sky empty
	Paused   bool // paused or waiting for the first start

	Beached   int
	Destroyed int
	Health    int
	CrabAlive bool
	Ticks     int
}

// StepResult wraps the state after one Step.
type StepResult struct {
	State GameState
}
