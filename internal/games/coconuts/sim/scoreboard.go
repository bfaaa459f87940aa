package sim

import "fmt"

// Scoreboard holds the beached, destroyed and health counters of one game.
// Counters only change through deltas; Reset is the single direct set.
type Scoreboard struct {
	beached   int
	destroyed int
	health    int
}

// NewScoreboard creates a scoreboard with the given starting health.
func NewScoreboard(initialHealth int) *Scoreboard {
	s := &Scoreboard{}
	s.Reset(initialHealth)
	return s
}

// Reset zeroes the coconut counters and restores health.
func (s *Scoreboard) Reset(initialHealth int) {
	if initialHealth < 0 {
		initialHealth = 0
	}
	s.beached = 0
	s.destroyed = 0
	s.health = initialHealth
}

// ChangeBeached adds delta to the beached count. Beached never decreases.
func (s *Scoreboard) ChangeBeached(delta int) {
	if delta < 0 {
		panic(fmt.Sprintf("sim: beached count cannot decrease (delta %d)", delta))
	}
	s.beached += delta
}

// ChangeDestroyed adds delta to the destroyed count. Destroyed never decreases.
func (s *Scoreboard) ChangeDestroyed(delta int) {
	if delta < 0 {
		panic(fmt.Sprintf("sim: destroyed count cannot decrease (delta %d)", delta))
	}
	s.destroyed += delta
}

// ChangeHealth adds delta to health, clamping at zero. Damage beyond zero is
// discarded; a later heal starts from zero.
func (s *Scoreboard) ChangeHealth(delta int) {
	if s.health+delta <= 0 {
		s.health = 0
		return
	}
	s.health += delta
}

func (s *Scoreboard) Beached() int   { return s.beached }
func (s *Scoreboard) Destroyed() int { return s.destroyed }
func (s *Scoreboard) Health() int    { return s.health }

// View returns the current values as a value snapshot.
func (s *Scoreboard) View() ScoreView {
	return ScoreView{
		Beached:   s.beached,
		Destroyed: s.destroyed,
		Health:    s.health,
	}
}
