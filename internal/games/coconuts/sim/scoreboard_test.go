package sim

import "testing"

func TestScoreboardHealthClamp(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		deltas  []int
		want    int
	}{
		{"no change", 50, nil, 50},
		{"damage", 50, []int{-5, -5}, 40},
		{"exact zero", 10, []int{-5, -5}, 0},
		{"overkill discarded", 10, []int{-7, -7}, 0},
		{"heal from zero", 10, []int{-100, 3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScoreboard(tt.initial)
			for _, d := range tt.deltas {
				s.ChangeHealth(d)
			}
			if s.Health() != tt.want {
				t.Errorf("Health() = %d, expected %d", s.Health(), tt.want)
			}
		})
	}
}

func TestScoreboardCounters(t *testing.T) {
	s := NewScoreboard(50)
	s.ChangeBeached(1)
	s.ChangeBeached(2)
	s.ChangeDestroyed(1)
	s.ChangeDestroyed(0)

	want := ScoreView{Beached: 3, Destroyed: 1, Health: 50}
	if got := s.View(); got != want {
		t.Errorf("View() = %+v, expected %+v", got, want)
	}

	s.Reset(20)
	want = ScoreView{Health: 20}
	if got := s.View(); got != want {
		t.Errorf("View() after Reset = %+v, expected %+v", got, want)
	}
}

func TestScoreboardNegativeCountPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(s *Scoreboard)
	}{
		{"beached", func(s *Scoreboard) { s.ChangeBeached(-1) }},
		{"destroyed", func(s *Scoreboard) { s.ChangeDestroyed(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic for negative delta")
				}
			}()
			s := NewScoreboard(50)
			s.ChangeBeached(5)
			s.ChangeDestroyed(5)
			tt.fn(s)
		})
	}
}
