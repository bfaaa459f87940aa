package tui

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{30, time.Second / 30},
		{60, time.Second / 60},
		{0, time.Second / 30},
		{-5, time.Second / 30},
	}

	for _, tc := range tests {
		if got := tickInterval(tc.rate); got != tc.expected {
			t.Errorf("tickInterval(%d) = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}
