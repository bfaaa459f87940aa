package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorSand, "180"},
		{ColorBrown, "94"},
		{Color(200), ""},
	}

	for _, tc := range tests {
		if got := tc.c.ANSI(); got != tc.expected {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tc.c, got, tc.expected)
		}
	}
}

func TestPaletteCoversEverySlot(t *testing.T) {
	p := Palette()
	if len(p) != int(numColors) {
		t.Fatalf("len(Palette()) = %d, expected %d", len(p), numColors)
	}
	for i, c := range p[1:] {
		if c.ANSI() == "" {
			t.Errorf("slot %d has no ANSI code", i+1)
		}
	}
}
