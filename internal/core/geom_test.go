package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name             string
		v, from, to, exp int
	}{
		{"origin", 0, 600, 80, 0},
		{"midpoint", 300, 600, 80, 40},
		{"field edge", 599, 600, 80, 79},
		{"zero range", 10, 0, 80, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Scale(tc.v, tc.from, tc.to); got != tc.exp {
				t.Errorf("Scale(%d, %d, %d) = %d, expected %d", tc.v, tc.from, tc.to, got, tc.exp)
			}
		})
	}
}

func TestScaleLenNeverZero(t *testing.T) {
	// A 10-unit laser on a 600-unit field squeezed into 40 cells is still visible
	if got := ScaleLen(10, 600, 40); got != 1 {
		t.Errorf("ScaleLen(10, 600, 40) = %d, expected 1", got)
	}
	if got := ScaleLen(0, 600, 40); got != 0 {
		t.Errorf("ScaleLen(0, 600, 40) = %d, expected 0", got)
	}
	if got := ScaleLen(50, 600, 120); got != 10 {
		t.Errorf("ScaleLen(50, 600, 120) = %d, expected 10", got)
	}
}
