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

func TestViewportProject(t *testing.T) {
	v := Viewport{
		WorldX: 0, WorldY: 100,
		WorldW: 90, WorldH: 120,
		Dst: NewRect(4, 2, 9, 12),
	}

	tests := []struct {
		name   string
		x, y   float64
		cx, cy int
	}{
		{"world origin", 0, 100, 4, 2},
		{"inside first cell", 9.9, 109.9, 4, 2},
		{"second cell", 10, 110, 5, 3},
		{"far corner", 89.9, 219.9, 12, 13},
		{"clamped left and above", -50, 0, 4, 2},
		{"clamped right and below", 500, 900, 12, 13},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy := v.Project(tc.x, tc.y)
			if cx != tc.cx || cy != tc.cy {
				t.Errorf("Project(%f, %f) = (%d, %d), expected (%d, %d)", tc.x, tc.y, cx, cy, tc.cx, tc.cy)
			}
		})
	}
}

func TestViewportProjectDegenerate(t *testing.T) {
	v := Viewport{Dst: NewRect(3, 7, 0, 0)}
	if cx, cy := v.Project(10, 10); cx != 3 || cy != 7 {
		t.Errorf("Project() on empty viewport = (%d, %d), expected (3, 7)", cx, cy)
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
