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
			if result := r.Contains(tc.x, tc.y); result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectInsetAndCentered(t *testing.T) {
	r := NewRect(0, 0, 20, 10)

	if got := r.Inset(1); got != NewRect(1, 1, 18, 8) {
		t.Errorf("Inset(1) = %+v", got)
	}
	if got := NewRect(0, 0, 1, 1).Inset(2); got.W != 0 || got.H != 0 {
		t.Errorf("Inset past size should collapse to zero, got %+v", got)
	}
	if got := r.Centered(4, 2); got != NewRect(8, 4, 4, 2) {
		t.Errorf("Centered(4, 2) = %+v", got)
	}
}

func TestRectSplitColumns(t *testing.T) {
	cols := NewRect(2, 1, 65, 3).SplitColumns(4)
	if len(cols) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(cols))
	}
	if cols[0].X != 2 || cols[0].W != 16 {
		t.Errorf("first column = %+v", cols[0])
	}
	if last := cols[3]; last.Right() != 67 {
		t.Errorf("last column should end at 67, got %+v", last)
	}
	if NewRect(0, 0, 10, 1).SplitColumns(0) != nil {
		t.Error("SplitColumns(0) should return nil")
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
		if result := Clamp(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, 0.0, 1.0, 0.5},
		{-0.5, 0.0, 1.0, 0.0},
		{1.5, 0.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		if result := ClampF(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionSkip.String() != "Skip" {
		t.Errorf("ActionSkip.String() = %q", ActionSkip.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
