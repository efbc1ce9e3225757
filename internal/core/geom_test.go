package core

import "testing"

func TestRectEdgesAndContains(t *testing.T) {
	r := NewRect(4, 2, 6, 3)

	if r.Right() != 10 || r.Bottom() != 5 {
		t.Fatalf("edges = (%d, %d), expected (10, 5)", r.Right(), r.Bottom())
	}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left cell", 4, 2, true},
		{"last cell", 9, 4, true},
		{"right edge is exclusive", 10, 3, false},
		{"bottom edge is exclusive", 5, 5, false},
		{"left of rect", 3, 3, false},
		{"above rect", 5, 1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestClampHelpers(t *testing.T) {
	if Clamp(-3, 0, 9) != 0 || Clamp(12, 0, 9) != 9 || Clamp(5, 0, 9) != 5 {
		t.Error("Clamp returned unexpected values")
	}
	if ClampF(-0.5, 0, 1) != 0 || ClampF(1.5, 0, 1) != 1 || ClampF(0.25, 0, 1) != 0.25 {
		t.Error("ClampF returned unexpected values")
	}
}

func TestIntHelpers(t *testing.T) {
	if Abs(-7) != 7 || Abs(7) != 7 || Abs(0) != 0 {
		t.Error("Abs returned unexpected values")
	}
	if Min(2, 8) != 2 || Min(8, 2) != 2 {
		t.Error("Min returned unexpected values")
	}
	if Max(2, 8) != 8 || Max(8, 2) != 8 {
		t.Error("Max returned unexpected values")
	}
}
