package core

import "testing"

func TestOffsetArithmetic(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(1, -2)

	if got := a.Add(b); got != Pt(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != Pt(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.DistSq(Pt(0, 0)); got != 25 {
		t.Errorf("DistSq() = %d, expected 25", got)
	}
}

func TestOrthogonal(t *testing.T) {
	seen := make(map[Offset]bool)
	for _, d := range Orthogonal() {
		if Abs(d.X)+Abs(d.Y) != 1 {
			t.Errorf("Orthogonal() returned non-unit offset %v", d)
		}
		seen[d] = true
	}
	if len(seen) != 4 {
		t.Errorf("Orthogonal() returned %d distinct offsets, expected 4", len(seen))
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

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, 0.0, 1.0, 0.5},
		{-0.5, 0.0, 1.0, 0.0},
		{1.5, 0.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbsSign(t *testing.T) {
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs should return the magnitude")
	}
	tests := []struct{ in, expected int }{
		{-7, -1},
		{0, 0},
		{3, 1},
	}
	for _, tc := range tests {
		if got := Sign(tc.in); got != tc.expected {
			t.Errorf("Sign(%d) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}
