package utils

import "testing"

func TestLerp(t *testing.T) {
	tests := []struct {
		from, to, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{10, 20, 0.5, 15},
		{640, 608, 0.25, 632},
	}
	for _, tt := range tests {
		if got := Lerp(tt.from, tt.to, tt.t); got != tt.want {
			t.Errorf("Lerp(%v,%v,%v): Expected %v, got %v", tt.from, tt.to, tt.t, tt.want, got)
		}
	}
}

func TestClamp01(t *testing.T) {
	for in, want := range map[float64]float64{-0.5: 0, 0.3: 0.3, 1.7: 1} {
		if got := Clamp01(in); got != want {
			t.Errorf("Clamp01(%v): Expected %v, got %v", in, want, got)
		}
	}
}
