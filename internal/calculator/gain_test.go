package calculator

import "testing"

func TestTrailingGain(t *testing.T) {
	closes := make([]float64, 22)
	for i := range closes {
		closes[i] = 100
	}
	closes[21] = 150
	if g := TrailingGain(closes, 21); g != 50.0 {
		t.Errorf("expected 50.0, got %v", g)
	}
}

func TestTrailingGain_Negative(t *testing.T) {
	closes := []float64{200, 100, 100, 150}
	if g := TrailingGain(closes, 3); g != -25.0 {
		t.Errorf("expected -25.0, got %v", g)
	}
}

func TestTrailingGain_ShortSeriesDefaultsToZero(t *testing.T) {
	closes := []float64{100, 150}
	for _, n := range []int{21, 63, 126} {
		if g := TrailingGain(closes, n); g != 0 {
			t.Errorf("horizon %d: expected 0 for short series, got %v", n, g)
		}
	}
}

func TestTrailingGain_ExactLengthBoundary(t *testing.T) {
	// n+1 closes is just enough; n closes is not.
	closes := make([]float64, 64)
	for i := range closes {
		closes[i] = 100
	}
	closes[0] = 50
	closes[63] = 100
	if g := TrailingGain(closes, 63); g != 100.0 {
		t.Errorf("expected 100.0 with 64 closes, got %v", g)
	}
	if g := TrailingGain(closes[1:], 63); g != 0 {
		t.Errorf("expected 0 with 63 closes, got %v", g)
	}
}
