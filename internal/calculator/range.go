package calculator

import (
	"errors"
	"math"

	"github.com/mutalibrazin33-eng/stock-screener/internal/model"
)

// ADRSeries computes the daily range percent for every bar:
// (High - Low) / Close * 100.
func ADRSeries(bars []model.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = (b.High - b.Low) / b.Close * 100
	}
	return out
}

// ConsolidationScore measures how tightly price has been compressing over
// the most recent `window` bars: (max High - min Low) / mean Close.
// A low value means a tight band. The result is a ratio, not a percent.
func ConsolidationScore(bars []model.Bar, window int) (float64, error) {
	if window <= 0 {
		return 0, errors.New("window must be positive")
	}
	if len(bars) < window {
		return 0, errors.New("not enough bars for consolidation score")
	}
	n := len(bars)
	high := math.Inf(-1)
	low := math.Inf(1)
	meanClose := 0.0
	for i := n - window; i < n; i++ {
		if bars[i].High > high {
			high = bars[i].High
		}
		if bars[i].Low < low {
			low = bars[i].Low
		}
		meanClose += bars[i].Close
	}
	meanClose /= float64(window)
	return (high - low) / meanClose, nil
}

// MeanVolume returns the average volume over the full series.
func MeanVolume(bars []model.Bar) float64 {
	if len(bars) == 0 {
		return 0
	}
	sum := 0.0
	for _, b := range bars {
		sum += b.Volume
	}
	return sum / float64(len(bars))
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
