package calculator

import (
	"errors"

	"github.com/mutalibrazin33-eng/stock-screener/internal/model"
)

const (
	// MinBars is the minimum clean history required to screen a ticker;
	// the 20-bar moving average needs a full window.
	MinBars = 20

	consolidationWindow = 10

	bars1M = 21
	bars3M = 63
	bars6M = 126
)

// ErrInsufficientHistory reports a series too short to screen.
var ErrInsufficientHistory = errors.New("insufficient history")

// Compute runs the full indicator pipeline over one ticker's daily bars.
// The input is expected clean (no missing fields) and in ascending date
// order. Series shorter than MinBars return ErrInsufficientHistory.
func Compute(bars []model.Bar) (*model.Enriched, error) {
	if len(bars) < MinBars {
		return nil, ErrInsufficientHistory
	}

	closes := extractCloses(bars)
	adr := ADRSeries(bars)

	cons, err := ConsolidationScore(bars, consolidationWindow)
	if err != nil {
		return nil, ErrInsufficientHistory
	}

	enriched := &model.Enriched{
		Bars:  bars,
		SMA10: SMASeries(closes, 10),
		SMA20: SMASeries(closes, 20),
		ADR:   adr,
	}

	last := len(bars) - 1
	enriched.Metrics = model.Metrics{
		LastClose:     closes[last],
		SMA10:         enriched.SMA10[last],
		SMA20:         enriched.SMA20[last],
		AvgVolume:     MeanVolume(bars),
		AvgADR:        mean(adr),
		Gain1M:        TrailingGain(closes, bars1M),
		Gain3M:        TrailingGain(closes, bars3M),
		Gain6M:        TrailingGain(closes, bars6M),
		Consolidation: cons,
	}
	return enriched, nil
}
