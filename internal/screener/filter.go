package screener

import "github.com/mutalibrazin33-eng/stock-screener/internal/model"

// maxConsolidation is the tightness ceiling: the 10-bar range divided by
// the mean close must stay under this for a base to count as tight.
const maxConsolidation = 0.1

// Passes reports whether a ticker's metrics clear every screening
// condition. All conditions must hold; there is no partial credit.
func Passes(m model.Metrics, f model.FilterConfig) bool {
	if m.AvgVolume < f.MinVolume {
		return false
	}
	if m.AvgADR < f.MinADR {
		return false
	}
	if m.Gain1M < f.MinGain1M {
		return false
	}
	if m.Gain3M < f.MinGain3M {
		return false
	}
	if m.LastClose <= m.SMA10 || m.LastClose <= m.SMA20 {
		return false
	}
	if m.Consolidation >= maxConsolidation {
		return false
	}
	return true
}
