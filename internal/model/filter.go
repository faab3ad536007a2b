package model

// FilterConfig holds the user-adjustable screening thresholds. The two
// structural conditions (close above both moving averages, consolidation
// below the fixed cutoff) are not configurable.
type FilterConfig struct {
	MinVolume float64
	MinADR    float64
	MinGain1M float64
	MinGain3M float64
}

// DefaultFilterConfig returns the standard momentum-screen thresholds.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		MinVolume: 50000,
		MinADR:    4.0,
		MinGain1M: 50.0,
		MinGain3M: 100.0,
	}
}
