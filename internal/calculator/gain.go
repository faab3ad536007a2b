package calculator

// TrailingGain returns the percent change between the last close and the
// close n bars earlier. A series shorter than n+1 bars reports 0 so that
// a short history penalizes the ticker instead of failing the scan.
func TrailingGain(closes []float64, n int) float64 {
	if n <= 0 || len(closes) < n+1 {
		return 0
	}
	prev := closes[len(closes)-1-n]
	return (closes[len(closes)-1] - prev) / prev * 100
}
