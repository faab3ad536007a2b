package model

// Metrics holds the scalar summaries computed over one ticker's bar series.
type Metrics struct {
	LastClose     float64
	SMA10         float64 // trailing 10-bar SMA at the last bar
	SMA20         float64 // trailing 20-bar SMA at the last bar
	AvgVolume     float64
	AvgADR        float64 // mean daily range percent over the window
	Gain1M        float64 // percent change over the last 21 bars
	Gain3M        float64 // percent change over the last 63 bars
	Gain6M        float64 // percent change over the last 126 bars
	Consolidation float64 // 10-bar tightness ratio, not a percent
}

// Enriched is a bar series together with its indicator columns.
// SMA10, SMA20 and ADR are index-aligned with Bars; SMA entries are NaN
// until the trailing window fills.
type Enriched struct {
	Bars    []Bar
	SMA10   []float64
	SMA20   []float64
	ADR     []float64
	Metrics Metrics
}

// ScanRow is one line of screener output for a ticker that passed every
// filter. Values are rounded for display: gains to one decimal, ADR to
// two, consolidation to three, volume truncated to an integer.
type ScanRow struct {
	Ticker        string  `json:"ticker"`
	Gain1M        float64 `json:"gain_1m"`
	Gain3M        float64 `json:"gain_3m"`
	Gain6M        float64 `json:"gain_6m"`
	AvgVolume     int64   `json:"avg_volume"`
	AvgADR        float64 `json:"avg_adr"`
	Consolidation float64 `json:"consolidation"`
}

// Quote is a delayed snapshot of a symbol's regular-session trading state.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
	PreviousClose float64 `json:"previous_close"`
	Volume        int64   `json:"volume"`
}
