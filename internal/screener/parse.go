package screener

import "strings"

// DefaultTickers is the watchlist used when no tickers are supplied.
var DefaultTickers = []string{"AAPL", "TSLA", "NVDA", "AMZN", "MSFT", "META", "AMD", "NFLX", "GOOG"}

// ParseTickerList splits a comma-separated ticker string into uppercase
// symbols. Blank input falls back to DefaultTickers.
func ParseTickerList(s string) []string {
	if strings.TrimSpace(s) == "" {
		out := make([]string, len(DefaultTickers))
		copy(out, DefaultTickers)
		return out
	}
	parts := strings.Split(s, ",")
	tickers := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.ToUpper(strings.TrimSpace(p))
		if t == "" {
			continue
		}
		tickers = append(tickers, t)
	}
	if len(tickers) == 0 {
		out := make([]string, len(DefaultTickers))
		copy(out, DefaultTickers)
		return out
	}
	return tickers
}
