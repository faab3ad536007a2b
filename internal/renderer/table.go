package renderer

import (
	"fmt"
	"strings"

	"github.com/mutalibrazin33-eng/stock-screener/internal/model"
)

// NoMatchesMessage is shown when a scan finishes with zero survivors.
const NoMatchesMessage = "No stocks matched your filters."

// FormatTable renders scan rows as an aligned plain-text table.
func FormatTable(rows []model.ScanRow) string {
	if len(rows) == 0 {
		return NoMatchesMessage + "\n"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-8s %10s %10s %10s %12s %8s %14s\n",
		"Ticker", "1M Gain %", "3M Gain %", "6M Gain %", "Avg Volume", "ADR %", "Consolidation"))
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-8s %10.1f %10.1f %10.1f %12d %8.2f %14.3f\n",
			r.Ticker, r.Gain1M, r.Gain3M, r.Gain6M, r.AvgVolume, r.AvgADR, r.Consolidation))
	}
	return b.String()
}

// FormatSummary renders the one-line scan footer.
func FormatSummary(scanned, matched int) string {
	return fmt.Sprintf("Scanned %d tickers, %d matched.\n", scanned, matched)
}
