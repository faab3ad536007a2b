package collector

import (
	"fmt"
	"log"

	"github.com/piquette/finance-go/quote"

	"github.com/mutalibrazin33-eng/stock-screener/internal/model"
)

// FetchQuotes returns live quotes for the given symbols. Symbols that fail
// to resolve are skipped; an error is returned only when nothing resolved.
func FetchQuotes(symbols []string) ([]model.Quote, error) {
	quotes := make([]model.Quote, 0, len(symbols))
	for _, sym := range symbols {
		q, err := quote.Get(sym)
		if err != nil {
			log.Printf("[WARN] quote %s failed: %v", sym, err)
			continue
		}
		if q == nil {
			log.Printf("[WARN] quote %s returned no data", sym)
			continue
		}
		quotes = append(quotes, model.Quote{
			Symbol:        q.Symbol,
			Name:          q.ShortName,
			Price:         q.RegularMarketPrice,
			ChangePercent: q.RegularMarketChangePercent,
			PreviousClose: q.RegularMarketPreviousClose,
			Volume:        int64(q.RegularMarketVolume),
		})
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("quotes: %w", ErrNoData)
	}
	return quotes, nil
}
