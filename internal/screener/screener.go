package screener

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/mutalibrazin33-eng/stock-screener/internal/calculator"
	"github.com/mutalibrazin33-eng/stock-screener/internal/collector"
	"github.com/mutalibrazin33-eng/stock-screener/internal/model"
)

// ProgressFunc is called once per ticker as a scan works through the list.
type ProgressFunc func(done, total int, symbol string)

// Screener runs the screening pipeline over a watchlist.
type Screener struct {
	Fetcher collector.Fetcher
}

// New creates a new Screener.
func New(fetcher collector.Fetcher) *Screener {
	return &Screener{Fetcher: fetcher}
}

// Scan fetches, enriches and filters every ticker in order. Tickers that
// fail to fetch or lack enough history are skipped, never fatal. Results
// come back sorted by three-month gain, best first.
func (s *Screener) Scan(tickers []string, filter model.FilterConfig, progress ProgressFunc) []model.ScanRow {
	rows := make([]model.ScanRow, 0, len(tickers))
	for i, symbol := range tickers {
		if progress != nil {
			progress(i+1, len(tickers), symbol)
		}
		bars, err := s.Fetcher.FetchDailyBars(symbol)
		if err != nil {
			log.Printf("[WARN] %s: fetch failed: %v", symbol, err)
			continue
		}
		enriched, err := calculator.Compute(bars)
		if err != nil {
			log.Printf("[WARN] %s: skipped: %v", symbol, err)
			continue
		}
		if !Passes(enriched.Metrics, filter) {
			continue
		}
		rows = append(rows, buildRow(symbol, enriched.Metrics))
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Gain3M > rows[j].Gain3M })
	return rows
}

// Chart re-runs the fetch and indicator pipeline for a single symbol.
func (s *Screener) Chart(symbol string) (*model.Enriched, error) {
	bars, err := s.Fetcher.FetchDailyBars(symbol)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", symbol, err)
	}
	enriched, err := calculator.Compute(bars)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", symbol, err)
	}
	return enriched, nil
}

// buildRow rounds metrics for presentation. Filtering always runs on the
// unrounded values.
func buildRow(symbol string, m model.Metrics) model.ScanRow {
	return model.ScanRow{
		Ticker:        symbol,
		Gain1M:        round1(m.Gain1M),
		Gain3M:        round1(m.Gain3M),
		Gain6M:        round1(m.Gain6M),
		AvgVolume:     int64(m.AvgVolume),
		AvgADR:        round2(m.AvgADR),
		Consolidation: round3(m.Consolidation),
	}
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }
func round3(x float64) float64 { return math.Round(x*1000) / 1000 }
