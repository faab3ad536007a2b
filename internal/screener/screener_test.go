package screener

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/mutalibrazin33-eng/stock-screener/internal/collector"
	"github.com/mutalibrazin33-eng/stock-screener/internal/model"
)

func barsFromCloses(closes []float64, volume float64) []model.Bar {
	bars := make([]model.Bar, len(closes))
	day := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.Bar{
			Time:   day.AddDate(0, 0, i),
			Open:   c * 0.995,
			High:   c * 1.025,
			Low:    c * 0.975,
			Close:  c,
			Volume: volume,
		}
	}
	return bars
}

// passingSeries builds 127 bars that clear every default threshold: flat
// at 50 for three months, a ramp to 80, a run to the peak, then a tight
// ten-bar base just under the peak.
func passingSeries(peak float64) []model.Bar {
	closes := make([]float64, 127)
	for i := 0; i <= 63; i++ {
		closes[i] = 50
	}
	for i := 64; i <= 105; i++ {
		closes[i] = 50 + 30*float64(i-63)/42.0
	}
	for i := 106; i <= 116; i++ {
		closes[i] = 80 + (peak*0.99-80)*float64(i-105)/11.0
	}
	for i := 117; i <= 126; i++ {
		closes[i] = peak*0.99 + (peak-peak*0.99)*float64(i-116)/10.0
	}
	return barsFromCloses(closes, 80000)
}

func TestScan_EmptyTickerList(t *testing.T) {
	mock := &collector.MockFetcher{}
	s := New(mock)
	rows := s.Scan(nil, model.DefaultFilterConfig(), nil)
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
	if len(mock.Calls) != 0 {
		t.Errorf("expected no fetches for empty list, got %d", len(mock.Calls))
	}
}

func TestScan_SortsByThreeMonthGainDescending(t *testing.T) {
	mock := &collector.MockFetcher{Bars: map[string][]model.Bar{
		"LOW":  passingSeries(140),
		"HIGH": passingSeries(200),
		"MID":  passingSeries(160),
	}}
	s := New(mock)
	rows := s.Scan([]string{"LOW", "HIGH", "MID"}, model.DefaultFilterConfig(), nil)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := []string{"HIGH", "MID", "LOW"}
	for i, w := range want {
		if rows[i].Ticker != w {
			t.Errorf("position %d: expected %s, got %s", i, w, rows[i].Ticker)
		}
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Gain3M > rows[i-1].Gain3M {
			t.Errorf("rows out of order at index %d: %.1f after %.1f", i, rows[i].Gain3M, rows[i-1].Gain3M)
		}
	}
}

func TestScan_StableOrderForEqualGains(t *testing.T) {
	series := passingSeries(180)
	mock := &collector.MockFetcher{Bars: map[string][]model.Bar{
		"FIRST":  series,
		"SECOND": series,
	}}
	s := New(mock)
	rows := s.Scan([]string{"FIRST", "SECOND"}, model.DefaultFilterConfig(), nil)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Ticker != "FIRST" || rows[1].Ticker != "SECOND" {
		t.Errorf("equal gains must keep input order, got %s then %s", rows[0].Ticker, rows[1].Ticker)
	}
}

func TestScan_SkipsFailedTickers(t *testing.T) {
	mock := &collector.MockFetcher{Bars: map[string][]model.Bar{
		"GOOD": passingSeries(160),
	}}
	s := New(mock)
	rows := s.Scan([]string{"GOOD", "MISSING"}, model.DefaultFilterConfig(), nil)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Ticker != "GOOD" {
		t.Errorf("expected GOOD, got %s", rows[0].Ticker)
	}
	if len(mock.Calls) != 2 {
		t.Errorf("expected both tickers fetched, got %d calls", len(mock.Calls))
	}
}

func TestScan_SkipsInsufficientHistory(t *testing.T) {
	mock := &collector.MockFetcher{Bars: map[string][]model.Bar{
		"THIN": collector.GenerateBars(100, 19),
		"GOOD": passingSeries(160),
	}}
	s := New(mock)
	rows := s.Scan([]string{"THIN", "GOOD"}, model.DefaultFilterConfig(), nil)
	if len(rows) != 1 || rows[0].Ticker != "GOOD" {
		t.Fatalf("expected only GOOD to survive, got %+v", rows)
	}
}

func TestScan_FiltersOutFlatSeries(t *testing.T) {
	closes := make([]float64, 127)
	for i := range closes {
		closes[i] = 100
	}
	mock := &collector.MockFetcher{Bars: map[string][]model.Bar{
		"FLAT": barsFromCloses(closes, 80000),
	}}
	s := New(mock)
	rows := s.Scan([]string{"FLAT"}, model.DefaultFilterConfig(), nil)
	if len(rows) != 0 {
		t.Errorf("expected flat series to be filtered out, got %d rows", len(rows))
	}
}

func TestScan_ProgressCallback(t *testing.T) {
	mock := &collector.MockFetcher{Bars: map[string][]model.Bar{
		"GOOD": passingSeries(160),
	}}
	s := New(mock)

	type call struct {
		done, total int
		symbol      string
	}
	var calls []call
	s.Scan([]string{"GOOD", "MISSING", "ALSOGONE"}, model.DefaultFilterConfig(),
		func(done, total int, symbol string) {
			calls = append(calls, call{done, total, symbol})
		})

	if len(calls) != 3 {
		t.Fatalf("expected 3 progress calls, got %d", len(calls))
	}
	want := []call{{1, 3, "GOOD"}, {2, 3, "MISSING"}, {3, 3, "ALSOGONE"}}
	for i, w := range want {
		if calls[i] != w {
			t.Errorf("call %d: expected %+v, got %+v", i, w, calls[i])
		}
	}
}

func TestScan_RowRounding(t *testing.T) {
	mock := &collector.MockFetcher{Bars: map[string][]model.Bar{
		"GOOD": passingSeries(160),
	}}
	s := New(mock)
	rows := s.Scan([]string{"GOOD"}, model.DefaultFilterConfig(), nil)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	r := rows[0]
	if r.Gain1M != math.Round(r.Gain1M*10)/10 {
		t.Errorf("gain not rounded to one decimal: %v", r.Gain1M)
	}
	if r.AvgADR != math.Round(r.AvgADR*100)/100 {
		t.Errorf("adr not rounded to two decimals: %v", r.AvgADR)
	}
	if r.Consolidation != math.Round(r.Consolidation*1000)/1000 {
		t.Errorf("consolidation not rounded to three decimals: %v", r.Consolidation)
	}
	if r.AvgVolume != 80000 {
		t.Errorf("expected average volume 80000, got %d", r.AvgVolume)
	}
}

func TestChart_ReturnsEnrichedSeries(t *testing.T) {
	mock := &collector.MockFetcher{Bars: map[string][]model.Bar{
		"GOOD": passingSeries(160),
	}}
	s := New(mock)
	enriched, err := s.Chart("GOOD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(enriched.Bars) != 127 {
		t.Fatalf("expected 127 bars, got %d", len(enriched.Bars))
	}
	if !math.IsNaN(enriched.SMA10[8]) {
		t.Error("expected SMA10 undefined before the window fills")
	}
	if math.IsNaN(enriched.SMA10[9]) {
		t.Error("expected SMA10 defined from the tenth bar")
	}
	if enriched.Metrics.LastClose != enriched.Bars[126].Close {
		t.Errorf("last close mismatch: %v vs %v", enriched.Metrics.LastClose, enriched.Bars[126].Close)
	}
}

func TestChart_UnknownSymbol(t *testing.T) {
	mock := &collector.MockFetcher{}
	s := New(mock)
	if _, err := s.Chart("NOPE"); !errors.Is(err, collector.ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}
