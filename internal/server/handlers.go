package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mutalibrazin33-eng/stock-screener/internal/calculator"
	"github.com/mutalibrazin33-eng/stock-screener/internal/collector"
	"github.com/mutalibrazin33-eng/stock-screener/internal/model"
	"github.com/mutalibrazin33-eng/stock-screener/internal/renderer"
	"github.com/mutalibrazin33-eng/stock-screener/internal/screener"
)

type scanResponse struct {
	Rows    []model.ScanRow `json:"rows"`
	Scanned int             `json:"scanned"`
	Matched int             `json:"matched"`
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	raw := q.Get("tickers")
	var tickers []string
	if strings.TrimSpace(raw) == "" && len(s.cfg.Screen.Tickers) > 0 {
		tickers = s.cfg.Screen.Tickers
	} else {
		tickers = screener.ParseTickerList(raw)
	}

	filter := s.cfg.Filter()
	if err := overlayFilter(&filter, q); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows := s.screener.Scan(tickers, filter, logProgress)

	if q.Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, renderer.FormatTable(rows))
		io.WriteString(w, renderer.FormatSummary(len(tickers), len(rows)))
		return
	}
	writeJSON(w, scanResponse{Rows: rows, Scanned: len(tickers), Matched: len(rows)})
}

// overlayFilter applies query parameter overrides to the configured thresholds.
func overlayFilter(f *model.FilterConfig, q url.Values) error {
	fields := []struct {
		key string
		dst *float64
	}{
		{"min_volume", &f.MinVolume},
		{"min_adr", &f.MinADR},
		{"min_gain_1m", &f.MinGain1M},
		{"min_gain_3m", &f.MinGain3M},
	}
	for _, fl := range fields {
		v := q.Get(fl.key)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %q", fl.key, v)
		}
		*fl.dst = n
	}
	return nil
}

func logProgress(done, total int, symbol string) {
	log.Printf("[INFO] scanning %s (%d/%d)", symbol, done, total)
}

type chartResponse struct {
	Symbol string     `json:"symbol"`
	Dates  []string   `json:"dates"`
	Open   []float64  `json:"open"`
	High   []float64  `json:"high"`
	Low    []float64  `json:"low"`
	Close  []float64  `json:"close"`
	Volume []float64  `json:"volume"`
	SMA10  []*float64 `json:"sma10"`
	SMA20  []*float64 `json:"sma20"`
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("symbol")))
	if symbol == "" {
		http.Error(w, "missing symbol parameter", http.StatusBadRequest)
		return
	}

	enriched, err := s.screener.Chart(symbol)
	if err != nil {
		if errors.Is(err, collector.ErrNoData) || errors.Is(err, calculator.ErrInsufficientHistory) {
			http.Error(w, "no chart data for "+symbol, http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] chart %s: %v", symbol, err)
		http.Error(w, "chart fetch failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, buildChart(symbol, enriched))
}

func buildChart(symbol string, e *model.Enriched) chartResponse {
	n := len(e.Bars)
	resp := chartResponse{
		Symbol: symbol,
		Dates:  make([]string, n),
		Open:   make([]float64, n),
		High:   make([]float64, n),
		Low:    make([]float64, n),
		Close:  make([]float64, n),
		Volume: make([]float64, n),
		SMA10:  floatPtrs(e.SMA10),
		SMA20:  floatPtrs(e.SMA20),
	}
	for i, b := range e.Bars {
		resp.Dates[i] = b.Time.Format("2006-01-02")
		resp.Open[i] = b.Open
		resp.High[i] = b.High
		resp.Low[i] = b.Low
		resp.Close[i] = b.Close
		resp.Volume[i] = b.Volume
	}
	return resp
}

// floatPtrs maps NaN entries to JSON null.
func floatPtrs(xs []float64) []*float64 {
	out := make([]*float64, len(xs))
	for i, x := range xs {
		if !math.IsNaN(x) {
			v := x
			out[i] = &v
		}
	}
	return out
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("symbols")
	if strings.TrimSpace(raw) == "" {
		http.Error(w, "missing symbols parameter", http.StatusBadRequest)
		return
	}
	quotes, err := collector.FetchQuotes(screener.ParseTickerList(raw))
	if err != nil {
		log.Printf("[WARN] quotes failed: %v", err)
		http.Error(w, "quote lookup failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, quotes)
}

func (s *Server) handleSymbols(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		http.Error(w, "symbol search unavailable", http.StatusServiceUnavailable)
		return
	}
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		http.Error(w, "missing query parameter 'q'", http.StatusBadRequest)
		return
	}
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	entries, err := s.catalog.Search(q, limit)
	if err != nil {
		log.Printf("[ERROR] symbol search: %v", err)
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, entries)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}
