package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mutalibrazin33-eng/stock-screener/internal/model"
)

// EODHDFetcher implements Fetcher against an EODHD-compatible REST API.
type EODHDFetcher struct {
	BaseURL  string
	APIKey   string
	Exchange string // suffix for plain symbols, e.g. "US" makes AAPL.US
	Client   *http.Client
	limiter  *rate.Limiter
}

// NewEODHDFetcher creates a new EODHD fetcher.
func NewEODHDFetcher(baseURL, apiKey, exchange string, opts ...Option) *EODHDFetcher {
	o := buildOptions(opts)
	if exchange == "" {
		exchange = "US"
	}
	return &EODHDFetcher{
		BaseURL:  strings.TrimSuffix(baseURL, "/"),
		APIKey:   apiKey,
		Exchange: exchange,
		Client:   o.client(),
		limiter:  o.limiter(),
	}
}

func (f *EODHDFetcher) Name() string { return "eodhd" }

// eodBar is the JSON shape of one end-of-day record.
type eodBar struct {
	Date          string  `json:"date"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Close         float64 `json:"close"`
	AdjustedClose float64 `json:"adjusted_close"`
	Volume        float64 `json:"volume"`
}

// APIError is a non-200 reply from the EODHD API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("eodhd: status %d: %s", e.StatusCode, e.Body)
}

func (f *EODHDFetcher) eodSymbol(symbol string) string {
	if strings.Contains(symbol, ".") {
		return symbol
	}
	return symbol + "." + f.Exchange
}

// FetchDailyBars returns six calendar months of daily bars for the symbol.
func (f *EODHDFetcher) FetchDailyBars(symbol string) ([]model.Bar, error) {
	ctx, cancel := context.WithTimeout(context.Background(), f.Client.Timeout)
	defer cancel()
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("eodhd rate limit: %w", err)
	}

	params := url.Values{}
	params.Set("period", "d")
	params.Set("order", "a")
	params.Set("from", time.Now().AddDate(0, -6, 0).Format("2006-01-02"))
	params.Set("api_token", f.APIKey)
	params.Set("fmt", "json")
	endpoint := fmt.Sprintf("%s/eod/%s?%s",
		f.BaseURL, url.PathEscape(f.eodSymbol(symbol)), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("eodhd fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var raw []eodBar
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("eodhd decode: %w", err)
	}

	bars := make([]model.Bar, 0, len(raw))
	for _, eb := range raw {
		day, err := time.Parse("2006-01-02", eb.Date)
		if err != nil {
			continue // drop records with malformed dates
		}
		if eb.Open == 0 && eb.High == 0 && eb.Low == 0 && eb.Close == 0 {
			continue
		}
		bars = append(bars, model.Bar{
			Time:   day,
			Open:   eb.Open,
			High:   eb.High,
			Low:    eb.Low,
			Close:  eb.Close,
			Volume: eb.Volume,
		})
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("eodhd: %w", ErrNoData)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
