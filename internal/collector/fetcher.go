package collector

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/mutalibrazin33-eng/stock-screener/internal/model"
)

const (
	// DefaultTimeout is the default HTTP timeout for provider requests.
	DefaultTimeout = 30 * time.Second

	// DefaultRatePerMinute is the default provider request budget.
	DefaultRatePerMinute = 60
)

// ErrNoData reports that the provider returned nothing usable for a symbol.
var ErrNoData = errors.New("no data for symbol")

// Fetcher defines the interface for fetching market data. Implementations
// return roughly six months of daily bars in ascending date order, with
// bars missing any OHLCV field already dropped.
type Fetcher interface {
	FetchDailyBars(symbol string) ([]model.Bar, error)
	Name() string
}

// Option configures a fetcher's HTTP behavior.
type Option func(*httpOptions)

type httpOptions struct {
	proxyURL  string
	timeout   time.Duration
	perMinute int
}

// WithProxy routes provider requests through the given HTTP proxy.
func WithProxy(proxyURL string) Option {
	return func(o *httpOptions) {
		o.proxyURL = proxyURL
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *httpOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRateLimit caps provider requests per minute.
func WithRateLimit(perMinute int) Option {
	return func(o *httpOptions) {
		if perMinute > 0 {
			o.perMinute = perMinute
		}
	}
}

func buildOptions(opts []Option) httpOptions {
	o := httpOptions{
		timeout:   DefaultTimeout,
		perMinute: DefaultRatePerMinute,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o httpOptions) client() *http.Client {
	transport := &http.Transport{}
	if o.proxyURL != "" {
		if u, err := url.Parse(o.proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   o.timeout,
		Transport: transport,
	}
}

func (o httpOptions) limiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(float64(o.perMinute)/60.0), 1)
}
