package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/mutalibrazin33-eng/stock-screener/internal/config"
	"github.com/mutalibrazin33-eng/stock-screener/internal/renderer"
	"github.com/mutalibrazin33-eng/stock-screener/internal/screener"
	"github.com/mutalibrazin33-eng/stock-screener/internal/symbols"
)

// Server wires the scan, chart, quote and symbol routes over HTTP.
type Server struct {
	cfg      *config.Config
	screener *screener.Screener
	catalog  *symbols.Index
	httpSrv  *http.Server
}

// New creates the HTTP server. The catalog may be nil when no symbol
// file was loaded; the symbols route then reports unavailable.
func New(cfg *config.Config, scr *screener.Screener, catalog *symbols.Index) *Server {
	s := &Server{cfg: cfg, screener: scr, catalog: catalog}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/scan", s.handleScan)
	mux.HandleFunc("/api/chart", s.handleChart)
	mux.HandleFunc("/api/quote", s.handleQuote)
	mux.HandleFunc("/api/symbols", s.handleSymbols)

	fs := http.FileServer(http.Dir(cfg.Server.StaticDir))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		fs.ServeHTTP(w, r)
	})

	s.httpSrv = &http.Server{
		Addr:        cfg.Server.Addr,
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		// A scan holds the connection while every ticker fetches in turn.
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	log.Printf("[INFO] listening on %s", s.cfg.Server.Addr)
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// RunStartupScan runs one scan over the configured watchlist and logs
// the result table.
func (s *Server) RunStartupScan() {
	tickers := s.cfg.Screen.Tickers
	if len(tickers) == 0 {
		tickers = screener.DefaultTickers
	}
	log.Printf("[INFO] startup scan of %d tickers", len(tickers))
	rows := s.screener.Scan(tickers, s.cfg.Filter(), logProgress)
	log.Printf("[INFO] startup scan results:\n%s%s",
		renderer.FormatTable(rows), renderer.FormatSummary(len(tickers), len(rows)))
}
