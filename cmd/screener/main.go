package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mutalibrazin33-eng/stock-screener/internal/collector"
	"github.com/mutalibrazin33-eng/stock-screener/internal/config"
	"github.com/mutalibrazin33-eng/stock-screener/internal/screener"
	"github.com/mutalibrazin33-eng/stock-screener/internal/server"
	"github.com/mutalibrazin33-eng/stock-screener/internal/symbols"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] stock-screener starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	opts := []collector.Option{
		collector.WithTimeout(time.Duration(cfg.DataSource.TimeoutSecs) * time.Second),
		collector.WithRateLimit(cfg.DataSource.RatePerMinute),
	}
	if cfg.Proxy != "" {
		opts = append(opts, collector.WithProxy(cfg.Proxy))
	}
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewEODHDFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.DataSource.Exchange, opts...)
	} else {
		fetcher = collector.NewYahooFetcher(opts...)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init symbol catalog
	var catalog *symbols.Index
	entries, err := symbols.LoadCatalog(cfg.Symbols.CSVPath)
	if err != nil {
		log.Printf("[WARN] load symbol catalog: %v, symbol search disabled", err)
	} else {
		catalog, err = symbols.NewIndex(entries)
		if err != nil {
			log.Printf("[WARN] build symbol index: %v, symbol search disabled", err)
			catalog = nil
		} else {
			log.Printf("[INFO] indexed %d symbols", len(entries))
			defer catalog.Close()
		}
	}

	scr := screener.New(fetcher)
	srv := server.New(cfg, scr, catalog)

	// Optional: run one scan immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, scanning now")
		go srv.RunStartupScan()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("[FATAL] server: %v", err)
		}
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("[ERROR] shutdown: %v", err)
		}
	}
	log.Println("[INFO] stock-screener stopped")
}
