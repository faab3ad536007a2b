package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mutalibrazin33-eng/stock-screener/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr      string `yaml:"addr"`
		StaticDir string `yaml:"static_dir"`
	} `yaml:"server"`
	DataSource struct {
		BaseURL       string `yaml:"base_url"`
		APIKey        string `yaml:"api_key"`
		Exchange      string `yaml:"exchange"`
		TimeoutSecs   int    `yaml:"timeout_seconds"`
		RatePerMinute int    `yaml:"rate_per_minute"`
	} `yaml:"data_source"`
	Symbols struct {
		CSVPath string `yaml:"csv_path"`
	} `yaml:"symbols"`
	Screen struct {
		Tickers   []string `yaml:"tickers"`
		MinVolume float64  `yaml:"min_volume"`
		MinADR    float64  `yaml:"min_adr"`
		MinGain1M float64  `yaml:"min_gain_1m"`
		MinGain3M float64  `yaml:"min_gain_3m"`
	} `yaml:"screen"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SCREENER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("EODHD_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("EODHD_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("SYMBOLS_CSV"); v != "" {
		cfg.Symbols.CSVPath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.StaticDir == "" {
		cfg.Server.StaticDir = "static"
	}
	if cfg.DataSource.Exchange == "" {
		cfg.DataSource.Exchange = "US"
	}
	if cfg.DataSource.TimeoutSecs == 0 {
		cfg.DataSource.TimeoutSecs = 30
	}
	if cfg.DataSource.RatePerMinute == 0 {
		cfg.DataSource.RatePerMinute = 60
	}
	if cfg.Symbols.CSVPath == "" {
		cfg.Symbols.CSVPath = "data/symbols.csv"
	}
	def := model.DefaultFilterConfig()
	if cfg.Screen.MinVolume == 0 {
		cfg.Screen.MinVolume = def.MinVolume
	}
	if cfg.Screen.MinADR == 0 {
		cfg.Screen.MinADR = def.MinADR
	}
	if cfg.Screen.MinGain1M == 0 {
		cfg.Screen.MinGain1M = def.MinGain1M
	}
	if cfg.Screen.MinGain3M == 0 {
		cfg.Screen.MinGain3M = def.MinGain3M
	}

	return cfg, nil
}

// Filter returns the configured screening thresholds.
func (c *Config) Filter() model.FilterConfig {
	return model.FilterConfig{
		MinVolume: c.Screen.MinVolume,
		MinADR:    c.Screen.MinADR,
		MinGain1M: c.Screen.MinGain1M,
		MinGain3M: c.Screen.MinGain3M,
	}
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.DataSource.BaseURL != "" && c.DataSource.APIKey == "" {
		return fmt.Errorf("data_source.api_key is required when base_url is set")
	}
	if c.DataSource.TimeoutSecs <= 0 {
		return fmt.Errorf("data_source.timeout_seconds must be positive")
	}
	if c.DataSource.RatePerMinute <= 0 {
		return fmt.Errorf("data_source.rate_per_minute must be positive")
	}
	if c.Screen.MinVolume < 0 {
		return fmt.Errorf("screen.min_volume must not be negative")
	}
	if c.Screen.MinADR < 0 {
		return fmt.Errorf("screen.min_adr must not be negative")
	}
	return nil
}
