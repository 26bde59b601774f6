package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"metrics"`
	Binance struct {
		BaseURL         string        `yaml:"base_url"`
		Timeout         time.Duration `yaml:"timeout"`
		DefaultSymbol   string        `yaml:"default_symbol"`
		DefaultInterval string        `yaml:"default_interval"`
		KlineLimit      int           `yaml:"kline_limit"`
	} `yaml:"binance"`
	Engine struct {
		ConfluenceThreshold int `yaml:"confluence_threshold"`
	} `yaml:"engine"`
	Cache struct {
		CandleTTL time.Duration `yaml:"candle_ttl"`
		Redis     struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("BINANCE_BASE_URL"); v != "" {
		c.Binance.BaseURL = v
	}
	if v := os.Getenv("DEFAULT_SYMBOL"); v != "" {
		c.Binance.DefaultSymbol = strings.ToUpper(v)
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
		c.Cache.Redis.Enabled = true
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Binance.BaseURL == "" {
		c.Binance.BaseURL = "https://api.binance.com"
	}
	if c.Binance.Timeout <= 0 {
		c.Binance.Timeout = 10 * time.Second
	}
	if c.Binance.DefaultSymbol == "" {
		c.Binance.DefaultSymbol = "BTCUSDT"
	}
	if c.Binance.DefaultInterval == "" {
		c.Binance.DefaultInterval = "15m"
	}
	if c.Binance.KlineLimit <= 0 {
		c.Binance.KlineLimit = 500
	}
	if c.Engine.ConfluenceThreshold <= 0 {
		c.Engine.ConfluenceThreshold = 3
	}
	if c.Cache.CandleTTL <= 0 {
		c.Cache.CandleTTL = 30 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if !strings.HasPrefix(c.Binance.BaseURL, "http") {
		return fmt.Errorf("binance.base_url must be an http(s) URL, got %q", c.Binance.BaseURL)
	}
	if c.Cache.Redis.Enabled && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required when redis is enabled")
	}
	return nil
}
