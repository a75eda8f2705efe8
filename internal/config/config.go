// Package config defines the service configuration and its viper-based
// loader.
package config

import "fmt"

// Config represents the complete application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Forecast ForecastConfig `mapstructure:"forecast"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
}

// ServerConfig represents HTTP server configuration.
type ServerConfig struct {
	Host     string `mapstructure:"host"`      // bind address (e.g. 0.0.0.0)
	HTTPPort int    `mapstructure:"http_port"` // HTTP server port
}

// AuthConfig represents API key authentication configuration.
type AuthConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	APIKeys []string `mapstructure:"api_keys"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
}

// ForecastConfig holds the smoothing parameters and confidence level
// for the forecasting engine, plus the horizon applied when a request
// omits one.
type ForecastConfig struct {
	Alpha          float64 `mapstructure:"alpha"`
	Beta           float64 `mapstructure:"beta"`
	Gamma          float64 `mapstructure:"gamma"`
	Confidence     float64 `mapstructure:"confidence"`      // 0.95 or 0.99
	DefaultHorizon int     `mapstructure:"default_horizon"` // periods
}

// LedgerConfig drives the deduction aggregator: per-category deduction
// rates and the category excluded by the exclude_deductible flag.
type LedgerConfig struct {
	DeductionRates     map[string]float64 `mapstructure:"deduction_rates"`
	DeductibleCategory string             `mapstructure:"deductible_category"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}
	if err := c.Forecast.Validate(); err != nil {
		return fmt.Errorf("forecast config: %w", err)
	}
	if err := c.Ledger.Validate(); err != nil {
		return fmt.Errorf("ledger config: %w", err)
	}
	return nil
}

// Validate validates server configuration.
func (c *ServerConfig) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port: %d", c.HTTPPort)
	}
	return nil
}

// Validate validates logging configuration.
func (c *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("logging.format must be 'json' or 'console'")
	}
	return nil
}

// Validate validates forecast configuration.
func (c *ForecastConfig) Validate() error {
	for name, v := range map[string]float64{"alpha": c.Alpha, "beta": c.Beta, "gamma": c.Gamma} {
		if v <= 0 || v > 1 {
			return fmt.Errorf("forecast.%s must be in (0, 1], got %v", name, v)
		}
	}
	if c.Confidence != 0.95 && c.Confidence != 0.99 {
		return fmt.Errorf("forecast.confidence must be 0.95 or 0.99, got %v", c.Confidence)
	}
	if c.DefaultHorizon < 1 {
		return fmt.Errorf("forecast.default_horizon must be positive, got %d", c.DefaultHorizon)
	}
	return nil
}

// Validate validates ledger configuration.
func (c *LedgerConfig) Validate() error {
	for category, rate := range c.DeductionRates {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("ledger.deduction_rates[%s] must be in [0, 1], got %v", category, rate)
		}
	}
	return nil
}
