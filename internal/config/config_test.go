package config

import "testing"

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "default config should be valid",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "invalid http port",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Server.HTTPPort = 0
				return cfg
			}(),
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Logging.Level = "verbose"
				return cfg
			}(),
			wantErr: true,
		},
		{
			name: "invalid log format",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Logging.Format = "xml"
				return cfg
			}(),
			wantErr: true,
		},
		{
			name: "alpha out of range",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Forecast.Alpha = 1.5
				return cfg
			}(),
			wantErr: true,
		},
		{
			name: "unsupported confidence level",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Forecast.Confidence = 0.9
				return cfg
			}(),
			wantErr: true,
		},
		{
			name: "zero default horizon",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Forecast.DefaultHorizon = 0
				return cfg
			}(),
			wantErr: true,
		},
		{
			name: "deduction rate above one",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Ledger.DeductionRates = map[string]float64{"consulting": 1.2}
				return cfg
			}(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg := LoadOrDefault("/nonexistent/config.yaml")
	if cfg == nil {
		t.Fatal("expected default config, got nil")
	}
	if cfg.Server.HTTPPort != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.HTTPPort)
	}
	if cfg.Forecast.Confidence != 0.95 {
		t.Errorf("expected default confidence 0.95, got %v", cfg.Forecast.Confidence)
	}
}

func TestDefaultConfigHorizon(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Forecast.DefaultHorizon != 6 {
		t.Errorf("expected default horizon 6, got %d", cfg.Forecast.DefaultHorizon)
	}
}

func TestIsProduction(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.IsProduction() {
		t.Error("default config should be production mode")
	}
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "console"
	if !cfg.IsDevelopment() {
		t.Error("debug/console should be development mode")
	}
}

func TestListenAddress(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ListenAddress(); got != "0.0.0.0:8080" {
		t.Errorf("unexpected listen address: %s", got)
	}
}
