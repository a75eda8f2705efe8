package handlers

import (
	"github.com/revcast/revcast/internal/config"
	"github.com/revcast/revcast/internal/forecast"
	"github.com/revcast/revcast/internal/ledger"
	"github.com/revcast/revcast/internal/logging"
	"github.com/revcast/revcast/internal/services"
	"github.com/revcast/revcast/internal/store"
)

// Handler contains all HTTP handlers
type Handler struct {
	logger  *logging.Logger
	entries *store.MemoryStore
	// Services
	forecastService *services.ForecastService
}

// New creates a new handler instance
func New(logger *logging.Logger, cfg *config.Config) *Handler {
	entries := store.NewMemoryStore()
	aggregator := ledger.NewDeductionAggregator(
		cfg.Ledger.DeductionRates,
		cfg.Ledger.DeductibleCategory,
	)
	engine := forecast.NewEngine(forecast.Config{
		Alpha:      cfg.Forecast.Alpha,
		Beta:       cfg.Forecast.Beta,
		Gamma:      cfg.Forecast.Gamma,
		Confidence: cfg.Forecast.Confidence,
	})

	forecastService := services.NewForecastService(
		logger, entries, aggregator, engine, cfg.Forecast.DefaultHorizon)

	return &Handler{
		logger:          logger,
		entries:         entries,
		forecastService: forecastService,
	}
}

// Store returns the entry store, mainly for seeding in tests
func (h *Handler) Store() *store.MemoryStore {
	return h.entries
}
