package services

import (
	"errors"
	"time"

	"github.com/revcast/revcast/internal/forecast"
	"github.com/revcast/revcast/internal/ledger"
	"github.com/revcast/revcast/internal/logging"
	"github.com/revcast/revcast/internal/models"
	"github.com/revcast/revcast/internal/store"
)

// EntrySource is the slice of the store the forecast service reads.
type EntrySource interface {
	List(f store.Filter) []ledger.Entry
}

// ForecastService handles forecasting business logic
type ForecastService struct {
	logger         *logging.Logger
	entries        EntrySource
	aggregator     ledger.Aggregator
	engine         *forecast.Engine
	defaultHorizon int
}

// NewForecastService creates a new ForecastService
func NewForecastService(
	logger *logging.Logger,
	entries EntrySource,
	aggregator ledger.Aggregator,
	engine *forecast.Engine,
	defaultHorizon int,
) *ForecastService {
	if defaultHorizon < 1 {
		defaultHorizon = forecast.DefaultHorizon
	}
	return &ForecastService{
		logger:         logger,
		entries:        entries,
		aggregator:     aggregator,
		engine:         engine,
		defaultHorizon: defaultHorizon,
	}
}

// Generate builds the monthly revenue series from the ledger and runs
// one forecast over it. The request must already be validated.
func (s *ForecastService) Generate(req *models.ForecastRequest) (*forecast.Result, error) {
	startExec := time.Now()

	// Validate method before it reaches the engine; the engine treats an
	// unknown method as a programming error.
	method := forecast.Method(req.Method)
	if method == "" {
		method = forecast.MethodLinear
	}
	if !forecast.KnownMethod(method) {
		return nil, &ServiceError{
			Code:    "INVALID_METHOD",
			Message: "Unknown forecast method: " + req.Method,
			Details: map[string]interface{}{
				"available_methods": forecast.Methods(),
			},
		}
	}

	horizon := s.defaultHorizon
	if req.Periods != nil {
		horizon = *req.Periods
	}

	entries := s.entries.List(store.Filter{From: req.FromParsed, To: req.ToParsed})
	history := ledger.BuildSeries(entries, s.aggregator, ledger.SeriesOptions{
		From: req.FromParsed,
		To:   req.ToParsed,
		Flags: ledger.AggregateFlags{
			ExcludeDeductible: req.ExcludeDeductible,
		},
	})

	result, err := s.engine.Generate(history, forecast.Options{
		Method:  method,
		Periods: horizon,
	})
	if err != nil {
		var insufficient *forecast.InsufficientDataError
		if errors.As(err, &insufficient) {
			return nil, &ServiceError{
				Code:    "INSUFFICIENT_DATA",
				Message: insufficient.Error(),
				Details: map[string]interface{}{
					"have": insufficient.Have,
					"need": insufficient.Need,
				},
			}
		}
		return nil, &ServiceError{
			Code:    "FORECAST_FAILED",
			Message: err.Error(),
		}
	}

	latency := time.Since(startExec)
	s.logger.Info("Forecast completed",
		"method", result.Method,
		"periods", horizon,
		"data_points", result.Metadata.DataPointCount,
		"latency_ms", latency.Milliseconds())

	return result, nil
}

// Last returns the most recently generated forecast
func (s *ForecastService) Last() (*forecast.Result, error) {
	result := s.engine.LastResult()
	if result == nil {
		return nil, NewServiceError("NO_FORECAST", "No forecast has been generated yet")
	}
	return result, nil
}

// Report renders the most recent forecast as a line-oriented text report
func (s *ForecastService) Report() (string, error) {
	result, err := s.Last()
	if err != nil {
		return "", err
	}
	return forecast.ExportReport(result), nil
}
