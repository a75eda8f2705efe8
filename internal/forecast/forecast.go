// Package forecast implements the revenue forecasting engine: monthly
// revenue history in, forward projections with accuracy metrics and
// confidence bounds out. The whole package is synchronous, allocation
// only, and free of I/O; a request either completes immediately or
// fails synchronously.
package forecast

import (
	"fmt"
	"sort"
	"time"

	"github.com/revcast/revcast/internal/periods"
)

// Method identifies a forecasting algorithm.
type Method string

const (
	// MethodLinear is ordinary least-squares regression over the period index.
	MethodLinear Method = "linear"
	// MethodSeasonal repeats the value observed one seasonal cycle earlier.
	MethodSeasonal Method = "seasonal"
	// MethodHoltWinters is triple exponential smoothing (level, trend, seasonal).
	MethodHoltWinters Method = "holtwinters"
)

const (
	// MinDataPoints is the minimum history length required for any forecast.
	MinDataPoints = 6
	// DefaultHorizon is the number of periods projected when the caller
	// does not specify one.
	DefaultHorizon = 6
	// SeasonLength is fixed at 12 monthly periods.
	SeasonLength = 12
	// MinSeasonalHistory is the history length Holt-Winters needs to seed
	// its seasonal multipliers: two full seasons.
	MinSeasonalHistory = 2 * SeasonLength
)

// HistoricalPoint is one calendar period's revenue aggregate. Points are
// built fresh per invocation and immutable thereafter; at most one point
// exists per distinct period, sorted ascending before any forecaster
// consumes the series.
type HistoricalPoint struct {
	Period     periods.Period `json:"period"`
	Value      float64        `json:"value"`
	EntryCount int            `json:"entry_count"`
}

// Prediction is one forecast period's estimate. Lower and Upper are
// filled in by the confidence interval pass after the forecaster runs.
type Prediction struct {
	Period periods.Period `json:"period"`
	Value  float64        `json:"value"`
	Lower  float64        `json:"lower"`
	Upper  float64        `json:"upper"`
	Method Method         `json:"method"`
}

// AccuracyMetrics holds holdout-backtest error estimates. MAPE is a
// percentage; periods with zero actual value are excluded from its
// average rather than causing division errors.
type AccuracyMetrics struct {
	MAE  float64 `json:"mae"`
	MSE  float64 `json:"mse"`
	RMSE float64 `json:"rmse"`
	MAPE float64 `json:"mape"`
}

// Metadata describes how a result was produced.
type Metadata struct {
	DataPointCount   int       `json:"data_point_count"`
	RequestedPeriods int       `json:"requested_periods"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// Result is the aggregate produced by one forecast invocation. Method
// reflects the algorithm that actually ran, which can differ from the
// one requested when Holt-Winters falls back to linear regression.
type Result struct {
	Method      Method            `json:"method"`
	Historical  []HistoricalPoint `json:"historical"`
	Predictions []Prediction      `json:"predictions"`
	Accuracy    AccuracyMetrics   `json:"accuracy"`
	Metadata    Metadata          `json:"metadata"`
}

// Config holds the smoothing parameters and confidence level shared by
// the forecasters. Zero or out-of-range fields are normalized to the
// defaults below.
type Config struct {
	Alpha      float64 // level smoothing factor (0-1)
	Beta       float64 // trend smoothing factor (0-1)
	Gamma      float64 // seasonal smoothing factor (0-1)
	Confidence float64 // 0.95 or 0.99; see zScore
}

// DefaultConfig returns the standard smoothing parameters.
func DefaultConfig() Config {
	return Config{
		Alpha:      0.3,
		Beta:       0.1,
		Gamma:      0.1,
		Confidence: 0.95,
	}
}

// normalize clamps invalid parameters back to their defaults.
func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.Alpha <= 0 || c.Alpha > 1 {
		c.Alpha = def.Alpha
	}
	if c.Beta <= 0 || c.Beta > 1 {
		c.Beta = def.Beta
	}
	if c.Gamma <= 0 || c.Gamma > 1 {
		c.Gamma = def.Gamma
	}
	if !supportedConfidence(c.Confidence) {
		c.Confidence = def.Confidence
	}
	return c
}

// Forecaster is implemented by each forecasting algorithm. Forecast is
// total over any non-empty history: numeric edge cases are handled by
// documented fallbacks, never surfaced as errors. Minimum-length
// validation belongs to the Engine.
type Forecaster interface {
	// Name returns the method tag attached to this forecaster's predictions.
	Name() Method
	// Forecast projects horizon future periods from the given ascending
	// history. Each predicted value is clamped to be non-negative.
	Forecast(history []HistoricalPoint, horizon int, cfg Config) []Prediction
}

var registry = map[Method]Forecaster{}

func register(f Forecaster) {
	registry[f.Name()] = f
}

// forecasterFor returns the forecaster registered under m. An unknown
// method is a caller defect, not a data condition, so it panics rather
// than returning an error value.
func forecasterFor(m Method) Forecaster {
	f, ok := registry[m]
	if !ok {
		panic(fmt.Sprintf("forecast: unknown method %q", m))
	}
	return f
}

// KnownMethod reports whether m names a registered forecaster.
func KnownMethod(m Method) bool {
	_, ok := registry[m]
	return ok
}

// Methods returns the registered method names in sorted order.
func Methods() []Method {
	names := make([]Method, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
