package forecast

import (
	"fmt"
	"sync"
	"time"
)

// InsufficientDataError reports a history too short to forecast. It is
// the recoverable, expected error class: callers render it as guidance
// rather than treating it as a failure, so it is returned as a value.
// Contrast with unknown method names, which panic.
type InsufficientDataError struct {
	Have int
	Need int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient historical data: need at least %d monthly periods, have %d", e.Need, e.Have)
}

// Options selects the algorithm and horizon for one forecast request.
// The zero Method means linear. Periods is taken literally: zero yields
// an empty prediction list; callers wanting the standard horizon apply
// DefaultHorizon themselves.
type Options struct {
	Method  Method
	Periods int
}

// Engine dispatches forecast requests and owns the single-slot
// last-result cache. The slot holds whichever request finished last;
// overlapping requests overwrite each other (last write wins), so a
// caller that needs the result of its own request must use the value
// Generate returns, never LastResult. The mutex only keeps the slot
// pointer consistent; the computation itself shares nothing.
type Engine struct {
	cfg Config

	mu   sync.Mutex
	last *Result
}

// NewEngine creates an engine with the given smoothing parameters,
// normalizing out-of-range values to the defaults.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg.normalize()}
}

// Generate runs one forecast over the given ascending monthly history.
//
// A history shorter than MinDataPoints returns (nil,
// *InsufficientDataError). An unrecognized method panics. On success
// the result is complete — predictions, accuracy, confidence bounds,
// metadata — and is also stored in the last-result slot.
func (e *Engine) Generate(history []HistoricalPoint, opts Options) (*Result, error) {
	method := opts.Method
	if method == "" {
		method = MethodLinear
	}
	forecaster := forecasterFor(method)

	if len(history) < MinDataPoints {
		return nil, &InsufficientDataError{Have: len(history), Need: MinDataPoints}
	}

	horizon := opts.Periods
	if horizon < 0 {
		horizon = 0
	}

	predictions := forecaster.Forecast(history, horizon, e.cfg)
	accuracy := Evaluate(history, e.cfg)
	applyConfidence(predictions, accuracy.MSE, e.cfg.Confidence)

	// The effective method comes from the predictions themselves so the
	// Holt-Winters fallback to linear is visible in the result.
	effective := method
	if len(predictions) > 0 {
		effective = predictions[0].Method
	}

	result := &Result{
		Method:      effective,
		Historical:  history,
		Predictions: predictions,
		Accuracy:    accuracy,
		Metadata: Metadata{
			DataPointCount:   len(history),
			RequestedPeriods: horizon,
			GeneratedAt:      time.Now().UTC(),
		},
	}

	e.mu.Lock()
	e.last = result
	e.mu.Unlock()

	return result, nil
}

// LastResult returns the most recently generated forecast, or nil if
// none has been generated yet.
func (e *Engine) LastResult() *Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}
