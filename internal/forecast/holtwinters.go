package forecast

// HoltWintersForecaster implements Holt-Winters triple exponential
// smoothing with multiplicative seasonality over a fixed 12-period
// season.
type HoltWintersForecaster struct{}

// NewHoltWintersForecaster creates a new Holt-Winters forecaster.
func NewHoltWintersForecaster() *HoltWintersForecaster {
	return &HoltWintersForecaster{}
}

func init() {
	register(NewHoltWintersForecaster())
}

// Name returns the method tag.
func (f *HoltWintersForecaster) Name() Method {
	return MethodHoltWinters
}

// Forecast maintains smoothed level, trend, and per-season multiplier
// estimates, updated once per historical point, then projects
// (level + trend*h) * seasonal for each horizon step h.
//
// Fallback contract: seeding the seasonal multipliers needs two full
// seasons (24 points). Below that the forecaster silently delegates to
// linear regression, and the predictions keep the linear tag even
// though Holt-Winters was requested.
func (f *HoltWintersForecaster) Forecast(history []HistoricalPoint, horizon int, cfg Config) []Prediction {
	n := len(history)
	if n == 0 {
		return nil
	}
	if n < MinSeasonalHistory {
		return NewLinearForecaster().Forecast(history, horizon, cfg)
	}

	cfg = cfg.normalize()
	alpha, beta, gamma := cfg.Alpha, cfg.Beta, cfg.Gamma

	level := history[0].Value
	trend := (history[SeasonLength].Value - history[0].Value) / SeasonLength

	// Seed each month's multiplier against the trend-adjusted level;
	// a zero or otherwise invalid base means a neutral multiplier.
	seasonal := make([]float64, SeasonLength)
	for i := range seasonal {
		seasonal[i] = safeRatio(history[i].Value, level+trend*float64(i), 1.0)
	}

	for i := 0; i < n; i++ {
		season := i % SeasonLength
		value := history[i].Value

		oldLevel := level
		level = alpha*safeRatio(value, seasonal[season], value) + (1-alpha)*(level+trend)
		trend = beta*(level-oldLevel) + (1-beta)*trend
		// A zero level keeps the previous multiplier untouched.
		seasonal[season] = gamma*safeRatio(value, level, seasonal[season]) + (1-gamma)*seasonal[season]
	}

	predictions := make([]Prediction, 0, horizon)
	period := history[n-1].Period
	for h := 1; h <= horizon; h++ {
		period = period.Next()
		predictions = append(predictions, Prediction{
			Period: period,
			Value:  clampNonNegative((level + trend*float64(h)) * seasonal[(n+h-1)%SeasonLength]),
			Method: MethodHoltWinters,
		})
	}
	return predictions
}
