package forecast

// LinearForecaster implements ordinary least-squares regression over the
// period index x = 0..n-1.
type LinearForecaster struct{}

// NewLinearForecaster creates a new linear regression forecaster.
func NewLinearForecaster() *LinearForecaster {
	return &LinearForecaster{}
}

func init() {
	register(NewLinearForecaster())
}

// Name returns the method tag.
func (f *LinearForecaster) Name() Method {
	return MethodLinear
}

// Forecast fits y = slope*x + intercept and projects horizon future
// points at x = n, n+1, ... A degenerate regression (all x coincide,
// only possible for n <= 1) projects flat at the series mean instead of
// dividing by zero.
func (f *LinearForecaster) Forecast(history []HistoricalPoint, horizon int, cfg Config) []Prediction {
	n := len(history)
	if n == 0 {
		return nil
	}

	fn := float64(n)
	var sumX, sumY, sumXY, sumX2 float64
	for i, p := range history {
		x := float64(i)
		sumX += x
		sumY += p.Value
		sumXY += x * p.Value
		sumX2 += x * x
	}

	mean := sumY / fn
	denominator := fn*sumX2 - sumX*sumX
	slope := safeRatio(fn*sumXY-sumX*sumY, denominator, 0)
	intercept := mean
	if denominator != 0 {
		intercept = (sumY - slope*sumX) / fn
	}

	predictions := make([]Prediction, 0, horizon)
	period := history[n-1].Period
	for i := 0; i < horizon; i++ {
		period = period.Next()
		predictions = append(predictions, Prediction{
			Period: period,
			Value:  clampNonNegative(intercept + slope*float64(n+i)),
			Method: MethodLinear,
		})
	}
	return predictions
}
