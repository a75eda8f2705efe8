package forecast

import "math"

// minBacktestPoints is the minimum history needed for a holdout split.
// Below it Evaluate reports all-zero metrics instead of guessing.
const minBacktestPoints = 3

// Evaluate estimates out-of-sample error with an 80/20 holdout split:
// the linear forecaster is fitted on the first floor(0.8n) points and
// scored against the remainder.
//
// The backtest always uses linear regression regardless of the method
// requested for the real forecast, so the reported metrics do not
// necessarily reflect the error characteristics of a seasonal or
// Holt-Winters run. Kept as-is as a documented simplification.
func Evaluate(history []HistoricalPoint, cfg Config) AccuracyMetrics {
	if len(history) < minBacktestPoints {
		return AccuracyMetrics{}
	}

	split := int(float64(len(history)) * 0.8)
	train, test := history[:split], history[split:]

	predictions := NewLinearForecaster().Forecast(train, len(test), cfg)

	actual := make([]float64, len(test))
	predicted := make([]float64, len(test))
	for i := range test {
		actual[i] = test[i].Value
		predicted[i] = predictions[i].Value
	}

	mse := meanSquaredError(actual, predicted)
	return AccuracyMetrics{
		MAE:  meanAbsoluteError(actual, predicted),
		MSE:  mse,
		RMSE: math.Sqrt(mse),
		MAPE: meanAbsolutePercentageError(actual, predicted),
	}
}

func meanAbsoluteError(actual, predicted []float64) float64 {
	if len(actual) == 0 {
		return 0
	}
	sum := 0.0
	for i := range actual {
		sum += math.Abs(actual[i] - predicted[i])
	}
	return sum / float64(len(actual))
}

func meanSquaredError(actual, predicted []float64) float64 {
	if len(actual) == 0 {
		return 0
	}
	sum := 0.0
	for i := range actual {
		diff := actual[i] - predicted[i]
		sum += diff * diff
	}
	return sum / float64(len(actual))
}

// meanAbsolutePercentageError returns MAPE as a percentage. Periods with
// a zero actual value are excluded from the average; if every actual is
// zero the result is 0.
func meanAbsolutePercentageError(actual, predicted []float64) float64 {
	sum := 0.0
	count := 0
	for i := range actual {
		if actual[i] == 0 {
			continue
		}
		sum += math.Abs((actual[i] - predicted[i]) / actual[i])
		count++
	}
	if count == 0 {
		return 0
	}
	return (sum / float64(count)) * 100
}
