package forecast

// SeasonalNaiveForecaster repeats the value observed one seasonal cycle
// (12 periods) earlier.
type SeasonalNaiveForecaster struct{}

// NewSeasonalNaiveForecaster creates a new seasonal naive forecaster.
func NewSeasonalNaiveForecaster() *SeasonalNaiveForecaster {
	return &SeasonalNaiveForecaster{}
}

func init() {
	register(NewSeasonalNaiveForecaster())
}

// Name returns the method tag.
func (f *SeasonalNaiveForecaster) Name() Method {
	return MethodSeasonal
}

// Forecast selects, for each forecast step, the historical value one
// season back using modular indexing over the available history length.
// Known limitation, kept for parity with the ledger's established
// behavior: when the history length is not an exact multiple of the
// season length, the wrap-around can select a period other than the
// true year-ago value.
func (f *SeasonalNaiveForecaster) Forecast(history []HistoricalPoint, horizon int, cfg Config) []Prediction {
	n := len(history)
	if n == 0 {
		return nil
	}

	predictions := make([]Prediction, 0, horizon)
	period := history[n-1].Period
	for i := 0; i < horizon; i++ {
		period = period.Next()
		idx := (n - SeasonLength + i) % n
		if idx < 0 {
			idx += n
		}
		predictions = append(predictions, Prediction{
			Period: period,
			Value:  clampNonNegative(history[idx].Value),
			Method: MethodSeasonal,
		})
	}
	return predictions
}
