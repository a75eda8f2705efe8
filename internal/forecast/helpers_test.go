package forecast

import (
	"math"
	"testing"

	"github.com/revcast/revcast/internal/periods"
)

// makeHistory builds a consecutive monthly series starting at 01/2023.
func makeHistory(values ...float64) []HistoricalPoint {
	return makeHistoryFrom("01/2023", values...)
}

// makeHistoryFrom builds a consecutive monthly series starting at the
// given period key.
func makeHistoryFrom(start string, values ...float64) []HistoricalPoint {
	period := periods.MustParse(start)
	points := make([]HistoricalPoint, 0, len(values))
	for i, v := range values {
		if i > 0 {
			period = period.Next()
		}
		points = append(points, HistoricalPoint{Period: period, Value: v, EntryCount: 1})
	}
	return points
}

// linearSeries builds n points following y = slope*x + intercept.
func linearSeries(n int, slope, intercept float64) []HistoricalPoint {
	values := make([]float64, n)
	for i := range values {
		values[i] = slope*float64(i) + intercept
	}
	return makeHistory(values...)
}

func assertClose(t *testing.T, got, want, tolerance float64, msg string) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s: got %v, want %v (±%v)", msg, got, want, tolerance)
	}
}

// assertSequentialPeriods checks that predictions directly follow the
// last historical period with no gaps or repeats.
func assertSequentialPeriods(t *testing.T, history []HistoricalPoint, predictions []Prediction) {
	t.Helper()
	period := history[len(history)-1].Period
	for i, p := range predictions {
		period = period.Next()
		if p.Period != period {
			t.Errorf("prediction %d: period %s, want %s", i, p.Period, period)
		}
	}
}
