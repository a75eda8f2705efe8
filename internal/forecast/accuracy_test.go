package forecast

import "testing"

func TestEvaluate_PerfectLinearHistory(t *testing.T) {
	// A perfectly linear series backtests with zero error.
	history := linearSeries(10, 25, 500)

	metrics := Evaluate(history, DefaultConfig())
	assertClose(t, metrics.MAE, 0, 1e-6, "MAE")
	assertClose(t, metrics.MSE, 0, 1e-6, "MSE")
	assertClose(t, metrics.RMSE, 0, 1e-6, "RMSE")
	assertClose(t, metrics.MAPE, 0, 1e-6, "MAPE")
}

func TestEvaluate_TooFewPoints(t *testing.T) {
	history := makeHistory(100, 200)

	metrics := Evaluate(history, DefaultConfig())
	if metrics != (AccuracyMetrics{}) {
		t.Errorf("expected all-zero metrics below %d points, got %+v", minBacktestPoints, metrics)
	}
}

func TestEvaluate_HoldoutSplit(t *testing.T) {
	// n=10 splits into train=8, test=2. The flat training prefix
	// projects 100, so the doubled tail yields a known error.
	history := makeHistory(100, 100, 100, 100, 100, 100, 100, 100, 200, 200)

	metrics := Evaluate(history, DefaultConfig())
	assertClose(t, metrics.MAE, 100, 1e-6, "MAE against holdout")
	assertClose(t, metrics.MSE, 10000, 1e-6, "MSE against holdout")
	assertClose(t, metrics.RMSE, 100, 1e-6, "RMSE against holdout")
	assertClose(t, metrics.MAPE, 50, 1e-6, "MAPE against holdout")
}

func TestMAPE_ExcludesZeroActuals(t *testing.T) {
	actual := []float64{0, 100, 0, 200}
	predicted := []float64{50, 110, 70, 180}

	// Only the two non-zero actuals count: (10/100 + 20/200)/2 = 10%.
	got := meanAbsolutePercentageError(actual, predicted)
	assertClose(t, got, 10, 1e-9, "MAPE with zero actuals")
}

func TestMAPE_AllZeroActuals(t *testing.T) {
	got := meanAbsolutePercentageError([]float64{0, 0}, []float64{10, 20})
	if got != 0 {
		t.Errorf("MAPE over all-zero actuals = %v, want 0", got)
	}
}

func TestErrorHelpers_Empty(t *testing.T) {
	if meanAbsoluteError(nil, nil) != 0 {
		t.Error("MAE over empty slices should be 0")
	}
	if meanSquaredError(nil, nil) != 0 {
		t.Error("MSE over empty slices should be 0")
	}
}
