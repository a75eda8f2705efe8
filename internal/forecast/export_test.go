package forecast

import (
	"strings"
	"testing"
)

func TestExportReport_Layout(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	history := makeHistoryFrom("01/2024", 100, 200, 300, 400, 500, 600)

	result, err := engine.Generate(history, Options{Method: MethodLinear, Periods: 2})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	report := ExportReport(result)
	lines := strings.Split(report, "\n")

	if lines[0] != "# Revenue Forecast Report" {
		t.Errorf("title line = %q", lines[0])
	}
	if lines[1] != "# Method: linear" {
		t.Errorf("method line = %q", lines[1])
	}
	if lines[2] != "# Historical data points: 6" {
		t.Errorf("data points line = %q", lines[2])
	}
	if lines[3] != "# Forecast horizon: 2" {
		t.Errorf("horizon line = %q", lines[3])
	}
	if lines[4] != "" {
		t.Errorf("expected blank line before sections, got %q", lines[4])
	}
	if lines[5] != "HISTORICAL" {
		t.Errorf("historical header = %q", lines[5])
	}
	if lines[6] != "01/2024,100.00" {
		t.Errorf("first historical line = %q", lines[6])
	}

	if !strings.Contains(report, "\nPREDICTIONS\n07/2024,700.00,") {
		t.Errorf("predictions section malformed:\n%s", report)
	}
	if !strings.Contains(report, "\nACCURACY\nMAE,") {
		t.Errorf("accuracy section malformed:\n%s", report)
	}
}

func TestExportReport_NumericFormatting(t *testing.T) {
	result := &Result{
		Method: MethodSeasonal,
		Historical: makeHistory(1234.5),
		Predictions: []Prediction{
			{Period: makeHistory(0)[0].Period.Next(), Value: 10.125, Lower: 0, Upper: 20.5, Method: MethodSeasonal},
		},
		Accuracy: AccuracyMetrics{MAE: 1.005, MSE: 2, RMSE: 1.41421, MAPE: 12.3456},
		Metadata: Metadata{RequestedPeriods: 1},
	}

	report := ExportReport(result)

	for _, want := range []string{
		"01/2023,1234.50",
		"02/2023,10.12,0.00,20.50",
		"MAE,1.00",
		"MSE,2.00",
		"RMSE,1.41",
		"MAPE,12.35%",
	} {
		if !strings.Contains(report, want+"\n") {
			t.Errorf("report missing line %q:\n%s", want, report)
		}
	}

	if got := strings.Count(report, "%"); got != 1 {
		t.Errorf("report should contain exactly one %%-suffixed line, found %d", got)
	}
}

func TestExportReport_ZeroPeriods(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	history := makeHistory(100, 100, 100, 100, 100, 100)

	result, err := engine.Generate(history, Options{Method: MethodLinear, Periods: 0})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	report := ExportReport(result)
	// All three section headers remain present with an empty horizon.
	if !strings.Contains(report, "\nHISTORICAL\n") {
		t.Error("missing HISTORICAL section")
	}
	if !strings.Contains(report, "\nPREDICTIONS\n\n") {
		t.Error("PREDICTIONS section should be present and empty")
	}
	if !strings.Contains(report, "\nACCURACY\n") {
		t.Error("missing ACCURACY section")
	}
}
