package forecast

import (
	"strings"
	"testing"
)

func TestEngine_Generate_Linear(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	history := makeHistory(100, 200, 300, 400, 500, 600)

	result, err := engine.Generate(history, Options{Method: MethodLinear, Periods: 2})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if result.Method != MethodLinear {
		t.Errorf("method %q, want %q", result.Method, MethodLinear)
	}
	if len(result.Predictions) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(result.Predictions))
	}
	assertClose(t, result.Predictions[0].Value, 700, 1e-6, "first prediction")
	assertClose(t, result.Predictions[1].Value, 800, 1e-6, "second prediction")

	if result.Metadata.DataPointCount != 6 {
		t.Errorf("data point count %d, want 6", result.Metadata.DataPointCount)
	}
	if result.Metadata.RequestedPeriods != 2 {
		t.Errorf("requested periods %d, want 2", result.Metadata.RequestedPeriods)
	}
	if result.Metadata.GeneratedAt.IsZero() {
		t.Error("GeneratedAt should be set")
	}
}

func TestEngine_Generate_BoundOrdering(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	history := makeHistory(900, 1100, 950, 1050, 1000, 980, 1020, 990, 1010, 1040)

	result, err := engine.Generate(history, Options{Method: MethodSeasonal, Periods: 6})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for i, p := range result.Predictions {
		if !(0 <= p.Lower && p.Lower <= p.Value && p.Value <= p.Upper) {
			t.Errorf("prediction %d violates 0 <= lower <= value <= upper: %+v", i, p)
		}
	}
	assertSequentialPeriods(t, history, result.Predictions)
}

func TestEngine_Generate_ZeroPeriods(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	history := makeHistory(100, 100, 100, 100, 100, 100)

	result, err := engine.Generate(history, Options{Method: MethodLinear, Periods: 0})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(result.Predictions) != 0 {
		t.Errorf("expected empty prediction list for zero periods, got %d", len(result.Predictions))
	}
}

func TestEngine_Generate_InsufficientData(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	history := makeHistory(100, 200, 300, 400, 500) // five points

	result, err := engine.Generate(history, Options{Method: MethodLinear, Periods: 3})
	if result != nil {
		t.Error("expected nil result for insufficient data")
	}

	insufficient, ok := err.(*InsufficientDataError)
	if !ok {
		t.Fatalf("expected *InsufficientDataError, got %T", err)
	}
	if insufficient.Have != 5 || insufficient.Need != MinDataPoints {
		t.Errorf("error fields have=%d need=%d, want 5/%d", insufficient.Have, insufficient.Need, MinDataPoints)
	}
	if insufficient.Error() == "" {
		t.Error("error message must be non-empty")
	}
}

func TestEngine_Generate_UnknownMethodPanics(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	history := makeHistory(100, 200, 300, 400, 500, 600)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for unrecognized method")
		}
	}()
	_, _ = engine.Generate(history, Options{Method: "cubic", Periods: 3})
}

func TestEngine_Generate_UnknownMethodPanicsBeforeDataCheck(t *testing.T) {
	// A bad method name is a caller defect even when the data is also
	// insufficient; the panic wins.
	engine := NewEngine(DefaultConfig())

	defer func() {
		if recover() == nil {
			t.Error("expected panic for unrecognized method")
		}
	}()
	_, _ = engine.Generate(makeHistory(1), Options{Method: "cubic"})
}

func TestEngine_Generate_DefaultMethodIsLinear(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	history := makeHistory(100, 100, 100, 100, 100, 100)

	result, err := engine.Generate(history, Options{Periods: 1})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.Method != MethodLinear {
		t.Errorf("empty method should default to linear, got %q", result.Method)
	}
}

func TestEngine_Generate_HoltWintersFallbackTag(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	history := linearSeries(20, 10, 100) // below two seasons

	result, err := engine.Generate(history, Options{Method: MethodHoltWinters, Periods: 3})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if result.Method != MethodLinear {
		t.Errorf("result method %q, want %q after fallback", result.Method, MethodLinear)
	}
	for i, p := range result.Predictions {
		if p.Method != MethodLinear {
			t.Errorf("prediction %d: method %q, want %q", i, p.Method, MethodLinear)
		}
	}
}

func TestEngine_LastResult(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	if engine.LastResult() != nil {
		t.Error("fresh engine should have no last result")
	}

	history := makeHistory(100, 100, 100, 100, 100, 100)

	first, err := engine.Generate(history, Options{Method: MethodLinear, Periods: 1})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if engine.LastResult() != first {
		t.Error("last result should hold the first forecast")
	}

	second, err := engine.Generate(history, Options{Method: MethodSeasonal, Periods: 1})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if engine.LastResult() != second {
		t.Error("second forecast overwrites the slot, last write wins")
	}
}

func TestEngine_Generate_InsufficientDataDoesNotTouchCache(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	history := makeHistory(100, 100, 100, 100, 100, 100)

	ok, err := engine.Generate(history, Options{Periods: 1})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	_, err = engine.Generate(makeHistory(1, 2, 3), Options{Periods: 1})
	if err == nil {
		t.Fatal("expected insufficient data error")
	}
	if engine.LastResult() != ok {
		t.Error("a failed request must not overwrite the last result")
	}
}

func TestInsufficientDataError_Message(t *testing.T) {
	err := &InsufficientDataError{Have: 2, Need: 6}
	msg := err.Error()
	if !strings.Contains(msg, "6") || !strings.Contains(msg, "2") {
		t.Errorf("message should carry both counts: %q", msg)
	}
}
