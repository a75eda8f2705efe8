package ledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/revcast/revcast/internal/periods"
)

func entry(period, category string, amount float64) Entry {
	return Entry{
		Period:   periods.MustParse(period),
		Category: category,
		Amount:   decimal.NewFromFloat(amount),
	}
}

func TestDeductionAggregator_AppliesRates(t *testing.T) {
	agg := NewDeductionAggregator(map[string]float64{"services": 0.2}, "reimbursement")

	entries := []Entry{
		entry("01/2024", "services", 1000), // 20% deducted -> 800
		entry("01/2024", "goods", 500),     // no rate -> full amount
	}

	got := agg.Aggregate(entries, AggregateFlags{})
	if !got.Total.Equal(decimal.NewFromInt(1300)) {
		t.Errorf("total = %s, want 1300", got.Total)
	}
}

func TestDeductionAggregator_ExcludeDeductible(t *testing.T) {
	agg := NewDeductionAggregator(nil, "reimbursement")

	entries := []Entry{
		entry("01/2024", "services", 1000),
		entry("01/2024", "reimbursement", 400),
	}

	with := agg.Aggregate(entries, AggregateFlags{})
	if !with.Total.Equal(decimal.NewFromInt(1400)) {
		t.Errorf("total = %s, want 1400", with.Total)
	}

	without := agg.Aggregate(entries, AggregateFlags{ExcludeDeductible: true})
	if !without.Total.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("total with exclusion = %s, want 1000", without.Total)
	}
}

func TestDeductionAggregator_EmptyGroup(t *testing.T) {
	agg := NewDeductionAggregator(nil, "")
	got := agg.Aggregate(nil, AggregateFlags{})
	if !got.Total.IsZero() {
		t.Errorf("total over no entries = %s, want 0", got.Total)
	}
}

func TestDeductionAggregator_ExactDecimalArithmetic(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3 in decimal space.
	agg := NewDeductionAggregator(nil, "")
	entries := []Entry{
		entry("01/2024", "misc", 0.1),
		entry("01/2024", "misc", 0.2),
	}

	got := agg.Aggregate(entries, AggregateFlags{})
	if !got.Total.Equal(decimal.RequireFromString("0.3")) {
		t.Errorf("total = %s, want exactly 0.3", got.Total)
	}
}
