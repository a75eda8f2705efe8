package ledger

import "github.com/shopspring/decimal"

// AggregateFlags controls how one period's total is computed.
type AggregateFlags struct {
	// ExcludeDeductible drops the aggregator's designated deductible
	// category from the total entirely.
	ExcludeDeductible bool `json:"exclude_deductible"`
}

// Total is one period's aggregated monetary result.
type Total struct {
	Total decimal.Decimal `json:"total"`
}

// Aggregator computes one period's total from its raw entries. The
// forecasting side treats it as a black box: all category-specific
// deduction arithmetic lives behind this interface and is never
// replicated elsewhere.
type Aggregator interface {
	Aggregate(entries []Entry, flags AggregateFlags) Total
}

// DeductionAggregator is the default Aggregator: each entry's amount is
// reduced by its category's deduction rate before summing, and the
// deductible category can be excluded wholesale via flags.
type DeductionAggregator struct {
	// Rates maps a category to its deduction rate in [0, 1]. Categories
	// without a rate contribute their full amount.
	Rates map[string]decimal.Decimal
	// DeductibleCategory names the category dropped when
	// AggregateFlags.ExcludeDeductible is set.
	DeductibleCategory string
}

// NewDeductionAggregator builds an aggregator from category -> rate
// pairs expressed as floats, as loaded from configuration.
func NewDeductionAggregator(rates map[string]float64, deductibleCategory string) *DeductionAggregator {
	converted := make(map[string]decimal.Decimal, len(rates))
	for category, rate := range rates {
		converted[category] = decimal.NewFromFloat(rate)
	}
	return &DeductionAggregator{
		Rates:              converted,
		DeductibleCategory: deductibleCategory,
	}
}

// Aggregate implements Aggregator.
func (a *DeductionAggregator) Aggregate(entries []Entry, flags AggregateFlags) Total {
	total := decimal.Zero
	for _, e := range entries {
		if flags.ExcludeDeductible && e.Category == a.DeductibleCategory {
			continue
		}
		amount := e.Amount
		if rate, ok := a.Rates[e.Category]; ok {
			amount = amount.Sub(amount.Mul(rate))
		}
		total = total.Add(amount)
	}
	return Total{Total: total}
}
