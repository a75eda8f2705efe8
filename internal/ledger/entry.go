// Package ledger models periodic revenue entries and builds the monthly
// aggregate series consumed by the forecast engine. Monetary amounts are
// held as decimals end to end; only the final per-period total is
// lowered to a float for the numerical methods.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/revcast/revcast/internal/periods"
)

// Entry is one raw revenue record: a monetary amount booked against a
// monthly period under a category tag. The category drives the
// deduction arithmetic inside the aggregator.
type Entry struct {
	ID        string          `json:"id"`
	Period    periods.Period  `json:"period"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
