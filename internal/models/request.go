package models

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/revcast/revcast/internal/periods"
)

// EntryRequest represents a create or update revenue entry request
type EntryRequest struct {
	Period   string          `json:"period"` // MM/YYYY
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note,omitempty"`

	// Parsed fields
	PeriodParsed periods.Period `json:"-"`
}

// Validate validates the entry request and parses the period
func (r *EntryRequest) Validate() error {
	if r.Period == "" {
		return &fiber.Error{
			Code:    fiber.StatusBadRequest,
			Message: "period is required",
		}
	}

	p, err := periods.Parse(r.Period)
	if err != nil {
		return &fiber.Error{
			Code:    fiber.StatusBadRequest,
			Message: "period must be in MM/YYYY format (e.g., 03/2024)",
		}
	}
	r.PeriodParsed = p

	if r.Category == "" {
		return &fiber.Error{
			Code:    fiber.StatusBadRequest,
			Message: "category is required",
		}
	}

	if r.Amount.IsNegative() {
		return &fiber.Error{
			Code:    fiber.StatusBadRequest,
			Message: "amount must not be negative",
		}
	}

	return nil
}

// ForecastRequest represents a forecast generation request
type ForecastRequest struct {
	Method            string `json:"method,omitempty"`  // linear, seasonal, holtwinters
	Periods           *int   `json:"periods,omitempty"` // forecast horizon; nil applies the default
	From              string `json:"from,omitempty"`    // MM/YYYY, inclusive lower bound
	To                string `json:"to,omitempty"`      // MM/YYYY, inclusive upper bound
	ExcludeDeductible bool   `json:"exclude_deductible,omitempty"`

	// Parsed fields
	FromParsed periods.Period `json:"-"`
	ToParsed   periods.Period `json:"-"`
}

// Validate validates the forecast request and parses its period bounds
func (r *ForecastRequest) Validate() error {
	if r.Periods != nil && *r.Periods < 0 {
		return &fiber.Error{
			Code:    fiber.StatusBadRequest,
			Message: "periods must not be negative",
		}
	}

	if r.From != "" {
		p, err := periods.Parse(r.From)
		if err != nil {
			return &fiber.Error{
				Code:    fiber.StatusBadRequest,
				Message: "from must be in MM/YYYY format (e.g., 01/2023)",
			}
		}
		r.FromParsed = p
	}

	if r.To != "" {
		p, err := periods.Parse(r.To)
		if err != nil {
			return &fiber.Error{
				Code:    fiber.StatusBadRequest,
				Message: "to must be in MM/YYYY format (e.g., 12/2024)",
			}
		}
		r.ToParsed = p
	}

	if r.From != "" && r.To != "" && r.ToParsed.Before(r.FromParsed) {
		return &fiber.Error{
			Code:    fiber.StatusBadRequest,
			Message: "to must not precede from",
		}
	}

	return nil
}
