package forecast

import "math"

// Numeric guard policy. The forecasters hit three degenerate spots: the
// regression denominator, the seasonal multiplier base, and zero actuals
// in MAPE. Each falls back to a documented neutral value here instead of
// letting NaN or Inf escape into a result.

// safeRatio returns num/den, or fallback when the quotient is not a
// finite number.
func safeRatio(num, den, fallback float64) float64 {
	if den == 0 {
		return fallback
	}
	r := num / den
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return fallback
	}
	return r
}

// clampNonNegative floors v at zero. Projected revenue is never negative.
func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
