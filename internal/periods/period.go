// Package periods implements the MM/YYYY period keys used to label
// monthly revenue aggregation buckets, with parsing, formatting, and
// calendar arithmetic. All operations are pure.
package periods

import (
	"fmt"
	"strconv"
	"time"
)

// Key is the textual form of a period: two-digit month, slash,
// four-digit year (e.g. "03/2025").
const keyLength = 7

// Period represents one calendar month with month-level granularity.
// The zero value is not a valid period; see IsZero.
type Period struct {
	month time.Month
	year  int
}

// New returns a normalized Period for the given year and month.
// Out-of-range months roll into adjacent years.
func New(year int, month time.Month) Period {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Period{month: t.Month(), year: t.Year()}
}

// FromTime returns the period containing t.
func FromTime(t time.Time) Period {
	return Period{month: t.Month(), year: t.Year()}
}

// Parse parses a strict MM/YYYY period key.
func Parse(key string) (Period, error) {
	if len(key) != keyLength || key[2] != '/' {
		return Period{}, fmt.Errorf("invalid period key %q: want MM/YYYY", key)
	}
	month, err := strconv.Atoi(key[:2])
	if err != nil || month < 1 || month > 12 {
		return Period{}, fmt.Errorf("invalid period key %q: month out of range", key)
	}
	year, err := strconv.Atoi(key[3:])
	if err != nil || year < 1 {
		return Period{}, fmt.Errorf("invalid period key %q: bad year", key)
	}
	return Period{month: time.Month(month), year: year}, nil
}

// MustParse parses a period key, panicking on malformed input.
// Intended for literals in tests and configuration defaults.
func MustParse(key string) Period {
	p, err := Parse(key)
	if err != nil {
		panic(err)
	}
	return p
}

// Year returns the calendar year.
func (p Period) Year() int { return p.year }

// Month returns the calendar month.
func (p Period) Month() time.Month { return p.month }

// Key formats the period as MM/YYYY.
func (p Period) Key() string {
	return fmt.Sprintf("%02d/%04d", int(p.month), p.year)
}

// String implements fmt.Stringer.
func (p Period) String() string { return p.Key() }

// IsZero reports whether p is the zero value.
func (p Period) IsZero() bool { return p.month == 0 && p.year == 0 }

// Next returns the following period; December rolls over to January of
// the next year.
func (p Period) Next() Period {
	if p.month == time.December {
		return Period{month: time.January, year: p.year + 1}
	}
	return Period{month: p.month + 1, year: p.year}
}

// AddMonths returns the period n months after p (n may be negative).
func (p Period) AddMonths(n int) Period {
	return New(p.year, p.month+time.Month(n))
}

// Compare returns -1, 0, or 1 ordering p against x by calendar order.
func (p Period) Compare(x Period) int {
	switch {
	case p.year != x.year:
		if p.year < x.year {
			return -1
		}
		return 1
	case p.month != x.month:
		if p.month < x.month {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Before reports whether p is strictly earlier than x.
func (p Period) Before(x Period) bool { return p.Compare(x) < 0 }

// After reports whether p is strictly later than x.
func (p Period) After(x Period) bool { return p.Compare(x) > 0 }

// MarshalJSON encodes the period as its MM/YYYY key.
func (p Period) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.Key())), nil
}

// UnmarshalJSON decodes a MM/YYYY key.
func (p *Period) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("period must be a MM/YYYY string: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
