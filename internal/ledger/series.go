package ledger

import (
	"sort"

	"github.com/revcast/revcast/internal/forecast"
	"github.com/revcast/revcast/internal/periods"
)

// SeriesOptions bound and parameterize a history build. Zero-value
// bounds are open.
type SeriesOptions struct {
	From  periods.Period // inclusive lower bound
	To    periods.Period // inclusive upper bound
	Flags AggregateFlags
}

// BuildSeries groups the entries by period key, totals each group
// through the aggregator (exactly one aggregator call per period), and
// returns the points sorted ascending by calendar order. Pure: no side
// effects on its inputs, fresh slice out.
func BuildSeries(entries []Entry, agg Aggregator, opts SeriesOptions) []forecast.HistoricalPoint {
	groups := make(map[periods.Period][]Entry)
	for _, e := range entries {
		if !opts.From.IsZero() && e.Period.Before(opts.From) {
			continue
		}
		if !opts.To.IsZero() && e.Period.After(opts.To) {
			continue
		}
		groups[e.Period] = append(groups[e.Period], e)
	}

	points := make([]forecast.HistoricalPoint, 0, len(groups))
	for period, group := range groups {
		total := agg.Aggregate(group, opts.Flags)
		value, _ := total.Total.Float64()
		points = append(points, forecast.HistoricalPoint{
			Period:     period,
			Value:      value,
			EntryCount: len(group),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Period.Before(points[j].Period)
	})
	return points
}
