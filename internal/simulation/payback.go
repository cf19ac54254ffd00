package simulation

import (
	"math"

	"github.com/PSJ84/jssolar-project-portal-sub001/pkg/mathutil"
)

// PaybackPeriod scans the cumulative-balance sequence for the first year in
// which the balance turns non-negative and interpolates the fractional
// crossing point within that year. The second return value is false when the
// balance never recovers within the horizon; the period value is undefined
// in that case and must not be read as "year zero".
func PaybackPeriod(initialCost float64, records []YearlyRecord) (float64, bool) {
	previous := -initialCost
	for _, record := range records {
		if record.Cumulative >= 0 {
			delta := record.Cumulative - previous
			if delta == 0 {
				// Degenerate flat year; the balance was already non-negative
				// at the start of it.
				return float64(record.Year - 1), true
			}
			return float64(record.Year-1) + math.Abs(previous)/delta, true
		}
		previous = record.Cumulative
	}
	return 0, false
}

// ROI returns the 20-year return on investment as a percentage rounded to
// one decimal place. A zero initial cost (e.g. a fully grant-funded project)
// reports 0 rather than dividing by zero.
func ROI(totalProfit, initialCost float64) float64 {
	if initialCost == 0 {
		return 0
	}
	return mathutil.Round1(totalProfit / initialCost * 100)
}
