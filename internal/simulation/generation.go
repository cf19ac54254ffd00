package simulation

import (
	"math"

	"github.com/PSJ84/jssolar-project-portal-sub001/pkg/constants"
)

// AnnualGeneration returns the expected generation in kWh for the given
// 1-indexed year, compounding the panel degradation rate from year 2 on.
// Output is non-increasing in year, strictly decreasing when the rate is
// positive.
func AnnualGeneration(capacityKW, peakHours, degradationRate float64, year int) float64 {
	return capacityKW * peakHours * constants.DaysPerYear *
		math.Pow(1-degradationRate, float64(year-1))
}

// Revenue holds the two revenue streams for one year of generation.
type Revenue struct {
	SMP   float64
	REC   float64
	Total float64
}

// RevenueFor prices a year of generation. REC revenue is denominated per
// MWh-equivalent certificate, scaled by the technology weight.
func RevenueFor(generation float64, s Settings) Revenue {
	smp := generation * s.SMPPrice
	rec := generation / constants.KWhPerREC * s.RECPrice * s.RECWeight
	return Revenue{SMP: smp, REC: rec, Total: smp + rec}
}
