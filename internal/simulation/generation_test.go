package simulation

import (
	"testing"

	"github.com/PSJ84/jssolar-project-portal-sub001/pkg/mathutil"
)

func TestAnnualGenerationFirstYear(t *testing.T) {
	// 100 kW at 3.7 peak sun-hours: 100 * 3.7 * 365 = 135,050 kWh with no
	// degradation applied in year 1.
	generation := AnnualGeneration(100, 3.7, 0.008, 1)
	if generation != 135050 {
		t.Errorf("AnnualGeneration() year 1 = %.2f, expected 135050", generation)
	}
}

func TestAnnualGenerationDecreasesWithDegradation(t *testing.T) {
	previous := AnnualGeneration(100, 3.7, 0.008, 1)
	for year := 2; year <= 20; year++ {
		current := AnnualGeneration(100, 3.7, 0.008, year)
		if current >= previous {
			t.Errorf("generation did not decrease: year %d = %.2f, year %d = %.2f",
				year-1, previous, year, current)
		}
		previous = current
	}
}

func TestAnnualGenerationConstantWithoutDegradation(t *testing.T) {
	first := AnnualGeneration(500, 3.5, 0, 1)
	for year := 2; year <= 20; year++ {
		current := AnnualGeneration(500, 3.5, 0, year)
		if current != first {
			t.Errorf("generation changed with zero degradation: year %d = %.2f, expected %.2f",
				year, current, first)
		}
	}
}

func TestRevenueFor(t *testing.T) {
	settings := Settings{
		SMPPrice:  120,
		RECPrice:  40000,
		RECWeight: 1.0,
	}

	tests := []struct {
		name        string
		generation  float64
		expectedSMP float64
		expectedREC float64
	}{
		{
			name:        "Scenario A first year",
			generation:  135050,
			expectedSMP: 16206000,
			expectedREC: 5402000,
		},
		{
			name:        "One MWh equals one certificate",
			generation:  1000,
			expectedSMP: 120000,
			expectedREC: 40000,
		},
		{
			name:        "Zero generation",
			generation:  0,
			expectedSMP: 0,
			expectedREC: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			revenue := RevenueFor(tt.generation, settings)
			if !mathutil.WithinTolerance(revenue.SMP, tt.expectedSMP, 0.01) {
				t.Errorf("SMP revenue = %.2f, expected %.2f", revenue.SMP, tt.expectedSMP)
			}
			if !mathutil.WithinTolerance(revenue.REC, tt.expectedREC, 0.01) {
				t.Errorf("REC revenue = %.2f, expected %.2f", revenue.REC, tt.expectedREC)
			}
			if revenue.Total != revenue.SMP+revenue.REC {
				t.Errorf("total revenue = %.2f, expected SMP + REC = %.2f",
					revenue.Total, revenue.SMP+revenue.REC)
			}
		})
	}
}

func TestRevenueForAppliesRECWeight(t *testing.T) {
	settings := Settings{SMPPrice: 100, RECPrice: 50000, RECWeight: 1.5}
	revenue := RevenueFor(2000, settings)
	// (2000 / 1000) * 50000 * 1.5
	if !mathutil.WithinTolerance(revenue.REC, 150000, 0.01) {
		t.Errorf("weighted REC revenue = %.2f, expected 150000", revenue.REC)
	}
}
