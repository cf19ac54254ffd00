package simulation

import (
	"testing"

	"github.com/PSJ84/jssolar-project-portal-sub001/pkg/mathutil"
)

// makeRecords builds a ledger from net profits with the cumulative balance
// threaded from -initialCost.
func makeRecords(initialCost float64, netProfits []float64) []YearlyRecord {
	records := make([]YearlyRecord, 0, len(netProfits))
	cumulative := -initialCost
	for i, net := range netProfits {
		cumulative += net
		records = append(records, YearlyRecord{
			Year:       i + 1,
			NetProfit:  net,
			Cumulative: cumulative,
		})
	}
	return records
}

func TestPaybackPeriodInterpolation(t *testing.T) {
	tests := []struct {
		name        string
		initialCost float64
		netProfits  []float64
		expected    float64
	}{
		{
			name:        "Midpoint crossing",
			initialCost: 100,
			netProfits:  []float64{50, 100, 100},
			// cumulative: -50, 50 -> crosses halfway through year 2
			expected: 1.5,
		},
		{
			name:        "Exact year-end crossing",
			initialCost: 100,
			netProfits:  []float64{60, 40, 40},
			// cumulative: -40, 0 -> exactly at end of year 2
			expected: 2.0,
		},
		{
			name:        "Early crossing in year one",
			initialCost: 25,
			netProfits:  []float64{100, 100},
			// cumulative: 75 -> 0.25 into year 1
			expected: 0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := makeRecords(tt.initialCost, tt.netProfits)
			payback, achieved := PaybackPeriod(tt.initialCost, records)
			if !achieved {
				t.Fatalf("PaybackPeriod() reported not achieved")
			}
			if !mathutil.WithinTolerance(payback, tt.expected, 0.0001) {
				t.Errorf("PaybackPeriod() = %.4f, expected %.4f", payback, tt.expected)
			}
		})
	}
}

func TestPaybackPeriodNotAchieved(t *testing.T) {
	records := makeRecords(1000000, []float64{10, 10, 10})
	_, achieved := PaybackPeriod(1000000, records)
	if achieved {
		t.Errorf("PaybackPeriod() reported payback for a balance that never recovers")
	}
}

func TestPaybackPeriodZeroInitialCost(t *testing.T) {
	records := makeRecords(0, []float64{100})
	payback, achieved := PaybackPeriod(0, records)
	if !achieved {
		t.Fatalf("PaybackPeriod() reported not achieved for zero initial cost")
	}
	if payback != 0 {
		t.Errorf("PaybackPeriod() = %.4f, expected immediate payback 0", payback)
	}
}

func TestROI(t *testing.T) {
	tests := []struct {
		name        string
		totalProfit float64
		initialCost float64
		expected    float64
	}{
		{
			name:        "Simple doubling",
			totalProfit: 60000000,
			initialCost: 30000000,
			expected:    200.0,
		},
		{
			name:        "Rounded to one decimal",
			totalProfit: 1234,
			initialCost: 10000,
			expected:    12.3,
		},
		{
			name:        "Negative profit",
			totalProfit: -5000,
			initialCost: 10000,
			expected:    -50.0,
		},
		{
			name:        "Zero initial cost guard",
			totalProfit: 100,
			initialCost: 0,
			expected:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roi := ROI(tt.totalProfit, tt.initialCost)
			if roi != tt.expected {
				t.Errorf("ROI() = %.2f, expected %.2f", roi, tt.expected)
			}
		})
	}
}
