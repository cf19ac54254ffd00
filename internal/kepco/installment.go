package kepco

import (
	"fmt"

	"github.com/PSJ84/jssolar-project-portal-sub001/pkg/constants"
	"github.com/PSJ84/jssolar-project-portal-sub001/pkg/mathutil"
)

// MonthlyPayment is one row of the installment schedule.
type MonthlyPayment struct {
	Month     int     `json:"month"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Total     float64 `json:"total"`
	Remaining float64 `json:"remaining"`
}

// InstallmentPlan is the financed-payment breakdown for a charge total.
type InstallmentPlan struct {
	DownPayment       float64          `json:"downPayment"`
	FinancedPrincipal float64          `json:"financedPrincipal"`
	Schedule          []MonthlyPayment `json:"schedule"`
	TotalInterest     float64          `json:"totalInterest"`
	GrandTotal        float64          `json:"grandTotal"`
}

// BuildInstallmentPlan splits a charge total into a down payment and an
// equal-principal monthly schedule with interest on the declining balance.
// The rounding remainder of the principal split is assigned to the final
// installment so the scheduled principal sums to the financed amount exactly.
func BuildInstallmentPlan(total float64, terms InstallmentTerms) (*InstallmentPlan, error) {
	if total <= 0 {
		return nil, fmt.Errorf("charge total must be positive, got %.2f", total)
	}
	if terms.Months <= 0 {
		return nil, fmt.Errorf("installment months must be positive, got %d", terms.Months)
	}
	if terms.DownPaymentRate < 0 || terms.DownPaymentRate >= 1 {
		return nil, fmt.Errorf("down payment rate must be within [0, 1), got %.2f", terms.DownPaymentRate)
	}
	if terms.AnnualRate < 0 {
		return nil, fmt.Errorf("annual rate must not be negative, got %.4f", terms.AnnualRate)
	}

	downPayment := mathutil.Round(total * terms.DownPaymentRate)
	principal := mathutil.Round(total - downPayment)
	basePortion := mathutil.Round(principal / float64(terms.Months))
	monthlyRate := terms.AnnualRate / constants.MonthsPerYear

	schedule := make([]MonthlyPayment, 0, terms.Months)
	outstanding := principal
	var totalInterest float64

	for month := 1; month <= terms.Months; month++ {
		portion := basePortion
		if month == terms.Months {
			portion = mathutil.Round(outstanding)
		}

		interest := mathutil.Round(outstanding * monthlyRate)
		outstanding = mathutil.Round(outstanding - portion)
		totalInterest += interest

		schedule = append(schedule, MonthlyPayment{
			Month:     month,
			Principal: portion,
			Interest:  interest,
			Total:     portion + interest,
			Remaining: outstanding,
		})
	}

	return &InstallmentPlan{
		DownPayment:       downPayment,
		FinancedPrincipal: principal,
		Schedule:          schedule,
		TotalInterest:     totalInterest,
		GrandTotal:        downPayment + principal + totalInterest,
	}, nil
}
