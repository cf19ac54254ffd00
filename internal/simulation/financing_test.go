package simulation

import (
	"testing"

	"github.com/PSJ84/jssolar-project-portal-sub001/pkg/mathutil"
)

func TestResolveFinancingDefaults(t *testing.T) {
	policy := DefaultFinancingPolicy()

	tests := []struct {
		name                string
		variant             FinancingVariant
		expectedRatio       float64
		expectedLoan        float64
		expectedRate        float64
		expectedTerm        int
		expectedGrace       int
		expectedInitialCost float64
	}{
		{
			name:                "Self funding carries no loan",
			variant:             SelfFunding,
			expectedRatio:       1,
			expectedLoan:        0,
			expectedRate:        0,
			expectedTerm:        0,
			expectedGrace:       0,
			expectedInitialCost: 150000000,
		},
		{
			name:                "Bank loan defaults to 20/80 split",
			variant:             BankLoan,
			expectedRatio:       0.2,
			expectedLoan:        120000000,
			expectedRate:        policy.BankInterestRate,
			expectedTerm:        10,
			expectedGrace:       0,
			expectedInitialCost: 30000000,
		},
		{
			name:                "Government loan prepends one grace year",
			variant:             GovernmentLoan,
			expectedRatio:       0.2,
			expectedLoan:        120000000,
			expectedRate:        policy.GovInterestRate,
			expectedTerm:        10,
			expectedGrace:       1,
			expectedInitialCost: 30000000,
		},
		{
			name:                "Factoring advances the full investment",
			variant:             Factoring,
			expectedRatio:       0,
			expectedLoan:        150000000,
			expectedRate:        policy.FactoringInterestRate,
			expectedTerm:        10,
			expectedGrace:       0,
			expectedInitialCost: 150000000 * (0.01 + 0.02),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms, err := ResolveFinancing(policy, AnalysisInput{
				CapacityKW:      100,
				TotalInvestment: 150000000,
				Variant:         tt.variant,
			})
			if err != nil {
				t.Fatalf("ResolveFinancing() error = %v", err)
			}
			if terms.SelfFundingRatio != tt.expectedRatio {
				t.Errorf("self funding ratio = %.2f, expected %.2f", terms.SelfFundingRatio, tt.expectedRatio)
			}
			if !mathutil.WithinTolerance(terms.LoanAmount, tt.expectedLoan, 0.01) {
				t.Errorf("loan amount = %.2f, expected %.2f", terms.LoanAmount, tt.expectedLoan)
			}
			if terms.InterestRate != tt.expectedRate {
				t.Errorf("interest rate = %.4f, expected %.4f", terms.InterestRate, tt.expectedRate)
			}
			if terms.LoanTermYears != tt.expectedTerm {
				t.Errorf("loan term = %d, expected %d", terms.LoanTermYears, tt.expectedTerm)
			}
			if terms.GraceYears != tt.expectedGrace {
				t.Errorf("grace years = %d, expected %d", terms.GraceYears, tt.expectedGrace)
			}
			if !mathutil.WithinTolerance(terms.InitialCost, tt.expectedInitialCost, 0.01) {
				t.Errorf("initial cost = %.2f, expected %.2f", terms.InitialCost, tt.expectedInitialCost)
			}
		})
	}
}

func TestResolveFinancingOverrides(t *testing.T) {
	terms, err := ResolveFinancing(DefaultFinancingPolicy(), AnalysisInput{
		CapacityKW:       100,
		TotalInvestment:  100000000,
		Variant:          BankLoan,
		SelfFundingRatio: 0.3,
		InterestRate:     0.06,
		LoanTermYears:    15,
	})
	if err != nil {
		t.Fatalf("ResolveFinancing() error = %v", err)
	}
	if terms.SelfFundingRatio != 0.3 {
		t.Errorf("self funding ratio override ignored, got %.2f", terms.SelfFundingRatio)
	}
	if !mathutil.WithinTolerance(terms.LoanAmount, 70000000, 0.01) {
		t.Errorf("loan amount = %.2f, expected 70000000", terms.LoanAmount)
	}
	if terms.InterestRate != 0.06 {
		t.Errorf("interest rate override ignored, got %.4f", terms.InterestRate)
	}
	if terms.LoanTermYears != 15 {
		t.Errorf("loan term override ignored, got %d", terms.LoanTermYears)
	}
}

func TestResolveFinancingUnknownVariant(t *testing.T) {
	_, err := ResolveFinancing(DefaultFinancingPolicy(), AnalysisInput{
		CapacityKW:      100,
		TotalInvestment: 100000000,
		Variant:         FinancingVariant("LEASE"),
	})
	if err == nil {
		t.Errorf("expected error for unknown variant, got none")
	}
}

func TestResolveFinancingGraceMustBeShorterThanTerm(t *testing.T) {
	_, err := ResolveFinancing(DefaultFinancingPolicy(), AnalysisInput{
		CapacityKW:      100,
		TotalInvestment: 100000000,
		Variant:         GovernmentLoan,
		LoanTermYears:   5,
		GraceYears:      5,
	})
	if err == nil {
		t.Errorf("expected error for grace period covering the full term, got none")
	}
}

func TestLoanService(t *testing.T) {
	terms := FinancingTerms{
		Variant:       GovernmentLoan,
		LoanAmount:    90000000,
		InterestRate:  0.02,
		LoanTermYears: 10,
		GraceYears:    1,
	}

	tests := []struct {
		name              string
		year              int
		expectedRepayment float64
		expectedInterest  float64
	}{
		{
			name:              "Grace year is interest only",
			year:              1,
			expectedRepayment: 0,
			expectedInterest:  1800000,
		},
		{
			name:              "First repayment year",
			year:              2,
			expectedRepayment: 10000000,
			expectedInterest:  1800000, // full balance approximation
		},
		{
			name:              "Second repayment year",
			year:              3,
			expectedRepayment: 10000000,
			expectedInterest:  1600000, // 8/9 of the balance remaining
		},
		{
			name:              "Final repayment year",
			year:              10,
			expectedRepayment: 10000000,
			expectedInterest:  200000,
		},
		{
			name:              "After the term elapses",
			year:              11,
			expectedRepayment: 0,
			expectedInterest:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repayment, interest := loanService(terms, tt.year)
			if !mathutil.WithinTolerance(repayment, tt.expectedRepayment, 0.01) {
				t.Errorf("repayment = %.2f, expected %.2f", repayment, tt.expectedRepayment)
			}
			if !mathutil.WithinTolerance(interest, tt.expectedInterest, 0.01) {
				t.Errorf("interest = %.2f, expected %.2f", interest, tt.expectedInterest)
			}
		})
	}
}

func TestLoanServiceSelfFunding(t *testing.T) {
	terms := FinancingTerms{Variant: SelfFunding, SelfFundingRatio: 1}
	for year := 1; year <= 20; year++ {
		repayment, interest := loanService(terms, year)
		if repayment != 0 || interest != 0 {
			t.Errorf("year %d: self funding produced loan payments %.2f / %.2f", year, repayment, interest)
		}
	}
}
