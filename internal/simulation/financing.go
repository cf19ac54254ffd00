package simulation

import (
	"fmt"
)

// FinancingTerms is the fully resolved financing structure the cash-flow
// loop runs against.
type FinancingTerms struct {
	Variant          FinancingVariant `json:"variant"`
	SelfFundingRatio float64          `json:"selfFundingRatio"`
	LoanAmount       float64          `json:"loanAmount"`
	InterestRate     float64          `json:"interestRate"`
	LoanTermYears    int              `json:"loanTermYears"`
	GraceYears       int              `json:"graceYears"`
	UpfrontFees      float64          `json:"upfrontFees"`
	InitialCost      float64          `json:"initialCost"`
}

// FinancingPolicy carries the canonical per-variant defaults. It is an
// injected value so that policy changes replace data, not code.
type FinancingPolicy struct {
	BankSelfFundingRatio float64 `mapstructure:"bankSelfFundingRatio"`
	BankInterestRate     float64 `mapstructure:"bankInterestRate"`
	BankTermYears        int     `mapstructure:"bankTermYears"`

	GovSelfFundingRatio float64 `mapstructure:"govSelfFundingRatio"`
	GovInterestRate     float64 `mapstructure:"govInterestRate"`
	GovTermYears        int     `mapstructure:"govTermYears"`
	GovGraceYears       int     `mapstructure:"govGraceYears"`

	FactoringInterestRate float64 `mapstructure:"factoringInterestRate"`
	FactoringTermYears    int     `mapstructure:"factoringTermYears"`
	GuaranteeFeeRate      float64 `mapstructure:"guaranteeFeeRate"`
	FactoringFeeRate      float64 `mapstructure:"factoringFeeRate"`
}

// DefaultFinancingPolicy returns the canonical defaults: a 20/80 split for
// bank and government loans, a preferential government rate with a mandatory
// one-year grace period, and full advancement with upfront fees for
// factoring.
func DefaultFinancingPolicy() FinancingPolicy {
	return FinancingPolicy{
		BankSelfFundingRatio: 0.2,
		BankInterestRate:     0.046,
		BankTermYears:        10,

		GovSelfFundingRatio: 0.2,
		GovInterestRate:     0.0175,
		GovTermYears:        10,
		GovGraceYears:       1,

		FactoringInterestRate: 0.049,
		FactoringTermYears:    10,
		GuaranteeFeeRate:      0.01,
		FactoringFeeRate:      0.02,
	}
}

// ResolveFinancing produces the complete financing terms for an input,
// applying policy defaults for any override field left at zero. The variant
// enumeration is closed; an unknown variant is an error, never silently
// defaulted.
func ResolveFinancing(policy FinancingPolicy, in AnalysisInput) (FinancingTerms, error) {
	terms := FinancingTerms{Variant: in.Variant}

	switch in.Variant {
	case SelfFunding:
		terms.SelfFundingRatio = 1

	case BankLoan:
		terms.SelfFundingRatio = fallback(in.SelfFundingRatio, policy.BankSelfFundingRatio)
		terms.LoanAmount = fallback(in.LoanAmount, in.TotalInvestment*(1-terms.SelfFundingRatio))
		terms.InterestRate = fallback(in.InterestRate, policy.BankInterestRate)
		terms.LoanTermYears = fallbackInt(in.LoanTermYears, policy.BankTermYears)
		terms.GraceYears = in.GraceYears

	case GovernmentLoan:
		terms.SelfFundingRatio = fallback(in.SelfFundingRatio, policy.GovSelfFundingRatio)
		terms.LoanAmount = fallback(in.LoanAmount, in.TotalInvestment*(1-terms.SelfFundingRatio))
		terms.InterestRate = fallback(in.InterestRate, policy.GovInterestRate)
		terms.LoanTermYears = fallbackInt(in.LoanTermYears, policy.GovTermYears)
		terms.GraceYears = fallbackInt(in.GraceYears, policy.GovGraceYears)

	case Factoring:
		terms.SelfFundingRatio = 0
		terms.LoanAmount = fallback(in.LoanAmount, in.TotalInvestment)
		terms.InterestRate = fallback(in.InterestRate, policy.FactoringInterestRate)
		terms.LoanTermYears = fallbackInt(in.LoanTermYears, policy.FactoringTermYears)
		terms.GraceYears = in.GraceYears
		guarantee := fallback(in.GuaranteeFeeRate, policy.GuaranteeFeeRate)
		factoring := fallback(in.FactoringFeeRate, policy.FactoringFeeRate)
		terms.UpfrontFees = in.TotalInvestment * (guarantee + factoring)

	default:
		return FinancingTerms{}, fmt.Errorf("unknown financing variant %q", in.Variant)
	}

	if terms.LoanAmount > 0 && terms.GraceYears >= terms.LoanTermYears {
		return FinancingTerms{}, fmt.Errorf("grace period %d must be shorter than loan term %d",
			terms.GraceYears, terms.LoanTermYears)
	}

	terms.InitialCost = in.TotalInvestment*terms.SelfFundingRatio + terms.UpfrontFees
	return terms, nil
}

// loanService returns the principal repayment and interest due in the given
// 1-indexed year under the equal-principal schedule with an optional
// interest-only grace period. Self-funded projects carry no loan and always
// return zeroes.
func loanService(t FinancingTerms, year int) (repayment, interest float64) {
	if t.LoanAmount <= 0 || t.LoanTermYears <= 0 || year > t.LoanTermYears {
		return 0, 0
	}

	if year <= t.GraceYears {
		return 0, t.LoanAmount * t.InterestRate
	}

	repaymentYears := t.LoanTermYears - t.GraceYears
	repayment = t.LoanAmount / float64(repaymentYears)

	// The remaining principal is approximated as
	// loanAmount * remainingYears / repaymentYears rather than tracked per
	// payment; this slightly overstates early interest. Kept as published
	// pending stakeholder confirmation.
	yearsIntoRepayment := year - t.GraceYears
	remainingYears := repaymentYears - yearsIntoRepayment + 1
	interest = t.LoanAmount * float64(remainingYears) / float64(repaymentYears) * t.InterestRate
	return repayment, interest
}

func fallback(override, def float64) float64 {
	if override > 0 {
		return override
	}
	return def
}

func fallbackInt(override, def int) int {
	if override > 0 {
		return override
	}
	return def
}
