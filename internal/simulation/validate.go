package simulation

import "fmt"

// Validate rejects malformed inputs before any simulation loop executes.
func (in AnalysisInput) Validate() error {
	if in.CapacityKW <= 0 {
		return fmt.Errorf("capacity must be positive, got %.2f", in.CapacityKW)
	}
	if in.TotalInvestment <= 0 {
		return fmt.Errorf("total investment must be positive, got %.2f", in.TotalInvestment)
	}
	switch in.Variant {
	case SelfFunding, BankLoan, GovernmentLoan, Factoring:
	default:
		return fmt.Errorf("unknown financing variant %q", in.Variant)
	}
	if in.SelfFundingRatio < 0 || in.SelfFundingRatio > 1 {
		return fmt.Errorf("self funding ratio must be within [0, 1], got %.4f", in.SelfFundingRatio)
	}
	if in.LoanAmount < 0 {
		return fmt.Errorf("loan amount must not be negative, got %.2f", in.LoanAmount)
	}
	if in.InterestRate < 0 {
		return fmt.Errorf("interest rate must not be negative, got %.4f", in.InterestRate)
	}
	if in.LoanTermYears < 0 {
		return fmt.Errorf("loan term must not be negative, got %d", in.LoanTermYears)
	}
	if in.GraceYears < 0 {
		return fmt.Errorf("grace period must not be negative, got %d", in.GraceYears)
	}
	if in.GuaranteeFeeRate < 0 || in.FactoringFeeRate < 0 {
		return fmt.Errorf("fee rates must not be negative")
	}
	return nil
}

// Validate rejects malformed assumption snapshots.
func (s Settings) Validate() error {
	if s.PeakHours <= 0 {
		return fmt.Errorf("peak sun-hours must be positive, got %.2f", s.PeakHours)
	}
	if s.DegradationRate < 0 || s.DegradationRate >= 1 {
		return fmt.Errorf("degradation rate must be within [0, 1), got %.4f", s.DegradationRate)
	}
	if s.SMPPrice < 0 || s.RECPrice < 0 || s.RECWeight < 0 {
		return fmt.Errorf("prices and weights must not be negative")
	}
	if s.MaintenanceCost < 0 || s.MonitoringCost < 0 {
		return fmt.Errorf("fixed costs must not be negative")
	}
	return nil
}
