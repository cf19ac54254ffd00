package kepco

import (
	"fmt"

	"github.com/PSJ84/jssolar-project-portal-sub001/pkg/mathutil"
	"go.uber.org/zap"
)

// ChargeInput describes one interconnection request. The distance charge is
// entered manually by the operator from the utility's site survey.
type ChargeInput struct {
	ContractKW     float64      `json:"contractKw"`
	Voltage        VoltageClass `json:"voltageClass"`
	Supply         SupplyMethod `json:"supplyMethod"`
	DistanceCharge float64      `json:"distanceCharge"`
	Payment        PaymentType  `json:"paymentType"`

	// InstallmentMonths overrides the published installment count when
	// positive.
	InstallmentMonths int `json:"installmentMonths,omitempty"`
}

// ChargeLine is one itemized component of the basic charge.
type ChargeLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// ChargeResult is the complete outcome of one charge calculation.
type ChargeResult struct {
	Lines          []ChargeLine     `json:"lines"`
	BasicCharge    float64          `json:"basicCharge"`
	DistanceCharge float64          `json:"distanceCharge"`
	Total          float64          `json:"total"`
	Plan           *InstallmentPlan `json:"installmentPlan,omitempty"`
}

// Validate rejects malformed charge inputs before any lookup runs.
func (in ChargeInput) Validate() error {
	if in.ContractKW <= 0 {
		return fmt.Errorf("contract capacity must be positive, got %.2f", in.ContractKW)
	}
	switch in.Voltage {
	case LowVoltage, HighVoltage:
	default:
		return fmt.Errorf("unknown voltage class %q", in.Voltage)
	}
	switch in.Supply {
	case Overhead, Underground:
	default:
		return fmt.Errorf("unknown supply method %q", in.Supply)
	}
	switch in.Payment {
	case LumpSum, Installment:
	default:
		return fmt.Errorf("unknown payment type %q", in.Payment)
	}
	if in.DistanceCharge < 0 {
		return fmt.Errorf("distance charge must not be negative, got %.2f", in.DistanceCharge)
	}
	if in.InstallmentMonths < 0 {
		return fmt.Errorf("installment months must not be negative, got %d", in.InstallmentMonths)
	}
	return nil
}

// basicCharge walks the ordered band table and accumulates a charge for each
// band the contract capacity crosses, the same way progressive tax brackets
// apply. One line item is emitted per band touched.
func basicCharge(bands []ChargeBand, contractKW float64) ([]ChargeLine, float64) {
	var lines []ChargeLine
	var subtotal float64

	bandStart := 0.0
	for _, band := range bands {
		span := contractKW - bandStart
		if band.UpToKW > 0 && contractKW > band.UpToKW {
			span = band.UpToKW - bandStart
		}
		if span <= 0 {
			break
		}

		amount := mathutil.Round(span * band.RatePerKW)
		lines = append(lines, ChargeLine{
			Description: fmt.Sprintf("%s: %.1f kW x %.0f", band.Label, span, band.RatePerKW),
			Amount:      amount,
		})
		subtotal += amount

		if band.UpToKW == 0 || contractKW <= band.UpToKW {
			break
		}
		bandStart = band.UpToKW
	}

	return lines, subtotal
}

// Calculate produces the interconnection charge for one request: the tiered
// basic charge, the pass-through distance charge, their total, and the
// installment plan when financed payment is selected.
func Calculate(logger *zap.Logger, in ChargeInput, schedule ChargeSchedule, terms InstallmentTerms) (*ChargeResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid charge input: %s", err)
	}

	bands, err := schedule.Bands(in.Voltage, in.Supply)
	if err != nil {
		return nil, err
	}

	lines, subtotal := basicCharge(bands, in.ContractKW)
	total := subtotal + in.DistanceCharge

	logger.Debug(fmt.Sprintf("interconnection charge %.2f for %.1f kW (%s/%s)",
		total, in.ContractKW, in.Voltage, in.Supply),
		zap.String("op", "kepco.Calculate"),
	)

	result := &ChargeResult{
		Lines:          lines,
		BasicCharge:    subtotal,
		DistanceCharge: in.DistanceCharge,
		Total:          total,
	}

	if in.Payment == Installment {
		if in.InstallmentMonths > 0 {
			terms.Months = in.InstallmentMonths
		}
		plan, err := BuildInstallmentPlan(total, terms)
		if err != nil {
			return nil, err
		}
		result.Plan = plan
	}

	return result, nil
}
