// Package kepco implements the utility interconnection charge calculator:
// tiered basic-charge lookup, pass-through distance charge, and an optional
// equal-principal installment plan.
package kepco

import "fmt"

// VoltageClass enumerates the supported connection voltage classes.
type VoltageClass string

const (
	LowVoltage  VoltageClass = "LOW"
	HighVoltage VoltageClass = "HIGH"
)

// SupplyMethod enumerates the supported supply methods.
type SupplyMethod string

const (
	Overhead    SupplyMethod = "OVERHEAD"
	Underground SupplyMethod = "UNDERGROUND"
)

// PaymentType selects between a one-time payment and a financed plan.
type PaymentType string

const (
	LumpSum     PaymentType = "LUMP_SUM"
	Installment PaymentType = "INSTALLMENT"
)

// ChargeBand is one capacity band of the published basic-charge table.
// UpToKW of zero means the band is unbounded.
type ChargeBand struct {
	Label     string
	UpToKW    float64
	RatePerKW float64
}

// rateKey addresses one published table by connection characteristics.
type rateKey struct {
	Voltage VoltageClass
	Supply  SupplyMethod
}

// ChargeSchedule is a versioned snapshot of the regulator-published rate
// tables. Rate updates replace the schedule value; the lookup logic never
// changes with them.
type ChargeSchedule struct {
	EffectiveDate string
	tables        map[rateKey][]ChargeBand
}

// Bands returns the band table for a voltage class and supply method.
func (s ChargeSchedule) Bands(v VoltageClass, m SupplyMethod) ([]ChargeBand, error) {
	bands, ok := s.tables[rateKey{Voltage: v, Supply: m}]
	if !ok {
		return nil, fmt.Errorf("no charge table for voltage %q supply %q", v, m)
	}
	return bands, nil
}

// DefaultChargeSchedule returns the currently published standard facility
// charge tables, in currency per kW by capacity band.
func DefaultChargeSchedule() ChargeSchedule {
	return ChargeSchedule{
		EffectiveDate: "2024-01",
		tables: map[rateKey][]ChargeBand{
			{LowVoltage, Overhead}: {
				{Label: "base band (to 50 kW)", UpToKW: 50, RatePerKW: 48000},
				{Label: "band 2 (50-100 kW)", UpToKW: 100, RatePerKW: 56000},
				{Label: "band 3 (over 100 kW)", UpToKW: 0, RatePerKW: 66000},
			},
			{LowVoltage, Underground}: {
				{Label: "base band (to 50 kW)", UpToKW: 50, RatePerKW: 66000},
				{Label: "band 2 (50-100 kW)", UpToKW: 100, RatePerKW: 75000},
				{Label: "band 3 (over 100 kW)", UpToKW: 0, RatePerKW: 86000},
			},
			{HighVoltage, Overhead}: {
				{Label: "base band (to 500 kW)", UpToKW: 500, RatePerKW: 17000},
				{Label: "band 2 (over 500 kW)", UpToKW: 0, RatePerKW: 20500},
			},
			{HighVoltage, Underground}: {
				{Label: "base band (to 500 kW)", UpToKW: 500, RatePerKW: 25000},
				{Label: "band 2 (over 500 kW)", UpToKW: 0, RatePerKW: 31000},
			},
		},
	}
}

// InstallmentTerms carries the financed-payment parameters. It is injected
// alongside the charge schedule so terms revisions are data changes.
type InstallmentTerms struct {
	DownPaymentRate float64 // fraction of the total due up front
	Months          int
	AnnualRate      float64 // declining-balance annual interest rate
}

// DefaultInstallmentTerms returns the published financed-payment terms:
// 30% down over 12 monthly installments.
func DefaultInstallmentTerms() InstallmentTerms {
	return InstallmentTerms{
		DownPaymentRate: 0.3,
		Months:          12,
		AnnualRate:      0.055,
	}
}
