// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"strings"

	"github.com/PSJ84/jssolar-project-portal-sub001/internal/kepco"
	"github.com/PSJ84/jssolar-project-portal-sub001/internal/simulation"
	"github.com/PSJ84/jssolar-project-portal-sub001/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for the simulation CLI and API.
type Configuration struct {
	Settings  SettingsConfig             `mapstructure:"settings"`
	Financing simulation.FinancingPolicy `mapstructure:"financing"`
	Scenarios []Scenario                 `mapstructure:"scenarios"`
	Kepco     *KepcoConfig               `mapstructure:"kepco"`
	Logging   LoggingConfig              `mapstructure:"logging"`
	Output    OutputConfig               `mapstructure:"output"`
	Server    ServerConfig               `mapstructure:"server"`
}

// SettingsConfig is the operator-maintained assumption snapshot sourced from
// the settings store.
type SettingsConfig struct {
	SMPPrice           float64 `mapstructure:"smpPrice"`
	RECPrice           float64 `mapstructure:"recPrice"`
	RECWeight          float64 `mapstructure:"recWeight"`
	PeakHours          float64 `mapstructure:"peakHours"`
	DegradationRate    float64 `mapstructure:"degradationRate"`
	MaintenanceCost    float64 `mapstructure:"maintenanceCost"`
	MonitoringCost     float64 `mapstructure:"monitoringCost"`
	QuotationValidDays int     `mapstructure:"quotationValidDays"`
}

// Snapshot converts the configured settings into the simulation value type.
func (s SettingsConfig) Snapshot() simulation.Settings {
	return simulation.Settings{
		SMPPrice:        s.SMPPrice,
		RECPrice:        s.RECPrice,
		RECWeight:       s.RECWeight,
		PeakHours:       s.PeakHours,
		DegradationRate: s.DegradationRate,
		MaintenanceCost: s.MaintenanceCost,
		MonitoringCost:  s.MonitoringCost,
	}
}

// Scenario is one named investment to simulate. Override fields left at zero
// fall back to the financing policy defaults.
type Scenario struct {
	Name            string  `mapstructure:"name"`
	Active          bool    `mapstructure:"active"`
	CapacityKW      float64 `mapstructure:"capacityKw"`
	TotalInvestment float64 `mapstructure:"totalInvestment"`
	Financing       string  `mapstructure:"financing"`

	SelfFundingRatio float64 `mapstructure:"selfFundingRatio"`
	LoanAmount       float64 `mapstructure:"loanAmount"`
	InterestRate     float64 `mapstructure:"interestRate"`
	LoanTermYears    int     `mapstructure:"loanTermYears"`
	GraceYears       int     `mapstructure:"graceYears"`
	GuaranteeFeeRate float64 `mapstructure:"guaranteeFeeRate"`
	FactoringFeeRate float64 `mapstructure:"factoringFeeRate"`
}

// AnalysisInput converts a scenario into a simulation input.
func (sc Scenario) AnalysisInput() (simulation.AnalysisInput, error) {
	variant, err := ParseVariant(sc.Financing)
	if err != nil {
		return simulation.AnalysisInput{}, fmt.Errorf("scenario %q: %s", sc.Name, err)
	}
	return simulation.AnalysisInput{
		CapacityKW:       sc.CapacityKW,
		TotalInvestment:  sc.TotalInvestment,
		Variant:          variant,
		SelfFundingRatio: sc.SelfFundingRatio,
		LoanAmount:       sc.LoanAmount,
		InterestRate:     sc.InterestRate,
		LoanTermYears:    sc.LoanTermYears,
		GraceYears:       sc.GraceYears,
		GuaranteeFeeRate: sc.GuaranteeFeeRate,
		FactoringFeeRate: sc.FactoringFeeRate,
	}, nil
}

// ParseVariant maps a configured financing name onto the closed variant
// enumeration. Unknown names are an error, never defaulted.
func ParseVariant(name string) (simulation.FinancingVariant, error) {
	normalized := strings.ToUpper(strings.NewReplacer("-", "_", " ", "_").Replace(strings.TrimSpace(name)))
	switch simulation.FinancingVariant(normalized) {
	case simulation.SelfFunding:
		return simulation.SelfFunding, nil
	case simulation.BankLoan:
		return simulation.BankLoan, nil
	case simulation.GovernmentLoan:
		return simulation.GovernmentLoan, nil
	case simulation.Factoring:
		return simulation.Factoring, nil
	}
	return "", fmt.Errorf("unknown financing variant %q", name)
}

// KepcoConfig describes one interconnection charge request.
type KepcoConfig struct {
	ContractKW        float64 `mapstructure:"contractKw"`
	VoltageClass      string  `mapstructure:"voltageClass"`
	SupplyMethod      string  `mapstructure:"supplyMethod"`
	DistanceCharge    float64 `mapstructure:"distanceCharge"`
	PaymentType       string  `mapstructure:"paymentType"`
	InstallmentMonths int     `mapstructure:"installmentMonths"`
}

// ChargeInput converts the configured request into the kepco value type.
func (k KepcoConfig) ChargeInput() kepco.ChargeInput {
	return kepco.ChargeInput{
		ContractKW:        k.ContractKW,
		Voltage:           kepco.VoltageClass(strings.ToUpper(strings.TrimSpace(k.VoltageClass))),
		Supply:            kepco.SupplyMethod(strings.ToUpper(strings.TrimSpace(k.SupplyMethod))),
		DistanceCharge:    k.DistanceCharge,
		Payment:           kepco.PaymentType(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(k.PaymentType), " ", "_"))),
		InstallmentMonths: k.InstallmentMonths,
	}
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`      // debug, info, warn, error
	Format     string `mapstructure:"format"`     // json, console
	OutputFile string `mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format"` // pretty, csv
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Address            string `mapstructure:"address"`
	MaxRequestBytes    int64  `mapstructure:"maxRequestBytes"`
	RateLimitPerSecond int    `mapstructure:"rateLimitPerSecond"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// FinancingPolicy returns the effective financing defaults: the canonical
// policy overlaid with any non-zero values from the financing block.
func (c *Configuration) FinancingPolicy() simulation.FinancingPolicy {
	policy := simulation.DefaultFinancingPolicy()
	overlayFloat(&policy.BankSelfFundingRatio, c.Financing.BankSelfFundingRatio)
	overlayFloat(&policy.BankInterestRate, c.Financing.BankInterestRate)
	overlayInt(&policy.BankTermYears, c.Financing.BankTermYears)
	overlayFloat(&policy.GovSelfFundingRatio, c.Financing.GovSelfFundingRatio)
	overlayFloat(&policy.GovInterestRate, c.Financing.GovInterestRate)
	overlayInt(&policy.GovTermYears, c.Financing.GovTermYears)
	overlayInt(&policy.GovGraceYears, c.Financing.GovGraceYears)
	overlayFloat(&policy.FactoringInterestRate, c.Financing.FactoringInterestRate)
	overlayInt(&policy.FactoringTermYears, c.Financing.FactoringTermYears)
	overlayFloat(&policy.GuaranteeFeeRate, c.Financing.GuaranteeFeeRate)
	overlayFloat(&policy.FactoringFeeRate, c.Financing.FactoringFeeRate)
	return policy
}

func overlayFloat(dst *float64, val float64) {
	if val > 0 {
		*dst = val
	}
}

func overlayInt(dst *int, val int) {
	if val > 0 {
		*dst = val
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Fatal input problems are reported later by the
// simulation and kepco validators.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Scenarios) == 0 {
		warnings = append(warnings, "no scenarios configured; nothing to simulate")
	}

	active := 0
	for _, scenario := range c.Scenarios {
		if !scenario.Active {
			continue
		}
		active++
		if scenario.LoanTermYears > constants.HorizonYears {
			warnings = append(warnings, fmt.Sprintf(
				"Scenario '%s' loan term %d extends past the %d-year horizon - loan will have outstanding balance",
				scenario.Name, scenario.LoanTermYears, constants.HorizonYears))
		}
	}
	if len(c.Scenarios) > 0 && active == 0 {
		warnings = append(warnings, "all scenarios are inactive; nothing to simulate")
	}

	if c.Settings.QuotationValidDays <= 0 {
		warnings = append(warnings, "quotationValidDays not set; quotations will not carry an expiry date")
	}

	return warnings
}
