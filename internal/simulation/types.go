// Package simulation implements the 20-year investment cash-flow projector
// used to build solar plant quotations: degradation-adjusted generation,
// SMP/REC revenue, loan servicing across four financing structures, payback
// interpolation and ROI.
package simulation

// FinancingVariant enumerates the supported financing structures.
type FinancingVariant string

const (
	SelfFunding    FinancingVariant = "SELF_FUNDING"
	BankLoan       FinancingVariant = "BANK_LOAN"
	GovernmentLoan FinancingVariant = "GOVERNMENT_LOAN"
	Factoring      FinancingVariant = "FACTORING"
)

// Settings holds the operator-configured assumption snapshot supplied by the
// surrounding application. It is treated as an immutable value for the
// duration of one simulation call.
type Settings struct {
	SMPPrice        float64 `json:"smpPrice"`        // currency per kWh
	RECPrice        float64 `json:"recPrice"`        // currency per certificate
	RECWeight       float64 `json:"recWeight"`       // technology weight multiplier
	PeakHours       float64 `json:"peakHours"`       // peak sun-hours per day
	DegradationRate float64 `json:"degradationRate"` // annual fraction, e.g. 0.008
	MaintenanceCost float64 `json:"maintenanceCost"` // fixed cost per year
	MonitoringCost  float64 `json:"monitoringCost"`  // fixed cost per year
}

// AnalysisInput describes one investment to simulate. Financing override
// fields left at zero fall back to the FinancingPolicy defaults for the
// selected variant.
type AnalysisInput struct {
	CapacityKW      float64          `json:"capacityKw"`
	TotalInvestment float64          `json:"totalInvestment"`
	Variant         FinancingVariant `json:"financing"`

	SelfFundingRatio float64 `json:"selfFundingRatio,omitempty"`
	LoanAmount       float64 `json:"loanAmount,omitempty"`
	InterestRate     float64 `json:"interestRate,omitempty"` // annual fraction
	LoanTermYears    int     `json:"loanTermYears,omitempty"`
	GraceYears       int     `json:"graceYears,omitempty"`
	GuaranteeFeeRate float64 `json:"guaranteeFeeRate,omitempty"`
	FactoringFeeRate float64 `json:"factoringFeeRate,omitempty"`
}

// YearlyRecord is one row of the projection ledger.
type YearlyRecord struct {
	Year          int     `json:"year"`
	Generation    float64 `json:"generation"` // kWh
	SMPRevenue    float64 `json:"smpRevenue"`
	RECRevenue    float64 `json:"recRevenue"`
	TotalRevenue  float64 `json:"totalRevenue"`
	LoanRepayment float64 `json:"loanRepayment"`
	InterestPaid  float64 `json:"interestPaid"`
	OperatingCost float64 `json:"operatingCost"` // maintenance + monitoring
	TotalExpense  float64 `json:"totalExpense"`
	NetProfit     float64 `json:"netProfit"`
	Cumulative    float64 `json:"cumulative"`
}

// AnalysisResult is the complete outcome of one simulation. It is constructed
// once per call and never mutated afterwards.
type AnalysisResult struct {
	YearlyData []YearlyRecord `json:"yearlyData"`

	InitialCost float64 `json:"initialCost"`

	// PaybackPeriod is the fractional year at which the cumulative balance
	// first turns non-negative. It is only meaningful when PaybackAchieved
	// is true; a projection that never recovers its initial cost within the
	// horizon reports PaybackAchieved = false.
	PaybackPeriod   float64 `json:"paybackPeriod"`
	PaybackAchieved bool    `json:"paybackAchieved"`

	TotalRevenue float64 `json:"totalRevenue"`
	TotalExpense float64 `json:"totalExpense"`
	TotalProfit  float64 `json:"totalProfit"`
	ROI          float64 `json:"roi"` // percent, one decimal place

	Financing FinancingTerms `json:"financingTerms"`
}
