package simulation

import (
	"fmt"

	"github.com/PSJ84/jssolar-project-portal-sub001/pkg/constants"
	"go.uber.org/zap"
)

// yearState is the explicit fold state carried from one simulated year to the
// next: the running cash balance and the ledger row produced for the year.
type yearState struct {
	Cumulative float64
	Record     YearlyRecord
}

// advanceYear computes the ledger row for one year from the prior state. It
// is a pure step function so the recurrence can be tested per year rather
// than only end-to-end.
func advanceYear(prev yearState, year int, in AnalysisInput, s Settings, terms FinancingTerms) yearState {
	generation := AnnualGeneration(in.CapacityKW, s.PeakHours, s.DegradationRate, year)
	revenue := RevenueFor(generation, s)
	repayment, interest := loanService(terms, year)

	operating := s.MaintenanceCost + s.MonitoringCost
	expense := repayment + interest + operating
	net := revenue.Total - expense
	cumulative := prev.Cumulative + net

	return yearState{
		Cumulative: cumulative,
		Record: YearlyRecord{
			Year:          year,
			Generation:    generation,
			SMPRevenue:    revenue.SMP,
			RECRevenue:    revenue.REC,
			TotalRevenue:  revenue.Total,
			LoanRepayment: repayment,
			InterestPaid:  interest,
			OperatingCost: operating,
			TotalExpense:  expense,
			NetProfit:     net,
			Cumulative:    cumulative,
		},
	}
}

// Simulate runs the full 20-year projection for one investment. It fails
// only on input validation; for valid inputs it always returns a complete
// result.
func Simulate(logger *zap.Logger, in AnalysisInput, s Settings, policy FinancingPolicy) (*AnalysisResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis input: %s", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %s", err)
	}

	terms, err := ResolveFinancing(policy, in)
	if err != nil {
		return nil, err
	}

	logger.Debug(fmt.Sprintf("simulating %.0f kW under %s with initial cost %.2f",
		in.CapacityKW, terms.Variant, terms.InitialCost),
		zap.String("op", "simulation.Simulate"),
	)

	state := yearState{Cumulative: -terms.InitialCost}
	records := make([]YearlyRecord, 0, constants.HorizonYears)
	var totalRevenue, totalExpense float64

	for year := 1; year <= constants.HorizonYears; year++ {
		state = advanceYear(state, year, in, s, terms)
		records = append(records, state.Record)
		totalRevenue += state.Record.TotalRevenue
		totalExpense += state.Record.TotalExpense
	}

	totalProfit := state.Cumulative
	payback, achieved := PaybackPeriod(terms.InitialCost, records)

	return &AnalysisResult{
		YearlyData:      records,
		InitialCost:     terms.InitialCost,
		PaybackPeriod:   payback,
		PaybackAchieved: achieved,
		TotalRevenue:    totalRevenue,
		TotalExpense:    totalExpense,
		TotalProfit:     totalProfit,
		ROI:             ROI(totalProfit, terms.InitialCost),
		Financing:       terms,
	}, nil
}
