// Package output provides utilities for formatting and displaying
// simulation results.
package output

import (
	"fmt"

	"github.com/PSJ84/jssolar-project-portal-sub001/internal/kepco"
	"github.com/PSJ84/jssolar-project-portal-sub001/internal/simulation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ScenarioResult pairs a configured scenario name with its analysis result.
type ScenarioResult struct {
	Name       string
	Result     *simulation.AnalysisResult
	ValidUntil string
}

// PrettyFormat outputs a human-readable rather than machine-readable ledger.
func PrettyFormat(results []ScenarioResult) {
	p := message.NewPrinter(language.English)
	for _, sr := range results {
		fmt.Printf("--- Results for scenario %s (%s) ---\n", sr.Name, sr.Result.Financing.Variant)
		fmt.Printf("Year | Generation kWh | Revenue        | Expense        | Net profit     | Cumulative\n")
		fmt.Printf("____ | ______________ | _______        | _______        | __________     | __________\n")
		for _, record := range sr.Result.YearlyData {
			_, _ = p.Printf("%4d | %14.0f | %14.0f | %14.0f | %14.0f | %14.0f\n",
				record.Year, record.Generation, record.TotalRevenue,
				record.TotalExpense, record.NetProfit, record.Cumulative)
		}
		_, _ = p.Printf("initial cost: %.0f\n", sr.Result.InitialCost)
		if sr.Result.PaybackAchieved {
			_, _ = p.Printf("payback period: %.2f years\n", sr.Result.PaybackPeriod)
		} else {
			fmt.Printf("payback period: not recovered within the projection horizon\n")
		}
		_, _ = p.Printf("20-year profit: %.0f (ROI %.1f%%)\n", sr.Result.TotalProfit, sr.Result.ROI)
		if sr.ValidUntil != "" {
			fmt.Printf("quotation valid until %s\n", sr.ValidUntil)
		}
		if len(results) > 1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs the full ledger in comma-separated value format, one row
// per scenario-year, for the reporting layer.
func CsvFormat(results []ScenarioResult) {
	fmt.Printf(`"scenario","year","generation","smpRevenue","recRevenue","totalRevenue","loanRepayment","interestPaid","operatingCost","totalExpense","netProfit","cumulative"`)
	fmt.Printf("\n")
	for _, sr := range results {
		for _, r := range sr.Result.YearlyData {
			fmt.Printf(`"%s","%d","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
				sr.Name, r.Year, r.Generation, r.SMPRevenue, r.RECRevenue, r.TotalRevenue,
				r.LoanRepayment, r.InterestPaid, r.OperatingCost, r.TotalExpense,
				r.NetProfit, r.Cumulative)
			fmt.Printf("\n")
		}
	}
}

// PrettyChargeFormat outputs the interconnection charge breakdown and, when
// present, the installment schedule.
func PrettyChargeFormat(result *kepco.ChargeResult) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Interconnection charge ---\n")
	for _, line := range result.Lines {
		_, _ = p.Printf("%s: %.0f\n", line.Description, line.Amount)
	}
	_, _ = p.Printf("basic charge subtotal: %.0f\n", result.BasicCharge)
	_, _ = p.Printf("distance charge: %.0f\n", result.DistanceCharge)
	_, _ = p.Printf("total: %.0f\n", result.Total)

	if result.Plan == nil {
		return
	}
	plan := result.Plan
	_, _ = p.Printf("down payment: %.0f, financed: %.0f\n", plan.DownPayment, plan.FinancedPrincipal)
	fmt.Printf("Month | Principal      | Interest       | Total\n")
	for _, m := range plan.Schedule {
		_, _ = p.Printf("%5d | %14.0f | %14.0f | %14.0f\n", m.Month, m.Principal, m.Interest, m.Total)
	}
	_, _ = p.Printf("total interest: %.0f, grand total: %.0f\n", plan.TotalInterest, plan.GrandTotal)
}
