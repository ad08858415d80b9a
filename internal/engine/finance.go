package engine

import (
	"github.com/piwi3910/LumenGrid/internal/model"
)

// annualEnergyKWh returns a system's yearly energy consumption.
func annualEnergyKWh(sys model.SystemSpec, hoursPerDay float64) float64 {
	return sys.TotalKW() * hoursPerDay * 365
}

// CompareSystems computes the operating-cost delta between the baseline
// and proposed systems and the payback period on the proposed capital.
//
// annualSavings may legitimately be zero or negative (the proposed system
// costs more to run); in that case the comparison reports BreaksEven=false
// with a zero PaybackYears rather than a negative or infinite number.
//
// When in.AnalysisYears > 0 a cumulative cash-flow series is produced:
// year 0 is the capital outlay on the proposed system, and each following
// year accumulates the annual savings.
func CompareSystems(in model.FinancialInputs) model.FinancialComparison {
	baselineKWh := annualEnergyKWh(in.Baseline, in.HoursPerDay)
	proposedKWh := annualEnergyKWh(in.Proposed, in.HoursPerDay)

	baselineEnergy := baselineKWh * in.TariffPerKWh
	proposedEnergy := proposedKWh * in.TariffPerKWh

	savings := baselineEnergy + in.Baseline.MaintenancePerYear -
		proposedEnergy - in.Proposed.MaintenancePerYear

	cmp := model.FinancialComparison{
		Baseline:             in.Baseline,
		Proposed:             in.Proposed,
		BaselineAnnualKWh:    baselineKWh,
		ProposedAnnualKWh:    proposedKWh,
		BaselineAnnualEnergy: baselineEnergy,
		ProposedAnnualEnergy: proposedEnergy,
		AnnualSavings:        savings,
	}

	if savings > 0 {
		cmp.BreaksEven = true
		cmp.PaybackYears = in.Proposed.CapitalCost / savings
	}

	if in.AnalysisYears > 0 {
		cmp.CashFlow = make([]model.YearCashFlow, 0, in.AnalysisYears+1)
		cumulative := -in.Proposed.CapitalCost
		cmp.CashFlow = append(cmp.CashFlow, model.YearCashFlow{Year: 0, Cumulative: cumulative})
		for year := 1; year <= in.AnalysisYears; year++ {
			cumulative += savings
			cmp.CashFlow = append(cmp.CashFlow, model.YearCashFlow{Year: year, Cumulative: cumulative})
		}
	}

	return cmp
}
