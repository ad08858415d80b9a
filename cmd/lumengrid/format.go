package main

import (
	"fmt"
	"strings"

	"github.com/piwi3910/LumenGrid/internal/model"
)

func printReport(name string, r model.DesignResult) {
	if name == "" {
		name = r.Spec.Name
	}
	fmt.Printf("=== %s ===\n", name)
	fmt.Printf("Room: %.1f x %.1f (area %.1f), %d fixtures, %.1f kW total\n",
		r.Spec.Room.Length, r.Spec.Room.Width, r.Spec.Room.Area(),
		len(r.Spec.Fixtures), r.Spec.TotalWattage()/1000)
	fmt.Println()

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  %s\n", w)
		}
		fmt.Println()
	}

	fmt.Println("PHOTOMETRICS")
	fmt.Printf("  Grid:       %d x %d cells @ %.2f step\n", r.Grid.Cols, r.Grid.Rows, r.Grid.Resolution)
	fmt.Printf("  PPFD:       avg %.0f  min %.0f  max %.0f umol/m2/s\n",
		r.Metrics.AvgPPFD, r.Metrics.MinPPFD, r.Metrics.MaxPPFD)
	fmt.Printf("  Uniformity: %.2f\n", r.Metrics.Uniformity)
	fmt.Printf("  DLI:        %.1f mol/m2/day @ %.0f h photoperiod\n",
		r.Metrics.DLI, r.Spec.PhotoperiodHours)
	fmt.Printf("  Efficacy:   %.2f umol/J\n", r.Metrics.Efficacy)
	fmt.Println()

	printCircuitSchedule(r.Circuits, r.Spec.Electrical.CircuitVoltage)

	if r.Financial != nil {
		fmt.Println()
		printFinancial(*r.Financial)
	}
}

func printCircuitSchedule(circuits []model.Circuit, voltage float64) {
	fmt.Printf("CIRCUIT SCHEDULE (%.0f V)\n", voltage)
	fmt.Printf("  %-8s %-9s %-10s %-9s %-9s %s\n",
		"Circuit", "Fixtures", "Load (A)", "Breaker", "Wire", "Conduit")
	for _, c := range circuits {
		fmt.Printf("  %-8s %-9d %-10.1f %-9s %-9s %s\n",
			c.ID, len(c.FixtureIDs), c.ContinuousLoad,
			fmt.Sprintf("%d A", c.BreakerRating), c.WireGauge, c.ConduitSize)
	}
}

func printFinancial(f model.FinancialComparison) {
	fmt.Println("FINANCIAL COMPARISON")
	fmt.Printf("  %-24s %12s %12s\n", "", f.Baseline.Name, f.Proposed.Name)
	fmt.Printf("  %-24s %12.0f %12.0f\n", "Annual energy (kWh)", f.BaselineAnnualKWh, f.ProposedAnnualKWh)
	fmt.Printf("  %-24s %12.0f %12.0f\n", "Annual energy cost ($)", f.BaselineAnnualEnergy, f.ProposedAnnualEnergy)
	fmt.Printf("  %-24s %12.0f %12.0f\n", "Annual maintenance ($)",
		f.Baseline.MaintenancePerYear, f.Proposed.MaintenancePerYear)
	fmt.Printf("  Annual savings: $%.0f\n", f.AnnualSavings)
	if f.BreaksEven {
		fmt.Printf("  Payback: %.1f years on $%.0f capital\n", f.PaybackYears, f.Proposed.CapitalCost)
	} else {
		fmt.Println("  Payback: never breaks even")
	}

	if len(f.CashFlow) > 0 {
		fmt.Println("  Cumulative cash flow:")
		var rows []string
		for _, y := range f.CashFlow {
			rows = append(rows, fmt.Sprintf("Y%d: %.0f", y.Year, y.Cumulative))
		}
		fmt.Printf("    %s\n", strings.Join(rows, "  "))
	}
}
