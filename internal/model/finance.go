package model

import "fmt"

// SystemSpec describes one lighting system for financial comparison.
type SystemSpec struct {
	Name               string  `json:"name"`
	FixtureCount       int     `json:"fixture_count"`
	WattsPerFixture    float64 `json:"watts_per_fixture"`
	CapitalCost        float64 `json:"capital_cost"`         // Installed cost of the full system
	MaintenancePerYear float64 `json:"maintenance_per_year"` // Relamping, drivers, labor
}

// TotalWattage returns the system's total electrical draw in watts.
func (s SystemSpec) TotalWattage() float64 {
	return float64(s.FixtureCount) * s.WattsPerFixture
}

// TotalKW returns the system's total draw in kilowatts.
func (s SystemSpec) TotalKW() float64 {
	return s.TotalWattage() / 1000.0
}

// FinancialInputs holds everything the comparator needs: the two systems,
// the tariff, the photoperiod, and the analysis horizon for the cumulative
// cash-flow series (0 disables the series).
type FinancialInputs struct {
	Baseline      SystemSpec `json:"baseline"`
	Proposed      SystemSpec `json:"proposed"`
	TariffPerKWh  float64    `json:"tariff_per_kwh"`
	HoursPerDay   float64    `json:"hours_per_day"`
	AnalysisYears int        `json:"analysis_years,omitempty"`
}

// Validate checks the comparison inputs.
func (in FinancialInputs) Validate() error {
	if in.TariffPerKWh <= 0 {
		return &ValidationError{
			Entity: "financial",
			Field:  "tariff_per_kwh",
			Reason: fmt.Sprintf("tariff must be positive, got %.4f", in.TariffPerKWh),
		}
	}
	if in.HoursPerDay <= 0 || in.HoursPerDay > 24 {
		return &ValidationError{
			Entity: "financial",
			Field:  "hours_per_day",
			Reason: fmt.Sprintf("hours per day must be in (0, 24], got %.2f", in.HoursPerDay),
		}
	}
	for _, sys := range []SystemSpec{in.Baseline, in.Proposed} {
		if sys.FixtureCount <= 0 || sys.WattsPerFixture <= 0 {
			return &ValidationError{
				Entity: "financial system " + sys.Name,
				Field:  "fixtures",
				Reason: "fixture count and wattage must be positive",
			}
		}
	}
	if in.AnalysisYears < 0 {
		return &ValidationError{
			Entity: "financial",
			Field:  "analysis_years",
			Reason: fmt.Sprintf("analysis horizon must not be negative, got %d", in.AnalysisYears),
		}
	}
	return nil
}
