package model

import "fmt"

// ContinuousDutyFactor is the NEC 80% rule: a breaker feeding a continuous
// load (3+ hours, which grow lighting always is) may only be loaded to 80%
// of its rating.
const ContinuousDutyFactor = 0.8

// WireSpec describes one conductor entry in the ampacity catalog.
type WireSpec struct {
	Gauge       string  `json:"gauge"`        // AWG designation, e.g. "10 AWG"
	Ampacity    float64 `json:"ampacity"`     // Continuous amps at the insulation class
	ConduitSize string  `json:"conduit_size"` // Trade size for a 2-wire + ground run
}

// ElectricalConfig holds the circuit partitioning rules and the component
// catalogs used for breaker and wire sizing. All of it is caller-supplied:
// nothing electrical is hardcoded inside the engine.
type ElectricalConfig struct {
	CircuitVoltage        float64    `json:"circuit_voltage"`
	MaxFixturesPerCircuit int        `json:"max_fixtures_per_circuit"`
	BreakerSizes          []int      `json:"breaker_sizes"` // Ascending, amps
	WireTable             []WireSpec `json:"wire_table"`    // Ascending by ampacity
}

// DefaultElectricalConfig returns a conservative 277 V lighting branch
// circuit configuration: standard breaker ladder and a 75C copper THHN
// ampacity table per NEC 310.16.
func DefaultElectricalConfig() ElectricalConfig {
	return ElectricalConfig{
		CircuitVoltage:        277,
		MaxFixturesPerCircuit: 20,
		BreakerSizes:          []int{15, 20, 25, 30, 35, 40, 45, 50, 60, 70, 80, 90, 100},
		WireTable: []WireSpec{
			{Gauge: "14 AWG", Ampacity: 20, ConduitSize: "1/2\""},
			{Gauge: "12 AWG", Ampacity: 25, ConduitSize: "1/2\""},
			{Gauge: "10 AWG", Ampacity: 35, ConduitSize: "1/2\""},
			{Gauge: "8 AWG", Ampacity: 50, ConduitSize: "3/4\""},
			{Gauge: "6 AWG", Ampacity: 65, ConduitSize: "3/4\""},
			{Gauge: "4 AWG", Ampacity: 85, ConduitSize: "1\""},
			{Gauge: "3 AWG", Ampacity: 100, ConduitSize: "1\""},
			{Gauge: "2 AWG", Ampacity: 115, ConduitSize: "1-1/4\""},
			{Gauge: "1 AWG", Ampacity: 130, ConduitSize: "1-1/4\""},
		},
	}
}

// Validate checks the catalog for internal consistency.
func (c ElectricalConfig) Validate() error {
	if c.CircuitVoltage <= 0 {
		return &ValidationError{
			Entity: "electrical",
			Field:  "circuit_voltage",
			Reason: fmt.Sprintf("circuit voltage must be positive, got %.1f", c.CircuitVoltage),
		}
	}
	if c.MaxFixturesPerCircuit <= 0 {
		return &ValidationError{
			Entity: "electrical",
			Field:  "max_fixtures_per_circuit",
			Reason: fmt.Sprintf("max fixtures per circuit must be positive, got %d", c.MaxFixturesPerCircuit),
		}
	}
	if len(c.BreakerSizes) == 0 {
		return &ValidationError{
			Entity: "electrical",
			Field:  "breaker_sizes",
			Reason: "breaker catalog is empty",
		}
	}
	for i := 1; i < len(c.BreakerSizes); i++ {
		if c.BreakerSizes[i] <= c.BreakerSizes[i-1] {
			return &ValidationError{
				Entity: "electrical",
				Field:  "breaker_sizes",
				Reason: "breaker sizes must be strictly ascending",
			}
		}
	}
	if len(c.WireTable) == 0 {
		return &ValidationError{
			Entity: "electrical",
			Field:  "wire_table",
			Reason: "wire ampacity table is empty",
		}
	}
	for i, w := range c.WireTable {
		if w.Ampacity <= 0 {
			return &ValidationError{
				Entity: "electrical",
				Field:  "wire_table",
				Reason: fmt.Sprintf("wire entry %d (%s) has non-positive ampacity", i, w.Gauge),
			}
		}
	}
	return nil
}
