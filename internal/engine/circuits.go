package engine

import (
	"fmt"

	"github.com/piwi3910/LumenGrid/internal/model"
)

// PartitionCircuits groups fixtures into branch circuits and sizes each
// one. Fixtures are consumed strictly in input order (the documented,
// stable tie-break): the first MaxFixturesPerCircuit fixtures form CKT-1,
// the next chunk CKT-2, and so on, with the final circuit taking the
// remainder. The resulting circuits are pairwise disjoint and together
// cover every fixture.
//
// For each circuit the continuous load is the summed wattage over the
// circuit voltage; the breaker is the smallest catalog size B with
// load <= 0.8*B (the continuous-duty rule), and the wire is the smallest
// catalog gauge whose ampacity covers the breaker rating. If either
// catalog runs out, a SizingError propagates; an oversized breaker is
// never substituted silently.
func PartitionCircuits(fixtures []model.Fixture, cfg model.ElectricalConfig) ([]model.Circuit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var circuits []model.Circuit
	for start := 0; start < len(fixtures); start += cfg.MaxFixturesPerCircuit {
		end := start + cfg.MaxFixturesPerCircuit
		if end > len(fixtures) {
			end = len(fixtures)
		}
		group := fixtures[start:end]

		id := fmt.Sprintf("CKT-%d", len(circuits)+1)
		circuit, err := sizeCircuit(id, group, cfg)
		if err != nil {
			return nil, err
		}
		circuits = append(circuits, circuit)
	}

	return circuits, nil
}

// sizeCircuit computes the load and selects breaker, wire, and conduit
// for one group of fixtures.
func sizeCircuit(id string, group []model.Fixture, cfg model.ElectricalConfig) (model.Circuit, error) {
	ids := make([]string, len(group))
	var load float64
	for i, f := range group {
		ids[i] = f.ID
		load += f.CurrentAt(cfg.CircuitVoltage)
	}

	breaker := -1
	for _, b := range cfg.BreakerSizes {
		if load <= model.ContinuousDutyFactor*float64(b) {
			breaker = b
			break
		}
	}
	if breaker < 0 {
		return model.Circuit{}, &model.SizingError{
			CircuitID: id,
			Load:      load,
			Reason: fmt.Sprintf("no breaker in catalog (max %d A) satisfies the %.0f%% continuous-duty rule",
				cfg.BreakerSizes[len(cfg.BreakerSizes)-1], model.ContinuousDutyFactor*100),
		}
	}

	var wire *model.WireSpec
	for i := range cfg.WireTable {
		if cfg.WireTable[i].Ampacity >= float64(breaker) {
			wire = &cfg.WireTable[i]
			break
		}
	}
	if wire == nil {
		return model.Circuit{}, &model.SizingError{
			CircuitID: id,
			Load:      load,
			Reason:    fmt.Sprintf("no conductor in catalog has ampacity >= %d A breaker", breaker),
		}
	}

	return model.Circuit{
		ID:             id,
		FixtureIDs:     ids,
		ContinuousLoad: load,
		BreakerRating:  breaker,
		WireGauge:      wire.Gauge,
		WireAmpacity:   wire.Ampacity,
		ConduitSize:    wire.ConduitSize,
	}, nil
}
