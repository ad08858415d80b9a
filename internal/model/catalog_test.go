package model

import "testing"

func TestDefaultElectricalConfigIsValid(t *testing.T) {
	cfg := DefaultElectricalConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.CircuitVoltage != 277 {
		t.Errorf("expected 277 V default, got %f", cfg.CircuitVoltage)
	}
	if cfg.MaxFixturesPerCircuit != 20 {
		t.Errorf("expected 20 fixtures per circuit, got %d", cfg.MaxFixturesPerCircuit)
	}
}

func TestElectricalConfigValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ElectricalConfig)
	}{
		{"zero voltage", func(c *ElectricalConfig) { c.CircuitVoltage = 0 }},
		{"zero max fixtures", func(c *ElectricalConfig) { c.MaxFixturesPerCircuit = 0 }},
		{"empty breakers", func(c *ElectricalConfig) { c.BreakerSizes = nil }},
		{"unsorted breakers", func(c *ElectricalConfig) { c.BreakerSizes = []int{20, 15} }},
		{"empty wire table", func(c *ElectricalConfig) { c.WireTable = nil }},
		{"bad ampacity", func(c *ElectricalConfig) { c.WireTable[0].Ampacity = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultElectricalConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestWireTableCoversBreakerLadder(t *testing.T) {
	// Every breaker in the default ladder must have a conductor whose
	// ampacity covers it, or default sizing could never succeed.
	cfg := DefaultElectricalConfig()
	maxAmpacity := cfg.WireTable[len(cfg.WireTable)-1].Ampacity
	for _, b := range cfg.BreakerSizes {
		if float64(b) > maxAmpacity {
			t.Errorf("breaker %d A has no conductor in the default table", b)
		}
	}
}
