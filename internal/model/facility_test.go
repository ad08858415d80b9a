package model

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func validSpec() FacilitySpec {
	return FacilitySpec{
		Room:             Room{Length: 20, Width: 10, Height: 12},
		Fixtures:         []Fixture{NewFixture("LED", 5, 5, 8, 1700, 645)},
		Resolution:       1.0,
		PhotoperiodHours: 12,
		Electrical:       DefaultElectricalConfig(),
	}
}

func TestRoomArea(t *testing.T) {
	r := Room{Length: 66, Width: 22}
	if r.Area() != 1452 {
		t.Errorf("expected area 1452, got %f", r.Area())
	}
}

func TestFixtureCurrentAt(t *testing.T) {
	f := Fixture{Wattage: 645}
	got := f.CurrentAt(277)
	if math.Abs(got-2.3285) > 0.001 {
		t.Errorf("expected ~2.3285 A, got %f", got)
	}
	if f.CurrentAt(0) != 0 {
		t.Error("expected 0 A at zero voltage")
	}
}

func TestSpecKDefaults(t *testing.T) {
	s := FacilitySpec{}
	if s.K() != DefaultConversionFactor {
		t.Errorf("expected default K %.3f, got %f", DefaultConversionFactor, s.K())
	}
	s.ConversionFactor = 1.0
	if s.K() != 1.0 {
		t.Errorf("expected metric K 1.0, got %f", s.K())
	}
}

func TestValidateAcceptsGoodSpec(t *testing.T) {
	warnings, err := validSpec().Validate()
	if err != nil {
		t.Fatalf("expected valid spec, got %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestValidateRejectsBadGeometry(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*FacilitySpec)
	}{
		{"zero length", func(s *FacilitySpec) { s.Room.Length = 0 }},
		{"negative width", func(s *FacilitySpec) { s.Room.Width = -5 }},
		{"zero resolution", func(s *FacilitySpec) { s.Resolution = 0 }},
		{"zero photoperiod", func(s *FacilitySpec) { s.PhotoperiodHours = 0 }},
		{"photoperiod over 24h", func(s *FacilitySpec) { s.PhotoperiodHours = 25 }},
		{"no fixtures", func(s *FacilitySpec) { s.Fixtures = nil }},
		{"zero mounting height", func(s *FacilitySpec) { s.Fixtures[0].MountingHeight = 0 }},
		{"zero ppf", func(s *FacilitySpec) { s.Fixtures[0].PPF = 0 }},
		{"negative wattage", func(s *FacilitySpec) { s.Fixtures[0].Wattage = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := validSpec()
			tc.mutate(&spec)
			_, err := spec.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	spec := validSpec()
	dup := spec.Fixtures[0]
	spec.Fixtures = append(spec.Fixtures, dup)
	if _, err := spec.Validate(); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestValidateOutOfBoundsFixtureIsWarningOnly(t *testing.T) {
	// Fixtures legitimately overhang room edges; placement outside the
	// footprint must not fail the run.
	spec := validSpec()
	spec.Fixtures = append(spec.Fixtures, NewFixture("Overhang", -2, 5, 8, 1700, 645))

	warnings, err := spec.Validate()
	if err != nil {
		t.Fatalf("expected warning, not error, got %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if !strings.Contains(warnings[0], "outside") {
		t.Errorf("warning should mention out-of-bounds placement: %s", warnings[0])
	}
}

func TestTotals(t *testing.T) {
	spec := validSpec()
	spec.Fixtures = append(spec.Fixtures, NewFixture("LED", 6, 5, 8, 1700, 645))
	if spec.TotalPPF() != 3400 {
		t.Errorf("expected total PPF 3400, got %f", spec.TotalPPF())
	}
	if spec.TotalWattage() != 1290 {
		t.Errorf("expected total wattage 1290, got %f", spec.TotalWattage())
	}
}
