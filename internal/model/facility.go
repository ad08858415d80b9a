package model

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultConversionFactor converts an inverse-square flux density computed
// in ft^-2 to umol/m2/s (1 m2 = 10.764 ft2). Use 1.0 for metric inputs.
const DefaultConversionFactor = 10.764

// Room represents the grow room footprint and ceiling height.
// All dimensions share one unit system (feet by default).
type Room struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns the floor area of the room.
func (r Room) Area() float64 {
	return r.Length * r.Width
}

// Contains reports whether the point (x, y) lies within the room footprint.
func (r Room) Contains(x, y float64) bool {
	return x >= 0 && x <= r.Length && y >= 0 && y <= r.Width
}

// Fixture represents a single luminaire placed over the canopy.
// The fixture is modeled as an isotropic point source: PPF radiates
// uniformly over the full sphere, with no beam pattern.
type Fixture struct {
	ID             string  `json:"id"`
	Label          string  `json:"label,omitempty"` // Optional model/schedule label
	X              float64 `json:"x"`               // Position from room origin
	Y              float64 `json:"y"`
	MountingHeight float64 `json:"mounting_height"` // Height above the canopy plane, > 0
	PPF            float64 `json:"ppf"`             // Photon flux, umol/s
	Wattage        float64 `json:"wattage"`         // Rated electrical draw, W
}

// NewFixture creates a Fixture with a generated ID.
func NewFixture(label string, x, y, mountingHeight, ppf, wattage float64) Fixture {
	return Fixture{
		ID:             uuid.New().String()[:8],
		Label:          label,
		X:              x,
		Y:              y,
		MountingHeight: mountingHeight,
		PPF:            ppf,
		Wattage:        wattage,
	}
}

// CurrentAt returns the continuous current draw of the fixture in amps
// at the given circuit voltage.
func (f Fixture) CurrentAt(voltage float64) float64 {
	if voltage <= 0 {
		return 0
	}
	return f.Wattage / voltage
}

// FacilitySpec is the complete input to a design run. It is treated as an
// immutable snapshot: the engine reads it and never mutates it.
type FacilitySpec struct {
	Name             string           `json:"name,omitempty"`
	Room             Room             `json:"room"`
	Fixtures         []Fixture        `json:"fixtures"`
	Resolution       float64          `json:"resolution"`        // Grid sampling step, same unit as Room
	PhotoperiodHours float64          `json:"photoperiod_hours"` // Lit hours per day, (0, 24]
	ConversionFactor float64          `json:"conversion_factor"` // K in the PPFD formula; 0 = DefaultConversionFactor
	Electrical       ElectricalConfig `json:"electrical"`
	Financial        *FinancialInputs `json:"financial,omitempty"` // Optional comparison scenario
}

// K returns the effective unit-conversion factor for the PPFD formula.
func (s FacilitySpec) K() float64 {
	if s.ConversionFactor > 0 {
		return s.ConversionFactor
	}
	return DefaultConversionFactor
}

// TotalPPF returns the summed photon flux of all fixtures in umol/s.
func (s FacilitySpec) TotalPPF() float64 {
	var total float64
	for _, f := range s.Fixtures {
		total += f.PPF
	}
	return total
}

// TotalWattage returns the summed electrical draw of all fixtures in watts.
func (s FacilitySpec) TotalWattage() float64 {
	var total float64
	for _, f := range s.Fixtures {
		total += f.Wattage
	}
	return total
}

// Validate checks the spec for fatal input errors and collects non-fatal
// placement warnings. A fixture positioned outside the room footprint is a
// warning only: real installations legitimately overhang racks and walls.
// Everything else in the fatal list would poison the downstream math.
func (s FacilitySpec) Validate() ([]string, error) {
	if s.Room.Length <= 0 || s.Room.Width <= 0 {
		return nil, &ValidationError{
			Entity: "room",
			Field:  "dimensions",
			Reason: fmt.Sprintf("room dimensions must be positive, got %.2f x %.2f", s.Room.Length, s.Room.Width),
		}
	}
	if s.Room.Height < 0 {
		return nil, &ValidationError{
			Entity: "room",
			Field:  "height",
			Reason: fmt.Sprintf("room height must not be negative, got %.2f", s.Room.Height),
		}
	}
	if s.Resolution <= 0 {
		return nil, &ValidationError{
			Entity: "grid",
			Field:  "resolution",
			Reason: fmt.Sprintf("sampling resolution must be positive, got %.3f", s.Resolution),
		}
	}
	if s.PhotoperiodHours <= 0 || s.PhotoperiodHours > 24 {
		return nil, &ValidationError{
			Entity: "facility",
			Field:  "photoperiod_hours",
			Reason: fmt.Sprintf("photoperiod must be in (0, 24] hours, got %.2f", s.PhotoperiodHours),
		}
	}
	if len(s.Fixtures) == 0 {
		return nil, &ValidationError{
			Entity: "facility",
			Field:  "fixtures",
			Reason: "at least one fixture is required",
		}
	}

	var warnings []string
	seen := make(map[string]bool, len(s.Fixtures))
	for i, f := range s.Fixtures {
		name := f.ID
		if name == "" {
			name = fmt.Sprintf("fixture %d", i+1)
		}
		if f.ID != "" && seen[f.ID] {
			return nil, &ValidationError{
				Entity: name,
				Field:  "id",
				Reason: "duplicate fixture id",
			}
		}
		seen[f.ID] = true

		if f.MountingHeight <= 0 {
			return nil, &ValidationError{
				Entity: name,
				Field:  "mounting_height",
				Reason: fmt.Sprintf("mounting height must be positive, got %.2f", f.MountingHeight),
			}
		}
		if f.PPF <= 0 {
			return nil, &ValidationError{
				Entity: name,
				Field:  "ppf",
				Reason: fmt.Sprintf("rated PPF must be positive, got %.1f", f.PPF),
			}
		}
		if f.Wattage <= 0 {
			return nil, &ValidationError{
				Entity: name,
				Field:  "wattage",
				Reason: fmt.Sprintf("rated wattage must be positive, got %.1f", f.Wattage),
			}
		}
		if !s.Room.Contains(f.X, f.Y) {
			warnings = append(warnings, fmt.Sprintf(
				"%s at (%.2f, %.2f) lies outside the %.0f x %.0f room footprint",
				name, f.X, f.Y, s.Room.Length, s.Room.Width))
		}
	}

	return warnings, nil
}
