package model

import "github.com/google/uuid"

// FixtureModel represents a reusable luminaire definition that can be
// stamped into a layout at any position.
type FixtureModel struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	PPF      float64 `json:"ppf"`      // umol/s
	Wattage  float64 `json:"wattage"`  // W
	UnitCost float64 `json:"unit_cost"`
}

// NewFixtureModel creates a FixtureModel with a generated ID.
func NewFixtureModel(name string, ppf, wattage, unitCost float64) FixtureModel {
	return FixtureModel{
		ID:       uuid.New().String()[:8],
		Name:     name,
		PPF:      ppf,
		Wattage:  wattage,
		UnitCost: unitCost,
	}
}

// Efficacy returns the model's photon efficacy in umol/J.
func (m FixtureModel) Efficacy() float64 {
	if m.Wattage <= 0 {
		return 0
	}
	return m.PPF / m.Wattage
}

// ToFixture places an instance of this model at the given position.
func (m FixtureModel) ToFixture(x, y, mountingHeight float64) Fixture {
	return NewFixture(m.Name, x, y, mountingHeight, m.PPF, m.Wattage)
}

// FixtureLibrary holds the user's saved luminaire models.
type FixtureLibrary struct {
	Models []FixtureModel `json:"models"`
}

// DefaultLibrary returns a library populated with common horticulture
// fixtures: current top-bar LEDs plus the legacy HPS/CMH lamps they
// typically replace.
func DefaultLibrary() FixtureLibrary {
	return FixtureLibrary{
		Models: []FixtureModel{
			NewFixtureModel("LED Bar 645W", 1700, 645, 800),
			NewFixtureModel("LED Bar 630W", 1650, 630, 750),
			NewFixtureModel("LED Compact 330W", 850, 330, 420),
			NewFixtureModel("HPS DE 1000W", 2100, 1060, 350),
			NewFixtureModel("CMH 315W", 550, 335, 280),
		},
	}
}

// FindByID returns a pointer to the model with the given ID, or nil.
func (lib *FixtureLibrary) FindByID(id string) *FixtureModel {
	for i := range lib.Models {
		if lib.Models[i].ID == id {
			return &lib.Models[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first model with the given name, or nil.
func (lib *FixtureLibrary) FindByName(name string) *FixtureModel {
	for i := range lib.Models {
		if lib.Models[i].Name == name {
			return &lib.Models[i]
		}
	}
	return nil
}

// ModelNames returns the model names in library order.
func (lib *FixtureLibrary) ModelNames() []string {
	names := make([]string, len(lib.Models))
	for i, m := range lib.Models {
		names[i] = m.Name
	}
	return names
}
