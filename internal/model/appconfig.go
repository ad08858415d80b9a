package model

// AppConfig holds application-wide preferences and default design inputs.
type AppConfig struct {
	// Defaults applied to new designs
	DefaultResolution       float64 `json:"default_resolution"`
	DefaultPhotoperiodHours float64 `json:"default_photoperiod_hours"`
	DefaultMountingHeight   float64 `json:"default_mounting_height"`
	DefaultTariffPerKWh     float64 `json:"default_tariff_per_kwh"`
	DefaultCircuitVoltage   float64 `json:"default_circuit_voltage"`

	// Application preferences
	RecentDesigns []string `json:"recent_designs"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching DefaultElectricalConfig().
func DefaultAppConfig() AppConfig {
	electrical := DefaultElectricalConfig()
	return AppConfig{
		DefaultResolution:       1.0,
		DefaultPhotoperiodHours: 12,
		DefaultMountingHeight:   8,
		DefaultTariffPerKWh:     0.12,
		DefaultCircuitVoltage:   electrical.CircuitVoltage,
		RecentDesigns:           []string{},
	}
}

// ApplyToSpec copies the default values from AppConfig into a FacilitySpec.
// This is used when creating a new design so it inherits the user's saved
// defaults. Fixture data is left untouched.
func (c AppConfig) ApplyToSpec(s *FacilitySpec) {
	s.Resolution = c.DefaultResolution
	s.PhotoperiodHours = c.DefaultPhotoperiodHours
	s.Electrical.CircuitVoltage = c.DefaultCircuitVoltage
}
