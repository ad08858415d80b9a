// Package project provides JSON persistence for designs, application
// configuration, the fixture library, and full-data backups. The engine
// itself never touches the filesystem; everything file-shaped lives here.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/LumenGrid/internal/model"
)

// Design ties a facility spec and its optional computed result together
// for save/load.
type Design struct {
	Name   string              `json:"name"`
	Spec   model.FacilitySpec  `json:"spec"`
	Result *model.DesignResult `json:"result,omitempty"`
}

// NewDesign creates an empty design with defaults applied from the config.
func NewDesign(name string, config model.AppConfig) Design {
	spec := model.FacilitySpec{
		Name:       name,
		Electrical: model.DefaultElectricalConfig(),
	}
	config.ApplyToSpec(&spec)
	return Design{Name: name, Spec: spec}
}

// SaveDesign writes a design to the given path as indented JSON,
// creating parent directories as needed.
func SaveDesign(path string, d Design) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create design directory: %w", err)
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal design: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write design file: %w", err)
	}
	return nil
}

// LoadDesign reads a design from the given path.
func LoadDesign(path string) (Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Design{}, fmt.Errorf("failed to read design file: %w", err)
	}
	var d Design
	if err := json.Unmarshal(data, &d); err != nil {
		return Design{}, fmt.Errorf("failed to parse design file: %w", err)
	}
	return d, nil
}

// AddRecentDesign prepends a path to the recent-designs list, de-duplicating
// and capping the list at max entries.
func AddRecentDesign(config *model.AppConfig, path string, max int) {
	recent := []string{path}
	for _, p := range config.RecentDesigns {
		if p != path {
			recent = append(recent, p)
		}
	}
	if max > 0 && len(recent) > max {
		recent = recent[:max]
	}
	config.RecentDesigns = recent
}
