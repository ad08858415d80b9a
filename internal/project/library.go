package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/LumenGrid/internal/model"
)

// DefaultLibraryPath returns the default path for the fixture library file.
func DefaultLibraryPath() string {
	return filepath.Join(DefaultConfigDir(), "library.json")
}

// SaveLibrary persists the fixture library to the given path as JSON.
func SaveLibrary(path string, lib model.FixtureLibrary) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadLibrary reads the fixture library from the given path.
// If the file does not exist, it returns DefaultLibrary with no error.
func LoadLibrary(path string) (model.FixtureLibrary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultLibrary(), nil
		}
		return model.FixtureLibrary{}, err
	}
	var lib model.FixtureLibrary
	if err := json.Unmarshal(data, &lib); err != nil {
		return model.FixtureLibrary{}, err
	}
	if lib.Models == nil {
		lib.Models = []model.FixtureModel{}
	}
	return lib, nil
}
