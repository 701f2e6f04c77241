// Package config loads and persists generator settings. Parameter files
// use the same flat key schema as the legacy calculation entry points
// (gears.ParamsFromMap) serialized as plain JSON; the geometry engine
// itself never touches the filesystem.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/soypat/gears"
)

// ParamsFilename is the parameter file written next to generated results.
const ParamsFilename = "Inputs.dat"

// DefaultParams returns the generator's historical default parameter set:
// a module 1, 20 degree pressure angle 18/36 pair.
func DefaultParams() gears.PairParameters {
	return gears.PairParameters{
		Module:          1.0,
		PressureAngle:   20.0,
		Backlash:        0.05,
		Addendum:        1.0,
		Dedendum:        1.25,
		HobEdgeRadius:   0.2,
		ToothEdgeRadius: 0.1,
		Driver:          gears.GearSpec{Teeth: 18, ProfileShift: 0.2},
		Driven:          gears.GearSpec{Teeth: 36, ProfileShift: 0.0},
		Seg: gears.Segmentation{
			Involute:  15,
			Edge:      15,
			RootRound: 15,
			Outer:     5,
			Root:      5,
		},
	}
}

// App is the application configuration. Defaults overlays the flat
// parameter schema on top of DefaultParams.
type App struct {
	Defaults         map[string]float64 `json:"defaults"`
	WorkingDirectory string             `json:"working_directory"`
}

// LoadApp reads the application configuration from path. A missing file is
// not an error: the zero App is returned so fallback defaults apply.
func LoadApp(path string) (App, error) {
	var app App
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return app, nil
	}
	if err != nil {
		return app, err
	}
	if err := json.Unmarshal(b, &app); err != nil {
		return App{}, err
	}
	return app, nil
}

// Params merges the configured defaults over the fallback parameter set.
func (a App) Params() (gears.PairParameters, error) {
	m := DefaultParams().ToMap()
	for k, v := range a.Defaults {
		m[k] = v
	}
	return gears.ParamsFromMap(m)
}

// WorkingDir returns the configured working directory, or fallback if none
// is set.
func (a App) WorkingDir(fallback string) string {
	if a.WorkingDirectory == "" {
		return fallback
	}
	return a.WorkingDirectory
}

// SaveParams persists the flat parameter map to ParamsFilename inside dir,
// creating the directory if needed.
func SaveParams(dir string, params map[string]float64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(params, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ParamsFilename), b, 0o644)
}

// LoadParams reads the flat parameter map from ParamsFilename inside dir.
func LoadParams(dir string) (map[string]float64, error) {
	b, err := os.ReadFile(filepath.Join(dir, ParamsFilename))
	if err != nil {
		return nil, err
	}
	var params map[string]float64
	if err := json.Unmarshal(b, &params); err != nil {
		return nil, err
	}
	return params, nil
}
