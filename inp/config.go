// Copyright 2023 The Gomoor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.json or .toml)
// configuration file
package inp

import (
	"encoding/json"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// GeneralConfig holds the environmental constants shared by all lines
type GeneralConfig struct {
	Units        string  `json:"units" toml:"units"`                 // "metric" or "english"; values are assumed consistent
	Gravity      float64 `json:"gravity" toml:"gravity"`             // gravity acceleration
	WaterDensity float64 `json:"water_density" toml:"water_density"` // density of sea water
	WaterDepth   float64 `json:"water_depth" toml:"water_depth"`     // optional; used for diagnostics only
}

// SolverData holds data controlling the outer shooting loop
type SolverData struct {
	Rtol   float64 `json:"rtol" toml:"rtol"`     // convergence on |residual| ≤ Rtol・depth
	NmaxIt int     `json:"nmaxit" toml:"nmaxit"` // maximum number of outer iterations
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Rtol = 1e-6
	o.NmaxIt = 100
}

// Config holds all configuration data for a mooring system
type Config struct {
	General   GeneralConfig        `json:"general" toml:"general"`
	Solver    SolverData           `json:"solver" toml:"solver"`
	LineTypes map[string]*LineType `json:"line_types" toml:"line_types"`
	Lines     map[string]*Line     `json:"lines" toml:"lines"`
}

// ReadConfig reads a configuration file. The format is selected by the file
// extension: ".toml" is decoded as TOML, anything else as JSON
func ReadConfig(path string) (o *Config, err error) {

	// read file
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read configuration file %q:\n%v", path, err)
	}

	// set default values
	o = new(Config)
	o.Solver.SetDefault()

	// decode
	switch io.FnExt(path) {
	case ".toml":
		err = toml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("cannot parse configuration file %q:\n%v", path, err)
	}

	// derived quantities
	err = o.Derive()
	if err != nil {
		return nil, err
	}
	return
}

// Derive computes all derived quantities and validates the configuration.
// Must be called whenever a Config is built directly instead of read from a
// file
func (o *Config) Derive() (err error) {
	if o.General.Units != "metric" && o.General.Units != "english" {
		return chk.Err("units must be \"metric\" or \"english\". %q is invalid", o.General.Units)
	}
	if o.General.Gravity <= 0 {
		return chk.Err("gravity must be positive. %g is invalid", o.General.Gravity)
	}
	if o.General.WaterDensity <= 0 {
		return chk.Err("water_density must be positive. %g is invalid", o.General.WaterDensity)
	}
	if o.Solver.Rtol <= 0 || o.Solver.NmaxIt < 1 {
		return chk.Err("solver data is invalid: rtol=%g nmaxit=%d", o.Solver.Rtol, o.Solver.NmaxIt)
	}
	if len(o.Lines) < 1 {
		return chk.Err("configuration must define at least one line")
	}
	for name, typ := range o.LineTypes {
		err = typ.Derive(name)
		if err != nil {
			return
		}
	}
	for name, line := range o.Lines {
		err = line.Derive(name, o.LineTypes)
		if err != nil {
			return
		}
	}
	return
}
