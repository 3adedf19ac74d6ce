// Copyright 2023 The Gomoor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// LineType holds the material and structural properties of a homogeneous
// stretch of mooring line
type LineType struct {

	// input
	Diameter   float64 `json:"diameter" toml:"diameter"`                                   // external hydrodynamic diameter
	MassPerLen float64 `json:"mass_per_length" toml:"mass_per_length"`                     // dry structural mass per unit arclength
	YoungsMod  float64 `json:"youngs_modulus" toml:"youngs_modulus"`                       // Young's modulus
	IntDiam    float64 `json:"internal_diameter" toml:"internal_diameter"`                 // bore diameter; 0 for solid lines
	IntDens    float64 `json:"internal_contents_density" toml:"internal_contents_density"` // density of the fluid filling the bore

	// derived
	Name    string  // key in the line-types table
	ExtArea float64 // external cross-section area
	IntArea float64 // bore cross-section area
	EA      float64 // axial stiffness
	TotMass float64 // structural plus bore-contents mass per unit length
}

// Derive computes the derived properties and checks the input values
func (o *LineType) Derive(name string) (err error) {
	o.Name = name
	o.ExtArea = math.Pi * o.Diameter * o.Diameter / 4.0
	o.IntArea = math.Pi * o.IntDiam * o.IntDiam / 4.0
	o.EA = o.YoungsMod * (o.ExtArea - o.IntArea)
	o.TotMass = o.MassPerLen + o.IntDens*o.IntArea
	if o.IntDiam < 0 || o.Diameter < o.IntDiam {
		return chk.Err("line type %q must have diameter ≥ internal_diameter ≥ 0", name)
	}
	if o.YoungsMod <= 0 {
		return chk.Err("line type %q must have positive youngs_modulus", name)
	}
	if o.MassPerLen <= 0 {
		return chk.Err("line type %q must have positive mass_per_length", name)
	}
	if o.EA <= 0 {
		return chk.Err("line type %q has non-positive axial stiffness EA=%g", name, o.EA)
	}
	return
}

// WetWeight returns the submerged weight per unit length
func (o LineType) WetWeight(gravity, waterDensity float64) float64 {
	return gravity * (o.TotMass - waterDensity*o.ExtArea)
}

// String returns a table row with the properties of this line type
func (o LineType) String() string {
	return io.Sf("%-12s D=%g m m=%g kg/m E=%g Pa EA=%g N mtot=%g kg/m", o.Name, o.Diameter, o.MassPerLen, o.YoungsMod, o.EA, o.TotMass)
}
