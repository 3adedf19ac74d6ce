// Copyright 2023 The Gomoor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana provides analytical solutions for verifying the mooring solver
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"
)

// Catenary computes the shape of an inextensible line of unstretched length L
// hanging in a vertical plane, with the fairlead a vertical distance D above
// the anchor and the top tension equal to the total submerged weight w・L.
// With σ the arclength coordinate measured from the virtual vertex (where the
// line is horizontal) and a = H/w the catenary parameter:
//
//	H    = w・a                    horizontal tension component (constant)
//	T(σ) = w・√(a² + σ²)
//	z(σ) = √(a² + σ²) - a          elevation above the vertex
//	x(σ) = a・asinh(σ/a)
//	tanφ = σ/a
//
// The end conditions T(σt) = w・L and z(σt) - z(σb) = D, with σt - σb = L,
// give
//
//	σb = -(L-D)²/(2L),   σt = σb + L,   a² = (L-D)² - σb²
//
// The solution exists for L > D and is independent of w
type Catenary struct {

	// input
	L float64 // total unstretched length
	D float64 // vertical distance from fairlead down to anchor

	// derived
	A   float64 // catenary parameter H/w
	Sb  float64 // vertex coordinate of the anchor end
	St  float64 // vertex coordinate of the fairlead end
	sol ode.ODE // ODE solver for the numerical cross-check
}

// Init initialises this structure
func (o *Catenary) Init(L, D float64, withNum bool) (err error) {

	// input data
	if L <= D {
		return chk.Err("catenary needs L > D; L=%g D=%g is invalid", L, D)
	}
	o.L = L
	o.D = D

	// derived
	o.Sb = -(L - D) * (L - D) / (2.0 * L)
	o.A = math.Sqrt((L-D)*(L-D) - o.Sb*o.Sb)
	o.St = o.Sb + L

	// numerical solver with ξ := {T, φ, x, z} and s from the fairlead
	if withNum {
		silent := true
		o.sol.Init("Radau5", 4, func(f []float64, ds, s float64, ξ []float64, args ...interface{}) error {
			w := args[0].(float64)
			sin, cos := math.Sincos(ξ[1])
			f[0] = -w * sin        // dT/ds
			f[1] = -w * cos / ξ[0] // dφ/ds
			f[2] = -cos            // dx/ds
			f[3] = -sin            // dz/ds
			return nil
		}, nil, nil, nil, silent)
		o.sol.Distr = false // must be sure to disable this; otherwise it causes problems in parallel runs
	}
	return
}

// Tension returns the tension at unstretched arclength s from the fairlead,
// for a submerged weight w per unit length
func (o Catenary) Tension(w, s float64) float64 {
	σ := o.St - s
	return w * math.Sqrt(o.A*o.A+σ*σ)
}

// Angle returns the declination angle below the horizontal at arclength s
// from the fairlead. Negative values mean the line has passed the vertex and
// is rising toward the anchor
func (o Catenary) Angle(s float64) float64 {
	return math.Atan2(o.St-s, o.A)
}

// Drop returns the vertical distance below the fairlead at arclength s
func (o Catenary) Drop(s float64) float64 {
	σ := o.St - s
	return math.Sqrt(o.A*o.A+o.St*o.St) - math.Sqrt(o.A*o.A+σ*σ)
}

// Offset returns the horizontal distance from the fairlead at arclength s
func (o Catenary) Offset(s float64) float64 {
	return o.A * (math.Asinh(o.St/o.A) - math.Asinh((o.St-s)/o.A))
}

// Reach returns the horizontal distance between fairlead and anchor
func (o Catenary) Reach() float64 {
	return o.Offset(o.L)
}

// CalcNum integrates the catenary ODE numerically from the fairlead and
// returns the state {T, φ, x, z} at arclength s. Note that x and z follow the
// solver sign convention: both accumulate negatively going down the line
func (o Catenary) CalcNum(w, s float64) []float64 {
	ξ := []float64{o.Tension(w, 0), o.Angle(0), 0, 0}
	err := o.sol.Solve(ξ, 0, s, s, false, w)
	if err != nil {
		chk.Panic("Catenary failed when integrating with ODE solver: %v", err)
	}
	return ξ
}

// HangingLine gives the tension distribution along a straight vertical line
// of length L clamped at the top, with submerged weight w per unit length:
// T(s) = w・(L - s)
type HangingLine struct {
	L float64 // total length
	W float64 // submerged weight per unit length
}

// Tension returns the tension at arclength s below the clamp
func (o HangingLine) Tension(s float64) float64 {
	return o.W * (o.L - s)
}
