// Copyright 2023 The Gomoor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package moor implements the static catenary solver for mooring lines
package moor

import "math"

// indices into the state vector y = {T, φ, x, z}
const (
	iT   = iota // axial tension
	iPhi        // declination angle from the local horizontal
	iX          // in-plane horizontal offset from the fairlead
	iZ          // vertical offset from the fairlead
)

// rhs computes the elastic-catenary right-hand side dy/ds with y = {T, φ, x, z}
// parametrised by the unstretched arclength s increasing from the fairlead
// toward the anchor. With w the submerged weight per unit length, EA the axial
// stiffness and ε = T/EA the axial strain:
//
//	dT/ds = -w・sin(φ)
//	dφ/ds = -w・cos(φ)/T
//	dx/ds = -(1+ε)・cos(φ)
//	dz/ds = -(1+ε)・sin(φ)
//
// The signs encode marching downward with positive step ds; the offsets are
// therefore accumulated negatively and the rotation into world coordinates
// takes the magnitude of x
func rhs(f, y []float64, w, ea float64) {
	sin, cos := math.Sincos(y[iPhi])
	eps := y[iT] / ea
	f[iT] = -w * sin
	f[iPhi] = -w * cos / y[iT]
	f[iX] = -(1.0 + eps) * cos
	f[iZ] = -(1.0 + eps) * sin
}

// rk4step advances y in place by one classical Runge-Kutta step of size h.
// k1, k2, k3, k4 and u are scratch arrays of length 4
func rk4step(y []float64, h, w, ea float64, k1, k2, k3, k4, u []float64) {
	rhs(k1, y, w, ea)
	for j := 0; j < 4; j++ {
		u[j] = y[j] + h*k1[j]/2.0
	}
	rhs(k2, u, w, ea)
	for j := 0; j < 4; j++ {
		u[j] = y[j] + h*k2[j]/2.0
	}
	rhs(k3, u, w, ea)
	for j := 0; j < 4; j++ {
		u[j] = y[j] + h*k3[j]
	}
	rhs(k4, u, w, ea)
	for j := 0; j < 4; j++ {
		y[j] += h * (k1[j] + 2.0*k2[j] + 2.0*k3[j] + k4[j]) / 6.0
	}
}
