// Copyright 2023 The Gomoor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moor

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/mattkram/gomoor/inp"
)

// lineSolver solves the static equilibrium of one line by shooting the
// catenary ODE from the fairlead and iterating on the top declination angle
// until the integrated line terminates at the anchor depth
type lineSolver struct {

	// input
	gen  *inp.GeneralConfig
	dat  *inp.SolverData
	line *inp.Line

	// results
	nodes []Node // one entry per discretisation point, fairlead first

	// per-segment constants
	wseg  []float64 // submerged weight per unit length
	easeg []float64 // axial stiffness

	// derived
	t0 float64 // top tension estimate; fixed across outer iterations

	// scratchpad for the RK4 sweep
	y, k1, k2, k3, k4, u []float64
}

// newLineSolver allocates the node vector and all scratch space for one line.
// No allocation happens during the solve
func newLineSolver(gen *inp.GeneralConfig, dat *inp.SolverData, line *inp.Line) (o *lineSolver) {
	o = new(lineSolver)
	o.gen = gen
	o.dat = dat
	o.line = line
	o.nodes = make([]Node, line.Nnodes)
	for i := range o.nodes {
		o.nodes[i].X = make([]float64, 3)
	}
	o.wseg = make([]float64, len(line.Segments))
	o.easeg = make([]float64, len(line.Segments))
	for k, seg := range line.Segments {
		o.wseg[k] = seg.Typ.WetWeight(gen.Gravity, gen.WaterDensity)
		o.easeg[k] = seg.Typ.EA
	}
	o.t0 = tensionEstimate(gen, line)
	o.y = make([]float64, 4)
	o.k1 = make([]float64, 4)
	o.k2 = make([]float64, 4)
	o.k3 = make([]float64, 4)
	o.k4 = make([]float64, 4)
	o.u = make([]float64, 4)
	return
}

// tensionEstimate returns the top tension: the total submerged weight of all
// segments. No pre-tension is assumed and the estimate is held fixed while
// the outer loop iterates on the top angle only
func tensionEstimate(gen *inp.GeneralConfig, line *inp.Line) (T0 float64) {
	for _, seg := range line.Segments {
		T0 += seg.Length * seg.Typ.WetWeight(gen.Gravity, gen.WaterDensity)
	}
	return
}

// shoot integrates the line from the fairlead with top angle phi0 and returns
// the depth residual r = -(z + depth) at the last node. Equilibrium requires
// r = 0. The node vector is overwritten on every call
func (o *lineSolver) shoot(phi0 float64) (r float64, err error) {

	// fairlead node
	o.nodes[0].S = 0
	o.nodes[0].T = o.t0
	o.nodes[0].Phi = phi0
	o.nodes[0].Xcorr = 0
	o.nodes[0].Ycorr = 0
	o.y[iT], o.y[iPhi], o.y[iX], o.y[iZ] = o.t0, phi0, 0, 0

	// march toward the anchor; the properties and step size of each element
	// come from its destination segment
	for i := 0; i < o.line.Nnodes-1; i++ {
		k := o.line.SegIdx(i)
		h := o.line.Segments[k].ElemLen
		rk4step(o.y, h, o.wseg[k], o.easeg[k], o.k1, o.k2, o.k3, o.k4, o.u)
		if !(o.y[iT] > 0) {
			return 0, chk.Err("tension %g is non-positive at node %d", o.y[iT], i+1)
		}
		for j := 0; j < 4; j++ {
			if math.IsNaN(o.y[j]) || math.IsInf(o.y[j], 0) {
				return 0, chk.Err("state component %d is not finite at node %d", j, i+1)
			}
		}
		o.nodes[i+1].S = o.nodes[i].S + h
		o.nodes[i+1].T = o.y[iT]
		o.nodes[i+1].Phi = o.y[iPhi]
		o.nodes[i+1].Xcorr = o.y[iX]
		o.nodes[i+1].Ycorr = o.y[iZ]
	}
	r = -(o.y[iZ] + o.line.Depth)
	return
}

// solve runs the modified regula-falsi iteration on the top angle and, at
// convergence, rotates the in-plane shape into world coordinates.
// Convergence is |r| ≤ Rtol・depth (default Rtol = 1e-6)
func (o *lineSolver) solve() (nodes []Node, err error) {

	// initial bracket
	phiLow, phiUp := 0.0, 89.0*math.Pi/180.0

	var rLow, rUp, phi, r float64
	tol := o.dat.Rtol * o.line.Depth
	for it := 0; it < o.dat.NmaxIt; it++ {

		// next angle: bracket endpoints first, then linear interpolation
		switch it {
		case 0:
			phi = phiLow
		case 1:
			phi = phiUp
		default:
			if rUp == rLow {
				return nil, chk.Err("root finder stalled with equal residuals %g in bracket [%g, %g]", rLow, phiLow, phiUp)
			}
			phi = phiLow - rLow*(phiUp-phiLow)/(rUp-rLow)
		}

		r, err = o.shoot(phi)
		if err != nil {
			return
		}
		if math.Abs(r) <= tol {
			rotate(o.nodes, o.line.TopPos, o.line.BotPos)
			return o.nodes, nil
		}

		// maintain the bracket
		switch it {
		case 0:
			rLow = r
		case 1:
			rUp = r
		default:
			if rLow*r > 0 {
				phiLow, rLow = phi, r
			} else if rUp*r > 0 {
				phiUp, rUp = phi, r
			}
		}
	}
	return nil, chk.Err("no convergence after %d iterations: residual=%g angle=%g bracket=[%g, %g]", o.dat.NmaxIt, r, phi, phiLow, phiUp)
}
