// Copyright 2023 The Gomoor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moor

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/mattkram/gomoor/ana"
	"github.com/mattkram/gomoor/inp"
)

// testConfig returns a derived configuration holding the given lines and a
// small catalogue of line types
func testConfig(tst *testing.T, lines map[string]*inp.Line) *inp.Config {
	cfg := &inp.Config{
		General: inp.GeneralConfig{Units: "metric", Gravity: 9.81, WaterDensity: 1025.0},
		LineTypes: map[string]*inp.LineType{
			"chain": {Diameter: 0.1, MassPerLen: 150.0, YoungsMod: 1e12},
			"wire":  {Diameter: 0.05, MassPerLen: 30.0, YoungsMod: 2.1e11},
			"rope":  {Diameter: 0.08, MassPerLen: 25.0, YoungsMod: 1e10},
		},
		Lines: lines,
	}
	cfg.Solver.SetDefault()
	err := cfg.Derive()
	if err != nil {
		tst.Fatalf("cannot derive test configuration:\n%v", err)
	}
	return cfg
}

func Test_shoot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shoot01. heavy chain catenary vs closed form")

	// anchor placed at the reach of the inextensible catenary so the landing
	// point can be checked component-wise
	var cat ana.Catenary
	err := cat.Init(120.0, 60.0, false)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	reach := cat.Reach()
	io.Pforan("analytic reach = %g\n", reach)

	cfg := testConfig(tst, map[string]*inp.Line{
		"catenary": {
			TopPos:   []float64{0, 0, 0},
			BotPos:   []float64{reach, 0, -60.0},
			Segments: []*inp.Segment{{TypeName: "chain", Length: 120.0, Nelem: 40}},
		},
	})
	sys := NewSystem(cfg)
	err = sys.SolveStatic()
	if err != nil {
		tst.Errorf("SolveStatic failed:\n%v", err)
		return
	}
	nodes := sys.Nodes["catenary"]
	lin := cfg.Lines["catenary"]

	// node vector shape
	chk.IntAssert(len(nodes), 41)
	chk.Scalar(tst, "arclength first", 1e-17, nodes[0].S, 0.0)
	chk.Scalar(tst, "arclength last", 1e-9*120.0, nodes[40].S, 120.0)
	for i := 1; i < len(nodes); i++ {
		chk.Scalar(tst, io.Sf("h @ node %d", i), 1e-12, nodes[i].S-nodes[i-1].S, 3.0)
	}

	// fairlead node: exact position and fixed tension estimate
	chk.Vector(tst, "fairlead coords", 1e-17, nodes[0].X, lin.TopPos)
	chk.Scalar(tst, "top tension estimate", 1e-17, nodes[0].T, tensionEstimate(&cfg.General, lin))

	// anchor landing
	chk.Scalar(tst, "anchor z", 1e-3*60.0, nodes[40].X[2], -60.0)
	chk.Scalar(tst, "anchor x", 5e-2, nodes[40].X[0], reach)
	chk.Scalar(tst, "anchor y", 1e-14, nodes[40].X[1], 0.0)

	// profile against the closed form
	w := cfg.LineTypes["chain"].WetWeight(cfg.General.Gravity, cfg.General.WaterDensity)
	for _, nod := range nodes {
		chk.AnaNum(tst, io.Sf("T @ %6.2f", nod.S), 1e-3*nodes[0].T, cat.Tension(w, nod.S), nod.T, false)
		chk.AnaNum(tst, io.Sf("φ @ %6.2f", nod.S), 1e-3, cat.Angle(nod.S), nod.Phi, false)
		chk.AnaNum(tst, io.Sf("x @ %6.2f", nod.S), 5e-2, cat.Offset(nod.S), -nod.Xcorr, false)
		chk.AnaNum(tst, io.Sf("z @ %6.2f", nod.S), 5e-2, cat.Drop(nod.S), -nod.Ycorr, false)
	}
}

func Test_shoot02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shoot02. anchor directly below the fairlead")

	cfg := testConfig(tst, map[string]*inp.Line{
		"plumb": {
			TopPos:   []float64{10.0, 5.0, 0.0},
			BotPos:   []float64{10.0, 5.0, -60.0},
			Segments: []*inp.Segment{{TypeName: "chain", Length: 100.0, Nelem: 25}},
		},
	})
	sys := NewSystem(cfg)
	err := sys.SolveStatic()
	if err != nil {
		tst.Errorf("SolveStatic failed:\n%v", err)
		return
	}
	nodes := sys.Nodes["plumb"]
	chk.IntAssert(len(nodes), 26)

	// the line stays in a single vertical plane through the fairlead
	var cat ana.Catenary
	cat.Init(100.0, 60.0, false)
	H := 1392.0 * cat.A // horizontal tension component is conserved
	phiPrev := math.Inf(1)
	for i, nod := range nodes {
		chk.Scalar(tst, io.Sf("y @ node %d", i), 1e-14, nod.X[1], 5.0)
		chk.Scalar(tst, io.Sf("x @ node %d", i), 1e-14, nod.X[0], 10.0+math.Abs(nod.Xcorr))
		if nod.T < 0.9*H {
			tst.Errorf("tension %g at node %d is below the horizontal component %g\n", nod.T, i, H)
			return
		}
		if nod.Phi >= phiPrev {
			tst.Errorf("declination angle must decrease monotonically along the line\n")
			return
		}
		phiPrev = nod.Phi
	}
	chk.Scalar(tst, "anchor z", 1e-3*60.0, nodes[25].X[2], -60.0)
	chk.AnaNum(tst, "top angle", 1e-3, cat.Angle(0), nodes[0].Phi, chk.Verbose)
}

func Test_shoot03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shoot03. three segments with different line types")

	cfg := testConfig(tst, map[string]*inp.Line{
		"mixed": {
			TopPos: []float64{0, 0, 0},
			BotPos: []float64{30.0, 40.0, -50.0},
			Segments: []*inp.Segment{
				{TypeName: "chain", Length: 20.0, Nelem: 10},
				{TypeName: "wire", Length: 50.0, Nelem: 20},
				{TypeName: "rope", Length: 30.0, Nelem: 10},
			},
		},
	})
	sys := NewSystem(cfg)
	err := sys.SolveStatic()
	if err != nil {
		tst.Errorf("SolveStatic failed:\n%v", err)
		return
	}
	nodes := sys.Nodes["mixed"]
	lin := cfg.Lines["mixed"]

	// arclength at the segment joins and at the anchor
	chk.IntAssert(len(nodes), 41)
	chk.Scalar(tst, "S @ node 10", 1e-13, nodes[10].S, 20.0)
	chk.Scalar(tst, "S @ node 30", 1e-13, nodes[30].S, 70.0)
	chk.Scalar(tst, "S @ node 40", 1e-13, nodes[40].S, 100.0)
	for i := 1; i < len(nodes); i++ {
		h := lin.Segments[lin.SegIdx(i-1)].ElemLen
		chk.Scalar(tst, io.Sf("h @ node %d", i), 1e-12, nodes[i].S-nodes[i-1].S, h)
	}

	// fixed tension estimate, summed in segment order
	gen := &cfg.General
	T0 := 20.0*cfg.LineTypes["chain"].WetWeight(gen.Gravity, gen.WaterDensity) +
		50.0*cfg.LineTypes["wire"].WetWeight(gen.Gravity, gen.WaterDensity) +
		30.0*cfg.LineTypes["rope"].WetWeight(gen.Gravity, gen.WaterDensity)
	chk.Scalar(tst, "top tension estimate", 1e-17, nodes[0].T, T0)

	// all nodes lie in the vertical plane containing the two anchor points
	psi := math.Atan2(40.0, 30.0)
	normal := []float64{-math.Sin(psi), math.Cos(psi), 0}
	for i, nod := range nodes {
		dev := la.VecDot([]float64{nod.X[0], nod.X[1], 0}, normal)
		chk.Scalar(tst, io.Sf("plane deviation @ node %d", i), 1e-10, dev, 0.0)
		if !(nod.T > 0) {
			tst.Errorf("tension must remain positive; got %g at node %d\n", nod.T, i)
			return
		}
	}
	chk.Scalar(tst, "anchor z", 1e-3*50.0, nodes[40].X[2], -50.0)
}
