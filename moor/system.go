// Copyright 2023 The Gomoor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moor

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mattkram/gomoor/inp"
)

// System holds a mooring system: the configuration and, after SolveStatic,
// the solved node vectors
type System struct {
	Cfg   *inp.Config       // configuration; read-only once derived
	Nodes map[string][]Node // node vectors of solved lines
	Errs  map[string]error  // failures of the remaining lines
}

// NewSystem returns a new system holding the given configuration
func NewSystem(cfg *inp.Config) *System {
	return &System{
		Cfg:   cfg,
		Nodes: make(map[string][]Node),
		Errs:  make(map[string]error),
	}
}

// SystemFromFile reads the configuration file and returns a new system
func SystemFromFile(path string) (*System, error) {
	cfg, err := inp.ReadConfig(path)
	if err != nil {
		return nil, err
	}
	return NewSystem(cfg), nil
}

// SolveStatic solves the static equilibrium of every line, independently of
// the others. Lines that fail keep their error in Errs and do not disturb the
// results of the remaining lines. The returned error summarises the failures,
// if any
func (o *System) SolveStatic() (err error) {
	for name, line := range o.Cfg.Lines {
		ls := newLineSolver(&o.Cfg.General, &o.Cfg.Solver, line)
		nodes, e := ls.solve()
		if e != nil {
			o.Errs[name] = chk.Err("line %q: %v", name, e)
			continue
		}
		o.Nodes[name] = nodes
	}
	if len(o.Errs) > 0 {
		failed := make([]string, 0, len(o.Errs))
		for name := range o.Errs {
			failed = append(failed, name)
		}
		sort.Strings(failed)
		return chk.Err("%d of %d lines failed to solve: %v", len(o.Errs), len(o.Cfg.Lines), failed)
	}
	return
}

// GetLineCoordinates returns, for each solved line, the world coordinates of
// every node in fairlead-to-anchor order
func (o *System) GetLineCoordinates() map[string][][]float64 {
	res := make(map[string][][]float64)
	for name, nodes := range o.Nodes {
		coords := make([][]float64, len(nodes))
		for i, nod := range nodes {
			coords[i] = nod.X
		}
		res[name] = coords
	}
	return res
}

// String returns a short summary of the solved system
func (o *System) String() string {
	l := io.Sf("mooring system with %d line(s)\n", len(o.Cfg.Lines))
	names := make([]string, 0, len(o.Cfg.Lines))
	for name := range o.Cfg.Lines {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if nodes, ok := o.Nodes[name]; ok {
			last := nodes[len(nodes)-1]
			l += io.Sf("  %-12s solved: %d nodes, top tension %g, anchor at (%g, %g, %g)\n", name, len(nodes), nodes[0].T, last.X[0], last.X[1], last.X[2])
			continue
		}
		if e, ok := o.Errs[name]; ok {
			l += io.Sf("  %-12s FAILED: %v\n", name, e)
			continue
		}
		l += io.Sf("  %-12s not solved yet\n", name)
	}
	return l
}
