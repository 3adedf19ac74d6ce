// Copyright 2023 The Gomoor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out collects functions to post-process and present solver results
package out

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/mattkram/gomoor/moor"
)

// Report returns a table with the solved nodes of every line, in fairlead to
// anchor order. Line names are sorted for stable output
func Report(sys *moor.System) string {
	names := make([]string, 0, len(sys.Nodes))
	for name := range sys.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	l := ""
	for _, name := range names {
		lin := sys.Cfg.Lines[name]
		l += io.Sf("\nline %q: %d nodes, length=%g, depth=%g, submerged length=%g\n", name, lin.Nnodes, lin.TotLen, lin.Depth, lin.SubmergedLength(sys.Cfg.General.WaterDepth))
		l += io.Sf("%6s%14s%14s%12s%14s%14s%14s\n", "node", "s", "tension", "angle", "x", "y", "z")
		for i, nod := range sys.Nodes[name] {
			l += io.Sf("%6d%14.4f%14.2f%12.6f%14.6f%14.6f%14.6f\n", i, nod.S, nod.T, nod.Phi, nod.X[0], nod.X[1], nod.X[2])
		}
	}
	for name, err := range sys.Errs {
		l += io.Sf("\nline %q: FAILED: %v\n", name, err)
	}
	return l
}

// Save writes the solved node vectors to a JSON file called fnkey.res in
// dirout
func Save(dirout, fnkey string, sys *moor.System) {
	b, err := json.MarshalIndent(sys.Nodes, "", "  ")
	if err != nil {
		chk.Panic("cannot marshal results: %v", err)
	}
	io.WriteFileD(dirout, fnkey+".res", bytes.NewBuffer(b))
}

// Draw plots the elevation profile of every solved line and saves the figure
// to dirout
func Draw(sys *moor.System, dirout, fnkey string) {
	names := make([]string, 0, len(sys.Nodes))
	for name := range sys.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		nodes := sys.Nodes[name]
		x := make([]float64, len(nodes))
		z := make([]float64, len(nodes))
		for i, nod := range nodes {
			x[i] = -nod.Xcorr
			z[i] = nod.Ycorr
		}
		plt.Plot(x, z, &plt.A{L: name, NoClip: true})
	}
	plt.Gll("in-plane offset", "elevation", nil)
	plt.Save(dirout, fnkey)
}
