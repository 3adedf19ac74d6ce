// Copyright 2023 The Gomoor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mattkram/gomoor/moor"
	"github.com/mattkram/gomoor/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	io.PfWhite("\nGomoor -- static catenary mooring solver\n\n")

	// configuration filenamepath
	flag.Parse()
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide a configuration filename. Ex.: mooring.json")
	}

	// check extension
	if io.FnExt(fnamepath) == "" {
		fnamepath += ".json"
	}

	// other options
	verbose := true
	if len(flag.Args()) > 1 {
		verbose = io.Atob(flag.Arg(1))
	}

	// read configuration and solve
	sys, err := moor.SystemFromFile(fnamepath)
	if err != nil {
		chk.Panic("cannot load configuration:\n%v", err)
	}
	err = sys.SolveStatic()
	if err != nil {
		io.PfRed("%v\n", err)
	}

	// results
	if verbose {
		io.Pf("%v\n", sys)
		io.Pf("%v\n", out.Report(sys))
	}
	fnkey := io.FnKey(fnamepath)
	out.Save("/tmp/gomoor/"+fnkey, fnkey, sys)
	io.Pf("results saved to /tmp/gomoor/%s/%s.res\n", fnkey, fnkey)

	// final message
	if len(sys.Errs) == 0 {
		io.PfGreen("Success\n")
	} else {
		io.PfRed("Failed: %d line(s) did not converge\n", len(sys.Errs))
	}
}
