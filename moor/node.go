// Copyright 2023 The Gomoor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moor

import "math"

// Node is one discretisation point along a solved line. The node vector of a
// line has length 1 + Σ num_elements, is written by the solver and must be
// treated as read-only afterwards
type Node struct {
	S     float64   `json:"arc_length"`        // unstretched arclength from the fairlead (node 0)
	T     float64   `json:"tension"`           // axial tension
	Phi   float64   `json:"declination_angle"` // angle of the local tangent below the horizontal; π/2 points at the seabed
	Xcorr float64   `json:"x_corr"`            // in-plane horizontal offset accumulated from the fairlead
	Ycorr float64   `json:"y_corr"`            // vertical offset accumulated from the fairlead
	X     []float64 `json:"coords"`            // world coordinates after rotation into the anchor plane
}

// rotate maps the in-plane offsets of all nodes to world coordinates. The
// line lies in the vertical plane containing both anchor points; ψ is the
// horizontal bearing from fairlead to anchor
func rotate(nodes []Node, top, bot []float64) {
	psi := math.Atan2(bot[1]-top[1], bot[0]-top[0])
	sin, cos := math.Sincos(psi)
	for i := range nodes {
		r := math.Abs(nodes[i].Xcorr)
		nodes[i].X[0] = top[0] + r*cos
		nodes[i].X[1] = top[1] + r*sin
		nodes[i].X[2] = top[2] + nodes[i].Ycorr
	}
}
