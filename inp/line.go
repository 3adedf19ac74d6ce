// Copyright 2023 The Gomoor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Segment is one homogeneous stretch of a line
type Segment struct {

	// input
	TypeName string  `json:"line_type" toml:"line_type"`       // key into the line-types table
	Length   float64 `json:"length" toml:"length"`             // unstretched arclength
	Nelem    int     `json:"num_elements" toml:"num_elements"` // number of discretisation elements

	// derived
	ElemLen float64   // length of one element
	Typ     *LineType // resolved line type
}

// Line is one mooring line suspended between two anchor points. Segment 0 is
// attached at the fairlead (top)
type Line struct {

	// input
	TopPos   []float64  `json:"top_position" toml:"top_position"`       // fairlead coordinates (x east, y north, z up)
	BotPos   []float64  `json:"bottom_position" toml:"bottom_position"` // anchor coordinates
	Segments []*Segment `json:"segments" toml:"segments"`

	// derived
	Name     string  // key in the lines table
	Depth    float64 // vertical distance from fairlead down to anchor
	TotLen   float64 // total unstretched length
	Nnodes   int     // 1 + total number of elements
	cumNelem []int   // cumulative element count per segment
}

// Derive resolves segment line types, computes the derived quantities and
// checks the input values
func (o *Line) Derive(name string, types map[string]*LineType) (err error) {
	o.Name = name
	if len(o.TopPos) != 3 || len(o.BotPos) != 3 {
		return chk.Err("line %q: top_position and bottom_position must have 3 components", name)
	}
	if len(o.Segments) < 1 {
		return chk.Err("line %q must have at least one segment", name)
	}
	o.Depth = o.TopPos[2] - o.BotPos[2]
	if o.Depth <= 0 {
		return chk.Err("line %q: fairlead must be above anchor; depth=%g", name, o.Depth)
	}
	o.TotLen = 0
	o.Nnodes = 1
	o.cumNelem = make([]int, len(o.Segments))
	for i, seg := range o.Segments {
		if seg.Length <= 0 {
			return chk.Err("line %q: segment %d must have positive length", name, i)
		}
		if seg.Nelem < 1 {
			return chk.Err("line %q: segment %d must have num_elements ≥ 1", name, i)
		}
		typ, ok := types[seg.TypeName]
		if !ok {
			return chk.Err("line %q: segment %d references unknown line type %q", name, i, seg.TypeName)
		}
		seg.Typ = typ
		seg.ElemLen = seg.Length / float64(seg.Nelem)
		o.TotLen += seg.Length
		o.Nnodes += seg.Nelem
		o.cumNelem[i] = o.Nnodes - 1
	}
	return
}

// SegIdx returns the index of the segment that element i belongs to; i.e. the
// smallest segment index whose cumulative element count strictly exceeds i
func (o *Line) SegIdx(i int) int {
	for k, cum := range o.cumNelem {
		if cum > i {
			return k
		}
	}
	return len(o.Segments) - 1
}

// SubmergedLength estimates the length of line below the water surface by
// comparing the vertical depth with the cumulative arclength. This is only a
// rough diagnostic for reports; the solver never uses it
func (o *Line) SubmergedLength(waterDepth float64) float64 {
	if waterDepth <= 0 {
		return o.TotLen
	}
	return utl.Min(o.TotLen, waterDepth)
}
