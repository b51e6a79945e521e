// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package detector

import (
	"fmt"
	"math"
)

// Rect - an axis-aligned extent in some 2D frame
type Rect struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// Width - horizontal extent
func (r Rect) Width() float64 {
	return r.XMax - r.XMin
}

// Height - vertical extent
func (r Rect) Height() float64 {
	return r.YMax - r.YMin
}

// Range - a 1D extent
type Range struct {
	Min float64
	Max float64
}

// Scale - per-axis pixel-to-gnomonic scale factors
type Scale struct {
	X float64
	Y float64
}

// Geometry - the detector geometry model. Holds the static detector
// description and one projection centre per scan position, always stored in
// the canonical Bruker convention, whatever convention it arrived in.
// Derived quantities are computed fresh from current state on every call,
// nothing is cached across a SetPC.
//
// Every operation is a deterministic function of state plus arguments with no
// I/O. Concurrent readers are fine so long as nobody is inside SetPC at the
// same time, a PC replacement needs exclusive access.
type Geometry struct {
	desc DetectorDescription
	pc   PCArray
}

// MakeGeometry - builds the model from a validated description, an initial PC
// array and the convention that array is expressed in. The PCs are converted
// to the canonical convention before being committed.
func MakeGeometry(desc DetectorDescription, pc PCArray, convention Convention) (*Geometry, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	geom := &Geometry{desc: desc}
	if err := geom.SetPC(pc, convention); err != nil {
		return nil, err
	}
	return geom, nil
}

// Description - the static detector description
func (g *Geometry) Description() DetectorDescription {
	return g.desc
}

// SetPC - replaces the whole PC array, converting from the given convention
// to canonical. The conversion runs on a copy and state is only committed
// once the full array converted cleanly, so a failed replace leaves the
// previous PCs in place. Replacing with a lower-rank array collapses the
// navigation shape accordingly.
func (g *Geometry) SetPC(pc PCArray, convention Convention) error {
	if pc.Count() <= 0 {
		return MakeShapeError("PC array was empty")
	}

	canonical, err := ConvertPC(pc, convention, ConventionBruker, g.desc)
	if err != nil {
		return err
	}

	g.pc = canonical
	return nil
}

// PC - the stored array expressed in the requested convention
func (g *Geometry) PC(convention Convention) (PCArray, error) {
	return ConvertPC(g.pc, ConventionBruker, convention, g.desc)
}

// PCBruker - the canonical stored array
func (g *Geometry) PCBruker() PCArray {
	// Copy so callers can't reach into stored state
	return g.pc.Map(func(x float64, y float64, z float64) (float64, float64, float64) {
		return x, y, z
	})
}

// PCTSL - stored PCs in the EDAX TSL convention
func (g *Geometry) PCTSL() PCArray {
	converted, _ := g.PC(ConventionTSL)
	return converted
}

// PCOxford - stored PCs in the Oxford Instruments convention
func (g *Geometry) PCOxford() PCArray {
	converted, _ := g.PC(ConventionOxford)
	return converted
}

// PCEMsoft - stored PCs in the EMsoft convention for the given major version
// (4 or 5). Which version the data is meant for is purely caller-asserted,
// nothing in the numbers distinguishes them.
func (g *Geometry) PCEMsoft(version int) (PCArray, error) {
	switch version {
	case 4:
		return g.PC(ConventionEMsoft4)
	case 5:
		return g.PC(ConventionEMsoft5)
	}
	return PCArray{}, MakeConventionError(fmt.Sprintf("emsoft%v", version))
}

// NavigationShape - shape of the PC grid, () when one PC covers the scan
func (g *Geometry) NavigationShape() []int {
	return g.pc.NavigationShape()
}

// NavigationDimension - rank of the PC grid
func (g *Geometry) NavigationDimension() int {
	return g.pc.NavigationDimension()
}

// Bounds - the detector pixel grid extent (0, columns) x (0, rows), the
// reference frame the gnomonic transform starts from. Independent of PC.
func (g *Geometry) Bounds() Rect {
	return Rect{
		XMin: 0,
		XMax: float64(g.desc.Columns),
		YMin: 0,
		YMax: float64(g.desc.Rows),
	}
}

// gnomonicBoundsFor - bounding box of the gnomonic plane for one canonical
// PC. The detector corners, taken relative to the PC in pattern-height units,
// are projected through the PC apex onto the plane at unit distance:
// x_g = x_d/z_d, y_g = y_d/z_d. x spans the width so it picks up the aspect
// ratio, y is measured positive up from the bottom of the pattern.
func (g *Geometry) gnomonicBoundsFor(x float64, y float64, z float64) (Rect, error) {
	if z <= 0 {
		return Rect{}, MakeGeometryError("cannot project through PC with non-positive working distance %v", z)
	}

	aspect := g.desc.AspectRatio()
	return Rect{
		XMin: -aspect * x / z,
		XMax: aspect * (1 - x) / z,
		YMin: -(1 - y) / z,
		YMax: y / z,
	}, nil
}

// GnomonicBounds - per-PC bounding boxes of the gnomonic projection plane, in
// row-major order over the navigation shape. A single-element slice when one
// PC covers the scan.
func (g *Geometry) GnomonicBounds() ([]Rect, error) {
	result := make([]Rect, g.pc.Count())
	for c := 0; c < g.pc.Count(); c++ {
		x, y, z := g.pc.Triple(c)
		rect, err := g.gnomonicBoundsFor(x, y, z)
		if err != nil {
			return nil, err
		}
		result[c] = rect
	}
	return result, nil
}

// XRange - horizontal gnomonic extent per PC
func (g *Geometry) XRange() ([]Range, error) {
	bounds, err := g.GnomonicBounds()
	if err != nil {
		return nil, err
	}

	result := make([]Range, len(bounds))
	for c, rect := range bounds {
		result[c] = Range{Min: rect.XMin, Max: rect.XMax}
	}
	return result, nil
}

// YRange - vertical gnomonic extent per PC
func (g *Geometry) YRange() ([]Range, error) {
	bounds, err := g.GnomonicBounds()
	if err != nil {
		return nil, err
	}

	result := make([]Range, len(bounds))
	for c, rect := range bounds {
		result[c] = Range{Min: rect.YMin, Max: rect.YMax}
	}
	return result, nil
}

// GnomonicScale - pixel-to-gnomonic scale per PC, gnomonic units per binned
// pixel along each axis
func (g *Geometry) GnomonicScale() ([]Scale, error) {
	bounds, err := g.GnomonicBounds()
	if err != nil {
		return nil, err
	}

	result := make([]Scale, len(bounds))
	for c, rect := range bounds {
		result[c] = Scale{
			X: axisScale(rect.Width(), g.desc.Columns),
			Y: axisScale(rect.Height(), g.desc.Rows),
		}
	}
	return result, nil
}

func axisScale(extent float64, pixels int) float64 {
	if pixels <= 1 {
		return extent
	}
	return extent / float64(pixels-1)
}

// RMax - per PC, the largest distance in gnomonic units from that PC's
// gnomonic origin to any of the four projected detector corners. Sizes radial
// overlays drawn around the PC. The maximum over the actual corners, not an
// average.
func (g *Geometry) RMax() ([]float64, error) {
	bounds, err := g.GnomonicBounds()
	if err != nil {
		return nil, err
	}

	result := make([]float64, len(bounds))
	for c, rect := range bounds {
		corners := [4][2]float64{
			{rect.XMin, rect.YMin},
			{rect.XMin, rect.YMax},
			{rect.XMax, rect.YMin},
			{rect.XMax, rect.YMax},
		}

		rMax := 0.0
		for _, corner := range corners {
			r := math.Hypot(corner[0], corner[1])
			if r > rMax {
				rMax = r
			}
		}
		result[c] = rMax
	}
	return result, nil
}
