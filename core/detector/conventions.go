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

import "strings"

// Projection centre conventions of the different vendor acquisition packages.
// Internally everything is stored in the Bruker convention:
//   x - fraction of detector width from the LEFT edge
//   y - fraction of detector height from the TOP edge
//   z - sample-to-scintillator distance over pattern height
// TSL and Oxford measure y from the bottom instead. EMsoft expresses x, y as
// an unbinned pixel offset from the detector centre and z as a physical
// distance, with EMsoft 4 and 5 disagreeing on the sign of the x offset.
type Convention string

const (
	ConventionBruker  Convention = "bruker"
	ConventionTSL     Convention = "tsl"
	ConventionOxford  Convention = "oxford"
	ConventionEMsoft4 Convention = "emsoft4"
	ConventionEMsoft5 Convention = "emsoft5"
)

// ParseConvention - case-insensitive tag lookup, empty string means the
// canonical (Bruker) convention
func ParseConvention(tag string) (Convention, error) {
	conv := Convention(strings.ToLower(tag))
	if len(conv) <= 0 {
		return ConventionBruker, nil
	}
	if _, ok := conversions[conv]; !ok {
		return conv, MakeConventionError(tag)
	}
	return conv, nil
}

// Each convention is nothing but a forward/inverse transform pair, so a
// lookup table of function pairs is all the dispatch we need
type pcTransform func(x float64, y float64, z float64, desc DetectorDescription) (float64, float64, float64)

type conversionPair struct {
	toBruker   pcTransform
	fromBruker pcTransform
}

var conversions = map[Convention]conversionPair{
	ConventionBruker:  {toBruker: pcIdentity, fromBruker: pcIdentity},
	ConventionTSL:     {toBruker: pcFlipY, fromBruker: pcFlipY},
	ConventionOxford:  {toBruker: pcFlipY, fromBruker: pcFlipY},
	ConventionEMsoft4: {toBruker: emsoftToBruker(+1), fromBruker: brukerToEMsoft(+1)},
	ConventionEMsoft5: {toBruker: emsoftToBruker(-1), fromBruker: brukerToEMsoft(-1)},
}

func pcIdentity(x float64, y float64, z float64, desc DetectorDescription) (float64, float64, float64) {
	return x, y, z
}

// TSL and Oxford measure y up from the bottom edge, Bruker down from the top,
// so the conversion flips y and is its own inverse. x and z match as-is.
func pcFlipY(x float64, y float64, z float64, desc DetectorDescription) (float64, float64, float64) {
	return x, 1 - y, z
}

// EMsoft carries (x, y) as an unbinned-pixel offset from the detector centre,
// positive y up, and z as the physical sample-to-scintillator distance L.
// version is +1 for EMsoft 4 and -1 for EMsoft 5, which flipped the x axis.
func emsoftToBruker(version float64) pcTransform {
	return func(x float64, y float64, z float64, desc DetectorDescription) (float64, float64, float64) {
		xb := 0.5 + version*x/float64(desc.UnbinnedColumns())
		yb := 0.5 - y/float64(desc.UnbinnedRows())
		zb := z / (float64(desc.UnbinnedRows()) * desc.PixelSize)
		return xb, yb, zb
	}
}

func brukerToEMsoft(version float64) pcTransform {
	return func(x float64, y float64, z float64, desc DetectorDescription) (float64, float64, float64) {
		xe := version * (x - 0.5) * float64(desc.UnbinnedColumns())
		ye := (0.5 - y) * float64(desc.UnbinnedRows())
		ze := z * float64(desc.UnbinnedRows()) * desc.PixelSize
		return xe, ye, ze
	}
}

// ConvertPC - converts every triple in an array from one convention to
// another, going through the canonical form. Pure, the input is untouched.
func ConvertPC(pc PCArray, from Convention, to Convention, desc DetectorDescription) (PCArray, error) {
	fromPair, ok := conversions[from]
	if !ok {
		return PCArray{}, MakeConventionError(string(from))
	}
	toPair, ok := conversions[to]
	if !ok {
		return PCArray{}, MakeConventionError(string(to))
	}

	return pc.Map(func(x float64, y float64, z float64) (float64, float64, float64) {
		bx, by, bz := fromPair.toBruker(x, y, z, desc)
		return toPair.fromBruker(bx, by, bz, desc)
	}), nil
}
