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

import "github.com/ebsdtools/core/core/utils"

// PCArray - an n-dimensional array of projection centre triples. The trailing
// axis is always length 3 (x, y, z); any leading axes form the navigation
// shape, one triple per scan position. A rank-0 navigation shape means one PC
// applies to the whole scan. Storage is a flat row-major buffer plus an
// explicit shape descriptor.
//
// Navigation shape is purely a property of how many distinct PCs were
// supplied. It carries no relationship to the detector's own pixel grid, and
// the array doesn't care whether it matches any scan grid a caller holds.
// Scans are expected to keep this at rank 2 or below, but higher ranks are
// stored as-is, that's a caller discipline not ours.
type PCArray struct {
	navShape []int
	data     []float64
}

// MakePC - a single projection centre, navigation shape ()
func MakePC(x float64, y float64, z float64) PCArray {
	return PCArray{navShape: []int{}, data: []float64{x, y, z}}
}

// MakePCArray - builds an array from a navigation shape and a flat buffer of
// triples in row-major order. The buffer length must be the product of the
// shape times 3, and every shape entry must be positive.
func MakePCArray(navShape []int, data []float64) (PCArray, error) {
	for _, dim := range navShape {
		if dim <= 0 {
			return PCArray{}, MakeShapeError("navigation shape %v has non-positive dimension", navShape)
		}
	}

	count := utils.Product(navShape)
	if len(data) != count*3 {
		return PCArray{}, MakeShapeError("PC buffer holds %v values, navigation shape %v needs %v triples (%v values)", len(data), navShape, count, count*3)
	}

	arr := PCArray{
		navShape: append([]int{}, navShape...),
		data:     append([]float64{}, data...),
	}
	return arr, nil
}

// MakePCList - builds a rank-1 array from explicit triples
func MakePCList(triples [][3]float64) (PCArray, error) {
	if len(triples) <= 0 {
		return PCArray{}, MakeShapeError("PC list was empty")
	}

	data := make([]float64, 0, len(triples)*3)
	for _, t := range triples {
		data = append(data, t[0], t[1], t[2])
	}
	return MakePCArray([]int{len(triples)}, data)
}

// Tile - repeats this array's triples over the given leading shape, so a
// single calibrated PC can be spread over a whole scan grid. The new shape is
// the given dims followed by the existing navigation shape.
func (a PCArray) Tile(dims ...int) (PCArray, error) {
	for _, dim := range dims {
		if dim <= 0 {
			return PCArray{}, MakeShapeError("tile shape %v has non-positive dimension", dims)
		}
	}

	repeats := utils.Product(dims)
	data := make([]float64, 0, repeats*len(a.data))
	for c := 0; c < repeats; c++ {
		data = append(data, a.data...)
	}

	shape := append(append([]int{}, dims...), a.navShape...)
	return MakePCArray(shape, data)
}

// NavigationShape - the leading axes of the stored array, () for one PC
func (a PCArray) NavigationShape() []int {
	return append([]int{}, a.navShape...)
}

// NavigationDimension - rank of the navigation shape
func (a PCArray) NavigationDimension() int {
	return len(a.navShape)
}

// Count - how many triples are stored (1 for rank 0)
func (a PCArray) Count() int {
	return len(a.data) / 3
}

// Triple - the c'th triple in row-major order over the navigation shape
func (a PCArray) Triple(c int) (float64, float64, float64) {
	return a.data[c*3], a.data[c*3+1], a.data[c*3+2]
}

// At - indexes down through leading navigation axes, returning the lower-rank
// sub-array. Supplying every index collapses to a single PC (rank 0), which is
// the documented path from "many PCs" to "one representative PC".
func (a PCArray) At(indices ...int) (PCArray, error) {
	if len(indices) > len(a.navShape) {
		return PCArray{}, MakeShapeError("got %v indices for navigation shape %v", len(indices), a.navShape)
	}

	offset := 0
	stride := len(a.data) / 3
	for c, idx := range indices {
		stride /= a.navShape[c]
		if idx < 0 || idx >= a.navShape[c] {
			return PCArray{}, MakeShapeError("index %v out of range for navigation axis %v of length %v", idx, c, a.navShape[c])
		}
		offset += idx * stride
	}

	sub := PCArray{
		navShape: append([]int{}, a.navShape[len(indices):]...),
		data:     append([]float64{}, a.data[offset*3:(offset+stride)*3]...),
	}
	return sub, nil
}

// Map - applies a pure triple-to-triple function elementwise, preserving the
// navigation shape. The receiver is not modified.
func (a PCArray) Map(f func(x float64, y float64, z float64) (float64, float64, float64)) PCArray {
	result := PCArray{
		navShape: append([]int{}, a.navShape...),
		data:     make([]float64, len(a.data)),
	}
	for c := 0; c < a.Count(); c++ {
		x, y, z := a.Triple(c)
		result.data[c*3], result.data[c*3+1], result.data[c*3+2] = f(x, y, z)
	}
	return result
}

// Flat - a copy of the raw buffer, row-major triples. For serialisation.
func (a PCArray) Flat() []float64 {
	return append([]float64{}, a.data...)
}

// Equals - value comparison within a tolerance, shapes must match exactly
func (a PCArray) Equals(b PCArray, tolerance float64) bool {
	if len(a.navShape) != len(b.navShape) {
		return false
	}
	for c := range a.navShape {
		if a.navShape[c] != b.navShape[c] {
			return false
		}
	}

	return utils.FloatSlicesEqual(a.data, b.data, tolerance)
}
