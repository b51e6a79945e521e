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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigationShapeRanks(t *testing.T) {
	// Rank 0: one PC
	single := MakePC(0.4, 0.2, 0.5)
	assert.Equal(t, []int{}, single.NavigationShape())
	assert.Equal(t, 0, single.NavigationDimension())
	assert.Equal(t, 1, single.Count())

	// Rank 1
	row, err := MakePCList([][3]float64{{0.4, 0.2, 0.5}, {0.41, 0.21, 0.5}})
	assert.NoError(t, err)
	assert.Equal(t, []int{2}, row.NavigationShape())
	assert.Equal(t, 1, row.NavigationDimension())

	// Rank 2 and 3 via explicit buffers
	for _, shape := range [][]int{{3, 4}, {2, 3, 4}} {
		count := 1
		for _, dim := range shape {
			count *= dim
		}
		data := make([]float64, count*3)
		arr, err := MakePCArray(shape, data)
		assert.NoError(t, err)
		assert.Equal(t, shape, arr.NavigationShape())
		assert.Equal(t, len(shape), arr.NavigationDimension())
		assert.Equal(t, count, arr.Count())
	}
}

func TestMakePCArrayRejectsBadBuffer(t *testing.T) {
	_, err := MakePCArray([]int{2}, []float64{0.1, 0.2, 0.3, 0.4})
	assert.Error(t, err)
	assert.IsType(t, ShapeError{}, err)

	_, err = MakePCArray([]int{0}, []float64{})
	assert.IsType(t, ShapeError{}, err)
}

func TestTileSpreadsOnePC(t *testing.T) {
	tiled, err := MakePC(0.421, 0.779, 0.505).Tile(3, 4)
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 4}, tiled.NavigationShape())
	assert.Equal(t, 12, tiled.Count())

	x, y, z := tiled.Triple(11)
	assert.Equal(t, 0.421, x)
	assert.Equal(t, 0.779, y)
	assert.Equal(t, 0.505, z)
}

func TestAtCollapsesRank(t *testing.T) {
	tiled, err := MakePC(0.421, 0.779, 0.505).Tile(3, 4)
	assert.NoError(t, err)

	// One leading index leaves a rank-1 row
	row, err := tiled.At(1)
	assert.NoError(t, err)
	assert.Equal(t, []int{4}, row.NavigationShape())
	assert.Equal(t, 4, row.Count())

	// Full indexing collapses to a single PC
	one, err := tiled.At(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, []int{}, one.NavigationShape())
	assert.Equal(t, 0, one.NavigationDimension())

	// Out of range and over-indexing are shape errors
	_, err = tiled.At(3)
	assert.IsType(t, ShapeError{}, err)
	_, err = tiled.At(0, 0, 0)
	assert.IsType(t, ShapeError{}, err)
}

func TestAtPicksRightTriple(t *testing.T) {
	arr, err := MakePCArray([]int{2, 2}, []float64{
		1, 1, 1,
		2, 2, 2,
		3, 3, 3,
		4, 4, 4,
	})
	assert.NoError(t, err)

	one, err := arr.At(1, 0)
	assert.NoError(t, err)
	x, y, z := one.Triple(0)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 3.0, y)
	assert.Equal(t, 3.0, z)
}

func TestMapPreservesShapeAndInput(t *testing.T) {
	arr, err := MakePCList([][3]float64{{1, 2, 3}, {4, 5, 6}})
	assert.NoError(t, err)

	doubled := arr.Map(func(x float64, y float64, z float64) (float64, float64, float64) {
		return x * 2, y * 2, z * 2
	})

	assert.Equal(t, arr.NavigationShape(), doubled.NavigationShape())
	assert.Equal(t, []float64{2, 4, 6, 8, 10, 12}, doubled.Flat())
	// Input untouched
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, arr.Flat())
}
