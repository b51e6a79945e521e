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

package pattern

import (
	"fmt"
	"math"
)

// How dead pixels get filled in
const (
	// DeadPixelAverage - mean of the surrounding neighbourhood
	DeadPixelAverage = "average"
	// DeadPixelNaN - mark as NaN for downstream masking
	DeadPixelNaN = "nan"
)

// RemoveDeadPixels - replaces known dead pixels. With DeadPixelAverage each
// dead pixel becomes the mean of the (2d+1)^2 neighbourhood around it,
// excluding the pixel itself and clipped at pattern edges, computed on the
// ORIGINAL intensities so overlapping neighbourhoods don't feed each other.
// With DeadPixelNaN they're set to NaN. Coordinates are (row, col).
func RemoveDeadPixels(p Pattern, deadPixels [][2]int, method string, d int) (Pattern, error) {
	if d < 1 {
		return Pattern{}, fmt.Errorf("neighbourhood radius must be at least 1, got %v", d)
	}

	for _, px := range deadPixels {
		if px[0] < 0 || px[0] >= p.rows || px[1] < 0 || px[1] >= p.cols {
			return Pattern{}, MakeShapeError("dead pixel (%v, %v) outside %vx%v pattern", px[0], px[1], p.rows, p.cols)
		}
	}

	result := p.clone()

	switch method {
	case DeadPixelAverage:
		for _, px := range deadPixels {
			result.data[px[0]*p.cols+px[1]] = neighbourhoodMean(p, px[0], px[1], d)
		}
	case DeadPixelNaN:
		for _, px := range deadPixels {
			result.data[px[0]*p.cols+px[1]] = math.NaN()
		}
	default:
		return Pattern{}, fmt.Errorf("unknown dead pixel method: \"%v\"", method)
	}

	return result, nil
}

func neighbourhoodMean(p Pattern, row int, col int, d int) float64 {
	sum := 0.0
	count := 0

	for r := row - d; r <= row+d; r++ {
		if r < 0 || r >= p.rows {
			continue
		}
		for c := col - d; c <= col+d; c++ {
			if c < 0 || c >= p.cols || (r == row && c == col) {
				continue
			}
			sum += p.At(r, c)
			count++
		}
	}

	if count <= 0 {
		return p.At(row, col)
	}
	return sum / float64(count)
}
