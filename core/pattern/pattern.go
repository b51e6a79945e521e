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

// Intensity processing for individual diffraction patterns: contrast
// stretching, static/dynamic background subtraction and dead pixel removal.
// Operates on one pattern at a time, scan bookkeeping is the caller's problem.
package pattern

import (
	"fmt"

	"github.com/ebsdtools/core/core/utils"
)

// ShapeError - pattern dimensions don't suit the operation requested
type ShapeError struct {
	Err error
}

func (e ShapeError) Error() string {
	return e.Err.Error()
}

func MakeShapeError(format string, a ...interface{}) ShapeError {
	return ShapeError{Err: fmt.Errorf(format, a...)}
}

// Pattern - one diffraction pattern, a rows x cols grid of intensities in
// row-major order. Stored as float64 whatever depth the camera delivered, so
// subtraction can go negative without wrapping.
type Pattern struct {
	rows int
	cols int
	data []float64
}

// MakePattern - builds a pattern from a flat row-major buffer
func MakePattern(rows int, cols int, data []float64) (Pattern, error) {
	if rows <= 0 || cols <= 0 {
		return Pattern{}, MakeShapeError("pattern dimensions must be positive, got %vx%v", rows, cols)
	}
	if len(data) != rows*cols {
		return Pattern{}, MakeShapeError("pattern buffer holds %v values, %vx%v needs %v", len(data), rows, cols, rows*cols)
	}

	return Pattern{rows: rows, cols: cols, data: append([]float64{}, data...)}, nil
}

// Rows - pattern height in pixels
func (p Pattern) Rows() int {
	return p.rows
}

// Cols - pattern width in pixels
func (p Pattern) Cols() int {
	return p.cols
}

// At - intensity at (row, col), no bounds checking beyond the slice's own
func (p Pattern) At(row int, col int) float64 {
	return p.data[row*p.cols+col]
}

// Data - a copy of the flat intensity buffer
func (p Pattern) Data() []float64 {
	return append([]float64{}, p.data...)
}

// MinMax - intensity extremes
func (p Pattern) MinMax() (float64, float64) {
	return utils.MinMax(p.data)
}

func (p Pattern) sameShape(other Pattern) bool {
	return p.rows == other.rows && p.cols == other.cols
}

func (p Pattern) clone() Pattern {
	return Pattern{rows: p.rows, cols: p.cols, data: append([]float64{}, p.data...)}
}
