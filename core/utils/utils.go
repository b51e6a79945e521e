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

// Small helpers you'd expect in the std lib but aren't
package utils

import "golang.org/x/exp/constraints"

// PrettyPrintIndentForJSON Pretty-print indenting of JSON
const PrettyPrintIndentForJSON = "    "

// Abs - works for any signed numeric type, unlike math.Abs
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// MinMax - both extremes of a slice in one pass. Zero values for an empty slice.
func MinMax[T constraints.Ordered](vals []T) (T, T) {
	var min, max T
	if len(vals) <= 0 {
		return min, max
	}

	min, max = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Product - product of all elements, 1 for an empty slice
func Product[T constraints.Integer](vals []T) T {
	result := T(1)
	for _, v := range vals {
		result *= v
	}
	return result
}

// FloatSlicesEqual - elementwise comparison within a tolerance
func FloatSlicesEqual(test []float64, ans []float64, tolerance float64) bool {
	if len(test) != len(ans) {
		return false
	}

	for c := range test {
		if Abs(test[c]-ans[c]) > tolerance {
			return false
		}
	}

	return true
}

// IntSlicesEqual - exact elementwise comparison
func IntSlicesEqual(test []int, ans []int) bool {
	if len(test) != len(ans) {
		return false
	}

	for c := range test {
		if test[c] != ans[c] {
			return false
		}
	}

	return true
}
