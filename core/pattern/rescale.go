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

// RescaleIntensity - stretches the pattern's own min..max to 0..maxOut
// (local contrast stretch). A flat pattern comes back all zero. maxOut is
// typically the max of the output depth, eg 255 or 65535.
func RescaleIntensity(p Pattern, maxOut float64) Pattern {
	min, max := p.MinMax()
	if max <= min {
		result := p.clone()
		for c := range result.data {
			result.data[c] = 0
		}
		return result
	}

	return RescaleIntensityScaled(p, min, maxOut/(max-min))
}

// RescaleIntensityScaled - shifts intensities down by imin then multiplies by
// scale. Applying the same imin/scale across a whole scan keeps patterns'
// intensities relative to each other, unlike the per-pattern stretch above.
func RescaleIntensityScaled(p Pattern, imin float64, scale float64) Pattern {
	result := p.clone()
	for c := range result.data {
		result.data[c] = (result.data[c] - imin) * scale
	}
	return result
}
