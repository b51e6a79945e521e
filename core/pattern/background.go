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
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// SubtractStaticBackground - subtracts a fixed background image (eg an
// averaged scan) then rescales with the caller's global imin/scale so
// patterns across the scan keep their relative intensities. maxOut caps the
// result at the output depth.
func SubtractStaticBackground(p Pattern, bg Pattern, imin float64, scale float64) (Pattern, error) {
	if !p.sameShape(bg) {
		return Pattern{}, MakeShapeError("background is %vx%v, pattern is %vx%v", bg.rows, bg.cols, p.rows, p.cols)
	}

	result := p.clone()
	for c := range result.data {
		result.data[c] -= bg.data[c]
	}

	return RescaleIntensityScaled(result, imin, scale), nil
}

// SubtractDynamicBackground - subtracts a gaussian-blurred copy of the
// pattern itself, flattening the large-scale intensity gradient, then does a
// local contrast stretch to 0..maxOut. Relative intensities across a scan are
// lost, that's inherent to per-pattern flattening.
//
// The blur runs at 8-bit precision over the pattern's own intensity range,
// which matches the byte-depth patterns most cameras deliver.
func SubtractDynamicBackground(p Pattern, sigma float64, maxOut float64) (Pattern, error) {
	if sigma <= 0 {
		return Pattern{}, MakeShapeError("blur sigma must be positive, got %v", sigma)
	}

	blurred := blurPattern(p, sigma)

	result := p.clone()
	for c := range result.data {
		result.data[c] -= blurred.data[c]
	}

	return RescaleIntensity(result, maxOut), nil
}

// blurPattern - gaussian blur via the imaging library, mapping intensities to
// grayscale and back over the pattern's own range
func blurPattern(p Pattern, sigma float64) Pattern {
	min, max := p.MinMax()
	span := max - min
	if span <= 0 {
		// Flat pattern blurs to itself
		return p.clone()
	}

	img := image.NewGray(image.Rect(0, 0, p.cols, p.rows))
	for row := 0; row < p.rows; row++ {
		for col := 0; col < p.cols; col++ {
			img.SetGray(col, row, color.Gray{Y: uint8((p.At(row, col) - min) / span * 255)})
		}
	}

	blurredImg := imaging.Blur(img, sigma)

	result := p.clone()
	for row := 0; row < p.rows; row++ {
		for col := 0; col < p.cols; col++ {
			grey, _, _, _ := blurredImg.At(col, row).RGBA()
			// RGBA returns 16-bit channels, bring it back to our range
			result.data[row*p.cols+col] = min + float64(grey)/65535*span
		}
	}
	return result
}
