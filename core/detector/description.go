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

// DetectorDescription - static description of an EBSD detector. Pixel counts
// are binned counts, pixel size is the physical size of one UNBINNED pixel
// in whatever units the caller works in (typically microns). Immutable for
// the life of a Geometry.
type DetectorDescription struct {
	Rows       int     `json:"rows"`
	Columns    int     `json:"columns"`
	PixelSize  float64 `json:"pixelSize"`
	Binning    int     `json:"binning"`
	Tilt       float64 `json:"tilt"`       // Detector tilt, degrees
	SampleTilt float64 `json:"sampleTilt"` // Sample tilt, degrees
}

// MakeDetectorDescription - validates and builds a detector description.
// Rows, columns, pixel size must be positive, binning at least 1. Tilts are
// unconstrained angles in degrees.
func MakeDetectorDescription(rows int, columns int, pixelSize float64, binning int, tilt float64, sampleTilt float64) (DetectorDescription, error) {
	desc := DetectorDescription{
		Rows:       rows,
		Columns:    columns,
		PixelSize:  pixelSize,
		Binning:    binning,
		Tilt:       tilt,
		SampleTilt: sampleTilt,
	}
	return desc, desc.Validate()
}

// Validate - checks invariants, returns a ValidationError naming the first
// bad field. Used at construction and again when configs are loaded from disk.
func (d DetectorDescription) Validate() error {
	if d.Rows <= 0 {
		return MakeValidationError("detector rows must be positive, got %v", d.Rows)
	}
	if d.Columns <= 0 {
		return MakeValidationError("detector columns must be positive, got %v", d.Columns)
	}
	if d.PixelSize <= 0 {
		return MakeValidationError("detector pixel size must be positive, got %v", d.PixelSize)
	}
	if d.Binning < 1 {
		return MakeValidationError("detector binning must be at least 1, got %v", d.Binning)
	}
	return nil
}

// UnbinnedColumns - pixel count across the full width before binning
func (d DetectorDescription) UnbinnedColumns() int {
	return d.Columns * d.Binning
}

// UnbinnedRows - pixel count down the full height before binning
func (d DetectorDescription) UnbinnedRows() int {
	return d.Rows * d.Binning
}

// AspectRatio - width over height of the pixel grid
func (d DetectorDescription) AspectRatio() float64 {
	return float64(d.Columns) / float64(d.Rows)
}

// Width - physical detector width in pixel-size units
func (d DetectorDescription) Width() float64 {
	return float64(d.UnbinnedColumns()) * d.PixelSize
}

// Height - physical detector height in pixel-size units
func (d DetectorDescription) Height() float64 {
	return float64(d.UnbinnedRows()) * d.PixelSize
}
