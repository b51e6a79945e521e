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

package detectorconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ebsdtools/core/core/detector"
	"github.com/ebsdtools/core/core/fileaccess"
)

const testBucket = "config-bucket"

func makeTestGeometry(t *testing.T) *detector.Geometry {
	desc, err := detector.MakeDetectorDescription(60, 60, 70, 8, 0, 70)
	assert.NoError(t, err)

	geom, err := detector.MakeGeometry(desc, detector.MakePC(0.421, 0.779, 0.505), detector.ConventionTSL)
	assert.NoError(t, err)
	return geom
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := fileaccess.MakeMemoryAccess()
	geom := makeTestGeometry(t)

	// Save in TSL, the convention tag travels with the values
	err := Save(fs, testBucket, "NORDIF-cal", geom, detector.ConventionTSL)
	assert.NoError(t, err)

	loaded, conv, err := Load(fs, testBucket, "NORDIF-cal")
	assert.NoError(t, err)
	assert.Equal(t, detector.ConventionTSL, conv)

	// Loaded model normalised back to the same canonical values
	assert.True(t, loaded.PCBruker().Equals(geom.PCBruker(), 1e-10))
	assert.Equal(t, geom.Description(), loaded.Description())
}

func TestSaveLoadAcrossConventions(t *testing.T) {
	fs := fileaccess.MakeMemoryAccess()
	geom := makeTestGeometry(t)

	// Save in EMsoft 4 flavour, physical offsets rather than fractions
	err := Save(fs, testBucket, "emsoft-cal", geom, detector.ConventionEMsoft4)
	assert.NoError(t, err)

	loaded, conv, err := Load(fs, testBucket, "emsoft-cal")
	assert.NoError(t, err)
	assert.Equal(t, detector.ConventionEMsoft4, conv)
	assert.True(t, loaded.PCBruker().Equals(geom.PCBruker(), 1e-10))
}

func TestListConfigs(t *testing.T) {
	fs := fileaccess.MakeMemoryAccess()
	geom := makeTestGeometry(t)

	assert.NoError(t, Save(fs, testBucket, "alpha", geom, detector.ConventionBruker))
	assert.NoError(t, Save(fs, testBucket, "beta", geom, detector.ConventionTSL))

	names, err := ListConfigs(fs, testBucket)
	assert.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, names)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	fs := fileaccess.MakeMemoryAccess()

	// Missing config
	_, _, err := Load(fs, testBucket, "nope")
	assert.Error(t, err)

	// Unknown convention tag
	bad := DetectorConfig{
		PC:              []float64{0.5, 0.5, 0.5},
		NavigationShape: []int{},
		Convention:      "hikari",
	}
	bad.Rows = 60
	bad.Columns = 60
	bad.PixelSize = 70
	bad.Binning = 8
	assert.NoError(t, fs.WriteJSON(testBucket, GetConfigFilePath("bad-conv"), &bad))
	_, _, err = Load(fs, testBucket, "bad-conv")
	assert.IsType(t, detector.ConventionError{}, err)

	// PC buffer not matching navigation shape
	bad.Convention = "bruker"
	bad.NavigationShape = []int{2}
	assert.NoError(t, fs.WriteJSON(testBucket, GetConfigFilePath("bad-shape"), &bad))
	_, _, err = Load(fs, testBucket, "bad-shape")
	assert.IsType(t, detector.ShapeError{}, err)

	// Invalid detector description
	bad.NavigationShape = []int{}
	bad.Binning = 0
	assert.NoError(t, fs.WriteJSON(testBucket, GetConfigFilePath("bad-desc"), &bad))
	_, _, err = Load(fs, testBucket, "bad-desc")
	assert.IsType(t, detector.ValidationError{}, err)
}
