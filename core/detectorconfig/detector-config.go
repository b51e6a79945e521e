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

// Saving/loading named detector geometries as flat JSON records. The geometry
// core itself owns no file format, this is the persistence collaborator
// around it.
package detectorconfig

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/ebsdtools/core/core/detector"
	"github.com/ebsdtools/core/core/fileaccess"
)

const configRoot = "DetectorConfigs"

// DetectorConfig - stored config: the static description plus the PC array
// flattened alongside its navigation shape, and the convention the PC values
// are written in. The convention tag only describes the stored values, a
// loaded Geometry always normalises to canonical internally.
type DetectorConfig struct {
	detector.DetectorDescription
	PC              []float64 `json:"pc"`
	NavigationShape []int     `json:"navigationShape"`
	Convention      string    `json:"convention"`
}

// GetConfigFilePath - where a named config lives relative to the bucket root
func GetConfigFilePath(name string) string {
	return fmt.Sprintf("%v/%v.json", configRoot, name)
}

// ListConfigs - names of all stored configs in a bucket
func ListConfigs(fs fileaccess.FileAccess, bucket string) ([]string, error) {
	paths, err := fs.ListObjects(bucket, configRoot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list detector configs in %v", bucket)
	}

	names := []string{}
	for _, p := range paths {
		name := strings.TrimPrefix(p, configRoot+"/")
		name = strings.TrimSuffix(name, ".json")
		names = append(names, name)
	}
	return names, nil
}

// Load - reads a named config and builds the geometry model from it,
// normalising the stored convention
func Load(fs fileaccess.FileAccess, bucket string, name string) (*detector.Geometry, detector.Convention, error) {
	config := DetectorConfig{}
	if err := fs.ReadJSON(bucket, GetConfigFilePath(name), &config, false); err != nil {
		return nil, "", errors.Wrapf(err, "failed to read detector config \"%v\"", name)
	}

	conv, err := detector.ParseConvention(config.Convention)
	if err != nil {
		return nil, "", err
	}

	pc, err := detector.MakePCArray(config.NavigationShape, config.PC)
	if err != nil {
		return nil, "", err
	}

	geom, err := detector.MakeGeometry(config.DetectorDescription, pc, conv)
	if err != nil {
		return nil, "", err
	}
	return geom, conv, nil
}

// Save - writes a geometry out as a named config with the PCs expressed in
// the given convention
func Save(fs fileaccess.FileAccess, bucket string, name string, geom *detector.Geometry, convention detector.Convention) error {
	pc, err := geom.PC(convention)
	if err != nil {
		return err
	}

	config := DetectorConfig{
		DetectorDescription: geom.Description(),
		PC:                  pc.Flat(),
		NavigationShape:     pc.NavigationShape(),
		Convention:          string(convention),
	}

	if err := fs.WriteJSON(bucket, GetConfigFilePath(name), &config); err != nil {
		return errors.Wrapf(err, "failed to write detector config \"%v\"", name)
	}
	return nil
}
