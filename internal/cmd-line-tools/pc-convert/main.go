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

// Converts a stored detector config's projection centres between vendor
// conventions, printing per-position gnomonic bounds along the way.
// Configs are read from a local directory or an S3 bucket.
package main

import (
	"flag"
	"log"

	"github.com/ebsdtools/core/core/awsutil"
	"github.com/ebsdtools/core/core/detector"
	"github.com/ebsdtools/core/core/detectorconfig"
	"github.com/ebsdtools/core/core/fileaccess"
	"github.com/ebsdtools/core/core/logger"
)

func main() {
	var configName string
	var configDir string
	var configBucket string
	var toConvention string
	var saveAs string
	var logLevelName string

	flag.StringVar(&configName, "config", "", "Name of the detector config to read")
	flag.StringVar(&configDir, "dir", ".", "Local directory holding configs (ignored if -bucket given)")
	flag.StringVar(&configBucket, "bucket", "", "S3 bucket holding configs")
	flag.StringVar(&toConvention, "to", "bruker", "Convention to convert to: bruker, tsl, oxford, emsoft4, emsoft5")
	flag.StringVar(&saveAs, "saveAs", "", "If set, saves the converted config under this name")
	flag.StringVar(&logLevelName, "log", "INFO", "Log level: DEBUG, INFO or ERROR")

	flag.Parse()

	if len(configName) <= 0 {
		log.Fatalf("Parameter: config was empty")
	}

	logLevel, err := logger.ParseLogLevel(logLevelName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	iLog := &logger.StdErrLogger{}
	iLog.SetLogLevel(logLevel)

	// Local dir unless a bucket was named
	var fs fileaccess.FileAccess = &fileaccess.FSAccess{}
	bucket := configDir
	if len(configBucket) > 0 {
		sess, err := awsutil.GetSession()
		if err != nil {
			log.Fatalf("Failed to create AWS session: %v", err)
		}
		s3svc, err := awsutil.GetS3(sess)
		if err != nil {
			log.Fatalf("Failed to create AWS S3 service: %v", err)
		}

		fs = fileaccess.MakeS3Access(s3svc)
		bucket = configBucket
		iLog.Debugf("Reading configs from S3 bucket: %v", bucket)
	}

	conv, err := detector.ParseConvention(toConvention)
	if err != nil {
		log.Fatalf("%v", err)
	}

	geom, storedConv, err := detectorconfig.Load(fs, bucket, configName)
	if err != nil {
		log.Fatalf("Failed to load config %v: %v", configName, err)
	}

	iLog.Infof("Loaded config %v: %vx%v px, binning %v, stored convention %v", configName, geom.Description().Columns, geom.Description().Rows, geom.Description().Binning, storedConv)
	iLog.Infof("Navigation shape: %v (%v PCs)", geom.NavigationShape(), geom.PCBruker().Count())

	converted, err := geom.PC(conv)
	if err != nil {
		log.Fatalf("Failed to convert to %v: %v", conv, err)
	}

	bounds, err := geom.GnomonicBounds()
	if err != nil {
		log.Fatalf("Failed to compute gnomonic bounds: %v", err)
	}
	rMax, err := geom.RMax()
	if err != nil {
		log.Fatalf("Failed to compute r_max: %v", err)
	}
	scales, err := geom.GnomonicScale()
	if err != nil {
		log.Fatalf("Failed to compute gnomonic scale: %v", err)
	}

	for c := 0; c < converted.Count(); c++ {
		x, y, z := converted.Triple(c)
		iLog.Infof("PC[%v] %v: (%.6f, %.6f, %.6f)  gnomonic x: (%.4f, %.4f) y: (%.4f, %.4f) scale: (%.6f, %.6f)/px r_max: %.4f",
			c, conv, x, y, z, bounds[c].XMin, bounds[c].XMax, bounds[c].YMin, bounds[c].YMax, scales[c].X, scales[c].Y, rMax[c])
	}

	if len(saveAs) > 0 {
		if err := detectorconfig.Save(fs, bucket, saveAs, geom, conv); err != nil {
			log.Fatalf("Failed to save config %v: %v", saveAs, err)
		}
		iLog.Infof("Saved converted config as: %v", saveAs)
	}
}
