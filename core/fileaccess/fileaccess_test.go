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

package fileaccess

import (
	"testing"
)

type testRecord struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Both the local and memory implementations should behave the same through
// the interface, so run them through the same scenario
func runFileAccessScenario(t *testing.T, fs FileAccess, bucket string) {
	item := testRecord{Name: "timing", Value: 1.25}
	if err := fs.WriteJSON(bucket, "configs/timing.json", &item); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	readBack := testRecord{}
	if err := fs.ReadJSON(bucket, "configs/timing.json", &readBack, false); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if readBack != item {
		t.Errorf("Read back %+v, wrote %+v", readBack, item)
	}

	listing, err := fs.ListObjects(bucket, "configs")
	if err != nil {
		t.Fatalf("ListObjects failed: %v", err)
	}
	if len(listing) != 1 || listing[0] != "configs/timing.json" {
		t.Errorf("Unexpected listing: %v", listing)
	}

	// Missing objects: error must be recognised as not-found, and
	// emptyIfNotFound must swallow it
	_, err = fs.ReadObject(bucket, "configs/missing.json")
	if err == nil {
		t.Fatalf("Expected missing object read to fail")
	}
	if !fs.IsNotFoundError(err) {
		t.Errorf("Expected not-found error, got: %v", err)
	}

	empty := testRecord{}
	if err = fs.ReadJSON(bucket, "configs/missing.json", &empty, true); err != nil {
		t.Errorf("Expected emptyIfNotFound to swallow missing object, got: %v", err)
	}

	if err = fs.DeleteObject(bucket, "configs/timing.json"); err != nil {
		t.Fatalf("DeleteObject failed: %v", err)
	}
	_, err = fs.ReadObject(bucket, "configs/timing.json")
	if !fs.IsNotFoundError(err) {
		t.Errorf("Expected object to be gone after delete")
	}
}

func TestLocalFileAccess(t *testing.T) {
	runFileAccessScenario(t, &FSAccess{}, t.TempDir())
}

func TestMemoryFileAccess(t *testing.T) {
	runFileAccessScenario(t, MakeMemoryAccess(), "test-bucket")
}
