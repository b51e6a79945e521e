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

package logger

import "testing"

// All writers must satisfy the interface
var _ ILogger = &StdOutLogger{}
var _ ILogger = &StdErrLogger{}
var _ ILogger = &NullLogger{}

func TestParseLogLevel(t *testing.T) {
	for _, level := range []LogLevel{LogDebug, LogInfo, LogError} {
		parsed, err := ParseLogLevel(GetLogLevelName(level))
		if err != nil {
			t.Errorf("Failed to parse level name %v: %v", GetLogLevelName(level), err)
		}
		if parsed != level {
			t.Errorf("Level %v parsed back as %v", level, parsed)
		}
	}

	if _, err := ParseLogLevel("CHATTY"); err == nil {
		t.Errorf("Expected unknown level name to fail")
	}
	// Names are case sensitive like the flags that feed them
	if _, err := ParseLogLevel("info"); err == nil {
		t.Errorf("Expected lowercase level name to fail")
	}
}
