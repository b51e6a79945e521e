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

import "fmt"

// Every error here is a caller contract violation, detected and returned at
// the point it happens. There are no transient failures in a pure geometry
// calculation, so nothing is retried or silently recovered.

// ShapeError - a PC array whose trailing axis isn't length 3, or an array
// whose rank doesn't suit the operation requested
type ShapeError struct {
	Err error
}

func (e ShapeError) Error() string {
	return e.Err.Error()
}

func MakeShapeError(format string, a ...interface{}) ShapeError {
	return ShapeError{Err: fmt.Errorf(format, a...)}
}

// ConventionError - an unrecognised projection centre convention tag
type ConventionError struct {
	Err error
}

func (e ConventionError) Error() string {
	return e.Err.Error()
}

func MakeConventionError(tag string) ConventionError {
	return ConventionError{Err: fmt.Errorf("unknown projection centre convention: \"%v\"", tag)}
}

// GeometryError - a physically meaningless configuration, eg asking to
// project through a PC whose working distance is zero or negative
type GeometryError struct {
	Err error
}

func (e GeometryError) Error() string {
	return e.Err.Error()
}

func MakeGeometryError(format string, a ...interface{}) GeometryError {
	return GeometryError{Err: fmt.Errorf(format, a...)}
}

// ValidationError - bad static detector parameters at construction
type ValidationError struct {
	Err error
}

func (e ValidationError) Error() string {
	return e.Err.Error()
}

func MakeValidationError(format string, a ...interface{}) ValidationError {
	return ValidationError{Err: fmt.Errorf(format, a...)}
}
