// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package irkind defines kinds for the Tern intermediate representation (IR).
package irkind

// Scalar is the element kind of a numeric type.
type Scalar uint

// Element kinds supported by Tern.
const (
	// Int is a signed integer.
	Int Scalar = iota
	// Uint is an unsigned integer.
	Uint
	// Float is a floating point number.
	Float
)

// String representation of the scalar kind.
func (s Scalar) String() string {
	switch s {
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Float:
		return "float"
	}
	return "invalid"
}

// CallKind tells how a Call node resolves its target name.
type CallKind uint

const (
	// Image reads from an input buffer.
	Image CallKind = iota
	// Extern invokes a function external to the pipeline.
	Extern
	// Stage invokes another stage of the pipeline.
	Stage
)

// String representation of the call kind.
func (k CallKind) String() string {
	switch k {
	case Image:
		return "image"
	case Extern:
		return "extern"
	case Stage:
		return "stage"
	}
	return "invalid"
}

// LoopKind is the execution strategy of a For loop.
// It is a scheduling directive carried by the loop node itself.
type LoopKind uint

const (
	// Serial executes iterations one after the other.
	Serial LoopKind = iota
	// Parallel executes iterations concurrently.
	Parallel
	// Vectorized executes all iterations as the lanes of a vector operation.
	Vectorized
	// Unrolled replicates the body once per iteration.
	Unrolled
)

// String representation of the loop kind.
func (k LoopKind) String() string {
	switch k {
	case Serial:
		return "serial"
	case Parallel:
		return "parallel"
	case Vectorized:
		return "vectorized"
	case Unrolled:
		return "unrolled"
	}
	return "invalid"
}
