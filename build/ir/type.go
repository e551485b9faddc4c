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

package ir

import (
	"fmt"

	"github.com/tern-lang/tern/build/ir/irkind"
)

// Type describes the numeric type of a value computed by an expression.
// A type is a value: it is copied and compared by value and never mutated.
//
// Lanes is the vector width of the value: 1 denotes a scalar, more than 1
// a vector of that many elements of the same scalar kind.
//
// Bits and Lanes are expected to be positive. This is a precondition of the
// constructors below, not a checked invariant.
type Type struct {
	Kind  irkind.Scalar
	Bits  int
	Lanes int
}

func width(lanes []int) int {
	if len(lanes) == 0 {
		return 1
	}
	return lanes[0]
}

// Int returns a signed integer type of the given bit width.
// The lane count defaults to 1.
func Int(bits int, lanes ...int) Type {
	return Type{Kind: irkind.Int, Bits: bits, Lanes: width(lanes)}
}

// UInt returns an unsigned integer type of the given bit width.
// The lane count defaults to 1.
func UInt(bits int, lanes ...int) Type {
	return Type{Kind: irkind.Uint, Bits: bits, Lanes: width(lanes)}
}

// Float returns a floating point type of the given bit width.
// The lane count defaults to 1.
func Float(bits int, lanes ...int) Type {
	return Type{Kind: irkind.Float, Bits: bits, Lanes: width(lanes)}
}

// Scalar returns true if the type has a single lane.
func (t Type) Scalar() bool {
	return t.Lanes == 1
}

// Vector returns true if the type has more than one lane.
func (t Type) Vector() bool {
	return t.Lanes > 1
}

// Elem returns the scalar type of one lane.
func (t Type) Elem() Type {
	t.Lanes = 1
	return t
}

// String representation of the type, for example int32 or float32x8.
func (t Type) String() string {
	s := fmt.Sprintf("%s%d", t.Kind.String(), t.Bits)
	if t.Lanes != 1 {
		s = fmt.Sprintf("%sx%d", s, t.Lanes)
	}
	return s
}
