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

package ir_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tern-lang/tern/build/ir"
	"github.com/tern-lang/tern/build/ir/irkind"
)

func TestTypeConstructors(t *testing.T) {
	tests := []struct {
		got  ir.Type
		want ir.Type
		str  string
	}{
		{ir.Int(32), ir.Type{Kind: irkind.Int, Bits: 32, Lanes: 1}, "int32"},
		{ir.Int(8, 16), ir.Type{Kind: irkind.Int, Bits: 8, Lanes: 16}, "int8x16"},
		{ir.UInt(1), ir.Type{Kind: irkind.Uint, Bits: 1, Lanes: 1}, "uint1"},
		{ir.UInt(16, 8), ir.Type{Kind: irkind.Uint, Bits: 16, Lanes: 8}, "uint16x8"},
		{ir.Float(32), ir.Type{Kind: irkind.Float, Bits: 32, Lanes: 1}, "float32"},
		{ir.Float(64, 4), ir.Type{Kind: irkind.Float, Bits: 64, Lanes: 4}, "float64x4"},
	}
	for _, test := range tests {
		if !cmp.Equal(test.got, test.want) {
			t.Errorf("got %#v but want %#v", test.got, test.want)
		}
		if got := test.got.String(); got != test.str {
			t.Errorf("got string %q but want %q", got, test.str)
		}
	}
}

func TestTypeLanes(t *testing.T) {
	scalar := ir.Float(32)
	vector := ir.Float(32, 8)
	if !scalar.Scalar() || scalar.Vector() {
		t.Errorf("%s is not classified as a scalar", scalar)
	}
	if vector.Scalar() || !vector.Vector() {
		t.Errorf("%s is not classified as a vector", vector)
	}
	if got := vector.Elem(); !cmp.Equal(got, scalar) {
		t.Errorf("got element type %s but want %s", got, scalar)
	}
}

func TestTypeValueSemantics(t *testing.T) {
	a := ir.Int(32)
	b := a
	b.Bits = 64
	if a.Bits != 32 {
		t.Error("copying a type shares its fields")
	}
	if a != ir.Int(32) {
		t.Error("canonical construction does not compare equal by value")
	}
}
