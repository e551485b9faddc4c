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

	"github.com/tern-lang/tern/build/ir"
	"github.com/tern-lang/tern/build/ir/irhelper"
)

func TestHandleDefined(t *testing.T) {
	var empty ir.Expr
	if ir.Defined(empty) {
		t.Error("the empty handle is defined")
	}
	if !ir.Defined(ir.NewIntImm(5)) {
		t.Error("a constructed node is not defined")
	}
}

func TestHandleSameAs(t *testing.T) {
	five := ir.NewIntImm(5)
	copied := five
	other := ir.NewIntImm(5)

	if !ir.SameAs(five, copied) {
		t.Error("a handle is not the same as its copy")
	}
	if ir.SameAs(five, other) {
		t.Error("two separately constructed nodes are the same")
	}
	var a, b ir.Expr
	if !ir.SameAs(a, b) {
		t.Error("two empty handles are not the same")
	}
	if ir.SameAs(a, five) {
		t.Error("the empty handle is the same as a node")
	}
}

// buildSum returns a copy of a handle whose original goes out of scope when
// the function returns.
func buildSum() ir.Expr {
	sum := irhelper.Add(ir.NewIntImm(1), ir.NewIntImm(2))
	copied := ir.Expr(sum)
	return copied
}

func TestHandleSharing(t *testing.T) {
	sum := buildSum()
	if !ir.Defined(sum) {
		t.Fatal("the copied handle does not refer to a live node")
	}
	recorded := record(sum)
	if got, want := len(recorded), 1; got != want {
		t.Fatalf("dispatch fired %d operations but want %d", got, want)
	}
	if recorded[0] != "Add" {
		t.Errorf("dispatch routed to %s but want Add", recorded[0])
	}
}

func TestHandleDAGSharing(t *testing.T) {
	// One node referenced from two parents: sharing a sub-tree never
	// copies it.
	shared := irhelper.Add(ir.NewIntImm(1), ir.NewIntImm(2))
	left := irhelper.Mul(shared, ir.NewIntImm(3))
	right := irhelper.Sub(shared, ir.NewIntImm(4))

	if !ir.SameAs(left.A, right.A) {
		t.Error("the two parents do not share the same child node")
	}
}
