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

// A handle is an Expr or Stmt interface value: a shared reference to an
// immutable node. A handle is either empty (nil, no referent) or present.
// Copying a handle shares the node with every other holder; a node stays
// alive as long as any handle refers to it and is reclaimed by the garbage
// collector once the last handle is dropped. No holder ever frees a node
// explicitly.
//
// Because nodes are immutable, any number of goroutines may traverse shared
// sub-trees concurrently without locking. Building trees, in contrast, is a
// single-owner activity: handles are meant to be composed into larger nodes
// by one logical owner at a time.

// Defined returns true if the handle refers to a node.
func Defined(n Node) bool {
	return n != nil
}

// SameAs returns true if the two handles refer to the identical node.
//
// This is identity, not structure: two separately constructed nodes are
// never the same, however equal their fields. Structural equality is not
// defined by this package.
func SameAs(a, b Node) bool {
	return a == b
}
