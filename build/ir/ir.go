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

// Package ir is the Tern intermediate representation (IR) tree.
//
// The tree is built bottom-up by a frontend or a rewrite pass calling the
// New* constructors in this package. Every node is immutable once
// constructed: no field is ever written after its constructor returns.
// A node may be referenced from several parents at once, so a program is a
// DAG rather than a strict tree; sharing a sub-tree is copying a handle,
// never a deep copy.
//
// The set of node kinds is closed. Behaviors over the tree are open:
// external passes implement Visitor (one method per kind) and drive
// traversal themselves. No node traverses its own children.
package ir

import "github.com/tern-lang/tern/build/ir/irkind"

// ----------------------------------------------------------------------------
// Kinds of node in the tree.
type (
	// Node in the tree.
	Node interface {
		// node marks a structure as a node structure.
		// It prevents external implementations of the interface.
		node()

		// Accept dispatches to the Visitor method for the node's concrete kind.
		Accept(Visitor)
	}

	// Expr is a handle to a node computing a value of some Type.
	// A nil Expr is the empty handle, used for absent optional children.
	Expr interface {
		Node
		exprNode()
	}

	// Stmt is a handle to a node with an effect but no value.
	// A nil Stmt is the empty handle, used for absent optional children.
	Stmt interface {
		Node
		stmtNode()
	}
)

// ----------------------------------------------------------------------------
// Expressions.
type (
	// IntImm is an integer immediate.
	IntImm struct {
		Value int64
	}

	// FloatImm is a floating point immediate.
	FloatImm struct {
		Value float64
	}

	// Cast reinterprets the value of an expression as another type.
	Cast struct {
		Typ   Type
		Value Expr
	}

	// Var is a free reference to a named binding. It is resolved against
	// the environment maintained by the traversal, typically built from
	// the enclosing Let, LetStmt, and For nodes.
	Var struct {
		Typ  Type
		Name string
	}

	// Add computes A plus B.
	Add struct {
		A, B Expr
	}

	// Sub computes A minus B.
	Sub struct {
		A, B Expr
	}

	// Mul computes A times B.
	Mul struct {
		A, B Expr
	}

	// Div computes A divided by B.
	Div struct {
		A, B Expr
	}

	// Mod computes A modulo B.
	Mod struct {
		A, B Expr
	}

	// Min computes the smaller of A and B.
	Min struct {
		A, B Expr
	}

	// Max computes the larger of A and B.
	Max struct {
		A, B Expr
	}

	// EQ tests A equal to B.
	EQ struct {
		A, B Expr
	}

	// NE tests A not equal to B.
	NE struct {
		A, B Expr
	}

	// LT tests A less than B.
	LT struct {
		A, B Expr
	}

	// LE tests A less than or equal to B.
	LE struct {
		A, B Expr
	}

	// GT tests A greater than B.
	GT struct {
		A, B Expr
	}

	// GE tests A greater than or equal to B.
	GE struct {
		A, B Expr
	}

	// And is the boolean conjunction of A and B.
	And struct {
		A, B Expr
	}

	// Or is the boolean disjunction of A and B.
	Or struct {
		A, B Expr
	}

	// Not is the boolean negation of X.
	Not struct {
		X Expr
	}

	// Select evaluates to True where Cond holds and to False elsewhere.
	Select struct {
		Cond  Expr
		True  Expr
		False Expr
	}

	// Load reads one element of a named buffer at a linear index.
	Load struct {
		Typ    Type
		Buffer string
		Index  Expr
	}

	// Ramp is the vector [Base, Base+Stride, ..., Base+(Lanes-1)*Stride].
	Ramp struct {
		Base   Expr
		Stride Expr
		Lanes  int
	}

	// Call applies a named target to arguments. The kind tells whether the
	// target is an input image, an external function, or another stage of
	// the pipeline.
	Call struct {
		Typ  Type
		Name string
		Args []Expr
		Kind irkind.CallKind
	}

	// Let binds Name to Value within Body. The binding is scoped to Body.
	Let struct {
		Name  string
		Value Expr
		Body  Expr
	}
)

// ----------------------------------------------------------------------------
// Statements.
type (
	// LetStmt binds Name to Value within the Body statement.
	LetStmt struct {
		Name  string
		Value Expr
		Body  Stmt
	}

	// PrintStmt emits a prefix followed by the values of Args.
	PrintStmt struct {
		Prefix string
		Args   []Expr
	}

	// AssertStmt aborts with Message if Cond does not hold.
	AssertStmt struct {
		Cond    Expr
		Message string
	}

	// Pipeline is the three-phase computation of one named buffer:
	// Produce fills it, the optional Update rewrites it in place, and
	// Consume is the code depending on it. Update may be the empty handle.
	Pipeline struct {
		Buffer  string
		Produce Stmt
		Update  Stmt
		Consume Stmt
	}

	// For runs Body with Name bound to each of the Extent values starting
	// at Min. The loop kind is the execution strategy baked into the IR.
	For struct {
		Name   string
		Min    Expr
		Extent Expr
		Kind   irkind.LoopKind
		Body   Stmt
	}

	// Store writes Value to one element of a named buffer at a linear index.
	Store struct {
		Buffer string
		Value  Expr
		Index  Expr
	}

	// Provide writes Value at a symbolic multi-dimensional coordinate of a
	// buffer that has not been realized to concrete storage yet.
	Provide struct {
		Buffer string
		Value  Expr
		Args   []Expr
	}

	// Allocate brackets Body with the lifetime of a buffer of Size
	// elements addressed linearly.
	Allocate struct {
		Buffer string
		Typ    Type
		Size   Expr
		Body   Stmt
	}

	// Realize brackets Body with the lifetime of a buffer addressed
	// symbolically, one (min, extent) interval per dimension.
	Realize struct {
		Buffer string
		Typ    Type
		Bounds []Bound
		Body   Stmt
	}

	// Block runs First, then the optional Rest. Chaining Blocks through
	// Rest forms an ordered sequence of statements; the empty handle
	// terminates the sequence.
	Block struct {
		First Stmt
		Rest  Stmt
	}
)

// Bound is the (min, extent) interval of one Realize dimension.
// Bound is not a node: it only exists inside a Realize.
type Bound struct {
	Min    Expr
	Extent Expr
}

// ----------------------------------------------------------------------------
// Node markers.

func (*IntImm) node()     {}
func (*FloatImm) node()   {}
func (*Cast) node()       {}
func (*Var) node()        {}
func (*Add) node()        {}
func (*Sub) node()        {}
func (*Mul) node()        {}
func (*Div) node()        {}
func (*Mod) node()        {}
func (*Min) node()        {}
func (*Max) node()        {}
func (*EQ) node()         {}
func (*NE) node()         {}
func (*LT) node()         {}
func (*LE) node()         {}
func (*GT) node()         {}
func (*GE) node()         {}
func (*And) node()        {}
func (*Or) node()         {}
func (*Not) node()        {}
func (*Select) node()     {}
func (*Load) node()       {}
func (*Ramp) node()       {}
func (*Call) node()       {}
func (*Let) node()        {}
func (*LetStmt) node()    {}
func (*PrintStmt) node()  {}
func (*AssertStmt) node() {}
func (*Pipeline) node()   {}
func (*For) node()        {}
func (*Store) node()      {}
func (*Provide) node()    {}
func (*Allocate) node()   {}
func (*Realize) node()    {}
func (*Block) node()      {}

func (*IntImm) exprNode()   {}
func (*FloatImm) exprNode() {}
func (*Cast) exprNode()     {}
func (*Var) exprNode()      {}
func (*Add) exprNode()      {}
func (*Sub) exprNode()      {}
func (*Mul) exprNode()      {}
func (*Div) exprNode()      {}
func (*Mod) exprNode()      {}
func (*Min) exprNode()      {}
func (*Max) exprNode()      {}
func (*EQ) exprNode()       {}
func (*NE) exprNode()       {}
func (*LT) exprNode()       {}
func (*LE) exprNode()       {}
func (*GT) exprNode()       {}
func (*GE) exprNode()       {}
func (*And) exprNode()      {}
func (*Or) exprNode()       {}
func (*Not) exprNode()      {}
func (*Select) exprNode()   {}
func (*Load) exprNode()     {}
func (*Ramp) exprNode()     {}
func (*Call) exprNode()     {}
func (*Let) exprNode()      {}

func (*LetStmt) stmtNode()    {}
func (*PrintStmt) stmtNode()  {}
func (*AssertStmt) stmtNode() {}
func (*Pipeline) stmtNode()   {}
func (*For) stmtNode()        {}
func (*Store) stmtNode()      {}
func (*Provide) stmtNode()    {}
func (*Allocate) stmtNode()   {}
func (*Realize) stmtNode()    {}
func (*Block) stmtNode()      {}

var (
	_ Expr = (*IntImm)(nil)
	_ Expr = (*FloatImm)(nil)
	_ Expr = (*Cast)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Add)(nil)
	_ Expr = (*Sub)(nil)
	_ Expr = (*Mul)(nil)
	_ Expr = (*Div)(nil)
	_ Expr = (*Mod)(nil)
	_ Expr = (*Min)(nil)
	_ Expr = (*Max)(nil)
	_ Expr = (*EQ)(nil)
	_ Expr = (*NE)(nil)
	_ Expr = (*LT)(nil)
	_ Expr = (*LE)(nil)
	_ Expr = (*GT)(nil)
	_ Expr = (*GE)(nil)
	_ Expr = (*And)(nil)
	_ Expr = (*Or)(nil)
	_ Expr = (*Not)(nil)
	_ Expr = (*Select)(nil)
	_ Expr = (*Load)(nil)
	_ Expr = (*Ramp)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Let)(nil)

	_ Stmt = (*LetStmt)(nil)
	_ Stmt = (*PrintStmt)(nil)
	_ Stmt = (*AssertStmt)(nil)
	_ Stmt = (*Pipeline)(nil)
	_ Stmt = (*For)(nil)
	_ Stmt = (*Store)(nil)
	_ Stmt = (*Provide)(nil)
	_ Stmt = (*Allocate)(nil)
	_ Stmt = (*Realize)(nil)
	_ Stmt = (*Block)(nil)
)
