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
	"github.com/tern-lang/tern/build/irerr"
)

// Constructors validate their invariants once, here, and never again: a node
// returned without error is trusted immutable and well-formed for the rest of
// its life. On a violation the constructor returns a nil node and an
// *irerr.Violation describing every broken invariant; no malformed node is
// ever observable.

func check(errs *irerr.Appender, field string, n Node) {
	if !Defined(n) {
		errs.Undefined(field)
	}
}

func checkAll(errs *irerr.Appender, field string, args []Expr) {
	for i, arg := range args {
		if !Defined(arg) {
			errs.Undefined(fmt.Sprintf("%s[%d]", field, i))
		}
	}
}

func checkBinary(kind string, a, b Expr) error {
	errs := irerr.NewAppender(kind)
	check(errs, "a", a)
	check(errs, "b", b)
	return errs.Err()
}

// ----------------------------------------------------------------------------
// Expressions.

// NewIntImm returns an integer immediate.
func NewIntImm(value int64) *IntImm {
	return &IntImm{Value: value}
}

// NewFloatImm returns a floating point immediate.
func NewFloatImm(value float64) *FloatImm {
	return &FloatImm{Value: value}
}

// NewCast returns value reinterpreted as typ.
func NewCast(typ Type, value Expr) (*Cast, error) {
	if !Defined(value) {
		return nil, irerr.Undefined("Cast", "value")
	}
	return &Cast{Typ: typ, Value: value}, nil
}

// NewVar returns a free reference to the binding of name.
func NewVar(typ Type, name string) *Var {
	return &Var{Typ: typ, Name: name}
}

// NewAdd returns the sum of a and b.
func NewAdd(a, b Expr) (*Add, error) {
	if err := checkBinary("Add", a, b); err != nil {
		return nil, err
	}
	return &Add{A: a, B: b}, nil
}

// NewSub returns the difference of a and b.
func NewSub(a, b Expr) (*Sub, error) {
	if err := checkBinary("Sub", a, b); err != nil {
		return nil, err
	}
	return &Sub{A: a, B: b}, nil
}

// NewMul returns the product of a and b.
func NewMul(a, b Expr) (*Mul, error) {
	if err := checkBinary("Mul", a, b); err != nil {
		return nil, err
	}
	return &Mul{A: a, B: b}, nil
}

// NewDiv returns the quotient of a and b.
func NewDiv(a, b Expr) (*Div, error) {
	if err := checkBinary("Div", a, b); err != nil {
		return nil, err
	}
	return &Div{A: a, B: b}, nil
}

// NewMod returns a modulo b.
func NewMod(a, b Expr) (*Mod, error) {
	if err := checkBinary("Mod", a, b); err != nil {
		return nil, err
	}
	return &Mod{A: a, B: b}, nil
}

// NewMin returns the smaller of a and b.
func NewMin(a, b Expr) (*Min, error) {
	if err := checkBinary("Min", a, b); err != nil {
		return nil, err
	}
	return &Min{A: a, B: b}, nil
}

// NewMax returns the larger of a and b.
func NewMax(a, b Expr) (*Max, error) {
	if err := checkBinary("Max", a, b); err != nil {
		return nil, err
	}
	return &Max{A: a, B: b}, nil
}

// NewEQ returns the comparison a == b.
func NewEQ(a, b Expr) (*EQ, error) {
	if err := checkBinary("EQ", a, b); err != nil {
		return nil, err
	}
	return &EQ{A: a, B: b}, nil
}

// NewNE returns the comparison a != b.
func NewNE(a, b Expr) (*NE, error) {
	if err := checkBinary("NE", a, b); err != nil {
		return nil, err
	}
	return &NE{A: a, B: b}, nil
}

// NewLT returns the comparison a < b.
func NewLT(a, b Expr) (*LT, error) {
	if err := checkBinary("LT", a, b); err != nil {
		return nil, err
	}
	return &LT{A: a, B: b}, nil
}

// NewLE returns the comparison a <= b.
func NewLE(a, b Expr) (*LE, error) {
	if err := checkBinary("LE", a, b); err != nil {
		return nil, err
	}
	return &LE{A: a, B: b}, nil
}

// NewGT returns the comparison a > b.
func NewGT(a, b Expr) (*GT, error) {
	if err := checkBinary("GT", a, b); err != nil {
		return nil, err
	}
	return &GT{A: a, B: b}, nil
}

// NewGE returns the comparison a >= b.
func NewGE(a, b Expr) (*GE, error) {
	if err := checkBinary("GE", a, b); err != nil {
		return nil, err
	}
	return &GE{A: a, B: b}, nil
}

// NewAnd returns the conjunction of a and b.
func NewAnd(a, b Expr) (*And, error) {
	if err := checkBinary("And", a, b); err != nil {
		return nil, err
	}
	return &And{A: a, B: b}, nil
}

// NewOr returns the disjunction of a and b.
func NewOr(a, b Expr) (*Or, error) {
	if err := checkBinary("Or", a, b); err != nil {
		return nil, err
	}
	return &Or{A: a, B: b}, nil
}

// NewNot returns the negation of x.
func NewNot(x Expr) (*Not, error) {
	if !Defined(x) {
		return nil, irerr.Undefined("Not", "x")
	}
	return &Not{X: x}, nil
}

// NewSelect returns an expression evaluating to trueValue where cond holds
// and to falseValue elsewhere.
func NewSelect(cond, trueValue, falseValue Expr) (*Select, error) {
	errs := irerr.NewAppender("Select")
	check(errs, "cond", cond)
	check(errs, "trueValue", trueValue)
	check(errs, "falseValue", falseValue)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &Select{Cond: cond, True: trueValue, False: falseValue}, nil
}

// NewLoad returns a read of buffer at index.
func NewLoad(typ Type, buffer string, index Expr) (*Load, error) {
	if !Defined(index) {
		return nil, irerr.Undefined("Load", "index")
	}
	return &Load{Typ: typ, Buffer: buffer, Index: index}, nil
}

// NewRamp returns the vector of lanes elements starting at base and
// increasing by stride. The lane count must be positive.
func NewRamp(base, stride Expr, lanes int) (*Ramp, error) {
	errs := irerr.NewAppender("Ramp")
	check(errs, "base", base)
	check(errs, "stride", stride)
	if lanes <= 0 {
		errs.Appendf("lanes is %d, want > 0", lanes)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &Ramp{Base: base, Stride: stride, Lanes: lanes}, nil
}

// NewCall returns an application of the named target to args.
func NewCall(typ Type, name string, args []Expr, kind irkind.CallKind) (*Call, error) {
	errs := irerr.NewAppender("Call")
	checkAll(errs, "args", args)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &Call{Typ: typ, Name: name, Args: args, Kind: kind}, nil
}

// NewLet returns body with name bound to value within it.
func NewLet(name string, value, body Expr) (*Let, error) {
	errs := irerr.NewAppender("Let")
	check(errs, "value", value)
	check(errs, "body", body)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &Let{Name: name, Value: value, Body: body}, nil
}

// ----------------------------------------------------------------------------
// Statements.

// NewLetStmt returns body with name bound to value within it.
func NewLetStmt(name string, value Expr, body Stmt) (*LetStmt, error) {
	errs := irerr.NewAppender("LetStmt")
	check(errs, "value", value)
	check(errs, "body", body)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &LetStmt{Name: name, Value: value, Body: body}, nil
}

// NewPrint returns a statement emitting prefix followed by the values of args.
func NewPrint(prefix string, args []Expr) (*PrintStmt, error) {
	errs := irerr.NewAppender("PrintStmt")
	checkAll(errs, "args", args)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &PrintStmt{Prefix: prefix, Args: args}, nil
}

// NewAssert returns a statement aborting with message if cond does not hold.
func NewAssert(cond Expr, message string) (*AssertStmt, error) {
	if !Defined(cond) {
		return nil, irerr.Undefined("AssertStmt", "cond")
	}
	return &AssertStmt{Cond: cond, Message: message}, nil
}

// NewPipeline returns the staged computation of buffer: produce fills it,
// update optionally rewrites it in place, consume depends on it.
// The update statement may be the empty handle; produce and consume may not.
func NewPipeline(buffer string, produce, update, consume Stmt) (*Pipeline, error) {
	errs := irerr.NewAppender("Pipeline")
	check(errs, "produce", produce)
	check(errs, "consume", consume)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &Pipeline{Buffer: buffer, Produce: produce, Update: update, Consume: consume}, nil
}

// NewFor returns a loop running body with name bound to each of the extent
// values starting at min, using the given execution strategy.
func NewFor(name string, min, extent Expr, kind irkind.LoopKind, body Stmt) (*For, error) {
	errs := irerr.NewAppender("For")
	check(errs, "min", min)
	check(errs, "extent", extent)
	check(errs, "body", body)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &For{Name: name, Min: min, Extent: extent, Kind: kind, Body: body}, nil
}

// NewStore returns a write of value to buffer at index.
func NewStore(buffer string, value, index Expr) (*Store, error) {
	errs := irerr.NewAppender("Store")
	check(errs, "value", value)
	check(errs, "index", index)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &Store{Buffer: buffer, Value: value, Index: index}, nil
}

// NewProvide returns a write of value to buffer at the symbolic
// multi-dimensional coordinate args.
func NewProvide(buffer string, value Expr, args []Expr) (*Provide, error) {
	errs := irerr.NewAppender("Provide")
	check(errs, "value", value)
	checkAll(errs, "args", args)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &Provide{Buffer: buffer, Value: value, Args: args}, nil
}

// NewAllocate returns body bracketed by the lifetime of a linear buffer of
// size elements.
func NewAllocate(buffer string, typ Type, size Expr, body Stmt) (*Allocate, error) {
	errs := irerr.NewAppender("Allocate")
	check(errs, "size", size)
	check(errs, "body", body)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &Allocate{Buffer: buffer, Typ: typ, Size: size, Body: body}, nil
}

// NewRealize returns body bracketed by the lifetime of a symbolic buffer with
// one (min, extent) interval per dimension.
func NewRealize(buffer string, typ Type, bounds []Bound, body Stmt) (*Realize, error) {
	errs := irerr.NewAppender("Realize")
	for i, bound := range bounds {
		if !Defined(bound.Min) {
			errs.Undefined(fmt.Sprintf("bounds[%d].min", i))
		}
		if !Defined(bound.Extent) {
			errs.Undefined(fmt.Sprintf("bounds[%d].extent", i))
		}
	}
	check(errs, "body", body)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &Realize{Buffer: buffer, Typ: typ, Bounds: bounds, Body: body}, nil
}

// NewBlock returns a statement running first, then the optional rest.
// The rest statement may be the empty handle; first may not.
func NewBlock(first, rest Stmt) (*Block, error) {
	if !Defined(first) {
		return nil, irerr.Undefined("Block", "first")
	}
	return &Block{First: first, Rest: rest}, nil
}
