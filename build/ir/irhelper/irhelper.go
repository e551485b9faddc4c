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

// Package irhelper provides helper functions to build IR programmatically.
//
// Each helper wraps the validating constructor of the ir package and panics
// on a construction violation. A violation is a bug in the calling code, so
// tests and generators building trees inline keep the error plumbing out of
// the way.
package irhelper

import (
	"golang.org/x/exp/constraints"

	"github.com/tern-lang/tern/base/uname"
	"github.com/tern-lang/tern/build/ir"
	"github.com/tern-lang/tern/build/ir/irkind"
)

func must[T ir.Node](n T, err error) T {
	if err != nil {
		panic(err)
	}
	return n
}

// Int returns an integer immediate.
func Int[T constraints.Integer](value T) *ir.IntImm {
	return ir.NewIntImm(int64(value))
}

// Float returns a floating point immediate.
func Float[T constraints.Float](value T) *ir.FloatImm {
	return ir.NewFloatImm(float64(value))
}

// Cast returns value reinterpreted as typ.
func Cast(typ ir.Type, value ir.Expr) *ir.Cast {
	return must(ir.NewCast(typ, value))
}

// Var returns a free reference to the binding of name.
func Var(typ ir.Type, name string) *ir.Var {
	return ir.NewVar(typ, name)
}

// Add returns the sum of a and b.
func Add(a, b ir.Expr) *ir.Add { return must(ir.NewAdd(a, b)) }

// Sub returns the difference of a and b.
func Sub(a, b ir.Expr) *ir.Sub { return must(ir.NewSub(a, b)) }

// Mul returns the product of a and b.
func Mul(a, b ir.Expr) *ir.Mul { return must(ir.NewMul(a, b)) }

// Div returns the quotient of a and b.
func Div(a, b ir.Expr) *ir.Div { return must(ir.NewDiv(a, b)) }

// Mod returns a modulo b.
func Mod(a, b ir.Expr) *ir.Mod { return must(ir.NewMod(a, b)) }

// Min returns the smaller of a and b.
func Min(a, b ir.Expr) *ir.Min { return must(ir.NewMin(a, b)) }

// Max returns the larger of a and b.
func Max(a, b ir.Expr) *ir.Max { return must(ir.NewMax(a, b)) }

// EQ returns the comparison a == b.
func EQ(a, b ir.Expr) *ir.EQ { return must(ir.NewEQ(a, b)) }

// NE returns the comparison a != b.
func NE(a, b ir.Expr) *ir.NE { return must(ir.NewNE(a, b)) }

// LT returns the comparison a < b.
func LT(a, b ir.Expr) *ir.LT { return must(ir.NewLT(a, b)) }

// LE returns the comparison a <= b.
func LE(a, b ir.Expr) *ir.LE { return must(ir.NewLE(a, b)) }

// GT returns the comparison a > b.
func GT(a, b ir.Expr) *ir.GT { return must(ir.NewGT(a, b)) }

// GE returns the comparison a >= b.
func GE(a, b ir.Expr) *ir.GE { return must(ir.NewGE(a, b)) }

// And returns the conjunction of a and b.
func And(a, b ir.Expr) *ir.And { return must(ir.NewAnd(a, b)) }

// Or returns the disjunction of a and b.
func Or(a, b ir.Expr) *ir.Or { return must(ir.NewOr(a, b)) }

// Not returns the negation of x.
func Not(x ir.Expr) *ir.Not { return must(ir.NewNot(x)) }

// Select returns trueValue where cond holds and falseValue elsewhere.
func Select(cond, trueValue, falseValue ir.Expr) *ir.Select {
	return must(ir.NewSelect(cond, trueValue, falseValue))
}

// Load returns a read of buffer at index.
func Load(typ ir.Type, buffer string, index ir.Expr) *ir.Load {
	return must(ir.NewLoad(typ, buffer, index))
}

// Ramp returns the vector of lanes elements starting at base and increasing
// by stride.
func Ramp(base, stride ir.Expr, lanes int) *ir.Ramp {
	return must(ir.NewRamp(base, stride, lanes))
}

// Call returns an application of the named target to args.
func Call(typ ir.Type, name string, kind irkind.CallKind, args ...ir.Expr) *ir.Call {
	return must(ir.NewCall(typ, name, args, kind))
}

// Let returns body with name bound to value within it.
func Let(name string, value, body ir.Expr) *ir.Let {
	return must(ir.NewLet(name, value, body))
}

// LetStmt returns body with name bound to value within it.
func LetStmt(name string, value ir.Expr, body ir.Stmt) *ir.LetStmt {
	return must(ir.NewLetStmt(name, value, body))
}

// Print returns a statement emitting prefix followed by the values of args.
func Print(prefix string, args ...ir.Expr) *ir.PrintStmt {
	return must(ir.NewPrint(prefix, args))
}

// Assert returns a statement aborting with message if cond does not hold.
func Assert(cond ir.Expr, message string) *ir.AssertStmt {
	return must(ir.NewAssert(cond, message))
}

// Pipeline returns the staged computation of buffer. Update may be the
// empty handle.
func Pipeline(buffer string, produce, update, consume ir.Stmt) *ir.Pipeline {
	return must(ir.NewPipeline(buffer, produce, update, consume))
}

// For returns a loop running body with name bound to each of the extent
// values starting at min.
func For(name string, min, extent ir.Expr, kind irkind.LoopKind, body ir.Stmt) *ir.For {
	return must(ir.NewFor(name, min, extent, kind, body))
}

// Store returns a write of value to buffer at index.
func Store(buffer string, value, index ir.Expr) *ir.Store {
	return must(ir.NewStore(buffer, value, index))
}

// Provide returns a write of value to buffer at the symbolic coordinate args.
func Provide(buffer string, value ir.Expr, args ...ir.Expr) *ir.Provide {
	return must(ir.NewProvide(buffer, value, args))
}

// Allocate returns body bracketed by the lifetime of a linear buffer of size
// elements.
func Allocate(buffer string, typ ir.Type, size ir.Expr, body ir.Stmt) *ir.Allocate {
	return must(ir.NewAllocate(buffer, typ, size, body))
}

// Realize returns body bracketed by the lifetime of a symbolic buffer.
func Realize(buffer string, typ ir.Type, bounds []ir.Bound, body ir.Stmt) *ir.Realize {
	return must(ir.NewRealize(buffer, typ, bounds, body))
}

// Block returns a statement running first, then the optional rest.
func Block(first, rest ir.Stmt) *ir.Block {
	return must(ir.NewBlock(first, rest))
}

// Seq chains statements into nested Blocks, preserving order.
func Seq(stmts ...ir.Stmt) ir.Stmt {
	seq, err := ir.BlockSeq(stmts...)
	if err != nil {
		panic(err)
	}
	return seq
}

// Bind binds value to a fresh name drawn from names and returns the Let
// wrapping the expression built by body from a reference to the binding.
func Bind(names *uname.Unique, base string, typ ir.Type, value ir.Expr, body func(*ir.Var) ir.Expr) *ir.Let {
	ref := ir.NewVar(typ, names.Name(base))
	return Let(ref.Name, value, body(ref))
}
