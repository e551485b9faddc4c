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

// Visitor is the dispatch protocol over the closed node catalog: exactly one
// method per node kind, no default case. A pass implements Visitor and calls
// Accept on a handle; dispatch routes to the single method matching the
// node's concrete kind.
//
// The trade is deliberate. Behaviors over the tree are open: any pass can be
// written outside this package without touching node definitions. The node
// set is closed: adding a kind adds a method here, which breaks every
// visitor implementation at compile time.
type Visitor interface {
	VisitIntImm(*IntImm)
	VisitFloatImm(*FloatImm)
	VisitCast(*Cast)
	VisitVar(*Var)
	VisitAdd(*Add)
	VisitSub(*Sub)
	VisitMul(*Mul)
	VisitDiv(*Div)
	VisitMod(*Mod)
	VisitMin(*Min)
	VisitMax(*Max)
	VisitEQ(*EQ)
	VisitNE(*NE)
	VisitLT(*LT)
	VisitLE(*LE)
	VisitGT(*GT)
	VisitGE(*GE)
	VisitAnd(*And)
	VisitOr(*Or)
	VisitNot(*Not)
	VisitSelect(*Select)
	VisitLoad(*Load)
	VisitRamp(*Ramp)
	VisitCall(*Call)
	VisitLet(*Let)
	VisitLetStmt(*LetStmt)
	VisitPrint(*PrintStmt)
	VisitAssert(*AssertStmt)
	VisitPipeline(*Pipeline)
	VisitFor(*For)
	VisitStore(*Store)
	VisitProvide(*Provide)
	VisitAllocate(*Allocate)
	VisitRealize(*Realize)
	VisitBlock(*Block)
}

func (n *IntImm) Accept(v Visitor)     { v.VisitIntImm(n) }
func (n *FloatImm) Accept(v Visitor)   { v.VisitFloatImm(n) }
func (n *Cast) Accept(v Visitor)       { v.VisitCast(n) }
func (n *Var) Accept(v Visitor)        { v.VisitVar(n) }
func (n *Add) Accept(v Visitor)        { v.VisitAdd(n) }
func (n *Sub) Accept(v Visitor)        { v.VisitSub(n) }
func (n *Mul) Accept(v Visitor)        { v.VisitMul(n) }
func (n *Div) Accept(v Visitor)        { v.VisitDiv(n) }
func (n *Mod) Accept(v Visitor)        { v.VisitMod(n) }
func (n *Min) Accept(v Visitor)        { v.VisitMin(n) }
func (n *Max) Accept(v Visitor)        { v.VisitMax(n) }
func (n *EQ) Accept(v Visitor)         { v.VisitEQ(n) }
func (n *NE) Accept(v Visitor)         { v.VisitNE(n) }
func (n *LT) Accept(v Visitor)         { v.VisitLT(n) }
func (n *LE) Accept(v Visitor)         { v.VisitLE(n) }
func (n *GT) Accept(v Visitor)         { v.VisitGT(n) }
func (n *GE) Accept(v Visitor)         { v.VisitGE(n) }
func (n *And) Accept(v Visitor)        { v.VisitAnd(n) }
func (n *Or) Accept(v Visitor)         { v.VisitOr(n) }
func (n *Not) Accept(v Visitor)        { v.VisitNot(n) }
func (n *Select) Accept(v Visitor)     { v.VisitSelect(n) }
func (n *Load) Accept(v Visitor)       { v.VisitLoad(n) }
func (n *Ramp) Accept(v Visitor)       { v.VisitRamp(n) }
func (n *Call) Accept(v Visitor)       { v.VisitCall(n) }
func (n *Let) Accept(v Visitor)        { v.VisitLet(n) }
func (n *LetStmt) Accept(v Visitor)    { v.VisitLetStmt(n) }
func (n *PrintStmt) Accept(v Visitor)  { v.VisitPrint(n) }
func (n *AssertStmt) Accept(v Visitor) { v.VisitAssert(n) }
func (n *Pipeline) Accept(v Visitor)   { v.VisitPipeline(n) }
func (n *For) Accept(v Visitor)        { v.VisitFor(n) }
func (n *Store) Accept(v Visitor)      { v.VisitStore(n) }
func (n *Provide) Accept(v Visitor)    { v.VisitProvide(n) }
func (n *Allocate) Accept(v Visitor)   { v.VisitAllocate(n) }
func (n *Realize) Accept(v Visitor)    { v.VisitRealize(n) }
func (n *Block) Accept(v Visitor)      { v.VisitBlock(n) }

// VisitChildren dispatches every present child of n to v, in field order.
// It does not dispatch n itself and never descends: recursion, and any
// ordering beyond one level, belongs to the visitor.
func VisitChildren(n Node, v Visitor) {
	switch n := n.(type) {
	case *IntImm, *FloatImm, *Var:
	case *Cast:
		accept(v, n.Value)
	case *Add:
		accept(v, n.A, n.B)
	case *Sub:
		accept(v, n.A, n.B)
	case *Mul:
		accept(v, n.A, n.B)
	case *Div:
		accept(v, n.A, n.B)
	case *Mod:
		accept(v, n.A, n.B)
	case *Min:
		accept(v, n.A, n.B)
	case *Max:
		accept(v, n.A, n.B)
	case *EQ:
		accept(v, n.A, n.B)
	case *NE:
		accept(v, n.A, n.B)
	case *LT:
		accept(v, n.A, n.B)
	case *LE:
		accept(v, n.A, n.B)
	case *GT:
		accept(v, n.A, n.B)
	case *GE:
		accept(v, n.A, n.B)
	case *And:
		accept(v, n.A, n.B)
	case *Or:
		accept(v, n.A, n.B)
	case *Not:
		accept(v, n.X)
	case *Select:
		accept(v, n.Cond, n.True, n.False)
	case *Load:
		accept(v, n.Index)
	case *Ramp:
		accept(v, n.Base, n.Stride)
	case *Call:
		acceptExprs(v, n.Args)
	case *Let:
		accept(v, n.Value, n.Body)
	case *LetStmt:
		accept(v, n.Value, n.Body)
	case *PrintStmt:
		acceptExprs(v, n.Args)
	case *AssertStmt:
		accept(v, n.Cond)
	case *Pipeline:
		accept(v, n.Produce, n.Update, n.Consume)
	case *For:
		accept(v, n.Min, n.Extent, n.Body)
	case *Store:
		accept(v, n.Value, n.Index)
	case *Provide:
		accept(v, n.Value)
		acceptExprs(v, n.Args)
	case *Allocate:
		accept(v, n.Size, n.Body)
	case *Realize:
		for _, bound := range n.Bounds {
			accept(v, bound.Min, bound.Extent)
		}
		accept(v, n.Body)
	case *Block:
		accept(v, n.First, n.Rest)
	}
}

func accept(v Visitor, children ...Node) {
	for _, child := range children {
		if Defined(child) {
			child.Accept(v)
		}
	}
}

func acceptExprs(v Visitor, exprs []Expr) {
	for _, x := range exprs {
		x.Accept(v)
	}
}

// BaseVisitor implements Visitor by recursing into the children of every
// node and doing nothing else. A pass embeds it and overrides only the
// methods it cares about.
//
// A pass that overrides methods must set Self to itself, so that the
// recursion dispatches children to the pass rather than to the defaults.
type BaseVisitor struct {
	Self Visitor
}

func (b *BaseVisitor) dispatch() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *BaseVisitor) walk(n Node) {
	VisitChildren(n, b.dispatch())
}

func (b *BaseVisitor) VisitIntImm(n *IntImm)       { b.walk(n) }
func (b *BaseVisitor) VisitFloatImm(n *FloatImm)   { b.walk(n) }
func (b *BaseVisitor) VisitCast(n *Cast)           { b.walk(n) }
func (b *BaseVisitor) VisitVar(n *Var)             { b.walk(n) }
func (b *BaseVisitor) VisitAdd(n *Add)             { b.walk(n) }
func (b *BaseVisitor) VisitSub(n *Sub)             { b.walk(n) }
func (b *BaseVisitor) VisitMul(n *Mul)             { b.walk(n) }
func (b *BaseVisitor) VisitDiv(n *Div)             { b.walk(n) }
func (b *BaseVisitor) VisitMod(n *Mod)             { b.walk(n) }
func (b *BaseVisitor) VisitMin(n *Min)             { b.walk(n) }
func (b *BaseVisitor) VisitMax(n *Max)             { b.walk(n) }
func (b *BaseVisitor) VisitEQ(n *EQ)               { b.walk(n) }
func (b *BaseVisitor) VisitNE(n *NE)               { b.walk(n) }
func (b *BaseVisitor) VisitLT(n *LT)               { b.walk(n) }
func (b *BaseVisitor) VisitLE(n *LE)               { b.walk(n) }
func (b *BaseVisitor) VisitGT(n *GT)               { b.walk(n) }
func (b *BaseVisitor) VisitGE(n *GE)               { b.walk(n) }
func (b *BaseVisitor) VisitAnd(n *And)             { b.walk(n) }
func (b *BaseVisitor) VisitOr(n *Or)               { b.walk(n) }
func (b *BaseVisitor) VisitNot(n *Not)             { b.walk(n) }
func (b *BaseVisitor) VisitSelect(n *Select)       { b.walk(n) }
func (b *BaseVisitor) VisitLoad(n *Load)           { b.walk(n) }
func (b *BaseVisitor) VisitRamp(n *Ramp)           { b.walk(n) }
func (b *BaseVisitor) VisitCall(n *Call)           { b.walk(n) }
func (b *BaseVisitor) VisitLet(n *Let)             { b.walk(n) }
func (b *BaseVisitor) VisitLetStmt(n *LetStmt)     { b.walk(n) }
func (b *BaseVisitor) VisitPrint(n *PrintStmt)     { b.walk(n) }
func (b *BaseVisitor) VisitAssert(n *AssertStmt)   { b.walk(n) }
func (b *BaseVisitor) VisitPipeline(n *Pipeline)   { b.walk(n) }
func (b *BaseVisitor) VisitFor(n *For)             { b.walk(n) }
func (b *BaseVisitor) VisitStore(n *Store)         { b.walk(n) }
func (b *BaseVisitor) VisitProvide(n *Provide)     { b.walk(n) }
func (b *BaseVisitor) VisitAllocate(n *Allocate)   { b.walk(n) }
func (b *BaseVisitor) VisitRealize(n *Realize)     { b.walk(n) }
func (b *BaseVisitor) VisitBlock(n *Block)         { b.walk(n) }

var _ Visitor = (*BaseVisitor)(nil)
