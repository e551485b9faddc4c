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

// Package irstring builds a string representation of a Tern IR tree.
//
// The printer is a Visitor: it implements one method per node kind and
// drives its own recursion, like any other pass over the tree.
// Expressions render on one line; statements render as newline-terminated
// lines with nested statements indented by a tabulation.
package irstring

import (
	"fmt"
	"slices"
	"strconv"

	basefmt "github.com/tern-lang/tern/base/fmt"
	"github.com/tern-lang/tern/base/stringseq"
	"github.com/tern-lang/tern/build/ir"
)

// String returns the representation of the tree rooted at n.
// The empty handle renders as <undef>.
func String(n ir.Node) string {
	var p printer
	return p.str(n)
}

type printer struct {
	result string
}

func (p *printer) str(n ir.Node) string {
	if !ir.Defined(n) {
		return "<undef>"
	}
	n.Accept(p)
	return p.result
}

func (p *printer) exprs(xs []ir.Expr) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = p.str(x)
	}
	return stringseq.Join(slices.Values(parts), ", ")
}

func (p *printer) binary(op string, a, b ir.Expr) {
	p.result = "(" + p.str(a) + " " + op + " " + p.str(b) + ")"
}

func (p *printer) call(name string, args ...ir.Expr) {
	p.result = name + "(" + p.exprs(args) + ")"
}

// block renders a head, an indented body and a closing brace as a
// newline-terminated statement.
func block(head, body string) string {
	return head + " {\n" + basefmt.Indent(body) + "}\n"
}

func (p *printer) VisitIntImm(n *ir.IntImm) {
	p.result = strconv.FormatInt(n.Value, 10)
}

func (p *printer) VisitFloatImm(n *ir.FloatImm) {
	p.result = strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (p *printer) VisitCast(n *ir.Cast) {
	p.result = n.Typ.String() + "(" + p.str(n.Value) + ")"
}

func (p *printer) VisitVar(n *ir.Var) {
	p.result = n.Name
}

func (p *printer) VisitAdd(n *ir.Add) { p.binary("+", n.A, n.B) }
func (p *printer) VisitSub(n *ir.Sub) { p.binary("-", n.A, n.B) }
func (p *printer) VisitMul(n *ir.Mul) { p.binary("*", n.A, n.B) }
func (p *printer) VisitDiv(n *ir.Div) { p.binary("/", n.A, n.B) }
func (p *printer) VisitMod(n *ir.Mod) { p.binary("%", n.A, n.B) }
func (p *printer) VisitMin(n *ir.Min) { p.call("min", n.A, n.B) }
func (p *printer) VisitMax(n *ir.Max) { p.call("max", n.A, n.B) }
func (p *printer) VisitEQ(n *ir.EQ)   { p.binary("==", n.A, n.B) }
func (p *printer) VisitNE(n *ir.NE)   { p.binary("!=", n.A, n.B) }
func (p *printer) VisitLT(n *ir.LT)   { p.binary("<", n.A, n.B) }
func (p *printer) VisitLE(n *ir.LE)   { p.binary("<=", n.A, n.B) }
func (p *printer) VisitGT(n *ir.GT)   { p.binary(">", n.A, n.B) }
func (p *printer) VisitGE(n *ir.GE)   { p.binary(">=", n.A, n.B) }
func (p *printer) VisitAnd(n *ir.And) { p.binary("&&", n.A, n.B) }
func (p *printer) VisitOr(n *ir.Or)   { p.binary("||", n.A, n.B) }

func (p *printer) VisitNot(n *ir.Not) {
	p.result = "!" + p.str(n.X)
}

func (p *printer) VisitSelect(n *ir.Select) {
	p.call("select", n.Cond, n.True, n.False)
}

func (p *printer) VisitLoad(n *ir.Load) {
	p.result = n.Buffer + "[" + p.str(n.Index) + "]"
}

func (p *printer) VisitRamp(n *ir.Ramp) {
	p.result = fmt.Sprintf("ramp(%s, %s, %d)", p.str(n.Base), p.str(n.Stride), n.Lanes)
}

func (p *printer) VisitCall(n *ir.Call) {
	p.call(n.Name, n.Args...)
}

func (p *printer) VisitLet(n *ir.Let) {
	p.result = "(let " + n.Name + " = " + p.str(n.Value) + " in " + p.str(n.Body) + ")"
}

func (p *printer) VisitLetStmt(n *ir.LetStmt) {
	p.result = "let " + n.Name + " = " + p.str(n.Value) + "\n" + p.str(n.Body)
}

func (p *printer) VisitPrint(n *ir.PrintStmt) {
	args := strconv.Quote(n.Prefix)
	if len(n.Args) > 0 {
		args += ", " + p.exprs(n.Args)
	}
	p.result = "print(" + args + ")\n"
}

func (p *printer) VisitAssert(n *ir.AssertStmt) {
	p.result = "assert(" + p.str(n.Cond) + ", " + strconv.Quote(n.Message) + ")\n"
}

func (p *printer) VisitPipeline(n *ir.Pipeline) {
	s := "produce " + n.Buffer + " {\n" + basefmt.Indent(p.str(n.Produce)) + "}"
	if ir.Defined(n.Update) {
		s += " update {\n" + basefmt.Indent(p.str(n.Update)) + "}"
	}
	p.result = s + " consume {\n" + basefmt.Indent(p.str(n.Consume)) + "}\n"
}

func (p *printer) VisitFor(n *ir.For) {
	head := fmt.Sprintf("%s for (%s, %s, %s)", n.Kind.String(), n.Name, p.str(n.Min), p.str(n.Extent))
	p.result = block(head, p.str(n.Body))
}

func (p *printer) VisitStore(n *ir.Store) {
	p.result = n.Buffer + "[" + p.str(n.Index) + "] = " + p.str(n.Value) + "\n"
}

func (p *printer) VisitProvide(n *ir.Provide) {
	p.result = n.Buffer + "(" + p.exprs(n.Args) + ") = " + p.str(n.Value) + "\n"
}

func (p *printer) VisitAllocate(n *ir.Allocate) {
	head := fmt.Sprintf("allocate %s[%s * %s]", n.Buffer, n.Typ.String(), p.str(n.Size))
	p.result = block(head, p.str(n.Body))
}

func (p *printer) VisitRealize(n *ir.Realize) {
	bounds := make([]string, len(n.Bounds))
	for i, bound := range n.Bounds {
		bounds[i] = "[" + p.str(bound.Min) + ", " + p.str(bound.Extent) + "]"
	}
	head := fmt.Sprintf("realize %s[%s](%s)", n.Buffer, n.Typ.String(),
		stringseq.Join(slices.Values(bounds), ", "))
	p.result = block(head, p.str(n.Body))
}

func (p *printer) VisitBlock(n *ir.Block) {
	s := p.str(n.First)
	if ir.Defined(n.Rest) {
		s += p.str(n.Rest)
	}
	p.result = s
}

var _ ir.Visitor = (*printer)(nil)
