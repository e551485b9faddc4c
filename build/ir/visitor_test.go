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
	"github.com/tern-lang/tern/build/ir/irhelper"
	"github.com/tern-lang/tern/build/ir/irkind"
)

// recorder records which visitor operation fired, without recursing.
type recorder struct {
	got []string
}

func (r *recorder) visit(kind string) {
	r.got = append(r.got, kind)
}

func (r *recorder) VisitIntImm(*ir.IntImm)       { r.visit("IntImm") }
func (r *recorder) VisitFloatImm(*ir.FloatImm)   { r.visit("FloatImm") }
func (r *recorder) VisitCast(*ir.Cast)           { r.visit("Cast") }
func (r *recorder) VisitVar(*ir.Var)             { r.visit("Var") }
func (r *recorder) VisitAdd(*ir.Add)             { r.visit("Add") }
func (r *recorder) VisitSub(*ir.Sub)             { r.visit("Sub") }
func (r *recorder) VisitMul(*ir.Mul)             { r.visit("Mul") }
func (r *recorder) VisitDiv(*ir.Div)             { r.visit("Div") }
func (r *recorder) VisitMod(*ir.Mod)             { r.visit("Mod") }
func (r *recorder) VisitMin(*ir.Min)             { r.visit("Min") }
func (r *recorder) VisitMax(*ir.Max)             { r.visit("Max") }
func (r *recorder) VisitEQ(*ir.EQ)               { r.visit("EQ") }
func (r *recorder) VisitNE(*ir.NE)               { r.visit("NE") }
func (r *recorder) VisitLT(*ir.LT)               { r.visit("LT") }
func (r *recorder) VisitLE(*ir.LE)               { r.visit("LE") }
func (r *recorder) VisitGT(*ir.GT)               { r.visit("GT") }
func (r *recorder) VisitGE(*ir.GE)               { r.visit("GE") }
func (r *recorder) VisitAnd(*ir.And)             { r.visit("And") }
func (r *recorder) VisitOr(*ir.Or)               { r.visit("Or") }
func (r *recorder) VisitNot(*ir.Not)             { r.visit("Not") }
func (r *recorder) VisitSelect(*ir.Select)       { r.visit("Select") }
func (r *recorder) VisitLoad(*ir.Load)           { r.visit("Load") }
func (r *recorder) VisitRamp(*ir.Ramp)           { r.visit("Ramp") }
func (r *recorder) VisitCall(*ir.Call)           { r.visit("Call") }
func (r *recorder) VisitLet(*ir.Let)             { r.visit("Let") }
func (r *recorder) VisitLetStmt(*ir.LetStmt)     { r.visit("LetStmt") }
func (r *recorder) VisitPrint(*ir.PrintStmt)     { r.visit("PrintStmt") }
func (r *recorder) VisitAssert(*ir.AssertStmt)   { r.visit("AssertStmt") }
func (r *recorder) VisitPipeline(*ir.Pipeline)   { r.visit("Pipeline") }
func (r *recorder) VisitFor(*ir.For)             { r.visit("For") }
func (r *recorder) VisitStore(*ir.Store)         { r.visit("Store") }
func (r *recorder) VisitProvide(*ir.Provide)     { r.visit("Provide") }
func (r *recorder) VisitAllocate(*ir.Allocate)   { r.visit("Allocate") }
func (r *recorder) VisitRealize(*ir.Realize)     { r.visit("Realize") }
func (r *recorder) VisitBlock(*ir.Block)         { r.visit("Block") }

var _ ir.Visitor = (*recorder)(nil)

func record(n ir.Node) []string {
	r := &recorder{}
	n.Accept(r)
	return r.got
}

func i32() ir.Type { return ir.Int(32) }

func TestDispatchRoundTrip(t *testing.T) {
	one := ir.NewIntImm(1)
	store := irhelper.Store("buf", ir.NewIntImm(1), ir.NewIntImm(0))
	tests := []struct {
		want string
		node ir.Node
	}{
		{"IntImm", ir.NewIntImm(1)},
		{"FloatImm", ir.NewFloatImm(0.5)},
		{"Cast", irhelper.Cast(i32(), one)},
		{"Var", ir.NewVar(i32(), "x")},
		{"Add", irhelper.Add(one, one)},
		{"Sub", irhelper.Sub(one, one)},
		{"Mul", irhelper.Mul(one, one)},
		{"Div", irhelper.Div(one, one)},
		{"Mod", irhelper.Mod(one, one)},
		{"Min", irhelper.Min(one, one)},
		{"Max", irhelper.Max(one, one)},
		{"EQ", irhelper.EQ(one, one)},
		{"NE", irhelper.NE(one, one)},
		{"LT", irhelper.LT(one, one)},
		{"LE", irhelper.LE(one, one)},
		{"GT", irhelper.GT(one, one)},
		{"GE", irhelper.GE(one, one)},
		{"And", irhelper.And(one, one)},
		{"Or", irhelper.Or(one, one)},
		{"Not", irhelper.Not(one)},
		{"Select", irhelper.Select(one, one, one)},
		{"Load", irhelper.Load(i32(), "in", one)},
		{"Ramp", irhelper.Ramp(one, one, 8)},
		{"Call", irhelper.Call(i32(), "in", irkind.Image, one)},
		{"Let", irhelper.Let("x", one, one)},
		{"LetStmt", irhelper.LetStmt("x", one, store)},
		{"PrintStmt", irhelper.Print("x:", one)},
		{"AssertStmt", irhelper.Assert(one, "boom")},
		{"Pipeline", irhelper.Pipeline("buf", store, nil, store)},
		{"For", irhelper.For("i", one, one, irkind.Serial, store)},
		{"Store", store},
		{"Provide", irhelper.Provide("buf", one, one)},
		{"Allocate", irhelper.Allocate("buf", i32(), one, store)},
		{"Realize", irhelper.Realize("buf", i32(), []ir.Bound{{Min: one, Extent: one}}, store)},
		{"Block", irhelper.Block(store, nil)},
	}
	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			got := record(test.node)
			want := []string{test.want}
			if !cmp.Equal(got, want) {
				t.Errorf("dispatch fired %v but want %v", got, want)
			}
		})
	}
}

// deepRecorder records the kinds it knows about, in dispatch order,
// recursing through everything else.
type deepRecorder struct {
	ir.BaseVisitor
	got []string
}

func (r *deepRecorder) visit(kind string) {
	r.got = append(r.got, kind)
}

func recordDeep(n ir.Node) []string {
	r := &deepRecorder{}
	r.Self = r
	n.Accept(r)
	return r.got
}

func (r *deepRecorder) VisitFor(n *ir.For) {
	r.visit("For")
	ir.VisitChildren(n, r)
}

func (r *deepRecorder) VisitStore(n *ir.Store) {
	r.visit("Store." + n.Buffer)
	ir.VisitChildren(n, r)
}

func (r *deepRecorder) VisitLet(n *ir.Let) {
	r.visit("Let")
	ir.VisitChildren(n, r)
}

func (r *deepRecorder) VisitAdd(n *ir.Add) {
	r.visit("Add")
	ir.VisitChildren(n, r)
}

func TestTraverseParallelLoop(t *testing.T) {
	loop := irhelper.For("i", ir.NewIntImm(0), ir.NewIntImm(10), irkind.Parallel,
		irhelper.Store("buf", ir.NewVar(i32(), "i"), ir.NewVar(i32(), "i")))
	got := recordDeep(loop)
	want := []string{"For", "Store.buf"}
	if !cmp.Equal(got, want) {
		t.Errorf("traversal visited %v but want %v", got, want)
	}
	if loop.Kind != irkind.Parallel {
		t.Errorf("got loop kind %v but want %v", loop.Kind, irkind.Parallel)
	}
}

func TestTraverseLetBody(t *testing.T) {
	let := irhelper.Let("x", ir.NewIntImm(3),
		irhelper.Add(ir.NewVar(i32(), "x"), ir.NewIntImm(4)))
	got := recordDeep(let)
	want := []string{"Let", "Add"}
	if !cmp.Equal(got, want) {
		t.Errorf("traversal visited %v but want %v", got, want)
	}
}

// storeBuffers collects the buffer names of every Store in the tree,
// relying on the default recursion for all other kinds.
type storeBuffers struct {
	ir.BaseVisitor
	buffers []string
}

func (v *storeBuffers) VisitStore(n *ir.Store) {
	v.buffers = append(v.buffers, n.Buffer)
	ir.VisitChildren(n, v)
}

func TestBaseVisitorDefaultRecursion(t *testing.T) {
	produce := irhelper.Store("out", ir.NewIntImm(0), ir.NewIntImm(0))
	consume := irhelper.For("i", ir.NewIntImm(0), ir.NewIntImm(10), irkind.Vectorized,
		irhelper.Store("sink", irhelper.Load(i32(), "out", ir.NewVar(i32(), "i")), ir.NewVar(i32(), "i")))
	pipeline := irhelper.Pipeline("out", produce, nil, consume)

	v := &storeBuffers{}
	v.Self = v
	pipeline.Accept(v)
	want := []string{"out", "sink"}
	if !cmp.Equal(v.buffers, want) {
		t.Errorf("traversal collected %v but want %v", v.buffers, want)
	}
}

func TestVisitChildrenOneLevel(t *testing.T) {
	sum := irhelper.Add(
		irhelper.Mul(ir.NewIntImm(2), ir.NewIntImm(3)),
		ir.NewIntImm(4))
	r := &recorder{}
	ir.VisitChildren(sum, r)
	want := []string{"Mul", "IntImm"}
	if !cmp.Equal(r.got, want) {
		t.Errorf("children dispatched %v but want %v", r.got, want)
	}
}
