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

// BlockSeq chains statements into nested Blocks, preserving order:
// the last Block of the chain has an empty rest. An empty sequence is the
// empty handle. A sequence with an undefined statement is a violation.
func BlockSeq(stmts ...Stmt) (Stmt, error) {
	var seq Stmt
	for i := len(stmts) - 1; i >= 0; i-- {
		block, err := NewBlock(stmts[i], seq)
		if err != nil {
			return nil, err
		}
		seq = block
	}
	return seq, nil
}

// Stmts returns an iterator over the statements of a Block chain, in order.
// A chain link contributes its first statement; a rest that is not a Block
// terminates the chain as its last statement. A statement that is not a
// Block is a one-statement sequence.
func Stmts(s Stmt) func(yield func(Stmt) bool) {
	return func(yield func(Stmt) bool) {
		for Defined(s) {
			block, ok := s.(*Block)
			if !ok {
				yield(s)
				return
			}
			if !yield(block.First) {
				return
			}
			s = block.Rest
		}
	}
}
