// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package prover

import (
	"testing"

	"github.com/natded/natded/pkg/formula"
)

func mustProve(t *testing.T, f *formula.Formula) *Node {
	t.Helper()
	n, err := Prove(f)
	if err != nil {
		t.Fatalf("Prove(%s): unexpected error: %v", f, err)
	}
	if !n.Conclusion.Equal(f) {
		t.Fatalf("Prove(%s): root concludes %s", f, n.Conclusion)
	}
	if n.Context.Len() != 0 {
		t.Fatalf("Prove(%s): root context not empty", f)
	}
	return n
}

func mustFail(t *testing.T, f *formula.Formula, kind ErrorKind) {
	t.Helper()
	_, err := Prove(f)
	if err == nil {
		t.Fatalf("Prove(%s): expected error, got proof", f)
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("Prove(%s): error is not *Error: %v", f, err)
	}
	if perr.Kind != kind {
		t.Fatalf("Prove(%s): got %v, want %v", f, perr.Kind, kind)
	}
}

func Test_Prove_Atom_NotClassicallyValid(t *testing.T) {
	// A lone atom is not classically valid, so this must fail at the gate.
	mustFail(t, formula.Atom('A'), NotClassicallyValid)
}

func Test_Prove_Identity(t *testing.T) {
	// A -> A
	mustProve(t, formula.Imp(formula.Atom('A'), formula.Atom('A')))
}

func Test_Prove_ExcludedMiddle(t *testing.T) {
	// A or not A is classically valid but not intuitionistically provable by
	// this engine; it has no introduction rule for Or that can reach it
	// without deciding A, so it must fail at inference, not at the gate.
	a := formula.Atom('A')
	mustFail(t, formula.Or(a, formula.Not(a)), InferenceFailed)
}

func Test_Prove_Contradiction_NotClassicallyValid(t *testing.T) {
	a := formula.Atom('A')
	mustFail(t, formula.And(a, formula.Not(a)), NotClassicallyValid)
}

func Test_Prove_DoubleNegationElimination_InferenceFailed(t *testing.T) {
	// not not A -> A passes the classical gate but has no constructive proof.
	a := formula.Atom('A')
	goal := formula.Imp(formula.Not(formula.Not(a)), a)
	mustFail(t, goal, InferenceFailed)
}

func Test_Prove_DoubleNegationIntroduction(t *testing.T) {
	// A -> not not A is both classically valid and constructively provable.
	a := formula.Atom('A')
	mustProve(t, formula.Imp(a, formula.Not(formula.Not(a))))
}

func Test_Prove_ModusPonensChain(t *testing.T) {
	a, b := formula.Atom('A'), formula.Atom('B')
	goal := formula.Imp(formula.And(a, formula.Imp(a, b)), b)
	mustProve(t, goal)
}

func Test_Prove_Contraposition(t *testing.T) {
	a, b := formula.Atom('A'), formula.Atom('B')
	goal := formula.Imp(formula.Imp(a, b), formula.Imp(formula.Not(b), formula.Not(a)))
	mustProve(t, goal)
}

func Test_Prove_OrElimination(t *testing.T) {
	a, b, c := formula.Atom('A'), formula.Atom('B'), formula.Atom('C')
	// (A or B) and (A -> C) and (B -> C) -> C
	premises := formula.And(formula.And(formula.Or(a, b), formula.Imp(a, c)), formula.Imp(b, c))
	goal := formula.Imp(premises, c)
	n := mustProve(t, goal)

	var hasTernary func(*Node) bool
	hasTernary = func(n *Node) bool {
		if n.Rule == Ternary {
			return true
		}
		for _, ch := range n.Children {
			if hasTernary(ch) {
				return true
			}
		}
		return false
	}
	if !hasTernary(n) {
		t.Fatalf("Prove(%s): expected a Ternary (or-elimination) node somewhere in the proof", goal)
	}
}

func Test_Prove_AndCommutativity(t *testing.T) {
	a, b := formula.Atom('A'), formula.Atom('B')
	mustProve(t, formula.Imp(formula.And(a, b), formula.And(b, a)))
}

func Test_Prove_Deterministic(t *testing.T) {
	a, b := formula.Atom('A'), formula.Atom('B')
	goal := formula.Imp(formula.And(a, b), formula.And(b, a))

	first := mustProve(t, goal)
	second := mustProve(t, goal)

	var shape func(*Node) string
	shape = func(n *Node) string {
		s := n.Conclusion.Key()
		for _, ch := range n.Children {
			s += "|" + shape(ch)
		}
		return s
	}
	if shape(first) != shape(second) {
		t.Fatalf("Prove(%s) is not deterministic across repeated calls", goal)
	}
}

func Test_Prove_OrIntroduction_PrefersLeft(t *testing.T) {
	a, b := formula.Atom('A'), formula.Atom('B')
	// A -> (A or B): the left disjunct alone suffices, so the engine should
	// never need to fall back to proving B.
	n := mustProve(t, formula.Imp(a, formula.Or(a, b)))
	// unwrap the ->I node to the Or-introduction node beneath it
	body := n.Children[0]
	if body.Rule != Unary || len(body.Children) != 1 {
		t.Fatalf("unexpected Or-introduction shape: %+v", body)
	}
	if !body.Children[0].Conclusion.Equal(a) {
		t.Fatalf("expected or-introduction to pick the left disjunct A, got %s", body.Children[0].Conclusion)
	}
}

func Test_Context_Extend_Duplicate(t *testing.T) {
	gen := &generator{}
	ctx := Context{}
	a := formula.Atom('A')
	ctx, err := ctx.Extend(a, gen.fresh())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ctx.Extend(a, gen.fresh()); err == nil {
		t.Fatalf("expected duplicate extend to fail")
	}
}

func Test_Node_Introduces(t *testing.T) {
	a := formula.Atom('A')
	n := mustProve(t, formula.Imp(a, a))
	if !n.Introduces() {
		t.Fatalf("->I root should introduce its marker")
	}
	leaf := n.Children[0]
	if leaf.Rule != Axiom {
		t.Fatalf("expected axiom leaf, got rule %v", leaf.Rule)
	}
	if leaf.Introduces() {
		t.Fatalf("axiom leaf references a marker but does not introduce it")
	}
}
