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
package render

import (
	"strings"
	"testing"

	"github.com/natded/natded/pkg/formula"
	"github.com/natded/natded/pkg/prover"
)

func Test_ASCII_Identity(t *testing.T) {
	a := formula.Atom('A')
	n, err := prover.Prove(formula.Imp(a, a))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := ASCII(n)
	if !strings.Contains(out, ": 1") {
		t.Fatalf("expected introduction labelled 1, got:\n%s", out)
	}
	if !strings.Contains(out, "from: 1") {
		t.Fatalf("expected axiom labelled 1, got:\n%s", out)
	}
}

func Test_ASCII_VacuousDischarge_NoLabel(t *testing.T) {
	a, b := formula.Atom('A'), formula.Atom('B')
	// A -> (B -> A): the inner ->I discharges B, which no Axiom ever uses.
	n, err := prover.Prove(formula.Imp(a, formula.Imp(b, a)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := ASCII(n)
	if strings.Contains(out, ": 2") {
		t.Fatalf("vacuous discharge should not be numbered, got:\n%s", out)
	}
}

func Test_Number_MatchesAcrossRenderings(t *testing.T) {
	a, b, c := formula.Atom('A'), formula.Atom('B'), formula.Atom('C')
	premises := formula.And(formula.And(formula.Or(a, b), formula.Imp(a, c)), formula.Imp(b, c))
	goal := formula.Imp(premises, c)
	n, err := prover.Prove(goal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	asciiOut := ASCII(n)
	texOut := TeX(n)
	if !strings.Contains(asciiOut, "from: 1") || !strings.Contains(texOut, "]_{1}") {
		t.Fatalf("expected matching label 1 in both renderings:\nASCII:\n%s\nTeX:\n%s", asciiOut, texOut)
	}
}

func Test_TeX_EmitsBussproofsMacros(t *testing.T) {
	a := formula.Atom('A')
	n, err := prover.Prove(formula.Imp(a, a))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := TeX(n)
	for _, want := range []string{`\AxiomC`, `\UnaryInfC`, `\RightLabel`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in TeX output:\n%s", want, out)
		}
	}
}
