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

// Package render walks a prover.Node proof tree to produce the two output
// forms: an indented ASCII tree for terminals, and bussproofs-flavoured TeX.
// Both share a single numbering pass, so a marker discharged by one node is
// labelled identically in either rendering.
package render

import "github.com/natded/natded/pkg/prover"

// Numbering maps each live discharge marker (one referenced by at least one
// Axiom leaf in the tree it was built from) to the sequential label assigned
// to it, starting from 1.  Dead markers — introduced but never used — are
// absent and their introducing node renders with no label, the "vacuous
// discharge" case.
type Numbering map[*prover.Marker]int

// Number builds the Numbering for root in two walks: the first collects the
// live markers, the second assigns labels in the order ASCII prints the tree:
// depth-first, a node before its children, children left to right.  TeX
// prints children before their parent but reads the same table, so both
// renderings agree.  Unlike the historic engine's render-time mutation of a
// shared cell, it never touches root itself — the side table is entirely
// separate from the proof tree.
func Number(root *prover.Node) Numbering {
	live := map[*prover.Marker]bool{}
	var findLive func(*prover.Node)
	findLive = func(n *prover.Node) {
		if n.Rule == prover.Axiom && n.Marker != nil {
			live[n.Marker] = true
		}
		for _, c := range n.Children {
			findLive(c)
		}
	}
	findLive(root)

	numbering := Numbering{}
	next := 1
	var walk func(*prover.Node)
	walk = func(n *prover.Node) {
		if n.Introduces() && live[n.Marker] {
			if _, seen := numbering[n.Marker]; !seen {
				numbering[n.Marker] = next
				next++
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return numbering
}

// labelOf returns the Axiom leaf's referenced marker's label and whether it
// is live; Axiom leaves always reference some marker, but it is dead only if
// the tree passed to Number was not the one leaf belongs to.
func (nu Numbering) labelOf(m *prover.Marker) (int, bool) {
	n, ok := nu[m]
	return n, ok
}
