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

import "github.com/natded/natded/pkg/formula"

// Rule identifies how many children a Node has, and hence which shape of
// bussproofs inference macro the renderer must emit for it.
type Rule int

const (
	// Axiom is a leaf using an assumption already in scope.
	Axiom Rule = iota
	// Unary covers any single-premise rule: →-I, ¬-I, ∧-E (either side),
	// ∨-I (either side), ⊥-E.
	Unary
	// Binary covers ∧-I, →-E (modus ponens) and ¬-E.
	Binary
	// Ternary is ∨-E: one premise concluding l∨r, and one branch per
	// disjunct.
	Ternary
)

// Node is one inference step of a natural-deduction proof.  A proof is the
// tree reachable from its root; Prove returns the root of a tree whose
// conclusion is the goal and whose Context is empty.
type Node struct {
	// Conclusion is the formula this node derives.
	Conclusion *formula.Formula
	// Context is Γ as active at this node.
	Context Context
	// Rule says how many children this node has and what shape of
	// inference it represents.
	Rule Rule
	// Marker is non-nil in exactly two situations: on an Axiom leaf, where
	// it references the ancestor that introduced the assumption being
	// used; and on a node that itself discharges an assumption (→-I, ¬-I,
	// or the ∨-E node, which discharges both disjuncts under the same
	// marker). All other nodes leave Marker nil.
	Marker *Marker
	// Children holds 0 (Axiom), 1 (Unary), 2 (Binary) or 3 (Ternary)
	// subproofs, in the order the rule was applied.
	Children []*Node
}

// Introduces reports whether n is the discharge point for its Marker, as
// opposed to being an Axiom that merely refers to one.
func (n *Node) Introduces() bool {
	return n.Marker != nil && n.Rule != Axiom
}
