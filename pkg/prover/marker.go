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

// Package prover implements the natural-deduction proof search engine: given
// a goal formula, it either returns a Node tree rooted at the goal with an
// empty context, or a structured Error explaining why no proof was found.
package prover

// Marker identifies a single discharge point: the place a →-I, ¬-I or ∨-E
// rule introduces an assumption into scope.  Every Axiom leaf that uses that
// assumption carries a pointer to the same Marker, so the renderer can later
// number them consistently without mutating the search tree itself — unlike
// the historic implementation's shared mutable cell, markers here are inert
// identity tokens; numbering is assigned afterwards by the render package in
// a dedicated side table (see render.Number).
type Marker struct {
	// seq distinguishes markers created during the same search for
	// debugging; it plays no role in equality (markers are compared by
	// pointer identity) or in rendering (which assigns display labels
	// separately).
	seq uint64
}

// generator mints fresh, pointer-distinct markers over the course of a
// single Prove call.  Two introductions of an equal formula in different
// search branches always receive distinct markers, even though the formulas
// they discharge compare equal.
type generator struct {
	next uint64
}

func (g *generator) fresh() *Marker {
	g.next++
	return &Marker{seq: g.next}
}
