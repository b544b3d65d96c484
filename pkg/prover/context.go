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
	"sort"

	"github.com/natded/natded/pkg/formula"
)

// entry pairs an assumption formula with the marker it was introduced under.
type entry struct {
	formula *formula.Formula
	marker  *Marker
}

// Context is an immutable assumption set Γ: a mapping from formula to the
// discharge marker it was introduced under.  Every mutating operation
// returns a new Context, leaving the receiver (and anything else holding a
// reference to it) untouched — this is what lets the search backtrack
// freely between alternatives without needing to undo anything.
type Context struct {
	entries []entry
}

// Lookup returns the marker associated with f, if any.
func (c Context) Lookup(f *formula.Formula) (*Marker, bool) {
	for _, e := range c.entries {
		if e.formula.Equal(f) {
			return e.marker, true
		}
	}
	return nil, false
}

// Extend returns a new Context with f bound to m.  If f is already a member
// of c, extending would create two distinct markers for what the renderer
// would have to treat as one assumption; rather than silently overwrite the
// existing binding, Extend reports an InternalInvariant error so the caller
// can fail this branch of the search.
func (c Context) Extend(f *formula.Formula, m *Marker) (Context, error) {
	if _, ok := c.Lookup(f); ok {
		return Context{}, &Error{
			Kind:    InternalInvariant,
			Formula: f,
			Message: "assumption already present in context",
		}
	}
	entries := make([]entry, len(c.entries)+1)
	copy(entries, c.entries)
	entries[len(c.entries)] = entry{f, m}
	return Context{entries}, nil
}

// Len returns the number of assumptions bound in c.
func (c Context) Len() int {
	return len(c.entries)
}

// Formulas returns the assumption formulas in c, in no particular order.
func (c Context) Formulas() []*formula.Formula {
	fs := make([]*formula.Formula, len(c.entries))
	for i, e := range c.entries {
		fs[i] = e.formula
	}
	return fs
}

// Sorted returns c's assumptions ordered by ascending structural depth (with
// a stable tie-break), which is the deterministic order the prover iterates
// candidate assumptions in.
func (c Context) Sorted() []Assumption {
	out := make([]Assumption, len(c.entries))
	for i, e := range c.entries {
		out[i] = Assumption{e.formula, e.marker}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Formula.Compare(out[j].Formula) < 0
	})
	return out
}

// Assumption is a single (formula, marker) pair handed out by
// Context.Sorted for iteration.
type Assumption struct {
	Formula *formula.Formula
	Marker  *Marker
}
