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

// Shave implements the optional assumption-shaving optimisation of §4.2.5:
// it removes assumptions from ctx that are not needed to keep goal
// classically entailed, which never makes an intuitionistic proof harder to
// find since a smaller Γ is strictly easier for use() to exhaust. It is not
// called by Prove or solve; a caller maintaining its own long-lived Context
// across many goals may call it before reusing that context.
func Shave(ctx Context, goal *formula.Formula) Context {
	for _, a := range ctx.Sorted() {
		candidate := without(ctx, a.Formula)
		if valid, _ := entails(candidate, goal); valid {
			ctx = candidate
		}
	}
	return ctx
}

// without returns a Context identical to ctx but omitting f, if present.
func without(ctx Context, f *formula.Formula) Context {
	kept := Context{}
	for _, a := range ctx.Sorted() {
		if a.Formula.Equal(f) {
			continue
		}
		next, err := kept.Extend(a.Formula, a.Marker)
		if err != nil {
			return ctx
		}
		kept = next
	}
	return kept
}

// ProveWithShaving behaves like Prove, but is the entry point intended for
// callers who build up a Context externally (e.g. a batch checker reusing
// assumptions across many goals) and want it shaved before the search
// begins. Called with Prove's own empty root context, shaving is a no-op.
func ProveWithShaving(goal *formula.Formula, ctx Context) (*Node, error) {
	shaved := Shave(ctx, goal)
	if valid, witness := entails(shaved, goal); !valid {
		return nil, &Error{Kind: NotClassicallyValid, Formula: goal, Witness: witness}
	}
	gen := &generator{}
	bud := newBudget(goal, shaved)
	return solve(goal, shaved, gen, bud)
}
