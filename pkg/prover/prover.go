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

// budget bounds how deeply solve frames may nest within a single Prove call.
// The historic engine relied solely on the "goal ≠ ..." guards scattered
// through use() to avoid looping forever when assumption use reintroduces
// the same (goal, Γ) pair; that is an ambiguous source behaviour which a
// fresh implementation should not preserve. A depth bound of
// 4·(|goal| + |Γ|) is cheap to check and sufficient in practice; each solve
// frame takes one unit on entry and returns it on exit, so exhausting the
// bound fails the current branch exactly like any other dead end and leaves
// sibling branches their full depth.
type budget struct {
	remaining int
}

func newBudget(goal *formula.Formula, ctx Context) *budget {
	return &budget{remaining: 4 * (goal.Size() + ctx.Len())}
}

// consume reports whether the budget is now exhausted.
func (b *budget) consume() bool {
	b.remaining--
	return b.remaining < 0
}

// Prove attempts to construct a natural-deduction proof of goal from no
// assumptions.  On success the returned Node's Conclusion equals goal and
// its Context is empty.
func Prove(goal *formula.Formula) (*Node, error) {
	empty := Context{}
	if valid, witness := entails(empty, goal); !valid {
		return nil, &Error{Kind: NotClassicallyValid, Formula: goal, Witness: witness}
	}

	gen := &generator{}
	bud := newBudget(goal, empty)

	return solve(goal, empty, gen, bud)
}

// entails checks the validity gate: Γ ⊢ goal classically iff ¬(conj(Γ) ∧
// ¬goal) is a tautology.  An empty Γ degenerates to checking goal itself.
func entails(ctx Context, goal *formula.Formula) (bool, formula.Valuation) {
	assumptions := ctx.Formulas()
	if len(assumptions) == 0 {
		return formula.Counterexample(goal)
	}
	conj := assumptions[0]
	for _, a := range assumptions[1:] {
		conj = formula.And(conj, a)
	}
	check := formula.Not(formula.And(conj, formula.Not(goal)))
	return formula.Counterexample(check)
}

// solve is the top-level search strategy of §4.2.1: try using an existing
// assumption, then try introducing the goal's main connective, in that
// order, failing only once both are exhausted.
func solve(goal *formula.Formula, ctx Context, gen *generator, bud *budget) (*Node, error) {
	exhausted := bud.consume()
	defer func() { bud.remaining++ }()
	if exhausted {
		return nil, &Error{Kind: InferenceFailed, Formula: goal}
	}

	for _, a := range ctx.Sorted() {
		axiom := &Node{Conclusion: a.Formula, Context: ctx, Rule: Axiom, Marker: a.Marker}
		if n, err := use(axiom, goal, ctx, gen, bud); err == nil {
			return n, nil
		}
	}

	if n, err := introduce(goal, ctx, gen, bud); err == nil {
		return n, nil
	}

	return nil, &Error{Kind: InferenceFailed, Formula: goal}
}

// use tries to extend the already-concluded subproof i (whose conclusion is
// some formula C) into a proof of goal, per §4.2.2.
func use(i *Node, goal *formula.Formula, ctx Context, gen *generator, bud *budget) (*Node, error) {
	c := i.Conclusion

	switch {
	case c.Equal(goal):
		return i, nil

	case c.Kind == formula.KindBot:
		return &Node{Conclusion: goal, Context: ctx, Rule: Unary, Children: []*Node{i}}, nil

	case c.Kind == formula.KindNot && !c.Left.Equal(goal):
		p := c.Left
		ip, err := solve(p, ctx, gen, bud)
		if err != nil {
			return nil, err
		}
		bot := &Node{Conclusion: formula.Bot(), Context: ctx, Rule: Binary, Children: []*Node{ip, i}}
		return use(bot, goal, ctx, gen, bud)

	case c.Kind == formula.KindAnd:
		left := &Node{Conclusion: c.Left, Context: ctx, Rule: Unary, Children: []*Node{i}}
		if n, err := use(left, goal, ctx, gen, bud); err == nil {
			return n, nil
		}
		right := &Node{Conclusion: c.Right, Context: ctx, Rule: Unary, Children: []*Node{i}}
		return use(right, goal, ctx, gen, bud)

	case c.Kind == formula.KindOr:
		m := gen.fresh()
		ctxLeft, err := ctx.Extend(c.Left, m)
		if err != nil {
			return nil, err
		}
		left, err := solve(goal, ctxLeft, gen, bud)
		if err != nil {
			return nil, err
		}
		ctxRight, err := ctx.Extend(c.Right, m)
		if err != nil {
			return nil, err
		}
		right, err := solve(goal, ctxRight, gen, bud)
		if err != nil {
			return nil, err
		}
		return &Node{Conclusion: goal, Context: ctx, Rule: Ternary, Marker: m, Children: []*Node{i, left, right}}, nil

	case c.Kind == formula.KindImp && !c.Left.Equal(goal):
		i0, err := solve(c.Left, ctx, gen, bud)
		if err != nil {
			return nil, err
		}
		modusPonens := &Node{Conclusion: c.Right, Context: ctx, Rule: Binary, Children: []*Node{i0, i}}
		return use(modusPonens, goal, ctx, gen, bud)

	default:
		return nil, &Error{Kind: InferenceFailed, Formula: goal}
	}
}

// introduce applies the introduction rule matching goal's main connective,
// per §4.2.3.  Atoms and ⊥ have no introduction rule: only assumption use
// can prove them.
func introduce(goal *formula.Formula, ctx Context, gen *generator, bud *budget) (*Node, error) {
	switch goal.Kind {
	case formula.KindNot:
		m := gen.fresh()
		ctx2, err := ctx.Extend(goal.Left, m)
		if err != nil {
			return nil, err
		}
		sub, err := solve(formula.Bot(), ctx2, gen, bud)
		if err != nil {
			return nil, err
		}
		return &Node{Conclusion: goal, Context: ctx, Rule: Unary, Marker: m, Children: []*Node{sub}}, nil

	case formula.KindAnd:
		left, err := solve(goal.Left, ctx, gen, bud)
		if err != nil {
			return nil, err
		}
		right, err := solve(goal.Right, ctx, gen, bud)
		if err != nil {
			return nil, err
		}
		return &Node{Conclusion: goal, Context: ctx, Rule: Binary, Children: []*Node{left, right}}, nil

	case formula.KindOr:
		if left, err := solve(goal.Left, ctx, gen, bud); err == nil {
			return &Node{Conclusion: goal, Context: ctx, Rule: Unary, Children: []*Node{left}}, nil
		}
		if right, err := solve(goal.Right, ctx, gen, bud); err == nil {
			return &Node{Conclusion: goal, Context: ctx, Rule: Unary, Children: []*Node{right}}, nil
		}
		return nil, &Error{Kind: InferenceFailed, Formula: goal}

	case formula.KindImp:
		m := gen.fresh()
		ctx2, err := ctx.Extend(goal.Left, m)
		if err != nil {
			return nil, err
		}
		sub, err := solve(goal.Right, ctx2, gen, bud)
		if err != nil {
			return nil, err
		}
		return &Node{Conclusion: goal, Context: ctx, Rule: Unary, Marker: m, Children: []*Node{sub}}, nil

	default:
		return nil, &Error{Kind: InferenceFailed, Formula: goal}
	}
}
