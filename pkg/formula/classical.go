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
package formula

// IsClassicallyValid reports whether f evaluates to true under every total
// truth assignment of its atoms.  It is used by the prover purely as a
// necessary-condition gate: failing this check proves no intuitionistic
// proof can exist, but passing it is no guarantee one does.
func IsClassicallyValid(f *Formula) bool {
	valid, _ := Counterexample(f)
	return valid
}

// Counterexample determines classical validity the same way IsClassicallyValid
// does, additionally returning the first falsifying valuation found when f is
// not valid.  Atoms are branched on in ascending order (true before false) so
// the result is deterministic across runs.  The search stops as soon as the
// formula reduces to ⊥, so atoms that were not yet branched on at that point
// are absent from the returned valuation.
func Counterexample(f *Formula) (bool, Valuation) {
	return classicallyValid(f, Valuation{})
}

func classicallyValid(f *Formula, assigned Valuation) (bool, Valuation) {
	var pending rune
	found := false
	for _, a := range f.Atoms() {
		if _, ok := assigned[a]; !ok {
			pending = a
			found = true
			break
		}
	}
	if !found {
		// Every atom of f has been assigned; the residual must reduce to
		// either true (nil) or false (Bot) with no atoms remaining.
		if f.EvalPartial(assigned) == nil {
			return true, nil
		}
		return false, assigned.Clone()
	}
	for _, b := range [2]bool{true, false} {
		assigned[pending] = b
		residual := f.EvalPartial(assigned)
		var (
			ok      bool
			witness Valuation
		)
		switch {
		case residual == nil:
			ok = true
		case residual.Kind == KindBot:
			ok, witness = false, assigned.Clone()
		default:
			ok, witness = classicallyValid(residual, assigned)
		}
		delete(assigned, pending)
		if !ok {
			return false, witness
		}
	}
	return true, nil
}
