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
	"fmt"

	"github.com/natded/natded/pkg/formula"
)

// ErrorKind distinguishes the three ways a proof search can fail.
type ErrorKind int

const (
	// NotClassicallyValid means the goal has a classical counter-model, so
	// no intuitionistic proof can exist.
	NotClassicallyValid ErrorKind = iota
	// InferenceFailed means the goal is classically valid but the search
	// heuristics exhausted every alternative without finding a proof; the
	// formula may still be intuitionistically provable.
	InferenceFailed
	// InternalInvariant signals a defensive check failing — it should never
	// occur on well-formed input and indicates an engine bug if it
	// surfaces to the caller.
	InternalInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case NotClassicallyValid:
		return "not classically valid"
	case InferenceFailed:
		return "inference failed"
	case InternalInvariant:
		return "internal invariant violated"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by Prove and, internally, by every
// recursive search step.  Inside the engine, any Error is just a signal to
// backtrack and try the next alternative; only the outermost search frame's
// final failure is surfaced to the caller.
type Error struct {
	Kind ErrorKind
	// Formula identifies the subgoal the failure arose at.
	Formula *formula.Formula
	// Witness holds a falsifying valuation, populated only for
	// NotClassicallyValid.
	Witness formula.Valuation
	// Message carries additional detail, populated only for
	// InternalInvariant.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case NotClassicallyValid:
		return fmt.Sprintf("%s is not classically valid (falsified by %v)", e.Formula, e.Witness)
	case InferenceFailed:
		return fmt.Sprintf("could not construct a proof of %s", e.Formula)
	case InternalInvariant:
		return fmt.Sprintf("internal invariant violated at %s: %s", e.Formula, e.Message)
	default:
		return "unknown prover error"
	}
}
