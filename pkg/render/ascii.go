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
	"strconv"
	"strings"

	"github.com/natded/natded/pkg/prover"
)

// ASCII renders root as an indented tree suitable for a terminal.  Numbering
// is computed fresh from root, so calling ASCII and TeX on the same tree is
// guaranteed to assign matching labels to matching markers.
func ASCII(root *prover.Node) string {
	nu := Number(root)
	var b strings.Builder
	b.WriteString(line(root, nu))
	b.WriteByte('\n')
	writeChildren(&b, root, nu, "")
	return b.String()
}

// line formats a single node's own text: its conclusion, plus a trailing
// " : N" (introduces live marker N) or " from: N" (Axiom referencing marker
// N), per §4.3.2.
func line(n *prover.Node, nu Numbering) string {
	text := n.Conclusion.Unicode()
	switch {
	case n.Rule == prover.Axiom:
		if label, ok := nu.labelOf(n.Marker); ok {
			text += " from: " + strconv.Itoa(label)
		}
	case n.Introduces():
		if label, ok := nu.labelOf(n.Marker); ok {
			text += " : " + strconv.Itoa(label)
		}
	}
	return text
}

// writeChildren emits each of n's children, prefixed with the current
// indent plus "+ ", then recurses with the indent extended by "| " for every
// non-last child and "  " for the last — keeping the vertical bar only where
// a sibling still follows.
func writeChildren(b *strings.Builder, n *prover.Node, nu Numbering, indent string) {
	for i, c := range n.Children {
		last := i == len(n.Children)-1
		b.WriteString(indent)
		b.WriteString("+ ")
		b.WriteString(line(c, nu))
		b.WriteByte('\n')

		next := indent + "| "
		if last {
			next = indent + "  "
		}
		writeChildren(b, c, nu, next)
	}
}
