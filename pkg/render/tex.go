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

// TeX renders root as a sequence of bussproofs macro invocations
// (\AxiomC, \UnaryInfC, \BinaryInfC, \TrinaryInfC, \RightLabel), one
// derivation per call, per §4.3.3.  The caller is responsible for wrapping
// the result in a \begin{prooftree}...\end{prooftree} environment.
func TeX(root *prover.Node) string {
	nu := Number(root)
	var b strings.Builder
	writeTeX(&b, root, nu)
	return b.String()
}

func writeTeX(b *strings.Builder, n *prover.Node, nu Numbering) {
	if n.Rule == prover.Axiom {
		if label, ok := nu.labelOf(n.Marker); ok {
			b.WriteString(`\AxiomC{$[`)
			b.WriteString(n.Conclusion.TeX())
			b.WriteString(`]_{`)
			b.WriteString(strconv.Itoa(label))
			b.WriteString("}$}\n")
		} else {
			b.WriteString(`\AxiomC{$`)
			b.WriteString(n.Conclusion.TeX())
			b.WriteString("$}\n")
		}
		return
	}

	for _, c := range n.Children {
		writeTeX(b, c, nu)
	}

	if label, ok := nu.labelOf(n.Marker); n.Introduces() && ok {
		b.WriteString(`\RightLabel{\scriptsize `)
		b.WriteString(strconv.Itoa(label))
		b.WriteString("}\n")
	}

	macro := map[prover.Rule]string{
		prover.Unary:   `\UnaryInfC`,
		prover.Binary:  `\BinaryInfC`,
		prover.Ternary: `\TrinaryInfC`,
	}[n.Rule]
	b.WriteString(macro)
	b.WriteString("{$")
	b.WriteString(n.Conclusion.TeX())
	b.WriteString("$}\n")
}
