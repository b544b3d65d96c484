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
package syntax

import (
	"fmt"

	"github.com/natded/natded/pkg/formula"
)

// Parse turns s into a Formula, or returns a syntax Error describing the
// first problem encountered.  Grammar, loosest to tightest binding:
//
//	expr   := or ( imp or )*            (right-associative)
//	or     := and ( '∨' and )*
//	and    := not ( '∧' not )*
//	not    := '¬' not | atomic
//	atomic := Atom | '⊥' | '(' expr ')'
func Parse(s string) (*formula.Formula, error) {
	p := &parser{lex: newLexer(s)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	f, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != TokEOF {
		return nil, &Error{Offset: p.tok.Offset, Message: "unexpected trailing input"}
	}
	return f, nil
}

type parser struct {
	lex *lexer
	tok Token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// parseExpr handles '→', which is right-associative: a chain "A → B → C"
// parses as A → (B → C), so the right recursion calls parseExpr again while
// the left operand only descends one level to parseOr.
func (p *parser) parseExpr() (*formula.Formula, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != TokImp {
		return left, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return formula.Imp(left, right), nil
}

func (p *parser) parseOr() (*formula.Formula, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == TokOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = formula.Or(left, right)
	}
	return left, nil
}

func (p *parser) parseAnd() (*formula.Formula, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == TokAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = formula.And(left, right)
	}
	return left, nil
}

func (p *parser) parseNot() (*formula.Formula, error) {
	if p.tok.Kind == TokNot {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return formula.Not(operand), nil
	}
	return p.parseAtomic()
}

func (p *parser) parseAtomic() (*formula.Formula, error) {
	switch p.tok.Kind {
	case TokAtom:
		f := formula.Atom(p.tok.Atom)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return f, nil
	case TokBot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return formula.Bot(), nil
	case TokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok.Kind != TokRParen {
			return nil, &Error{Offset: p.tok.Offset, Message: "expected closing ')'"}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, &Error{Offset: p.tok.Offset, Message: fmt.Sprintf("unexpected token (kind %d)", p.tok.Kind)}
	}
}
