// SPDX-License-Identifier: MIT
// Package: notation
//
// notation.go — textual necklace literals.
//
// Accepted forms (whitespace-insensitive, commas optional):
//
//	1,1,0,0      1 1 0 0      [1, 1, 0, 0]      []
//
// Negative values do not lex as a single Int token and are rejected by the
// grammar, which keeps every parsed Sequence non-negative.

package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/katalvlaran/necklace/necklace"
)

// ErrUnbalanced indicates an opening "[" without a closing "]" or vice versa.
var ErrUnbalanced = errors.New("notation: unbalanced brackets")

// ErrSyntax wraps grammar failures reported by the parser.
var ErrSyntax = errors.New("notation: invalid sequence literal")

type literal struct {
	Open   bool  `parser:"( @\"[\" )?"`
	Values []int `parser:"( @Int ( \",\"? @Int )* )?"`
	Close  bool  `parser:"( @\"]\" )?"`
}

var parser = participle.MustBuild[literal]()

// Parse reads one sequence literal.
func Parse(text string) (necklace.Sequence, error) {
	if strings.TrimSpace(text) == "" {
		return necklace.Sequence{}, nil
	}

	lit, err := parser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSyntax, text, err)
	}
	if lit.Open != lit.Close {
		return nil, fmt.Errorf("%q: %w", text, ErrUnbalanced)
	}

	seq := make(necklace.Sequence, len(lit.Values))
	copy(seq, lit.Values)

	return seq, nil
}

// Format is the inverse of Parse for the bracketed form, e.g. "[1, 1, 0, 0]".
func Format(s necklace.Sequence) string {
	out := []byte{'['}
	for i, v := range s {
		if i > 0 {
			out = append(out, ',', ' ')
		}
		out = fmt.Appendf(out, "%d", v)
	}

	return string(append(out, ']'))
}
