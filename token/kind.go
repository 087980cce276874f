// Copyright 2024-2026 Parser Kit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token

import "fmt"

const (
	Unrecognized Kind = iota // Unrecognized garbage in the input.

	Ident     // An identifier.
	Literal   // A literal: a number or a quoted string.
	Punct     // A single punctuation character with a spacing hint.
	Delimited // A delimited group; the token wraps a [Group].
)

// Kind identifies what kind of token a particular [Token] is.
type Kind byte

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Unrecognized:
		return "Unrecognized"
	case Ident:
		return "Ident"
	case Literal:
		return "Literal"
	case Punct:
		return "Punct"
	case Delimited:
		return "Delimited"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}

const (
	// Alone punctuation is followed by trivia or a non-punctuation token.
	Alone Spacing = iota
	// Joint punctuation is immediately followed by another punctuation
	// character, so the two may be glued into a multi-character operator.
	Joint
)

// Spacing is the spacing hint carried by a [Punct] token.
type Spacing byte

// String implements [fmt.Stringer].
func (s Spacing) String() string {
	switch s {
	case Alone:
		return "Alone"
	case Joint:
		return "Joint"
	default:
		return fmt.Sprintf("token.Spacing(%d)", int(s))
	}
}

const (
	// None is the delimiter of a virtual group: a group with no delimiter
	// characters of its own, used to splice a token sequence into another
	// while keeping it a single tree node.
	None Delimiter = iota
	Paren
	Bracket
	Brace
)

// Delimiter identifies the bracketing characters of a [Group].
type Delimiter byte

// Open returns the opening character for this delimiter, or 0 for [None].
func (d Delimiter) Open() rune {
	switch d {
	case Paren:
		return '('
	case Bracket:
		return '['
	case Brace:
		return '{'
	default:
		return 0
	}
}

// Close returns the closing character for this delimiter, or 0 for [None].
func (d Delimiter) Close() rune {
	switch d {
	case Paren:
		return ')'
	case Bracket:
		return ']'
	case Brace:
		return '}'
	default:
		return 0
	}
}

// String implements [fmt.Stringer].
func (d Delimiter) String() string {
	switch d {
	case None:
		return "None"
	case Paren:
		return "Paren"
	case Bracket:
		return "Bracket"
	case Brace:
		return "Brace"
	default:
		return fmt.Sprintf("token.Delimiter(%d)", int(d))
	}
}

// byOpen maps an opening delimiter character to its [Delimiter].
func byOpen(r rune) (Delimiter, bool) {
	switch r {
	case '(':
		return Paren, true
	case '[':
		return Bracket, true
	case '{':
		return Brace, true
	default:
		return None, false
	}
}

// byClose maps a closing delimiter character to its [Delimiter].
func byClose(r rune) (Delimiter, bool) {
	switch r {
	case ')':
		return Paren, true
	case ']':
		return Bracket, true
	case '}':
		return Brace, true
	default:
		return None, false
	}
}
