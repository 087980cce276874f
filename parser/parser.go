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

// Package parser provides token-level parsers over [stream.Stream] and a
// small combinator set for composing them.
//
// A [Parser] is a pure function from a stream to a value, a remainder
// stream, and an error. Failure never corrupts the input: the stream value
// a failed parser was applied to can be handed to another parser, which is
// all [Alt] does. Grammar authors write parsers for their DSL out of
// [Ident], [Keyword], [Literal], [Punct] and [Group], and wrap fragments
// in [Spanned] where the result should carry a covering span.
package parser

import (
	"fmt"

	"github.com/parserkit/treestream/stream"
	"github.com/parserkit/treestream/token"
)

// Parser consumes a prefix of s and produces a T.
//
// On failure the returned stream must be s itself, untouched, and the
// error is one of the types in this package (or wraps one).
type Parser[T any] func(s stream.Stream) (T, stream.Stream, error)

// AnyToken parses any single token.
func AnyToken() Parser[token.Token] {
	return expect("a token", func(token.Token) bool { return true })
}

// Ident parses an identifier token.
func Ident() Parser[token.Token] {
	return expect("IDENT", func(t token.Token) bool {
		return t.Kind() == token.Ident
	})
}

// Keyword parses an identifier token whose text equals word.
func Keyword(word string) Parser[token.Token] {
	return expect("`"+word+"`", func(t token.Token) bool {
		return t.Kind() == token.Ident && t.Text() == word
	})
}

// Literal parses a literal token (a number or a quoted string).
func Literal() Parser[token.Token] {
	return expect("LITERAL", func(t token.Token) bool {
		return t.Kind() == token.Literal
	})
}

// Punct parses a punctuation token whose character equals r.
//
// Delimiter characters never appear as punctuation tokens; to match a
// delimited region, use [Group].
func Punct(r rune) Parser[token.Token] {
	return expect("`"+string(r)+"`", func(t token.Token) bool {
		c, _, ok := t.Punct()
		return ok && c == r
	})
}

// Group parses a group with the given delimiter, running inner on its
// children.
//
// inner must consume the children exactly: leftover tokens fail the parse
// at the first leftover token's span. The result carries the whole group's
// span, delimiters included, even when inner matched zero tokens.
func Group[T any](delim token.Delimiter, inner Parser[T]) Parser[stream.Positioned[T]] {
	expected := delimName(delim)
	return func(s stream.Stream) (stream.Positioned[T], stream.Stream, error) {
		var zero stream.Positioned[T]

		entry, ok := stream.Enter(s)
		if !ok {
			tok, _ := s.Peek()
			return zero, s, &UnexpectedTokenError{Token: tok, Expected: expected, At: s.Position()}
		}
		if entry.Delim != delim {
			return zero, s, &DelimiterMismatchError{Want: delim, Got: entry.Delim, At: entry.Span}
		}

		value, rest, err := inner(entry.Inner)
		if err != nil {
			return zero, s, err
		}
		if tok, ok := rest.Peek(); ok {
			expectedClose := "end of group"
			if delim != token.None {
				expectedClose = fmt.Sprintf("`%c`", delim.Close())
			}
			return zero, s, &UnexpectedTokenError{Token: tok, Expected: expectedClose, At: rest.Position()}
		}

		return stream.At(value, entry.Span), entry.Resume(), nil
	}
}

// expect parses a single token satisfying pred, failing with the given
// expectation otherwise.
func expect(expected string, pred func(token.Token) bool) Parser[token.Token] {
	return func(s stream.Stream) (token.Token, stream.Stream, error) {
		tok, rest, err := s.Uncons()
		if err != nil {
			return token.Zero, s, &UnexpectedTokenError{Expected: expected, At: s.Position()}
		}
		if !pred(tok) {
			return token.Zero, s, &UnexpectedTokenError{Token: tok, Expected: expected, At: tok.Span()}
		}
		return tok, rest, nil
	}
}
