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

// Package stream presents one nesting level of a token tree as a flat,
// positioned, backtrackable input stream.
//
// A [Stream] is a value: a shared immutable token buffer plus an offset.
// Consuming a token produces a new Stream and leaves the old one intact,
// so a parser that fails after consuming input backtracks by simply
// reusing the Stream value it started from. No operation in this package
// mutates shared state, which also makes concurrent use of clones safe.
//
// Nested groups are not flattened. A [token.Delimited] token is consumed as a
// single token at its own level; [Enter] descends into it and hands back a
// resumption point in the parent level for when the group is done.
package stream

import (
	"errors"

	"github.com/parserkit/treestream/source"
	"github.com/parserkit/treestream/token"
)

// ErrEndOfInput is returned by [Stream.Uncons] when no tokens remain.
// Combinator layers use it to drive alternation.
var ErrEndOfInput = errors.New("end of input")

// Stream is a flat, positioned view over an ordered token sequence.
//
// The zero Stream is an empty stream with an absent position.
type Stream struct {
	toks []token.Token
	off  int
	// The position reported once the stream is exhausted: the closing
	// delimiter of the group this stream came from, or the end of the last
	// token for a root sequence. Absent for span-less sources.
	end source.Span
}

// Of returns a stream over the given tokens.
//
// The token slice is shared, not copied; it must not be modified after the
// call.
func Of(tokens ...token.Token) Stream {
	return Stream{toks: tokens, end: afterLast(tokens)}
}

// FromGroup returns a stream over the children of g.
//
// Once exhausted, the stream's position is the group's closing delimiter,
// so "expected more input" diagnostics point at the spot the group closed
// rather than at nothing.
func FromGroup(g *token.Group) Stream {
	children := g.Children()
	span := g.Span()
	switch {
	case span.IsZero():
		return Stream{toks: children, end: afterLast(children)}
	case g.Delimiter() == token.None:
		return Stream{toks: children, end: span.File.Span(span.End, span.End)}
	default:
		return Stream{toks: children, end: span.File.Span(span.End-1, span.End)}
	}
}

// Uncons returns the first token in the stream and a stream over the
// remainder.
//
// The receiver is not modified: retrying from s after a failed parse is
// always valid. Returns [ErrEndOfInput] if the stream is empty.
func (s Stream) Uncons() (token.Token, Stream, error) {
	if s.off >= len(s.toks) {
		return token.Zero, s, ErrEndOfInput
	}
	return s.toks[s.off], Stream{toks: s.toks, off: s.off + 1, end: s.end}, nil
}

// Peek returns the token the next [Stream.Uncons] would return, without
// consuming it.
func (s Stream) Peek() (token.Token, bool) {
	if s.off >= len(s.toks) {
		return token.Zero, false
	}
	return s.toks[s.off], true
}

// IsEmpty returns whether the stream contains no more tokens.
func (s Stream) IsEmpty() bool {
	return s.off >= len(s.toks)
}

// Len returns the number of remaining tokens.
func (s Stream) Len() int {
	return len(s.toks) - s.off
}

// Position returns the span of the token the next [Stream.Uncons] would
// return, or the end-of-input span once the stream is exhausted, or the
// absent span if the stream was built from a span-less source.
func (s Stream) Position() source.Span {
	if tok, ok := s.Peek(); ok {
		return tok.Span()
	}
	return s.end
}

// Tokens returns the remaining tokens as a slice.
//
// The slice is shared with the stream and must not be modified.
func (s Stream) Tokens() []token.Token {
	return s.toks[s.off:]
}

// Equal reports whether two streams are interchangeable: views of the same
// underlying token sequence at the same offset.
func (s Stream) Equal(t Stream) bool {
	if len(s.toks) != len(t.toks) || s.off != t.off || s.end != t.end {
		return false
	}
	return len(s.toks) == 0 || &s.toks[0] == &t.toks[0]
}

// Span returns the span covering the tokens consumed between two views of
// the same stream, computed per the first-token/last-token rule: the join
// of the first and last consumed tokens' spans. Tokens in between do not
// participate, so trivia with sliver spans cannot poke holes in the result.
//
// Returns the absent span if nothing was consumed, or if before and after
// are not views of the same sequence (e.g. after descending into a group
// without resuming).
func Span(before, after Stream) source.Span {
	if len(before.toks) != len(after.toks) ||
		(len(before.toks) > 0 && &before.toks[0] != &after.toks[0]) {
		return source.Span{}
	}
	if after.off <= before.off {
		return source.Span{}
	}

	first := before.toks[before.off]
	last := after.toks[after.off-1]
	return source.Join(first.Span(), last.Span())
}

// afterLast computes the end-of-input span for a root token sequence: a
// zero-width span just past the last token.
func afterLast(tokens []token.Token) source.Span {
	if len(tokens) == 0 {
		return source.Span{}
	}
	span := tokens[len(tokens)-1].Span()
	if span.IsZero() {
		return source.Span{}
	}
	return span.File.Span(span.End, span.End)
}
