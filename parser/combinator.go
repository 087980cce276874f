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

package parser

import (
	"github.com/parserkit/treestream/source"
	"github.com/parserkit/treestream/stream"
)

// Maybe is the result of [Opt]: a value that may not have been parsed.
type Maybe[T any] struct {
	Value T
	OK    bool
}

// Map transforms a parser's result.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(s stream.Stream) (B, stream.Stream, error) {
		a, rest, err := p(s)
		if err != nil {
			var zero B
			return zero, s, err
		}
		return f(a), rest, nil
	}
}

// Then runs pa and then pb, keeping pb's result.
func Then[A, B any](pa Parser[A], pb Parser[B]) Parser[B] {
	return func(s stream.Stream) (B, stream.Stream, error) {
		var zero B
		_, rest, err := pa(s)
		if err != nil {
			return zero, s, err
		}
		b, rest, err := pb(rest)
		if err != nil {
			return zero, s, err
		}
		return b, rest, nil
	}
}

// Skip runs pa and then pb, keeping pa's result.
func Skip[A, B any](pa Parser[A], pb Parser[B]) Parser[A] {
	return func(s stream.Stream) (A, stream.Stream, error) {
		var zero A
		a, rest, err := pa(s)
		if err != nil {
			return zero, s, err
		}
		_, rest, err = pb(rest)
		if err != nil {
			return zero, s, err
		}
		return a, rest, nil
	}
}

// Seq runs each parser in order and collects the results.
func Seq[T any](ps ...Parser[T]) Parser[[]T] {
	return func(s stream.Stream) ([]T, stream.Stream, error) {
		rest := s
		out := make([]T, 0, len(ps))
		for _, p := range ps {
			v, next, err := p(rest)
			if err != nil {
				return nil, s, err
			}
			out = append(out, v)
			rest = next
		}
		return out, rest, nil
	}
}

// Alt tries each parser in order against the same starting stream,
// returning the first success.
//
// Because parsers never disturb the stream they fail on, Alt needs no
// checkpointing. On total failure it reports the failure that got
// furthest into the input.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(s stream.Stream) (T, stream.Stream, error) {
		var zero T
		var worst error
		for _, p := range ps {
			v, rest, err := p(s)
			if err == nil {
				return v, rest, nil
			}
			worst = furthest(worst, err)
		}
		if worst == nil {
			worst = &UnexpectedTokenError{Expected: "one of zero alternatives", At: s.Position()}
		}
		return zero, s, worst
	}
}

// Many applies p zero or more times until it fails, collecting the
// results. Never fails itself.
//
// If p succeeds without consuming anything, Many stops rather than loop
// forever.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(s stream.Stream) ([]T, stream.Stream, error) {
		var out []T
		rest := s
		for {
			v, next, err := p(rest)
			if err != nil || next.Equal(rest) {
				return out, rest, nil
			}
			out = append(out, v)
			rest = next
		}
	}
}

// Opt applies p, succeeding with an empty [Maybe] if p fails.
func Opt[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(s stream.Stream) (Maybe[T], stream.Stream, error) {
		v, rest, err := p(s)
		if err != nil {
			return Maybe[T]{}, s, nil
		}
		return Maybe[T]{Value: v, OK: true}, rest, nil
	}
}

// Spanned wraps p's result with the span covering the tokens p consumed:
// the join of the first and last consumed tokens' spans. A parse that
// consumed zero tokens gets the absent span.
func Spanned[T any](p Parser[T]) Parser[stream.Positioned[T]] {
	return func(s stream.Stream) (stream.Positioned[T], stream.Stream, error) {
		v, rest, err := p(s)
		if err != nil {
			var zero stream.Positioned[T]
			return zero, s, err
		}
		return stream.At(v, stream.Span(s, rest)), rest, nil
	}
}

// Complete requires p to consume the entire stream: any trailing tokens
// fail the parse at the first leftover token.
func Complete[T any](p Parser[T]) Parser[T] {
	return func(s stream.Stream) (T, stream.Stream, error) {
		v, rest, err := p(s)
		if err != nil {
			var zero T
			return zero, s, err
		}
		if tok, ok := rest.Peek(); ok {
			var zero T
			return zero, s, &UnexpectedTokenError{Token: tok, Expected: "end of input", At: rest.Position()}
		}
		return v, rest, nil
	}
}

// furthest picks the parse failure whose position is deepest in the input.
// Failures without positions (or with absent spans) lose.
func furthest(a, b error) error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if position(b).Start > position(a).Start || position(a).IsZero() {
		return b
	}
	return a
}

func position(err error) source.Span {
	if positioned, ok := err.(interface{ Position() source.Span }); ok {
		return positioned.Position()
	}
	return source.Span{}
}
