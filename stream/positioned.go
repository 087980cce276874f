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

package stream

import "github.com/parserkit/treestream/source"

// Positioned pairs a parsed value with the span covering the tokens it was
// built from, so span information survives combinator composition.
type Positioned[T any] struct {
	Value T

	// The covering span. Absent if the value was built from zero tokens,
	// which keeps empty optional fragments from widening an enclosing
	// span when joined.
	Span source.Span
}

// At wraps a value with a covering span.
func At[T any](value T, span source.Span) Positioned[T] {
	return Positioned[T]{Value: value, Span: span}
}
