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

import (
	"fmt"

	"github.com/parserkit/treestream/source"
	"github.com/parserkit/treestream/token"
)

// DefaultMaxTrailing caps how many leftover tokens [CollectTrailing]
// gathers when asked for a default-sized report.
const DefaultMaxTrailing = 50

// Trailing is a diagnostic-friendly capture of tokens left in a stream
// after parsing finished. Callers use it to enforce the "all input
// consumed" check that neither [Enter] nor the stream itself imposes.
type Trailing struct {
	tokens []token.Token
	more   int
}

// CollectTrailing captures up to max leftover tokens from s.
//
// Returns false if s is already exhausted, i.e. parsing consumed all
// input. Pass max <= 0 for [DefaultMaxTrailing].
func CollectTrailing(s Stream, max int) (Trailing, bool) {
	if max <= 0 {
		max = DefaultMaxTrailing
	}

	n := s.Len()
	if n == 0 {
		return Trailing{}, false
	}

	kept := min(n, max)
	return Trailing{tokens: s.Tokens()[:kept], more: n - kept}, true
}

// Tokens returns the captured tokens.
func (t Trailing) Tokens() []token.Token {
	return t.tokens
}

// Span returns the span covering the captured tokens.
func (t Trailing) Span() source.Span {
	if len(t.tokens) == 0 {
		return source.Span{}
	}
	return source.Join(t.tokens[0].Span(), t.tokens[len(t.tokens)-1].Span())
}

// String renders the captured tokens as source text, with a marker for any
// tokens past the cap.
func (t Trailing) String() string {
	text := token.Print(t.tokens)
	if t.more > 0 {
		return fmt.Sprintf("%s [and %d more ...]", text, t.more)
	}
	return text
}
