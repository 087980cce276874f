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

// Package treestream adapts token trees into flat, positioned,
// backtrackable streams for parser combinators.
//
// Tokenized macro and DSL input is naturally a tree: atomic tokens plus
// delimited groups, each carrying a source span. Combinator-style parsers
// want a flat stream with cheap lookahead and backtracking. This module
// bridges the two while keeping spans intact, so diagnostics and
// re-emitted tokens point back at the original source.
//
// The pieces, bottom up:
//
//   - [source]: files and spans, including the absent span for synthetic
//     tokens, and the Join operation that computes covering spans.
//   - [token]: the immutable token tree model, the lexer that builds trees
//     from text, and the printer that renders trees back out.
//   - [stream]: the persistent stream view over one tree level, group
//     descent via Enter/Resume, and span-carrying Positioned values.
//   - [parser]: token-level parsers and a minimal combinator set.
//   - [report]: span-anchored diagnostics and a source-window renderer.
//
// This package itself only provides the two-line conveniences that wire
// them together for the common case.
package treestream

import (
	"github.com/parserkit/treestream/report"
	"github.com/parserkit/treestream/source"
	"github.com/parserkit/treestream/stream"
	"github.com/parserkit/treestream/token"
)

// ParseTree lexes text into a token tree. The path only labels spans and
// diagnostics; it is never opened.
func ParseTree(path, text string) (*token.Group, []report.Diagnostic) {
	return token.Parse(source.NewFile(path, text))
}

// Parse lexes text and returns a stream over the resulting root token
// sequence, ready to hand to parsers.
func Parse(path, text string) (stream.Stream, []report.Diagnostic) {
	root, diags := ParseTree(path, text)
	return stream.FromGroup(root), diags
}
