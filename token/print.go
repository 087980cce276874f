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

import "strings"

// Print renders a token sequence back into source text.
//
// Tokens are separated by single spaces, except that a [Joint] punctuation
// token glues directly onto its successor, so multi-character operators
// survive a parse/print round trip. Groups render as their delimiters
// wrapped around their printed children; [None] groups splice their
// children in place.
//
// Print is the re-emission half of the host boundary: the text is suitable
// for handing back to whatever consumes generated tokens, while spans stay
// attached to the Token values themselves.
func Print(tokens []Token) string {
	var sb strings.Builder
	printTokens(&sb, tokens)
	return sb.String()
}

func printTokens(sb *strings.Builder, tokens []Token) {
	for i, t := range tokens {
		if i > 0 && !glued(tokens[i-1]) {
			sb.WriteByte(' ')
		}
		printToken(sb, t)
	}
}

func printToken(sb *strings.Builder, t Token) {
	if t.Kind() != Delimited {
		sb.WriteString(t.Text())
		return
	}

	g := t.Group()
	if g.Delimiter() == None {
		printTokens(sb, g.Children())
		return
	}
	sb.WriteRune(g.Delimiter().Open())
	printTokens(sb, g.Children())
	sb.WriteRune(g.Delimiter().Close())
}

// glued reports whether the token joins directly onto its successor.
func glued(t Token) bool {
	_, spacing, ok := t.Punct()
	return ok && spacing == Joint
}
