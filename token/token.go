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

// Package token defines the token tree model that treestream adapts into
// flat streams.
//
// A token tree is a sequence of atomic tokens (identifiers, literals,
// punctuation) and delimited groups, each of which contains a nested token
// sequence. Every token carries a [source.Span]; tokens created by
// generator code rather than by [Parse] are synthetic and carry the absent
// span.
//
// Tokens are immutable values. Once a [Group] has been built, neither it
// nor any token reachable from it may be modified; this is what makes the
// derived streams cheap to clone and safe to share.
package token

import (
	"fmt"
	"strings"

	"github.com/parserkit/treestream/source"
)

// Zero is the zero [Token], used to denote the absence of a token.
var Zero Token

// Token is a single element of a token tree.
//
// The zero value is the so-called "zero token", which reports
// [Unrecognized] kind and empty text.
type Token struct {
	kind    Kind
	spacing Spacing
	// The token's text. For Punct this is the single punctuation character;
	// for Delimited it is empty (the text lives in group).
	text  string
	span  source.Span
	group *Group
}

// NewIdent returns a new identifier token.
//
// Pass the absent span for a synthetic identifier. Panics if name is empty.
func NewIdent(name string, span source.Span) Token {
	if name == "" {
		panic("treestream/token: NewIdent() called with empty name")
	}
	return Token{kind: Ident, text: name, span: span}
}

// NewLiteral returns a new literal token with the given source text, such
// as `42` or `"hello"`.
//
// The text is the literal's source form: string literals include their
// quotes. Panics if text is empty.
func NewLiteral(text string, span source.Span) Token {
	if text == "" {
		panic("treestream/token: NewLiteral() called with empty text")
	}
	return Token{kind: Literal, text: text, span: span}
}

// NewPunct returns a new punctuation token.
//
// Panics if r is a delimiter character; delimiters only occur as the
// [Delimiter] of a [Group].
func NewPunct(r rune, spacing Spacing, span source.Span) Token {
	if strings.ContainsRune("()[]{}", r) {
		panic(fmt.Sprintf("treestream/token: NewPunct() called with delimiter character %q", r))
	}
	return Token{kind: Punct, text: string(r), spacing: spacing, span: span}
}

// Kind returns what kind of token this is.
func (t Token) Kind() Kind {
	return t.kind
}

// IsZero returns whether this is the zero token.
func (t Token) IsZero() bool {
	return t == Token{}
}

// IsSynthetic returns whether this token carries no source location.
func (t Token) IsSynthetic() bool {
	return t.Span().IsZero()
}

// Text returns the text of this token.
//
// For [Delimited] tokens this returns only the text of the opening
// delimiter; the children's text is not included. Use [Print] to render a
// whole tree.
func (t Token) Text() string {
	if t.kind == Delimited {
		return string(t.group.delim.Open())
	}
	return t.text
}

// Span implements [source.Spanner].
//
// For [Delimited] tokens the span covers the delimiters and everything
// between them.
func (t Token) Span() source.Span {
	if t.kind == Delimited {
		return t.group.span
	}
	return t.span
}

// Punct returns the punctuation character and spacing hint of this token.
//
// Returns 0, Alone, false if this is not a [Punct] token.
func (t Token) Punct() (r rune, spacing Spacing, ok bool) {
	if t.kind != Punct {
		return 0, Alone, false
	}
	for _, c := range t.text {
		r = c
	}
	return r, t.spacing, true
}

// Group returns the group wrapped by this token, or nil if this is not a
// [Delimited] token.
func (t Token) Group() *Group {
	if t.kind != Delimited {
		return nil
	}
	return t.group
}

// Equal reports whether two tokens have the same content, ignoring spans
// and spacing hints. Delimited tokens are compared recursively.
func (t Token) Equal(u Token) bool {
	if t.kind != u.kind {
		return false
	}
	if t.kind != Delimited {
		return t.text == u.text
	}

	a, b := t.group, u.group
	if a.delim != b.delim || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !a.children[i].Equal(b.children[i]) {
			return false
		}
	}
	return true
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	if t.IsZero() {
		return "{Zero}"
	}
	if t.kind == Delimited {
		return fmt.Sprintf("{%v %v}", t.kind, t.group.delim)
	}
	return fmt.Sprintf("{%v %q}", t.kind, t.text)
}

// Group is an ordered sequence of child tokens wrapped in a pair of
// delimiters (or in no delimiters at all, for [None] groups).
//
// Groups are immutable: the child slice passed to [NewGroup] must not be
// modified afterwards.
type Group struct {
	delim    Delimiter
	children []Token
	span     source.Span
}

// NewGroup returns a new group token's payload.
//
// span must cover the delimiters and all children; pass the absent span
// only for synthetic groups. An empty group with real delimiters keeps the
// delimiter pair's span.
func NewGroup(delim Delimiter, children []Token, span source.Span) *Group {
	return &Group{delim: delim, children: children, span: span}
}

// Delimiter returns the delimiter kind of this group.
func (g *Group) Delimiter() Delimiter {
	return g.delim
}

// Children returns the child tokens of this group.
//
// The returned slice is shared with the group and must not be modified.
func (g *Group) Children() []Token {
	return g.children
}

// Len returns the number of child tokens.
func (g *Group) Len() int {
	return len(g.children)
}

// Span returns the span of the whole group, delimiters included.
func (g *Group) Span() source.Span {
	if g == nil {
		return source.Span{}
	}
	return g.span
}

// Token wraps this group as a [Delimited] token.
func (g *Group) Token() Token {
	return Token{kind: Delimited, group: g}
}

// String implements [fmt.Stringer].
func (g *Group) String() string {
	return fmt.Sprintf("{%v len=%d}", g.delim, len(g.children))
}
