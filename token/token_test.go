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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parserkit/treestream/source"
	"github.com/parserkit/treestream/token"
)

func TestZero(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(token.Zero.IsZero())
	assert.True(token.Zero.IsSynthetic())
	assert.Equal(token.Unrecognized, token.Zero.Kind())
	assert.Equal("", token.Zero.Text())
	assert.True(token.Zero.Span().IsZero())
	assert.Nil(token.Zero.Group())
}

func TestConstructors(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	f := source.NewFile("test", "foo 42 +")

	ident := token.NewIdent("foo", f.Span(0, 3))
	assert.Equal(token.Ident, ident.Kind())
	assert.Equal("foo", ident.Text())
	assert.Equal(f.Span(0, 3), ident.Span())
	assert.False(ident.IsSynthetic())

	lit := token.NewLiteral("42", f.Span(4, 6))
	assert.Equal(token.Literal, lit.Kind())
	assert.Equal("42", lit.Text())

	punct := token.NewPunct('+', token.Alone, f.Span(7, 8))
	r, spacing, ok := punct.Punct()
	assert.True(ok)
	assert.Equal('+', r)
	assert.Equal(token.Alone, spacing)

	// Synthetic tokens carry the absent span.
	synthetic := token.NewIdent("gen", source.Span{})
	assert.True(synthetic.IsSynthetic())
	assert.False(synthetic.IsZero())
}

func TestConstructorPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { token.NewIdent("", source.Span{}) })
	assert.Panics(t, func() { token.NewLiteral("", source.Span{}) })
	assert.Panics(t, func() { token.NewPunct('(', token.Alone, source.Span{}) })
	assert.Panics(t, func() { token.NewPunct('}', token.Alone, source.Span{}) })
}

func TestGroupToken(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	f := source.NewFile("test", "(a b)")
	children := []token.Token{
		token.NewIdent("a", f.Span(1, 2)),
		token.NewIdent("b", f.Span(3, 4)),
	}
	g := token.NewGroup(token.Paren, children, f.Span(0, 5))

	tok := g.Token()
	assert.Equal(token.Delimited, tok.Kind())
	assert.Equal("(", tok.Text())
	assert.Equal(f.Span(0, 5), tok.Span())
	assert.Same(g, tok.Group())
	assert.Equal(2, g.Len())
}

func TestEqual(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	f := source.NewFile("test", "foo foo")

	// Spans do not participate in equality.
	a := token.NewIdent("foo", f.Span(0, 3))
	b := token.NewIdent("foo", f.Span(4, 7))
	c := token.NewIdent("foo", source.Span{})
	assert.True(a.Equal(b))
	assert.True(a.Equal(c))
	assert.False(a.Equal(token.NewIdent("bar", source.Span{})))
	assert.False(a.Equal(token.NewLiteral("foo", source.Span{})))

	// Groups compare recursively.
	mk := func(delim token.Delimiter, children ...token.Token) token.Token {
		return token.NewGroup(delim, children, source.Span{}).Token()
	}
	assert.True(mk(token.Paren, a).Equal(mk(token.Paren, b)))
	assert.False(mk(token.Paren, a).Equal(mk(token.Bracket, a)))
	assert.False(mk(token.Paren, a).Equal(mk(token.Paren, a, b)))
	assert.False(mk(token.Paren, a).Equal(a))
}

func TestPrint(t *testing.T) {
	t.Parallel()

	tests := []struct{ text, printed string }{
		{"foo + 1", "foo + 1"},
		{"a += b", "a += b"},
		{"--x", "-- x"},
		{"- - x", "- - x"},
		{"f(x, [1]) { y }", "f (x , [1]) {y}"},
		{`say "hi"`, `say "hi"`},
	}
	for _, test := range tests {
		test := test
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			f := source.NewFile("test", test.text)
			root, diags := token.Parse(f)
			assert.Empty(t, diags)
			assert.Equal(t, test.printed, token.Print(root.Children()))
		})
	}
}

func TestPrintIdempotent(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// Printing, re-lexing, and printing again is a fixed point.
	text := `let v = f(--x, [1, "two"]) { inner }`
	root, diags := token.Parse(source.NewFile("test", text))
	assert.Empty(diags)
	once := token.Print(root.Children())

	again, diags := token.Parse(source.NewFile("test", once))
	assert.Empty(diags)
	assert.Equal(once, token.Print(again.Children()))
	assert.True(root.Token().Equal(again.Token()))
}
