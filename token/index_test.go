// Copyright 2025-2026 Parser Kit, Inc.
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
	"github.com/stretchr/testify/require"

	"github.com/parserkit/treestream/source"
	"github.com/parserkit/treestream/token"
)

func TestIndex(t *testing.T) {
	t.Parallel()

	f := source.NewFile("test", "(a[b])[c]")
	root, diags := token.Parse(f)
	require.Empty(t, diags)

	idx := token.NewIndex(root)

	tests := []struct {
		offset int
		span   source.Span
		found  bool
	}{
		{0, f.Span(0, 6), true}, // The open paren is inside its own group.
		{1, f.Span(0, 6), true},
		{2, f.Span(2, 5), true},
		{3, f.Span(2, 5), true},
		{5, f.Span(0, 6), true},
		{6, f.Span(6, 9), true},
		{7, f.Span(6, 9), true},
		{9, source.Span{}, false},
	}
	for _, test := range tests {
		span, found := idx.Enclosing(test.offset)
		assert.Equal(t, test.found, found, "offset %d", test.offset)
		assert.Equal(t, test.span, span, "offset %d", test.offset)
	}
}

func TestIndexRootInvisible(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// The root None group is never indexed: a top-level offset has no
	// enclosing delimiters.
	root, diags := token.Parse(source.NewFile("test", "a (b) c"))
	require.Empty(t, diags)

	idx := token.NewIndex(root)
	_, found := idx.Enclosing(0)
	assert.False(found)

	span, found := idx.Enclosing(3)
	assert.True(found)
	assert.Equal(2, span.Start)

	_, found = idx.Enclosing(6)
	assert.False(found)
}

func TestIndexSyntheticGroups(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// Synthetic groups have no offsets to query by, so they are skipped
	// rather than indexed at [0, 0).
	g := token.NewGroup(token.Paren, []token.Token{
		token.NewIdent("gen", source.Span{}),
	}, source.Span{})
	idx := token.NewIndex(token.NewGroup(token.None, []token.Token{g.Token()}, source.Span{}))

	_, found := idx.EnclosingGroup(0)
	assert.False(found)
}
