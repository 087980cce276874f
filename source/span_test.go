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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parserkit/treestream/source"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test", "foo\nbar\nlonger line\n")

	tests := []struct {
		offset, line, column int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 1, 4},
		{4, 2, 1},
		{7, 2, 4},
		{8, 3, 1},
		{18, 3, 11},
	}
	for _, test := range tests {
		loc := file.Location(test.offset)
		assert.Equal(t, source.Location{Offset: test.offset, Line: test.line, Column: test.column}, loc)
	}
}

func TestLine(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := source.NewFile("test", "foo\nbar\nbaz")
	assert.Equal("foo", file.Line(1))
	assert.Equal("bar", file.Line(2))
	assert.Equal("baz", file.Line(3))
}

func TestEOF(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := source.NewFile("test", "foo bar  \n")
	eof := file.EOF()
	assert.Equal(7, eof.Start)
	assert.Equal(0, eof.Len())

	blank := source.NewFile("test", "   ")
	assert.Equal(0, blank.EOF().Start)

	var nilFile *source.File
	assert.True(nilFile.EOF().IsZero())
}

func TestJoin(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	f := source.NewFile("test", "abcdefghij")
	a := f.Span(0, 3)
	b := f.Span(5, 7)
	c := f.Span(2, 6)
	absent := source.Span{}

	assert.Equal(f.Span(0, 7), source.Join(a, b))
	assert.Equal(f.Span(0, 7), source.Join(b, a))
	assert.Equal(f.Span(0, 7), source.Join(a, b, absent))

	// Associativity, including with absent spans in every slot.
	spans := []source.Span{a, b, c, absent}
	for _, x := range spans {
		for _, y := range spans {
			for _, z := range spans {
				left := source.Join(source.Join(x, y), z)
				right := source.Join(x, source.Join(y, z))
				assert.Equal(left, right, "Join(%v, %v, %v)", x, y, z)
			}
		}
	}

	// Absent is the identity.
	assert.Equal(a, source.Join(a, absent))
	assert.Equal(a, source.Join(absent, a))
	assert.True(source.Join(absent, absent).IsZero())
	assert.True(source.Join().IsZero())
}

func TestJoinDistinctFiles(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	f := source.NewFile("a", "aaaa")
	g := source.NewFile("b", "bbbb")

	// Spans from a second file never contribute; the result stays a
	// contiguous range of the first file seen.
	joined := source.Join(f.Span(1, 2), g.Span(0, 4), f.Span(3, 4))
	assert.Equal(f.Span(1, 4), joined)
}

func TestSpanText(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	f := source.NewFile("test", "hello world")
	s := f.Span(6, 11)
	assert.Equal("world", s.Text())
	assert.Equal(5, s.Len())
	assert.Equal(`"test":1:7[6:11]`, s.String())
	assert.Equal("<unknown>", source.Span{}.String())
}
