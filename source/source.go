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

// Package source provides the span model that every token in a treestream
// token tree carries.
//
// A [Span] is a half-open byte range into a [File]. The zero Span is the
// "absent" span, used for synthetic tokens that have no source origin.
// Spans compose with [Join], which is total: it never fails, absent spans
// are the identity, and the result is independent of association order.
package source

import (
	"slices"
	"strings"
	"sync"
	"unicode"
)

// Location is a user-displayable location within a source file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed. Columns are measured
	// in runes; renderers that need terminal columns re-measure the line
	// themselves.
	//
	// Because these are 1-indexed, a zero Line can be used as a sentinel.
	Line, Column int
}

// File is a source file that spans refer into.
//
// It carries the book-keeping needed to resolve byte offsets into editor
// coordinates. A nil *File behaves like an empty file with the path "".
type File struct {
	path, text string

	once sync.Once
	// A prefix sum of line lengths. Given a byte offset, binary searching
	// this slice recovers the line the offset is on.
	lineIndex []int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's filesystem path.
//
// It doesn't need to be a real path, but spans are only joined within a
// single file, deduplicated by identity.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Span is a shorthand for creating a new [Span] into this file.
//
// Returns the absent span if f is nil.
func (f *File) Span(start, end int) Span {
	if f == nil {
		return Span{}
	}
	return Span{f, start, end}
}

// EOF returns a zero-width span pointing just past the last non-whitespace
// rune in the file, suitable for end-of-input diagnostics.
func (f *File) EOF() Span {
	if f == nil {
		return Span{}
	}

	eof := strings.LastIndexFunc(f.Text(), func(r rune) bool {
		return !unicode.In(r, unicode.Pattern_White_Space)
	})
	if eof == -1 {
		eof = 0 // The whole file is whitespace.
	} else {
		eof++
	}

	return f.Span(eof, eof)
}

// Location resolves a byte offset into line/column information.
//
// This operation is O(log n) after the first call.
func (f *File) Location(offset int) Location {
	if f == nil {
		return Location{Offset: offset, Line: 1, Column: 1}
	}

	lines := f.lines()

	// Find the greatest index such that lines[line] <= offset.
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	column := 1
	for range f.text[lines[line]:offset] {
		column++
	}

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: column,
	}
}

// Line returns the text of the given 1-indexed line, without its trailing
// newline.
func (f *File) Line(line int) string {
	start, end := f.LineOffsets(line)
	return strings.TrimSuffix(f.text[start:end], "\n")
}

// LineOffsets returns the byte offsets of the given 1-indexed line,
// including its trailing newline.
func (f *File) LineOffsets(line int) (start, end int) {
	lines := f.lines()
	start = lines[line-1]
	if line < len(lines) {
		return start, lines[line]
	}
	return start, len(f.text)
}

func (f *File) lines() []int {
	// Compute the prefix sum on-demand.
	f.once.Do(func() {
		var next int
		text := f.Text()
		for {
			// We add 1 because we want the index immediately *after* the
			// newline byte.
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}
			text = text[newline:]

			f.lineIndex = append(f.lineIndex, next)
			next += newline
		}
		f.lineIndex = append(f.lineIndex, next)
	})
	return f.lineIndex
}
