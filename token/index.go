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

package token

import (
	"github.com/parserkit/treestream/internal/interval"
	"github.com/parserkit/treestream/source"
)

// Index answers "which group encloses this byte offset" queries over a
// token tree. Renderers use it to point at the opening delimiter of the
// group a diagnostic occurred in.
//
// Only delimited groups with real spans are indexed; [None] groups and
// synthetic groups are invisible to the index.
type Index struct {
	groups interval.Nesting[int, *Group]
}

// NewIndex builds an index over every delimited group reachable from root,
// including root itself.
func NewIndex(root *Group) *Index {
	idx := &Index{}
	if span := root.Span(); root.Delimiter() != None && !span.IsZero() {
		idx.groups.Insert(span.Start, span.End, root)
	}
	idx.add(root)
	return idx
}

func (i *Index) add(g *Group) {
	for _, child := range g.Children() {
		sub := child.Group()
		if sub == nil {
			continue
		}
		if span := sub.Span(); sub.Delimiter() != None && !span.IsZero() {
			i.groups.Insert(span.Start, span.End, sub)
		}
		i.add(sub)
	}
}

// EnclosingGroup returns the innermost delimited group whose span contains
// the given byte offset.
func (i *Index) EnclosingGroup(offset int) (*Group, bool) {
	iv, ok := i.groups.Innermost(offset)
	if !ok {
		return nil, false
	}
	return iv.Value, true
}

// Enclosing returns the span of the innermost delimited group containing
// offset. It implements report.Enclosing.
func (i *Index) Enclosing(offset int) (source.Span, bool) {
	g, ok := i.EnclosingGroup(offset)
	if !ok {
		return source.Span{}, false
	}
	return g.Span(), true
}
