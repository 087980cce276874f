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
	"github.com/parserkit/treestream/source"
	"github.com/parserkit/treestream/token"
)

// GroupEntry is the result of descending into a delimited group with
// [Enter]: a stream over the group's children and a resumption point in
// the parent level.
type GroupEntry struct {
	// The group's delimiter kind.
	Delim token.Delimiter

	// The span of the whole group, delimiters included. This is the span
	// an empty group reports, and the span a fragment that consumed the
	// group as a unit should use.
	Span source.Span

	// A stream over the group's children.
	Inner Stream

	after Stream
}

// Enter descends into the group at the front of s.
//
// Returns false, as an ordinary no-match rather than an error, if s is
// empty or its next token is not a group; the caller turns that into its
// own "expected group" parse failure.
//
// The inner grammar decides how much of Inner to consume; Enter does not
// enforce exhaustion. Tokens left in Inner when the caller moves on via
// [GroupEntry.Resume] are simply discarded, so callers that require the
// group be fully consumed must check Inner themselves (see
// [CollectTrailing]).
func Enter(s Stream) (GroupEntry, bool) {
	tok, ok := s.Peek()
	if !ok {
		return GroupEntry{}, false
	}
	g := tok.Group()
	if g == nil {
		return GroupEntry{}, false
	}

	_, after, _ := s.Uncons()
	return GroupEntry{
		Delim: g.Delimiter(),
		Span:  g.Span(),
		Inner: FromGroup(g),
		after: after,
	}, true
}

// Resume returns the parent stream positioned immediately after the group.
//
// Because streams are values, Resume is valid no matter what was done to
// Inner: failure inside the group never advances the parent.
func (e GroupEntry) Resume() Stream {
	return e.after
}
