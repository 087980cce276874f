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

// Package report defines span-anchored diagnostics and a renderer that
// points them back at the original source.
//
// The core parsing machinery only produces [source.Span] values; this
// package is the boundary where those values become something a person can
// read. DSL authors typically collect diagnostics from [token.Parse] and
// from failed parses, then render them with a [Renderer].
package report

import (
	"fmt"

	"github.com/parserkit/treestream/source"
)

const (
	Error Severity = iota
	Warning
)

// Severity classifies how bad a [Diagnostic] is.
type Severity int8

// String implements [fmt.Stringer].
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return fmt.Sprintf("report.Severity(%d)", int(s))
	}
}

// Diagnostic is a message anchored at a span of the original source.
//
// A diagnostic with an absent primary span is still renderable; it simply
// has no source locus.
type Diagnostic struct {
	Severity Severity
	Message  string

	// The span the message points at.
	Primary source.Span

	// Free-form notes printed after the source window.
	Notes []string
}

// Errorf constructs an error diagnostic anchored at span.
func Errorf(span source.Span, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Primary:  span,
	}
}

// Warningf constructs a warning diagnostic anchored at span.
func Warningf(span source.Span, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: Warning,
		Message:  fmt.Sprintf(format, args...),
		Primary:  span,
	}
}

// With returns a copy of this diagnostic with an extra note attached.
func (d Diagnostic) With(note string) Diagnostic {
	notes := make([]string, 0, len(d.Notes)+1)
	notes = append(notes, d.Notes...)
	d.Notes = append(notes, note)
	return d
}

// Error implements [error], so diagnostics can travel through error-shaped
// plumbing when a caller wants them to.
func (d Diagnostic) Error() string {
	if d.Primary.IsZero() {
		return fmt.Sprintf("%v: %s", d.Severity, d.Message)
	}
	loc := d.Primary.StartLoc()
	return fmt.Sprintf("%v: %s (at %s:%d:%d)", d.Severity, d.Message, d.Primary.Path(), loc.Line, loc.Column)
}
