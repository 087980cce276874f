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

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/parserkit/treestream/source"
)

// Enclosing resolves a byte offset to the span of the innermost token
// group containing it. It is implemented by token.Index.
type Enclosing interface {
	Enclosing(offset int) (source.Span, bool)
}

// Renderer renders diagnostics in a rustc-like format:
//
//	error: expected `}`
//	  --> query.ts:2:5
//	   |
//	 2 | foo +
//	   |     ^
//
// The zero Renderer renders without color and without group notes.
type Renderer struct {
	// Whether to colorize output with ANSI styles.
	Color bool

	// If set, diagnostics whose primary span lies inside a delimited group
	// gain a note pointing at the group's opening delimiter.
	Groups Enclosing
}

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgYellow, color.Bold)
	gutterStyle  = color.New(color.FgBlue, color.Bold)
	caretStyle   = color.New(color.FgRed, color.Bold)
)

// Render writes a single diagnostic to w.
func (r *Renderer) Render(w io.Writer, d Diagnostic) error {
	style := errorStyle
	if d.Severity == Warning {
		style = warningStyle
	}

	if _, err := fmt.Fprintf(w, "%s %s\n",
		r.sprint(style, d.Severity.String()+":"), d.Message); err != nil {
		return err
	}

	notes := d.Notes
	if note, ok := r.groupNote(d.Primary); ok {
		notes = append(notes[:len(notes):len(notes)], note)
	}

	if d.Primary.IsZero() {
		return r.renderNotes(w, "   ", notes)
	}

	start := d.Primary.StartLoc()
	lineText, caret := sourceWindow(d.Primary)

	gutter := fmt.Sprintf("%d", start.Line)
	pad := strings.Repeat(" ", len(gutter))

	locus := fmt.Sprintf("%s--> ", pad)
	if _, err := fmt.Fprintf(w, "%s%s:%d:%d\n",
		r.sprint(gutterStyle, locus), d.Primary.Path(), start.Line, start.Column); err != nil {
		return err
	}

	lines := [][2]string{
		{pad + " |", ""},
		{gutter + " |", " " + lineText},
		{pad + " |", " " + r.sprint(caretStyle, caret)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s%s\n", r.sprint(gutterStyle, l[0]), l[1]); err != nil {
			return err
		}
	}

	return r.renderNotes(w, pad+" ", notes)
}

// RenderAll renders each diagnostic in order, separated by blank lines.
func (r *Renderer) RenderAll(w io.Writer, diags []Diagnostic) error {
	for i, d := range diags {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := r.Render(w, d); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderNotes(w io.Writer, pad string, notes []string) error {
	for _, note := range notes {
		if _, err := fmt.Fprintf(w, "%s%s note: %s\n", pad, r.sprint(gutterStyle, "="), note); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) groupNote(span source.Span) (string, bool) {
	if r.Groups == nil || span.IsZero() {
		return "", false
	}
	group, ok := r.Groups.Enclosing(span.Start)
	if !ok {
		return "", false
	}
	loc := group.StartLoc()
	return fmt.Sprintf("inside the group opened at %s:%d:%d", group.Path(), loc.Line, loc.Column), true
}

func (r *Renderer) sprint(style *color.Color, s string) string {
	if !r.Color {
		return s
	}
	return style.Sprint(s)
}

// sourceWindow extracts the line the span starts on and a caret line
// underlining the spanned text (clamped to the end of that line).
func sourceWindow(span source.Span) (line, caret string) {
	start := span.StartLoc()
	lineStart, lineEnd := span.File.LineOffsets(start.Line)
	line = strings.TrimSuffix(span.File.Text()[lineStart:lineEnd], "\n")

	prefix := span.File.Text()[lineStart:span.Start]
	end := min(span.End, lineStart+len(line))
	underlined := span.File.Text()[span.Start:max(end, span.Start)]

	line = detab(line)
	caret = strings.Repeat(" ", stringWidth(detab(prefix))) +
		strings.Repeat("^", max(1, stringWidth(detab(underlined))))
	return line, caret
}

func detab(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
