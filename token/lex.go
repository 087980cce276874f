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

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/parserkit/treestream/report"
	"github.com/parserkit/treestream/source"
)

// Parse lexes f into a token tree.
//
// The returned root group has delimiter [None] and spans the whole file.
// Whitespace and comments (// and /* */) are consumed as trivia and do not
// appear in the tree. Lexical problems are reported as diagnostics and
// recovered from, so the returned tree is always usable; callers that care
// about correctness must check the diagnostics for errors.
//
// This is the only place treestream turns text into tokens. Everything
// downstream of it operates on the tree.
func Parse(f *source.File) (*Group, []report.Diagnostic) {
	l := &lexer{
		f:      f,
		text:   f.Text(),
		frames: []frame{{}},
	}
	l.lex()

	root := &l.frames[0]
	return NewGroup(None, root.children, f.Span(0, len(l.text))), l.diags
}

// frame is one level of open delimiter nesting during lexing.
type frame struct {
	delim     Delimiter
	openStart int // Byte offset of the open delimiter.
	children  []Token
}

type lexer struct {
	f    *source.File
	text string

	cursor int
	// frames[0] is the root; an open delimiter pushes a frame and its
	// matching close pops it.
	frames []frame
	diags  []report.Diagnostic
}

func (l *lexer) lex() {
	for {
		l.skipTrivia()
		if l.done() {
			break
		}

		start := l.cursor
		r := l.pop()

		switch {
		case r == '_' || unicode.IsLetter(r):
			l.takeWhile(isIdentContinue)
			l.emit(NewIdent(l.text[start:l.cursor], l.span(start)))

		case unicode.IsDigit(r):
			l.number(start)

		case r == '"':
			l.string(start)

		default:
			if delim, ok := byOpen(r); ok {
				l.frames = append(l.frames, frame{delim: delim, openStart: start})
				break
			}
			if delim, ok := byClose(r); ok {
				l.close(delim, r, start)
				break
			}
			if isPunctRune(r) {
				spacing := Alone
				if isPunctRune(l.peek()) {
					spacing = Joint
				}
				l.emit(NewPunct(r, spacing, l.span(start)))
				break
			}
			l.errorf(l.span(start), "unrecognized character %q", r)
		}
	}

	// Unwind any delimiters left open at EOF. Each unclosed group is
	// extended to the end of the file so its span stays well-formed.
	for len(l.frames) > 1 {
		fr := l.popFrame(len(l.text))
		l.errorf(
			l.f.Span(fr.openStart, fr.openStart+1),
			"unclosed delimiter `%c`", fr.delim.Open(),
		)
	}
}

// close handles a closing delimiter character at offset start.
func (l *lexer) close(delim Delimiter, r rune, start int) {
	if len(l.frames) == 1 {
		l.errorf(l.span(start), "unexpected closing delimiter `%c`", r)
		return
	}

	top := &l.frames[len(l.frames)-1]
	if top.delim != delim {
		// Recover by treating this as the close of the innermost group
		// anyway; the alternative cascades one error per remaining token.
		l.errorf(l.span(start), "expected closing `%c`, found `%c`", top.delim.Close(), r)
	}
	l.popFrame(l.cursor)
}

// popFrame closes the innermost open frame, ending its span at end, and
// splices the finished group into the parent frame.
func (l *lexer) popFrame(end int) frame {
	fr := l.frames[len(l.frames)-1]
	l.frames = l.frames[:len(l.frames)-1]

	group := NewGroup(fr.delim, fr.children, l.f.Span(fr.openStart, end))
	parent := &l.frames[len(l.frames)-1]
	parent.children = append(parent.children, group.Token())
	return fr
}

// number consumes the tail of a numeric literal.
//
// Like most macro-token lexers, this takes a deliberately loose run of
// number-ish characters (digits, letters, underscores, dots, and exponent
// signs) and leaves validation to whoever interprets the literal.
func (l *lexer) number(start int) {
	for !l.done() {
		r, size := utf8.DecodeRuneInString(l.text[l.cursor:])
		isExpSign := (r == '+' || r == '-') &&
			(l.text[l.cursor-1] == 'e' || l.text[l.cursor-1] == 'E')
		if r == '_' || r == '.' || isExpSign || unicode.IsLetter(r) || unicode.IsDigit(r) {
			l.cursor += size
			continue
		}
		break
	}
	l.emit(NewLiteral(l.text[start:l.cursor], l.span(start)))
}

// string consumes the tail of a quoted string literal, including escapes.
// The literal's text keeps its quotes; escapes are not decoded.
func (l *lexer) string(start int) {
	for {
		if l.done() {
			l.errorf(l.f.Span(start, start+1), "unterminated string literal")
			break
		}
		r := l.pop()
		if r == '\\' && !l.done() {
			l.pop()
			continue
		}
		if r == '"' {
			break
		}
	}
	l.emit(NewLiteral(l.text[start:l.cursor], l.span(start)))
}

func (l *lexer) skipTrivia() {
	for !l.done() {
		r, size := utf8.DecodeRuneInString(l.text[l.cursor:])
		switch {
		case unicode.In(r, unicode.Pattern_White_Space):
			l.cursor += size

		case strings.HasPrefix(l.text[l.cursor:], "//"):
			if nl := strings.IndexByte(l.text[l.cursor:], '\n'); nl != -1 {
				l.cursor += nl + 1
			} else {
				l.cursor = len(l.text)
			}

		case strings.HasPrefix(l.text[l.cursor:], "/*"):
			start := l.cursor
			// Block comments do not nest.
			if end := strings.Index(l.text[l.cursor+2:], "*/"); end != -1 {
				l.cursor += 2 + end + 2
			} else {
				l.errorf(l.f.Span(start, start+2), "unterminated block comment")
				l.cursor = len(l.text)
			}

		default:
			return
		}
	}
}

func (l *lexer) emit(t Token) {
	top := &l.frames[len(l.frames)-1]
	top.children = append(top.children, t)
}

func (l *lexer) errorf(span source.Span, format string, args ...any) {
	l.diags = append(l.diags, report.Errorf(span, format, args...))
}

func (l *lexer) done() bool {
	return l.cursor >= len(l.text)
}

// pop decodes the rune at the cursor and advances past it.
func (l *lexer) pop() rune {
	r, size := utf8.DecodeRuneInString(l.text[l.cursor:])
	l.cursor += size
	return r
}

// peek decodes the rune at the cursor without advancing. Returns -1 at EOF.
func (l *lexer) peek() rune {
	if l.done() {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.text[l.cursor:])
	return r
}

func (l *lexer) takeWhile(p func(rune) bool) {
	for !l.done() && p(l.peek()) {
		l.pop()
	}
}

func (l *lexer) span(start int) source.Span {
	return l.f.Span(start, l.cursor)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isPunctRune reports whether r can form a [Punct] token: a graphic,
// non-alphanumeric character that is not a quote or delimiter.
func isPunctRune(r rune) bool {
	if r < 0 || unicode.IsSpace(r) || !unicode.IsGraphic(r) {
		return false
	}
	if r == '_' || r == '"' || unicode.IsLetter(r) || unicode.IsDigit(r) {
		return false
	}
	return !strings.ContainsRune("()[]{}", r)
}
