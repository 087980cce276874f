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

package parser

import (
	"errors"
	"fmt"

	"github.com/parserkit/treestream/report"
	"github.com/parserkit/treestream/source"
	"github.com/parserkit/treestream/stream"
	"github.com/parserkit/treestream/token"
)

// ErrEndOfInput is [stream.ErrEndOfInput]. An [UnexpectedTokenError] whose
// Token is zero unwraps to it, so errors.Is(err, ErrEndOfInput) identifies
// failures at the end of input regardless of which parser produced them.
var ErrEndOfInput = stream.ErrEndOfInput

// UnexpectedTokenError reports that a grammar rule rejected the token it
// saw. It is recoverable: the stream the rule was applied to is unchanged
// and may be retried with another rule.
type UnexpectedTokenError struct {
	// The offending token. Zero if the stream was exhausted.
	Token token.Token

	// What the rule wanted, e.g. "IDENT" or "`}`".
	Expected string

	// Where the failure occurred. For an exhausted stream this is the
	// end-of-input span.
	At source.Span
}

// Error implements [error].
func (e *UnexpectedTokenError) Error() string {
	if e.Token.IsZero() {
		return fmt.Sprintf("expected %s, found end of input", e.Expected)
	}
	return fmt.Sprintf("expected %s, found `%s`", e.Expected, token.Print([]token.Token{e.Token}))
}

// Unwrap links end-of-input failures to [ErrEndOfInput].
func (e *UnexpectedTokenError) Unwrap() error {
	if e.Token.IsZero() {
		return ErrEndOfInput
	}
	return nil
}

// Position returns the span the failure occurred at.
func (e *UnexpectedTokenError) Position() source.Span {
	return e.At
}

// DelimiterMismatchError reports that a group was found where one was
// expected, but with the wrong delimiter kind. It follows the exact same
// recovery and surfacing path as [UnexpectedTokenError].
type DelimiterMismatchError struct {
	Want, Got token.Delimiter

	// The span of the found group, delimiters included.
	At source.Span
}

// Error implements [error].
func (e *DelimiterMismatchError) Error() string {
	return fmt.Sprintf("expected %s, found %s", delimName(e.Want), delimName(e.Got))
}

// Position returns the span the failure occurred at.
func (e *DelimiterMismatchError) Position() source.Span {
	return e.At
}

func delimName(d token.Delimiter) string {
	if d == token.None {
		return "an undelimited group"
	}
	return fmt.Sprintf("`%c ... %c`", d.Open(), d.Close())
}

// Diagnose converts a parse failure into a renderable diagnostic anchored
// at the failure's position. This is the path an unrecovered failure takes
// on its way to the end user.
func Diagnose(err error) report.Diagnostic {
	var at source.Span
	var positioned interface{ Position() source.Span }
	if errors.As(err, &positioned) {
		at = positioned.Position()
	}
	return report.Errorf(at, "%s", err)
}
