// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/cel-go/cel"
)

// Sentinel errors for rule compilation and evaluation.
var (
	// ErrExpressionCheck is returned when an expression fails syntax or type checking.
	ErrExpressionCheck = errors.New("rule expression check failed")

	// ErrEvaluation is returned when evaluating a rule fails for a reason
	// other than malformed request input.
	ErrEvaluation = errors.New("rule evaluation failed")

	// ErrInvalidResult is returned when a rule does not produce a bool.
	ErrInvalidResult = errors.New("rule returned invalid result type")
)

// Issue is one problem found in an expression.
type Issue struct {
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// Details lists the issues found in an expression.
type Details struct {
	Errors []Issue `json:"errors,omitempty"`
	Source string  `json:"source,omitempty"`
}

// AsJSON returns d encoded as JSON.
func (d *Details) AsJSON() string {
	b, err := json.Marshal(d)
	if err != nil {
		return fmt.Sprintf(`{"error": "failed to marshal JSON: %s"}`, err)
	}
	return string(b)
}

func detailsFromIssues(source string, issues *cel.Issues) Details {
	d := Details{
		Source: source,
		Errors: make([]Issue, 0, len(issues.Errors())),
	}
	for _, e := range issues.Errors() {
		d.Errors = append(d.Errors, Issue{
			Line: e.Location.Line(),
			Col:  e.Location.Column(),
			Msg:  e.Message,
		})
	}
	return d
}

// ParseError is a syntax error in a rule expression.
type ParseError struct {
	Details
	err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error in rule %q: %s", e.Source, e.err)
}

// Unwrap returns the underlying error, which wraps ErrExpressionCheck.
func (e *ParseError) Unwrap() error {
	return e.err
}

// CheckError is a type error in a rule expression, such as a reference to
// an undeclared variable.
type CheckError struct {
	Details
	err error
}

// Error implements the error interface.
func (e *CheckError) Error() string {
	return fmt.Sprintf("type error in rule %q: %s", e.Source, e.err)
}

// Unwrap returns the underlying error, which wraps ErrExpressionCheck.
func (e *CheckError) Unwrap() error {
	return e.err
}

func newParseError(source string, issues *cel.Issues) error {
	return &ParseError{
		Details: detailsFromIssues(source, issues),
		err:     fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err()),
	}
}

func newCheckError(source string, issues *cel.Issues) error {
	return &CheckError{
		Details: detailsFromIssues(source, issues),
		err:     fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err()),
	}
}
