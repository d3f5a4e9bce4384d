// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"errors"
	"net/http"
)

// CodedError pairs a failure raised while reading a request (a malformed
// header, a missing parameter, a rule rejection) with the status the
// middleware answers it with.
type CodedError struct {
	err  error
	code int
}

func (e *CodedError) Error() string { return e.err.Error() }

// Unwrap exposes the cause, so errors.Is still finds ErrInvalidHeader and
// friends behind the status.
func (e *CodedError) Unwrap() error { return e.err }

// HTTPCode is the status written to the client.
func (e *CodedError) HTTPCode() int { return e.code }

// New reports a request failure that has no typed cause, such as a matched
// reject rule.
func New(message string, code int) error {
	return WithCode(errors.New(message), code)
}

// WithCode attaches the response status to err. A nil err stays nil so
// accessors can return WithCode(parse(...), 400) directly.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

// Code picks the response status for err: 200 for nil, the outermost
// CodedError's status when one is in the chain, and 500 for anything the
// request layer did not classify.
func Code(err error) int {
	var coded *CodedError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &coded):
		return coded.code
	default:
		return http.StatusInternalServerError
	}
}
