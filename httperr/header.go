// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for client input validation.
var (
	// ErrInvalidHeader is returned when a header value does not match its grammar.
	ErrInvalidHeader = errors.New("invalid header value")

	// ErrInvalidParam is returned when a query parameter cannot be converted.
	ErrInvalidParam = errors.New("invalid query parameter")

	// ErrMissingParam is returned when a required query parameter is absent.
	ErrMissingParam = errors.New("missing query parameter")
)

// HeaderError describes a client-supplied header whose value was rejected.
type HeaderError struct {
	// Name is the header name as the accessor knows it, e.g. "Content-Length".
	Name string
	// Value is the raw value that failed to parse.
	Value string
	// Detail is a human readable description suitable for a response body.
	Detail string
}

// Error implements the error interface.
func (e *HeaderError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrInvalidHeader, e.Name, e.Value)
}

// Unwrap returns ErrInvalidHeader.
func (*HeaderError) Unwrap() error {
	return ErrInvalidHeader
}

// InvalidHeader returns a 400 error for a malformed header value.
func InvalidHeader(name, value, detail string) error {
	return WithCode(&HeaderError{Name: name, Value: value, Detail: detail}, http.StatusBadRequest)
}

// ParamError describes a query parameter that was missing or malformed.
type ParamError struct {
	Name    string
	Value   string
	Detail  string
	Missing bool
}

// Error implements the error interface.
func (e *ParamError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s: %s", ErrMissingParam, e.Name)
	}
	return fmt.Sprintf("%s: %s %q", ErrInvalidParam, e.Name, e.Value)
}

// Unwrap returns ErrMissingParam or ErrInvalidParam.
func (e *ParamError) Unwrap() error {
	if e.Missing {
		return ErrMissingParam
	}
	return ErrInvalidParam
}

// InvalidParam returns a 400 error for a query parameter that could not be converted.
func InvalidParam(name, value, detail string) error {
	return WithCode(&ParamError{Name: name, Value: value, Detail: detail}, http.StatusBadRequest)
}

// MissingParam returns a 400 error for a required query parameter that was not sent.
func MissingParam(name string) error {
	return WithCode(&ParamError{
		Name:    name,
		Detail:  fmt.Sprintf("The %q query parameter is required.", name),
		Missing: true,
	}, http.StatusBadRequest)
}

// Detail returns the client-facing description carried by err, if any.
func Detail(err error) string {
	var hdrErr *HeaderError
	if errors.As(err, &hdrErr) {
		return hdrErr.Detail
	}
	var paramErr *ParamError
	if errors.As(err, &paramErr) {
		return paramErr.Detail
	}
	return ""
}
