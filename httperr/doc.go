// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr provides error types with HTTP status codes for request
validation failures.

Errors carry their intended HTTP response code through the call stack so
that the transport boundary can turn them into client responses without
knowing which accessor failed. The CodedError type implements the standard
error interface and supports error wrapping via errors.Is() and errors.As().

# Basic Usage

Create errors with HTTP status codes:

	err := httperr.New("resource not found", http.StatusNotFound)
	err = httperr.WithCode(err, http.StatusBadRequest)

# Validation Failures

Typed header accessors reject malformed client input with a single error
kind that records the offending header and its raw value:

	err := httperr.InvalidHeader("Range", "3-3-4", "The Range header is malformed.")

	errors.Is(err, httperr.ErrInvalidHeader) // true
	httperr.Code(err)                        // 400

	var hdrErr *httperr.HeaderError
	if errors.As(err, &hdrErr) {
		log.Printf("rejected %s: %q", hdrErr.Name, hdrErr.Value)
	}

Query parameter accessors use ParamError in the same way, with
ErrInvalidParam and ErrMissingParam as sentinels.

# Extracting Status Codes

	code := httperr.Code(err)
	// Returns the code if err contains a CodedError
	// Returns http.StatusInternalServerError (500) if no CodedError found
	// Returns http.StatusOK (200) if err is nil
*/
package httperr
