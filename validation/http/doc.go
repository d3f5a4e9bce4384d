// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package http provides validation functions for raw request header tables and
reconstructed request URIs.

Transport adapters hand this module a header table they did not parse
themselves. These helpers reject tables that could not have come from a
conformant HTTP/1.1 message before a request facade is built on them.

# Header Validation

	if err := http.ValidateHeaderName("X-Custom-Header"); err != nil {
		// Handle invalid header name
	}

	if err := http.ValidateHeaders(map[string]string{"Range": "10-"}); err != nil {
		// Handle invalid table
	}

The validators check for:
  - CRLF injection attempts (\r\n sequences)
  - Control characters
  - RFC 7230 token compliance for header names
  - Length limits (256 bytes for names, 8192 for values)

Empty header values are valid: a header sent with no value is a distinct
state from a header that was not sent at all.

# URI Validation

ValidateAbsoluteURI checks a reconstructed request URI:

	if err := http.ValidateAbsoluteURI("http://falcon.example.com/test/hello"); err != nil {
		// Handle invalid URI
	}
*/
package http
