// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package header looks up raw request headers case-insensitively and parses
individual header values into typed results.

# Lookup

A Table canonicalizes header names once and distinguishes three states for
every name: not sent, sent with an empty value, and sent with a value.

	tbl := header.NewTable(map[string]string{"Content-Length": "4829", "Authorization": ""})

	tbl.Get("content-length")  // "4829", true
	tbl.Get("authorization")   // "", true  (sent, empty)
	tbl.Value("authorization") // "", false (attribute semantics)
	tbl.Lookup("range")        // "", header.Absent

# Typed Values

Every parser follows the same contract. An empty value (not sent, or sent
empty) is the absent result: ok is false and err is nil. A value that does
not match the header's grammar is an error wrapping httperr.ErrInvalidHeader
with status 400. Nothing is coerced.

	n, ok, err := header.ParseContentLength("5656")          // 5656, true, nil
	r, ok, err := header.ParseRange("-10240")                // {-10240 -1}, true, nil
	t, ok, err := header.ParseDate(header.Date, "Thu, 04 Apr 2013 05:19:18 GMT")

Accepts implements the simplified content negotiation check: the Accept
value must equal the media type exactly, or be the full wildcard MediaTypeAny.
Quality values and partial wildcards are not interpreted.
*/
package header
