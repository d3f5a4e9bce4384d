// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package request exposes the metadata of one inbound HTTP request through
typed, validated accessors.

A Request wraps a raw environment (see package environ). Construction only
canonicalizes the header table; every typed accessor parses its header when
it is called, so a malformed header that is never read never fails.

# Environment and URIs

	req := request.New(env)

	req.Method()      // "GET"
	req.Path()        // "/hello", or "/" when the path is empty
	req.URI()         // "http://falcon.example.com/test/hello?marker=deadbeef&limit=10"
	req.RelativeURI() // "/test/hello?marker=deadbeef&limit=10"

# Typed Headers

Typed accessors return (value, ok, err). A header that was not sent, or
was sent empty, yields ok == false and a nil error. A malformed value yields
an error wrapping httperr.ErrInvalidHeader with HTTP status 400:

	n, ok, err := req.ContentLength()
	if err != nil {
		return err // 400 at the transport boundary
	}
	if !ok {
		// no body length declared
	}

Attribute accessors such as Auth and UserAgent return the raw value and
whether it was sent with a non-empty value. GetHeader is the one accessor
that reports a header sent empty as present.

# Query Parameters

The query string is parsed once, on first parameter access. Conversion
failures and missing required parameters wrap httperr.ErrInvalidParam and
httperr.ErrMissingParam.

	limit, ok, err := req.ParamInt("limit")
	marker, err := req.RequiredParam("marker")

# Concurrency

A Request may be read from several goroutines as long as the environment
it wraps is not modified after New returns.
*/
package request
