// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package middleware is the net/http boundary for request metadata.

Handler builds a *request.Request for every incoming request, stores it in
the request context, evaluates deny rules and converts errors into JSON
client responses:

	rules := []middleware.Rule{{
	    Name:    "no-suffix-ranges",
	    Status:  http.StatusRequestedRangeNotSatisfiable,
	    Message: "Suffix byte ranges are not supported.",
	    Match:   mustCompile(`byte_range.size() > 0 && byte_range[0] < 0`),
	}}

	h := middleware.Handler(mux,
	    middleware.WithApp("/api"),
	    middleware.WithRules(rules...),
	    middleware.WithLogger(logger),
	)

Handlers read the request back with request.FromContext. Handlers that
return errors can be adapted with Wrap, which writes the status carried by
the error (see httperr.Code) and a body of the form

	{"title": "Invalid header value", "description": "The Range header must be ..."}

Panics are recovered, logged with their stack and answered with 500. Recover
provides only that behavior for handlers that do not need the rest.
*/
package middleware
