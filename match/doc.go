// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package match compiles CEL expressions over request metadata and evaluates
them against a *request.Request.

# Variables

Every expression can reference the following variables:

	method, protocol, host, app, path   string
	query_string, uri, relative_uri     string
	headers                             map(string, string), lower-case names
	content_length                      int, -1 when not sent
	byte_range                          list(int), [] when not sent
	accept                              string, "" when not sent
	accepts_xml, accepts_json           bool
	params                              map(string, string)

Variables are bound lazily. An expression that never mentions
content_length never parses the Content-Length header, so a malformed
header only fails the rules that read it. Such a failure is returned as
the header's own error (see package httperr), not as an evaluation error.

# Basic Usage

	engine := match.NewEngine()

	rule, err := engine.Compile(`method == "DELETE" && !("authorization" in headers)`)
	if err != nil {
	    // handle compilation error
	}

	matched, err := rule.Matches(req)

# Expression Validation

Check validates an expression without building a program, for use when
loading configuration:

	if err := engine.Check(`byte_range.size() > 0 && byte_range[0] < 0`); err != nil {
	    var checkErr *match.CheckError
	    if errors.As(err, &checkErr) {
	        fmt.Println(checkErr.AsJSON())
	    }
	}

# Limits

Expression length and runtime cost are bounded. The defaults can be changed
with WithMaxExpressionLength and WithCostLimit.

# Concurrency

An Engine and the Rules it compiles are safe for concurrent use.
*/
package match
