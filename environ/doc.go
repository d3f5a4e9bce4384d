// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package environ provides a read-only view over the transport-supplied request
environment: the raw request fields and the raw header table.

The environment is owned by the caller and is never mutated by this module.
A request facade reads it on demand, so a transport hands it off once per
request and does not write to it afterwards.

# Basic Usage

Build an environment by hand:

	env := &environ.Map{
		Fields: map[string]string{
			environ.Method: "GET",
			environ.Scheme: "http",
			environ.Path:   "/hello",
		},
		Header: map[string]string{"Host": "falcon.example.com"},
	}

Or adapt one from a server:

	env := environ.FromHTTP(r, "/test")          // net/http
	env := environ.FromFastHTTP(ctx, "/test")    // fasthttp

# Testing

The Reader interface allows injecting a mock in tests. A generated mock is
available in the mocks sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Get(environ.Path).Return("/hello", true)
*/
package environ
