// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package reqtest builds raw request environments for tests.
package reqtest

import (
	"maps"
	"time"

	"github.com/Bhanditz/falcon/environ"
	"github.com/Bhanditz/falcon/header"
)

// DefaultHost is the HOST field of environments built by CreateEnviron.
const DefaultHost = "falconframework.org"

type options struct {
	fields  map[string]string
	headers map[string]string
}

// Option configures the environment built by CreateEnviron.
type Option func(*options)

// WithMethod sets the request method. The default is GET.
func WithMethod(method string) Option {
	return func(o *options) {
		o.fields[environ.Method] = method
	}
}

// WithScheme sets the URL scheme. The default is http.
func WithScheme(scheme string) Option {
	return func(o *options) {
		o.fields[environ.Scheme] = scheme
	}
}

// WithHost sets the HOST field. It does not add a Host header.
func WithHost(host string) Option {
	return func(o *options) {
		o.fields[environ.Host] = host
	}
}

// WithApp sets the mount prefix.
func WithApp(app string) Option {
	return func(o *options) {
		o.fields[environ.App] = app
	}
}

// WithPath sets the request path. An empty path is kept as is.
func WithPath(path string) Option {
	return func(o *options) {
		o.fields[environ.Path] = path
	}
}

// WithQueryString sets the raw query string, without the leading "?".
func WithQueryString(qs string) Option {
	return func(o *options) {
		o.fields[environ.QueryString] = qs
	}
}

// WithoutQueryString removes the QUERY_STRING field entirely.
func WithoutQueryString() Option {
	return func(o *options) {
		delete(o.fields, environ.QueryString)
	}
}

// WithHeaders adds headers to the raw header table. An empty value models
// a header that was sent without a value.
func WithHeaders(headers map[string]string) Option {
	return func(o *options) {
		maps.Copy(o.headers, headers)
	}
}

// CreateEnviron returns a GET request for "/" on DefaultHost over http with
// an empty query string and no headers, modified by opts.
func CreateEnviron(opts ...Option) *environ.Map {
	o := &options{
		fields: map[string]string{
			environ.Method:      "GET",
			environ.Scheme:      "http",
			environ.Host:        DefaultHost,
			environ.App:         "",
			environ.Path:        "/",
			environ.QueryString: "",
		},
		headers: map[string]string{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return &environ.Map{Fields: o.fields, Header: o.headers}
}

// HTTPNow returns the current time in the date header layout.
func HTTPNow() string {
	return header.FormatDate(time.Now())
}
