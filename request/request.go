// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"sync"
	"time"

	"github.com/Bhanditz/falcon/environ"
	"github.com/Bhanditz/falcon/header"
	"github.com/Bhanditz/falcon/uri"
)

// Request is a read-only view of one inbound request.
type Request struct {
	env     environ.Reader
	headers header.Table

	queryOnce sync.Once
	query     map[string][]string
	queryErr  error
}

// New returns a Request over env. env must not be modified afterwards.
func New(env environ.Reader) *Request {
	return &Request{
		env:     env,
		headers: header.NewTable(env.Headers()),
	}
}

func (r *Request) field(name string) string {
	v, _ := r.env.Get(name)
	return v
}

// Method returns the request method verbatim.
func (r *Request) Method() string {
	return r.field(environ.Method)
}

// Protocol returns the URL scheme, such as "http" or "https".
func (r *Request) Protocol() string {
	return r.field(environ.Scheme)
}

// App returns the mount prefix, or "" when the application is mounted at
// the root.
func (r *Request) App() string {
	return r.field(environ.App)
}

// Path returns the request path below App. An empty path reads as "/".
func (r *Request) Path() string {
	return uri.NormalizePath(r.field(environ.Path))
}

// QueryString returns the raw query string without the leading "?", or ""
// when there is none.
func (r *Request) QueryString() string {
	return r.field(environ.QueryString)
}

// Host returns the Host header, falling back to the HOST environment field.
func (r *Request) Host() string {
	if v, ok := r.headers.Value(header.Host); ok {
		return v
	}
	return r.field(environ.Host)
}

func (r *Request) parts() uri.Parts {
	return uri.Parts{
		Scheme:      r.Protocol(),
		Host:        r.Host(),
		App:         r.App(),
		Path:        r.field(environ.Path),
		QueryString: r.QueryString(),
	}
}

// URI returns the absolute request URI.
func (r *Request) URI() string {
	return r.parts().URI()
}

// URL is an alias for URI.
func (r *Request) URL() string {
	return r.URI()
}

// RelativeURI returns the request URI without scheme and host. It starts
// with App.
func (r *Request) RelativeURI() string {
	return r.parts().RelativeURI()
}

// GetHeader returns the raw value of the named header, matched
// case-insensitively. ok is false only when the header was not sent.
func (r *Request) GetHeader(name string) (string, bool) {
	return r.headers.Get(name)
}

// Headers returns the canonicalized header table.
func (r *Request) Headers() header.Table {
	return r.headers
}

// ContentLength returns the parsed Content-Length header.
func (r *Request) ContentLength() (int64, bool, error) {
	v, _ := r.headers.Value(header.ContentLength)
	return header.ParseContentLength(v)
}

// Date returns the parsed Date header.
func (r *Request) Date() (time.Time, bool, error) {
	return r.date(header.Date)
}

// IfModifiedSince returns the parsed If-Modified-Since header.
func (r *Request) IfModifiedSince() (time.Time, bool, error) {
	return r.date(header.IfModifiedSince)
}

// IfUnmodifiedSince returns the parsed If-Unmodified-Since header.
func (r *Request) IfUnmodifiedSince() (time.Time, bool, error) {
	return r.date(header.IfUnmodifiedSince)
}

func (r *Request) date(name string) (time.Time, bool, error) {
	v, _ := r.headers.Value(name)
	return header.ParseDate(name, v)
}

// Range returns the parsed Range header.
func (r *Request) Range() (header.ByteRange, bool, error) {
	v, _ := r.headers.Value(header.Range)
	return header.ParseRange(v)
}

// ClientAccepts reports whether the Accept header is exactly mediaType or
// the full wildcard.
func (r *Request) ClientAccepts(mediaType string) bool {
	v, _ := r.headers.Value(header.Accept)
	return header.Accepts(v, mediaType)
}

// ClientAcceptsXML reports whether the client accepts application/xml.
func (r *Request) ClientAcceptsXML() bool {
	return r.ClientAccepts(header.MediaTypeXML)
}

// ClientAcceptsJSON reports whether the client accepts application/json.
func (r *Request) ClientAcceptsJSON() bool {
	return r.ClientAccepts(header.MediaTypeJSON)
}

// Accept returns the raw Accept header.
func (r *Request) Accept() (string, bool) {
	return r.headers.Value(header.Accept)
}

// Auth returns the raw Authorization header.
func (r *Request) Auth() (string, bool) {
	return r.headers.Value(header.Authorization)
}

// ContentType returns the raw Content-Type header.
func (r *Request) ContentType() (string, bool) {
	return r.headers.Value(header.ContentType)
}

// Expect returns the raw Expect header.
func (r *Request) Expect() (string, bool) {
	return r.headers.Value(header.Expect)
}

// IfMatch returns the raw If-Match header.
func (r *Request) IfMatch() (string, bool) {
	return r.headers.Value(header.IfMatch)
}

// IfNoneMatch returns the raw If-None-Match header.
func (r *Request) IfNoneMatch() (string, bool) {
	return r.headers.Value(header.IfNoneMatch)
}

// IfRange returns the raw If-Range header.
func (r *Request) IfRange() (string, bool) {
	return r.headers.Value(header.IfRange)
}

// UserAgent returns the raw User-Agent header.
func (r *Request) UserAgent() (string, bool) {
	return r.headers.Value(header.UserAgent)
}
