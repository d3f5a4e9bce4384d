// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package uri reconstructs request URIs from the separately delivered
// fragments of a raw request environment. Fragments are used verbatim:
// nothing is percent-decoded or re-encoded.
package uri

import "strings"

// Parts holds the fragments a URI is composed from.
type Parts struct {
	Scheme      string
	Host        string
	App         string
	Path        string
	QueryString string
}

// NormalizePath returns "/" for an empty path and p otherwise.
func NormalizePath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

// URI returns scheme "://" host app path, followed by "?" and the query
// string when the query string is not empty. An empty path becomes "/"
// unless an app is mounted.
func (p Parts) URI() string {
	var b strings.Builder
	b.Grow(len(p.Scheme) + 3 + len(p.Host) + len(p.App) + len(p.Path) + 1 + len(p.QueryString))
	b.WriteString(p.Scheme)
	b.WriteString("://")
	b.WriteString(p.Host)
	p.writeRelative(&b)
	return b.String()
}

// RelativeURI returns URI without the scheme and host.
func (p Parts) RelativeURI() string {
	var b strings.Builder
	p.writeRelative(&b)
	return b.String()
}

// writeRelative leaves an empty path empty when an app is mounted, so a
// request for the mount root keeps its exact form.
func (p Parts) writeRelative(b *strings.Builder) {
	b.WriteString(p.App)
	if p.App == "" || p.Path != "" {
		b.WriteString(NormalizePath(p.Path))
	}
	if p.QueryString != "" {
		b.WriteByte('?')
		b.WriteString(p.QueryString)
	}
}
