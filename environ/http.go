// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package environ

import (
	"net/http"
	"strings"
)

// FromHTTP builds an environment from a net/http request served under the
// mount prefix app (see SplitMount). Repeated header lines are joined with commas.
func FromHTTP(r *http.Request, app string) *Map {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	mount, path := SplitMount(r.URL.EscapedPath(), app)
	fields := map[string]string{
		Method: r.Method,
		Scheme: scheme,
		Host:   r.Host,
		App:    mount,
		Path:   path,
	}
	if r.URL.RawQuery != "" {
		fields[QueryString] = r.URL.RawQuery
	}

	headers := make(map[string]string, len(r.Header)+1)
	for name, values := range r.Header {
		headers[name] = strings.Join(values, ",")
	}
	// net/http removes Host from the header map.
	if r.Host != "" {
		headers["Host"] = r.Host
	}

	return &Map{Fields: fields, Header: headers}
}
