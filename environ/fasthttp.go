// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package environ

import (
	"github.com/valyala/fasthttp"
)

// FromFastHTTP builds an environment from a fasthttp request served under
// the mount prefix app (see SplitMount). The path is taken before percent-decoding.
func FromFastHTTP(ctx *fasthttp.RequestCtx, app string) *Map {
	scheme := "http"
	if ctx.IsTLS() {
		scheme = "https"
	}

	uri := ctx.URI()
	mount, path := SplitMount(string(uri.PathOriginal()), app)
	fields := map[string]string{
		Method: string(ctx.Method()),
		Scheme: scheme,
		Host:   string(ctx.Host()),
		App:    mount,
		Path:   path,
	}
	if qs := uri.QueryString(); len(qs) > 0 {
		fields[QueryString] = string(qs)
	}

	headers := make(map[string]string)
	ctx.Request.Header.VisitAll(func(key, value []byte) {
		name := string(key)
		if prev, ok := headers[name]; ok {
			headers[name] = prev + "," + string(value)
			return
		}
		headers[name] = string(value)
	})

	return &Map{Fields: fields, Header: headers}
}
