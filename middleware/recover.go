// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/Bhanditz/falcon/httperr"
)

// Recover answers panics in next with 500 and logs them with their stack.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recover(next http.Handler, opts ...Option) http.Handler {
	o := newOptions(opts)
	return recoverWith(next, o.logger)
}

func recoverWith(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.ErrorContext(r.Context(), "recovered from panic",
				"panic", fmt.Sprint(v),
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)
			WriteError(w, httperr.New("internal server error", http.StatusInternalServerError))
		}()
		next.ServeHTTP(w, r)
	})
}
