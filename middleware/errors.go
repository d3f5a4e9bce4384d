// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/Bhanditz/falcon/httperr"
)

// ErrorBody is the JSON document written for failed requests.
type ErrorBody struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// HandlerFunc is an HTTP handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Wrap adapts h to http.Handler. A returned error is written with
// WriteError; h must not have written a response in that case.
func Wrap(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			WriteError(w, err)
		}
	})
}

// NewErrorBody describes err for a client. Messages of errors without a
// client-facing detail are only included for 4xx statuses.
func NewErrorBody(err error) ErrorBody {
	status := httperr.Code(err)
	body := ErrorBody{Title: http.StatusText(status)}

	var (
		hdrErr   *httperr.HeaderError
		paramErr *httperr.ParamError
	)
	switch {
	case errors.As(err, &hdrErr):
		body.Title = "Invalid header value"
	case errors.As(err, &paramErr) && paramErr.Missing:
		body.Title = "Missing query parameter"
	case errors.As(err, &paramErr):
		body.Title = "Invalid query parameter"
	}

	body.Description = httperr.Detail(err)
	if body.Description == "" && status < http.StatusInternalServerError {
		body.Description = err.Error()
	}
	return body
}

// WriteError writes err as a JSON response with the status from httperr.Code.
func WriteError(w http.ResponseWriter, err error) {
	status := httperr.Code(err)
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(NewErrorBody(err))
}
