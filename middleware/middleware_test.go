// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhanditz/falcon/environ"
	"github.com/Bhanditz/falcon/httperr"
	"github.com/Bhanditz/falcon/logging"
	"github.com/Bhanditz/falcon/match"
	"github.com/Bhanditz/falcon/request"
)

func discardLogger() Option {
	return WithLogger(logging.New(logging.WithOutput(io.Discard)))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func environFrom(r *http.Request) environ.Reader {
	return environ.FromHTTP(r, "")
}

func compile(t *testing.T, expr string) *match.Rule {
	t.Helper()
	rule, err := match.NewEngine().Compile(expr)
	require.NoError(t, err)
	return rule
}

func TestHandler_StoresRequest(t *testing.T) {
	t.Parallel()

	var got *request.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = request.FromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusNoContent)
	})

	r := httptest.NewRequest(http.MethodGet, "http://falcon.example.com/test/hello?marker=deadbeef&limit=10", nil)
	r.Header.Set("Range", "10-20")
	rec := httptest.NewRecorder()

	Handler(next, WithApp("/test"), discardLogger()).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "/hello", got.Path())
	assert.Equal(t, "http://falcon.example.com/test/hello?marker=deadbeef&limit=10", got.URI())

	rng, ok, err := got.Range()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(20), rng.Last)
}

func TestHandler_Rules(t *testing.T) {
	t.Parallel()

	rules := []Rule{
		{
			Name:    "no-suffix-ranges",
			Status:  http.StatusRequestedRangeNotSatisfiable,
			Message: "Suffix byte ranges are not supported.",
			Match:   compile(t, `byte_range.size() > 0 && byte_range[0] < 0`),
		},
		{
			Name:    "json-only",
			Message: "This API only speaks JSON.",
			Match:   compile(t, `"accept" in headers && !accepts_json`),
		},
	}

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantTitle  string
		wantDesc   string
	}{
		{
			name:       "passes",
			headers:    map[string]string{"Range": "0-99", "Accept": "application/json"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "first rule matches",
			headers:    map[string]string{"Range": "-500"},
			wantStatus: http.StatusRequestedRangeNotSatisfiable,
			wantTitle:  "Requested Range Not Satisfiable",
			wantDesc:   "Suffix byte ranges are not supported.",
		},
		{
			name:       "default status",
			headers:    map[string]string{"Accept": "application/xml"},
			wantStatus: http.StatusForbidden,
			wantTitle:  "Forbidden",
			wantDesc:   "This API only speaks JSON.",
		},
		{
			name:       "malformed header read by a rule",
			headers:    map[string]string{"Range": "3-3-4"},
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Invalid header value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/files/a.bin", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			Handler(next, WithRules(rules...), discardLogger()).ServeHTTP(rec, r)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				return
			}
			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantTitle, body.Title)
			if tt.wantDesc != "" {
				assert.Equal(t, tt.wantDesc, body.Description)
			} else {
				assert.NotEmpty(t, body.Description)
			}
		})
	}
}

func TestHandler_LogsRejection(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(logging.WithOutput(&buf))

	rule := Rule{Name: "no-auth", Match: compile(t, `"authorization" in headers`)}
	h := Handler(http.NotFoundHandler(), WithRules(rule), WithLogger(logger))

	r := httptest.NewRequest(http.MethodDelete, "/items/1", nil)
	r.Header.Set("Authorization", "Bearer secret")
	h.ServeHTTP(httptest.NewRecorder(), r)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request rejected", entry["msg"])
	assert.Equal(t, "no-auth", entry["rule"])
	assert.EqualValues(t, http.StatusForbidden, entry["status"])
	assert.NotContains(t, buf.String(), "secret")
}

func TestHandler_RecoversPanic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("test panic")
	})

	rec := httptest.NewRecorder()
	Handler(next, WithLogger(logging.New(logging.WithOutput(&buf)))).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Internal Server Error", body.Title)
	assert.Empty(t, body.Description)
	assert.Contains(t, buf.String(), "test panic")
	assert.Contains(t, buf.String(), "recovered from panic")
}

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("no panic", func(t *testing.T) {
		t.Parallel()

		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("success"))
		})
		rec := httptest.NewRecorder()
		Recover(next, discardLogger()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", rec.Body.String())
	})

	t.Run("panic with error value", func(t *testing.T) {
		t.Parallel()

		next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(errors.New("boom"))
		})
		rec := httptest.NewRecorder()
		Recover(next, discardLogger()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("abort handler is re-raised", func(t *testing.T) {
		t.Parallel()

		next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		})
		h := Recover(next, discardLogger())
		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		handler    HandlerFunc
		wantStatus int
		wantTitle  string
		wantDesc   string
	}{
		{
			name:   "success",
			target: "/",
			handler: func(w http.ResponseWriter, _ *http.Request) error {
				w.WriteHeader(http.StatusAccepted)
				return nil
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:   "missing param",
			target: "/items",
			handler: func(_ http.ResponseWriter, r *http.Request) error {
				req := request.New(environFrom(r))
				_, err := req.RequiredParam("marker")
				return err
			},
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Missing query parameter",
			wantDesc:   `The "marker" query parameter is required.`,
		},
		{
			name:   "invalid param",
			target: "/items?limit=ten",
			handler: func(_ http.ResponseWriter, r *http.Request) error {
				req := request.New(environFrom(r))
				_, _, err := req.ParamInt("limit")
				return err
			},
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Invalid query parameter",
			wantDesc:   "The value must be an integer.",
		},
		{
			name:   "coded error",
			target: "/",
			handler: func(http.ResponseWriter, *http.Request) error {
				return httperr.New("no such item", http.StatusNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
			wantDesc:   "no such item",
		},
		{
			name:   "plain error hides message",
			target: "/",
			handler: func(http.ResponseWriter, *http.Request) error {
				return errors.New("database password is hunter2")
			},
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			Wrap(tt.handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantTitle == "" {
				return
			}
			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantTitle, body.Title)
			assert.Equal(t, tt.wantDesc, body.Description)
		})
	}
}
