// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Bhanditz/falcon/environ"
	"github.com/Bhanditz/falcon/httperr"
	"github.com/Bhanditz/falcon/logging"
	"github.com/Bhanditz/falcon/match"
	"github.com/Bhanditz/falcon/request"
)

// DefaultDenyStatus is used for rules without a status.
const DefaultDenyStatus = http.StatusForbidden

// Rule rejects requests its expression matches.
type Rule struct {
	Name    string
	Status  int
	Message string
	Match   *match.Rule
}

func (r Rule) status() int {
	if r.Status == 0 {
		return DefaultDenyStatus
	}
	return r.Status
}

type options struct {
	app    string
	logger *slog.Logger
	rules  []Rule
}

// Option configures Handler and Recover.
type Option func(*options)

// WithApp sets the mount prefix stripped from request paths.
func WithApp(app string) Option {
	return func(o *options) {
		o.app = app
	}
}

// WithLogger sets the logger. The default is logging.New().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRules appends deny rules. Rules are evaluated in order and the first
// match rejects the request.
func WithRules(rules ...Rule) Option {
	return func(o *options) {
		o.rules = append(o.rules, rules...)
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logging.New()
	}
	return o
}

// Handler wraps next with request construction, deny rules and panic
// recovery. next finds the request with request.FromContext.
func Handler(next http.Handler, opts ...Option) http.Handler {
	o := newOptions(opts)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := request.New(environ.FromHTTP(r, o.app))

		for _, rule := range o.rules {
			matched, err := rule.Match.Matches(req)
			if err != nil {
				o.reject(r, rule.Name, err)
				WriteError(w, err)
				return
			}
			if matched {
				err := httperr.New(rule.Message, rule.status())
				o.reject(r, rule.Name, err)
				WriteError(w, err)
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(request.NewContext(r.Context(), req)))
	})

	return recoverWith(h, o.logger)
}

func (o *options) reject(r *http.Request, rule string, err error) {
	status := httperr.Code(err)
	attrs := []any{
		"rule", rule,
		"status", status,
		"method", r.Method,
		"path", r.URL.Path,
	}

	var hdrErr *httperr.HeaderError
	if errors.As(err, &hdrErr) {
		attrs = append(attrs, logging.Header(hdrErr.Name, hdrErr.Value))
	}

	if status >= http.StatusInternalServerError {
		o.logger.ErrorContext(r.Context(), "rule evaluation failed", append(attrs, logging.Error(err))...)
		return
	}
	o.logger.InfoContext(r.Context(), "request rejected", append(attrs, logging.Error(err))...)
}
