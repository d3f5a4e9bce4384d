// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/Bhanditz/falcon/request"
)

// Rule is a compiled boolean expression over request metadata.
type Rule struct {
	source  string
	program cel.Program
}

// Source returns the expression the rule was compiled from.
func (r *Rule) Source() string {
	return r.source
}

// Matches evaluates the rule against req. When a variable the expression
// reads cannot be produced because the client sent a malformed header or
// query string, that error is returned unchanged.
func (r *Rule) Matches(req *request.Request) (bool, error) {
	vars := &bindings{req: req}

	out, _, err := r.program.Eval(vars.activation())
	if vars.err != nil {
		return false, vars.err
	}
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}

	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: expected bool, got %T", ErrInvalidResult, out.Value())
	}
	return matched, nil
}

// bindings produces variable values on demand and keeps the first request
// error it runs into.
type bindings struct {
	req *request.Request
	err error
}

func (b *bindings) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *bindings) activation() map[string]any {
	req := b.req
	str := func(f func() string) func() any {
		return func() any { return f() }
	}

	return map[string]any{
		VarMethod:      str(req.Method),
		VarProtocol:    str(req.Protocol),
		VarHost:        str(req.Host),
		VarApp:         str(req.App),
		VarPath:        str(req.Path),
		VarQueryString: str(req.QueryString),
		VarURI:         str(req.URI),
		VarRelativeURI: str(req.RelativeURI),
		VarHeaders: func() any {
			headers := make(map[string]string, req.Headers().Len())
			for name, value := range req.Headers().All() {
				headers[name] = value
			}
			return headers
		},
		VarContentLength: func() any {
			n, ok, err := req.ContentLength()
			if err != nil {
				b.fail(err)
			}
			if !ok {
				return int64(-1)
			}
			return n
		},
		VarByteRange: func() any {
			rng, ok, err := req.Range()
			if err != nil {
				b.fail(err)
			}
			if !ok {
				return []int64{}
			}
			return rng.Slice()
		},
		VarAccept: func() any {
			v, _ := req.Accept()
			return v
		},
		VarAcceptsXML:  func() any { return req.ClientAcceptsXML() },
		VarAcceptsJSON: func() any { return req.ClientAcceptsJSON() },
		VarParams: func() any {
			params, err := req.Params()
			if err != nil {
				b.fail(err)
				return map[string]string{}
			}
			return params
		},
	}
}
