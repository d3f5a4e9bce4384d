// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/Bhanditz/falcon/httperr"
)

// Strings accepted by ParamBool.
var (
	trueStrings  = []string{"true", "True", "yes", "1"}
	falseStrings = []string{"false", "False", "no", "0"}
)

func (r *Request) parseQuery() (map[string][]string, error) {
	r.queryOnce.Do(func() {
		r.query, r.queryErr = url.ParseQuery(r.QueryString())
	})
	return r.query, r.queryErr
}

// values returns the non-empty values of name in query string order.
func (r *Request) values(name string) ([]string, error) {
	q, err := r.parseQuery()
	if err != nil {
		return nil, httperr.InvalidParam(name, r.QueryString(), "The query string is malformed.")
	}
	var out []string
	for _, v := range q[name] {
		if v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}

// Param returns the first non-empty value of the named query parameter.
// A parameter given without a value is treated as not given.
func (r *Request) Param(name string) (string, bool, error) {
	vals, err := r.values(name)
	if err != nil || len(vals) == 0 {
		return "", false, err
	}
	return vals[0], true, nil
}

// RequiredParam is like Param but fails when the parameter is missing.
func (r *Request) RequiredParam(name string) (string, error) {
	v, ok, err := r.Param(name)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", httperr.MissingParam(name)
	}
	return v, nil
}

// ParamInt returns the named query parameter as a base-10 integer.
func (r *Request) ParamInt(name string) (int64, bool, error) {
	v, ok, err := r.Param(name)
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, httperr.InvalidParam(name, v, "The value must be an integer.")
	}
	return n, true, nil
}

// ParamBool returns the named query parameter as a boolean. It accepts
// true, True, yes and 1 for true and false, False, no and 0 for false.
func (r *Request) ParamBool(name string) (bool, bool, error) {
	v, ok, err := r.Param(name)
	if err != nil || !ok {
		return false, false, err
	}
	switch {
	case slices.Contains(trueStrings, v):
		return true, true, nil
	case slices.Contains(falseStrings, v):
		return false, true, nil
	}
	return false, false, httperr.InvalidParam(name, v,
		"The value must be one of true, True, yes, 1, false, False, no or 0.")
}

// ParamList returns every value of the named query parameter. Values are
// split on commas and empty elements are dropped, so "a=1,2&a=3" yields
// ["1" "2" "3"].
func (r *Request) ParamList(name string) ([]string, bool, error) {
	vals, err := r.values(name)
	if err != nil {
		return nil, false, err
	}
	var out []string
	for _, v := range vals {
		for _, item := range strings.Split(v, ",") {
			if item != "" {
				out = append(out, item)
			}
		}
	}
	return out, len(out) > 0, nil
}

// Params returns the first non-empty value of every query parameter.
func (r *Request) Params() (map[string]string, error) {
	q, err := r.parseQuery()
	if err != nil {
		return nil, httperr.InvalidParam("", r.QueryString(), "The query string is malformed.")
	}
	out := make(map[string]string, len(q))
	for name, vals := range q {
		for _, v := range vals {
			if v != "" {
				out[name] = v
				break
			}
		}
	}
	return out, nil
}
