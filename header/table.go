// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package header

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Names of the headers the typed accessors read.
const (
	Accept            = "Accept"
	Authorization     = "Authorization"
	ContentLength     = "Content-Length"
	ContentType       = "Content-Type"
	Date              = "Date"
	Expect            = "Expect"
	Host              = "Host"
	IfMatch           = "If-Match"
	IfModifiedSince   = "If-Modified-Since"
	IfNoneMatch       = "If-None-Match"
	IfRange           = "If-Range"
	IfUnmodifiedSince = "If-Unmodified-Since"
	Range             = "Range"
	UserAgent         = "User-Agent"
)

// State tells a missing header apart from one sent without a value.
type State int

const (
	// Absent means the header was not sent.
	Absent State = iota
	// Empty means the header was sent with an empty value.
	Empty
	// Present means the header was sent with a non-empty value.
	Present
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case Empty:
		return "empty"
	case Present:
		return "present"
	default:
		return "unknown"
	}
}

// Table is a case-insensitive, read-only view of a raw header table.
// The zero value is an empty table.
type Table struct {
	values map[string]string
}

// NewTable canonicalizes the names of raw. When raw holds the same name in
// several casings, the lexically smallest spelling wins so the result does
// not depend on map iteration order.
func NewTable(raw map[string]string) Table {
	values := make(map[string]string, len(raw))
	for _, name := range slices.Sorted(maps.Keys(raw)) {
		key := Canonical(name)
		if _, dup := values[key]; dup {
			continue
		}
		values[key] = raw[name]
	}
	return Table{values: values}
}

// Canonical returns the internal spelling of a header name.
func Canonical(name string) string {
	return strings.ToLower(name)
}

// Lookup returns the raw value of name and its state.
func (t Table) Lookup(name string) (string, State) {
	v, ok := t.values[Canonical(name)]
	switch {
	case !ok:
		return "", Absent
	case v == "":
		return "", Empty
	default:
		return v, Present
	}
}

// Get returns the raw value of name. ok is false only when the header was
// not sent; a header sent empty returns "", true.
func (t Table) Get(name string) (string, bool) {
	v, state := t.Lookup(name)
	return v, state != Absent
}

// Value returns the value of name for attribute-style access: a header
// that was not sent and one sent empty both return "", false.
func (t Table) Value(name string) (string, bool) {
	v, state := t.Lookup(name)
	return v, state == Present
}

// Len returns the number of distinct header names.
func (t Table) Len() int {
	return len(t.values)
}

// All iterates over canonical names and raw values in name order.
func (t Table) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range slices.Sorted(maps.Keys(t.values)) {
			if !yield(name, t.values[name]) {
				return
			}
		}
	}
}
