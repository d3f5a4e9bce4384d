// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package environ

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=environ.go -destination=mocks/mock_reader.go -package=mocks Reader

import (
	"maps"

	httpval "github.com/Bhanditz/falcon/validation/http"
)

// Field names of the raw request environment.
const (
	Method      = "METHOD"
	Scheme      = "SCHEME"
	Host        = "HOST"
	App         = "APP"
	Path        = "PATH"
	QueryString = "QUERY_STRING"
)

// Reader defines read-only access to a raw request environment.
type Reader interface {
	// Get returns the raw value of an environment field and whether it is set.
	Get(field string) (string, bool)
	// Headers returns the raw header table. Callers must not modify it.
	Headers() map[string]string
}

// Map implements Reader over plain maps.
type Map struct {
	Fields map[string]string
	Header map[string]string
}

// Get returns the value of field and whether it is present.
func (m *Map) Get(field string) (string, bool) {
	v, ok := m.Fields[field]
	return v, ok
}

// Headers returns the raw header table.
func (m *Map) Headers() map[string]string {
	return m.Header
}

// Validate checks every header name and value in the table.
func (m *Map) Validate() error {
	return httpval.ValidateHeaders(m.Header)
}

// Clone returns a deep copy of m, for callers that need to keep mutating
// their own tables after handing an environment off.
func (m *Map) Clone() *Map {
	return &Map{
		Fields: maps.Clone(m.Fields),
		Header: maps.Clone(m.Header),
	}
}
