// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader is where config.ApplyEnv looks up FALCON_* overrides.
type Reader interface {
	Getenv(key string) string
}

// OSReader reads overrides from the process environment.
type OSReader struct{}

// Getenv returns the process variable key, or "" when it is unset.
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// Map supplies overrides from a fixed set, for tests and for embedding
// applications that carry settings of their own.
type Map map[string]string

// Getenv returns the value stored under key, or "" when unset.
func (m Map) Getenv(key string) string {
	return m[key]
}
