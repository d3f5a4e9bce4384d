// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHeaderName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"range", "Range", false},
		{"lower case", "content-length", false},
		{"if-modified-since", "If-Modified-Since", false},
		{"with dots", "X.Custom.Header", false},

		{"crlf injection", "Range\r\nX-Injected: malicious", true},
		{"newline injection", "Range\nInjected", true},
		{"null byte", "Range\x00", true},
		{"contains space", "Content Length", true},
		{"contains colon", "Host:", true},
		{"empty string", "", true},
		{"too long", strings.Repeat("A", 300), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateHeaderName(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateHeaderValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"range", "10-20", false},
		{"date", "Thu, 04 Apr 2013 05:19:18 GMT", false},
		{"empty value", "", false},
		{"tab allowed", "a\tb", false},

		{"crlf injection", "10-\r\nX-Injected: malicious", true},
		{"null byte", "10\x00-", true},
		{"delete char", "10\x7F", true},
		{"too long", strings.Repeat("A", 10000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateHeaderValue(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateHeaders(t *testing.T) {
	t.Parallel()

	t.Run("valid table", func(t *testing.T) {
		t.Parallel()
		err := ValidateHeaders(map[string]string{
			"Host":          "falcon.example.com",
			"Content-Type":  "text/plain",
			"Authorization": "",
		})
		require.NoError(t, err)
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, ValidateHeaders(nil))
	})

	t.Run("single error", func(t *testing.T) {
		t.Parallel()
		err := ValidateHeaders(map[string]string{"Bad Name": "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "header validation failed: invalid HTTP header name")
	})

	t.Run("numbered errors", func(t *testing.T) {
		t.Parallel()
		err := ValidateHeaders(map[string]string{
			"A B":   "x",
			"Range": "1\r\n",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "with 2 errors")
		assert.Contains(t, err.Error(), "1. invalid HTTP header name \"A B\"")
		assert.Contains(t, err.Error(), "2. Range: invalid HTTP header value")
	})
}

func TestValidateAbsoluteURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		errorContains string
	}{
		{name: "composed uri", input: "http://falcon.example.com/test/hello?marker=deadbeef&limit=10"},
		{name: "root path", input: "https://falcon.example.com/"},
		{name: "with port", input: "http://localhost:8000/hello"},
		{name: "empty string", input: "", errorContains: "cannot be empty"},
		{name: "missing scheme", input: "falcon.example.com/hello", errorContains: "must include a scheme"},
		{name: "missing host", input: "http:///hello", errorContains: "must include a host"},
		{name: "contains fragment", input: "http://falcon.example.com/hello#top", errorContains: "must not contain fragments"},
		{name: "invalid format", input: "ht!tp://invalid", errorContains: "invalid URI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAbsoluteURI(tt.input)
			if tt.errorContains == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}
