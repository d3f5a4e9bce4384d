// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package http provides validation functions for raw header tables and request URIs.
package http

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/net/http/httpguts"
)

const (
	// MaxHeaderNameLength is the longest header name accepted.
	MaxHeaderNameLength = 256

	// MaxHeaderValueLength is the longest header value accepted.
	MaxHeaderValueLength = 8192
)

// ValidateHeaderName validates that a string is a valid HTTP header name per RFC 7230.
func ValidateHeaderName(name string) error {
	if name == "" {
		return fmt.Errorf("header name cannot be empty")
	}

	if len(name) > MaxHeaderNameLength {
		return fmt.Errorf("header name exceeds maximum length of %d bytes", MaxHeaderNameLength)
	}

	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("invalid HTTP header name %q: contains invalid characters", name)
	}

	return nil
}

// ValidateHeaderValue validates that a string is a valid HTTP header value per RFC 7230.
// The empty string is a valid value.
func ValidateHeaderValue(value string) error {
	if len(value) > MaxHeaderValueLength {
		return fmt.Errorf("header value exceeds maximum length of %d bytes", MaxHeaderValueLength)
	}

	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("invalid HTTP header value: contains control characters")
	}

	return nil
}

// ValidateHeaders validates every name and value of a raw header table.
// Names are reported in sorted order so the result is deterministic.
func ValidateHeaders(headers map[string]string) error {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	var msgs []string
	for _, name := range names {
		if err := ValidateHeaderName(name); err != nil {
			msgs = append(msgs, err.Error())
			continue
		}
		if err := ValidateHeaderValue(headers[name]); err != nil {
			msgs = append(msgs, fmt.Sprintf("%s: %s", name, err))
		}
	}

	switch len(msgs) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("header validation failed: %s", msgs[0])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "header validation failed with %d errors:\n", len(msgs))
	for i, msg := range msgs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	return errors.New(strings.TrimSuffix(b.String(), "\n"))
}

// ValidateAbsoluteURI validates a reconstructed request URI.
//
// A valid URI must:
//   - Include a scheme (http/https)
//   - Include a host
//   - Not contain fragments
func ValidateAbsoluteURI(uri string) error {
	if uri == "" {
		return fmt.Errorf("URI cannot be empty")
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("invalid URI: %w", err)
	}

	if parsed.Scheme == "" {
		return fmt.Errorf("URI must include a scheme (e.g., https://): %s", uri)
	}

	if parsed.Host == "" {
		return fmt.Errorf("URI must include a host: %s", uri)
	}

	if parsed.Fragment != "" {
		return fmt.Errorf("URI must not contain fragments (#): %s", uri)
	}

	return nil
}
