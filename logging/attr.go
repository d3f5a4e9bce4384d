// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"log/slog"
	"slices"
	"strings"
)

// MaxValueLength is the longest header value Header logs in full.
const MaxValueLength = 128

// Redacted replaces the value of credential headers.
const Redacted = "[REDACTED]"

var sensitiveHeaders = []string{
	"authorization",
	"cookie",
	"proxy-authorization",
	"set-cookie",
}

// Header returns an attribute for a raw header value. Credential headers
// are redacted; other values longer than MaxValueLength are truncated.
func Header(name, value string) slog.Attr {
	if slices.Contains(sensitiveHeaders, strings.ToLower(name)) && value != "" {
		return slog.String(name, Redacted)
	}
	if len(value) > MaxValueLength {
		value = value[:MaxValueLength] + "..."
	}
	return slog.String(name, value)
}

// Error returns an attribute for err under the "error" key.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
