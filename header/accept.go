// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package header

// Media types with dedicated accessors.
const (
	MediaTypeJSON = "application/json"
	MediaTypeXML  = "application/xml"

	// MediaTypeAny is the full wildcard.
	MediaTypeAny = "*/*"
)

// Accepts reports whether the Accept value admits mediaType. The value must
// equal mediaType exactly (case-sensitive) or be the full wildcard.
// An empty value accepts nothing.
func Accepts(accept, mediaType string) bool {
	if accept == "" {
		return false
	}
	return accept == mediaType || accept == MediaTypeAny
}
