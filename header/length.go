// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package header

import (
	"strconv"

	"github.com/Bhanditz/falcon/httperr"
)

// ParseContentLength parses a Content-Length value as a non-negative
// base-10 integer. An empty value is absent.
func ParseContentLength(value string) (int64, bool, error) {
	if value == "" {
		return 0, false, nil
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < 0 {
		return 0, false, httperr.InvalidHeader(ContentLength, value,
			"The value of the Content-Length header must be a number greater or equal to zero.")
	}
	return n, true, nil
}
