// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package header

import (
	"fmt"
	"time"

	"github.com/Bhanditz/falcon/httperr"
)

// DateLayout is the only accepted wire format for date-valued headers.
const DateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// ParseDate parses the value of the date-valued header name. Only
// DateLayout is accepted; no other formats are attempted. The result is
// in UTC. An empty value is absent.
func ParseDate(name, value string) (time.Time, bool, error) {
	if value == "" {
		return time.Time{}, false, nil
	}

	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, false, httperr.InvalidHeader(name, value,
			fmt.Sprintf("The value of the %s header must be a date in the format %q.", name, DateLayout))
	}
	return t, true, nil
}

// FormatDate formats t in DateLayout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
