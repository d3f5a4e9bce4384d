// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package rule

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxNameLength is the longest rule name accepted.
const MaxNameLength = 64

var validNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidateName checks a single rule name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("rule name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("rule name exceeds maximum length of %d bytes: %q", MaxNameLength, name)
	}

	if name != strings.ToLower(name) {
		return fmt.Errorf("rule name must be lowercase: %q", name)
	}

	if !validNameRegex.MatchString(name) {
		return fmt.Errorf("rule name must start with a letter or digit and contain only "+
			"lowercase alphanumeric characters, underscores and dashes: %q", name)
	}

	return nil
}

// ValidateNames checks every name and rejects duplicates. It returns the
// first problem found.
func ValidateNames(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if err := ValidateName(name); err != nil {
			return err
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate rule name %q", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
