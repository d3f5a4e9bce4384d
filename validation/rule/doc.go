// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package rule validates the names of deny rules.

Rule names appear in logs and configuration files, so they follow a short,
predictable form:

	if err := rule.ValidateName("no-suffix-ranges"); err != nil {
		// reject the configuration
	}

Valid rule names:
  - Are between 1 and 64 bytes long
  - Start with a lowercase letter or digit
  - Contain only lowercase letters, digits, dashes and underscores

ValidateNames additionally rejects duplicates.
*/
package rule
