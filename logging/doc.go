// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging provides the [log/slog.Logger] factory used by the request
boundary and the configuration loader.

# Defaults

  - Format: JSON ([FormatJSON])
  - Level: INFO
  - Output: [os.Stderr]
  - Timestamps: [time.RFC3339]

# Usage

	logger := logging.New(
		logging.WithFormat(logging.FormatText),
		logging.WithLevel(slog.LevelDebug),
	)

Levels and formats read from configuration files go through ParseLevel and
ParseFormat:

	lvl, err := logging.ParseLevel("debug")
	format, err := logging.ParseFormat("text")

# Request Attributes

Header logs raw header values safely. Credentials are redacted and long
values are truncated:

	logger.Debug("rejected request", logging.Header("Authorization", v))
	// Authorization=[REDACTED]

Use [NewHandler] to wrap the handler:

	logger := slog.New(&myMiddleware{Handler: logging.NewHandler()})
*/
package logging
