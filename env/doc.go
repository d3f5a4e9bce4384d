// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for process environment
variable access, used to apply configuration overrides.

This is the process environment (FALCON_LOG_LEVEL and friends), not the
per-request environment, which lives in package environ.

# Basic Usage

	reader := &env.OSReader{}
	value := reader.Getenv("FALCON_LOG_LEVEL")

# Testing

A generated mock is available in the mocks sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv("FALCON_LOG_LEVEL").Return("debug")

For tests that only need fixed values, Map implements Reader directly.
*/
package env
