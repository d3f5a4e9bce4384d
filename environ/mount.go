// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package environ

import "strings"

// SplitMount separates the mount prefix app from an escaped request path.
// The prefix matches whole segments only: under "/test", "/test" and
// "/test/x" are inside the mount while "/testing/x" and "/other" are not.
// A path outside the mount is returned whole with an empty app.
func SplitMount(path, app string) (mount, rest string) {
	app = strings.TrimSuffix(app, "/")
	switch {
	case app == "":
		return "", path
	case path == app:
		return app, ""
	case strings.HasPrefix(path, app+"/"):
		return app, path[len(app):]
	default:
		return "", path
	}
}
