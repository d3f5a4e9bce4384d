// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads the configuration of the request boundary.

The configuration is a YAML document validated against an embedded JSON
schema before it is decoded:

	app: /api
	logging:
	  level: info
	  format: json
	rules:
	  - name: no-suffix-ranges
	    expression: 'byte_range.size() > 0 && byte_range[0] < 0'
	    status: 416
	    message: Suffix byte ranges are not supported.

The default location is $XDG_CONFIG_HOME/falcon/config.yaml. Environment
variables override the file:

	FALCON_APP         mount prefix
	FALCON_LOG_LEVEL   debug, info, warn or error
	FALCON_LOG_FORMAT  json or text

Typical startup:

	cfg, err := config.LoadOrDefault(config.DefaultPath())
	if err != nil {
	    return err
	}
	if err := cfg.ApplyEnv(&env.OSReader{}); err != nil {
	    return err
	}
	logger, err := cfg.Logger(os.Stderr)
	rules, err := cfg.CompileRules(match.NewEngine())
	handler := middleware.Handler(mux, cfg.MiddlewareOptions(logger, rules)...)
*/
package config
