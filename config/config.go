// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/Bhanditz/falcon/env"
	"github.com/Bhanditz/falcon/logging"
	"github.com/Bhanditz/falcon/match"
	"github.com/Bhanditz/falcon/middleware"
	rulename "github.com/Bhanditz/falcon/validation/rule"
)

// Environment variables read by ApplyEnv.
const (
	EnvApp       = "FALCON_APP"
	EnvLogLevel  = "FALCON_LOG_LEVEL"
	EnvLogFormat = "FALCON_LOG_FORMAT"
)

// Config is the configuration of the request boundary.
type Config struct {
	App     string       `yaml:"app,omitempty"`
	Logging Logging      `yaml:"logging,omitempty"`
	Rules   []RuleConfig `yaml:"rules,omitempty"`
}

// Logging selects the log level and format.
type Logging struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// RuleConfig is a deny rule as written in the configuration file.
type RuleConfig struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
	Status     int    `yaml:"status,omitempty"`
	Message    string `yaml:"message,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Logging: Logging{Level: "info", Format: "json"},
	}
}

// Path returns the configuration file within the given config home.
// This is the injectable form of DefaultPath.
func Path(configHome string) string {
	return filepath.Join(configHome, "falcon", "config.yaml")
}

// DefaultPath returns the configuration file in the XDG config home.
func DefaultPath() string {
	return Path(xdg.ConfigHome)
}

// Parse validates data against the schema and decodes it over Default.
func Parse(data []byte) (*Config, error) {
	if err := ValidateSchema(data); err != nil {
		return nil, err
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	// #nosec G304 - path is chosen by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is like Load but returns Default when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// ApplyEnv overrides the configuration with the FALCON_* variables that are
// set in r. Values are validated the same way as file values.
func (c *Config) ApplyEnv(r env.Reader) error {
	if v := r.Getenv(EnvApp); v != "" {
		c.App = v
	}
	if v := r.Getenv(EnvLogLevel); v != "" {
		if _, err := logging.ParseLevel(v); err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		c.Logging.Level = v
	}
	if v := r.Getenv(EnvLogFormat); v != "" {
		if _, err := logging.ParseFormat(v); err != nil {
			return fmt.Errorf("%s: %w", EnvLogFormat, err)
		}
		c.Logging.Format = v
	}
	return nil
}

// Logger builds the configured logger writing to w.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	opts := []logging.Option{logging.WithOutput(w)}

	if c.Logging.Level != "" {
		lvl, err := logging.ParseLevel(c.Logging.Level)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logging.WithLevel(lvl))
	}
	if c.Logging.Format != "" {
		format, err := logging.ParseFormat(c.Logging.Format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logging.WithFormat(format))
	}

	logger := logging.New(opts...)
	logger.Debug("configuration loaded",
		"app", c.App,
		"log_level", c.Logging.Level,
		"log_format", c.Logging.Format,
		"rules", len(c.Rules),
	)
	return logger, nil
}

// CompileRules compiles the configured deny rules with engine. All invalid
// expressions are reported together.
func (c *Config) CompileRules(engine *match.Engine) ([]middleware.Rule, error) {
	names := make([]string, 0, len(c.Rules))
	for _, rc := range c.Rules {
		names = append(names, rc.Name)
	}
	if err := rulename.ValidateNames(names); err != nil {
		return nil, err
	}

	rules := make([]middleware.Rule, 0, len(c.Rules))
	var msgs []string
	for _, rc := range c.Rules {
		compiled, err := engine.Compile(rc.Expression)
		if err != nil {
			msgs = append(msgs, fmt.Sprintf("rule %q: %s", rc.Name, err))
			continue
		}
		rules = append(rules, middleware.Rule{
			Name:    rc.Name,
			Status:  rc.Status,
			Message: rc.Message,
			Match:   compiled,
		})
	}
	if err := formatNumberedErrors("rule compilation failed", msgs); err != nil {
		return nil, err
	}
	return rules, nil
}

// MiddlewareOptions returns the middleware options for this configuration.
func (c *Config) MiddlewareOptions(logger *slog.Logger, rules []middleware.Rule) []middleware.Option {
	return []middleware.Option{
		middleware.WithApp(c.App),
		middleware.WithLogger(logger),
		middleware.WithRules(rules...),
	}
}
