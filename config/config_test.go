// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Bhanditz/falcon/env"
	envmocks "github.com/Bhanditz/falcon/env/mocks"
	"github.com/Bhanditz/falcon/match"
)

const sampleConfig = `
app: /api
logging:
  level: debug
  format: text
rules:
  - name: no-suffix-ranges
    expression: 'byte_range.size() > 0 && byte_range[0] < 0'
    status: 416
    message: Suffix byte ranges are not supported.
  - name: no-delete
    expression: 'method == "DELETE"'
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := Path(t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "/api", cfg.App)
	assert.Equal(t, Logging{Level: "debug", Format: "text"}, cfg.Logging)
	require.Len(t, cfg.Rules, 2)
	assert.Equal(t, RuleConfig{
		Name:       "no-suffix-ranges",
		Expression: "byte_range.size() > 0 && byte_range[0] < 0",
		Status:     http.StatusRequestedRangeNotSatisfiable,
		Message:    "Suffix byte ranges are not supported.",
	}, cfg.Rules[0])
	assert.Zero(t, cfg.Rules[1].Status)
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "app: /api\n"))
	require.NoError(t, err)
	assert.Equal(t, Default().Logging, cfg.Logging)

	cfg, err = Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	path := Path(t.TempDir())

	_, err := Load(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	cfg, err := LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_SchemaErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		contains []string
	}{
		{
			name:     "unknown property",
			content:  "app: /api\nport: 8080\n",
			contains: []string{"configuration schema validation failed", "port"},
		},
		{
			name:     "bad level",
			content:  "logging:\n  level: verbose\n",
			contains: []string{"logging.level"},
		},
		{
			name:     "trailing slash app",
			content:  "app: /api/\n",
			contains: []string{"app"},
		},
		{
			name:     "numbered errors",
			content:  "logging:\n  format: xml\nrules:\n  - name: x\n    status: 200\n",
			contains: []string{"with 3 errors", "1. ", "2. ", "3. "},
		},
		{
			name:     "invalid yaml",
			content:  "rules: [",
			contains: []string{"invalid configuration YAML"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("/etc/xdg", "falcon", "config.yaml"), Path("/etc/xdg"))
	assert.Equal(t, "config.yaml", filepath.Base(DefaultPath()))
	assert.Equal(t, "falcon", filepath.Base(filepath.Dir(DefaultPath())))
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		reader := envmocks.NewMockReader(ctrl)
		reader.EXPECT().Getenv(EnvApp).Return("/v2")
		reader.EXPECT().Getenv(EnvLogLevel).Return("warn")
		reader.EXPECT().Getenv(EnvLogFormat).Return("")

		cfg := Default()
		require.NoError(t, cfg.ApplyEnv(reader))
		assert.Equal(t, "/v2", cfg.App)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()

		cfg := Default()
		err := cfg.ApplyEnv(env.Map{EnvLogLevel: "loud"})
		require.ErrorContains(t, err, EnvLogLevel)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		err := Default().ApplyEnv(env.Map{EnvLogFormat: "xml"})
		require.ErrorContains(t, err, EnvLogFormat)
	})
}

func TestLogger(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	var buf bytes.Buffer
	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `msg="configuration loaded"`)
	assert.Contains(t, buf.String(), "rules=2")

	buf.Reset()
	logger.Debug("visible")
	assert.Contains(t, buf.String(), "level=DEBUG")

	bad := &Config{Logging: Logging{Level: "loud"}}
	_, err = bad.Logger(&buf)
	require.Error(t, err)
}

func TestRules(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	rules, err := cfg.CompileRules(match.NewEngine())
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "no-suffix-ranges", rules[0].Name)
	assert.Equal(t, http.StatusRequestedRangeNotSatisfiable, rules[0].Status)
	assert.Equal(t, `method == "DELETE"`, rules[1].Match.Source())

	opts := cfg.MiddlewareOptions(nil, rules)
	assert.Len(t, opts, 3)
}

func TestRules_InvalidNames(t *testing.T) {
	t.Parallel()

	cfg := &Config{Rules: []RuleConfig{
		{Name: "deny", Expression: `true`},
		{Name: "deny", Expression: `false`},
	}}
	_, err := cfg.CompileRules(match.NewEngine())
	require.ErrorContains(t, err, `duplicate rule name "deny"`)

	cfg = &Config{Rules: []RuleConfig{{Name: "No Delete", Expression: `true`}}}
	_, err = cfg.CompileRules(match.NewEngine())
	require.ErrorContains(t, err, "lowercase")
}

func TestRules_Invalid(t *testing.T) {
	t.Parallel()

	cfg := &Config{Rules: []RuleConfig{
		{Name: "syntax", Expression: `method ==`},
		{Name: "ok", Expression: `true`},
		{Name: "undeclared", Expression: `claims["sub"] == "x"`},
	}}

	_, err := cfg.CompileRules(match.NewEngine())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule compilation failed with 2 errors")
	assert.Contains(t, err.Error(), `rule "syntax"`)
	assert.Contains(t, err.Error(), `rule "undeclared"`)
}
