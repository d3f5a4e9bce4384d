// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

const (
	// DefaultMaxExpressionLength is the longest expression Compile accepts.
	DefaultMaxExpressionLength = 4096

	// DefaultCostLimit bounds the runtime cost of a single evaluation.
	DefaultCostLimit = 100000
)

// Names of the variables declared for every expression.
const (
	VarMethod        = "method"
	VarProtocol      = "protocol"
	VarHost          = "host"
	VarApp           = "app"
	VarPath          = "path"
	VarQueryString   = "query_string"
	VarURI           = "uri"
	VarRelativeURI   = "relative_uri"
	VarHeaders       = "headers"
	VarContentLength = "content_length"
	VarByteRange     = "byte_range"
	VarAccept        = "accept"
	VarAcceptsXML    = "accepts_xml"
	VarAcceptsJSON   = "accepts_json"
	VarParams        = "params"
)

// Engine compiles rule expressions. It is safe for concurrent use.
type Engine struct {
	options             []cel.EnvOption
	maxExpressionLength int
	costLimit           uint64

	once sync.Once
	env  *cel.Env
	err  error
}

// NewEngine returns an Engine that declares the request variables. Extra
// options, such as additional functions, are appended to the declarations.
func NewEngine(options ...cel.EnvOption) *Engine {
	return &Engine{
		options:             append(requestVariables(), options...),
		maxExpressionLength: DefaultMaxExpressionLength,
		costLimit:           DefaultCostLimit,
	}
}

func requestVariables() []cel.EnvOption {
	opts := make([]cel.EnvOption, 0, 15)
	for _, name := range []string{
		VarMethod, VarProtocol, VarHost, VarApp, VarPath,
		VarQueryString, VarURI, VarRelativeURI, VarAccept,
	} {
		opts = append(opts, cel.Variable(name, cel.StringType))
	}
	return append(opts,
		cel.Variable(VarHeaders, cel.MapType(cel.StringType, cel.StringType)),
		cel.Variable(VarContentLength, cel.IntType),
		cel.Variable(VarByteRange, cel.ListType(cel.IntType)),
		cel.Variable(VarAcceptsXML, cel.BoolType),
		cel.Variable(VarAcceptsJSON, cel.BoolType),
		cel.Variable(VarParams, cel.MapType(cel.StringType, cel.StringType)),
	)
}

// WithMaxExpressionLength sets the longest expression Compile and Check accept.
func (e *Engine) WithMaxExpressionLength(maxLen int) *Engine {
	e.maxExpressionLength = maxLen
	return e
}

// WithCostLimit sets the runtime cost limit of compiled rules.
func (e *Engine) WithCostLimit(limit uint64) *Engine {
	e.costLimit = limit
	return e
}

func (e *Engine) celEnv() (*cel.Env, error) {
	e.once.Do(func() {
		e.env, e.err = cel.NewEnv(e.options...)
	})
	return e.env, e.err
}

// check parses and type checks expr. The result must be boolean.
func (e *Engine) check(expr string) (*cel.Env, *cel.Ast, error) {
	if len(expr) > e.maxExpressionLength {
		return nil, nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrExpressionCheck, len(expr), e.maxExpressionLength)
	}

	env, err := e.celEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	parsed, issues := env.Parse(expr)
	if issues.Err() != nil {
		return nil, nil, newParseError(expr, issues)
	}

	checked, issues := env.Check(parsed)
	if issues.Err() != nil {
		return nil, nil, newCheckError(expr, issues)
	}

	if !checked.OutputType().IsExactType(cel.BoolType) {
		return nil, nil, fmt.Errorf("%w: expression %q has type %s, want bool",
			ErrExpressionCheck, expr, checked.OutputType())
	}

	return env, checked, nil
}

// Check reports whether expr would compile, without building a program.
func (e *Engine) Check(expr string) error {
	_, _, err := e.check(expr)
	return err
}

// Compile builds a Rule from expr. It fails with a ParseError or CheckError
// for invalid expressions and with ErrExpressionCheck when expr is too long
// or does not evaluate to a bool.
func (e *Engine) Compile(expr string) (*Rule, error) {
	env, checked, err := e.check(expr)
	if err != nil {
		return nil, err
	}

	program, err := env.Program(checked, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program for %q: %w", expr, err)
	}

	return &Rule{source: expr, program: program}, nil
}
