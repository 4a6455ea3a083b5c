// File: markup.go
// Title: Markup Engine
// Description: Coordinates parsing and structural analysis of markup
//              documents, classifies failures as mDW errors and collects
//              tree statistics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package markup

import (
	"errors"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/mdwmarkup/foundation/core/error"
	mdwlog "github.com/msto63/mdwmarkup/foundation/core/log"
	mdwanalyzer "github.com/msto63/mdwmarkup/foundation/markup/analyzer"
	mdwast "github.com/msto63/mdwmarkup/foundation/markup/ast"
	mdwparser "github.com/msto63/mdwmarkup/foundation/markup/parser"
)

// Engine parses and analyzes markup documents. It holds no per-check state
// and is safe for concurrent use.
type Engine struct {
	parser  *mdwparser.Parser
	logger  *mdwlog.Logger
	options Options
}

// Options configures the markup engine
type Options struct {
	// Logger for engine and parser output (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// MaxDepth limits element nesting (default: 0, unbounded)
	MaxDepth int

	// MaxInputLength limits the document size in bytes (default: 1 MiB)
	MaxInputLength int

	// RequireComplete rejects content after the root element
	RequireComplete bool
}

// Result describes a parsed document
type Result struct {
	// ID identifies the check in logs and errors
	ID string

	// Element is the root of the parsed tree
	Element mdwast.Element

	// Rest is the input left after the root element
	Rest string

	// Stats summarizes the tree
	Stats Stats

	// Duration is the time taken by the check
	Duration time.Duration

	// Valid is true when the analyzer accepted the tree
	Valid bool
}

// NewEngine creates a new markup engine
func NewEngine(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	p, err := mdwparser.New(mdwparser.Options{
		Logger:          opts.Logger,
		MaxInputLength:  opts.MaxInputLength,
		MaxDepth:        opts.MaxDepth,
		RequireComplete: opts.RequireComplete,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create markup parser").
			WithOperation("markup.NewEngine")
	}

	return &Engine{
		parser:  p,
		logger:  opts.Logger.WithField("component", "markup-engine"),
		options: opts,
	}, nil
}

// Check parses input and analyzes the tree. On a structural mismatch the
// result is returned together with the error.
func (e *Engine) Check(input string) (*Result, error) {
	id := uuid.NewString()
	logger := e.logger.WithCorrelationID(id)
	timer := logger.StartTimer("markup check").WithField("length", len(input))

	elem, rest, err := e.parser.WithLogger(logger).Parse(input)
	if err != nil {
		checkErr := classifyParseError(err, "markup.Check").WithRequestID(id)
		timer.StopWithError(checkErr)
		return nil, checkErr
	}

	result := &Result{
		ID:      id,
		Element: elem,
		Rest:    rest,
		Stats:   CollectStats(elem),
	}

	if err := mdwanalyzer.Analyze(elem); err != nil {
		checkErr := classifyAnalyzeError(err).WithRequestID(id)
		result.Duration = timer.StopWithError(checkErr)
		return result, checkErr
	}

	result.Valid = true
	result.Duration = timer.Stop()
	logger.Debug("Markup check passed", mdwlog.Fields{
		"root":     string(elem.Start().Name),
		"elements": result.Stats.Elements,
	})
	return result, nil
}

// Parse parses input without analyzing it
func (e *Engine) Parse(input string) (mdwast.Element, string, error) {
	elem, rest, err := e.parser.Parse(input)
	if err != nil {
		return nil, "", classifyParseError(err, "markup.Parse")
	}
	return elem, rest, nil
}

// Analyze validates an already parsed tree
func (e *Engine) Analyze(elem mdwast.Element) error {
	if err := mdwanalyzer.Analyze(elem); err != nil {
		return classifyAnalyzeError(err)
	}
	return nil
}

// Options returns the options the engine was created with
func (e *Engine) Options() Options {
	return e.options
}

// classifyParseError maps parser failures to mDW error codes
func classifyParseError(err error, operation string) *mdwerror.Error {
	switch {
	case errors.Is(err, mdwparser.ErrInputTooLong):
		return mdwerror.Wrap(err, "markup input rejected").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(operation)
	case errors.Is(err, mdwparser.ErrMaxDepth):
		return withPosition(mdwerror.Wrap(err, "markup nesting too deep").
			WithCode(mdwerror.CodeMarkupDepth).
			WithOperation(operation), err)
	default:
		return withPosition(mdwerror.Wrap(err, "invalid markup syntax").
			WithCode(mdwerror.CodeMarkupSyntax).
			WithOperation(operation), err)
	}
}

func withPosition(merr *mdwerror.Error, err error) *mdwerror.Error {
	var syntaxErr *mdwparser.SyntaxError
	if errors.As(err, &syntaxErr) {
		merr = merr.
			WithDetail("line", syntaxErr.Pos.Line).
			WithDetail("column", syntaxErr.Pos.Column).
			WithDetail("rule", syntaxErr.Rule)
	}
	return merr
}

// classifyAnalyzeError maps analyzer failures to mDW error codes
func classifyAnalyzeError(err error) *mdwerror.Error {
	merr := mdwerror.Wrap(err, "invalid markup structure").
		WithCode(mdwerror.CodeMarkupSemantic).
		WithOperation("markup.Analyze")

	var mismatch *mdwanalyzer.MismatchError
	if errors.As(err, &mismatch) {
		merr = merr.
			WithDetail("start_tag", string(mismatch.Start)).
			WithDetail("end_tag", string(mismatch.End)).
			WithDetail("line", mismatch.EndPos.Line).
			WithDetail("column", mismatch.EndPos.Column)
	}
	return merr
}
