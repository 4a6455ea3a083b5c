// File: parser.go
// Title: Markup Parser
// Description: Front end of the markup grammar. Applies input limits,
//              logs parse runs and returns the root element together with
//              the unconsumed remainder.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Trailing input is blank only if it is grammar whitespace,
//   failures log the error object

package parser

import (
	"fmt"

	mdwerror "github.com/msto63/mdwmarkup/foundation/core/error"
	mdwlog "github.com/msto63/mdwmarkup/foundation/core/log"
	mdwast "github.com/msto63/mdwmarkup/foundation/markup/ast"
)

// DefaultMaxInputLength is used when Options.MaxInputLength is 0
const DefaultMaxInputLength = 1 << 20

// Parser parses markup documents
type Parser struct {
	logger  *mdwlog.Logger
	options Options
	grammar grammar
}

// Options configures parser behavior
type Options struct {
	Logger          *mdwlog.Logger
	MaxInputLength  int  // Maximum input size in bytes, 0 selects the default
	MaxDepth        int  // Maximum element nesting, 0 means unbounded
	RequireComplete bool // Reject non-whitespace content after the root element
}

// New creates a new markup parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.MaxInputLength < 0 {
		return nil, mdwerror.New(fmt.Sprintf("max input length must not be negative: %d", opts.MaxInputLength)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.New")
	}
	if opts.MaxDepth < 0 {
		return nil, mdwerror.New(fmt.Sprintf("max depth must not be negative: %d", opts.MaxDepth)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.New")
	}

	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "markup-parser"),
		options: opts,
		grammar: grammar{maxDepth: opts.MaxDepth},
	}, nil
}

// WithLogger returns a copy of the parser that logs to logger
func (p *Parser) WithLogger(logger *mdwlog.Logger) *Parser {
	clone := *p
	clone.logger = logger.WithField("component", "markup-parser")
	clone.options.Logger = logger
	return &clone
}

// Options returns the effective options of the parser
func (p *Parser) Options() Options {
	return p.options
}

// Parse parses one element from the start of input and returns it with
// the remaining input. Content after the element is returned, not
// rejected, unless RequireComplete is set.
func (p *Parser) Parse(input string) (mdwast.Element, string, error) {
	if len(input) > p.options.MaxInputLength {
		return nil, "", fmt.Errorf("%w: %d > %d", ErrInputTooLong, len(input), p.options.MaxInputLength)
	}

	p.logger.Debug("Starting markup parsing", mdwlog.Fields{
		"length": len(input),
	})

	rest, elem, err := p.grammar.element(1)(NewInput(input))
	if err != nil {
		p.logger.WarnWithErr("Markup parsing failed", err, mdwlog.Fields{
			"length": len(input),
		})
		return nil, "", err
	}

	if at, _, _ := multispace0(rest); p.options.RequireComplete && !at.AtEnd() {
		err := &SyntaxError{
			Rule:     "document",
			Expected: "end of input",
			Found:    describe(at),
			Pos:      at.Pos(),
			Err:      ErrTrailingInput,
		}
		p.logger.WarnWithErr("Markup parsing failed", err, mdwlog.Fields{
			"length": len(input),
		})
		return nil, "", err
	}

	if p.logger.IsLevelEnabled(mdwlog.LevelDebug) {
		p.logger.Debug("Markup parsing completed successfully", mdwlog.Fields{
			"root":      string(elem.Start().Name),
			"consumed":  rest.Offset(),
			"remaining": len(input) - rest.Offset(),
		})
	}

	return elem, rest.Rest(), nil
}

// ParseElement parses one element from the start of input without limits
// or logging and returns it with the remaining input
func ParseElement(input string) (mdwast.Element, string, error) {
	rest, elem, err := grammar{}.element(1)(NewInput(input))
	if err != nil {
		return nil, "", err
	}
	return elem, rest.Rest(), nil
}
