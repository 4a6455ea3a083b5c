// File: doc.go
// Title: Markup Engine Package Documentation
// Description: Package markup combines parsing and structural analysis of
//              mDW markup documents behind a single engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

/*
Package markup checks mDW markup documents.

The Engine parses a document with the parser package and then validates it
with the analyzer package. Each check gets an ID that is used as the log
correlation ID and as the request ID of returned errors.

	engine, err := markup.NewEngine(markup.Options{MaxDepth: 256})
	if err != nil {
		return err
	}
	result, err := engine.Check(markup.SampleDocument)

Failures are *mdwerror.Error values:

  - CodeMarkupSyntax: the input does not match the grammar; result is nil
  - CodeMarkupDepth: the nesting limit was exceeded; result is nil
  - CodeInvalidInput: the input is longer than allowed; result is nil
  - CodeMarkupSemantic: a start and end tag do not match; result holds the
    parsed tree so that callers can still display it

The underlying *parser.SyntaxError or *analyzer.MismatchError is reachable
with errors.As.
*/
package markup
