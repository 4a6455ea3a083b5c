// Package error provides structured error handling for mDW Markup.
//
// Package: error
// Title: mDW Markup Error Handling
// Description: Structured errors carrying a code, a severity, the failing
//              operation and free-form details. The markup engine reports
//              syntax and semantic failures through this package so callers
//              can branch on the code instead of matching message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: Reduced to the codes used by the markup engine
//
// Usage:
//
//	import mdwerror "github.com/msto63/mdwmarkup/foundation/core/error"
//
//	err := mdwerror.Wrap(cause, "markup syntax error").
//		WithCode(mdwerror.CodeMarkupSyntax).
//		WithOperation("markup.Check").
//		WithDetail("offset", 42)
//
//	if mdwerror.HasCode(err, mdwerror.CodeMarkupSyntax) {
//		// report the location to the user
//	}
package error
