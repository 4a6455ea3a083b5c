// ============================================================================
// mDW Markup - Markup Parser und Strukturpruefung
// ============================================================================
//
// Package:     viewer
// Description: Message types for async operations in the markup viewer
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package viewer

import (
	"time"

	"github.com/msto63/mdwmarkup/foundation/markup"
)

// Message types for tea.Cmd async operations

// checkedMsg is sent when a document was read and checked
type checkedMsg struct {
	source  string
	modTime time.Time
	result  *markup.Result
	err     error
}

// unchangedMsg is sent when the watched file did not change since the last check
type unchangedMsg struct{}

// tickMsg is sent periodically to poll the watched file
type tickMsg time.Time
