// File: level.go
// Title: Log Levels
// Description: Log level definitions, parsing and filtering.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Level names, tags and colors from one table

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

// Levels from most to least verbose
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelInfo = [...]struct {
	name  string
	short string
	color string
}{
	LevelTrace: {"trace", "TRC", "\033[37m"},
	LevelDebug: {"debug", "DBG", "\033[36m"},
	LevelInfo:  {"info", "INF", "\033[32m"},
	LevelWarn:  {"warn", "WRN", "\033[33m"},
	LevelError: {"error", "ERR", "\033[31m"},
	LevelFatal: {"fatal", "FTL", "\033[35m"},
}

// Aliases accepted by ParseLevel besides the names and short tags
var levelAliases = map[string]Level{
	"information": LevelInfo,
	"warning":     LevelWarn,
}

func (l Level) valid() bool {
	return l >= LevelTrace && int(l) < len(levelInfo)
}

// String returns the lower case level name
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelInfo[l].name
}

// ShortString returns the three letter tag used by the text formatters
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelInfo[l].short
}

// Color returns the ANSI color sequence for console output
func (l Level) Color() string {
	if !l.valid() {
		return "\033[0m"
	}
	return levelInfo[l].color
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a level name, its short tag or a common alias.
// Matching ignores case and surrounding whitespace.
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for l, info := range levelInfo {
		if s == info.name || s == strings.ToLower(info.short) {
			return Level(l), nil
		}
	}
	if l, ok := levelAliases[s]; ok {
		return l, nil
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
