// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and metadata.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-18

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if GetCode(err) != CodeUnknown {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodeUnknown)
	}
	if GetSeverity(err) != SeverityMedium {
		t.Errorf("GetSeverity() = %v, want %v", GetSeverity(err), SeverityMedium)
	}
	if err.timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap mDW error keeps code",
			err:      New("unexpected '<'").WithCode(CodeMarkupSyntax),
			message:  "parse failed",
			wantMsg:  "parse failed: unexpected '<'",
			wantCode: CodeMarkupSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if GetCode(got) != tt.wantCode {
				t.Errorf("GetCode() = %v, want %v", GetCode(got), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is should find the wrapped error")
			}
		})
	}
}

func TestWithCode_DerivesSeverity(t *testing.T) {
	err := New("bad config").WithCode(CodeInvalidConfig)
	if GetSeverity(err) != SeverityHigh {
		t.Errorf("GetSeverity() = %v, want %v", GetSeverity(err), SeverityHigh)
	}

	wrapped := Wrap(err, "loading settings")
	if GetSeverity(wrapped) != SeverityHigh {
		t.Errorf("Wrap() should keep the severity, got %v", GetSeverity(wrapped))
	}
}

func TestDetails(t *testing.T) {
	err := New("x").
		WithDetail("line", 3).
		WithDetail("column", 7).
		WithDetail("rule", "endTag").
		WithOperation("parser.Parse").
		WithRequestID("req-1")

	s := err.String()
	for _, want := range []string{"Operation: parser.Parse", "RequestID: req-1", "column=7, line=3, rule=endTag"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}

	wrapped := Wrap(err, "outer")
	if !strings.Contains(wrapped.String(), "line=3") {
		t.Errorf("Wrap() should carry details over:\n%s", wrapped.String())
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	inner := New("mismatch").WithCode(CodeMarkupSemantic)
	outer := fmt.Errorf("check: %w", inner)

	if !HasCode(outer, CodeMarkupSemantic) {
		t.Error("HasCode should see through fmt.Errorf wrapping")
	}
	if HasCode(outer, CodeMarkupSyntax) {
		t.Error("HasCode reported wrong code")
	}
	if GetCode(outer) != CodeMarkupSemantic {
		t.Errorf("GetCode() = %v", GetCode(outer))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() for plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() for plain error should be SeverityMedium")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "outer").
		WithCode(CodeMarkupSyntax).
		WithOperation("markup.Check").
		WithDetail("offset", 12)

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != string(CodeMarkupSyntax) {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v", decoded["severity"])
	}
	if decoded["cause"] != "cause" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if decoded["operation"] != "markup.Check" {
		t.Errorf("operation = %v", decoded["operation"])
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeMarkupSyntax, "markup", 1},
		{CodeMarkupSemantic, "markup", 1},
		{CodeMarkupDepth, "markup", 1},
		{CodeInvalidConfig, "configuration", 2},
		{CodeNotFound, "generic", 2},
		{CodeInternal, "generic", 3},
		{Code("BOGUS"), "generic", 3},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %v, want %v", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %v, want %v", got, tt.exit)
			}
		})
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.expected {
			t.Errorf("Severity(%d).String() = %v, want %v", tt.severity, got, tt.expected)
		}
	}
	if SeverityMedium.ShouldAlert() || !SeverityHigh.ShouldAlert() {
		t.Error("ShouldAlert() threshold should be SeverityHigh")
	}
}
