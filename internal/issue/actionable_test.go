// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load configuration"},
			expected: "failed to load configuration",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "load configuration", Resource: "./config.cue"},
			expected: "failed to load configuration: ./config.cue",
		},
		{
			name:     "operation with cause",
			err:      &ActionableError{Operation: "validate inputs", Cause: errors.New("missing input: key")},
			expected: "failed to validate inputs: missing input: key",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "./config.cue",
				Cause:     errors.New("file not found"),
			},
			expected: "failed to load configuration: ./config.cue: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	err := NewErrorContext().
		WithOperation("resolve client").
		Wrap(fmt.Errorf("wrapped: %w", sentinel)).
		BuildError()

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find the wrapped sentinel")
	}

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("errors.As should find *ActionableError")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := &ActionableError{
		Operation:   "load configuration",
		Resource:    "config.cue",
		Suggestions: []string{"Check CUE syntax", "Run config dump"},
		Cause:       fmt.Errorf("parse: %w", errors.New("unexpected token")),
	}

	plain := err.Format(false)
	if !strings.Contains(plain, "  • Check CUE syntax") || !strings.Contains(plain, "  • Run config dump") {
		t.Errorf("Format(false) missing suggestions:\n%s", plain)
	}
	if strings.Contains(plain, "Error chain:") {
		t.Error("Format(false) should not include the error chain")
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) missing error chain:\n%s", verbose)
	}
	if !strings.Contains(verbose, "1. parse: unexpected token") || !strings.Contains(verbose, "2. unexpected token") {
		t.Errorf("Format(true) chain incomplete:\n%s", verbose)
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}

	ae := NewErrorContext().
		WithOperation("verify client").
		WithResource("/bin/orosu-client-linux-amd64").
		WithIssue(ChecksumMismatchId).
		WithSuggestion("one").
		WithSuggestion("two").
		Build()
	if ae.Issue != ChecksumMismatchId {
		t.Errorf("Issue = %d, want %d", ae.Issue, ChecksumMismatchId)
	}
	if len(ae.Suggestions) != 2 {
		t.Errorf("len(Suggestions) = %d, want 2", len(ae.Suggestions))
	}
}

func TestWrapWithContext(t *testing.T) {
	t.Parallel()

	if WrapWithContext(nil, "op", "res") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}
	ae := WrapWithContext(errors.New("boom"), "run client", "/tmp/client")
	if got := ae.Error(); got != "failed to run client: /tmp/client: boom" {
		t.Errorf("Error() = %q", got)
	}
}
