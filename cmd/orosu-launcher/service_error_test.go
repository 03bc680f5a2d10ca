// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/orosu/orosu-launcher/internal/checksum"
	"github.com/orosu/orosu-launcher/internal/issue"
	"github.com/orosu/orosu-launcher/internal/launcher"
	"github.com/orosu/orosu-launcher/pkg/platform"
)

func TestNewServiceError_NilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("newServiceError(nil) should panic")
		}
	}()
	_ = newServiceError(nil, 0)
}

func TestClassifyIssue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{name: "child failure", err: &launcher.ChildFailure{Code: 3}, want: 0},
		{name: "checksum mismatch", err: &launcher.PreparationError{Path: "/c", Err: &checksum.MismatchError{}}, want: issue.ChecksumMismatchId},
		{name: "not in manifest", err: &launcher.PreparationError{Path: "/c", Err: checksum.ErrArtifactNotListed}, want: issue.ChecksumMismatchId},
		{name: "chmod denied", err: &launcher.PreparationError{Path: "/c", Err: fs.ErrPermission}, want: issue.PermissionDeniedId},
		{name: "binary missing", err: &launcher.PreparationError{Path: "/c", Err: fs.ErrNotExist}, want: issue.BinaryNotFoundId},
		{name: "spawn failed", err: &launcher.ExecutionError{Path: "/c", Err: errors.New("exec format error")}, want: issue.BinaryNotFoundId},
		{name: "missing input", err: fmt.Errorf("x: %w", launcher.ErrMissingInput), want: issue.MissingInputId},
		{name: "bad host", err: &platform.InvalidHostError{Field: "os"}, want: issue.HostNotSupportedId},
		{name: "actionable with issue", err: issue.NewErrorContext().WithOperation("x").WithIssue(issue.ConfigLoadFailedId).BuildError(), want: issue.ConfigLoadFailedId},
		{name: "unknown", err: errors.New("boom"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := classifyIssue(tt.err); got != tt.want {
				t.Errorf("classifyIssue() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRenderServiceError(t *testing.T) {
	t.Parallel()

	err := issue.NewErrorContext().
		WithOperation("validate inputs").
		WithSuggestion("Pass --key hunter2 differently").
		Wrap(errors.New("missing")).
		BuildError()

	var buf bytes.Buffer
	renderServiceError(&buf, newServiceError(err, issue.MissingInputId), "hunter2", true)

	out := buf.String()
	if strings.Contains(out, "hunter2") {
		t.Errorf("rendered error leaks the key:\n%s", out)
	}
	if !strings.Contains(out, "Pass --key [REDACTED] differently") {
		t.Errorf("suggestion missing:\n%s", out)
	}
	if !strings.Contains(out, "Error chain:") {
		t.Errorf("verbose chain missing:\n%s", out)
	}
	if !strings.Contains(out, "Missing required input") {
		t.Errorf("catalog guidance missing:\n%s", out)
	}
}

func TestRenderServiceError_NoIssue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderServiceError(&buf, newServiceError(&launcher.ChildFailure{Code: 2}, 0), "", false)
	if buf.Len() != 0 {
		t.Errorf("a failed client needs no extra guidance, got:\n%s", buf.String())
	}
	renderServiceError(&buf, nil, "", false)
}
