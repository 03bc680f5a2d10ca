// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/orosu/orosu-launcher/internal/checksum"
	"github.com/orosu/orosu-launcher/internal/issue"
	"github.com/orosu/orosu-launcher/internal/launcher"
	"github.com/orosu/orosu-launcher/pkg/platform"
)

// ServiceError is an error that carries optional rendering information for
// the CLI layer: a catalog issue whose guidance is printed after the error.
// Always create via newServiceError to enforce the Err-must-be-non-nil invariant.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.Id
}

// newServiceError creates a ServiceError with a nil-Err panic guard.
func newServiceError(err error, issueID issue.Id) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{Err: err, IssueID: issueID}
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// classifyIssue maps a launch error onto the catalog entry that explains it.
// A client that ran and failed has no entry: its own output is the explanation.
func classifyIssue(err error) issue.Id {
	var ae *issue.ActionableError
	switch {
	case errors.As(err, &ae) && ae.Issue != 0:
		return ae.Issue
	case errors.Is(err, launcher.ErrChildFailed):
		return 0
	case errors.Is(err, checksum.ErrChecksumMismatch), errors.Is(err, checksum.ErrArtifactNotListed):
		return issue.ChecksumMismatchId
	case errors.Is(err, launcher.ErrMissingInput):
		return issue.MissingInputId
	case errors.Is(err, platform.ErrInvalidHost):
		return issue.HostNotSupportedId
	case errors.Is(err, fs.ErrPermission):
		return issue.PermissionDeniedId
	case errors.Is(err, launcher.ErrExecution), errors.Is(err, fs.ErrNotExist):
		return issue.BinaryNotFoundId
	}
	return 0
}

// renderServiceError prints the remediation details of svcErr: the
// suggestions of an ActionableError (plus its error chain when verbose) and
// the catalog guidance, if any. The error line itself is printed by fang
// once the command returns. Any occurrence of secret is scrubbed.
func renderServiceError(stderr io.Writer, svcErr *ServiceError, secret string, verbose bool) {
	if svcErr == nil {
		return
	}

	var ae *issue.ActionableError
	if errors.As(svcErr.Err, &ae) {
		details := strings.TrimPrefix(ae.Format(verbose), ae.Error())
		if details = strings.TrimLeft(details, "\n"); details != "" {
			fmt.Fprintln(stderr, launcher.Redact(details, secret))
		}
	}

	if svcErr.IssueID == 0 {
		return
	}

	if catalogEntry := issue.Get(svcErr.IssueID); catalogEntry != nil {
		rendered, renderErr := catalogEntry.Render(issue.StyleFor(stderr))
		if renderErr != nil {
			slog.Warn("failed to render issue catalog entry", "issueID", svcErr.IssueID, "error", renderErr)
		} else {
			fmt.Fprint(stderr, rendered)
		}
	}
}
