// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"

	"github.com/orosu/orosu-launcher/pkg/types"
)

var (
	// ErrPreparation is wrapped by every PreparationError.
	ErrPreparation = errors.New("failed to prepare client")
	// ErrExecution is wrapped by every ExecutionError.
	ErrExecution = errors.New("failed to execute client")
	// ErrChildFailed is wrapped by every ChildFailure.
	ErrChildFailed = errors.New("client exited with non-zero status")
)

type (
	// PreparationError reports that the artifact could not be made ready to run.
	// The client was never spawned.
	PreparationError struct {
		Path string
		Err  error
	}

	// ExecutionError reports that the client process could not be started.
	ExecutionError struct {
		Path string
		Err  error
		// msg is the underlying error text with the key scrubbed out.
		msg string
	}

	// ChildFailure reports a client that ran and exited non-zero.
	ChildFailure struct {
		Code types.ExitCode
	}
)

// Error implements the error interface.
func (e *PreparationError) Error() string {
	return fmt.Sprintf("failed to prepare %s: %v", e.Path, e.Err)
}

// Unwrap returns both ErrPreparation and the underlying cause.
func (e *PreparationError) Unwrap() []error { return []error{ErrPreparation, e.Err} }

func newExecutionError(path string, err error, key string) *ExecutionError {
	return &ExecutionError{Path: path, Err: err, msg: Redact(err.Error(), key)}
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	msg := e.msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("failed to execute %s: %s", e.Path, msg)
}

// Unwrap returns both ErrExecution and the underlying cause.
func (e *ExecutionError) Unwrap() []error { return []error{ErrExecution, e.Err} }

// Error implements the error interface.
func (e *ChildFailure) Error() string {
	return fmt.Sprintf("client exited with status %d", e.Code)
}

// Unwrap returns ErrChildFailed.
func (e *ChildFailure) Unwrap() error { return ErrChildFailed }

// ExitCodeOf maps a run error onto the launcher's process exit code: the
// client's own code for a ChildFailure, fixed launcher codes otherwise.
func ExitCodeOf(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}

	var child *ChildFailure
	if errors.As(err, &child) {
		return child.Code
	}

	switch {
	case errors.Is(err, ErrPreparation):
		return types.ExitCannotExecute
	case errors.Is(err, ErrExecution):
		return types.ExitNotExecuted
	case errors.Is(err, ErrMissingInput):
		return types.ExitUsage
	}
	return types.ExitFailure
}
