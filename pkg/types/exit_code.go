// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

// Exit codes chosen by the launcher itself. They are only used when the
// client never ran; a client that ran always has its own code relayed.
const (
	// ExitSuccess is returned when the client exits cleanly.
	ExitSuccess ExitCode = 0
	// ExitFailure covers internal launcher failures with no better code.
	ExitFailure ExitCode = 1
	// ExitUsage is returned for missing inputs or invalid configuration.
	ExitUsage ExitCode = 2
	// ExitCannotExecute is returned when the client could not be prepared
	// (permission normalization or checksum verification failed).
	ExitCannotExecute ExitCode = 126
	// ExitNotExecuted is returned when the client process could not be spawned.
	ExitNotExecuted ExitCode = 127

	// signalExitBase is added to a terminating signal number, as POSIX shells do.
	signalExitBase = 128
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode represents a process exit status code.
	// Exit codes are in the range 0-255 on POSIX systems.
	// The zero value (0) means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// valid range (0-255).
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// SignalExitCode returns the shell-convention code for a process killed by signal sig.
func SignalExitCode(sig int) ExitCode { return ExitCode(signalExitBase + sig) }

// Validate returns an error if the ExitCode is outside the POSIX range (0-255).
// Windows processes can exit with larger values; those are still relayed as-is.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
