// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrInvalidHost is the sentinel error wrapped by InvalidHostError.
var ErrInvalidHost = errors.New("invalid host descriptor")

type (
	// Host describes the operating system and CPU architecture the launcher runs on.
	// It is captured once at startup and never re-queried.
	Host struct {
		OS   string
		Arch string
	}

	// InvalidHostError is returned when a Host is missing its OS or architecture.
	InvalidHostError struct {
		Field string
	}
)

// Error implements the error interface.
func (e *InvalidHostError) Error() string {
	return fmt.Sprintf("invalid host descriptor: %s must not be empty", e.Field)
}

// Unwrap returns ErrInvalidHost so callers can use errors.Is for programmatic detection.
func (e *InvalidHostError) Unwrap() error { return ErrInvalidHost }

// CurrentHost returns the Host of the running process.
func CurrentHost() Host {
	return NewHost(runtime.GOOS, runtime.GOARCH)
}

// NewHost builds a Host from raw identifiers, normalizing the OS alias "win32".
// The architecture is stored as reported; normalization happens at resolution time.
func NewHost(goos, arch string) Host {
	return Host{
		OS:   NormalizeOS(strings.TrimSpace(goos)),
		Arch: strings.TrimSpace(arch),
	}
}

// Validate reports whether both identifiers are present. No enumeration is
// enforced: an unknown OS is still a valid host.
func (h Host) Validate() error {
	if h.OS == "" {
		return &InvalidHostError{Field: "os"}
	}
	if h.Arch == "" {
		return &InvalidHostError{Field: "arch"}
	}
	return nil
}

// IsWindows returns true for Windows hosts, which have no executable bit.
func (h Host) IsWindows() bool { return h.OS == Windows }

// String returns "{os}-{arch}" with the architecture normalized.
func (h Host) String() string {
	return h.OS + "-" + NormalizeArch(h.Arch)
}
