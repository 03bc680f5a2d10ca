// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package launcher

import (
	"errors"
	"io"
	"os/exec"
)

// ErrPTYUnsupported is returned when PTY mode is requested on a host without ptys.
var ErrPTYUnsupported = errors.New("pseudo-terminal execution is not supported on this platform")

func runWithPTY(_ *exec.Cmd, _ io.Writer) error {
	return ErrPTYUnsupported
}
