// SPDX-License-Identifier: MPL-2.0

//go:build unix

package launcher

import (
	"io"
	"os/exec"

	"github.com/creack/pty"
)

// runWithPTY starts cmd on a new pseudo-terminal, copies everything it writes
// to out and waits for it to exit.
func runWithPTY(cmd *exec.Cmd, out io.Writer) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ptmx.Close() }()

	copied := make(chan struct{})
	go func() {
		defer close(copied)
		// Reading the master after the client exits fails with EIO on Linux;
		// that is the normal end of output, not an error.
		_, _ = io.Copy(out, ptmx)
	}()

	waitErr := cmd.Wait()
	<-copied
	return waitErr
}
