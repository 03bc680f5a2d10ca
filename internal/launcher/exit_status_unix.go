// SPDX-License-Identifier: MPL-2.0

//go:build unix

package launcher

import (
	"os"
	"syscall"

	"github.com/orosu/orosu-launcher/pkg/types"
)

// exitCodeFromState reports 128+N for a client killed by signal N.
func exitCodeFromState(ps *os.ProcessState) types.ExitCode {
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return types.SignalExitCode(int(ws.Signal()))
	}
	if code := ps.ExitCode(); code >= 0 {
		return types.ExitCode(code)
	}
	return types.ExitFailure
}
