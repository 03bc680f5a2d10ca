// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package launcher

import (
	"os"

	"github.com/orosu/orosu-launcher/pkg/types"
)

func exitCodeFromState(ps *os.ProcessState) types.ExitCode {
	if code := ps.ExitCode(); code >= 0 {
		return types.ExitCode(code)
	}
	return types.ExitFailure
}
