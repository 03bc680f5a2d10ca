// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"orosu-launcher": func() { os.Exit(Main()) },
	})
}

// TestCLI runs the scripts in testdata/script against the real binary entry
// point, with a clean environment per script.
func TestCLI(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("script clients require a POSIX shell")
	}
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			env.Setenv("XDG_CONFIG_HOME", filepath.Join(env.WorkDir, ".config"))
			return nil
		},
		// Continue running all tests even if one fails
		ContinueOnError: true,
	})
}
