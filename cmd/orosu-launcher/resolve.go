// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/orosu/orosu-launcher/internal/issue"
	"github.com/orosu/orosu-launcher/pkg/platform"
	"github.com/orosu/orosu-launcher/pkg/types"

	"github.com/spf13/cobra"
)

func newResolveCommand(app *App, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Show which orosu-client build would run on this host",
		Long: `Show which orosu-client build would run on this host.

Prints the detected platform, the artifact filename and its absolute path.
Nothing is modified or executed. Use --os and --arch to preview other hosts.`,
		Example: `  orosu-launcher resolve
  orosu-launcher resolve --os win32 --arch x64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			loaded, err := app.loadConfig(cmd, flags)
			if err != nil {
				renderServiceError(app.stderr, newServiceError(err, issue.ConfigLoadFailedId), "", flags.verbose)
				return &ExitError{Code: types.ExitUsage, Err: err}
			}

			host := loaded.Config.ResolveHost()
			if err := host.Validate(); err != nil {
				return &ExitError{Code: types.ExitUsage, Err: err}
			}
			return printResolved(app, host, loaded.Config.BinDir)
		},
	}
}

func printResolved(app *App, host platform.Host, binDir string) error {
	artifact := platform.Resolve(host, binDir)

	status := SuccessStyle.Render("present")
	if _, err := os.Stat(artifact.Path); err != nil {
		status = ErrorStyle.Render("missing")
	}

	fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("Platform"), host)
	fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("Artifact"), artifact.Filename)
	fmt.Fprintf(app.stdout, "%s: %s (%s)\n", CmdStyle.Render("Path"), artifact.Path, status)
	return nil
}
