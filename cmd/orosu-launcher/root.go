// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/orosu/orosu-launcher/internal/config"
	"github.com/orosu/orosu-launcher/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the flags that are not configuration keys.
type rootFlags struct {
	configPath string
	verbose    bool
	dryRun     bool
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "orosu-launcher",
		Short: "Run the orosu client for this CI runner",
		Long: TitleStyle.Render("orosu-launcher") + SubtitleStyle.Render(" - run the orosu client for this CI runner") + `

orosu-launcher picks the orosu-client build matching the runner's operating
system and CPU, makes it executable, and runs it with the given address,
script and key. The client's exit code becomes the launcher's exit code.

Inputs are read from flags, OROSU_* variables, the CI host's INPUT_*
variables or the CUE config file, in that order of precedence.

` + SubtitleStyle.Render("Examples:") + `
  orosu-launcher --address 10.0.0.1 --script build.sh --key "$OROSU_KEY"
  orosu-launcher --args "--verbose --retries 2"
  orosu-launcher resolve          Show which client build would run
  orosu-launcher config show      Show the resolved configuration`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true
			return app.launch(cmd, flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default is <config dir>/orosu-launcher/config.cue)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging and full error chains")
	pf.String(config.FlagName(config.KeyBinDir), "", "directory holding the orosu-client builds")
	pf.String(config.FlagName(config.KeyLogLevel), "", "log level (debug, info, warn, error)")
	pf.String(config.FlagName(config.KeyLogFormat), "", "log format (text, json, logfmt)")
	pf.String(config.FlagName(config.KeyHostOS), "", "override the detected operating system")
	pf.String(config.FlagName(config.KeyHostArch), "", "override the detected CPU architecture")
	_ = pf.MarkHidden(config.FlagName(config.KeyHostOS))
	_ = pf.MarkHidden(config.FlagName(config.KeyHostArch))

	f := rootCmd.Flags()
	f.String(config.FlagName(config.KeyAddress), "", "orosu server address")
	f.String(config.FlagName(config.KeyScript), "", "script to run")
	f.String(config.FlagName(config.KeyKey), "", "client key (prefer OROSU_KEY or INPUT_KEY)")
	f.String(config.FlagName(config.KeyArgs), "", "extra space-separated client arguments")
	f.Bool(config.FlagName(config.KeyVerifyChecksum), false, "verify the client against checksums.txt before running it")
	f.Bool(config.FlagName(config.KeyPTY), false, "run the client on a pseudo-terminal")
	f.BoolVar(&flags.dryRun, "dry-run", false, "print the redacted command without running it")

	rootCmd.AddCommand(newResolveCommand(app, flags))
	rootCmd.AddCommand(newConfigCommand(app, flags))

	return rootCmd
}

// Main runs the CLI against the real process environment and returns the
// exit code.
func Main() int {
	app := NewApp(Dependencies{})
	err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
	return int(exitCodeFor(err))
}

// Execute runs the CLI and exits the process. This is called by main.main().
func Execute() {
	os.Exit(Main())
}

// exitCodeFor maps a command error onto the process exit code.
func exitCodeFor(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return types.ExitFailure
}

// loadConfig resolves settings for cmd, letting the flags the user set win.
func (a *App) loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Loaded, error) {
	return a.Config.Load(cmd.Context(), config.LoadOptions{
		ConfigFilePath: flags.configPath,
		Flags:          cmd.Flags(),
	})
}
