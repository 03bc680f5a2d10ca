// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/orosu/orosu-launcher/internal/actions"
	"github.com/orosu/orosu-launcher/internal/checksum"
	"github.com/orosu/orosu-launcher/internal/config"
	"github.com/orosu/orosu-launcher/internal/issue"
	"github.com/orosu/orosu-launcher/internal/launcher"
	"github.com/orosu/orosu-launcher/internal/logging"
	"github.com/orosu/orosu-launcher/pkg/platform"
	"github.com/orosu/orosu-launcher/pkg/types"

	"github.com/spf13/cobra"
)

// launch is the root command: resolve settings, pick the client build for
// this host and run it, relaying its exit code.
func (a *App) launch(cmd *cobra.Command, flags *rootFlags) error {
	ctx := cmd.Context()
	reporter := actions.NewReporter(a.stdout, a.getenv)

	loaded, err := a.loadConfig(cmd, flags)
	if err != nil {
		return a.fail(reporter, types.ExitUsage, newServiceError(err, issue.ConfigLoadFailedId), "", flags.verbose)
	}
	cfg := loaded.Config
	in := launcher.NewInputs(cfg.Address, cfg.Script, cfg.Key, cfg.Args)

	log, err := a.installLogger(cfg, flags.verbose)
	if err != nil {
		return a.fail(reporter, types.ExitUsage, newServiceError(err, 0), in.Key, flags.verbose)
	}
	if loaded.Path != "" {
		log.Debug("loaded configuration", "path", loaded.Path)
	}

	if err := in.Validate(); err != nil {
		ectx := issue.NewErrorContext().
			WithOperation("validate inputs").
			WithIssue(issue.MissingInputId)
		for _, sug := range missingInputSuggestions(err) {
			ectx.WithSuggestion(sug)
		}
		verr := ectx.Wrap(err).BuildError()
		return a.fail(reporter, types.ExitUsage, newServiceError(verr, issue.MissingInputId), in.Key, flags.verbose)
	}
	log.Debug("inputs resolved", "inputs", in)

	host := cfg.ResolveHost()
	if err := host.Validate(); err != nil {
		return a.fail(reporter, types.ExitUsage, newServiceError(err, issue.HostNotSupportedId), in.Key, flags.verbose)
	}

	artifact := platform.Resolve(host, cfg.BinDir)
	log.Info("Platform: " + host.String())
	log.Info("Binary path: " + launcher.Redact(artifact.Path, in.Key))

	opts := []launcher.Option{
		launcher.WithStdio(a.stdin, a.stdout, a.stderr),
		launcher.WithChmod(a.chmod),
		launcher.WithLogger(log),
		launcher.WithPTY(cfg.PTY),
		launcher.WithDryRun(flags.dryRun),
	}
	if cfg.VerifyChecksum {
		opts = append(opts, launcher.WithChecksumManifest(filepath.Join(cfg.BinDir, checksum.ManifestFileName)))
	}

	outcome := launcher.NewController(host, opts...).Run(ctx, artifact, in)
	warnIfTruncated(log, outcome.ExitCode)
	reporter.SetOutput(actions.OutputExitCode, outcome.ExitCode.String())

	if outcome.Err == nil {
		return nil
	}
	return a.fail(reporter, outcome.ExitCode, newServiceError(outcome.Err, classifyIssue(outcome.Err)), in.Key, flags.verbose)
}

// installLogger builds the run's logger on stderr and makes it the slog default.
func (a *App) installLogger(cfg *config.Config, verbose bool) (*slog.Logger, error) {
	level := cfg.Log.Level
	if verbose {
		level = config.LogLevelDebug
	}
	l, err := logging.New(a.stderr, level.String(), cfg.Log.Format.String())
	if err != nil {
		return nil, err
	}
	return logging.Install(l, logging.NewRunID()), nil
}

// fail reports svcErr to the user and the CI host, and turns it into an
// ExitError carrying code. Every message is scrubbed of key.
func (a *App) fail(reporter *actions.Reporter, code types.ExitCode, svcErr *ServiceError, key string, verbose bool) error {
	renderServiceError(a.stderr, svcErr, key, verbose)

	scrubbed := launcher.ScrubError(svcErr, key)
	reporter.SetFailed(scrubbed.Error())
	if code == types.ExitUsage {
		reporter.SetOutput(actions.OutputExitCode, code.String())
	}

	return &ExitError{Code: code, Err: scrubbed}
}

// missingInputSuggestions names the flag and environment variables that can
// supply each input reported missing in err.
func missingInputSuggestions(err error) []string {
	errs := []error{err}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		errs = joined.Unwrap()
	}

	var out []string
	for _, e := range errs {
		var missing *launcher.MissingInputError
		if !errors.As(e, &missing) {
			continue
		}
		sources := append([]string{"--" + config.FlagName(missing.Name)}, config.EnvNames(missing.Name)...)
		out = append(out, fmt.Sprintf("Set %s with %s", missing.Name, strings.Join(sources, ", ")))
	}
	return out
}

// warnIfTruncated logs when code does not fit the 0-255 range a POSIX parent
// process observes.
func warnIfTruncated(log *slog.Logger, code types.ExitCode) {
	if err := code.Validate(); err != nil {
		log.Warn("exit code will be truncated by the host", "error", err)
	}
}
