// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"

	"github.com/orosu/orosu-launcher/internal/checksum"
	"github.com/orosu/orosu-launcher/pkg/platform"
	"github.com/orosu/orosu-launcher/pkg/types"
)

// ExecutableMode is applied to the artifact on non-Windows hosts.
const ExecutableMode fs.FileMode = 0o755

type (
	// ChmodFunc changes the mode of the file at path. os.Chmod in production.
	ChmodFunc func(path string, mode fs.FileMode) error

	// Outcome is the terminal result of a run.
	Outcome struct {
		// ExitCode is the client's code when it ran, or a launcher code otherwise.
		ExitCode types.ExitCode
		// Stage is StageCompleted when the client ran, StageFailed otherwise.
		Stage Stage
		// Err is nil on success, a *ChildFailure, *PreparationError or *ExecutionError otherwise.
		Err error
	}

	// Controller prepares and runs the client artifact for one host.
	Controller struct {
		host        platform.Host
		chmod       ChmodFunc
		stdin       io.Reader
		stdout      io.Writer
		stderr      io.Writer
		diagnostics []io.Writer
		logger      *slog.Logger
		manifest    string
		usePTY      bool
		dryRun      bool
	}

	// Option configures a Controller during construction.
	Option func(*Controller)
)

// Success reports whether the client ran and exited 0.
func (o Outcome) Success() bool { return o.Err == nil && o.ExitCode.IsSuccess() }

// WithChmod overrides the permission setter.
func WithChmod(fn ChmodFunc) Option {
	return func(c *Controller) { c.chmod = fn }
}

// WithStdio sets the streams handed to the client.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(c *Controller) {
		c.stdin = stdin
		c.stdout = stdout
		c.stderr = stderr
	}
}

// WithDiagnostics sets the sinks the redacted "Executing:" line is written to.
func WithDiagnostics(ws ...io.Writer) Option {
	return func(c *Controller) { c.diagnostics = ws }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithChecksumManifest enables verification of the artifact against the
// sha256sum manifest at path.
func WithChecksumManifest(path string) Option {
	return func(c *Controller) { c.manifest = path }
}

// WithPTY runs the client attached to a pseudo-terminal (Unix only).
func WithPTY(enabled bool) Option {
	return func(c *Controller) { c.usePTY = enabled }
}

// WithDryRun stops after the diagnostic line without touching the artifact.
func WithDryRun(enabled bool) Option {
	return func(c *Controller) { c.dryRun = enabled }
}

// NewController creates a Controller for host. Without options the client
// inherits the launcher's stdio and diagnostics go to both stdout and stderr,
// so the line survives whichever stream the pipeline log captures.
func NewController(host platform.Host, opts ...Option) *Controller {
	c := &Controller{
		host:   host,
		chmod:  os.Chmod,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(c.diagnostics) == 0 {
		c.diagnostics = []io.Writer{c.stdout, c.stderr}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Run prepares the artifact, writes the redacted command line, runs the client
// and waits for it. There are no retries and no timeout; canceling ctx kills
// the client.
func (c *Controller) Run(ctx context.Context, artifact platform.Artifact, in Inputs) Outcome {
	log := c.logger.With("artifact", artifact.Filename)

	if c.dryRun {
		return c.dryRunOutcome(artifact, in)
	}

	// Preparing
	log.Debug("preparing client", "stage", StagePreparing, "path", artifact.Path)
	if err := c.prepare(artifact, in.Key); err != nil {
		return failed(err)
	}

	// Redacting
	log.Debug("writing diagnostic line", "stage", StageRedacting)
	if err := c.diagnose(DiagnosticLine(artifact.Path, in)); err != nil {
		log.Warn("failed to write diagnostic line", "error", err)
	}

	// Executing
	log.Info("running orosu-client")
	code, err := c.execute(ctx, artifact.Path, BuildArgs(in))
	if err != nil {
		return failed(newExecutionError(artifact.Path, err, in.Key))
	}

	// Completed
	log.Debug("client exited", "stage", StageCompleted, "exit_code", code)
	if !code.IsSuccess() {
		return Outcome{ExitCode: code, Stage: StageCompleted, Err: &ChildFailure{Code: code}}
	}
	return Outcome{ExitCode: types.ExitSuccess, Stage: StageCompleted}
}

// prepare sets the executable bit exactly once on non-Windows hosts and then
// checks the artifact against the manifest, if one is configured. A missing
// artifact is an ExecutionError: there is nothing that could be spawned.
func (c *Controller) prepare(artifact platform.Artifact, key string) error {
	if !c.host.IsWindows() {
		if err := c.chmod(artifact.Path, ExecutableMode); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return newExecutionError(artifact.Path, err, key)
			}
			return &PreparationError{Path: artifact.Path, Err: err}
		}
	}

	if c.manifest == "" {
		return nil
	}

	m, err := checksum.LoadManifest(c.manifest)
	if err != nil {
		return &PreparationError{Path: artifact.Path, Err: fmt.Errorf("loading checksum manifest: %w", err)}
	}
	if err := m.Verify(artifact.Path, artifact.Filename); err != nil {
		return &PreparationError{Path: artifact.Path, Err: err}
	}
	return nil
}

// execute spawns the client and returns its exit code. A non-nil error means
// the client never ran.
func (c *Controller) execute(ctx context.Context, path string, args []string) (types.ExitCode, error) {
	//nolint:gosec // G204: running the resolved client is the purpose of this package
	cmd := exec.CommandContext(ctx, path, args...)

	var err error
	if c.usePTY {
		err = runWithPTY(cmd, c.stdout)
	} else {
		cmd.Stdin = c.stdin
		cmd.Stdout = c.stdout
		cmd.Stderr = c.stderr
		err = cmd.Run()
	}

	if err == nil {
		return types.ExitSuccess, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitCodeFromState(exitErr.ProcessState), nil
	}
	return 0, err
}

// diagnose writes line to every diagnostics sink and reports the first failure.
func (c *Controller) diagnose(line string) error {
	var first error
	for _, w := range c.diagnostics {
		if _, err := fmt.Fprintln(w, line); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func failed(err error) Outcome {
	return Outcome{ExitCode: ExitCodeOf(err), Stage: StageFailed, Err: err}
}
