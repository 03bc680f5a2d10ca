// SPDX-License-Identifier: MPL-2.0

package actions

import (
	"io"
	"os"

	"github.com/sethvargo/go-githubactions"
)

const (
	// EnvActions is "true" when running inside a CI runner.
	EnvActions = "GITHUB_ACTIONS"
	// EnvOutput names the file step outputs are appended to.
	EnvOutput = "GITHUB_OUTPUT"

	// OutputExitCode is the step output carrying the final exit code.
	OutputExitCode = "exit-code"
)

// Reporter writes workflow commands for the CI host.
type Reporter struct {
	action  *githubactions.Action
	getenv  func(string) string
	enabled bool
}

// NewReporter returns a Reporter writing commands to w. getenv is os.Getenv
// in production; nil means os.Getenv.
func NewReporter(w io.Writer, getenv func(string) string) *Reporter {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &Reporter{
		action: githubactions.New(
			githubactions.WithWriter(w),
			githubactions.WithGetenv(getenv),
		),
		getenv:  getenv,
		enabled: getenv(EnvActions) == "true",
	}
}

// Enabled reports whether the launcher runs on a CI runner.
func (r *Reporter) Enabled() bool { return r.enabled }

// SetFailed emits an error annotation. The message is escaped so that it
// stays on one command line.
func (r *Reporter) SetFailed(msg string) {
	if !r.enabled {
		return
	}
	r.action.Errorf("%s", msg)
}

// SetOutput records a step output. It does nothing when the runner provides
// no output file.
func (r *Reporter) SetOutput(name, value string) {
	if !r.enabled || r.getenv(EnvOutput) == "" {
		return
	}
	r.action.SetOutput(name, value)
}
