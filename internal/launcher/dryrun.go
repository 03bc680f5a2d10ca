// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"strconv"
	"strings"

	"github.com/orosu/orosu-launcher/pkg/platform"

	"mvdan.cc/sh/v3/syntax"
)

// dryRunOutcome prints what would run without modifying or spawning anything.
func (c *Controller) dryRunOutcome(artifact platform.Artifact, in Inputs) Outcome {
	_ = c.diagnose(DiagnosticLine(artifact.Path, in))
	_ = c.diagnose("Dry run: " + QuotedCommand(artifact.Path, in))
	c.logger.Info("dry run, client not executed", "stage", StageRedacting)
	return Outcome{ExitCode: 0, Stage: StageRedacting}
}

// QuotedCommand renders the client invocation as a Bash command line that can
// be pasted into a shell, with the key replaced by RedactedToken. Flag names
// are emitted verbatim; the key is scrubbed from every other word.
func QuotedCommand(path string, in Inputs) string {
	scrub := func(s string) string { return Redact(s, in.Key) }

	words := []string{
		scrub(path),
		flagAddress, scrub(in.Address),
		flagScript, scrub(in.Script),
		flagKey, RedactedToken,
	}
	for _, tok := range BuildArgs(in)[keyArgIndex+1:] {
		words = append(words, scrub(tok))
	}

	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = quoteWord(w)
	}
	return strings.Join(quoted, " ")
}

// quoteWord quotes w for Bash, leaving it as-is when no quoting is needed.
func quoteWord(w string) string {
	q, err := syntax.Quote(w, syntax.LangBash)
	if err != nil {
		// Words Bash cannot represent (e.g. containing NUL) fall back to Go quoting.
		return strconv.Quote(w)
	}
	return q
}
