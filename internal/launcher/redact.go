// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"fmt"
	"strings"
)

// RedactedToken replaces the key in every diagnostic the launcher writes.
const RedactedToken = "[REDACTED]"

// DiagnosticLine mirrors the client command line for the pipeline log:
//
//	Executing: <path> --address <address> --script <script> --key [REDACTED] <args>
//
// The key slot always holds RedactedToken. Should the key also appear inside
// another field (a path, an extra argument), that occurrence is scrubbed too.
// The trailing args segment is omitted when there are no extra arguments.
//
// Only the input values are scrubbed. A key that is a substring of the fixed
// template ("Executing:", the flag names or RedactedToken) still appears
// there, though never in a position derived from the key.
func DiagnosticLine(path string, in Inputs) string {
	scrub := func(s string) string { return Redact(s, in.Key) }

	line := fmt.Sprintf("Executing: %s %s %s %s %s %s %s",
		scrub(path), flagAddress, scrub(in.Address), flagScript, scrub(in.Script), flagKey, RedactedToken)
	if in.Args != "" {
		line += " " + scrub(in.Args)
	}
	return line
}

// Redact replaces every occurrence of secret in s with RedactedToken.
// A secret that is itself part of RedactedToken is deleted instead, since
// substituting the token would reintroduce it. An empty secret leaves s
// untouched.
func Redact(s, secret string) string {
	if secret == "" {
		return s
	}
	mask := RedactedToken
	if strings.Contains(mask, secret) {
		mask = ""
	}
	// A replacement can form a new match across the mask boundary. Bound the
	// substitution passes, then delete whatever is left: deletion always
	// shrinks s, so the second loop terminates.
	for range len(s) + 1 {
		if !strings.Contains(s, secret) {
			break
		}
		s = strings.ReplaceAll(s, secret, mask)
	}
	for strings.Contains(s, secret) {
		s = strings.ReplaceAll(s, secret, "")
	}
	return s
}

// scrubbedError hides a secret from an error's text while keeping its chain
// intact for errors.Is and errors.As.
type scrubbedError struct {
	err error
	msg string
}

func (e *scrubbedError) Error() string { return e.msg }

func (e *scrubbedError) Unwrap() error { return e.err }

// ScrubError returns err with secret removed from its message. The wrapped
// chain is unchanged, so callers that print inner errors must scrub those too.
func ScrubError(err error, secret string) error {
	if err == nil || secret == "" {
		return err
	}
	return &scrubbedError{err: err, msg: Redact(err.Error(), secret)}
}
