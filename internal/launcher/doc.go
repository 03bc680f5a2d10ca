// SPDX-License-Identifier: MPL-2.0

// Package launcher runs the resolved orosu-client artifact on behalf of a CI
// pipeline.
//
// A Controller moves through four stages, Preparing, Redacting, Executing and
// Completed, with any failure ending the run in StageFailed:
//
//   - Preparing: set the executable bit (skipped on Windows hosts) and,
//     when a manifest is configured, verify the artifact checksum.
//   - Redacting: write the "Executing: ..." diagnostic line with the key
//     replaced by [REDACTED].
//   - Executing: spawn the client with --address/--script/--key and the
//     extra argument tokens, forwarding its stdout and stderr untouched.
//   - Completed: relay the client's exit code verbatim.
//
// Failures are typed: *PreparationError and *ExecutionError for runs that
// never reached the client, *ChildFailure for a client that exited non-zero.
// ExitCodeOf maps any of them onto the process exit code.
//
// The key is never written to a log line, error message or diagnostic.
// Inputs formats itself with the key redacted, and DiagnosticLine scrubs the
// key from every other field.
package launcher
