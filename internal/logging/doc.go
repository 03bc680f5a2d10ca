// SPDX-License-Identifier: MPL-2.0

// Package logging builds the launcher's charmbracelet/log logger and installs
// it as the log/slog default, tagged with a per-run correlation id.
package logging
