// SPDX-License-Identifier: MPL-2.0

// Package actions reports the launcher's outcome back to the CI host using
// workflow commands and the step output file. Outside a CI runner every call
// is a no-op.
package actions
