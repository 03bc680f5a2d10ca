// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for orosu-launcher.
//
// The root command performs a launch: it resolves settings, picks the
// orosu-client build for the host, and runs it with the resolved inputs,
// exiting with the client's own exit code. Subcommands inspect the resolved
// artifact (resolve) and manage the CUE config file (config).
package cmd
