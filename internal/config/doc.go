// SPDX-License-Identifier: MPL-2.0

// Package config resolves the launcher's settings using Viper with CUE as the
// file format.
//
// Values are layered, lowest to highest precedence: built-in defaults, a CUE
// config file (--config, <config dir>/orosu-launcher/config.cue or
// ./config.cue), environment variables (OROSU_* and the CI host's INPUT_*
// action inputs) and finally command-line flags.
//
// Config files are validated against an embedded CUE schema
// (config_schema.cue) before their values are merged, so type errors surface
// with the offending CUE path.
package config
