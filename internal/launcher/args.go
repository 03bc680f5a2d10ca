// SPDX-License-Identifier: MPL-2.0

package launcher

import "strings"

// Client flag names, emitted in this order.
const (
	flagAddress = "--address"
	flagScript  = "--script"
	flagKey     = "--key"

	// keyArgIndex is the position of the key value in the vector built by BuildArgs.
	keyArgIndex = 5
)

// BuildArgs returns the client argument vector:
//
//	--address <address> --script <script> --key <key> [extra tokens...]
//
// The extra tokens always come last, in their original order.
func BuildArgs(in Inputs) []string {
	extra := SplitExtraArgs(in.Args)

	args := make([]string, 0, 6+len(extra))
	args = append(args,
		flagAddress, in.Address,
		flagScript, in.Script,
		flagKey, in.Key,
	)
	return append(args, extra...)
}

// SplitExtraArgs splits raw on single spaces and drops empty tokens. There is
// no quoting: a token can never contain a space. Tabs and other whitespace are
// kept inside tokens.
func SplitExtraArgs(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, " ")
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
