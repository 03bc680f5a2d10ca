// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticLine(t *testing.T) {
	t.Parallel()

	in := NewInputs("10.0.0.1", "build.sh", "secret123", "--verbose --retries 2")
	got := DiagnosticLine("/opt/action/bin/orosu-client-linux-amd64", in)

	assert.Equal(t,
		"Executing: /opt/action/bin/orosu-client-linux-amd64 --address 10.0.0.1 --script build.sh --key [REDACTED] --verbose --retries 2",
		got)
	assert.NotContains(t, got, "secret123")
}

func TestDiagnosticLine_NoArgs(t *testing.T) {
	t.Parallel()

	got := DiagnosticLine("/bin/client", Inputs{Address: "host:9000", Script: "deploy", Key: "k3y"})
	assert.Equal(t, "Executing: /bin/client --address host:9000 --script deploy --key [REDACTED]", got)
}

func TestDiagnosticLine_ScrubsKeyFromOtherFields(t *testing.T) {
	t.Parallel()

	in := Inputs{
		Address: "https://hunter2@example.com",
		Script:  "hunter2.sh",
		Key:     "hunter2",
		Args:    "--token hunter2",
	}
	got := DiagnosticLine("/tmp/hunter2/client", in)

	assert.NotContains(t, got, "hunter2")
	assert.Contains(t, got, "--key [REDACTED]")
	assert.Equal(t, 5, strings.Count(got, RedactedToken))
}

func TestDiagnosticLine_KeyInsideToken(t *testing.T) {
	t.Parallel()

	// A key that is part of the token itself must not mangle the key slot.
	got := DiagnosticLine("/bin/client", Inputs{Address: "RED-host", Script: "s", Key: "RED"})
	assert.Contains(t, got, "--key [REDACTED]")
	assert.Contains(t, got, "--address -host")
}

func TestDiagnosticLine_KeyInsideTemplate(t *testing.T) {
	t.Parallel()

	// The template text is fixed; only the input values are scrubbed.
	got := DiagnosticLine("/bin/c", Inputs{Address: "seed", Script: "s", Key: "e", Args: "--ex"})
	assert.Equal(t, "Executing: /bin/c --address s[REDACTED][REDACTED]d --script s --key [REDACTED] --[REDACTED]x", got)
}

func TestRedact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		s      string
		secret string
		want   string
	}{
		{name: "empty secret", s: "abc", secret: "", want: "abc"},
		{name: "absent", s: "abc", secret: "xyz", want: "abc"},
		{name: "single", s: "key=xyz", secret: "xyz", want: "key=[REDACTED]"},
		{name: "multiple", s: "xyz xyz", secret: "xyz", want: "[REDACTED] [REDACTED]"},
		{name: "secret inside token is deleted", s: "ACTED!", secret: "ACTED", want: "!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Redact(tt.s, tt.secret))
		})
	}
}

func FuzzDiagnosticLine(f *testing.F) {
	f.Add("10.0.0.1", "build.sh", "secret123", "--verbose --retries 2")
	f.Add("host", "s", "k", "")
	f.Add("secretsecret", "x", "secret", "secret")

	f.Fuzz(func(t *testing.T, address, script, key, args string) {
		if key == "" || strings.ContainsAny(key, " ") {
			return
		}
		// Keys that occur in the fixed template text cannot be hidden from it.
		const template = "Executing: --address --script --key " + RedactedToken
		if strings.Contains(template, key) {
			return
		}

		line := DiagnosticLine("/bin/orosu-client-linux-amd64", Inputs{Address: address, Script: script, Key: key, Args: args})
		if strings.Contains(line, key) {
			t.Errorf("diagnostic line %q leaks key %q", line, key)
		}
		if !strings.Contains(line, "--key "+RedactedToken) {
			t.Errorf("diagnostic line %q has no redacted key slot", line)
		}
	})
}

func TestRedact_MatchesAcrossMasks(t *testing.T) {
	t.Parallel()

	for _, secret := range []string{"][", "D][R", "]x"} {
		got := Redact("][][ ]x]xx D][R", secret)
		assert.NotContains(t, got, secret)
	}
}

func TestScrubError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ScrubError(nil, "k"))

	inner := &ExecutionError{Path: "/bin/c", Err: errors.New("boom"), msg: "boom"}
	wrapped := fmt.Errorf("run with key hunter2: %w", inner)
	err := ScrubError(wrapped, "hunter2")

	assert.Equal(t, "run with key [REDACTED]: failed to execute /bin/c: boom", err.Error())
	assert.ErrorIs(t, err, ErrExecution)
	var execErr *ExecutionError
	assert.ErrorAs(t, err, &execErr)
	assert.Same(t, wrapped, ScrubError(wrapped, ""))
}
