// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestLogLevel_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   LogLevel
		wantErr bool
	}{
		{LogLevelDebug, false},
		{LogLevelInfo, false},
		{LogLevelWarn, false},
		{LogLevelError, false},
		{"", true},
		{"INFO", true},
		{"trace", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			t.Parallel()
			err := tt.value.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("LogLevel(%q).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrInvalidLogLevel) {
				t.Error("error should wrap ErrInvalidLogLevel")
			}
			var typed *InvalidLogLevelError
			if !errors.As(err, &typed) || typed.Value != tt.value {
				t.Errorf("error should be *InvalidLogLevelError{%q}, got %v", tt.value, err)
			}
		})
	}
}

func TestLogFormat_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   LogFormat
		wantErr bool
	}{
		{LogFormatText, false},
		{LogFormatJSON, false},
		{LogFormatLogfmt, false},
		{"", true},
		{"xml", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			t.Parallel()
			err := tt.value.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("LogFormat(%q).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidLogFormat) {
				t.Error("error should wrap ErrInvalidLogFormat")
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := &Config{BinDir: "  ", Log: LogConfig{Level: "loud", Format: "xml"}}
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
	}
	var invalid *InvalidConfigError
	if !errors.As(err, &invalid) {
		t.Fatalf("error should be *InvalidConfigError, got %T", err)
	}
	if len(invalid.FieldErrors) != 3 {
		t.Errorf("len(FieldErrors) = %d, want 3", len(invalid.FieldErrors))
	}
	if !errors.Is(err, ErrInvalidLogLevel) || !errors.Is(err, ErrInvalidLogFormat) {
		t.Errorf("Validate() = %v, should match the field sentinels", err)
	}
}

func TestConfig_ResolveHost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		host HostConfig
		want string
	}{
		{name: "full override", host: HostConfig{OS: "darwin", Arch: "arm64"}, want: "darwin-arm64"},
		{name: "win32 alias", host: HostConfig{OS: "win32", Arch: "x64"}, want: "windows-amd64"},
		{name: "unknown arch falls back", host: HostConfig{OS: "linux", Arch: "riscv64"}, want: "linux-amd64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &Config{Host: tt.host}
			if got := cfg.ResolveHost().String(); got != tt.want {
				t.Errorf("ResolveHost() = %s, want %s", got, tt.want)
			}
		})
	}
}
