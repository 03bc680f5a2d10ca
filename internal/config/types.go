// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/orosu/orosu-launcher/pkg/platform"
)

const (
	// LogLevelDebug logs every stage transition.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs the resolved platform and binary path.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs only problems.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs only failures.
	LogLevelError LogLevel = "error"

	// LogFormatText is the human-readable styled format.
	LogFormatText LogFormat = "text"
	// LogFormatJSON emits one JSON object per record.
	LogFormatJSON LogFormat = "json"
	// LogFormatLogfmt emits key=value records.
	LogFormatLogfmt LogFormat = "logfmt"
)

var (
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat is returned when a LogFormat value is not recognized.
	ErrInvalidLogFormat = errors.New("invalid log format")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// LogLevel is the minimum severity written by the launcher's logger.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// LogFormat selects the log record encoding.
	LogFormat string

	// InvalidLogFormatError is returned when a LogFormat value is not recognized.
	// It wraps ErrInvalidLogFormat for errors.Is() compatibility.
	InvalidLogFormatError struct {
		Value LogFormat
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the resolved launcher settings.
	Config struct {
		// Address is the orosu server address passed to the client.
		Address string `json:"address" yaml:"address" toml:"address" mapstructure:"address"`
		// Script is the script name passed to the client.
		Script string `json:"script" yaml:"script" toml:"script" mapstructure:"script"`
		// Key is the authentication credential. Never print it; use Masked.
		Key string `json:"key" yaml:"key" toml:"key" mapstructure:"key"`
		// Args holds extra space-separated client arguments.
		Args string `json:"args" yaml:"args" toml:"args" mapstructure:"args"`
		// BinDir is the directory holding the bundled client builds.
		BinDir string `json:"bin_dir" yaml:"bin_dir" toml:"bin_dir" mapstructure:"bin_dir"`
		// VerifyChecksum checks the client against <bin_dir>/checksums.txt before running it.
		VerifyChecksum bool `json:"verify_checksum" yaml:"verify_checksum" toml:"verify_checksum" mapstructure:"verify_checksum"`
		// PTY runs the client on a pseudo-terminal.
		PTY bool `json:"pty" yaml:"pty" toml:"pty" mapstructure:"pty"`
		// Log configures the launcher's own logging.
		Log LogConfig `json:"log" yaml:"log" toml:"log" mapstructure:"log"`
		// Host overrides the detected platform. Empty fields use the runtime values.
		Host HostConfig `json:"host" yaml:"host" toml:"host" mapstructure:"host"`
	}

	// LogConfig configures logging.
	LogConfig struct {
		Level  LogLevel  `json:"level" yaml:"level" toml:"level" mapstructure:"level"`
		Format LogFormat `json:"format" yaml:"format" toml:"format" mapstructure:"format"`
	}

	// HostConfig overrides host detection.
	HostConfig struct {
		OS   string `json:"os" yaml:"os" toml:"os" mapstructure:"os"`
		Arch string `json:"arch" yaml:"arch" toml:"arch" mapstructure:"arch"`
	}
)

// Error implements the error interface.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel so callers can use errors.Is for programmatic detection.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// Validate returns nil if the LogLevel is one of the defined levels.
func (l LogLevel) Validate() error {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return &InvalidLogLevelError{Value: l}
	}
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// Error implements the error interface.
func (e *InvalidLogFormatError) Error() string {
	return fmt.Sprintf("invalid log format %q (valid: text, json, logfmt)", e.Value)
}

// Unwrap returns ErrInvalidLogFormat so callers can use errors.Is for programmatic detection.
func (e *InvalidLogFormatError) Unwrap() error { return ErrInvalidLogFormat }

// Validate returns nil if the LogFormat is one of the defined formats.
func (f LogFormat) Validate() error {
	switch f {
	case LogFormatText, LogFormatJSON, LogFormatLogfmt:
		return nil
	default:
		return &InvalidLogFormatError{Value: f}
	}
}

// String returns the string representation of the LogFormat.
func (f LogFormat) String() string { return string(f) }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig and every field error, so errors.Is matches
// both the config sentinel and the specific field sentinels.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// DefaultConfig returns the default configuration. Inputs have no default.
func DefaultConfig() *Config {
	return &Config{
		BinDir: DefaultBinDir(),
		Log: LogConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
	}
}

// Validate checks the settings that the CUE schema cannot see because they
// came from the environment or flags. Missing inputs are not reported here.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Log.Level.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Log.Format.Validate(); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(c.BinDir) == "" {
		errs = append(errs, errors.New("bin_dir must not be empty"))
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// ResolveHost returns the detected host with any configured overrides applied.
func (c *Config) ResolveHost() platform.Host {
	h := platform.CurrentHost()
	goos, arch := h.OS, h.Arch
	if c.Host.OS != "" {
		goos = c.Host.OS
	}
	if c.Host.Arch != "" {
		arch = c.Host.Arch
	}
	return platform.NewHost(goos, arch)
}

// Masked returns a copy of c safe to print: a non-empty key becomes mask and
// scrub is applied to every other free-text field.
func (c *Config) Masked(mask string, scrub func(string) string) *Config {
	out := *c
	if out.Key == "" {
		return &out
	}
	out.Key = mask
	out.Address = scrub(out.Address)
	out.Script = scrub(out.Script)
	out.Args = scrub(out.Args)
	out.BinDir = scrub(out.BinDir)
	return &out
}
