// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/orosu/orosu-launcher/internal/issue"
	"github.com/orosu/orosu-launcher/pkg/platform"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "orosu-launcher"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// ActionPathEnv is set by the CI host to the directory the action was checked out to.
	ActionPathEnv = "GITHUB_ACTION_PATH"

	binDirName = "bin"
)

// Configuration keys, as used in the CUE file and by Viper.
const (
	KeyAddress        = "address"
	KeyScript         = "script"
	KeyKey            = "key"
	KeyArgs           = "args"
	KeyBinDir         = "bin_dir"
	KeyVerifyChecksum = "verify_checksum"
	KeyPTY            = "pty"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyHostOS         = "host.os"
	KeyHostArch       = "host.arch"
)

//go:embed config_schema.cue
var configSchema string

var (
	// envBindings lists the environment variables for each key, in lookup order.
	// INPUT_* are the names the CI host uses for action inputs.
	envBindings = map[string][]string{
		KeyAddress:        {"OROSU_ADDRESS", "INPUT_ADDRESS"},
		KeyScript:         {"OROSU_SCRIPT", "INPUT_SCRIPT"},
		KeyKey:            {"OROSU_KEY", "INPUT_KEY"},
		KeyArgs:           {"OROSU_ARGS", "INPUT_ARGS"},
		KeyBinDir:         {"OROSU_BIN_DIR"},
		KeyVerifyChecksum: {"OROSU_VERIFY_CHECKSUM"},
		KeyPTY:            {"OROSU_PTY"},
		KeyLogLevel:       {"OROSU_LOG_LEVEL"},
		KeyLogFormat:      {"OROSU_LOG_FORMAT"},
		KeyHostOS:         {"OROSU_HOST_OS"},
		KeyHostArch:       {"OROSU_HOST_ARCH"},
	}

	// flagNames maps keys to the command-line flags that override them.
	flagNames = map[string]string{
		KeyAddress:        "address",
		KeyScript:         "script",
		KeyKey:            "key",
		KeyArgs:           "args",
		KeyBinDir:         "bin-dir",
		KeyVerifyChecksum: "verify-checksum",
		KeyPTY:            "pty",
		KeyLogLevel:       "log-level",
		KeyLogFormat:      "log-format",
		KeyHostOS:         "os",
		KeyHostArch:       "arch",
	}
)

// FlagName returns the command-line flag bound to key, or "" if none is.
func FlagName(key string) string { return flagNames[key] }

// EnvNames returns the environment variables consulted for key.
func EnvNames(key string) []string { return envBindings[key] }

// ConfigDir returns the orosu-launcher configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// DefaultBinDir returns where the bundled client builds live: bin/ under the
// action checkout when running as a CI action, otherwise bin/ next to the
// launcher executable.
func DefaultBinDir() string {
	if actionPath := os.Getenv(ActionPathEnv); actionPath != "" {
		return filepath.Join(actionPath, binDirName)
	}

	exe, err := os.Executable()
	if err != nil {
		return binDirName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), binDirName)
}

// loadWithOptions layers defaults, the CUE file, environment and flags into
// a fresh Viper instance and decodes the result.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault(KeyAddress, defaults.Address)
	v.SetDefault(KeyScript, defaults.Script)
	v.SetDefault(KeyKey, defaults.Key)
	v.SetDefault(KeyArgs, defaults.Args)
	v.SetDefault(KeyBinDir, defaults.BinDir)
	v.SetDefault(KeyVerifyChecksum, defaults.VerifyChecksum)
	v.SetDefault(KeyPTY, defaults.PTY)
	v.SetDefault(KeyLogLevel, defaults.Log.Level)
	v.SetDefault(KeyLogFormat, defaults.Log.Format)
	v.SetDefault(KeyHostOS, defaults.Host.OS)
	v.SetDefault(KeyHostArch, defaults.Host.Arch)

	resolvedPath, err := resolveConfigFile(opts)
	if err != nil {
		return nil, "", err
	}
	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("Use 'orosu-launcher config dump' to see a valid configuration").
				Wrap(err).
				BuildError()
		}
	}

	for key, names := range envBindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, "", fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	if opts.Flags != nil {
		for key, name := range flagNames {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, "", fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Valid log levels are debug, info, warn and error").
			WithSuggestion("Valid log formats are text, json and logfmt").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// resolveConfigFile picks the CUE file to load. An explicit path must exist;
// the default locations are optional and "" means none was found.
func resolveConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				WithSuggestion("Use 'orosu-launcher config init' to create a default configuration").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
	if err != nil {
		return "", err
	}

	cuePath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if fileExists(cuePath) {
		return cuePath, nil
	}

	// Also check current directory
	localCuePath := ConfigFileName + "." + ConfigFileExt
	if fileExists(localCuePath) {
		return localCuePath, nil
	}

	return "", nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes a default config file to dir (ConfigDir when
// empty) unless one already exists. It reports the path and whether it wrote it.
func CreateDefaultConfig(dir string) (string, bool, error) {
	cfgDir, err := configDirWithOverride(dir)
	if err != nil {
		return "", false, err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)

	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath, false, nil
	}

	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(DefaultConfig())), 0o600); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfgPath, true, nil
}

// GenerateCUE generates a CUE representation of the configuration. Empty
// string fields are omitted because the schema rejects empty values.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// orosu-launcher configuration file\n")
	sb.WriteString("// Inputs can also come from OROSU_* or INPUT_* environment variables.\n\n")

	writeString := func(indent, key, value string) {
		if value != "" {
			fmt.Fprintf(&sb, "%s%s: %q\n", indent, key, value)
		}
	}

	writeString("", KeyAddress, cfg.Address)
	writeString("", KeyScript, cfg.Script)
	writeString("", KeyKey, cfg.Key)
	writeString("", KeyArgs, cfg.Args)
	writeString("", KeyBinDir, cfg.BinDir)
	fmt.Fprintf(&sb, "%s: %v\n", KeyVerifyChecksum, cfg.VerifyChecksum)
	fmt.Fprintf(&sb, "%s: %v\n", KeyPTY, cfg.PTY)

	sb.WriteString("\nlog: {\n")
	writeString("\t", "level", string(cfg.Log.Level))
	writeString("\t", "format", string(cfg.Log.Format))
	sb.WriteString("}\n")

	if cfg.Host.OS != "" || cfg.Host.Arch != "" {
		sb.WriteString("\nhost: {\n")
		writeString("\t", "os", cfg.Host.OS)
		writeString("\t", "arch", cfg.Host.Arch)
		sb.WriteString("}\n")
	}

	return sb.String()
}
