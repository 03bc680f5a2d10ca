// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/orosu/orosu-launcher/internal/config"
	"github.com/orosu/orosu-launcher/internal/issue"
	"github.com/orosu/orosu-launcher/internal/launcher"
	"github.com/orosu/orosu-launcher/pkg/types"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by `config show --format`.
const (
	formatText = "text"
	formatCUE  = "cue"
	formatYAML = "yaml"
	formatTOML = "toml"
	formatJSON = "json"
)

// newConfigCommand creates the `orosu-launcher config` command tree.
func newConfigCommand(app *App, flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage orosu-launcher configuration",
		Long: `Manage orosu-launcher configuration.

Configuration is stored in:
  - Linux: ~/.config/orosu-launcher/config.cue
  - macOS: ~/Library/Application Support/orosu-launcher/config.cue
  - Windows: %APPDATA%\orosu-launcher\config.cue

A config.cue in the working directory is used when none exists there.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration with the key redacted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadForDisplay(cmd, app, flags)
			if err != nil {
				return err
			}
			return showConfig(app, loaded, format)
		},
	}
	showCmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, cue, yaml, toml, json)")
	cfgCmd.AddCommand(showCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the resolved configuration as CUE, key redacted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadForDisplay(cmd, app, flags)
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(masked(loaded.Config)))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, created, err := config.CreateDefaultConfig("")
			if err != nil {
				return fmt.Errorf("failed to create config: %w", err)
			}
			if !created {
				fmt.Fprintf(app.stdout, "Configuration already exists at %s\n", path)
				return nil
			}
			fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
			fmt.Fprintf(app.stdout, "Config file: %s\n", filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	})

	return cfgCmd
}

func loadForDisplay(cmd *cobra.Command, app *App, flags *rootFlags) (*config.Loaded, error) {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	loaded, err := app.loadConfig(cmd, flags)
	if err != nil {
		renderServiceError(app.stderr, newServiceError(err, issue.ConfigLoadFailedId), "", flags.verbose)
		return nil, &ExitError{Code: types.ExitUsage, Err: err}
	}
	return loaded, nil
}

// masked returns cfg with the key replaced by the redaction token and
// scrubbed from every other field.
func masked(cfg *config.Config) *config.Config {
	return cfg.Masked(launcher.RedactedToken, func(s string) string {
		return launcher.Redact(s, cfg.Key)
	})
}

func showConfig(app *App, loaded *config.Loaded, format string) error {
	cfg := masked(loaded.Config)

	switch format {
	case formatText:
		return showConfigText(app, loaded.Path, cfg)
	case formatCUE:
		fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(app.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case formatTOML:
		return toml.NewEncoder(app.stdout).Encode(cfg)
	case formatJSON:
		enc := json.NewEncoder(app.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	default:
		return &ExitError{
			Code: types.ExitUsage,
			Err:  fmt.Errorf("unknown format %q (valid: text, cue, yaml, toml, json)", format),
		}
	}
}

func showConfigText(app *App, path string, cfg *config.Config) error {
	out := app.stdout

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	if path != "" {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(out)

	value := func(s string) string {
		if s == "" {
			return SubtitleStyle.Render("(not set)")
		}
		return SuccessStyle.Render(s)
	}

	rows := []struct{ key, val string }{
		{config.KeyAddress, value(cfg.Address)},
		{config.KeyScript, value(cfg.Script)},
		{config.KeyKey, value(cfg.Key)},
		{config.KeyArgs, value(cfg.Args)},
		{config.KeyBinDir, value(cfg.BinDir)},
		{config.KeyVerifyChecksum, value(fmt.Sprint(cfg.VerifyChecksum))},
		{config.KeyPTY, value(fmt.Sprint(cfg.PTY))},
		{config.KeyLogLevel, value(cfg.Log.Level.String())},
		{config.KeyLogFormat, value(cfg.Log.Format.String())},
		{config.KeyHostOS, value(cfg.Host.OS)},
		{config.KeyHostArch, value(cfg.Host.Arch)},
	}
	for _, r := range rows {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render(r.key), r.val)
	}
	return nil
}
