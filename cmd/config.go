// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"
	"time"

	"recbrowse/cli/internal/config"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// configCmd shows the non-secret settings stored in the XDG config dir.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show recbrowse settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		credPath, err := cfg.ResolveCredentialsPath(credentialsFlag)
		if err != nil {
			return err
		}

		data := pterm.TableData{
			{"key", "value"},
			{"log_level", cfg.LogLevel},
			{"table", cfg.Table},
			{"fetch_timeout", cfg.FetchTimeout},
			{"credentials_path", cfg.CredentialsPath},
			{"(resolved credential file)", credPath},
		}
		out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// configSetCmd updates one setting.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting (log_level, table, fetch_timeout, credentials_path)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := setConfigValue(&cfg, args[0], args[1]); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s set to %q\n", args[0], args[1])
		return nil
	},
}

func setConfigValue(cfg *config.Config, key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "log_level":
		cfg.LogLevel = value
	case "table":
		cfg.Table = value
	case "fetch_timeout":
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("fetch_timeout must be a positive duration such as 30s, got %q", value)
		}
		cfg.FetchTimeout = d.String()
	case "credentials_path":
		cfg.CredentialsPath = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
