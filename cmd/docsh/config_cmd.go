// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"docsh-cli/internal/config"

	"github.com/spf13/cobra"
)

// configCmd groups configuration inspection commands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect docsh configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, TitleStyle.Render("Effective configuration"))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "script_paths:      %s\n", formatList(cfg.ScriptPaths))
	fmt.Fprintf(out, "modes.interactive: %t\n", cfg.Modes.Interactive)
	fmt.Fprintf(out, "modes.verbose:     %t\n", cfg.Modes.Verbose)
	fmt.Fprintf(out, "modes.elevated:    %t\n", cfg.Modes.Elevated)
	fmt.Fprintf(out, "ui.color_scheme:   %s\n", cfg.UI.ColorScheme)
	fmt.Fprintf(out, "export.out_dir:    %s\n", cfg.Export.OutDir)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
