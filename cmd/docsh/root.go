// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"docsh-cli/internal/config"
	"docsh-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output and shows gated command output
	verbose bool
	// interactive enables the scrollable pager for help output
	interactive bool
	// elevated runs gated host commands with a privilege-elevation prefix
	elevated bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration; defaults apply when loading fails.
	cfg config.Config = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "docsh",
		Short: "Embedded documentation and dispatch for shell scripts",
		Long: TitleStyle.Render("docsh") + SubtitleStyle.Render(" - embedded documentation and dispatch for shell scripts") + `

docsh turns comment blocks delimited by <doc:NAME> sentinels into a help
surface for any shell script, and dispatches the script's functions as
commands. A script opts in with a single bootstrap line:

  [ -n "${DOCSH_DISPATCH:-}" ] || exec docsh run "$0" "$@"

` + SubtitleStyle.Render("Examples:") + `
  docsh run backup.sh               Show the script's documentation
  docsh run backup.sh help remote   Show one topic
  docsh run backup.sh sync ./data   Dispatch the 'sync' function
  docsh exec -v make test           Run a host command, output gated by -v
  docsh topics backup.sh            List documented topics
  docsh export backup.sh            Export documentation as HTML`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&interactive, "interactive", "i", false, "page help output in an interactive viewport")
	rootCmd.PersistentFlags().BoolVarP(&elevated, "elevated", "E", false, "run gated host commands with privilege elevation")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/docsh/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(docCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in the config file and environment overrides.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		// Always surface config loading errors to the user; defaults apply.
		renderIssue(issue.ConfigLoadFailedId)
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}
	cfg = *loaded

	// Flags win over config; apply config values only where flags are unset.
	if !verbose {
		verbose = cfg.Modes.Verbose
	}
	if !interactive {
		interactive = cfg.Modes.Interactive
	}
	if !elevated {
		elevated = cfg.Modes.Elevated
	}
}

// activeModes returns the effective mode flags for this invocation. The
// returned value is passed explicitly into every consumer; no code below
// the CLI layer reads these settings from globals.
func activeModes() config.Modes {
	return config.Modes{
		Interactive: interactive,
		Verbose:     verbose,
		Elevated:    elevated,
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// renderIssue writes a known issue card to stderr, falling back to the raw
// Markdown when rendering fails (e.g., no terminal).
func renderIssue(id issue.Id) {
	card := issue.Get(id)
	if card == nil {
		return
	}
	text, err := card.Render("auto")
	if err != nil {
		text = string(card.MarkdownMsg())
	}
	fmt.Fprintln(os.Stderr, text)
}
