// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"docsh-cli/internal/issue"
	"docsh-cli/internal/render"
	"docsh-cli/internal/script"
	"docsh-cli/pkg/types"

	"github.com/spf13/cobra"
)

var exportOutDir string

// exportCmd writes a script's documentation blocks as standalone HTML.
var exportCmd = &cobra.Command{
	Use:   "export SCRIPT",
	Short: "Export a script's documentation as HTML",
	Long: `Export every documentation block of a script as a standalone HTML
file, one per block. The scan is strict: an unterminated block or a
duplicated block name fails the export instead of silently producing
broken pages.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", "", "output directory (default from config, 'docs')")
}

func runExport(cmd *cobra.Command, args []string) error {
	path, err := script.Resolve(args[0], cfg.ScriptPaths)
	if err != nil {
		renderIssue(issue.ScriptNotFoundId)
		return &ExitError{Code: types.ExitCodeNotFound, Err: err}
	}

	outDir := exportOutDir
	if outDir == "" {
		outDir = cfg.Export.OutDir
	}

	written, err := render.Export(path, outDir)
	if err != nil {
		return issue.WrapWithOperation(err, "export documentation")
	}

	for _, file := range written {
		fmt.Fprintln(cmd.OutOrStdout(), CmdStyle.Render(file))
	}
	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(fmt.Sprintf("exported %d block(s) to %s", len(written), outDir)))
	return nil
}
