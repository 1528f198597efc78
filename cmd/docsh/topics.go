// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"docsh-cli/internal/issue"
	"docsh-cli/internal/script"
	"docsh-cli/pkg/docblock"
	"docsh-cli/pkg/types"

	"github.com/spf13/cobra"
)

// topicsCmd prints the topic index for a script.
var topicsCmd = &cobra.Command{
	Use:   "topics SCRIPT",
	Short: "List a script's documented topics",
	Long: `List the documentation topics a script defines, one per line,
sorted, with duplicates collapsed. The block named after the script itself
is the whole-script description and is not a topic. A script with no topics
prints nothing and exits zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runTopics,
}

func runTopics(cmd *cobra.Command, args []string) error {
	path, err := script.Resolve(args[0], cfg.ScriptPaths)
	if err != nil {
		renderIssue(issue.ScriptNotFoundId)
		return &ExitError{Code: types.ExitCodeNotFound, Err: err}
	}

	topics, err := docblock.Topics(path)
	if err != nil {
		return issue.WrapWithOperation(err, "scan topics")
	}
	for _, topic := range topics {
		fmt.Fprintln(cmd.OutOrStdout(), topic)
	}
	return nil
}
