// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"docsh-cli/internal/issue"
	"docsh-cli/internal/runtime"
	"docsh-cli/internal/script"
	"docsh-cli/pkg/types"

	"github.com/spf13/cobra"
)

// helpKeyword is the first argument that forces help mode.
const helpKeyword = "help"

// runCmd is the dispatcher a script's bootstrap line calls.
var runCmd = &cobra.Command{
	Use:   "run SCRIPT [COMMAND [ARGS...]]",
	Short: "Dispatch a script invocation to its documentation or a function",
	Long: `Dispatch a script invocation.

With no further arguments, or with the keyword 'help', the script's embedded
documentation is rendered (optionally for a single topic). Any other first
argument is dispatched to the function of that name defined in the script,
with the remaining arguments forwarded; docsh exits with the function's own
exit status.

Examples:
  docsh run backup.sh                 Top-level documentation plus topics
  docsh run backup.sh help            Same as above
  docsh run backup.sh help remote     Only the 'remote' topic
  docsh run backup.sh sync ./data     Invoke the 'sync' function`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	// Everything after SCRIPT belongs to the script; stop flag parsing at
	// the first positional so dash-prefixed arguments pass through intact.
	runCmd.Flags().SetInterspersed(false)
}

func runRun(cmd *cobra.Command, args []string) error {
	modes := activeModes()

	path, err := script.Resolve(args[0], cfg.ScriptPaths)
	if err != nil {
		renderIssue(issue.ScriptNotFoundId)
		return &ExitError{Code: types.ExitCodeNotFound, Err: err}
	}

	if topic, isHelp := splitHelpRequest(args[1:]); isHelp {
		return showHelp(path, topic, modes)
	}

	reg, err := script.LoadRegistry(path)
	if err != nil {
		if errors.Is(err, script.ErrParse) {
			renderIssue(issue.ScriptParseErrorId)
		}
		return err
	}

	d := runtime.NewDispatcher(modes)
	code, err := d.Invoke(cmd.Context(), reg, args[1], args[2:])
	if err != nil {
		if errors.Is(err, script.ErrUnknownCommand) {
			renderIssue(issue.UnknownCommandId)
			return &ExitError{Code: code, Err: err}
		}
		return err
	}
	if !code.IsSuccess() {
		return &ExitError{Code: code}
	}
	return nil
}

// splitHelpRequest decides between help mode and command mode for the
// arguments following the script name. Empty args and the help keyword both
// select help mode; the keyword's optional second argument names a topic.
func splitHelpRequest(args []string) (types.TopicName, bool) {
	if len(args) == 0 {
		return "", true
	}
	if args[0] != helpKeyword {
		return "", false
	}
	if len(args) > 1 {
		return types.TopicName(args[1]), true
	}
	return "", true
}
