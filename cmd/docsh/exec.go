// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"docsh-cli/internal/issue"
	"docsh-cli/internal/runtime"

	"github.com/spf13/cobra"
)

// execCmd runs a host command through the gated executor.
var execCmd = &cobra.Command{
	Use:   "exec CMD [ARGS...]",
	Short: "Run a host command gated by the mode flags",
	Long: `Run a host command through the gated executor. Output is shown only
in verbose mode; in elevated mode the command runs under a
privilege-elevation prefix. docsh exits with the command's own exit status.

Examples:
  docsh exec -v make test
  docsh exec -E -v systemctl restart nginx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	// Everything after CMD belongs to the host command; stop flag parsing at
	// the first positional so dash-prefixed arguments pass through intact.
	execCmd.Flags().SetInterspersed(false)
}

func runExec(cmd *cobra.Command, args []string) error {
	d := runtime.NewDispatcher(activeModes())
	code, err := d.RunHost(cmd.Context(), args[0], args[1:]...)
	if err != nil {
		return issue.WrapWithOperation(err, "run host command")
	}
	if !code.IsSuccess() {
		return &ExitError{Code: code}
	}
	return nil
}
