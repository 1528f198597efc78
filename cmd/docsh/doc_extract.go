// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"docsh-cli/pkg/docblock"
	"docsh-cli/pkg/types"

	"github.com/spf13/cobra"
)

// docCmd extracts raw documentation block bodies.
var docCmd = &cobra.Command{
	Use:   "doc NAME [FILE...]",
	Short: "Extract a raw documentation block",
	Long: `Extract the body of the documentation block named NAME.

Every matching block across the given files is printed, comment prefix
stripped, in file-then-source order. With no files, stdin is scanned.
A name that matches nothing prints nothing and exits zero.

Examples:
  docsh doc backup deploy.sh
  cat deploy.sh | docsh doc backup`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDoc,
}

func runDoc(cmd *cobra.Command, args []string) error {
	name := types.TopicName(args[0])
	if ok, errs := name.IsValid(); !ok {
		return errs[0]
	}

	var (
		body []string
		err  error
	)
	if len(args) > 1 {
		body, err = docblock.Extract(name, args[1:]...)
	} else {
		body, err = docblock.ExtractReader(name, os.Stdin)
	}
	if err != nil {
		return err
	}

	if len(body) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(body, "\n"))
	}
	return nil
}
