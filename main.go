// SPDX-License-Identifier: MPL-2.0

package main

import cmd "docsh-cli/cmd/docsh"

func main() {
	cmd.Execute()
}
