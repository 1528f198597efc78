// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for docsh.
//
// A shell script opts into docsh with a one-line bootstrap at the bottom of
// the file:
//
//	[ -n "${DOCSH_DISPATCH:-}" ] || exec docsh run "$0" "$@"
//
// The DOCSH_DISPATCH guard keeps the line inert while the dispatcher
// sources the script to load its function definitions.
//
// docsh then serves the script's embedded documentation (help mode) and
// dispatches its functions as commands (command mode).
package cmd
