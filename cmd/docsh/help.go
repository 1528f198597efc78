// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"docsh-cli/internal/config"
	"docsh-cli/internal/issue"
	"docsh-cli/internal/render"
	"docsh-cli/internal/tui"
	"docsh-cli/pkg/types"
)

// helpText produces the documentation text for a resolved script. Plain
// (unstyled) text is produced unless the modes ask for interactive display
// on a real terminal.
func helpText(path string, topic types.TopicName, modes config.Modes) (string, error) {
	r := &render.Renderer{
		ColorScheme: cfg.UI.ColorScheme,
		Plain:       !modes.Interactive || !stdoutIsTerminal(),
	}
	return r.Help(path, topic)
}

// showHelp renders and displays a script's documentation. A missing
// top-level block is not an error: a hint card is shown and the exit status
// stays zero, matching "no documentation available".
func showHelp(path string, topic types.TopicName, modes config.Modes) error {
	text, err := helpText(path, topic, modes)
	if err != nil {
		return issue.WrapWithOperation(err, "render documentation")
	}

	if text == "" {
		if topic == "" {
			renderIssue(issue.NoDocumentationId)
		}
		return nil
	}

	if modes.Interactive && stdoutIsTerminal() {
		return tui.Pager(tui.PagerOptions{
			Title:   filepath.Base(path),
			Content: text,
		})
	}

	fmt.Fprint(os.Stdout, text)
	return nil
}

// stdoutIsTerminal reports whether stdout is attached to a terminal.
func stdoutIsTerminal() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
