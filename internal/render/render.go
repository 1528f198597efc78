// SPDX-License-Identifier: MPL-2.0

// Package render assembles the help text shown for a script: one topic's
// documentation block, or the script's top-level block followed by the
// available-topics listing. Block bodies are treated as Markdown.
package render

import (
	"path/filepath"
	"strings"

	"docsh-cli/internal/config"
	"docsh-cli/pkg/docblock"
	"docsh-cli/pkg/types"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// topicIndent prefixes each topic name in the listing.
const topicIndent = "  "

var (
	topicsHeaderStyle = lipgloss.NewStyle().Bold(true)
	topicNameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
)

// Renderer produces display text for documentation blocks.
type Renderer struct {
	// ColorScheme selects the glamour style; auto probes the terminal.
	ColorScheme config.ColorScheme
	// Width is the word wrap width (0 for glamour's default).
	Width int
	// Plain bypasses glamour and lipgloss entirely, for non-TTY output.
	Plain bool
}

// Help renders the documentation for the script at path.
//
// With a topic, only that topic's block is rendered; an absent topic yields
// empty output, not an error. Without a topic, the script's own block (named
// after its base name, extension-stripped form preferred) is rendered,
// followed by the available-topics listing when any topics exist.
func (r *Renderer) Help(path string, topic types.TopicName) (string, error) {
	if topic != "" {
		body, err := docblock.Extract(topic, path)
		if err != nil {
			return "", err
		}
		return r.renderBody(body)
	}

	body, err := docblock.Extract(docblock.ScriptName(path), path)
	if err != nil {
		return "", err
	}
	if len(body) == 0 {
		// Fall back to the unstripped base name (e.g., a block named
		// "tool.sh" rather than "tool").
		body, err = docblock.Extract(types.TopicName(filepath.Base(path)), path)
		if err != nil {
			return "", err
		}
	}

	text, err := r.renderBody(body)
	if err != nil {
		return "", err
	}

	topics, err := docblock.Topics(path)
	if err != nil {
		return "", err
	}
	if len(topics) > 0 {
		text += r.renderTopics(topics)
	}

	return text, nil
}

// renderBody renders block body lines as Markdown, or returns them verbatim
// in plain mode. An empty body renders to "".
func (r *Renderer) renderBody(body []string) (string, error) {
	if len(body) == 0 {
		return "", nil
	}
	text := strings.Join(body, "\n")

	if r.Plain {
		return text + "\n", nil
	}

	opts := []glamour.TermRendererOption{r.styleOption()}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(text)
}

// renderTopics formats the available-topics listing.
func (r *Renderer) renderTopics(topics []types.TopicName) string {
	var sb strings.Builder

	header := "Available topics:"
	if !r.Plain {
		header = topicsHeaderStyle.Render(header)
	}
	sb.WriteString("\n")
	sb.WriteString(header)
	sb.WriteString("\n\n")

	for _, topic := range topics {
		name := topic.String()
		if !r.Plain {
			name = topicNameStyle.Render(name)
		}
		sb.WriteString(topicIndent)
		sb.WriteString(name)
		sb.WriteString("\n")
	}

	return sb.String()
}

func (r *Renderer) styleOption() glamour.TermRendererOption {
	switch r.ColorScheme {
	case config.ColorSchemeDark:
		return glamour.WithStandardStyle("dark")
	case config.ColorSchemeLight:
		return glamour.WithStandardStyle("light")
	default:
		return glamour.WithAutoStyle()
	}
}
