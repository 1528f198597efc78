// SPDX-License-Identifier: MPL-2.0

package render

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"docsh-cli/pkg/docblock"

	"github.com/yuin/goldmark"
)

// htmlPage wraps a rendered block body in a minimal standalone document.
const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// Export extracts every documentation block from the script at scriptPath
// and writes one standalone HTML file per block into outDir, returning the
// written paths in block order. The scan is strict: unterminated blocks and
// duplicate names fail the export instead of producing broken pages.
func Export(scriptPath, outDir string) ([]string, error) {
	blocks, err := docblock.ScanFile(scriptPath, docblock.Options{Strict: true})
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	md := goldmark.New()

	var written []string
	for _, block := range blocks {
		var buf bytes.Buffer
		source := []byte(strings.Join(block.Body, "\n"))
		if err := md.Convert(source, &buf); err != nil {
			return nil, fmt.Errorf("failed to convert block %q: %w", block.Name, err)
		}

		page := fmt.Sprintf(htmlPage, html.EscapeString(block.Name.String()), buf.String())
		path := filepath.Join(outDir, fileName(block.Name.String()))
		if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}

	return written, nil
}

// fileName maps a block name to a safe file name.
func fileName(name string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	return safe + ".html"
}
