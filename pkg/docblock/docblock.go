// SPDX-License-Identifier: MPL-2.0

// Package docblock locates and extracts named documentation blocks embedded
// in shell script comments. A block is delimited by a sentinel pair:
//
//	# <doc:NAME>
//	#
//	# free-form text, one or more lines
//	#
//	# </doc:NAME>
//
// Sentinels must occupy the entire remainder of a comment line after the
// comment prefix. NAME is matched case-sensitively and may not contain '>'.
// Blocks do not nest; the scan is a single forward pass with no backtracking.
package docblock

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"docsh-cli/pkg/types"
)

var (
	// openPattern matches an opening sentinel line. The comment prefix is a
	// run of '#' optionally preceded by indentation.
	openPattern = regexp.MustCompile(`^\s*#+\s*<doc:([^>]+)>\s*$`)
	// closePattern matches a closing sentinel line.
	closePattern = regexp.MustCompile(`^\s*#+\s*</doc:([^>]+)>\s*$`)
	// bodyPrefixPattern matches the comment prefix stripped from body lines.
	// At most one space after the '#' run is consumed so that deliberate
	// indentation inside a block survives extraction.
	bodyPrefixPattern = regexp.MustCompile(`^\s*#+ ?`)
)

// Block is one named documentation block extracted from a source file.
type Block struct {
	// Name is the identifier carried by the sentinel pair.
	Name types.TopicName
	// Body holds the lines strictly between the sentinels, comment prefix
	// stripped. Blank comment lines are preserved as empty strings.
	Body []string
	// Line is the 1-based line number of the opening sentinel.
	Line int
}

// Options controls scanning behavior.
type Options struct {
	// Strict makes Scan fail on unterminated blocks and duplicate block
	// names instead of degrading silently. The lenient default matches what
	// a plain linear text scan produces: an unterminated block runs to end
	// of input, and duplicates are all returned in order.
	Strict bool
}

// Scan reads src line by line and returns every documentation block found,
// in source order. Input that contains no sentinels yields an empty slice
// and no error.
func Scan(src io.Reader, opts Options) ([]Block, error) {
	var (
		blocks []Block
		cur    *Block
		seen   map[types.TopicName]int // name -> opening line, strict mode only
	)
	if opts.Strict {
		seen = make(map[types.TopicName]int)
	}

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if cur != nil {
			if m := closePattern.FindStringSubmatch(line); m != nil && types.TopicName(m[1]) == cur.Name {
				blocks = append(blocks, *cur)
				cur = nil
				continue
			}
			cur.Body = append(cur.Body, bodyPrefixPattern.ReplaceAllString(line, ""))
			continue
		}

		if m := openPattern.FindStringSubmatch(line); m != nil {
			name := types.TopicName(m[1])
			if opts.Strict {
				if first, dup := seen[name]; dup {
					return nil, &DuplicateBlockError{Name: name, FirstLine: first, Line: lineNo}
				}
				seen[name] = lineNo
			}
			cur = &Block{Name: name, Line: lineNo}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if cur != nil {
		if opts.Strict {
			return nil, &UnterminatedBlockError{Name: cur.Name, Line: cur.Line}
		}
		// Lenient: the truncated body collected so far is still useful.
		blocks = append(blocks, *cur)
	}

	return blocks, nil
}

// ScanFile scans the file at path. See Scan.
func ScanFile(path string, opts Options) ([]Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Scan(f, opts)
}

// Extract returns the body lines of every block named name across the given
// files, concatenated in file-then-source order. A name that appears in no
// file yields an empty slice and no error; callers treat absence as "no
// documentation available".
func Extract(name types.TopicName, paths ...string) ([]string, error) {
	var body []string
	for _, path := range paths {
		blocks, err := ScanFile(path, Options{})
		if err != nil {
			return nil, err
		}
		body = appendMatching(body, blocks, name)
	}
	return body, nil
}

// ExtractReader is Extract over a single already-open source.
func ExtractReader(name types.TopicName, src io.Reader) ([]string, error) {
	blocks, err := Scan(src, Options{})
	if err != nil {
		return nil, err
	}
	return appendMatching(nil, blocks, name), nil
}

func appendMatching(body []string, blocks []Block, name types.TopicName) []string {
	for _, b := range blocks {
		if b.Name == name {
			body = append(body, b.Body...)
		}
	}
	return body
}

// Topics returns the sorted, deduplicated names of every documentation block
// in the file at path, excluding the file's own base name (with and without
// extension): that block is the whole-script description, not a topic.
func Topics(path string) ([]types.TopicName, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return TopicsReader(f, filepath.Base(path))
}

// TopicsReader builds the topic index from src for a file whose base name is
// base. Only opening sentinels are considered; a malformed or unterminated
// block still contributes its name.
func TopicsReader(src io.Reader, base string) ([]types.TopicName, error) {
	bare := strings.TrimSuffix(base, filepath.Ext(base))

	seen := make(map[types.TopicName]struct{})
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m := openPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		name := types.TopicName(m[1])
		if string(name) == base || string(name) == bare {
			continue
		}
		seen[name] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	topics := make([]types.TopicName, 0, len(seen))
	for name := range seen {
		topics = append(topics, name)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i] < topics[j] })
	return topics, nil
}

// ScriptName returns the topic name a script's whole-file description block
// is expected to carry: the base name with any extension stripped.
func ScriptName(path string) types.TopicName {
	base := filepath.Base(path)
	return types.TopicName(strings.TrimSuffix(base, filepath.Ext(base)))
}
