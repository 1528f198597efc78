// SPDX-License-Identifier: MPL-2.0

package docblock_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"docsh-cli/pkg/docblock"
	"docsh-cli/pkg/types"
)

const sampleScript = `#!/bin/sh
# <doc:backup>
# Run a full backup.
#
# Usage:
#   backup TARGET
# </doc:backup>

# <doc:restore>
# Restore from the most recent backup.
# </doc:restore>

backup() { echo "backing up $1"; }
restore() { echo "restoring"; }
`

func writeScript(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []docblock.Block
	}{
		{
			name: "single block",
			src:  "# <doc:foo>\n# line one\n# </doc:foo>\n",
			want: []docblock.Block{{Name: "foo", Body: []string{"line one"}, Line: 1}},
		},
		{
			name: "blank comment lines preserved",
			src:  "# <doc:foo>\n# para one\n#\n# para two\n# </doc:foo>\n",
			want: []docblock.Block{{Name: "foo", Body: []string{"para one", "", "para two"}, Line: 1}},
		},
		{
			name: "indented sentinel and doubled hash prefix",
			src:  "  ## <doc:foo>\n  ## text\n  ## </doc:foo>\n",
			want: []docblock.Block{{Name: "foo", Body: []string{"text"}, Line: 1}},
		},
		{
			name: "extra body indentation survives",
			src:  "# <doc:foo>\n#   indented\n# </doc:foo>\n",
			want: []docblock.Block{{Name: "foo", Body: []string{"  indented"}, Line: 1}},
		},
		{
			name: "mismatched close is body",
			src:  "# <doc:foo>\n# </doc:bar>\n# </doc:foo>\n",
			want: []docblock.Block{{Name: "foo", Body: []string{"</doc:bar>"}, Line: 1}},
		},
		{
			name: "case sensitive names",
			src:  "# <doc:Foo>\n# text\n# </doc:foo>\n# </doc:Foo>\n",
			want: []docblock.Block{{Name: "Foo", Body: []string{"text", "</doc:foo>"}, Line: 1}},
		},
		{
			name: "sentinel must be whole remainder of line",
			src:  "# <doc:foo> trailing words\n# <doc:bar>\n# </doc:bar>\n",
			want: []docblock.Block{{Name: "bar", Body: nil, Line: 2}},
		},
		{
			name: "no sentinels",
			src:  "#!/bin/sh\necho hello\n",
			want: nil,
		},
		{
			name: "unterminated block truncates to EOF",
			src:  "# <doc:foo>\n# dangling\n",
			want: []docblock.Block{{Name: "foo", Body: []string{"dangling"}, Line: 1}},
		},
		{
			name: "duplicate names all returned in order",
			src:  "# <doc:foo>\n# first\n# </doc:foo>\n# <doc:foo>\n# second\n# </doc:foo>\n",
			want: []docblock.Block{
				{Name: "foo", Body: []string{"first"}, Line: 1},
				{Name: "foo", Body: []string{"second"}, Line: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := docblock.Scan(strings.NewReader(tt.src), docblock.Options{})
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestScan_Strict(t *testing.T) {
	t.Parallel()

	t.Run("unterminated block", func(t *testing.T) {
		t.Parallel()
		_, err := docblock.Scan(strings.NewReader("# <doc:foo>\n# dangling\n"), docblock.Options{Strict: true})
		if !errors.Is(err, docblock.ErrUnterminatedBlock) {
			t.Fatalf("Scan() error = %v, want ErrUnterminatedBlock", err)
		}
		var ub *docblock.UnterminatedBlockError
		if !errors.As(err, &ub) || ub.Name != "foo" || ub.Line != 1 {
			t.Errorf("Scan() error = %#v, want name foo at line 1", err)
		}
	})

	t.Run("duplicate block", func(t *testing.T) {
		t.Parallel()
		src := "# <doc:foo>\n# </doc:foo>\n# <doc:foo>\n# </doc:foo>\n"
		_, err := docblock.Scan(strings.NewReader(src), docblock.Options{Strict: true})
		if !errors.Is(err, docblock.ErrDuplicateBlock) {
			t.Fatalf("Scan() error = %v, want ErrDuplicateBlock", err)
		}
		var db *docblock.DuplicateBlockError
		if !errors.As(err, &db) || db.FirstLine != 1 || db.Line != 3 {
			t.Errorf("Scan() error = %#v, want duplicate at line 3 (first at 1)", err)
		}
	})

	t.Run("well-formed input unaffected", func(t *testing.T) {
		t.Parallel()
		got, err := docblock.Scan(strings.NewReader(sampleScript), docblock.Options{Strict: true})
		if err != nil {
			t.Fatalf("Scan() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("Scan() returned %d blocks, want 2", len(got))
		}
	})
}

func TestExtract(t *testing.T) {
	t.Parallel()

	path := writeScript(t, "tool.sh", sampleScript)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		got, err := docblock.Extract("backup", path)
		if err != nil {
			t.Fatalf("Extract() error = %v", err)
		}
		want := []string{"Run a full backup.", "", "Usage:", "  backup TARGET"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Extract() = %q, want %q", got, want)
		}
	})

	t.Run("absent name is empty and repeatable", func(t *testing.T) {
		t.Parallel()
		for i := 0; i < 2; i++ {
			got, err := docblock.Extract("nope", path)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if len(got) != 0 {
				t.Errorf("Extract() = %q, want empty", got)
			}
		}
	})

	t.Run("concatenates across files", func(t *testing.T) {
		t.Parallel()
		other := writeScript(t, "other.sh", "# <doc:backup>\n# See also other.sh.\n# </doc:backup>\n")
		got, err := docblock.Extract("backup", path, other)
		if err != nil {
			t.Fatalf("Extract() error = %v", err)
		}
		want := []string{"Run a full backup.", "", "Usage:", "  backup TARGET", "See also other.sh."}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Extract() = %q, want %q", got, want)
		}
	})
}

func TestTopics(t *testing.T) {
	t.Parallel()

	t.Run("sorted and base name excluded", func(t *testing.T) {
		t.Parallel()
		src := "# <doc:foo>\n# </doc:foo>\n# <doc:bar>\n# </doc:bar>\n# <doc:scriptname>\n# </doc:scriptname>\n"
		path := writeScript(t, "scriptname", src)
		got, err := docblock.Topics(path)
		if err != nil {
			t.Fatalf("Topics() error = %v", err)
		}
		want := []types.TopicName{"bar", "foo"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Topics() = %v, want %v", got, want)
		}
	})

	t.Run("extension-stripped base name excluded too", func(t *testing.T) {
		t.Parallel()
		src := "# <doc:tool>\n# </doc:tool>\n# <doc:zz>\n# </doc:zz>\n"
		path := writeScript(t, "tool.sh", src)
		got, err := docblock.Topics(path)
		if err != nil {
			t.Fatalf("Topics() error = %v", err)
		}
		want := []types.TopicName{"zz"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Topics() = %v, want %v", got, want)
		}
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		t.Parallel()
		src := "# <doc:a>\n# </doc:a>\n# <doc:a>\n# </doc:a>\n"
		path := writeScript(t, "dup.sh", src)
		got, err := docblock.Topics(path)
		if err != nil {
			t.Fatalf("Topics() error = %v", err)
		}
		want := []types.TopicName{"a"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Topics() = %v, want %v", got, want)
		}
	})

	t.Run("empty index is not an error", func(t *testing.T) {
		t.Parallel()
		path := writeScript(t, "plain.sh", "#!/bin/sh\necho hi\n")
		got, err := docblock.Topics(path)
		if err != nil {
			t.Fatalf("Topics() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Topics() = %v, want empty", got)
		}
	})
}

func TestScriptName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want types.TopicName
	}{
		{"/usr/local/bin/tool", "tool"},
		{"tool.sh", "tool"},
		{"./nested/dir/backup.bash", "backup"},
	}
	for _, tt := range tests {
		if got := docblock.ScriptName(tt.path); got != tt.want {
			t.Errorf("ScriptName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
