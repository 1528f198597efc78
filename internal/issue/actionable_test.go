// SPDX-License-Identifier: MPL-2.0

package issue_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"docsh-cli/internal/issue"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *issue.ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &issue.ActionableError{Operation: "resolve script"},
			want: "failed to resolve script",
		},
		{
			name: "operation and resource",
			err:  &issue.ActionableError{Operation: "resolve script", Resource: "deploy.sh"},
			want: "failed to resolve script: deploy.sh",
		},
		{
			name: "full chain",
			err: &issue.ActionableError{
				Operation: "load configuration",
				Resource:  "config.cue",
				Cause:     errors.New("no such file"),
			},
			want: "failed to load configuration: config.cue: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	ae := issue.NewErrorContext().
		WithOperation("dispatch command").
		WithResource("backup").
		WithSuggestion("Run 'docsh run <script> help'").
		Wrap(cause).
		Build()

	if ae == nil {
		t.Fatal("Build() = nil, want ActionableError")
	}
	if !errors.Is(ae, cause) {
		t.Error("Build() result does not wrap its cause")
	}
	if !ae.HasSuggestions() {
		t.Error("HasSuggestions() = false, want true")
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	t.Parallel()

	if err := issue.NewErrorContext().WithResource("x").BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("permission denied")
	ae := issue.NewErrorContext().
		WithOperation("execute script").
		WithResource("deploy.sh").
		WithSuggestion("Check file permissions").
		Wrap(fmt.Errorf("open file: %w", inner)).
		Build()

	plain := ae.Format(false)
	if !strings.Contains(plain, "• Check file permissions") {
		t.Errorf("Format(false) missing suggestion:\n%s", plain)
	}
	if strings.Contains(plain, "Error chain:") {
		t.Errorf("Format(false) should not include error chain:\n%s", plain)
	}

	verbose := ae.Format(true)
	if !strings.Contains(verbose, "Error chain:") || !strings.Contains(verbose, "permission denied") {
		t.Errorf("Format(true) missing error chain:\n%s", verbose)
	}
}

func TestUnknownCommandCard(t *testing.T) {
	t.Parallel()

	msg := string(issue.Get(issue.UnknownCommandId).MarkdownMsg())
	if !strings.Contains(msg, "docsh run <script> help") {
		t.Error("unknown-command card should point at the help surface")
	}
	// The topic index lists documentation topics, not functions; the error
	// message itself already carries the available function names.
	if strings.Contains(msg, "docsh topics") {
		t.Error("unknown-command card should not point at the topic index")
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	for _, id := range []issue.Id{
		issue.ScriptNotFoundId,
		issue.UnknownCommandId,
		issue.NoDocumentationId,
		issue.ConfigLoadFailedId,
		issue.ScriptParseErrorId,
	} {
		if issue.Get(id) == nil {
			t.Errorf("Get(%d) = nil, want registered issue", id)
		}
	}
	if got, want := len(issue.Values()), 5; got != want {
		t.Errorf("len(Values()) = %d, want %d", got, want)
	}
}
