// SPDX-License-Identifier: MPL-2.0

package runtime_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"docsh-cli/internal/config"
	"docsh-cli/internal/runtime"
	"docsh-cli/internal/script"

	"github.com/charmbracelet/log"
)

const dispatchFixture = `#!/bin/sh
greet() {
	echo "hello $1 $2"
}

fail() {
	return 42
}

count_args() {
	echo "$#"
}

show_verbose() {
	echo "verbose=${DOCSH_VERBOSE}"
}

[ -n "${DOCSH_DISPATCH:-}" ] || exit 99
`

func newTestDispatcher(modes config.Modes) (*runtime.Dispatcher, *bytes.Buffer) {
	var out bytes.Buffer
	logger := log.New(io.Discard)
	return &runtime.Dispatcher{
		IO:     runtime.IO{Stdin: bytes.NewReader(nil), Stdout: &out, Stderr: io.Discard},
		Modes:  modes,
		Logger: logger,
	}, &out
}

func loadFixture(t *testing.T, content string) *script.Registry {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tool.sh")
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	reg, err := script.LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	return reg
}

func TestDispatcher_Invoke(t *testing.T) {
	t.Parallel()

	t.Run("forwards arguments", func(t *testing.T) {
		t.Parallel()
		d, out := newTestDispatcher(config.Modes{})
		reg := loadFixture(t, dispatchFixture)

		code, err := d.Invoke(context.Background(), reg, "greet", []string{"big", "world"})
		if err != nil {
			t.Fatalf("Invoke() error = %v", err)
		}
		if !code.IsSuccess() {
			t.Errorf("Invoke() code = %v, want 0", code)
		}
		if got, want := out.String(), "hello big world\n"; got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})

	t.Run("propagates exit status", func(t *testing.T) {
		t.Parallel()
		d, _ := newTestDispatcher(config.Modes{})
		reg := loadFixture(t, dispatchFixture)

		code, err := d.Invoke(context.Background(), reg, "fail", nil)
		if err != nil {
			t.Fatalf("Invoke() error = %v", err)
		}
		if code != 42 {
			t.Errorf("Invoke() code = %v, want 42", code)
		}
	})

	t.Run("dash-prefixed args survive", func(t *testing.T) {
		t.Parallel()
		d, out := newTestDispatcher(config.Modes{})
		reg := loadFixture(t, dispatchFixture)

		code, err := d.Invoke(context.Background(), reg, "count_args", []string{"-v", "--flag", "x"})
		if err != nil {
			t.Fatalf("Invoke() error = %v", err)
		}
		if !code.IsSuccess() {
			t.Errorf("Invoke() code = %v, want 0", code)
		}
		if got, want := out.String(), "3\n"; got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})

	t.Run("unknown command refuses to execute", func(t *testing.T) {
		t.Parallel()
		d, out := newTestDispatcher(config.Modes{})
		reg := loadFixture(t, dispatchFixture)

		code, err := d.Invoke(context.Background(), reg, "rm_everything", nil)
		if !errors.Is(err, script.ErrUnknownCommand) {
			t.Fatalf("Invoke() error = %v, want ErrUnknownCommand", err)
		}
		if code != 127 {
			t.Errorf("Invoke() code = %v, want 127", code)
		}
		if out.Len() != 0 {
			t.Errorf("unknown command produced output %q, want none", out.String())
		}
	})

	t.Run("mode flags visible to script", func(t *testing.T) {
		t.Parallel()
		d, out := newTestDispatcher(config.Modes{Verbose: true})
		reg := loadFixture(t, dispatchFixture)

		if _, err := d.Invoke(context.Background(), reg, "show_verbose", nil); err != nil {
			t.Fatalf("Invoke() error = %v", err)
		}
		if got, want := out.String(), "verbose=1\n"; got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})

	t.Run("top-level exit wins", func(t *testing.T) {
		t.Parallel()
		d, _ := newTestDispatcher(config.Modes{})
		reg := loadFixture(t, "noop() { :; }\nexit 7\n")

		code, err := d.Invoke(context.Background(), reg, "noop", nil)
		if err != nil {
			t.Fatalf("Invoke() error = %v", err)
		}
		if code != 7 {
			t.Errorf("Invoke() code = %v, want 7", code)
		}
	})
}

func TestDispatcher_RunHost(t *testing.T) {
	t.Parallel()

	t.Run("verbose shows output", func(t *testing.T) {
		t.Parallel()
		d, out := newTestDispatcher(config.Modes{Verbose: true})
		code, err := d.RunHost(context.Background(), "sh", "-c", "echo visible")
		if err != nil {
			t.Fatalf("RunHost() error = %v", err)
		}
		if !code.IsSuccess() {
			t.Errorf("RunHost() code = %v, want 0", code)
		}
		if got, want := out.String(), "visible\n"; got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})

	t.Run("quiet suppresses output", func(t *testing.T) {
		t.Parallel()
		d, out := newTestDispatcher(config.Modes{})
		code, err := d.RunHost(context.Background(), "sh", "-c", "echo hidden")
		if err != nil {
			t.Fatalf("RunHost() error = %v", err)
		}
		if !code.IsSuccess() {
			t.Errorf("RunHost() code = %v, want 0", code)
		}
		if out.Len() != 0 {
			t.Errorf("output = %q, want none", out.String())
		}
	})

	t.Run("exit status propagates", func(t *testing.T) {
		t.Parallel()
		d, _ := newTestDispatcher(config.Modes{})
		code, err := d.RunHost(context.Background(), "sh", "-c", "exit 3")
		if err != nil {
			t.Fatalf("RunHost() error = %v", err)
		}
		if code != 3 {
			t.Errorf("RunHost() code = %v, want 3", code)
		}
	})
}
