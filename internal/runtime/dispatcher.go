// SPDX-License-Identifier: MPL-2.0

// Package runtime executes script functions in an embedded shell interpreter
// and runs host commands gated by the mode flags.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"docsh-cli/internal/config"
	"docsh-cli/internal/script"
	"docsh-cli/pkg/types"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// IO bundles the standard streams handed to an executing function.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StdIO returns the process's own streams.
func StdIO() IO {
	return IO{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Dispatcher runs a registered script function inside the embedded mvdan/sh
// interpreter: the script is sourced to load its definitions (top-level code
// runs, as it would under the shell's own source builtin), then the function
// is invoked with the forwarded arguments.
type Dispatcher struct {
	IO     IO
	Modes  config.Modes
	Logger *log.Logger
}

// NewDispatcher creates a Dispatcher writing to the process streams, with
// log verbosity driven by the mode flags.
func NewDispatcher(modes config.Modes) *Dispatcher {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "docsh",
	})
	if modes.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return &Dispatcher{IO: StdIO(), Modes: modes, Logger: logger}
}

// Invoke sources the registry's script and calls fn with args. The returned
// exit code is the function's own. Invoke refuses to execute anything when
// fn is not in the registry, returning an UnknownCommandError with exit
// code 127.
func (d *Dispatcher) Invoke(ctx context.Context, reg *script.Registry, fn string, args []string) (types.ExitCode, error) {
	if err := reg.Check(fn); err != nil {
		return types.ExitCodeNotFound, err
	}

	runner, err := d.newRunner(reg, args)
	if err != nil {
		return 1, err
	}

	d.Logger.Debug("sourcing script", "path", reg.Path())
	if err := runner.Run(ctx, reg.File()); err != nil {
		if code, ok := exitStatus(err); ok {
			// Top-level code exited before the function could run; its
			// status is the script's answer.
			return code, nil
		}
		return 1, fmt.Errorf("failed to source %s: %w", reg.Path(), err)
	}

	// The function name came from the registry, so it is a valid shell word;
	// the arguments travel as positional parameters, never re-parsed.
	call, err := syntax.NewParser().Parse(strings.NewReader(fn+` "$@"`+"\n"), "dispatch")
	if err != nil {
		return 1, fmt.Errorf("internal error: failed to build dispatch call: %w", err)
	}

	d.Logger.Debug("dispatching command", "function", fn, "args", args)
	if err := runner.Run(ctx, call); err != nil {
		if code, ok := exitStatus(err); ok {
			return code, nil
		}
		return 1, fmt.Errorf("failed to run %s: %w", fn, err)
	}
	return 0, nil
}

// newRunner builds the interpreter: script directory as working directory,
// process environment plus canonical mode-flag variables, forwarded args as
// positional parameters.
func (d *Dispatcher) newRunner(reg *script.Registry, args []string) (*interp.Runner, error) {
	env := append(os.Environ(), modeEnv(d.Modes)...)

	opts := []interp.RunnerOption{
		interp.Dir(filepath.Dir(reg.Path())),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(d.IO.Stdin, d.IO.Stdout, d.IO.Stderr),
	}

	// Prepend "--" to signal end of options; without this, args like "-v"
	// are interpreted as shell options by interp.Params().
	if len(args) > 0 {
		params := append([]string{"--"}, args...)
		opts = append(opts, interp.Params(params...))
	}

	return interp.New(opts...)
}

// modeEnv renders the mode flags into canonical environment variables so
// script functions can consult them the same way the rest of docsh does.
// DOCSH_DISPATCH marks the sourcing pass so a script's bootstrap line
// ([ -n "${DOCSH_DISPATCH:-}" ] || exec docsh run "$0" "$@") does not
// re-enter the dispatcher.
func modeEnv(m config.Modes) []string {
	return []string{
		config.EnvPrefix + "_DISPATCH=" + types.TruthyCanonical,
		config.EnvPrefix + "_INTERACTIVE=" + canonical(m.Interactive),
		config.EnvPrefix + "_VERBOSE=" + canonical(m.Verbose),
		config.EnvPrefix + "_ELEVATED=" + canonical(m.Elevated),
	}
}

func canonical(b bool) string {
	if b {
		return types.TruthyCanonical
	}
	return types.FalsyCanonical
}

func exitStatus(err error) (types.ExitCode, bool) {
	var status interp.ExitStatus
	if errors.As(err, &status) {
		return types.ExitCode(status), true
	}
	return 0, false
}
