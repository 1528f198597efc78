// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"docsh-cli/pkg/types"
)

// elevateCommand is the privilege-elevation prefix used when the elevated
// mode flag is set.
const elevateCommand = "sudo"

// RunHost executes a host command gated by the mode flags: output is shown
// when verbose and suppressed otherwise, and the command is wrapped with a
// privilege-elevation prefix when elevated. Stdin is always connected so
// elevation prompts still work.
func (d *Dispatcher) RunHost(ctx context.Context, name string, args ...string) (types.ExitCode, error) {
	if d.Modes.Elevated {
		args = append([]string{name}, args...)
		name = elevateCommand
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = d.IO.Stdin
	if d.Modes.Verbose {
		cmd.Stdout = d.IO.Stdout
		cmd.Stderr = d.IO.Stderr
		d.Logger.Debug("running host command", "command", name, "args", args)
	} else {
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return types.ExitCode(exitErr.ExitCode()), nil
	}
	return 1, err
}
