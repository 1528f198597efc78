// SPDX-License-Identifier: MPL-2.0

// Package script resolves script names to executable files and builds the
// function dispatch table for a resolved script.
package script

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrScriptNotFound is the sentinel error wrapped by NotFoundError.
var ErrScriptNotFound = errors.New("script not found")

// NotFoundError is returned when a script name cannot be resolved to an
// executable file. It carries the locations that were searched.
type NotFoundError struct {
	Name     string
	Searched []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if len(e.Searched) == 0 {
		return fmt.Sprintf("command not found: %s", e.Name)
	}
	return fmt.Sprintf("command not found: %s (searched: %s, $PATH)", e.Name, strings.Join(e.Searched, ", "))
}

// Unwrap returns ErrScriptNotFound for errors.Is() compatibility.
func (e *NotFoundError) Unwrap() error { return ErrScriptNotFound }

// Resolve turns a script name into the path of an existing regular file.
// A name containing a path separator is used as-is. Bare names are searched
// in searchPaths (in order), then on $PATH. The returned path is absolute
// except for explicit relative inputs, which are cleaned but kept relative.
func Resolve(name string, searchPaths []string) (string, error) {
	if name == "" {
		return "", &NotFoundError{Name: name}
	}

	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, os.PathSeparator) {
		if isRegularFile(name) {
			return filepath.Clean(name), nil
		}
		return "", &NotFoundError{Name: name}
	}

	for _, dir := range searchPaths {
		candidate := filepath.Join(dir, name)
		if isRegularFile(candidate) {
			return candidate, nil
		}
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", &NotFoundError{Name: name, Searched: searchPaths}
	}
	return path, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
