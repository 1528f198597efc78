// SPDX-License-Identifier: MPL-2.0

package script

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"mvdan.cc/sh/v3/syntax"
)

var (
	// ErrUnknownCommand is the sentinel error wrapped by UnknownCommandError.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrParse is the sentinel error wrapped by ParseError.
	ErrParse = errors.New("script parse error")
)

type (
	// Registry is the dispatch table for one parsed script: every function
	// the script defines, by name. Command dispatch consults the registry
	// before any script code runs, so an unknown command never triggers a
	// partial execution.
	Registry struct {
		path  string
		file  *syntax.File
		funcs map[string]*syntax.FuncDecl
	}

	// UnknownCommandError is returned when a dispatch request names a
	// function the script does not define.
	UnknownCommandError struct {
		Name      string
		Script    string
		Available []string
	}

	// ParseError is returned when a script cannot be parsed as shell.
	ParseError struct {
		Script string
		Cause  error
	}
)

// Error implements the error interface.
func (e *UnknownCommandError) Error() string {
	msg := fmt.Sprintf("unknown command %q in %s", e.Name, e.Script)
	if len(e.Available) > 0 {
		msg += fmt.Sprintf(" (available: %s)", strings.Join(e.Available, ", "))
	}
	return msg
}

// Unwrap returns ErrUnknownCommand for errors.Is() compatibility.
func (e *UnknownCommandError) Unwrap() error { return ErrUnknownCommand }

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Script, e.Cause)
}

// Unwrap returns ErrParse so callers can use errors.Is; the parser error is
// available via Cause.
func (e *ParseError) Unwrap() error { return ErrParse }

// LoadRegistry parses the script at path and collects its function
// declarations into a dispatch table.
func LoadRegistry(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := syntax.NewParser().Parse(f, path)
	if err != nil {
		return nil, &ParseError{Script: path, Cause: err}
	}

	funcs := make(map[string]*syntax.FuncDecl)
	syntax.Walk(file, func(node syntax.Node) bool {
		if fd, ok := node.(*syntax.FuncDecl); ok {
			// Later declarations win, matching shell sourcing semantics.
			funcs[fd.Name.Value] = fd
		}
		return true
	})

	return &Registry{path: path, file: file, funcs: funcs}, nil
}

// Path returns the script path the registry was built from.
func (r *Registry) Path() string { return r.path }

// File returns the parsed program, for execution by the runtime.
func (r *Registry) File() *syntax.File { return r.file }

// Has reports whether the script defines a function named name.
func (r *Registry) Has(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// Names returns the sorted names of every function the script defines.
func (r *Registry) Names() []string {
	names := maps.Keys(r.funcs)
	slices.Sort(names)
	return names
}

// Check returns nil when name is dispatchable, or an UnknownCommandError
// listing the functions that are.
func (r *Registry) Check(name string) error {
	if r.Has(name) {
		return nil
	}
	return &UnknownCommandError{Name: name, Script: r.path, Available: r.Names()}
}
