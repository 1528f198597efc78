// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidScriptPath is the sentinel error wrapped by InvalidScriptPathError.
	ErrInvalidScriptPath = errors.New("invalid script path entry")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidScriptPathError is returned when a script_paths entry is
	// whitespace-only. It wraps ErrInvalidScriptPath for errors.Is().
	InvalidScriptPathError struct {
		Index int
		Value string
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Modes is the run-scoped settings object consulted by the render,
	// pager, and runtime layers. It is populated once at startup (config
	// file, then environment overrides, then CLI flags) and passed by value
	// into every consumer; nothing reads these settings from ambient
	// process state after load.
	Modes struct {
		// Interactive gates prompts and the interactive pager.
		Interactive bool `json:"interactive" mapstructure:"interactive"`
		// Verbose gates status output and debug logging, and makes the
		// gated command executor show child output instead of suppressing it.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// Elevated makes the gated command executor run host commands with
		// a privilege-elevation prefix.
		Elevated bool `json:"elevated" mapstructure:"elevated"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme selects the glamour/lipgloss color scheme.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}

	// ExportConfig configures the HTML documentation exporter.
	ExportConfig struct {
		// OutDir is the default output directory for exported documentation.
		OutDir string `json:"out_dir" mapstructure:"out_dir"`
	}

	// Config holds the application configuration.
	Config struct {
		// ScriptPaths lists directories searched (before $PATH) when
		// resolving a bare script name.
		ScriptPaths []string `json:"script_paths" mapstructure:"script_paths"`
		// Modes holds the default mode flags; CLI flags override them.
		Modes Modes `json:"modes" mapstructure:"modes"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Export configures documentation export.
		Export ExportConfig `json:"export" mapstructure:"export"`
	}
)

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		ScriptPaths: nil,
		Modes:       Modes{Interactive: true},
		UI:          UIConfig{ColorScheme: ColorSchemeAuto},
		Export:      ExportConfig{OutDir: "docs"},
	}
}

// IsValid returns whether the ColorScheme is one of the recognized values.
func (s ColorScheme) IsValid() (bool, []error) {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: s}}
	}
}

// String returns the string representation of the ColorScheme.
func (s ColorScheme) String() string { return string(s) }

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (must be one of: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface.
func (e *InvalidScriptPathError) Error() string {
	return fmt.Sprintf("script_paths[%d]: entry must not be empty or whitespace-only (got %q)", e.Index, e.Value)
}

// Unwrap returns ErrInvalidScriptPath for errors.Is() compatibility.
func (e *InvalidScriptPathError) Unwrap() error { return ErrInvalidScriptPath }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Validate checks constraints that the CUE schema cannot express.
func (c *Config) Validate() error {
	var fieldErrs []error

	if ok, errs := c.UI.ColorScheme.IsValid(); !ok {
		fieldErrs = append(fieldErrs, errs...)
	}
	for i, p := range c.ScriptPaths {
		if strings.TrimSpace(p) == "" {
			fieldErrs = append(fieldErrs, &InvalidScriptPathError{Index: i, Value: p})
		}
	}

	if len(fieldErrs) > 0 {
		return &InvalidConfigError{FieldErrors: fieldErrs}
	}
	return nil
}
