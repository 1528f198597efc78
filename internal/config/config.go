// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the docsh configuration. Config files
// are written in CUE, validated against an embedded schema, and layered
// with environment overrides and built-in defaults through Viper.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"docsh-cli/internal/issue"
	"docsh-cli/pkg/types"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "docsh"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes every environment variable docsh consults.
	EnvPrefix = "DOCSH"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the docsh configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration: built-in defaults, then the config file
// (explicit override path, platform config dir, or current directory),
// then DOCSH_* environment overrides for the mode flags. A missing config
// file is not an error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("script_paths", defaults.ScriptPaths)
	v.SetDefault("modes.interactive", defaults.Modes.Interactive)
	v.SetDefault("modes.verbose", defaults.Modes.Verbose)
	v.SetDefault("modes.elevated", defaults.Modes.Elevated)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("export.out_dir", defaults.Export.OutDir)

	path, err := resolveConfigFile()
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("See 'docsh config show' for the effective configuration").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("Fix the listed fields and retry").
			Wrap(err).
			BuildError()
	}

	return &cfg, nil
}

// resolveConfigFile returns the config file to load, or "" when none exists.
func resolveConfigFile() (string, error) {
	if configFilePathOverride != "" {
		if !fileExists(configFilePathOverride) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFilePathOverride).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(fmt.Errorf("config file not found: %s", configFilePathOverride)).
				BuildError()
		}
		return configFilePathOverride, nil
	}

	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	cuePath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if fileExists(cuePath) {
		return cuePath, nil
	}

	// Also check the current directory.
	localCuePath := ConfigFileName + "." + ConfigFileExt
	if fileExists(localCuePath) {
		return localCuePath, nil
	}

	return "", nil
}

// applyEnvOverrides layers DOCSH_INTERACTIVE, DOCSH_VERBOSE, and
// DOCSH_ELEVATED on top of file values. The variables accept any truthy
// spelling; a variable that is set but falsy turns the mode off.
func applyEnvOverrides(cfg *Config) {
	if val, ok := os.LookupEnv(EnvPrefix + "_INTERACTIVE"); ok {
		cfg.Modes.Interactive = types.Truthy(val).Bool()
	}
	if val, ok := os.LookupEnv(EnvPrefix + "_VERBOSE"); ok {
		cfg.Modes.Verbose = types.Truthy(val).Bool()
	}
	if val, ok := os.LookupEnv(EnvPrefix + "_ELEVATED"); ok {
		cfg.Modes.Elevated = types.Truthy(val).Bool()
	}
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return fmt.Errorf("failed to parse config file: %w", userValue.Err())
	}

	// Unify with schema to validate against the #Config definition.
	// Concrete(false) because all config fields are optional.
	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	// Merge into Viper (preserves defaults for unset fields).
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
