// SPDX-License-Identifier: MPL-2.0

package types

import "strings"

// Canonical string forms used when a boolean mode flag is written back to an
// environment variable: "1" for true and "" for false. Scripts test these
// with a plain [ -n "$FLAG" ] check.
const (
	TruthyCanonical = "1"
	FalsyCanonical  = ""
)

// Truthy is a loosely-typed boolean as it appears in environment variables
// and config overrides. "1", "true", "yes", "on", and "y" (case-insensitive,
// surrounding whitespace ignored) are true; everything else is false.
type Truthy string

// Bool reports whether the value is truthy.
func (t Truthy) Bool() bool {
	switch strings.ToLower(strings.TrimSpace(string(t))) {
	case "1", "true", "yes", "on", "y":
		return true
	default:
		return false
	}
}

// Normalize returns the canonical string form ("1" or "").
func (t Truthy) Normalize() string {
	if t.Bool() {
		return TruthyCanonical
	}
	return FalsyCanonical
}
