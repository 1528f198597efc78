// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTopicName is the sentinel error wrapped by InvalidTopicNameError.
var ErrInvalidTopicName = errors.New("invalid topic name")

type (
	// TopicName identifies a documentation block inside a script. Names are
	// case-sensitive, must be non-empty, must not be whitespace-only, and
	// must not contain '>' (which would terminate the sentinel tag early).
	TopicName string

	// InvalidTopicNameError is returned when a TopicName value is empty,
	// whitespace-only, or contains a '>' character.
	InvalidTopicNameError struct {
		Value TopicName
	}
)

// String returns the string representation of the TopicName.
func (n TopicName) String() string { return string(n) }

// IsValid returns whether the TopicName is valid.
func (n TopicName) IsValid() (bool, []error) {
	if strings.TrimSpace(string(n)) == "" || strings.ContainsRune(string(n), '>') {
		return false, []error{&InvalidTopicNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidTopicNameError.
func (e *InvalidTopicNameError) Error() string {
	return fmt.Sprintf("invalid topic name %q: must be non-empty and must not contain '>'", e.Value)
}

// Unwrap returns ErrInvalidTopicName for errors.Is() compatibility.
func (e *InvalidTopicNameError) Unwrap() error { return ErrInvalidTopicName }
