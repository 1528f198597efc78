// SPDX-License-Identifier: MPL-2.0

package docblock

import (
	"errors"
	"fmt"

	"docsh-cli/pkg/types"
)

var (
	// ErrUnterminatedBlock is the sentinel error wrapped by UnterminatedBlockError.
	ErrUnterminatedBlock = errors.New("unterminated documentation block")
	// ErrDuplicateBlock is the sentinel error wrapped by DuplicateBlockError.
	ErrDuplicateBlock = errors.New("duplicate documentation block")
)

type (
	// UnterminatedBlockError is returned by strict scans when an opening
	// sentinel has no matching closing sentinel before end of input.
	UnterminatedBlockError struct {
		Name types.TopicName
		Line int // 1-based line of the opening sentinel
	}

	// DuplicateBlockError is returned by strict scans when two blocks in the
	// same input share a name.
	DuplicateBlockError struct {
		Name      types.TopicName
		FirstLine int // 1-based line of the first opening sentinel
		Line      int // 1-based line of the duplicate opening sentinel
	}
)

// Error implements the error interface.
func (e *UnterminatedBlockError) Error() string {
	return fmt.Sprintf("unterminated documentation block %q opened at line %d", e.Name, e.Line)
}

// Unwrap returns ErrUnterminatedBlock for errors.Is() compatibility.
func (e *UnterminatedBlockError) Unwrap() error { return ErrUnterminatedBlock }

// Error implements the error interface.
func (e *DuplicateBlockError) Error() string {
	return fmt.Sprintf("duplicate documentation block %q at line %d (first defined at line %d)", e.Name, e.Line, e.FirstLine)
}

// Unwrap returns ErrDuplicateBlock for errors.Is() compatibility.
func (e *DuplicateBlockError) Unwrap() error { return ErrDuplicateBlock }
