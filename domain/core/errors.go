package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Selection errors
	ErrNoData      = errors.New("no data available for this selection")
	ErrUnknownType = errors.New("unknown personality type")
	ErrUnknownFont = errors.New("unknown font")

	// Layout errors
	ErrEmptyAxis        = errors.New("empty axis domain")
	ErrInvalidScale     = errors.New("invalid plot scale")
	ErrDuplicateCell    = errors.New("duplicate grid cell")
	ErrConflictingGroup = errors.New("group has more than one name")
	ErrPeriodCollision  = errors.New("label row collides with a data period")

	// Source errors
	ErrMissingColumn = errors.New("missing required column")
	ErrIconNotFound  = errors.New("icon not found")
	ErrInvalidIcon   = errors.New("icon is not a readable PNG image")
)

// Error constructors with context
func NewEmptyAxisError(axis string) error {
	return fmt.Errorf("%w: %s", ErrEmptyAxis, axis)
}

func NewDuplicateCellError(group, period string) error {
	return fmt.Errorf("%w: group %s, period %s", ErrDuplicateCell, group, period)
}

func NewConflictingGroupError(group, first, second string) error {
	return fmt.Errorf("%w: group %s is both %q and %q", ErrConflictingGroup, group, first, second)
}

func NewMissingColumnError(column string) error {
	return fmt.Errorf("%w: %s", ErrMissingColumn, column)
}

// Error checking helpers
func IsSelectionError(err error) bool {
	return errors.Is(err, ErrUnknownType) || errors.Is(err, ErrUnknownFont)
}

func IsLayoutError(err error) bool {
	return errors.Is(err, ErrNoData) ||
		errors.Is(err, ErrEmptyAxis) ||
		errors.Is(err, ErrDuplicateCell) ||
		errors.Is(err, ErrConflictingGroup) ||
		errors.Is(err, ErrPeriodCollision)
}
