package errors

import (
	"fmt"
)

// ParseError is returned when a date or amount string can't be read
type ParseError struct {
	Value  string
	Layout string
	Cause  error
}

func (e *ParseError) Error() string {
	if e.Layout != "" {
		return fmt.Sprintf("Invalid value %q: expected format %s", e.Value, e.Layout)
	}
	return fmt.Sprintf("Invalid value %q: %s", e.Value, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// SettingError is returned when a configuration value is unusable
type SettingError struct {
	Name   string
	Value  string
	Reason string
}

func (e *SettingError) Error() string {
	return fmt.Sprintf("Invalid %s %q: %s", e.Name, e.Value, e.Reason)
}

// NotFoundError is returned when a named item does not exist
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No %s found with name %q", e.Kind, e.Name)
}

// DuplicateError is returned when adding an item whose name is already taken
type DuplicateError struct {
	Kind string
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s already exists: %q", e.Kind, e.Name)
}

// DivideByZeroError is returned when a ratio's denominator is zero
type DivideByZeroError struct {
	Name string
}

func (e *DivideByZeroError) Error() string {
	return fmt.Sprintf("Cannot compute progress for %q: target amount is zero", e.Name)
}
