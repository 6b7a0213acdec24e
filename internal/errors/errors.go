// Package errors provides standardized error handling for formkit.
// It defines the two error families the factories raise, invalid
// configuration and toolkit availability, with kinds, helper
// constructors, and predicates for consistent handling across the
// library.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Configuration error kinds
	NegativeCoordinate
	NegativeExtent
	PlacementConflict
	InvalidPercentage
	SpanOutOfRange
	InvalidOption
	InvalidConfig
	// Toolkit error kinds
	ToolkitUnavailable
)

// Common error constants for frequently occurring errors
var (
	ErrInvalidConfig      = NewConfigurationError("invalid configuration", "", InvalidConfig, nil)
	ErrPlacementConflict  = NewConfigurationError("conflicting placement", "", PlacementConflict, nil)
	ErrToolkitUnavailable = NewToolkitError("toolkit unavailable", nil)
)

// ApplicationError is the base error type for all formkit errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ConfigurationError represents an invalid or conflicting widget, panel,
// or window configuration. It is always raised synchronously at factory
// call time, before any widget is constructed.
type ConfigurationError struct {
	ApplicationError
	param string
}

// NewConfigurationError creates a new configuration error. param names the
// offending configuration field, if one can be singled out.
func NewConfigurationError(msg string, param string, kind ErrorKind, err error) *ConfigurationError {
	return &ConfigurationError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the configuration error message
func (e *ConfigurationError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigurationError) Param() string {
	return e.param
}

// ToolkitError represents a failure to initialize or reach the underlying
// GUI toolkit. It is fatal to any dialog entry point.
type ToolkitError struct {
	ApplicationError
}

// NewToolkitError creates a new toolkit error
func NewToolkitError(msg string, err error) *ToolkitError {
	return &ToolkitError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: ToolkitUnavailable,
		},
	}
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsInvalidConfiguration checks if the error is any configuration error
func IsInvalidConfiguration(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// IsPlacementConflict checks if the error is a placement conflict error
func IsPlacementConflict(err error) bool {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind() == PlacementConflict
	}
	return false
}

// IsToolkitUnavailable checks if the error is a toolkit availability error
func IsToolkitUnavailable(err error) bool {
	var tkErr *ToolkitError
	return errors.As(err, &tkErr)
}
