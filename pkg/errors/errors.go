package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration and form validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MisuseError reports a component wired together incorrectly, such as a
// sub-part constructed without the container that owns its state. It signals
// an integration bug and is raised with panic at construction time.
type MisuseError struct {
	Component string
	Requires  string
}

// NewMisuseError constructs a MisuseError.
func NewMisuseError(component, requires string) error {
	return &MisuseError{Component: component, Requires: requires}
}

func (e *MisuseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Requires != "" {
		return fmt.Sprintf("component misuse: %s must be used within %s", e.Component, e.Requires)
	}
	return fmt.Sprintf("component misuse: %s", e.Component)
}

// ResourceError describes a single-shot resource load that failed.
type ResourceError struct {
	Source string
	Err    error
}

// NewResourceError constructs a ResourceError for the given source.
func NewResourceError(source string, err error) error {
	return &ResourceError{Source: source, Err: err}
}

func (e *ResourceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Source != "" {
		return fmt.Sprintf("resource error [%s]: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("resource error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *ResourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
