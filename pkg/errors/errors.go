package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a preset file decoding failure with optional line metadata.
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

// ValidationError captures preset validation issues.
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

// ConfigError describes engine parameters that cannot produce an animation.
// Engines absorb these by degrading to an already-complete state; the error
// value exists so hosts can log why a subject never animated.
type ConfigError struct {
	Subject string
	Field   string
	Message string
}

// NewConfigError constructs a ConfigError.
func NewConfigError(subject, field, message string) error {
	return &ConfigError{Subject: subject, Field: field, Message: message}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Subject != "" && e.Field != "":
		return fmt.Sprintf("config error [%s] %s: %s", e.Subject, e.Field, e.Message)
	case e.Subject != "":
		return fmt.Sprintf("config error [%s]: %s", e.Subject, e.Message)
	default:
		return fmt.Sprintf("config error: %s", e.Message)
	}
}

// PresetNotFoundError reports an unknown animation id along with close matches.
type PresetNotFoundError struct {
	ID          string
	Suggestions []string
}

// NewPresetNotFoundError constructs a PresetNotFoundError.
func NewPresetNotFoundError(id string, suggestions []string) error {
	return &PresetNotFoundError{ID: id, Suggestions: append([]string(nil), suggestions...)}
}

func (e *PresetNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("animation %q not found (did you mean: %s?)", e.ID, strings.Join(e.Suggestions, ", "))
	}
	return fmt.Sprintf("animation %q not found", e.ID)
}
