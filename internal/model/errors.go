// errors.go defines the error kinds raised across the resumake packages
// and the exit-code machinery used by the CLI boundary.
//
// Every failure surfaced to the user belongs to one of four kinds:
//   - ValidationError: invalid user input (empty title, missing field)
//   - IndexError: out-of-range section/item reference
//   - ParseError: malformed persisted file or legacy import
//   - TemplateError: template references an unknown field
//
// None are fatal to the process — the in-memory document remains valid
// after any failed operation.
package model

import (
	"errors"
	"fmt"
)

// ValidationError reports invalid user input, such as an empty section
// title, a duplicate title, a missing required item field, or a field
// value that fails its format check.
type ValidationError struct {
	// Field names the offending field or attribute, when known.
	Field string

	// Message is the human-readable description.
	Message string
}

// Error satisfies the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NewValidationError creates a ValidationError for the given field.
// An empty field is allowed for document-level complaints.
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IndexError reports an out-of-range section or item reference.
type IndexError struct {
	// What names the indexed collection ("section" or "item").
	What string

	// Index is the offending index.
	Index int

	// Length is the length of the collection at the time of the access.
	Length int
}

// Error satisfies the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range (have %d)", e.What, e.Index, e.Length)
}

// ParseError reports a malformed persisted file: invalid YAML/JSON,
// missing required keys, wrong types, or a document that violates the
// model invariants.
type ParseError struct {
	// Message is the human-readable description.
	Message string

	// Err is the underlying decode error, if any.
	Err error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// TemplateError reports a template that could not be parsed or that
// references a field absent from the document being rendered.
type TemplateError struct {
	// Message is the human-readable description.
	Message string

	// Err is the underlying template engine error, if any.
	Err error
}

// Error satisfies the error interface.
func (e *TemplateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *TemplateError) Unwrap() error {
	return e.Err
}

// ExitCode defines standard CLI exit codes. These codes allow scripts
// and CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitValidation indicates the user supplied invalid input
	// (empty title, missing required field, bad field format).
	ExitValidation ExitCode = 2

	// ExitIndex indicates an out-of-range section or item reference.
	ExitIndex ExitCode = 3

	// ExitParse indicates the resume file (or a legacy import) is malformed.
	ExitParse ExitCode = 4

	// ExitTemplate indicates the export template referenced an unknown
	// field or failed to parse.
	ExitTemplate ExitCode = 5

	// ExitTeXFailed indicates the TeX toolchain ran but did not produce
	// a PDF (compile error in the rendered source).
	ExitTeXFailed ExitCode = 6

	// ExitDockerNotRunning indicates the Docker daemon is not accessible
	// for the containerized PDF engine.
	ExitDockerNotRunning ExitCode = 7
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// ExitCodeFor maps an error to its CLI exit code. CLIErrors carry their
// own code; the four domain error kinds map to fixed codes; anything
// else is a general error.
func ExitCodeFor(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}

	var (
		valErr  *ValidationError
		idxErr  *IndexError
		parErr  *ParseError
		tmplErr *TemplateError
	)
	switch {
	case errors.As(err, &valErr):
		return ExitValidation
	case errors.As(err, &idxErr):
		return ExitIndex
	case errors.As(err, &parErr):
		return ExitParse
	case errors.As(err, &tmplErr):
		return ExitTemplate
	default:
		return ExitGeneralError
	}
}
