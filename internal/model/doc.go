// Package model defines the resume document model and its mutation
// operations.
//
// This package contains pure data structures with no external dependencies.
// The Resume tree (Resume → Section → Item) is owned exclusively by the
// interactive session; all operations are synchronous, immediate mutations
// with strong failure safety — a failed operation leaves the tree unchanged.
//
// The package also defines the error kinds raised at the model boundary
// (ValidationError, IndexError, ParseError, TemplateError), exit codes
// (ExitCode) and a custom error type (CLIError) that carries exit codes
// for proper OS process exit handling.
package model
