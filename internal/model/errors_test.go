package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExitCodeFor verifies the error-kind to exit-code mapping used by
// the CLI boundary, including wrapped errors.
func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ExitCode
	}{
		{"nil", nil, ExitSuccess},
		{"validation", NewValidationError("title", "empty"), ExitValidation},
		{"index", &IndexError{What: "section", Index: 3, Length: 1}, ExitIndex},
		{"parse", &ParseError{Message: "bad yaml"}, ExitParse},
		{"template", &TemplateError{Message: "unknown field"}, ExitTemplate},
		{"cli error keeps its code", NewCLIError(ExitTeXFailed, "boom"), ExitTeXFailed},
		{"wrapped validation", fmt.Errorf("context: %w", NewValidationError("kind", "bad")), ExitValidation},
		{"plain error", errors.New("oops"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCodeFor(tt.err))
		})
	}
}

// TestCLIError_Unwrap verifies errors.Is/As reach the wrapped error.
func TestCLIError_Unwrap(t *testing.T) {
	inner := &ParseError{Message: "bad"}
	wrapped := WrapCLIError(ExitParse, "load failed", inner)

	var parseErr *ParseError
	assert.ErrorAs(t, wrapped, &parseErr)
	assert.Contains(t, wrapped.Error(), "load failed")
	assert.Contains(t, wrapped.Error(), "bad")
}

// TestErrorMessages spot-checks the human-readable formats.
func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "invalid title: must not be empty",
		NewValidationError("title", "must not be empty").Error())
	assert.Equal(t, "section index 5 out of range (have 2)",
		(&IndexError{What: "section", Index: 5, Length: 2}).Error())
}
