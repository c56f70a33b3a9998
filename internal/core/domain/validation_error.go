package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports every diagnostic produced by one failed semantic
// validation. The formatted message is for operators; callers needing
// structured data read Diagnostics directly instead of parsing the message.
type ValidationError struct {
	// SourcePath is the resolved path of the config file that failed.
	SourcePath string
	// Diagnostics is the raw diagnostic list, in the order the validator emitted it.
	Diagnostics []Diagnostic
}

// NewValidationError creates a ValidationError for the given file and diagnostics.
func NewValidationError(sourcePath string, diags []Diagnostic) *ValidationError {
	return &ValidationError{SourcePath: sourcePath, Diagnostics: diags}
}

// Error formats all diagnostics into a single multi-line message.
func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", ErrConfigValidation.Error(), e.SourcePath)
	for _, d := range e.Diagnostics {
		b.WriteString("\n  ")
		b.WriteString(d.Code)
		b.WriteString(": ")
		b.WriteString(d.Message)
	}
	return b.String()
}

// Unwrap makes the error matchable against ErrConfigValidation via errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrConfigValidation
}
