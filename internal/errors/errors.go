// Package errors provides sentinel errors, structured error details and exit
// codes for the aegis CLI.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

	// Field is the manifest field for schema errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Kind is the sentinel classifying the error (ErrIO, ErrManifest, ...).
	Kind error

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap exposes both the sentinel kind and the underlying cause, so callers
// can match either with errors.Is / errors.As.
func (e *DetailError) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewIOError creates an I/O error for a failed operation on path.
func NewIOError(op, path string, cause error) error {
	return &DetailError{
		Type:     "i/o failed",
		Message:  op,
		Location: path,
		Kind:     ErrIO,
		Cause:    cause,
	}
}

// NewManifestError creates a manifest parse error naming the offending file.
func NewManifestError(path string, cause error) error {
	return &DetailError{
		Type:     "invalid manifest",
		Message:  "failed to parse manifest",
		Location: path,
		Kind:     ErrManifest,
		Cause:    cause,
	}
}

// NewArchetypeNotFoundError creates a not-found error that enumerates the
// archetypes currently available. listErr is the failure (if any) of the
// listing used to build that help text; it is reported, not raised.
func NewArchetypeNotFoundError(name string, available []string, listErr error) error {
	msg := fmt.Sprintf("Archetype '%s' not found. Available: %s", name, strings.Join(available, ", "))
	hint := "Run 'aegis list' to see every archetype and when to use it."
	if listErr != nil {
		msg = fmt.Sprintf("Archetype '%s' not found. Available archetypes could not be listed", name)
		hint = fmt.Sprintf("Listing archetypes also failed: %v", listErr)
	}
	return &DetailError{
		Type:    "archetype not found",
		Message: msg,
		Context: map[string]string{"Archetype": name},
		Hint:    hint,
		Kind:    ErrNotFound,
	}
}

// NewTemplateError creates a rendering error attributed to a template.
func NewTemplateError(template string, cause error) error {
	return &DetailError{
		Type:     "template rendering failed",
		Message:  "failed to render template",
		Location: template,
		Kind:     ErrTemplate,
		Cause:    cause,
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, field, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Kind:    ErrValidation,
	}
}

// NewConflictError reports an existing output file that must not be overwritten.
func NewConflictError(path string) error {
	return &DetailError{
		Type:     "output exists",
		Message:  "refusing to overwrite existing file",
		Location: path,
		Hint:     "Remove the file or run without --no-clobber.",
		Kind:     ErrConflict,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
