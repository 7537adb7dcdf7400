package errors

import "errors"

// Exit codes returned by the aegis binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input or a malformed manifest.
	ExitValidationError = 2

	// ExitTemplateError indicates a template failed to render.
	ExitTemplateError = 3

	// ExitIOError indicates a filesystem read or write failed.
	ExitIOError = 4

	// ExitNotFound indicates an unknown archetype.
	ExitNotFound = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrManifest), errors.Is(err, ErrConflict):
		return ExitValidationError
	case errors.Is(err, ErrTemplate):
		return ExitTemplateError
	case errors.Is(err, ErrIO):
		return ExitIOError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitTemplateError:
		return "Template Error"
	case ExitIOError:
		return "I/O Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
