package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrIO indicates a directory or file could not be read or written.
	ErrIO = errors.New("i/o error")

	// ErrManifest indicates a malformed archetype manifest.
	ErrManifest = errors.New("manifest parse error")

	// ErrNotFound indicates an archetype or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrTemplate indicates a template failed to render.
	ErrTemplate = errors.New("template error")

	// ErrValidation indicates invalid user input (flags, arguments).
	ErrValidation = errors.New("validation error")

	// ErrConflict indicates an output file already exists and overwriting was disabled.
	ErrConflict = errors.New("conflict")
)
