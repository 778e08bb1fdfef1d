// Package errors defines the error kinds surfaced by the configuration
// pipeline. Every failure carries a Type so that callers can branch on the
// kind of failure without matching on message text.
package errors

import (
	"errors"
	"fmt"
)

// Error types
const (
	// ErrConfigurationDirectoryNotFound is returned when no directory could be
	// resolved by any of the lookup rules
	ErrConfigurationDirectoryNotFound = "configuration_directory_not_found"

	// ErrParse is returned when the configuration file cannot be read or is not
	// a well-formed document
	ErrParse = "parse_error"

	// ErrUnrecognizedSchema is returned when a document still does not use the
	// current root element after migration
	ErrUnrecognizedSchema = "unrecognized_schema"

	// ErrMapping is returned when the document tree cannot be mapped onto the
	// configuration model
	ErrMapping = "mapping_error"

	// ErrHandlerResolution is returned when a dimension cannot resolve its
	// extent handler
	ErrHandlerResolution = "handler_resolution_error"

	// ErrIO is returned when writing the configuration back to disk fails
	ErrIO = "io_error"

	// ErrSchemaViolation is returned in strict mode when the document does not
	// satisfy the bundled schema
	ErrSchemaViolation = "schema_violation"

	// ErrInvalidLayer is returned when a layer handed to a mutating operation
	// violates the layer invariants
	ErrInvalidLayer = "invalid_layer"

	// ErrLayerExists is returned when adding a layer whose name is taken
	ErrLayerExists = "layer_exists"

	// ErrLayerNotFound is returned when modifying or deleting an unknown layer
	ErrLayerNotFound = "layer_not_found"

	// ErrNotLoaded is returned when a mutation is attempted before a
	// configuration has been loaded
	ErrNotLoaded = "not_loaded"
)

// Error represents an error in the application
type Error struct {
	// Type is the error type
	Type string

	// Message is the error message
	Message string

	// Cause is the underlying error
	Cause error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error
func NewError(errorType, message string, cause error) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigurationDirectoryNotFoundError creates a new configuration directory not found error
func NewConfigurationDirectoryNotFoundError(message string, cause error) *Error {
	return NewError(ErrConfigurationDirectoryNotFound, message, cause)
}

// NewParseError creates a new parse error
func NewParseError(message string, cause error) *Error {
	return NewError(ErrParse, message, cause)
}

// NewUnrecognizedSchemaError creates a new unrecognized schema error
func NewUnrecognizedSchemaError(message string, cause error) *Error {
	return NewError(ErrUnrecognizedSchema, message, cause)
}

// NewMappingError creates a new mapping error
func NewMappingError(message string, cause error) *Error {
	return NewError(ErrMapping, message, cause)
}

// NewHandlerResolutionError creates a new handler resolution error
func NewHandlerResolutionError(message string, cause error) *Error {
	return NewError(ErrHandlerResolution, message, cause)
}

// NewIOError creates a new I/O error
func NewIOError(message string, cause error) *Error {
	return NewError(ErrIO, message, cause)
}

// NewSchemaViolationError creates a new schema violation error
func NewSchemaViolationError(message string, cause error) *Error {
	return NewError(ErrSchemaViolation, message, cause)
}

// NewInvalidLayerError creates a new invalid layer error
func NewInvalidLayerError(message string, cause error) *Error {
	return NewError(ErrInvalidLayer, message, cause)
}

// NewLayerExistsError creates a new layer exists error
func NewLayerExistsError(message string, cause error) *Error {
	return NewError(ErrLayerExists, message, cause)
}

// NewLayerNotFoundError creates a new layer not found error
func NewLayerNotFoundError(message string, cause error) *Error {
	return NewError(ErrLayerNotFound, message, cause)
}

// NewNotLoadedError creates a new not loaded error
func NewNotLoadedError(message string, cause error) *Error {
	return NewError(ErrNotLoaded, message, cause)
}

// IsType reports whether err, or any error it wraps, is an *Error of the given type.
func IsType(err error, errorType string) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	if e.Type == errorType {
		return true
	}
	// An *Error may wrap another *Error of a different kind.
	return e.Cause != nil && IsType(e.Cause, errorType)
}

// IsConfigurationDirectoryNotFound checks if the error is a configuration directory not found error
func IsConfigurationDirectoryNotFound(err error) bool {
	return IsType(err, ErrConfigurationDirectoryNotFound)
}

// IsParse checks if the error is a parse error
func IsParse(err error) bool {
	return IsType(err, ErrParse)
}

// IsUnrecognizedSchema checks if the error is an unrecognized schema error
func IsUnrecognizedSchema(err error) bool {
	return IsType(err, ErrUnrecognizedSchema)
}

// IsMapping checks if the error is a mapping error
func IsMapping(err error) bool {
	return IsType(err, ErrMapping)
}

// IsHandlerResolution checks if the error is a handler resolution error
func IsHandlerResolution(err error) bool {
	return IsType(err, ErrHandlerResolution)
}

// IsIO checks if the error is an I/O error
func IsIO(err error) bool {
	return IsType(err, ErrIO)
}

// IsSchemaViolation checks if the error is a schema violation error
func IsSchemaViolation(err error) bool {
	return IsType(err, ErrSchemaViolation)
}

// IsInvalidLayer checks if the error is an invalid layer error
func IsInvalidLayer(err error) bool {
	return IsType(err, ErrInvalidLayer)
}

// IsLayerExists checks if the error is a layer exists error
func IsLayerExists(err error) bool {
	return IsType(err, ErrLayerExists)
}

// IsLayerNotFound checks if the error is a layer not found error
func IsLayerNotFound(err error) bool {
	return IsType(err, ErrLayerNotFound)
}

// IsNotLoaded checks if the error is a not loaded error
func IsNotLoaded(err error) bool {
	return IsType(err, ErrNotLoaded)
}
