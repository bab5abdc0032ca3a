package domain

import "fmt"

// Error codes for engine-level failures
const (
	ErrCodeConfig   = "CONFIG_ERROR"
	ErrCodeSession  = "SESSION_ERROR"
	ErrCodeManifest = "MANIFEST_ERROR"
	ErrCodeExport   = "EXPORT_ERROR"
	ErrCodeCatalog  = "CATALOG_ERROR"
)

// DomainError represents an engine-level failure with a stable code
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface
func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e DomainError) Unwrap() error {
	return e.Cause
}

// NewDomainError creates a DomainError with the given code, message and cause
func NewDomainError(code, message string, cause error) DomainError {
	return DomainError{Code: code, Message: message, Cause: cause}
}

// NewConfigError creates a configuration loading error
func NewConfigError(message string, cause error) DomainError {
	return NewDomainError(ErrCodeConfig, message, cause)
}

// NewSessionError creates a session/authentication error
func NewSessionError(message string, cause error) DomainError {
	return NewDomainError(ErrCodeSession, message, cause)
}

// NewManifestError creates a page-dependency manifest error
func NewManifestError(message string, cause error) DomainError {
	return NewDomainError(ErrCodeManifest, message, cause)
}

// NewExportError creates a report export error
func NewExportError(message string, cause error) DomainError {
	return NewDomainError(ErrCodeExport, message, cause)
}
