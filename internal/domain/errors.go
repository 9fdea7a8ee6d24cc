package domain

import "fmt"

// ConfigurationError indicates a required setting is missing. The remedy
// is for the user to fill in their configuration, so the message names
// the setting.
type ConfigurationError struct {
	// Setting is the configuration key that is missing.
	Setting string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("required setting %q is not configured", e.Setting)
}

// NewConfigurationError creates a ConfigurationError for the given setting.
func NewConfigurationError(setting string) *ConfigurationError {
	return &ConfigurationError{Setting: setting}
}

// ValidationError indicates a user-supplied form field failed validation.
type ValidationError struct {
	// Field is the offending form field.
	Field string

	// Message is the user-facing explanation.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// VcsError indicates an external version-control command failed. Output
// carries the command's captured diagnostic text verbatim; there is no
// retry and no rollback.
type VcsError struct {
	// Op is the git operation that failed, e.g. "checkout" or "pull".
	Op string

	// Output is the command's captured combined output.
	Output string

	// Err is the underlying execution error.
	Err error
}

// Error implements the error interface. The captured output is surfaced
// unmodified since it is the only actionable detail for the user.
func (e *VcsError) Error() string {
	if e.Output != "" {
		return e.Output
	}
	return fmt.Sprintf("git %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying execution error.
func (e *VcsError) Unwrap() error {
	return e.Err
}

// RemoteError indicates the issue summary lookup failed. It is advisory:
// callers must never block branch creation on it.
type RemoteError struct {
	// StatusCode is the HTTP status, or 0 for transport failures.
	StatusCode int

	// Message is the response status text, body excerpt, or failure reason.
	Message string

	// Err is the underlying transport error, if any.
	Err error
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("issue lookup failed: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("issue lookup failed: %s", e.Message)
}

// Unwrap returns the underlying transport error.
func (e *RemoteError) Unwrap() error {
	return e.Err
}
