package streetview

import "fmt"

// ValidationError reports malformed or contradictory input. It is always
// raised before any network or filesystem access.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ConflictError reports that a target file already exists. Saved files are
// write-once, so an existing name is rejected rather than overwritten.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: file already exists at %s", e.Path)
}

// UpstreamError reports a non-2xx or malformed response from the capture API.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream: status %d: %s", e.StatusCode, e.Detail)
	}
	return "upstream: " + e.Detail
}

// NetworkError reports a request that never reached upstream, such as a
// timeout or a connection failure.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// FilesystemError reports an unexpected I/O failure, distinct from the
// pre-check existence queries that return ConflictError.
type FilesystemError struct {
	Op  string
	Err error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem: %s: %v", e.Op, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
