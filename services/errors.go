package services

import "fmt"

// ValidationError covers missing/invalid required fields, bad date formats
// and invalid enum values. Handlers map it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError means an id did not resolve to a row, or an update/delete
// matched zero rows. Handlers map it to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ReferenceError reports a foreign key pointing at a row that does not exist.
// The probe runs before the mutating statement, so nothing is written.
type ReferenceError struct {
	Field   string
	Message string
}

func (e *ReferenceError) Error() string {
	return e.Message
}

// ConstraintError surfaces a backend rejection of a write, e.g. a uniqueness
// violation, with the underlying driver message.
type ConstraintError struct {
	Err error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint violation: %v", e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// UpstreamError reports a failure talking to the external generation service.
// StatusCode is the upstream HTTP status when one was received, 0 otherwise.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// ExtractionError reports a failure converting document bytes to text
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from document: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
