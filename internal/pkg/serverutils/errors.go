package serverutils

import "fmt"

// Error kinds surfaced to HTTP clients.
const (
	KindInvalidQuery     = "INVALID_QUERY"
	KindInvalidSelection = "INVALID_SELECTION"
	KindIndexUnavailable = "INDEX_UNAVAILABLE"
	KindValidation       = "VALIDATION_ERROR"
	KindNotFound         = "NOT_FOUND"
)

// AppError is a domain error with a stable kind code that the error handler
// middleware maps to an HTTP status.
type AppError struct {
	Kind    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewInvalidQueryError(message string) *AppError {
	return &AppError{Kind: KindInvalidQuery, Message: message}
}

func NewInvalidSelectionError(message string) *AppError {
	return &AppError{Kind: KindInvalidSelection, Message: message}
}

// NewIndexUnavailableError wraps a failure from the embedding or vector
// index collaborator. Not retried locally.
func NewIndexUnavailableError(err error) *AppError {
	return &AppError{Kind: KindIndexUnavailable, Message: "search index unavailable", Err: err}
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}
