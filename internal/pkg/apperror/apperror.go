package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure into the handler's error taxonomy. Every error
// that crosses the service boundary carries exactly one Kind; raw adapter
// errors never escape unclassified.
type Kind string

const (
	KindValidation            Kind = "VALIDATION_ERROR"
	KindStoreUnavailable      Kind = "STORE_UNAVAILABLE"
	KindRetrievalUnavailable  Kind = "RETRIEVAL_UNAVAILABLE"
	KindGenerationUnavailable Kind = "GENERATION_UNAVAILABLE"
	KindPersistence           Kind = "PERSISTENCE_FAILURE"
)

type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *AppError {
	return &AppError{Kind: kind, Message: message, Cause: cause}
}

// KindOf extracts the taxonomy kind from an error chain. Unclassified
// errors report an empty Kind.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// StatusCode maps a kind onto its HTTP-equivalent status.
func StatusCode(kind Kind) int {
	switch kind {
	case KindValidation:
		return 400
	case KindStoreUnavailable, KindRetrievalUnavailable:
		return 503
	case KindGenerationUnavailable:
		return 502
	default:
		return 500
	}
}
