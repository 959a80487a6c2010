package schema

import (
	"errors"
	"fmt"
	"time"
)

// ValidationReason identifies why a prompt was rejected before analysis.
type ValidationReason string

const (
	InvalidType      ValidationReason = "invalid_type"
	EmptyPrompt      ValidationReason = "empty_prompt"
	TooShort         ValidationReason = "too_short"
	TooLong          ValidationReason = "too_long"
	ForbiddenContent ValidationReason = "forbidden_content"
)

// ValidationError rejects a request before any completion call is made.
// It is always user-caused and never retried.
type ValidationError struct {
	Reason  ValidationReason
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(reason ValidationReason, format string, v ...any) *ValidationError {
	return &ValidationError{Reason: reason, Message: fmt.Sprintf(format, v...)}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// RateLimitError tells the caller when it may try again.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter.Round(time.Second))
}

// ErrNotImplemented marks surfaces that exist but are not wired to a real
// backend yet, such as TikTok publishing.
var ErrNotImplemented = errors.New("not implemented")
