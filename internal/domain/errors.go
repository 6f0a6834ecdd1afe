package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeInternalError = "INTERNAL_ERROR"

	// External model-API failure sub-kinds. Rate-limit and quota map to 429
	// at the HTTP boundary, the rest to 500.
	ErrCodeRateLimited         = "RATE_LIMITED"
	ErrCodeQuotaExceeded       = "QUOTA_EXCEEDED"
	ErrCodeAuthFailed          = "AUTH_FAILED"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeExternalError       = "EXTERNAL_ERROR"
)

// Validation errors
var (
	ErrMessageRequired = NewDomainError(ErrCodeValidation, "message and mode are required")
	ErrMessageTooLong  = NewDomainError(ErrCodeValidation, "message too long, keep it under 1000 characters")
	ErrInvalidMode     = NewDomainError(ErrCodeValidation, "invalid assistant mode")
	ErrInvalidRating   = NewDomainError(ErrCodeValidation, "rating must be between 1 and 5")
	ErrMissingField    = NewDomainError(ErrCodeValidation, "missing required field")
)

// Not found errors
var (
	ErrChatNotFound     = NewDomainError(ErrCodeNotFound, "chat not found")
	ErrBlogNotFound     = NewDomainError(ErrCodeNotFound, "blog not found")
	ErrReviewNotFound   = NewDomainError(ErrCodeNotFound, "review not found")
	ErrCommentNotFound  = NewDomainError(ErrCodeNotFound, "comment not found")
	ErrTagNotFound      = NewDomainError(ErrCodeNotFound, "tag not found")
	ErrCategoryNotFound = NewDomainError(ErrCodeNotFound, "category not found")
)

// Already exists errors
var (
	ErrTagAlreadyExists      = NewDomainError(ErrCodeAlreadyExists, "tag already exists")
	ErrCategoryAlreadyExists = NewDomainError(ErrCodeAlreadyExists, "category already exists")
)

// External model-API errors
var (
	ErrModelRateLimited = NewDomainError(ErrCodeRateLimited, "model API rate limit exceeded, try again later")
	ErrModelQuota       = NewDomainError(ErrCodeQuotaExceeded, "model API quota exceeded, try again later or upgrade the plan")
	ErrModelAuthFailed  = NewDomainError(ErrCodeAuthFailed, "model API authentication failed")
	ErrModelUnavailable = NewDomainError(ErrCodeUpstreamUnavailable, "model API is unavailable")
	ErrModelCallFailed  = NewDomainError(ErrCodeExternalError, "model response generation failed")
)
