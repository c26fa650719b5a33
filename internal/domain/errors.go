package domain

// ErrorCode classifies a failed request.
type ErrorCode string

const (
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrorCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	ErrorCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// ErrorDescriptor is the body of every error response.
type ErrorDescriptor struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// NewError builds an ErrorDescriptor with empty details.
func NewError(code ErrorCode, message string) ErrorDescriptor {
	return ErrorDescriptor{
		Code:    code,
		Message: message,
		Details: map[string]any{},
	}
}
