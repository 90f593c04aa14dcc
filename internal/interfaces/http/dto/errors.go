package dto

import "net/http"

// Domain error codes surfaced over the wire
const (
	// ErrCodeValidation is used for missing or malformed input
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeInvalidCredentials is used when email/password auth fails.
	// Deliberately uninformative about which factor was wrong.
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	// ErrCodeInvalidOTP is used when a verification code does not match
	ErrCodeInvalidOTP = "INVALID_OTP"
	// ErrCodeAlreadyExists is used when a unique key is already taken
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeDispatchFailed is used when an outbound email cannot be sent
	ErrCodeDispatchFailed = "DISPATCH_FAILED"
	// ErrCodePersistenceFailed is used when a storage operation fails
	ErrCodePersistenceFailed = "PERSISTENCE_FAILED"
	// ErrCodeInternal is used for everything else
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeInvalidOTP:         http.StatusUnauthorized,
	ErrCodeAlreadyExists:      http.StatusConflict,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeDispatchFailed:     http.StatusInternalServerError,
	ErrCodePersistenceFailed:  http.StatusInternalServerError,
	ErrCodeInternal:           http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code.
// Unknown codes collapse to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
