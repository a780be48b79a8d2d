package errors

import (
	"errors"
	"net/http"
)

// Sentinel errors for the auth flow. Message text is part of the API contract
// and mirrors the responses clients already depend on.
var (
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrUnauthorizedRole is returned when logging in with a role the user does not hold.
	ErrUnauthorizedRole = errors.New("Access denied: Unauthorized role")
	// ErrUnauthorizedStaffRole is returned when a staff login declares the wrong sub-role.
	ErrUnauthorizedStaffRole = errors.New("Access denied: Unauthorized staff role")
	// ErrUserNotFound is returned when a password reset targets an unknown email.
	ErrUserNotFound = errors.New("User with this email does not exist")
	// ErrInvalidOrExpiredOTP is returned when no matching, unexpired code exists.
	ErrInvalidOrExpiredOTP = errors.New("Invalid or expired OTP")
	// ErrOTPNotVerified is returned when changing a password without a verified code.
	ErrOTPNotVerified = errors.New("OTP not verified or expired")
)

// Sentinel errors for the property catalog and location registry.
var (
	// ErrInvalidPropertyType is returned when the property type is not in the enumeration.
	ErrInvalidPropertyType = errors.New("Invalid property type")
	// ErrInvalidTransactionType is returned when the transaction type is not in the enumeration.
	ErrInvalidTransactionType = errors.New("Invalid transaction type")
	// ErrNoImages is returned when a property is created without any uploaded images.
	ErrNoImages = errors.New("At least one image is required")
	// ErrLocationNotFound is returned when a referenced location does not exist.
	ErrLocationNotFound = errors.New("Location not found")
	// ErrPropertyNotFound is returned when the requested property does not exist.
	ErrPropertyNotFound = errors.New("Property not found")
	// ErrInvalidRole is returned when a registration carries an unknown role.
	ErrInvalidRole = errors.New("Invalid role")
	// ErrInvalidStaffRole is returned when a registration carries an unknown staff role.
	ErrInvalidStaffRole = errors.New("Invalid staff role")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Matching uses errors.Is so
// services may wrap a sentinel to name the offending value.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnauthorizedRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNAUTHORIZED_ROLE")
	case errors.Is(err, ErrUnauthorizedStaffRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNAUTHORIZED_STAFF_ROLE")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidOrExpiredOTP):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_OTP")
	case errors.Is(err, ErrOTPNotVerified):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "OTP_NOT_VERIFIED")
	case errors.Is(err, ErrInvalidPropertyType):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PROPERTY_TYPE")
	case errors.Is(err, ErrInvalidTransactionType):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_TRANSACTION_TYPE")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrInvalidStaffRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STAFF_ROLE")
	case errors.Is(err, ErrNoImages):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_IMAGES")
	case errors.Is(err, ErrLocationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "LOCATION_NOT_FOUND")
	case errors.Is(err, ErrPropertyNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROPERTY_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
