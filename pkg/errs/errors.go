package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	ErrStatusInternalServer         = http.StatusInternalServerError
	ErrStatusClient                 = http.StatusBadRequest
	ErrStatusNotLoggedIn            = http.StatusUnauthorized
	ErrStatusNoPermission           = http.StatusForbidden
	ErrStatusUnauthorized           = http.StatusUnauthorized
	ErrStatusNotFound               = http.StatusNotFound
	ErrStatusFileSizeExceedingLimit = http.StatusRequestEntityTooLarge
	ErrStatusConflict               = http.StatusConflict
	ErrStatusMethodNotAllowed       = http.StatusMethodNotAllowed
	ErrBadGatewayStatus             = http.StatusBadGateway
)

var (
	ErrInternalServer        = errors.New("Internal server error")
	ErrClient                = errors.New("Bad request")
	ErrNotLoggedIn           = errors.New("Unauthorized access")
	ErrInvalidCredentials    = errors.New("Email or password is incorrect")
	ErrUnauthorized          = errors.New("Forbidden access")
	ErrNotFound              = errors.New("Resource not found")
	ErrSessionExpired        = errors.New("Session has expired, please log in again")
	ErrNotAnImage            = errors.New("Uploaded file is not an image")
	ErrFileTooLarge          = errors.New("File size exceeds the upload limit")
	ErrConflict              = errors.New("Conflicting record found")
	ErrEmptyCart             = errors.New("Cart is empty")
	ErrConfirmationRequired  = errors.New("Deletion must be confirmed")
	ErrNotSupported          = errors.New("Operation is not supported for this resource")
	ErrNotEditing            = errors.New("No entity is being edited")
	ErrBadGateway            = errors.New("Backend is unavailable")
	ErrInvalidOrderStatus    = errors.New("Invalid order status")
	ErrImageHostUnconfigured = errors.New("Image host is not configured")
)

var errorMap = map[error]int{
	ErrInternalServer:        ErrStatusInternalServer,
	ErrInvalidCredentials:    ErrStatusUnauthorized,
	ErrNotLoggedIn:           ErrStatusNotLoggedIn,
	ErrUnauthorized:          ErrStatusNoPermission,
	ErrClient:                ErrStatusClient,
	ErrNotFound:              ErrStatusNotFound,
	ErrSessionExpired:        ErrStatusUnauthorized,
	ErrNotAnImage:            ErrStatusClient,
	ErrFileTooLarge:          ErrStatusFileSizeExceedingLimit,
	ErrConflict:              ErrStatusConflict,
	ErrEmptyCart:             ErrStatusClient,
	ErrConfirmationRequired:  ErrStatusClient,
	ErrNotSupported:          ErrStatusMethodNotAllowed,
	ErrNotEditing:            ErrStatusConflict,
	ErrBadGateway:            ErrBadGatewayStatus,
	ErrInvalidOrderStatus:    ErrStatusClient,
	ErrImageHostUnconfigured: ErrStatusInternalServer,
}

// StatusCoder is implemented by errors that carry their own HTTP status,
// such as errors relayed from the backend.
type StatusCoder interface {
	StatusCode() int
}

// ValidationError lists the fields that failed validation before any request was made.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrClient
}

func NewValidationError(fields ...string) error {
	return &ValidationError{Fields: fields}
}

func GetErrorStatusCode(err error) int {
	if errStatusCode, ok := errorMap[err]; ok {
		return errStatusCode
	}

	var coder StatusCoder
	if errors.As(err, &coder) {
		if code := coder.StatusCode(); code >= 400 && code < 500 {
			return code
		}
		return ErrBadGatewayStatus
	}

	for sentinel, code := range errorMap {
		if errors.Is(err, sentinel) {
			return code
		}
	}

	return errorMap[ErrInternalServer]
}
