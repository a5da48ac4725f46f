package model

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies domain errors by how callers should react to them.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidArgument
	KindNotFound
	KindConflict
	KindStoreUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	case KindStoreUnavailable:
		return "StoreUnavailable"
	default:
		return "Unknown"
	}
}

// Error codes
const (
	CodeInvalidArgument    = "INVALID_ARGUMENT"
	CodeRestaurantNotFound = "RESTAURANT_NOT_FOUND"
	CodeNameTaken          = "RESTAURANT_NAME_TAKEN"
	CodeStoreUnavailable   = "STORE_UNAVAILABLE"
)

// RestaurantError is the base error of the restaurant domain.
type RestaurantError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *RestaurantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *RestaurantError) Unwrap() error {
	return e.Err
}

// Is matches any RestaurantError carrying the same code, so factory-built
// errors compare equal to the sentinels below with errors.Is.
func (e *RestaurantError) Is(target error) bool {
	var t *RestaurantError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

var (
	ErrInvalidArgument = &RestaurantError{
		Kind:    KindInvalidArgument,
		Code:    CodeInvalidArgument,
		Message: "invalid argument",
	}

	ErrRestaurantNotFound = &RestaurantError{
		Kind:    KindNotFound,
		Code:    CodeRestaurantNotFound,
		Message: "restaurant not found",
	}

	ErrNameTaken = &RestaurantError{
		Kind:    KindConflict,
		Code:    CodeNameTaken,
		Message: "a restaurant with this name already exists",
	}

	ErrStoreUnavailable = &RestaurantError{
		Kind:    KindStoreUnavailable,
		Code:    CodeStoreUnavailable,
		Message: "record store unavailable",
	}
)

// NewInvalidArgument wraps a validation failure.
func NewInvalidArgument(message string, err error) *RestaurantError {
	return &RestaurantError{
		Kind:    KindInvalidArgument,
		Code:    CodeInvalidArgument,
		Message: message,
		Err:     err,
	}
}

func NewRestaurantNotFound(id string) *RestaurantError {
	return &RestaurantError{
		Kind:    KindNotFound,
		Code:    CodeRestaurantNotFound,
		Message: fmt.Sprintf("restaurant %q not found", id),
	}
}

func NewNameTaken(name string) *RestaurantError {
	return &RestaurantError{
		Kind:    KindConflict,
		Code:    CodeNameTaken,
		Message: ErrNameTaken.Message,
		Err:     fmt.Errorf("name %q", name),
	}
}

// NewStoreUnavailable wraps a failure of the backing record store.
func NewStoreUnavailable(op string, err error) *RestaurantError {
	return &RestaurantError{
		Kind:    KindStoreUnavailable,
		Code:    CodeStoreUnavailable,
		Message: fmt.Sprintf("record store unavailable during %s", op),
		Err:     err,
	}
}

// KindOf returns the kind of a domain error, or KindUnknown.
func KindOf(err error) ErrorKind {
	var rErr *RestaurantError
	if errors.As(err, &rErr) {
		return rErr.Kind
	}
	return KindUnknown
}

// GetErrorResponse maps an error to status code, client message and code.
func GetErrorResponse(err error) (statusCode int, message string, code string) {
	var rErr *RestaurantError
	if !errors.As(err, &rErr) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}

	switch rErr.Kind {
	case KindInvalidArgument:
		message = rErr.Message
		if rErr.Err != nil {
			message = fmt.Sprintf("%s: %v", rErr.Message, rErr.Err)
		}
		return http.StatusBadRequest, message, rErr.Code
	case KindNotFound:
		return http.StatusNotFound, rErr.Message, rErr.Code
	case KindConflict:
		return http.StatusConflict, rErr.Message, rErr.Code
	case KindStoreUnavailable:
		return http.StatusServiceUnavailable, "Service temporarily unavailable", rErr.Code
	default:
		return http.StatusInternalServerError, "Internal server error", rErr.Code
	}
}
