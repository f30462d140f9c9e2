package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound         = new(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists    = new(ErrCodeAlreadyExists, "resource already exists")
	ErrValidation       = new(ErrCodeValidation, "validation error")
	ErrInvalidOperation = new(ErrCodeInvalidOperation, "invalid operation")
	ErrSystem           = new(ErrCodeSystemError, "system error")

	// Cart engine error kinds. Every failure raised by the cart engine is a
	// precondition violation and maps to exactly one of these.
	ErrCartAlreadyExists    = new(ErrCodeCartAlreadyExists, "cart already exists")
	ErrCartAlreadyDestroyed = new(ErrCodeCartAlreadyDestroyed, "cart already destroyed")
	ErrProductNotFound      = new(ErrCodeProductNotFound, "product not found")
	ErrProductNotInCart     = new(ErrCodeProductNotInCart, "product not in cart")
	ErrVoucherNotFound      = new(ErrCodeVoucherNotFound, "voucher not found")
	ErrDuplicateProductID   = new(ErrCodeDuplicateProductID, "duplicate product id")

	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrNotFound:             http.StatusNotFound,
		ErrAlreadyExists:        http.StatusConflict,
		ErrValidation:           http.StatusBadRequest,
		ErrInvalidOperation:     http.StatusBadRequest,
		ErrSystem:               http.StatusInternalServerError,
		ErrCartAlreadyExists:    http.StatusConflict,
		ErrCartAlreadyDestroyed: http.StatusConflict,
		ErrProductNotFound:      http.StatusNotFound,
		ErrProductNotInCart:     http.StatusNotFound,
		ErrVoucherNotFound:      http.StatusNotFound,
		ErrDuplicateProductID:   http.StatusConflict,
	}
)

const (
	ErrCodeSystemError      = "system_error"
	ErrCodeNotFound         = "not_found"
	ErrCodeAlreadyExists    = "already_exists"
	ErrCodeValidation       = "validation_error"
	ErrCodeInvalidOperation = "invalid_operation"

	ErrCodeCartAlreadyExists    = "cart_already_exists"
	ErrCodeCartAlreadyDestroyed = "cart_already_destroyed"
	ErrCodeProductNotFound      = "product_not_found"
	ErrCodeProductNotInCart     = "product_not_in_cart"
	ErrCodeVoucherNotFound      = "voucher_not_found"
	ErrCodeDuplicateProductID   = "duplicate_product_id"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

// new creates a new InternalError
func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidOperation checks if an error is an invalid operation error
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

// IsCartAlreadyExists checks if an error is a cart already exists error
func IsCartAlreadyExists(err error) bool {
	return errors.Is(err, ErrCartAlreadyExists)
}

// IsCartAlreadyDestroyed checks if an error is a cart already destroyed error
func IsCartAlreadyDestroyed(err error) bool {
	return errors.Is(err, ErrCartAlreadyDestroyed)
}

// IsProductNotFound checks if an error is a product not found error
func IsProductNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound)
}

// IsProductNotInCart checks if an error is a product not in cart error
func IsProductNotInCart(err error) bool {
	return errors.Is(err, ErrProductNotInCart)
}

// IsVoucherNotFound checks if an error is a voucher not found error
func IsVoucherNotFound(err error) bool {
	return errors.Is(err, ErrVoucherNotFound)
}

// IsDuplicateProductID checks if an error is a duplicate product id error
func IsDuplicateProductID(err error) bool {
	return errors.Is(err, ErrDuplicateProductID)
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}
