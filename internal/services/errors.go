package services

import (
	"errors"

	"github.com/example/mely/internal/auth"
)

var (
	ErrInvalidQuantity      = errors.New("quantity must be between 1 and the available stock")
	ErrMissingCustomerField = errors.New("customer name, phone and address are required")
	ErrInvalidCategory      = errors.New("unknown category")
	ErrInvalidProduct       = errors.New("invalid product")
	ErrInvalidStatus        = errors.New("unknown order status")
	ErrInvalidWindow        = errors.New("window must be 3, 6 or 12 months")
	ErrInvalidAdmin         = errors.New("invalid admin account")

	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")

	ErrInvalidTransition = errors.New("order status transition not allowed")
	ErrStatusConflict    = errors.New("order status was changed by another request")

	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is auth.ErrUnauthorized, re-exported for callers of this package.
	ErrUnauthorized = auth.ErrUnauthorized
)

// IsValidation reports whether err was caused by bad caller input.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidQuantity,
		ErrMissingCustomerField,
		ErrInvalidCategory,
		ErrInvalidProduct,
		ErrInvalidStatus,
		ErrInvalidWindow,
		ErrInvalidAdmin,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err means the addressed record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrOrderNotFound)
}
