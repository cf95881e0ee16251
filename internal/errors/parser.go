package errors

import (
	"errors"

	"github.com/mamakabowls/pos/internal/app/service"
)

// ErrorInfo carries the code and display message for one failed operation.
type ErrorInfo struct {
	Code    string
	Message string
}

type mapping struct {
	target  error
	code    string
	message string
}

var mappings = []mapping{
	{service.ErrMissingField, ValidationMissingField, "Please fill in all fields."},
	{service.ErrInvalidPhone, ValidationInvalidPhone, "Phone number must be exactly 10 digits."},
	{service.ErrInvalidEmail, ValidationInvalidEmail, "Please enter a valid email address."},
	{service.ErrInvalidCardNumber, ValidationInvalidCardNumber, "Card number must be 16 digits."},
	{service.ErrInvalidCVV, ValidationInvalidCVV, "CVV must be 3 or 4 digits."},
	{service.ErrInvalidExpiration, ValidationInvalidExpiration, "Expiration date must be MM/YYYY."},
	{service.ErrExpiredCard, ValidationCardExpired, "Card expiration date must be in the future."},
	{service.ErrCategoryNotFound, CatalogCategoryNotFound, "That category is not on the menu."},
	{service.ErrItemNotFound, CatalogItemNotFound, "That item is not on the menu."},
	{service.ErrInvalidSize, CartInvalidSize, "That size is not offered for this item."},
	{service.ErrInvalidAddOn, CartInvalidAddOn, "One of the selected add-ons is not available."},
	{service.ErrInvalidQuantity, CartInvalidQuantity, "Quantity must be at least 1."},
	{service.ErrLineNotFound, CartLineNotFound, "That cart item no longer exists."},
	{service.ErrEmptyCart, CartEmpty, "Your cart is empty."},
	{service.ErrInvalidState, CheckoutInvalidState, "Please complete the previous step first."},
}

// ParseError maps a service error to the code and message shown to the user.
// Anything unrecognized becomes INTERNAL_ERROR.
func ParseError(err error) ErrorInfo {
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return ErrorInfo{Code: m.code, Message: m.message}
		}
	}
	return ErrorInfo{
		Code:    InternalError,
		Message: "Something went wrong. Please try again.",
	}
}
