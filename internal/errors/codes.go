package errors

// Error code constants returned to the presentation layer.
// Format: CATEGORY_SPECIFIC_DETAIL. Screens map these to display copy.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationMissingField      = "VALIDATION_MISSING_FIELD"      // required field empty after trimming
	ValidationInvalidPhone      = "VALIDATION_INVALID_PHONE"      // phone not exactly 10 digits
	ValidationInvalidEmail      = "VALIDATION_INVALID_EMAIL"      // malformed email address
	ValidationInvalidCardNumber = "VALIDATION_INVALID_CARD"       // card number not 16 digits
	ValidationInvalidCVV        = "VALIDATION_INVALID_CVV"        // cvv not 3-4 digits
	ValidationInvalidExpiration = "VALIDATION_INVALID_EXPIRATION" // not MM/YYYY
	ValidationCardExpired       = "VALIDATION_CARD_EXPIRED"       // expiration before current month

	// ==================== Catalog (CATALOG_) ====================
	CatalogCategoryNotFound = "CATALOG_CATEGORY_NOT_FOUND" // unknown category
	CatalogItemNotFound     = "CATALOG_ITEM_NOT_FOUND"     // unknown menu item

	// ==================== Cart (CART_) ====================
	CartInvalidSize     = "CART_INVALID_SIZE"     // size not offered for item
	CartInvalidAddOn    = "CART_INVALID_ADDON"    // add-on not in catalog
	CartInvalidQuantity = "CART_INVALID_QUANTITY" // quantity below 1
	CartLineNotFound    = "CART_LINE_NOT_FOUND"   // unknown line reference
	CartEmpty           = "CART_EMPTY"            // operation needs a non-empty cart

	// ==================== Checkout (CHECKOUT_) ====================
	CheckoutInvalidState = "CHECKOUT_INVALID_STATE" // submission out of flow order

	// ==================== Internal (INTERNAL_) ====================
	InternalError = "INTERNAL_ERROR" // anything unexpected
)
