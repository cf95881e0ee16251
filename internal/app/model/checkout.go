package model

type CheckoutState string

const (
	StateBrowsing               CheckoutState = "browsing"
	StateCollectingCustomerInfo CheckoutState = "collecting_customer_info"
	StateCollectingPaymentInfo  CheckoutState = "collecting_payment_info"
	StateReviewingCheckout      CheckoutState = "reviewing_checkout"
)

// CustomerInfo is collected once per order and discarded after confirmation.
type CustomerInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// PaymentInfo gates order placement. It is validated, held for the duration
// of the checkout, and discarded; it is never persisted or transmitted.
type PaymentInfo struct {
	CardholderName string `json:"cardholder_name"`
	CardNumber     string `json:"card_number"`
	CVV            string `json:"cvv"` // 3 or 4 digits
	Expiration     string `json:"expiration"`
}

// Session owns all mutable state for one ordering session: the cart, the
// checkout position, and any staged customer/payment data. The presentation
// layer holds a reference and mutates it only through the services.
type Session struct {
	Cart     Cart
	Customer *CustomerInfo
	Payment  *PaymentInfo
	State    CheckoutState
}

func NewSession() *Session {
	return &Session{State: StateBrowsing}
}

// Reset returns the session to a fresh browsing state. Used after a confirmed
// order; the cleared cart is not recoverable.
func (s *Session) Reset() {
	s.Cart.Clear()
	s.Customer = nil
	s.Payment = nil
	s.State = StateBrowsing
}
