package service

import (
	"errors"
	"strings"
	"time"

	"github.com/mamakabowls/pos/internal/app/model"
	"github.com/mamakabowls/pos/pkg/logger"
	"github.com/mamakabowls/pos/pkg/util"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidState      = errors.New("operation not allowed in current checkout state")
	ErrMissingField      = errors.New("required field is missing")
	ErrInvalidPhone      = errors.New("phone must be exactly 10 digits")
	ErrInvalidEmail      = errors.New("email address is not valid")
	ErrInvalidCardNumber = errors.New("card number must be exactly 16 digits")
	ErrInvalidCVV        = errors.New("cvv must be 3 or 4 digits")
	ErrInvalidExpiration = errors.New("expiration must be MM/YYYY")
	ErrExpiredCard       = errors.New("card expiration date is in the past")
)

// CheckoutService drives the linear checkout flow:
// browsing -> customer info -> payment info -> review -> confirmed.
// Validation failures never change the session state.
type CheckoutService interface {
	StartCheckout(session *model.Session) error
	SubmitCustomerInfo(session *model.Session, input model.CustomerInfo) (*model.CustomerInfo, error)
	SubmitPaymentInfo(session *model.Session, input model.PaymentInfo) (*model.PaymentInfo, error)
	// Abort returns to browsing from any point before confirmation. The cart
	// is preserved; staged customer and payment data are discarded.
	Abort(session *model.Session)
	// PlaceOrder snapshots the cart with totals and a fresh order number,
	// then irreversibly resets the session.
	PlaceOrder(session *model.Session) (*model.Order, error)
}

type checkoutService struct {
	cartService CartService
	now         func() time.Time
}

// NewCheckoutService builds the checkout flow over the given cart service.
// A nil now falls back to time.Now.
func NewCheckoutService(cartService CartService, now func() time.Time) CheckoutService {
	if now == nil {
		now = time.Now
	}
	return &checkoutService{
		cartService: cartService,
		now:         now,
	}
}

func (s *checkoutService) StartCheckout(session *model.Session) error {
	if session.State != model.StateBrowsing {
		logger.Warn("Checkout already in progress", map[string]interface{}{
			"state": session.State,
		})
		return ErrInvalidState
	}
	if session.Cart.IsEmpty() {
		logger.Warn("Cannot start checkout: cart is empty")
		return ErrEmptyCart
	}

	session.State = model.StateCollectingCustomerInfo
	logger.Info("Checkout started", map[string]interface{}{
		"lines": len(session.Cart.Lines),
	})
	return nil
}

func (s *checkoutService) SubmitCustomerInfo(session *model.Session, input model.CustomerInfo) (*model.CustomerInfo, error) {
	if session.State != model.StateCollectingCustomerInfo {
		logger.Warn("Customer info submitted out of order", map[string]interface{}{
			"state": session.State,
		})
		return nil, ErrInvalidState
	}

	info := model.CustomerInfo{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Phone:     strings.TrimSpace(input.Phone),
		Email:     strings.TrimSpace(input.Email),
	}

	if info.FirstName == "" || info.LastName == "" || info.Phone == "" || info.Email == "" {
		logger.Warn("Customer info rejected: missing field")
		return nil, ErrMissingField
	}
	if !util.IsValidPhone(info.Phone) {
		logger.Warn("Customer info rejected: invalid phone")
		return nil, ErrInvalidPhone
	}
	if !util.IsValidEmail(info.Email) {
		logger.Warn("Customer info rejected: invalid email")
		return nil, ErrInvalidEmail
	}

	session.Customer = &info
	session.State = model.StateCollectingPaymentInfo
	logger.Info("Customer info accepted")
	return &info, nil
}

func (s *checkoutService) SubmitPaymentInfo(session *model.Session, input model.PaymentInfo) (*model.PaymentInfo, error) {
	if session.State != model.StateCollectingPaymentInfo {
		logger.Warn("Payment info submitted out of order", map[string]interface{}{
			"state": session.State,
		})
		return nil, ErrInvalidState
	}

	info := model.PaymentInfo{
		CardholderName: strings.TrimSpace(input.CardholderName),
		CardNumber:     strings.TrimSpace(input.CardNumber),
		CVV:            strings.TrimSpace(input.CVV),
		Expiration:     strings.TrimSpace(input.Expiration),
	}

	if info.CardholderName == "" || info.CardNumber == "" || info.CVV == "" || info.Expiration == "" {
		logger.Warn("Payment info rejected: missing field")
		return nil, ErrMissingField
	}
	if !util.IsValidCardNumber(info.CardNumber) {
		logger.Warn("Payment info rejected: invalid card number")
		return nil, ErrInvalidCardNumber
	}
	if !util.IsValidCVV(info.CVV) {
		logger.Warn("Payment info rejected: invalid cvv")
		return nil, ErrInvalidCVV
	}
	month, year, ok := util.ParseExpiration(info.Expiration)
	if !ok {
		logger.Warn("Payment info rejected: invalid expiration format")
		return nil, ErrInvalidExpiration
	}
	if util.IsExpired(month, year, s.now()) {
		logger.Warn("Payment info rejected: card expired", map[string]interface{}{
			"expiration": info.Expiration,
		})
		return nil, ErrExpiredCard
	}

	session.Payment = &info
	session.State = model.StateReviewingCheckout
	logger.Info("Payment info accepted")
	return &info, nil
}

func (s *checkoutService) Abort(session *model.Session) {
	logger.Info("Checkout aborted, returning to browsing", map[string]interface{}{
		"state": session.State,
	})
	session.Customer = nil
	session.Payment = nil
	session.State = model.StateBrowsing
}

func (s *checkoutService) PlaceOrder(session *model.Session) (*model.Order, error) {
	if session.Cart.IsEmpty() {
		logger.Warn("Cannot place order: cart is empty")
		return nil, ErrEmptyCart
	}
	if session.State != model.StateReviewingCheckout {
		logger.Warn("Order placement out of order", map[string]interface{}{
			"state": session.State,
		})
		return nil, ErrInvalidState
	}

	number, err := util.GenerateOrderNumber()
	if err != nil {
		logger.Error("Failed to generate order number", err)
		return nil, err
	}

	lines := make([]model.CartLine, len(session.Cart.Lines))
	copy(lines, session.Cart.Lines)

	subtotal := s.cartService.Subtotal(&session.Cart)
	tax := s.cartService.Tax(subtotal)

	order := &model.Order{
		Number:   number,
		Lines:    lines,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
		PlacedAt: s.now(),
	}

	session.Reset()

	logger.Info("Order placed", map[string]interface{}{
		"order_number": order.Number,
		"lines":        len(order.Lines),
		"total":        order.Total.StringFixed(2),
	})
	return order, nil
}
