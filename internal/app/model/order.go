package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the immutable snapshot produced when a checkout is confirmed.
// It is derived state: nothing holds onto it after the receipt is shown.
type Order struct {
	Number   int             `json:"number"`
	Lines    []CartLine      `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	PlacedAt time.Time       `json:"placed_at"`
}
