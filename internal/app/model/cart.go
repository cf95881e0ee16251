package model

import (
	"github.com/shopspring/decimal"
)

// CartLine is one orderable unit in the cart. UnitPrice is computed when the
// line is added and never recomputed; changing add-ons means removing the line
// and adding it again.
type CartLine struct {
	ID        string          `json:"id"`
	ItemName  string          `json:"item_name"`
	Size      string          `json:"size"`
	AddOns    []string        `json:"add_ons,omitempty"` // sorted, unique
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LineTotal is unit price times quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// SameSelection reports whether the line is the same item, size and add-on
// set. AddOns are kept sorted, so slice equality is set equality.
func (l CartLine) SameSelection(itemName, size string, addOns []string) bool {
	if l.ItemName != itemName || l.Size != size || len(l.AddOns) != len(addOns) {
		return false
	}
	for i := range l.AddOns {
		if l.AddOns[i] != addOns[i] {
			return false
		}
	}
	return true
}

// Cart holds the session's lines in insertion order.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// FindLine returns a pointer into Lines for the given line ID.
func (c *Cart) FindLine(lineID string) (*CartLine, bool) {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			return &c.Lines[i], true
		}
	}
	return nil, false
}

// FindMatch returns the line with the same item, size and add-on set, if any.
func (c *Cart) FindMatch(itemName, size string, addOns []string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].SameSelection(itemName, size, addOns) {
			return &c.Lines[i]
		}
	}
	return nil
}

// RemoveLine deletes the line with the given ID, preserving order.
func (c *Cart) RemoveLine(lineID string) bool {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.Lines = nil
}
