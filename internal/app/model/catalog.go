package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SizeRegular is the size recorded on cart lines for items without a size table.
const SizeRegular = "Regular"

// MenuItem is one orderable item. Exactly one of FlatPrice or Sizes is set:
// flat-priced items carry no size table, sized items price by size name.
// NewFlatItem / NewSizedItem keep that invariant; Catalog.Validate enforces it
// for catalogs decoded from files.
type MenuItem struct {
	Name      string                     `json:"name"`
	FlatPrice *decimal.Decimal           `json:"flat_price,omitempty"`
	Sizes     map[string]decimal.Decimal `json:"sizes,omitempty"`
}

func NewFlatItem(name string, price decimal.Decimal) MenuItem {
	return MenuItem{Name: name, FlatPrice: &price}
}

func NewSizedItem(name string, sizes map[string]decimal.Decimal) MenuItem {
	return MenuItem{Name: name, Sizes: sizes}
}

// Sized reports whether the item prices by size.
func (m MenuItem) Sized() bool {
	return len(m.Sizes) > 0
}

// BasePrice resolves the base price for the given size. For flat-priced items
// the size must be empty or SizeRegular. ok is false for an unknown size.
func (m MenuItem) BasePrice(size string) (decimal.Decimal, bool) {
	if m.Sized() {
		price, found := m.Sizes[size]
		return price, found
	}
	if size != "" && size != SizeRegular {
		return decimal.Decimal{}, false
	}
	if m.FlatPrice == nil {
		return decimal.Decimal{}, false
	}
	return *m.FlatPrice, true
}

// AddOn is an extra that can be added to a line for a data-driven price.
type AddOn struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Category is an ordered group of menu items. AllowAddOns marks categories
// whose items are offered the add-on selection.
type Category struct {
	Name        string     `json:"name"`
	AllowAddOns bool       `json:"allow_add_ons,omitempty"`
	Items       []MenuItem `json:"items"`
}

// Catalog is the static table of categories, items and add-ons.
type Catalog struct {
	Categories []Category `json:"categories"`
	AddOns     []AddOn    `json:"add_ons"`
}

// Validate checks the catalog invariants: item names unique across all
// categories, exactly one pricing mode per item, non-negative prices, and
// unique add-on names.
func (c *Catalog) Validate() error {
	itemNames := make(map[string]bool)
	for _, category := range c.Categories {
		if category.Name == "" {
			return fmt.Errorf("category with empty name")
		}
		for _, item := range category.Items {
			if item.Name == "" {
				return fmt.Errorf("category %q: item with empty name", category.Name)
			}
			if itemNames[item.Name] {
				return fmt.Errorf("duplicate item name %q", item.Name)
			}
			itemNames[item.Name] = true

			hasFlat := item.FlatPrice != nil
			hasSizes := len(item.Sizes) > 0
			if hasFlat == hasSizes {
				return fmt.Errorf("item %q: must have exactly one of flat_price or sizes", item.Name)
			}
			if hasFlat && item.FlatPrice.IsNegative() {
				return fmt.Errorf("item %q: negative price", item.Name)
			}
			for size, price := range item.Sizes {
				if size == "" {
					return fmt.Errorf("item %q: empty size name", item.Name)
				}
				if price.IsNegative() {
					return fmt.Errorf("item %q: negative price for size %q", item.Name, size)
				}
			}
		}
	}

	addOnNames := make(map[string]bool)
	for _, addOn := range c.AddOns {
		if addOn.Name == "" {
			return fmt.Errorf("add-on with empty name")
		}
		if addOnNames[addOn.Name] {
			return fmt.Errorf("duplicate add-on name %q", addOn.Name)
		}
		addOnNames[addOn.Name] = true
		if addOn.Price.IsNegative() {
			return fmt.Errorf("add-on %q: negative price", addOn.Name)
		}
	}

	return nil
}
