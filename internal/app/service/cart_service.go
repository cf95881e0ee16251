package service

import (
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/mamakabowls/pos/internal/app/model"
	"github.com/mamakabowls/pos/internal/app/repository"
	"github.com/mamakabowls/pos/pkg/logger"
	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound    = errors.New("menu item not found")
	ErrInvalidSize     = errors.New("invalid size for item")
	ErrInvalidAddOn    = errors.New("invalid add-on")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrLineNotFound    = errors.New("cart line not found")
)

// TaxRate is the fixed sales tax rate (8.25%).
var TaxRate = decimal.RequireFromString("0.0825")

type CartService interface {
	// AddLine prices the selection and appends it to the cart, or increments
	// the quantity of an existing line with the same item, size and add-ons.
	AddLine(cart *model.Cart, itemName, size string, addOnNames []string, quantity int) (*model.CartLine, error)
	// SetQuantity updates a line's quantity; zero or less removes the line.
	SetQuantity(cart *model.Cart, lineID string, quantity int) error
	RemoveLine(cart *model.Cart, lineID string) error
	Clear(cart *model.Cart)
	Subtotal(cart *model.Cart) decimal.Decimal
	Tax(subtotal decimal.Decimal) decimal.Decimal
	Total(cart *model.Cart) decimal.Decimal
}

type cartService struct {
	catalogRepo repository.CatalogRepository
}

func NewCartService(catalogRepo repository.CatalogRepository) CartService {
	return &cartService{catalogRepo: catalogRepo}
}

func (s *cartService) AddLine(cart *model.Cart, itemName, size string, addOnNames []string, quantity int) (*model.CartLine, error) {
	logger.Info("Adding line to cart", map[string]interface{}{
		"item":     itemName,
		"size":     size,
		"add_ons":  addOnNames,
		"quantity": quantity,
	})

	if quantity < 1 {
		logger.Warn("Cannot add line: invalid quantity", map[string]interface{}{
			"item":     itemName,
			"quantity": quantity,
		})
		return nil, ErrInvalidQuantity
	}

	item, err := s.catalogRepo.FindItem(itemName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Cannot add line: item not found", map[string]interface{}{
				"item": itemName,
			})
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if !item.Sized() && size == "" {
		size = model.SizeRegular
	}
	basePrice, ok := item.BasePrice(size)
	if !ok {
		logger.Warn("Cannot add line: size not offered for item", map[string]interface{}{
			"item": itemName,
			"size": size,
		})
		return nil, ErrInvalidSize
	}

	addOns := dedupeSorted(addOnNames)
	unitPrice := basePrice
	for _, name := range addOns {
		addOn, err := s.catalogRepo.FindAddOn(name)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				logger.Warn("Cannot add line: unknown add-on", map[string]interface{}{
					"item":   itemName,
					"add_on": name,
				})
				return nil, ErrInvalidAddOn
			}
			return nil, err
		}
		unitPrice = unitPrice.Add(addOn.Price)
	}

	if existing := cart.FindMatch(itemName, size, addOns); existing != nil {
		logger.Debug("Merging into existing cart line", map[string]interface{}{
			"line_id": existing.ID,
			"old_qty": existing.Quantity,
			"new_qty": existing.Quantity + quantity,
		})
		existing.Quantity += quantity
		return existing, nil
	}

	cart.Lines = append(cart.Lines, model.CartLine{
		ID:        uuid.NewString(),
		ItemName:  itemName,
		Size:      size,
		AddOns:    addOns,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	})
	line := &cart.Lines[len(cart.Lines)-1]

	logger.Info("Cart line added", map[string]interface{}{
		"line_id":    line.ID,
		"unit_price": line.UnitPrice.StringFixed(2),
	})
	return line, nil
}

func (s *cartService) SetQuantity(cart *model.Cart, lineID string, quantity int) error {
	line, found := cart.FindLine(lineID)
	if !found {
		logger.Warn("Cart line not found", map[string]interface{}{
			"line_id": lineID,
		})
		return ErrLineNotFound
	}

	if quantity <= 0 {
		cart.RemoveLine(lineID)
		logger.Info("Cart line removed via zero quantity", map[string]interface{}{
			"line_id": lineID,
		})
		return nil
	}

	logger.Debug("Updating cart line quantity", map[string]interface{}{
		"line_id": lineID,
		"old_qty": line.Quantity,
		"new_qty": quantity,
	})
	line.Quantity = quantity
	return nil
}

func (s *cartService) RemoveLine(cart *model.Cart, lineID string) error {
	if !cart.RemoveLine(lineID) {
		logger.Warn("Cart line not found for removal", map[string]interface{}{
			"line_id": lineID,
		})
		return ErrLineNotFound
	}
	logger.Info("Cart line removed", map[string]interface{}{
		"line_id": lineID,
	})
	return nil
}

func (s *cartService) Clear(cart *model.Cart) {
	cart.Clear()
	logger.Info("Cart cleared")
}

func (s *cartService) Subtotal(cart *model.Cart) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range cart.Lines {
		subtotal = subtotal.Add(line.LineTotal())
	}
	return subtotal
}

// Tax applies the fixed rate and rounds to cents.
func (s *cartService) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate).Round(2)
}

func (s *cartService) Total(cart *model.Cart) decimal.Decimal {
	subtotal := s.Subtotal(cart)
	return subtotal.Add(s.Tax(subtotal))
}

// dedupeSorted returns the names sorted with duplicates removed, so add-on
// sets compare as slices.
func dedupeSorted(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result
}
