// Package catalog builds the static menu the order model runs against:
// either the compiled-in Mamaka Bowls menu or a catalog JSON file.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mamakabowls/pos/internal/app/model"
	"github.com/mamakabowls/pos/pkg/logger"
	"github.com/shopspring/decimal"
)

// Load returns the catalog for the given path. An empty path means the
// compiled-in default menu. Loaded catalogs are validated before use.
func Load(path string) (*model.Catalog, error) {
	if path == "" {
		logger.Info("Using compiled-in catalog")
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates a catalog JSON file.
func LoadFile(path string) (*model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var cat model.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	logger.Info("Catalog loaded", map[string]interface{}{
		"path":       path,
		"categories": len(cat.Categories),
		"add_ons":    len(cat.AddOns),
	})
	return &cat, nil
}

func usd(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Default is the Mamaka Bowls menu.
func Default() *model.Catalog {
	bowlSizes := func() map[string]decimal.Decimal {
		return map[string]decimal.Decimal{
			"Small":           usd("9.50"),
			model.SizeRegular: usd("11.00"),
		}
	}

	return &model.Catalog{
		Categories: []model.Category{
			{
				Name:        "Bowls",
				AllowAddOns: true,
				Items: []model.MenuItem{
					model.NewSizedItem("Mamaka Bowl", bowlSizes()),
					model.NewSizedItem("Larry Bowl", bowlSizes()),
					model.NewSizedItem("Bean Bowl", bowlSizes()),
					model.NewSizedItem("Bro Bowl", bowlSizes()),
				},
			},
			{
				Name:        "Smoothies",
				AllowAddOns: true,
				Items: []model.MenuItem{
					model.NewFlatItem("Mamaka", usd("6.50")),
					model.NewFlatItem("Larry", usd("6.50")),
					model.NewFlatItem("Bean", usd("6.50")),
					model.NewFlatItem("Bro", usd("6.50")),
				},
			},
			{
				Name: "Coffee",
				Items: []model.MenuItem{
					model.NewFlatItem("Latte", usd("4.75")),
					model.NewFlatItem("Cappuccino", usd("4.50")),
					model.NewFlatItem("Americano", usd("3.50")),
					model.NewFlatItem("Matcha", usd("5.00")),
				},
			},
			{
				Name: "Tacos",
				Items: []model.MenuItem{
					model.NewFlatItem("Breakfast Tacos", usd("3.25")),
				},
			},
		},
		AddOns: []model.AddOn{
			{Name: "Strawberry", Price: usd("0.50")},
			{Name: "Peanut Butter", Price: usd("0.50")},
			{Name: "Agave", Price: usd("0.50")},
			{Name: "Coconut Flakes", Price: usd("0.50")},
			{Name: "Chia Seeds", Price: usd("0.50")},
			{Name: "Bananas", Price: usd("0.50")},
		},
	}
}
