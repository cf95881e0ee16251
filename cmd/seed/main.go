// Command seed converts a menu workbook into the catalog JSON file the POS
// terminal loads at startup (CATALOG_PATH).
//
// Workbook layout: a "Menu" sheet with columns Category | Item | Size | Price
// | AllowAddOns (rows for the same item with different sizes form a sized
// item; an empty size means a flat price), and an "AddOns" sheet with
// columns Name | Price.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mamakabowls/pos/internal/app/model"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: go run cmd/seed/main.go <menu.xlsx> <catalog.json>")
	}

	inPath := os.Args[1]
	outPath := os.Args[2]

	fmt.Printf("Reading menu workbook: %s\n", inPath)
	catalog, err := readCatalogFromXLSX(inPath)
	if err != nil {
		log.Fatal("Failed to read workbook:", err)
	}

	if err := catalog.Validate(); err != nil {
		log.Fatal("Workbook produced an invalid catalog:", err)
	}

	itemCount := 0
	for _, category := range catalog.Categories {
		itemCount += len(category.Items)
	}
	fmt.Printf("Categories: %d, items: %d, add-ons: %d\n",
		len(catalog.Categories), itemCount, len(catalog.AddOns))

	fmt.Printf("Write catalog to %s? (yes/no): ", outPath)
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Export cancelled.")
		return
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		log.Fatal("Failed to encode catalog:", err)
	}
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		log.Fatal("Failed to write catalog file:", err)
	}

	fmt.Println("Export completed successfully!")
}

func readCatalogFromXLSX(path string) (*model.Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	catalog := &model.Catalog{}

	menuRows, err := f.GetRows("Menu")
	if err != nil {
		return nil, fmt.Errorf("failed to read Menu sheet: %w", err)
	}
	categoryIndex := make(map[string]int)
	for i, row := range menuRows {
		if i == 0 || len(row) < 4 { // skip header and short rows
			continue
		}
		categoryName := strings.TrimSpace(row[0])
		itemName := strings.TrimSpace(row[1])
		size := strings.TrimSpace(row[2])
		price, err := decimal.NewFromString(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad price %q: %w", i+1, row[3], err)
		}
		allowAddOns := len(row) > 4 && strings.EqualFold(strings.TrimSpace(row[4]), "yes")

		ci, found := categoryIndex[categoryName]
		if !found {
			catalog.Categories = append(catalog.Categories, model.Category{
				Name:        categoryName,
				AllowAddOns: allowAddOns,
			})
			ci = len(catalog.Categories) - 1
			categoryIndex[categoryName] = ci
		}
		category := &catalog.Categories[ci]

		if size == "" {
			category.Items = append(category.Items, model.NewFlatItem(itemName, price))
			continue
		}
		if n := len(category.Items); n > 0 && category.Items[n-1].Name == itemName && category.Items[n-1].Sized() {
			category.Items[n-1].Sizes[size] = price
			continue
		}
		category.Items = append(category.Items, model.NewSizedItem(itemName, map[string]decimal.Decimal{size: price}))
	}

	addOnRows, err := f.GetRows("AddOns")
	if err != nil {
		return nil, fmt.Errorf("failed to read AddOns sheet: %w", err)
	}
	for i, row := range addOnRows {
		if i == 0 || len(row) < 2 {
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("add-on row %d: bad price %q: %w", i+1, row[1], err)
		}
		catalog.AddOns = append(catalog.AddOns, model.AddOn{
			Name:  strings.TrimSpace(row[0]),
			Price: price,
		})
	}

	return catalog, nil
}
