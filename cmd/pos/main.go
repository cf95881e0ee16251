package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mamakabowls/pos/config"
	"github.com/mamakabowls/pos/internal/app/model"
	"github.com/mamakabowls/pos/internal/app/repository"
	"github.com/mamakabowls/pos/internal/app/service"
	"github.com/mamakabowls/pos/internal/catalog"
	apperrors "github.com/mamakabowls/pos/internal/errors"
	"github.com/mamakabowls/pos/pkg/logger"
)

// kiosk is the terminal presentation shell. It renders screens and forwards
// user actions to the services; all pricing and validation lives there.
type kiosk struct {
	storeName       string
	in              *bufio.Scanner
	catalogService  service.CatalogService
	cartService     service.CartService
	checkoutService service.CheckoutService
	session         *model.Session
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      os.Stderr,
		EnableColor: cfg.Log.EnableColor,
	})

	logger.Info("Starting POS terminal", map[string]interface{}{
		"store":       cfg.Store.Name,
		"environment": cfg.Store.Environment,
	})

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("Failed to load catalog", err)
	}

	catalogRepo := repository.NewCatalogRepository(cat)
	cartService := service.NewCartService(catalogRepo)

	k := &kiosk{
		storeName:       cfg.Store.Name,
		in:              bufio.NewScanner(os.Stdin),
		catalogService:  service.NewCatalogService(catalogRepo),
		cartService:     cartService,
		checkoutService: service.NewCheckoutService(cartService, nil),
		session:         model.NewSession(),
	}
	k.run()
}

func (k *kiosk) run() {
	fmt.Printf("Welcome to %s\n", k.storeName)
	for {
		fmt.Println("\n[1] Menu  [2] View cart  [3] Checkout  [4] Quit")
		switch k.prompt("Choose") {
		case "1":
			k.browse()
		case "2":
			k.viewCart()
		case "3":
			k.checkout()
		case "4":
			fmt.Println("Goodbye!")
			return
		}
	}
}

func (k *kiosk) prompt(label string) string {
	fmt.Printf("%s> ", label)
	if !k.in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(k.in.Text())
}

func (k *kiosk) browse() {
	categories := k.catalogService.Categories()
	fmt.Println("\nCategories:")
	for i, category := range categories {
		fmt.Printf("  [%d] %s\n", i+1, category.Name)
	}
	choice, err := strconv.Atoi(k.prompt("Category"))
	if err != nil || choice < 1 || choice > len(categories) {
		return
	}
	k.orderFrom(categories[choice-1])
}

func (k *kiosk) orderFrom(category model.Category) {
	fmt.Printf("\n%s:\n", category.Name)
	for i, item := range category.Items {
		fmt.Printf("  [%d] %s  %s\n", i+1, item.Name, describePrice(item))
	}
	choice, err := strconv.Atoi(k.prompt("Item"))
	if err != nil || choice < 1 || choice > len(category.Items) {
		return
	}
	item := category.Items[choice-1]

	size := ""
	if item.Sized() {
		size = k.prompt("Size")
	}

	var addOns []string
	if category.AllowAddOns {
		available := k.catalogService.AddOns()
		fmt.Println("Add-ons (comma separated, blank for none):")
		for _, addOn := range available {
			fmt.Printf("  %s (+$%s)\n", addOn.Name, addOn.Price.StringFixed(2))
		}
		if raw := k.prompt("Add-ons"); raw != "" {
			for _, name := range strings.Split(raw, ",") {
				addOns = append(addOns, strings.TrimSpace(name))
			}
		}
	}

	quantity := 1
	if raw := k.prompt("Quantity [1]"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			quantity = n
		}
	}

	line, err := k.cartService.AddLine(&k.session.Cart, item.Name, size, addOns, quantity)
	if err != nil {
		k.showError(err)
		return
	}
	fmt.Printf("Added %dx %s ($%s each)\n", line.Quantity, line.ItemName, line.UnitPrice.StringFixed(2))
}

func (k *kiosk) viewCart() {
	if k.session.Cart.IsEmpty() {
		fmt.Println("\nYour cart is empty.")
		return
	}
	k.printCart()
	fmt.Println("[r <n>] remove line  [q <n> <qty>] change quantity  [enter] back")
	fields := strings.Fields(k.prompt("Cart"))
	if len(fields) == 0 {
		return
	}
	lineFor := func(arg string) (string, bool) {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(k.session.Cart.Lines) {
			return "", false
		}
		return k.session.Cart.Lines[n-1].ID, true
	}
	switch {
	case fields[0] == "r" && len(fields) == 2:
		if id, ok := lineFor(fields[1]); ok {
			if err := k.cartService.RemoveLine(&k.session.Cart, id); err != nil {
				k.showError(err)
			}
		}
	case fields[0] == "q" && len(fields) == 3:
		id, ok := lineFor(fields[1])
		qty, err := strconv.Atoi(fields[2])
		if ok && err == nil {
			if err := k.cartService.SetQuantity(&k.session.Cart, id, qty); err != nil {
				k.showError(err)
			}
		}
	}
}

func (k *kiosk) printCart() {
	fmt.Println("\nYour cart:")
	for i, line := range k.session.Cart.Lines {
		desc := line.ItemName
		if line.Size != "" {
			desc += " (" + line.Size + ")"
		}
		if len(line.AddOns) > 0 {
			desc += " + " + strings.Join(line.AddOns, ", ")
		}
		fmt.Printf("  [%d] %dx %s  $%s\n", i+1, line.Quantity, desc, line.LineTotal().StringFixed(2))
	}
	subtotal := k.cartService.Subtotal(&k.session.Cart)
	tax := k.cartService.Tax(subtotal)
	fmt.Printf("  Subtotal: $%s\n", subtotal.StringFixed(2))
	fmt.Printf("  Tax (8.25%%): $%s\n", tax.StringFixed(2))
	fmt.Printf("  Total: $%s\n", subtotal.Add(tax).StringFixed(2))
}

func (k *kiosk) checkout() {
	if err := k.checkoutService.StartCheckout(k.session); err != nil {
		k.showError(err)
		return
	}

	for {
		fmt.Println("\nCustomer information (type 'back' as first name to cancel):")
		input := model.CustomerInfo{
			FirstName: k.prompt("First name"),
			LastName:  k.prompt("Last name"),
			Phone:     k.prompt("Phone (10 digits)"),
			Email:     k.prompt("Email"),
		}
		if input.FirstName == "back" {
			k.checkoutService.Abort(k.session)
			return
		}
		if _, err := k.checkoutService.SubmitCustomerInfo(k.session, input); err != nil {
			k.showError(err)
			continue
		}
		break
	}

	for {
		fmt.Println("\nPayment information (type 'back' as name to cancel):")
		input := model.PaymentInfo{
			CardholderName: k.prompt("Name on card"),
			CardNumber:     k.prompt("Card number (16 digits)"),
			CVV:            k.prompt("CVV"),
			Expiration:     k.prompt("Expiration (MM/YYYY)"),
		}
		if input.CardholderName == "back" {
			k.checkoutService.Abort(k.session)
			return
		}
		if _, err := k.checkoutService.SubmitPaymentInfo(k.session, input); err != nil {
			k.showError(err)
			continue
		}
		break
	}

	k.printCart()
	if k.prompt("Place order? (y/n)") != "y" {
		k.checkoutService.Abort(k.session)
		return
	}

	customer := k.session.Customer
	order, err := k.checkoutService.PlaceOrder(k.session)
	if err != nil {
		k.showError(err)
		return
	}
	k.printReceipt(order, customer)
}

func (k *kiosk) printReceipt(order *model.Order, customer *model.CustomerInfo) {
	fmt.Printf("\n===== %s =====\n", k.storeName)
	fmt.Printf("Order #%d\n", order.Number)
	if customer != nil {
		fmt.Printf("For: %s %s\n", customer.FirstName, customer.LastName)
	}
	for _, line := range order.Lines {
		fmt.Printf("  %dx %s (%s)  $%s\n", line.Quantity, line.ItemName, line.Size, line.LineTotal().StringFixed(2))
	}
	fmt.Printf("Subtotal: $%s\n", order.Subtotal.StringFixed(2))
	fmt.Printf("Tax: $%s\n", order.Tax.StringFixed(2))
	fmt.Printf("Total: $%s\n", order.Total.StringFixed(2))
	fmt.Println("Thank you for your order!")
}

func (k *kiosk) showError(err error) {
	info := apperrors.ParseError(err)
	fmt.Printf("!! %s\n", info.Message)
}

func describePrice(item model.MenuItem) string {
	if !item.Sized() {
		return "$" + item.FlatPrice.StringFixed(2)
	}
	parts := make([]string, 0, len(item.Sizes))
	for _, size := range []string{"Small", model.SizeRegular} {
		if price, ok := item.Sizes[size]; ok {
			parts = append(parts, fmt.Sprintf("%s $%s", size, price.StringFixed(2)))
		}
	}
	if len(parts) == 0 {
		for size, price := range item.Sizes {
			parts = append(parts, fmt.Sprintf("%s $%s", size, price.StringFixed(2)))
		}
	}
	return strings.Join(parts, "  ")
}
