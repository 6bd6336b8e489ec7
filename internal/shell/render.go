package shell

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gemshelf/gemshelf/internal/preset"
	"github.com/gemshelf/gemshelf/internal/store"
)

// Rendering is kept in pure functions returning strings so pages can be
// golden-tested without a console.

const (
	headerRule  = "================================"
	welcomeRule = "============================================"
	navRule     = "--------------------------------------------"
)

// renderHeader produces a boxed page title.
func renderHeader(title string) string {
	pad := (len(headerRule) - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	return fmt.Sprintf("\n%s\n%s%s\n%s\n", headerRule, strings.Repeat(" ", pad), title, headerRule)
}

// renderNavBar produces the navigation bar shown on every page.
func renderNavBar() string {
	return fmt.Sprintf("\n%s\nNAVIGATION: (D)ashboard | (I)nventory | (S)ales Record | (H)elp | (L)ogout\n%s\n\n", navRule, navRule)
}

func renderWelcome() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", welcomeRule)
	b.WriteString("Welcome to the Jewelry Inventory Management System\n")
	fmt.Fprintf(&b, "%s\n", welcomeRule)
	b.WriteString("Please choose an option:\n")
	b.WriteString("1. Register\n")
	b.WriteString("2. Login\n")
	b.WriteString("3. Exit\n")
	return b.String()
}

// money renders a decimal amount with two fraction digits.
func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func decimalFromInt(v int) decimal.Decimal {
	return decimal.NewFromInt(int64(v))
}

func renderItemLine(item store.Item) string {
	return fmt.Sprintf("ID: %d | %s (%s) - Price: %s, Qty: %d",
		item.ID, item.Name, item.Category, money(item.Price), item.Quantity)
}

// renderInventoryList produces the "Current Inventory List" block.
func renderInventoryList(items []store.Item) string {
	var b strings.Builder
	b.WriteString("\nCurrent Inventory List:\n")
	if len(items) == 0 {
		b.WriteString("Your inventory is empty.\n")
		return b.String()
	}
	for _, item := range items {
		b.WriteString(renderItemLine(item))
		b.WriteString("\n")
	}
	return b.String()
}

// renderAvailableInventory produces the listing shown while recording a sale.
func renderAvailableInventory(items []store.Item) string {
	var b strings.Builder
	b.WriteString("\nAvailable Inventory:\n")
	for _, item := range items {
		b.WriteString(renderItemLine(item))
		b.WriteString("\n")
	}
	return b.String()
}

func renderDashboard(displayName string, itemCount, saleCount int) string {
	var b strings.Builder
	b.WriteString(renderHeader("DASHBOARD"))
	b.WriteString(renderNavBar())
	fmt.Fprintf(&b, "HELLO, %s!\n", strings.ToUpper(displayName))
	b.WriteString("Quick Stats:\n")
	fmt.Fprintf(&b, "- Total Items in Inventory: %d\n", itemCount)
	fmt.Fprintf(&b, "- Total Sales Recorded: %d\n", saleCount)
	return b.String()
}

func renderInventoryMenu() string {
	var b strings.Builder
	b.WriteString("\nSelect an option (1-4) or enter a navigation option (D, I, S, H, L):\n")
	b.WriteString("1. Add New Item\n")
	b.WriteString("2. Update Item\n")
	b.WriteString("3. Remove Item\n")
	b.WriteString("4. Back to Navigation Menu\n")
	return b.String()
}

func renderSalesMenu() string {
	var b strings.Builder
	b.WriteString("\nSelect an option (1-3) or enter a navigation option (D, I, S, H, L):\n")
	b.WriteString("1. Record a New Sale\n")
	b.WriteString("2. View Sales History\n")
	b.WriteString("3. Back to Navigation Menu\n")
	return b.String()
}

func renderPresetList(presets []preset.Item) string {
	var b strings.Builder
	b.WriteString("\nPreset Items:\n")
	for i, p := range presets {
		fmt.Fprintf(&b, "%d. %s (%s) - Price: %s\n", i+1, p.Name, p.Category, money(p.Price))
	}
	return b.String()
}

func renderSaleLine(sale store.Sale) string {
	return fmt.Sprintf("Item: %s | Qty: %d | Date: %s", sale.ItemName, sale.Quantity, sale.Date)
}

func renderSaleExpanded(sale store.Sale) string {
	return fmt.Sprintf("Sale ID: %d | Customer: %s | Payment: %s | Repeat: %s | Item: %s | Qty: %d | Total: %s | Date: %s",
		sale.ID, sale.Customer, sale.Payment, yesNo(sale.Repeat), sale.ItemName, sale.Quantity, money(sale.Total), sale.Date)
}

func renderHelp() string {
	var b strings.Builder
	b.WriteString(renderHeader("HELP"))
	b.WriteString(renderNavBar())
	b.WriteString("\nHaving Trouble? Here's How to Get Started:\n")
	b.WriteString("1. To register an account, select 'Register' from the main menu and fill in your details.\n")
	b.WriteString("2. To log in, select 'Login' and enter your email and password.\n")
	b.WriteString("3. Select (D) Dashboard to view quick stats about your inventory and sales.\n")
	b.WriteString("4. Select (I) Inventory to add, update, or remove items in your inventory.\n")
	b.WriteString("5. Select (S) Sales Record to record sales transactions and view sales history.\n")
	b.WriteString("6. Select (L) Logout to log out from the system and return to the Welcome Menu\n")
	b.WriteString("7. For any questions, email support@jewelryinventorysystem.com or call (123) 456-7890.\n")
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
