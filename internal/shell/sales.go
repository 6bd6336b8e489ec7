package shell

import (
	"errors"
	"strconv"

	"github.com/gemshelf/gemshelf/internal/store"
)

// salesPage is the sales record menu loop.
func (r *Router) salesPage(Session) error {
	for {
		r.console.Print(renderHeader("SALES RECORD"))
		r.console.Print(renderNavBar())
		r.console.Print(renderSalesMenu())

		choice, err := r.console.Prompt("Enter your choice (1-3 or D/I/S/H/L): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = r.recordSale()
		case "2":
			err = r.salesHistory()
		case "3":
			return nil
		default:
			r.console.Print("Invalid choice. Please try again.\n")
			continue
		}
		if err != nil {
			if errors.Is(err, ErrCancelled) {
				continue
			}
			return err
		}
		return nil
	}
}

// recordSale captures a transaction: customer details, the sold item, and a
// quantity validated against live stock, then commits after an explicit
// confirmation that shows the computed total and date. The stock check
// re-reads the item on every attempt; quantity on hand can never go
// negative.
func (r *Router) recordSale() error {
	const cancelNote = "Sale recording cancelled. Returning to Sales Record."

	if r.state.Inventory.Len() == 0 {
		r.console.Print("No inventory available to sell.\n")
		return ErrCancelled
	}

	r.console.Print("\n--- Record a Sale ---\n")
	r.console.Print(renderNavBar())

	customer, err := r.promptText("Customer Name (or enter 'B' to cancel): ")
	if err != nil {
		return r.cancelled(err, cancelNote)
	}
	payment, err := r.promptText("Payment Method (e.g., Cash, Card) (or enter 'B' to cancel): ")
	if err != nil {
		return r.cancelled(err, cancelNote)
	}
	repeatInput, err := r.promptText("Is this a repeat customer? (Y/N) (or enter 'B' to cancel): ")
	if err != nil {
		return r.cancelled(err, cancelNote)
	}
	repeat := isConfirm(repeatInput)

	r.console.Print(renderAvailableInventory(r.state.Inventory.Items()))
	itemID, err := r.promptItemID(
		"\nEnter the ID of the item sold (or 0 to cancel): ",
		"Invalid input. Returning to Sales Record.",
		cancelNote,
	)
	if err != nil {
		return err
	}
	item, err := r.state.Inventory.Item(itemID)
	if err != nil {
		r.console.Print("Item not found.\n")
		return ErrCancelled
	}

	var quantity int
	for {
		input, err := r.console.Prompt("Quantity Sold (or 0 to cancel): ")
		if err != nil {
			return err
		}
		qty, perr := strconv.Atoi(input)
		if perr != nil {
			r.console.Print("Invalid input. Please enter an integer.\n")
			continue
		}
		if qty == 0 {
			r.console.Print(cancelNote + "\n")
			return ErrCancelled
		}
		if qty < 0 {
			r.console.Print("Quantity sold must be positive.\n")
			continue
		}
		// Re-read live stock on every attempt; an earlier snapshot could
		// hide a deduction made by a navigation detour.
		item, err = r.state.Inventory.Item(itemID)
		if err != nil {
			r.console.Print("Item not found.\n")
			return ErrCancelled
		}
		if qty > item.Quantity {
			r.console.Printf("Insufficient stock. Only %d available.\n", item.Quantity)
			continue
		}
		quantity = qty
		break
	}

	total := item.Price.Mul(decimalFromInt(quantity))
	date := r.state.Today()
	confirmation, err := r.console.ReadLine(
		"\nConfirm sale of " + strconv.Itoa(quantity) + " '" + item.Name + "' for " + customer +
			" (Payment: " + payment + ", Repeat: " + yesNo(repeat) + ") at total " + money(total) +
			" on " + date + "? (Y/N): ")
	if err != nil {
		return err
	}
	if !isConfirm(confirmation) {
		r.console.Print("Sale cancelled.\n")
		return ErrCancelled
	}

	sale, err := r.state.RecordSale(itemID, quantity, customer, payment, repeat)
	if err != nil {
		var stockErr *store.InsufficientStockError
		if errors.As(err, &stockErr) {
			r.console.Printf("Insufficient stock. Only %d available.\n", stockErr.Available)
			return ErrCancelled
		}
		return err
	}
	r.logger.Info("sale recorded",
		"sale_id", sale.ID,
		"item_id", itemID,
		"quantity", sale.Quantity,
		"total", sale.Total.StringFixed(2),
		"date", sale.Date,
	)
	r.console.Print("Sale recorded successfully! Inventory updated.\n")
	return r.finishPrompt()
}

// salesHistory shows the minimal listing and optionally the expanded one.
func (r *Router) salesHistory() error {
	r.console.Print("\n===== Minimal Sales History =====\n")
	r.console.Print(renderNavBar())

	sales := r.state.Sales.Sales()
	if len(sales) == 0 {
		r.console.Print("No sales recorded yet.\n")
	} else {
		for _, sale := range sales {
			r.console.Print(renderSaleLine(sale) + "\n")
		}
	}

	choice, err := r.console.Prompt("\nWould you like to expand the details? (Y/N or enter a navigation option): ")
	if err != nil {
		return err
	}
	if isConfirm(choice) {
		r.console.Print("\n===== Expanded Sales History =====\n")
		for _, sale := range sales {
			r.console.Print(renderSaleExpanded(sale) + "\n")
		}
	}
	return r.finishPrompt()
}
