package shell

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/gemshelf/gemshelf/internal/store"
)

// inventoryPage is the inventory management menu loop. Sub-operation
// cancels return here; navigation interrupts pass straight through to the
// router.
func (r *Router) inventoryPage(Session) error {
	for {
		r.console.Print(renderHeader("INVENTORY MANAGEMENT"))
		r.console.Print(renderNavBar())
		r.console.Print(renderInventoryList(r.state.Inventory.Items()))
		r.console.Print(renderInventoryMenu())

		choice, err := r.console.Prompt("Enter your choice (1-4 or D/I/S/H/L): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = r.addItem()
		case "2":
			err = r.updateItem()
		case "3":
			err = r.removeItem()
		case "4":
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
		// The sub-operation's trailing prompt chose the main menu.
		return nil
	}
}

// addItem collects a new item, optionally pre-filled from the preset
// catalog. An invalid or zero preset choice silently falls back to manual
// entry; that degradation is deliberate, matching the observed behavior of
// the flow this replaces.
func (r *Router) addItem() error {
	const cancelNote = "Add Item cancelled. Returning to Inventory Management."

	r.console.Print(renderHeader("ADD ITEM"))
	r.console.Print(renderNavBar())
	r.console.Print("Fill in the details below to add a new inventory item.\n")
	r.console.Print("Enter 'B' at any prompt to cancel and return to Inventory Management, or enter a navigation option (D, I, S, H, L).\n\n")

	presetChoice, err := r.console.Prompt("Would you like to select from preset items? (Y/N): ")
	if err != nil {
		return err
	}

	var (
		name, category string
		price          decimal.Decimal
		fromPreset     bool
	)
	if isConfirm(presetChoice) {
		r.console.Print(renderPresetList(r.presets))
		selection, err := r.console.Prompt("Select a preset item by number (or 0 to cancel): ")
		if err != nil {
			return err
		}
		index, convErr := strconv.Atoi(selection)
		switch {
		case convErr != nil:
			r.console.Print("Invalid input. Proceeding with manual entry.\n\n")
		case index == 0:
			r.console.Print("Preset selection cancelled. Proceeding with manual entry.\n\n")
		case index >= 1 && index <= len(r.presets):
			chosen := r.presets[index-1]
			name, category, price = chosen.Name, chosen.Category, chosen.Price
			fromPreset = true
			r.console.Printf("Preset '%s' selected. You can modify details later using the Update Item option.\n", name)
		default:
			r.console.Print("Invalid selection. Proceeding with manual entry.\n\n")
		}
	}

	if !fromPreset {
		if name, err = r.promptText("Item Name: "); err != nil {
			return r.cancelled(err, cancelNote)
		}
		if category, err = r.promptText("Category: "); err != nil {
			return r.cancelled(err, cancelNote)
		}
		if price, err = r.promptPrice("Cost: "); err != nil {
			return r.cancelled(err, cancelNote)
		}
	}

	// Quantity is always entered manually, preset or not.
	quantity, err := r.promptQuantity("Quantity: ")
	if err != nil {
		return r.cancelled(err, cancelNote)
	}

	item, err := r.state.Inventory.Add(name, category, price, quantity)
	if err != nil {
		return err
	}
	r.logger.Info("item added", "item_id", item.ID, "name", item.Name, "quantity", item.Quantity)
	r.console.Print("\nItem added successfully!\n")
	return r.finishPrompt()
}

// updateItem edits an existing item in place. Empty input keeps the
// previous value of a field.
func (r *Router) updateItem() error {
	items := r.state.Inventory.Items()
	if len(items) == 0 {
		r.console.Print("Inventory is empty. Nothing to update.\n")
		return ErrCancelled
	}

	r.console.Print(renderHeader("UPDATE ITEM"))
	r.console.Print(renderNavBar())
	r.console.Print(renderInventoryList(items))

	id, err := r.promptItemID(
		"\nEnter the ID of the item you wish to update (or 0 to cancel): ",
		"Invalid input. Returning to Inventory Management.",
		"Update cancelled. Returning to Inventory Management.",
	)
	if err != nil {
		return err
	}
	current, err := r.state.Inventory.Item(id)
	if err != nil {
		r.console.Print("Item not found.\n")
		return ErrCancelled
	}

	r.console.Printf("\nUpdating item: %s\n", current.Name)
	patch := store.ItemPatch{}

	name, err := r.console.Prompt("Item Name [" + current.Name + "]: ")
	if err != nil {
		return err
	}
	if name != "" && !isCancel(name) {
		patch.Name = &name
	}

	category, err := r.console.Prompt("Category [" + current.Category + "]: ")
	if err != nil {
		return err
	}
	if category != "" && !isCancel(category) {
		patch.Category = &category
	}

	for {
		input, err := r.console.Prompt("Cost [" + current.Price.StringFixed(2) + "]: ")
		if err != nil {
			return err
		}
		if input == "" || isCancel(input) {
			break
		}
		price, perr := decimal.NewFromString(input)
		if perr != nil || price.IsNegative() {
			r.console.Print("Invalid input. Please enter a non-negative numeric value.\n")
			continue
		}
		patch.Price = &price
		break
	}

	for {
		input, err := r.console.Prompt("Quantity [" + strconv.Itoa(current.Quantity) + "]: ")
		if err != nil {
			return err
		}
		if input == "" || isCancel(input) {
			break
		}
		qty, perr := strconv.Atoi(input)
		if perr != nil || qty < 0 {
			r.console.Print("Invalid input. Please enter a non-negative integer.\n")
			continue
		}
		patch.Quantity = &qty
		break
	}

	updated, err := r.state.Inventory.Update(id, patch)
	if err != nil {
		return err
	}
	r.logger.Info("item updated", "item_id", updated.ID, "name", updated.Name)
	r.console.Print("\nItem updated successfully!\n")
	return r.finishPrompt()
}

// removeItem deletes an item after an explicit 'y' confirmation. Any other
// response keeps the item.
func (r *Router) removeItem() error {
	items := r.state.Inventory.Items()
	if len(items) == 0 {
		r.console.Print("Inventory is empty. Nothing to remove.\n")
		return ErrCancelled
	}

	r.console.Print(renderNavBar())
	r.console.Print(renderHeader("REMOVE ITEM"))
	r.console.Print(renderInventoryList(items))

	id, err := r.promptItemID(
		"\nEnter the ID of the item to remove (or 0 to cancel): ",
		"Invalid input. Returning to Inventory Management.",
		"Removal cancelled.",
	)
	if err != nil {
		return err
	}
	item, err := r.state.Inventory.Item(id)
	if err != nil {
		r.console.Print("Item not found.\n")
		return ErrCancelled
	}

	r.console.Printf("\nAre you sure you want to delete '%s'?\n", item.Name)
	r.console.Print("Warning: Removing this item will permanently delete it from your inventory. You will have to re-add it if needed.\n")
	confirmation, err := r.console.ReadLine("Type 'Y' to confirm deletion, or any other key to cancel: ")
	if err != nil {
		return err
	}
	if isConfirm(confirmation) {
		if err := r.state.Inventory.Remove(id); err != nil {
			return err
		}
		r.logger.Info("item removed", "item_id", id, "name", item.Name)
		r.console.Print("Item removed successfully!\n")
	} else {
		r.console.Print("Deletion cancelled.\n")
	}
	return r.finishPrompt()
}
