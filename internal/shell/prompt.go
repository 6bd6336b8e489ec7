package shell

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// promptText reads a free-text field. Navigation interrupts pass through;
// the 'b' token yields ErrCancelled.
func (r *Router) promptText(label string) (string, error) {
	input, err := r.console.Prompt(label)
	if err != nil {
		return "", err
	}
	if isCancel(input) {
		return "", ErrCancelled
	}
	return input, nil
}

// promptPrice loops until the user enters a non-negative decimal amount.
// This is a validation loop, not a hard failure: malformed input re-prompts.
func (r *Router) promptPrice(label string) (decimal.Decimal, error) {
	for {
		input, err := r.console.Prompt(label)
		if err != nil {
			return decimal.Decimal{}, err
		}
		if isCancel(input) {
			return decimal.Decimal{}, ErrCancelled
		}
		price, perr := decimal.NewFromString(input)
		if perr != nil || price.IsNegative() {
			r.console.Print("Invalid input. Please enter a non-negative numeric value for cost.\n")
			continue
		}
		return price, nil
	}
}

// promptQuantity loops until the user enters a non-negative integer.
func (r *Router) promptQuantity(label string) (int, error) {
	for {
		input, err := r.console.Prompt(label)
		if err != nil {
			return 0, err
		}
		if isCancel(input) {
			return 0, ErrCancelled
		}
		qty, perr := strconv.Atoi(input)
		if perr != nil || qty < 0 {
			r.console.Print("Invalid input. Please enter a non-negative integer for quantity.\n")
			continue
		}
		return qty, nil
	}
}

// promptItemID reads an item id. Zero means cancel; non-numeric input also
// cancels (the original behavior aborts to the parent menu rather than
// re-prompting).
func (r *Router) promptItemID(label, invalidMsg, cancelMsg string) (int64, error) {
	input, err := r.console.Prompt(label)
	if err != nil {
		return 0, err
	}
	id, perr := strconv.ParseInt(input, 10, 64)
	if perr != nil {
		r.console.Print(invalidMsg + "\n")
		return 0, ErrCancelled
	}
	if id == 0 {
		r.console.Print(cancelMsg + "\n")
		return 0, ErrCancelled
	}
	return id, nil
}
