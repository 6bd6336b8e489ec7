package shell

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemshelf/gemshelf/internal/preset"
	"github.com/gemshelf/gemshelf/internal/store"
	"github.com/gemshelf/gemshelf/internal/testutil"
)

// newSessionTest builds a router over fresh state, a fixed clock and a
// scripted input stream. Every test gets its own isolated state.
func newSessionTest(t *testing.T, lines ...string) (*Router, *bytes.Buffer, *store.State) {
	t.Helper()
	presets, err := preset.Load()
	require.NoError(t, err)

	state := store.New(testutil.NewFixedDate(2024, time.June, 1))
	var out bytes.Buffer
	console := NewConsole(testutil.Script(lines...), &out)
	return NewRouter(state, console, presets, nil), &out, state
}

// loginScript prefixes a scripted session with registration and login for
// the default test account.
func loginScript(lines ...string) []string {
	base := []string{
		"1", "Maya", "maya@example.com", "pw", "pw",
		"2", "maya@example.com", "pw",
	}
	return append(base, lines...)
}

// addGoldRing is the scripted "add Gold Ring, qty 5" inventory operation,
// ending with an empty trailing prompt that falls back to the main menu.
var addGoldRing = []string{"i", "1", "n", "Gold Ring", "Ring", "100.0", "5", ""}

func TestRouter_WelcomeExit(t *testing.T) {
	r, out, _ := newSessionTest(t, "3")
	require.NoError(t, r.Run())
	assert.Contains(t, out.String(), "Thank you for using the system. Goodbye!")
}

func TestRouter_WelcomeInvalidChoice(t *testing.T) {
	r, out, _ := newSessionTest(t, "9", "3")
	require.NoError(t, r.Run())
	assert.Contains(t, out.String(), "Invalid choice. Please try again.")
}

func TestRouter_RegisterLoginLogout(t *testing.T) {
	r, out, state := newSessionTest(t, loginScript("l", "3")...)
	require.NoError(t, r.Run())

	assert.Equal(t, 1, state.Accounts.Len())
	text := out.String()
	assert.Contains(t, text, "Account created successfully! Please proceed to login.")
	assert.Contains(t, text, "Login successful!")
	assert.Contains(t, text, "Logging out...")
	assert.Contains(t, text, "Thank you for using the system. Goodbye!")
}

// TestRouter_DuplicateEmail verifies a second registration under a taken
// email reports the conflict and leaves the account store unchanged.
func TestRouter_DuplicateEmail(t *testing.T) {
	r, out, state := newSessionTest(t,
		"1", "Maya", "maya@example.com", "pw", "pw",
		"1", "Impostor", "maya@example.com", "b",
		"3",
	)
	require.NoError(t, r.Run())

	assert.Equal(t, 1, state.Accounts.Len())
	assert.Contains(t, out.String(), "Error: This email is already in use. Please try a different email.")
	assert.Contains(t, out.String(), "Registration cancelled. Returning to main menu.")
}

func TestRouter_WrongPassword(t *testing.T) {
	r, out, _ := newSessionTest(t,
		"1", "Maya", "maya@example.com", "pw", "pw",
		"2", "maya@example.com", "wrong",
		"3",
	)
	require.NoError(t, r.Run())

	text := out.String()
	assert.Contains(t, text, "Invalid email or password. Please try again.")
	assert.NotContains(t, text, "Login successful!")
}

func TestRouter_PasswordConfirmMismatch(t *testing.T) {
	r, out, state := newSessionTest(t,
		"1", "Maya", "maya@example.com", "pw", "nope", "pw",
		"3",
	)
	require.NoError(t, r.Run())

	assert.Equal(t, 1, state.Accounts.Len())
	assert.Contains(t, out.String(), "Error: Passwords do not match. Please try again.")
	assert.Contains(t, out.String(), "Account created successfully!")
}

// TestRouter_GoldRingScenario walks the reference scenario end to end:
// add Gold Ring (id 1, qty 5), sell 3 (stock 2, total $300.00), then an
// oversell of 10 is rejected with the live stock count and commits nothing.
func TestRouter_GoldRingScenario(t *testing.T) {
	script := loginScript(append(append([]string{}, addGoldRing...),
		"s", "1", "Ana", "Cash", "n", "1", "3", "y", "",
		"s", "1", "Bo", "Card", "y", "1", "10", "0", "3",
		"l", "3",
	)...)
	r, out, state := newSessionTest(t, script...)
	require.NoError(t, r.Run())

	item, err := state.Inventory.Item(1)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	sales := state.Sales.Sales()
	require.Len(t, sales, 1, "the rejected oversell must not append a record")
	assert.Equal(t, int64(1), sales[0].ID)
	assert.Equal(t, "Ana", sales[0].Customer)
	assert.Equal(t, "Gold Ring", sales[0].ItemName)
	assert.Equal(t, 3, sales[0].Quantity)
	assert.Equal(t, "300.00", sales[0].Total.StringFixed(2))
	assert.Equal(t, "2024-06-01", sales[0].Date)

	text := out.String()
	assert.Contains(t, text, "Sale recorded successfully! Inventory updated.")
	assert.Contains(t, text, "Insufficient stock. Only 2 available.")
	assert.Contains(t, text, "at total $300.00 on 2024-06-01? (Y/N):")
}

func TestRouter_SaleWithoutConfirmationCommitsNothing(t *testing.T) {
	script := loginScript(append(append([]string{}, addGoldRing...),
		"s", "1", "Ana", "Cash", "n", "1", "3", "n", "3",
		"l", "3",
	)...)
	r, out, state := newSessionTest(t, script...)
	require.NoError(t, r.Run())

	item, err := state.Inventory.Item(1)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity, "declined confirmation must not deduct stock")
	assert.Equal(t, 0, state.Sales.Len())
	assert.Contains(t, out.String(), "Sale cancelled.")
}

// TestRouter_NavigationInterruptDeep types a navigation letter at the third
// level of nesting (main menu > inventory > update item > field prompt) and
// verifies the dashboard renders next with the update fully abandoned.
func TestRouter_NavigationInterruptDeep(t *testing.T) {
	script := loginScript(append(append([]string{}, addGoldRing...),
		"i", "2", "1", "d",
		"", "l", "3",
	)...)
	r, out, state := newSessionTest(t, script...)
	require.NoError(t, r.Run())

	item, err := state.Inventory.Item(1)
	require.NoError(t, err)
	assert.Equal(t, "Gold Ring", item.Name, "no partial mutation")
	assert.Equal(t, 5, item.Quantity)

	text := out.String()
	assert.Contains(t, text, "DASHBOARD")
	assert.Contains(t, text, "HELLO, MAYA!")
	assert.NotContains(t, text, "Item updated successfully!")
}

// TestRouter_NavigationInterruptMidAdd aborts an add-item flow at the cost
// prompt; nothing may be committed and the target page renders next.
func TestRouter_NavigationInterruptMidAdd(t *testing.T) {
	script := loginScript(
		"i", "1", "n", "Ring X", "Ring", "s",
		"3", "l", "3",
	)
	r, out, state := newSessionTest(t, script...)
	require.NoError(t, r.Run())

	assert.Equal(t, 0, state.Inventory.Len(), "interrupted add must not commit")
	assert.Contains(t, out.String(), "SALES RECORD")
}

// TestRouter_NavigationIdempotent re-navigates to the page currently shown;
// the page simply renders again.
func TestRouter_NavigationIdempotent(t *testing.T) {
	script := loginScript("d", "d", "", "l", "3")
	r, out, _ := newSessionTest(t, script...)
	require.NoError(t, r.Run())

	assert.GreaterOrEqual(t, strings.Count(out.String(), "DASHBOARD"), 2)
}

func TestRouter_LogoutFromNestedPrompt(t *testing.T) {
	script := loginScript(
		"i", "1", "n", "Ring X", "Ring", "l",
		"3",
	)
	r, out, state := newSessionTest(t, script...)
	require.NoError(t, r.Run())

	assert.Equal(t, 0, state.Inventory.Len())
	assert.Contains(t, out.String(), "Logging out...")
}

func TestRouter_DeleteWithoutConfirmation(t *testing.T) {
	script := loginScript(append(append([]string{}, addGoldRing...),
		"i", "3", "1", "n", "",
		"l", "3",
	)...)
	r, out, state := newSessionTest(t, script...)
	require.NoError(t, r.Run())

	_, err := state.Inventory.Item(1)
	assert.NoError(t, err, "declined deletion must keep the item")
	assert.Contains(t, out.String(), "Deletion cancelled.")
}

func TestRouter_DeleteWithConfirmation(t *testing.T) {
	script := loginScript(append(append([]string{}, addGoldRing...),
		"i", "3", "1", "y", "",
		"l", "3",
	)...)
	r, out, state := newSessionTest(t, script...)
	require.NoError(t, r.Run())

	_, err := state.Inventory.Item(1)
	assert.ErrorIs(t, err, store.ErrItemNotFound)
	assert.Contains(t, out.String(), "Item removed successfully!")
}

func TestRouter_UpdateKeepsOmittedFields(t *testing.T) {
	script := loginScript(append(append([]string{}, addGoldRing...),
		"i", "2", "1", "", "Pendant", "", "7", "",
		"l", "3",
	)...)
	r, out, state := newSessionTest(t, script...)
	require.NoError(t, r.Run())

	item, err := state.Inventory.Item(1)
	require.NoError(t, err)
	assert.Equal(t, "Gold Ring", item.Name, "empty input keeps the previous value")
	assert.Equal(t, "Pendant", item.Category)
	assert.Equal(t, "100.00", item.Price.StringFixed(2))
	assert.Equal(t, 7, item.Quantity)
	assert.Contains(t, out.String(), "Item updated successfully!")
}

func TestRouter_UpdateUnknownID(t *testing.T) {
	script := loginScript(append(append([]string{}, addGoldRing...),
		"i", "2", "42", "4",
		"l", "3",
	)...)
	r, out, _ := newSessionTest(t, script...)
	require.NoError(t, r.Run())

	assert.Contains(t, out.String(), "Item not found.")
}

func TestRouter_PresetSelection(t *testing.T) {
	script := loginScript(
		"i", "1", "y", "3", "2", "",
		"l", "3",
	)
	r, out, state := newSessionTest(t, script...)
	require.NoError(t, r.Run())

	item, err := state.Inventory.Item(1)
	require.NoError(t, err)
	assert.Equal(t, "Platinum Princess-Cut Diamond Stud Earrings", item.Name)
	assert.Equal(t, "Earrings", item.Category)
	assert.Equal(t, "500.00", item.Price.StringFixed(2))
	assert.Equal(t, 2, item.Quantity, "quantity is always entered manually")
	assert.Contains(t, out.String(), "Preset 'Platinum Princess-Cut Diamond Stud Earrings' selected.")
}

// TestRouter_PresetFallback checks the deliberate silent degradation: an
// invalid preset choice proceeds with manual entry instead of re-prompting.
func TestRouter_PresetFallback(t *testing.T) {
	script := loginScript(
		"i", "1", "y", "abc", "Custom Ring", "Ring", "50", "1", "",
		"l", "3",
	)
	r, out, state := newSessionTest(t, script...)
	require.NoError(t, r.Run())

	item, err := state.Inventory.Item(1)
	require.NoError(t, err)
	assert.Equal(t, "Custom Ring", item.Name)
	assert.Contains(t, out.String(), "Invalid input. Proceeding with manual entry.")
}

func TestRouter_PresetOutOfRangeFallsBack(t *testing.T) {
	script := loginScript(
		"i", "1", "y", "99", "Custom Ring", "Ring", "50", "1", "",
		"l", "3",
	)
	r, out, state := newSessionTest(t, script...)
	require.NoError(t, r.Run())

	require.Equal(t, 1, state.Inventory.Len())
	assert.Contains(t, out.String(), "Invalid selection. Proceeding with manual entry.")
}

func TestRouter_ValidationLoops(t *testing.T) {
	script := loginScript(
		"i", "1", "n", "Ring X", "Ring", "not-a-price", "-5", "25", "oops", "-1", "4", "",
		"l", "3",
	)
	r, out, state := newSessionTest(t, script...)
	require.NoError(t, r.Run())

	item, err := state.Inventory.Item(1)
	require.NoError(t, err)
	assert.Equal(t, "25.00", item.Price.StringFixed(2))
	assert.Equal(t, 4, item.Quantity)

	text := out.String()
	assert.Contains(t, text, "Invalid input. Please enter a non-negative numeric value for cost.")
	assert.Contains(t, text, "Invalid input. Please enter a non-negative integer for quantity.")
}

func TestRouter_SalesHistoryExpanded(t *testing.T) {
	script := loginScript(append(append([]string{}, addGoldRing...),
		"s", "1", "Ana", "Cash", "n", "1", "3", "y", "",
		"s", "2", "y", "",
		"l", "3",
	)...)
	r, out, _ := newSessionTest(t, script...)
	require.NoError(t, r.Run())

	text := out.String()
	assert.Contains(t, text, "===== Minimal Sales History =====")
	assert.Contains(t, text, "Item: Gold Ring | Qty: 3 | Date: 2024-06-01")
	assert.Contains(t, text, "===== Expanded Sales History =====")
	assert.Contains(t, text, "Sale ID: 1 | Customer: Ana | Payment: Cash | Repeat: No | Item: Gold Ring | Qty: 3 | Total: $300.00 | Date: 2024-06-01")
}

func TestRouter_SalesHistoryEmpty(t *testing.T) {
	script := loginScript("s", "2", "n", "", "l", "3")
	r, out, _ := newSessionTest(t, script...)
	require.NoError(t, r.Run())

	assert.Contains(t, out.String(), "No sales recorded yet.")
}

// TestRouter_CancelReturnsToParentMenu verifies 'b' aborts only the
// sub-operation: the inventory menu renders again instead of another page.
func TestRouter_CancelReturnsToParentMenu(t *testing.T) {
	script := loginScript(
		"i", "1", "n", "b", "4",
		"l", "3",
	)
	r, out, state := newSessionTest(t, script...)
	require.NoError(t, r.Run())

	assert.Equal(t, 0, state.Inventory.Len())
	text := out.String()
	assert.Contains(t, text, "Add Item cancelled. Returning to Inventory Management.")
	assert.GreaterOrEqual(t, strings.Count(text, "INVENTORY MANAGEMENT"), 2, "the parent menu re-renders after a cancel")
}
