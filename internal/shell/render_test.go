package shell

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemshelf/gemshelf/internal/preset"
	"github.com/gemshelf/gemshelf/internal/store"
)

// Golden files live in testdata/. Regenerate with:
//
//	go test ./internal/shell -update
func TestRenderGolden(t *testing.T) {
	g := goldie.New(t)

	t.Run("welcome", func(t *testing.T) {
		g.Assert(t, "welcome", []byte(renderWelcome()))
	})

	t.Run("navbar", func(t *testing.T) {
		g.Assert(t, "navbar", []byte(renderNavBar()))
	})

	t.Run("dashboard", func(t *testing.T) {
		g.Assert(t, "dashboard", []byte(renderDashboard("Maya", 3, 2)))
	})

	t.Run("help", func(t *testing.T) {
		g.Assert(t, "help", []byte(renderHelp()))
	})

	t.Run("inventory_list", func(t *testing.T) {
		items := []store.Item{
			{ID: 1, Name: "Gold Ring", Category: "Ring", Price: decimal.RequireFromString("100.0"), Quantity: 5},
			{ID: 2, Name: "Pearl Choker", Category: "Necklace", Price: decimal.RequireFromString("220"), Quantity: 2},
		}
		g.Assert(t, "inventory_list", []byte(renderInventoryList(items)))
	})

	t.Run("preset_list", func(t *testing.T) {
		presets, err := preset.Load()
		require.NoError(t, err)
		g.Assert(t, "preset_list", []byte(renderPresetList(presets)))
	})
}

func TestRenderInventoryListEmpty(t *testing.T) {
	assert.Equal(t, "\nCurrent Inventory List:\nYour inventory is empty.\n", renderInventoryList(nil))
}

func TestRenderSaleLines(t *testing.T) {
	sale := store.Sale{
		ID:       1,
		Customer: "Ana",
		Payment:  "Cash",
		Repeat:   false,
		ItemName: "Gold Ring",
		Quantity: 3,
		Total:    decimal.RequireFromString("300"),
		Date:     "2024-06-01",
	}
	assert.Equal(t, "Item: Gold Ring | Qty: 3 | Date: 2024-06-01", renderSaleLine(sale))
	assert.Equal(t,
		"Sale ID: 1 | Customer: Ana | Payment: Cash | Repeat: No | Item: Gold Ring | Qty: 3 | Total: $300.00 | Date: 2024-06-01",
		renderSaleExpanded(sale))
}

func TestRenderHeaderCentersTitle(t *testing.T) {
	got := renderHeader("HELP")
	assert.Contains(t, got, "              HELP\n")
	assert.Contains(t, got, headerRule)
}
