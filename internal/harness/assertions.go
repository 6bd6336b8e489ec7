package harness

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemshelf/gemshelf/internal/store"
)

// Verify asserts the scenario's expectations against the run result.
func (r *Result) Verify(t *testing.T) {
	t.Helper()
	sc := r.Scenario

	require.NoError(t, r.RunErr, "scenario %s must exit cleanly from the welcome screen", sc.Name)

	for _, want := range sc.Expect.Items {
		item, err := r.State.Inventory.Item(want.ID)
		if want.Removed {
			assert.True(t, errors.Is(err, store.ErrItemNotFound), "item %d should be removed", want.ID)
			continue
		}
		require.NoError(t, err, "item %d should exist", want.ID)
		if want.Name != "" {
			assert.Equal(t, want.Name, item.Name, "item %d name", want.ID)
		}
		if want.Category != "" {
			assert.Equal(t, want.Category, item.Category, "item %d category", want.ID)
		}
		if want.Price != "" {
			wantPrice, perr := decimal.NewFromString(want.Price)
			require.NoError(t, perr, "item %d: bad expected price %q", want.ID, want.Price)
			assert.True(t, item.Price.Equal(wantPrice), "item %d price: want %s, got %s", want.ID, wantPrice, item.Price)
		}
		if want.Quantity != nil {
			assert.Equal(t, *want.Quantity, item.Quantity, "item %d quantity", want.ID)
		}
	}

	if sc.Expect.ItemCount != nil {
		assert.Equal(t, *sc.Expect.ItemCount, r.State.Inventory.Len(), "item count")
	}
	if sc.Expect.SaleCount != nil {
		assert.Equal(t, *sc.Expect.SaleCount, r.State.Sales.Len(), "sale count")
	}
	if sc.Expect.AccountCount != nil {
		assert.Equal(t, *sc.Expect.AccountCount, r.State.Accounts.Len(), "account count")
	}

	for _, want := range sc.Expect.OutputContains {
		assert.Contains(t, r.Transcript, want)
	}
	for _, not := range sc.Expect.OutputOmits {
		assert.NotContains(t, r.Transcript, not)
	}
}
