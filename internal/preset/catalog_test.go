package preset

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	items, err := Load()
	require.NoError(t, err)
	require.Len(t, items, 7)

	first := items[0]
	assert.Equal(t, "Rose Gold Morganite Halo Ring", first.Name)
	assert.Equal(t, "Ring", first.Category)
	assert.True(t, first.Price.Equal(decimal.RequireFromString("350.00")))

	last := items[6]
	assert.Equal(t, "Band", last.Category)
	assert.True(t, last.Price.Equal(decimal.RequireFromString("180.00")))

	for _, item := range items {
		assert.NotEmpty(t, item.Name)
		assert.NotEmpty(t, item.Category)
		assert.False(t, item.Price.IsNegative())
	}
}
