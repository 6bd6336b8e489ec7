package store

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// Item is a stocked jewelry item. Quantity is never negative; a sale can
// only reduce it to zero.
type Item struct {
	ID       int64
	Name     string
	Category string
	Price    decimal.Decimal
	Quantity int
}

// ItemPatch describes a partial update. Nil fields keep the item's current
// value.
type ItemPatch struct {
	Name     *string
	Category *string
	Price    *decimal.Decimal
	Quantity *int
}

// Inventory is a keyed store of items that preserves insertion order for
// listing. Lookup by id is O(1); ids come from a monotonic counter and are
// never reused.
type Inventory struct {
	items  map[int64]*Item
	order  []int64
	nextID int64
}

// NewInventory creates an empty inventory ledger.
func NewInventory() *Inventory {
	return &Inventory{
		items:  make(map[int64]*Item),
		nextID: 1,
	}
}

// Add appends a new item and returns it with its assigned id. Name and
// category are NFC-normalized so visually identical entries compare equal.
func (inv *Inventory) Add(name, category string, price decimal.Decimal, quantity int) (Item, error) {
	if price.IsNegative() {
		return Item{}, ErrNegativePrice
	}
	if quantity < 0 {
		return Item{}, ErrNegativeQuantity
	}
	item := &Item{
		ID:       inv.nextID,
		Name:     norm.NFC.String(name),
		Category: norm.NFC.String(category),
		Price:    price,
		Quantity: quantity,
	}
	inv.items[item.ID] = item
	inv.order = append(inv.order, item.ID)
	inv.nextID++
	return *item, nil
}

// Item returns the item with the given id, or ErrItemNotFound.
func (inv *Inventory) Item(id int64) (Item, error) {
	item, ok := inv.items[id]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	return *item, nil
}

// Items returns all items in insertion (id) order.
func (inv *Inventory) Items() []Item {
	out := make([]Item, 0, len(inv.order))
	for _, id := range inv.order {
		out = append(out, *inv.items[id])
	}
	return out
}

// Len returns the number of stocked items.
func (inv *Inventory) Len() int { return len(inv.items) }

// Update applies a patch to the item with the given id. Nil patch fields
// retain the previous value. Returns ErrItemNotFound on an unknown id and
// validation errors on negative price or quantity; the item is unchanged
// unless the whole patch is valid.
func (inv *Inventory) Update(id int64, patch ItemPatch) (Item, error) {
	item, ok := inv.items[id]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return Item{}, ErrNegativePrice
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return Item{}, ErrNegativeQuantity
	}
	if patch.Name != nil {
		item.Name = norm.NFC.String(*patch.Name)
	}
	if patch.Category != nil {
		item.Category = norm.NFC.String(*patch.Category)
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	return *item, nil
}

// Remove deletes the item with the given id. The id is retired: the counter
// never hands it out again. Returns ErrItemNotFound on an unknown id.
func (inv *Inventory) Remove(id int64) error {
	if _, ok := inv.items[id]; !ok {
		return ErrItemNotFound
	}
	delete(inv.items, id)
	for i, ordered := range inv.order {
		if ordered == id {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			break
		}
	}
	return nil
}

// deduct lowers the item's stock as part of committing a sale. The caller
// has already validated qty against live stock; this re-checks so the
// quantity invariant cannot be violated.
func (inv *Inventory) deduct(id int64, qty int) (*Item, error) {
	item, ok := inv.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	if qty > item.Quantity {
		return nil, &InsufficientStockError{ItemID: id, Requested: qty, Available: item.Quantity}
	}
	item.Quantity -= qty
	return item, nil
}
