package store

// State is the whole application state: accounts, inventory, sales, and the
// clock used to stamp sale dates. Exactly one logical flow of control ever
// touches a State, so no locking is needed.
type State struct {
	Accounts  *Accounts
	Inventory *Inventory
	Sales     *SalesLog

	clock Clock
}

// New creates a fresh, empty State using the given clock.
func New(clock Clock) *State {
	return &State{
		Accounts:  NewAccounts(),
		Inventory: NewInventory(),
		Sales:     NewSalesLog(),
		clock:     clock,
	}
}

// Today returns the clock's current date formatted as YYYY-MM-DD.
func (s *State) Today() string {
	return s.clock.Now().Format(DateLayout)
}

// RecordSale validates and commits a sale in one logical step: it deducts
// stock from the inventory item and appends the record to the sales ledger.
// On any error neither ledger is touched.
//
// Errors:
//   - ErrNonPositiveQuantity if qty < 1
//   - ErrItemNotFound if itemID is unknown
//   - InsufficientStockError if qty exceeds the item's live stock
func (s *State) RecordSale(itemID int64, qty int, customer, payment string, repeat bool) (Sale, error) {
	if qty < 1 {
		return Sale{}, ErrNonPositiveQuantity
	}
	draft := saleDraft{
		customer: customer,
		payment:  payment,
		repeat:   repeat,
		itemID:   itemID,
		quantity: qty,
	}
	item, err := s.Inventory.deduct(itemID, qty)
	if err != nil {
		return Sale{}, err
	}
	return s.Sales.append(newSaleRecord(draft, item, s.Today())), nil
}
