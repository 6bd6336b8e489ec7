package store

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// Sale is a committed transaction. ItemName and Total are snapshots taken
// at commit time; they are independent of the inventory item afterwards.
type Sale struct {
	ID       int64
	Customer string
	Payment  string
	Repeat   bool
	ItemName string
	Quantity int
	Total    decimal.Decimal
	Date     string
}

// SalesLog is the append-only sales ledger. Records are never mutated or
// deleted after commit.
type SalesLog struct {
	records []Sale
	nextID  int64
}

// NewSalesLog creates an empty sales ledger.
func NewSalesLog() *SalesLog {
	return &SalesLog{nextID: 1}
}

// append commits a sale record and returns it with its assigned id.
func (sl *SalesLog) append(sale Sale) Sale {
	sale.ID = sl.nextID
	sl.nextID++
	sl.records = append(sl.records, sale)
	return sale
}

// Sales returns all records in insertion order.
func (sl *SalesLog) Sales() []Sale {
	out := make([]Sale, len(sl.records))
	copy(out, sl.records)
	return out
}

// Len returns the number of committed sales.
func (sl *SalesLog) Len() int { return len(sl.records) }

// saleDraft carries the validated inputs for a sale commit.
type saleDraft struct {
	customer string
	payment  string
	repeat   bool
	itemID   int64
	quantity int
}

func newSaleRecord(draft saleDraft, item *Item, date string) Sale {
	return Sale{
		Customer: norm.NFC.String(draft.customer),
		Payment:  draft.payment,
		Repeat:   draft.repeat,
		ItemName: item.Name,
		Quantity: draft.quantity,
		Total:    item.Price.Mul(decimal.NewFromInt(int64(draft.quantity))),
		Date:     date,
	}
}
