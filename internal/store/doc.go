// Package store holds the in-memory application state for gemshelf.
//
// The state is made of three collections:
//   - Accounts: registered users, keyed by email
//   - Inventory: stocked jewelry items, keyed by monotonic id
//   - Sales: an append-only log of committed transactions
//
// There are no package-level singletons. New() returns a fresh, fully
// isolated State so tests can run against their own instance. The process
// owns exactly one State for its lifetime; nothing is persisted across runs.
//
// # Id assignment
//
// Item and sale ids are assigned from independent counters starting at 1.
// Ids are strictly increasing and never reused, even after an item is
// removed.
//
// # Sale snapshots
//
// A committed Sale carries a frozen copy of the item name and the computed
// total at the time of sale. Later edits or removal of the inventory item
// do not alter sales history.
package store
