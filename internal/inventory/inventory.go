// Package inventory stores stackable items keyed by catalog id.
package inventory

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"kittyhaven/internal/catalog"
)

const DefaultCapacity = 100

var (
	ErrUnknownItem     = errors.New("unknown item")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrTooMany         = errors.New("quantity too large")
)

// CapacityError is returned when adding a new item id would exceed the
// number of distinct stacks the bag holds.
type CapacityError struct {
	Limit int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("inventory full (limit %d kinds)", e.Limit)
}

type InsufficientError struct {
	ItemID string
	Need   int
	Have   int
}

func (e InsufficientError) Error() string {
	return fmt.Sprintf("not enough %s: need %d, have %d", e.ItemID, e.Need, e.Have)
}

type Entry struct {
	catalog.Item
	Quantity int `json:"quantity"`
}

type Inventory struct {
	catalog  *catalog.Catalog
	capacity int
	items    map[string]int
}

func New(c *catalog.Catalog, capacity int) *Inventory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Inventory{catalog: c, capacity: capacity, items: map[string]int{}}
}

// StartingStock is what a brand new save begins with.
func StartingStock() map[string]int {
	return map[string]int{"fish": 5, "cat_food": 2, "premium_cat_food": 1}
}

func (inv *Inventory) Capacity() int {
	return inv.capacity
}

func (inv *Inventory) Len() int {
	return len(inv.items)
}

func (inv *Inventory) Quantity(id string) int {
	return inv.items[id]
}

// CanAdd reports whether id could be added without hitting capacity.
func (inv *Inventory) CanAdd(id string) bool {
	if _, ok := inv.catalog.Lookup(id); !ok {
		return false
	}
	if _, ok := inv.items[id]; ok {
		return true
	}
	return len(inv.items) < inv.capacity
}

// Fits reports whether every id in ids could be added at once.
func (inv *Inventory) Fits(ids ...string) bool {
	fresh := map[string]bool{}
	for _, id := range ids {
		if _, ok := inv.catalog.Lookup(id); !ok {
			return false
		}
		if _, ok := inv.items[id]; !ok {
			fresh[id] = true
		}
	}
	return len(inv.items)+len(fresh) <= inv.capacity
}

func (inv *Inventory) Add(id string, qty int) error {
	if _, ok := inv.catalog.Lookup(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	if qty < 1 {
		return ErrInvalidQuantity
	}
	have, ok := inv.items[id]
	if !ok && len(inv.items) >= inv.capacity {
		return CapacityError{Limit: inv.capacity}
	}
	if qty > math.MaxInt-have {
		return fmt.Errorf("%w: %d more %s", ErrTooMany, qty, id)
	}
	inv.items[id] = have + qty
	return nil
}

func (inv *Inventory) Remove(id string, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	have, ok := inv.items[id]
	if !ok {
		if _, known := inv.catalog.Lookup(id); !known {
			return fmt.Errorf("%w: %s", ErrUnknownItem, id)
		}
	}
	if have < qty {
		return InsufficientError{ItemID: id, Need: qty, Have: have}
	}
	if have == qty {
		delete(inv.items, id)
		return nil
	}
	inv.items[id] = have - qty
	return nil
}

// Use consumes one of id and returns its catalog definition.
func (inv *Inventory) Use(id string) (catalog.Item, error) {
	if err := inv.Remove(id, 1); err != nil {
		return catalog.Item{}, err
	}
	it, _ := inv.catalog.Lookup(id)
	return it, nil
}

// Entries returns every stack sorted by id.
func (inv *Inventory) Entries() []Entry {
	out := make([]Entry, 0, len(inv.items))
	for id, qty := range inv.items {
		it, ok := inv.catalog.Lookup(id)
		if !ok {
			continue
		}
		out = append(out, Entry{Item: it, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (inv *Inventory) ByType(t catalog.ItemType) []Entry {
	var out []Entry
	for _, e := range inv.Entries() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (inv *Inventory) Snapshot() map[string]int {
	out := make(map[string]int, len(inv.items))
	for id, qty := range inv.items {
		out[id] = qty
	}
	return out
}

// Restore replaces the contents with snap. Unknown ids and non-positive
// quantities are dropped; their ids are returned.
func (inv *Inventory) Restore(snap map[string]int) []string {
	inv.items = make(map[string]int, len(snap))
	var dropped []string
	for id, qty := range snap {
		if _, ok := inv.catalog.Lookup(id); !ok || qty < 1 {
			dropped = append(dropped, id)
			continue
		}
		inv.items[id] = qty
	}
	sort.Strings(dropped)
	return dropped
}
