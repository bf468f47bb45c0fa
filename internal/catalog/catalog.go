// Package catalog holds the static item definitions sold in the shop and
// stored in the inventory.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

type ItemType string

const (
	TypeFood    ItemType = "food"
	TypeToy     ItemType = "toy"
	TypeSpecial ItemType = "special"
)

func (t ItemType) IsValid() bool {
	switch t {
	case TypeFood, TypeToy, TypeSpecial:
		return true
	default:
		return false
	}
}

// Item is one catalog entry. Effect values are applied to a pet when the item is used.
type Item struct {
	ID          string   `toml:"id" json:"id"`
	Type        ItemType `toml:"type" json:"type"`
	Name        string   `toml:"name" json:"name"`
	Description string   `toml:"description" json:"description"`
	Cost        int      `toml:"cost" json:"cost"`
	Satiety     float64  `toml:"satiety" json:"satiety"`
	Happiness   float64  `toml:"happiness" json:"happiness"`
	Energy      float64  `toml:"energy" json:"energy"`
	Exp         float64  `toml:"exp" json:"exp"`
}

// Catalog is an immutable lookup table of items.
type Catalog struct {
	items map[string]Item
}

var ErrInvalidItem = errors.New("invalid catalog item")

func New(items ...Item) (*Catalog, error) {
	c := &Catalog{items: make(map[string]Item, len(items))}
	for _, it := range items {
		if err := c.put(it); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) put(it Item) error {
	it.ID = strings.TrimSpace(it.ID)
	if it.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidItem)
	}
	if !it.Type.IsValid() {
		return fmt.Errorf("%w: %s has type %q", ErrInvalidItem, it.ID, it.Type)
	}
	if it.Cost < 0 {
		return fmt.Errorf("%w: %s has negative cost", ErrInvalidItem, it.ID)
	}
	c.items[it.ID] = it
	return nil
}

func (c *Catalog) Lookup(id string) (Item, bool) {
	it, ok := c.items[id]
	return it, ok
}

// All returns every item sorted by cost, then id.
func (c *Catalog) All() []Item {
	out := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost < out[j].Cost
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (c *Catalog) ByType(t ItemType) []Item {
	var out []Item
	for _, it := range c.All() {
		if it.Type == t {
			out = append(out, it)
		}
	}
	return out
}

type catalogFile struct {
	Items []Item `toml:"items"`
}

// LoadFile returns the default catalog extended (or overridden by id) with
// the [[items]] tables of a TOML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var f catalogFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	c := Default()
	for _, it := range f.Items {
		if err := c.put(it); err != nil {
			return nil, err
		}
	}
	return c, nil
}
