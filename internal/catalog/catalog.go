package catalog

import (
	"errors"
	"fmt"

	"github.com/eugenenazirov/party-planner/internal/party"
)

var (
	// ErrInvalidCatalog indicates the provided items violate catalog rules.
	ErrInvalidCatalog = errors.New("catalog must contain at least one item with sequential indices, a name and a non-negative value")
)

var defaultItems = []party.Item{
	{Index: 0, Name: "Cake", Value: 20},
	{Index: 1, Name: "Balloons", Value: 21},
	{Index: 2, Name: "Music System", Value: 10},
	{Index: 3, Name: "Lights", Value: 5},
	{Index: 4, Name: "Catering Service", Value: 8},
	{Index: 5, Name: "DJ", Value: 3},
	{Index: 6, Name: "Photo Booth", Value: 15},
	{Index: 7, Name: "Tables", Value: 7},
	{Index: 8, Name: "Chairs", Value: 12},
	{Index: 9, Name: "Drinks", Value: 6},
	{Index: 10, Name: "Party Hats", Value: 9},
	{Index: 11, Name: "Streamers", Value: 18},
	{Index: 12, Name: "Invitation Cards", Value: 4},
	{Index: 13, Name: "Party Games", Value: 2},
	{Index: 14, Name: "Cleaning Service", Value: 11},
}

// Catalog provides read access to the party items offered to users.
type Catalog interface {
	Items() ([]party.Item, error)
	Len() int
}

// MemoryCatalog keeps a fixed item list in memory. It is never modified after construction.
type MemoryCatalog struct {
	items []party.Item
}

// DefaultItems returns a copy of the built-in party items.
func DefaultItems() []party.Item {
	return clone(defaultItems)
}

// NewDefault returns a catalog holding the built-in party items.
func NewDefault() *MemoryCatalog {
	return &MemoryCatalog{items: clone(defaultItems)}
}

// NewMemoryCatalog validates items and stores a private copy of them.
func NewMemoryCatalog(items []party.Item) (*MemoryCatalog, error) {
	if err := validate(items); err != nil {
		return nil, err
	}
	return &MemoryCatalog{items: clone(items)}, nil
}

// Items returns a copy of the catalog items in index order.
func (c *MemoryCatalog) Items() ([]party.Item, error) {
	return clone(c.items), nil
}

// Len reports the number of items in the catalog.
func (c *MemoryCatalog) Len() int {
	return len(c.items)
}

func clone(src []party.Item) []party.Item {
	out := make([]party.Item, len(src))
	copy(out, src)
	return out
}

func validate(items []party.Item) error {
	if len(items) == 0 {
		return ErrInvalidCatalog
	}
	for pos, item := range items {
		if item.Index != pos {
			return fmt.Errorf("%w: item %q has index %d at position %d", ErrInvalidCatalog, item.Name, item.Index, pos)
		}
		if item.Name == "" {
			return fmt.Errorf("%w: item at position %d has no name", ErrInvalidCatalog, pos)
		}
		if item.Value < 0 {
			return fmt.Errorf("%w: item %q has negative value %d", ErrInvalidCatalog, item.Name, item.Value)
		}
	}
	return nil
}
