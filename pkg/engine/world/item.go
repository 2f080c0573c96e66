package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Item is the kind of content held by a grid cell.
type Item int

// Cell kinds. Everything after Path is a collectible.
const (
	Blank Item = iota // impassable / unrevealed
	Path              // walkable, empty corridor
	Lantern
	Gloves
	Chainsaw
	Gasoline
)

// ItemSet is a set of items
type ItemSet = mapset.Set[Item]

var itemNames = map[Item]string{
	Blank:    "Blank",
	Path:     "Path",
	Lantern:  "Lantern",
	Gloves:   "Gloves",
	Chainsaw: "Chainsaw",
	Gasoline: "Gasoline",
}

// NewItemSet creates an empty item set
func NewItemSet() ItemSet {
	return mapset.New[Item]()
}

// AllItems returns every cell kind in enumeration order
func AllItems() []Item {
	return []Item{Blank, Path, Lantern, Gloves, Chainsaw, Gasoline}
}

// CollectibleItems returns the collectible kinds in enumeration order.
func CollectibleItems() []Item {
	var items []Item
	for _, item := range AllItems() {
		if item.IsCollectible() {
			items = append(items, item)
		}
	}
	return items
}

// IsCollectible reports whether the player can pick the item up
func (i Item) IsCollectible() bool {
	return i > Path && i <= Gasoline
}

// IsWalkable reports whether a player may stand on a cell of this kind
func (i Item) IsWalkable() bool {
	return i == Path || i.IsCollectible()
}

// String returns the item name
func (i Item) String() string {
	if name, ok := itemNames[i]; ok {
		return name
	}
	return "Unknown"
}

// ParseItem returns the item with the given name
func ParseItem(name string) (Item, bool) {
	for item, n := range itemNames {
		if n == name {
			return item, true
		}
	}
	return Blank, false
}

// MarshalText encodes the item by name
func (i Item) MarshalText() ([]byte, error) {
	if _, ok := itemNames[i]; !ok {
		return nil, fmt.Errorf("unknown item %d", int(i))
	}
	return []byte(i.String()), nil
}

// UnmarshalText decodes an item name
func (i *Item) UnmarshalText(text []byte) error {
	item, ok := ParseItem(string(text))
	if !ok {
		return fmt.Errorf("unknown item %q", string(text))
	}
	*i = item
	return nil
}
