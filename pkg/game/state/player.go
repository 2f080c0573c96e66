package state

import (
	"lanternmaze/pkg/engine/world"
)

// Player is the maze walker: a grid position and the items collected so far
type Player struct {
	X int
	Y int

	Inventory world.ItemSet
}

// NewPlayer creates a player at the given position with an empty inventory
func NewPlayer(x, y int) *Player {
	return &Player{
		X:         x,
		Y:         y,
		Inventory: world.NewItemSet(),
	}
}

// Position returns the player's grid position
func (p *Player) Position() world.Position {
	return world.Position{Y: p.Y, X: p.X}
}

// CollectItem adds an item to the inventory. Returns false if it was already held.
func (p *Player) CollectItem(item world.Item) bool {
	if p.Inventory.Has(item) {
		return false
	}
	p.Inventory.Put(item)
	return true
}

// HasItem checks if the player has a specific item
func (p *Player) HasItem(item world.Item) bool {
	return p.Inventory.Has(item)
}

// Items returns the held items in enumeration order
func (p *Player) Items() []world.Item {
	var items []world.Item
	for _, item := range world.AllItems() {
		if p.Inventory.Has(item) {
			items = append(items, item)
		}
	}
	return items
}
