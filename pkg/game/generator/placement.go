package generator

import (
	"fmt"

	"lanternmaze/pkg/engine/world"
)

// PlaceItems puts one of each collectible on a random path cell and picks
// another random path cell as the player start
func (g *PathWalkerGenerator) PlaceItems(grid *world.Grid) (world.Position, error) {
	items := world.CollectibleItems()
	cells := g.shuffledPathCells(grid)

	if len(cells) < len(items) {
		return world.Position{}, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughPathCells, len(cells), len(items))
	}

	for i, item := range items {
		grid.Set(cells[i].Y, cells[i].X, item)
	}

	remaining := cells[len(items):]
	if len(remaining) == 0 {
		return world.Position{}, ErrNoPlayerStart
	}

	return remaining[0], nil
}

// shuffledPathCells returns every Path cell in random order (Fisher-Yates)
func (g *PathWalkerGenerator) shuffledPathCells(grid *world.Grid) []world.Position {
	cells := grid.Positions(world.Path)
	for i := len(cells) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}
