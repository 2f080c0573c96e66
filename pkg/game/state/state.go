package state

import (
	"fmt"

	"lanternmaze/pkg/engine/world"
	"lanternmaze/pkg/game/generator"
)

const maxMessages = 5

// Game is one maze session: the generated grid and the player walking it.
// The grid keeps its shape for the life of the game; a new maze means a new Game.
type Game struct {
	grid   *world.Grid
	player *Player

	// Stats about how the maze was generated
	Attempts   int
	PathSize   int
	Degenerate bool

	Messages []string
}

// NewGame generates a board and places the player on its start cell
func NewGame(gen generator.GridGenerator) (*Game, error) {
	board, err := gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate board with %s: %w", gen.Name(), err)
	}

	g, err := NewGameFromGrid(board.Grid, board.Start)
	if err != nil {
		return nil, err
	}
	g.Attempts = board.Attempts
	g.PathSize = board.PathSize
	g.Degenerate = board.Degenerate
	return g, nil
}

// NewGameFromGrid creates a game on an existing grid. The start must be walkable.
func NewGameFromGrid(grid *world.Grid, start world.Position) (*Game, error) {
	if grid == nil {
		return nil, fmt.Errorf("new game: nil grid")
	}
	if !grid.Get(start.Y, start.X).IsWalkable() {
		return nil, fmt.Errorf("new game: start (%d, %d) is not walkable", start.Y, start.X)
	}

	return &Game{
		grid:     grid,
		player:   NewPlayer(start.X, start.Y),
		Messages: make([]string, 0),
	}, nil
}

// Grid returns the maze grid
func (g *Game) Grid() *world.Grid {
	return g.grid
}

// Position returns the player's position
func (g *Game) Position() world.Position {
	return g.player.Position()
}

// Player returns a copy of the player; changing it does not affect the game
func (g *Game) Player() Player {
	inventory := world.NewItemSet()
	g.player.Inventory.Each(func(item world.Item) {
		inventory.Put(item)
	})
	return Player{X: g.player.X, Y: g.player.Y, Inventory: inventory}
}

// Inventory returns the collected items in enumeration order
func (g *Game) Inventory() []world.Item {
	return g.player.Items()
}

// HasItem checks if the player has collected a specific item
func (g *Game) HasItem(item world.Item) bool {
	return g.player.HasItem(item)
}

// Collectibles returns every item the player has to find
func (g *Game) Collectibles() []world.Item {
	return world.CollectibleItems()
}

// target returns the cell a move in dir would land on
func (g *Game) target(dir world.Direction) (int, int, bool) {
	if !dir.IsValid() {
		return 0, 0, false
	}
	return g.grid.Step(g.player.Y, g.player.X, dir)
}

// IsValidMove checks if a move in the given direction stays in the grid and
// does not land on Blank
func (g *Game) IsValidMove(dir world.Direction) bool {
	ny, nx, ok := g.target(dir)
	return ok && g.grid.Get(ny, nx) != world.Blank
}

// Move moves the player if the move is valid and reports whether it did.
// Item pickup is left to CheckForItem.
func (g *Game) Move(dir world.Direction) bool {
	if !g.IsValidMove(dir) {
		return false
	}
	ny, nx, _ := g.target(dir)
	g.player.Y = ny
	g.player.X = nx
	return true
}

// CheckForItem picks up a collectible under the player, if any. The cell
// becomes Path so the item cannot be collected twice.
func (g *Game) CheckForItem() (world.Item, bool) {
	item := g.grid.Get(g.player.Y, g.player.X)
	if !item.IsCollectible() || g.player.HasItem(item) {
		return item, false
	}

	g.player.CollectItem(item)
	g.grid.Set(g.player.Y, g.player.X, world.Path)
	return item, true
}

// WinCondition checks if the player has collected all collectible items
func (g *Game) WinCondition() bool {
	for _, item := range world.CollectibleItems() {
		if !g.player.HasItem(item) {
			return false
		}
	}
	return true
}

// VisibleGrid returns the (2*radius+1)-square view centered on the player
func (g *Game) VisibleGrid(radius int) [][]world.Item {
	return world.VisibleWindow(g.grid, g.player.Y, g.player.X, radius)
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
