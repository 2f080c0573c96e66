package generator

import (
	"errors"

	"lanternmaze/pkg/engine/world"
)

// Placement failures. A maze with too few path cells cannot hold every
// collectible plus the player.
var (
	ErrNotEnoughPathCells = errors.New("not enough path cells for collectible items")
	ErrNoPlayerStart      = errors.New("no path cell left for the player start")
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate() (*Board, error)
	Name() string
}

// Source is the random source driving generation. *rand.Rand satisfies it;
// seed one for reproducible mazes.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Board is a generated maze with its collectibles placed
type Board struct {
	Grid  *world.Grid
	Start world.Position

	// PathSize is the number of cells carved by the accepted (or last) walk.
	PathSize int
	// Attempts is the number of carve attempts used.
	Attempts int
	// Degenerate is set when no attempt met the size thresholds and the
	// last attempt was kept anyway.
	Degenerate bool
}
