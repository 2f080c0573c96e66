// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lanternmaze/pkg/engine/world"
	"lanternmaze/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for an item (no player overlay)
func cellSymbol(item world.Item) rune {
	switch item {
	case world.Path:
		return '.'
	case world.Lantern:
		return 'L'
	case world.Gloves:
		return 'G'
	case world.Chainsaw:
		return 'C'
	case world.Gasoline:
		return 'F'
	default:
		return '#'
	}
}

// writeMapGrid writes every row centered on the widest row, with the player as '@'.
// Rows of different length line up the way movement between them does.
func writeMapGrid(w io.Writer, g *state.Game) {
	grid := g.Grid()
	widest := 0
	for _, n := range grid.RowLengths() {
		widest = max(widest, n)
	}

	player := g.Position()
	for y := 0; y < grid.Rows(); y++ {
		var line strings.Builder
		line.WriteString(strings.Repeat(" ", (widest-grid.RowLen(y))/2))
		for x := 0; x < grid.RowLen(y); x++ {
			if y == player.Y && x == player.X {
				line.WriteRune('@')
				continue
			}
			line.WriteRune(cellSymbol(grid.Get(y, x)))
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}

// WriteMap writes a full debug dump of the maze: metadata, legend, the whole
// grid (not just the visible window) and the inventory.
func WriteMap(w io.Writer, g *state.Game) error {
	if g == nil || g.Grid() == nil {
		return fmt.Errorf("no grid")
	}

	grid := g.Grid()
	player := g.Position()

	fmt.Fprintln(w, "=== MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "rows: %d\n", grid.Rows())
	fmt.Fprintf(w, "row_lengths: %v\n", grid.RowLengths())
	fmt.Fprintf(w, "path_cells: %d\n", grid.Count(world.Path))
	fmt.Fprintf(w, "path_size: %d\n", g.PathSize)
	fmt.Fprintf(w, "attempts: %d\n", g.Attempts)
	fmt.Fprintf(w, "degenerate: %v\n", g.Degenerate)
	fmt.Fprintf(w, "player_cell: %d,%d\n", player.Y, player.X)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "# = blank  . = path  L = lantern  G = gloves  C = chainsaw  F = gasoline  @ = player")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (rows centered) ---")
	writeMapGrid(w, g)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Items on floor ---")
	for _, item := range world.CollectibleItems() {
		for _, p := range grid.Positions(item) {
			fmt.Fprintf(w, "  row: %d col: %d item_name: %q\n", p.Y, p.X, item.String())
		}
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Player inventory ---")
	inventory := g.Inventory()
	if len(inventory) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, item := range inventory {
		fmt.Fprintf(w, "  item_name: %q\n", item.String())
	}
	fmt.Fprintln(w, "")

	_, err := fmt.Fprintln(w, "=== END MAP DUMP ===")
	return err
}

// DumpMapToFile writes WriteMap's output to map.txt in the working directory
// and returns its absolute path.
func DumpMapToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMap(f, g); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
