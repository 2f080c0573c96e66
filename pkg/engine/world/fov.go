package world

// DefaultVisibilityRadius is the default view radius around the player
const DefaultVisibilityRadius = 3

// VisibleWindow projects a (2*radius+1)-square window of the grid centered on
// (y, x). Window row wy shows grid row y+wy-radius; columns are remapped from
// row y so the corridor stays centered. Cells outside the grid read as Blank.
// The grid is never modified.
func VisibleWindow(grid *Grid, y, x, radius int) [][]Item {
	if radius < 0 {
		radius = 0
	}
	size := 2*radius + 1
	window := make([][]Item, size)

	for wy := 0; wy < size; wy++ {
		window[wy] = make([]Item, size)
		if grid == nil {
			continue
		}

		gy := y + wy - radius
		if gy < 0 || gy >= grid.Rows() {
			// Blank is the zero value
			continue
		}

		for wx := 0; wx < size; wx++ {
			gx := grid.RemapX(y, x, gy, wx-radius)
			window[wy][wx] = grid.Get(gy, gx)
		}
	}

	return window
}
