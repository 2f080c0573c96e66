package world

// Position is a row/column location in a grid
type Position struct {
	Y int
	X int
}

// Grid is a jagged 2D map: an ordered list of rows, each of its own length.
// Moving between rows keeps the offset from each row's center column, see RemapX.
type Grid struct {
	rows [][]Item
}

// NewGrid creates a grid with one row per length, every cell Blank
func NewGrid(rowLengths ...int) *Grid {
	g := &Grid{}
	g.Build(rowLengths)
	return g
}

// NewGridFromRows creates a grid holding a copy of the given rows
func NewGridFromRows(rows [][]Item) *Grid {
	g := &Grid{rows: make([][]Item, len(rows))}
	for y, row := range rows {
		g.rows[y] = append([]Item(nil), row...)
	}
	return g
}

// Build initializes the grid with the given row lengths
func (g *Grid) Build(rowLengths []int) {
	g.rows = make([][]Item, len(rowLengths))
	for y, n := range rowLengths {
		if n <= 0 {
			panic("Grid row lengths must be positive")
		}
		// Blank is the zero value
		g.rows[y] = make([]Item, n)
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return len(g.rows)
}

// RowLen returns the length of row y, or 0 if the row does not exist
func (g *Grid) RowLen(y int) int {
	if y < 0 || y >= len(g.rows) {
		return 0
	}
	return len(g.rows[y])
}

// RowLengths returns the length of every row
func (g *Grid) RowLengths() []int {
	lengths := make([]int, len(g.rows))
	for y, row := range g.rows {
		lengths[y] = len(row)
	}
	return lengths
}

// Center returns the center column of row y
func (g *Grid) Center(y int) int {
	return g.RowLen(y) / 2
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(y, x int) bool {
	return y >= 0 && y < len(g.rows) && x >= 0 && x < len(g.rows[y])
}

// Get returns the item at the given position, or Blank if out of bounds
func (g *Grid) Get(y, x int) Item {
	if !g.IsValidPosition(y, x) {
		return Blank
	}
	return g.rows[y][x]
}

// Set stores an item at the given position. Returns false if out of bounds.
func (g *Grid) Set(y, x int, item Item) bool {
	if !g.IsValidPosition(y, x) {
		return false
	}
	g.rows[y][x] = item
	return true
}

// RemapX is the center-relative column transform used for every cross-row step:
// the column keeps its offset from the center of its row, then dx is applied.
func RemapX(oldRowLen, newRowLen, oldX, dx int) int {
	return newRowLen/2 + (oldX - oldRowLen/2) + dx
}

// RemapX maps column x of row fromY into row toY, then applies dx.
// Returns -1 if toY is not a row of the grid.
func (g *Grid) RemapX(fromY, x, toY, dx int) int {
	if toY < 0 || toY >= len(g.rows) {
		return -1
	}
	return RemapX(g.RowLen(fromY), g.RowLen(toY), x, dx)
}

// Step returns the position one cell away in the given direction and
// whether it lies inside the grid
func (g *Grid) Step(y, x int, dir Direction) (int, int, bool) {
	dy, dx := dir.Offsets()
	ny := y + dy
	if ny < 0 || ny >= len(g.rows) {
		return ny, -1, false
	}
	nx := g.RemapX(y, x, ny, dx)
	return ny, nx, g.IsValidPosition(ny, nx)
}

// CountAdjacent counts the in-bounds neighbours of (y, x) holding item.
// Neighbours in other rows are found through RemapX like a move would, not by
// indexing x directly, so rows of different length line up by their centres.
func (g *Grid) CountAdjacent(y, x int, item Item) int {
	count := 0
	for _, dir := range AllDirections() {
		ny, nx, ok := g.Step(y, x, dir)
		if ok && g.rows[ny][nx] == item {
			count++
		}
	}
	return count
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(y, x int, item Item)) {
	for y, row := range g.rows {
		for x, item := range row {
			fn(y, x, item)
		}
	}
}

// Positions returns every position holding item, in row-major order
func (g *Grid) Positions(item Item) []Position {
	var positions []Position
	g.ForEachCell(func(y, x int, it Item) {
		if it == item {
			positions = append(positions, Position{Y: y, X: x})
		}
	})
	return positions
}

// Count returns the number of cells holding item
func (g *Grid) Count(item Item) int {
	n := 0
	g.ForEachCell(func(_, _ int, it Item) {
		if it == item {
			n++
		}
	})
	return n
}

// Replace rewrites every cell holding from to hold to
func (g *Grid) Replace(from, to Item) {
	for _, row := range g.rows {
		for x := range row {
			if row[x] == from {
				row[x] = to
			}
		}
	}
}

// Snapshot returns a deep copy of the rows
func (g *Grid) Snapshot() [][]Item {
	rows := make([][]Item, len(g.rows))
	for y, row := range g.rows {
		rows[y] = append([]Item(nil), row...)
	}
	return rows
}
