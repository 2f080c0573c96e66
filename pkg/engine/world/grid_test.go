package world

import "testing"

// makeJaggedGrid creates the 5/7/5 grid with every cell walkable
func makeJaggedGrid(t *testing.T) *Grid {
	t.Helper()
	g := NewGrid(5, 7, 5)
	g.Replace(Blank, Path)
	return g
}

func TestNewGrid_AllBlank(t *testing.T) {
	g := NewGrid(3, 5, 7)
	if g.Rows() != 3 {
		t.Fatalf("Rows() = %d, want 3", g.Rows())
	}
	want := []int{3, 5, 7}
	for y, n := range want {
		if g.RowLen(y) != n {
			t.Errorf("RowLen(%d) = %d, want %d", y, g.RowLen(y), n)
		}
	}
	if g.Count(Blank) != 15 {
		t.Errorf("Count(Blank) = %d, want 15", g.Count(Blank))
	}
}

func TestRemapX_Pure(t *testing.T) {
	cases := []struct {
		oldLen, newLen, oldX, dx, want int
	}{
		{5, 7, 2, 0, 3},
		{7, 5, 3, 0, 2},
		{7, 5, 0, 0, -1},
		{5, 5, 1, 1, 2},
		{11, 17, 4, -1, 6},
	}
	for _, c := range cases {
		if got := RemapX(c.oldLen, c.newLen, c.oldX, c.dx); got != c.want {
			t.Errorf("RemapX(%d, %d, %d, %d) = %d, want %d", c.oldLen, c.newLen, c.oldX, c.dx, got, c.want)
		}
	}
}

func TestStep_DownKeepsCenterOffset(t *testing.T) {
	g := makeJaggedGrid(t)
	ny, nx, ok := g.Step(0, 2, Down)
	if !ok || ny != 1 || nx != 3 {
		t.Errorf("Step(0, 2, Down) = (%d, %d, %v), want (1, 3, true)", ny, nx, ok)
	}
	by, bx, ok := g.Step(ny, nx, Up)
	if !ok || by != 0 || bx != 2 {
		t.Errorf("Step(1, 3, Up) = (%d, %d, %v), want (0, 2, true)", by, bx, ok)
	}
}

func TestStep_OutOfBounds(t *testing.T) {
	g := makeJaggedGrid(t)
	if _, _, ok := g.Step(0, 2, Up); ok {
		t.Error("Step off the top row reported in bounds")
	}
	if _, _, ok := g.Step(1, 0, Down); ok {
		t.Error("Step from the wide row's edge into a narrow row reported in bounds")
	}
	if _, _, ok := g.Step(1, 6, Right); ok {
		t.Error("Step off the right edge reported in bounds")
	}
}

func TestCountAdjacent(t *testing.T) {
	g := NewGrid(5, 7, 5)
	g.Set(1, 3, Path)
	g.Set(0, 2, Path)
	g.Set(2, 2, Path)
	g.Set(1, 2, Path)

	if got := g.CountAdjacent(1, 3, Path); got != 3 {
		t.Errorf("CountAdjacent(1, 3) = %d, want 3", got)
	}
	if got := g.CountAdjacent(0, 0, Path); got != 0 {
		t.Errorf("CountAdjacent(0, 0) = %d, want 0", got)
	}
}

func TestCountAdjacent_FollowsRemapAcrossRows(t *testing.T) {
	g := NewGrid(5, 7, 5)
	// Same raw index as (1, 3) but one column right of its remapped neighbour
	g.Set(0, 3, Path)
	g.Set(2, 3, Path)

	if got := g.CountAdjacent(1, 3, Path); got != 0 {
		t.Errorf("CountAdjacent(1, 3) = %d, want 0", got)
	}

	g.Set(0, 2, Path)
	if got := g.CountAdjacent(1, 3, Path); got != 1 {
		t.Errorf("CountAdjacent(1, 3) with remapped neighbour = %d, want 1", got)
	}
}

func TestGet_OutOfBoundsIsBlank(t *testing.T) {
	g := makeJaggedGrid(t)
	for _, p := range []Position{{-1, 0}, {0, 5}, {3, 0}, {1, -1}} {
		if got := g.Get(p.Y, p.X); got != Blank {
			t.Errorf("Get(%d, %d) = %v, want Blank", p.Y, p.X, got)
		}
	}
	if g.Set(0, 9, Path) {
		t.Error("Set out of bounds = true, want false")
	}
}

func TestVisibleWindow_PadsEdgesWithBlank(t *testing.T) {
	g := makeJaggedGrid(t)
	g.Set(0, 0, Lantern)

	window := VisibleWindow(g, 0, 2, 3)
	if len(window) != 7 {
		t.Fatalf("len(window) = %d, want 7", len(window))
	}
	for wy, row := range window {
		if len(row) != 7 {
			t.Fatalf("len(window[%d]) = %d, want 7", wy, len(row))
		}
	}
	// Rows above the grid
	for wy := 0; wy < 3; wy++ {
		for wx, item := range window[wy] {
			if item != Blank {
				t.Errorf("window[%d][%d] = %v, want Blank above grid", wy, wx, item)
			}
		}
	}
	// Player row: columns -1 and 5 fall outside the 5-wide row
	if window[3][0] != Blank || window[3][6] != Blank {
		t.Errorf("player row edges = %v, %v; want Blank", window[3][0], window[3][6])
	}
	if window[3][1] != Lantern {
		t.Errorf("window[3][1] = %v, want Lantern", window[3][1])
	}
	if window[3][3] != Path {
		t.Errorf("window[3][3] (player) = %v, want Path", window[3][3])
	}
	// Row 1 is 7 wide, remapped so its center lines up under the player
	for wx := 0; wx < 7; wx++ {
		if window[4][wx] != Path {
			t.Errorf("window[4][%d] = %v, want Path", wx, window[4][wx])
		}
	}
	// Below the last row
	for wy := 6; wy < 7; wy++ {
		for wx, item := range window[wy] {
			if item != Blank {
				t.Errorf("window[%d][%d] = %v, want Blank below grid", wy, wx, item)
			}
		}
	}
}

func TestVisibleWindow_DoesNotMutate(t *testing.T) {
	g := makeJaggedGrid(t)
	before := g.Snapshot()
	window := VisibleWindow(g, 1, 3, 2)
	window[2][2] = Gasoline
	after := g.Snapshot()
	for y := range before {
		for x := range before[y] {
			if before[y][x] != after[y][x] {
				t.Fatalf("grid changed at (%d, %d)", y, x)
			}
		}
	}
}
