// Package generator tests the path walker: connectivity, corridor width,
// collectible placement and termination under hostile random sources.
package generator

import (
	"errors"
	"math/rand"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"lanternmaze/pkg/engine/world"
)

// fixedSource always returns index 0 and the same float
type fixedSource struct {
	f float64
}

func (s fixedSource) Intn(int) int     { return 0 }
func (s fixedSource) Float64() float64 { return s.f }

func newSeededGenerator(t *testing.T, seed int64) *PathWalkerGenerator {
	t.Helper()
	logger, _ := test.NewNullLogger()
	g, err := New(DefaultConfig(), rand.New(rand.NewSource(seed)), WithLogger(logger))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// countReachable returns the number of walkable cells reachable from start by single steps.
func countReachable(grid *world.Grid, start world.Position) int {
	if !grid.Get(start.Y, start.X).IsWalkable() {
		return 0
	}
	visited := map[world.Position]bool{start: true}
	queue := []world.Position{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, dir := range world.AllDirections() {
			ny, nx, ok := grid.Step(p.Y, p.X, dir)
			n := world.Position{Y: ny, X: nx}
			if ok && grid.Get(ny, nx).IsWalkable() && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited)
}

// countWalkable returns the number of Path and collectible cells.
func countWalkable(grid *world.Grid) int {
	n := 0
	grid.ForEachCell(func(_, _ int, item world.Item) {
		if item.IsWalkable() {
			n++
		}
	})
	return n
}

func TestGenerate_AllWalkableCellsConnected(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		board, err := newSeededGenerator(t, seed).Generate()
		if err != nil {
			t.Fatalf("seed %d: Generate: %v", seed, err)
		}
		total := countWalkable(board.Grid)
		reachable := countReachable(board.Grid, board.Start)
		if reachable != total {
			t.Errorf("seed %d: reachable cells %d != walkable cells %d", seed, reachable, total)
		}
	}
}

func TestGenerate_OneOfEachCollectible(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		board, err := newSeededGenerator(t, seed).Generate()
		if err != nil {
			t.Fatalf("seed %d: Generate: %v", seed, err)
		}
		for _, item := range world.CollectibleItems() {
			if n := board.Grid.Count(item); n != 1 {
				t.Errorf("seed %d: Count(%v) = %d, want 1", seed, item, n)
			}
		}
	}
}

func TestGenerate_StartIsPath(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		board, err := newSeededGenerator(t, seed).Generate()
		if err != nil {
			t.Fatalf("seed %d: Generate: %v", seed, err)
		}
		if got := board.Grid.Get(board.Start.Y, board.Start.X); got != world.Path {
			t.Errorf("seed %d: start cell = %v, want Path", seed, got)
		}
	}
}

func TestGenerate_PathSizeMeetsThresholds(t *testing.T) {
	cfg := DefaultConfig()
	for seed := int64(1); seed <= 10; seed++ {
		board, err := newSeededGenerator(t, seed).Generate()
		if err != nil {
			t.Fatalf("seed %d: Generate: %v", seed, err)
		}
		if board.Degenerate {
			continue
		}
		if board.PathSize <= cfg.MinPathSize {
			t.Errorf("seed %d: PathSize = %d, want > %d", seed, board.PathSize, cfg.MinPathSize)
		}
		if got := countWalkable(board.Grid); got != board.PathSize {
			t.Errorf("seed %d: walkable cells %d != PathSize %d", seed, got, board.PathSize)
		}
	}
}

func TestBuildGrid_OddDimensionsInRange(t *testing.T) {
	g := newSeededGenerator(t, 7)
	cfg := g.Config()
	for i := 0; i < 50; i++ {
		grid := g.BuildGrid()
		check := func(what string, n int) {
			if n%2 == 0 {
				t.Errorf("%s = %d, want odd", what, n)
			}
			if n < cfg.MinSize || n > cfg.MaxSize {
				t.Errorf("%s = %d, want within [%d, %d]", what, n, cfg.MinSize, cfg.MaxSize)
			}
		}
		check("rows", grid.Rows())
		for y := 0; y < grid.Rows(); y++ {
			check("row length", grid.RowLen(y))
		}
		if grid.Count(world.Blank) != countCells(grid) {
			t.Error("BuildGrid produced non-Blank cells")
		}
	}
}

func countCells(grid *world.Grid) int {
	n := 0
	for _, l := range grid.RowLengths() {
		n += l
	}
	return n
}

func TestCarvePath_WidthInvariantAtCarveTime(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g := newSeededGenerator(t, seed)
		maxWidth := g.Config().MaxWidth
		carved := 0
		g.onCarve = func(grid *world.Grid, y, x int) {
			carved++
			if n := grid.CountAdjacent(y, x, world.Path); n > maxWidth {
				t.Errorf("seed %d: cell (%d, %d) carved with %d path neighbours, max %d", seed, y, x, n, maxWidth)
			}
		}
		if _, err := g.Generate(); err != nil {
			t.Fatalf("seed %d: Generate: %v", seed, err)
		}
		if carved == 0 {
			t.Fatalf("seed %d: carve hook never called", seed)
		}
	}
}

func TestGenerate_SameSeedSameMaze(t *testing.T) {
	a, err := newSeededGenerator(t, 99).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := newSeededGenerator(t, 99).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a.Start != b.Start {
		t.Errorf("start %v != %v", a.Start, b.Start)
	}
	ra, rb := a.Grid.Snapshot(), b.Grid.Snapshot()
	if len(ra) != len(rb) {
		t.Fatalf("row counts differ: %d vs %d", len(ra), len(rb))
	}
	for y := range ra {
		if len(ra[y]) != len(rb[y]) {
			t.Fatalf("row %d lengths differ", y)
		}
		for x := range ra[y] {
			if ra[y][x] != rb[y][x] {
				t.Fatalf("cell (%d, %d) differs: %v vs %v", y, x, ra[y][x], rb[y][x])
			}
		}
	}
}

func TestCarvePath_ExhaustedAttemptsKeepsLastWalk(t *testing.T) {
	logger, hook := test.NewNullLogger()
	cfg := DefaultConfig()
	cfg.MaxAttempts = 20
	// Never continue, never branch: every walk is a single cell.
	g, err := New(cfg, fixedSource{f: 0.99}, WithLogger(logger))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	grid := g.BuildGrid()
	size, attempts, ok := g.CarvePath(grid)
	if ok {
		t.Error("CarvePath ok = true, want false")
	}
	if attempts != cfg.MaxAttempts {
		t.Errorf("attempts = %d, want %d", attempts, cfg.MaxAttempts)
	}
	if size != 1 || grid.Count(world.Path) != 1 {
		t.Errorf("size = %d, Count(Path) = %d; want the last single-cell walk", size, grid.Count(world.Path))
	}

	entry := hook.LastEntry()
	if entry == nil || entry.Level != log.WarnLevel {
		t.Fatalf("expected a warning about the degenerate maze, got %v", entry)
	}
	if entry.Data["attempts"] != cfg.MaxAttempts {
		t.Errorf("warning attempts field = %v, want %d", entry.Data["attempts"], cfg.MaxAttempts)
	}
}

func TestGenerate_DegenerateMazeFailsPlacement(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := DefaultConfig()
	cfg.MaxAttempts = 5
	g, err := New(cfg, fixedSource{f: 0.99}, WithLogger(logger))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	board, err := g.Generate()
	if !errors.Is(err, ErrNotEnoughPathCells) {
		t.Errorf("Generate err = %v, want ErrNotEnoughPathCells", err)
	}
	if board != nil {
		t.Error("Generate returned a board alongside a placement error")
	}
}

func TestGenerate_GreedySourceTerminates(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := DefaultConfig()
	cfg.MaxAttempts = 5
	// Always continue and always branch.
	g, err := New(cfg, fixedSource{f: 0}, WithLogger(logger))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	board, err := g.Generate()
	if err != nil {
		if !errors.Is(err, ErrNotEnoughPathCells) && !errors.Is(err, ErrNoPlayerStart) {
			t.Fatalf("Generate err = %v, want nil or a placement error", err)
		}
		return
	}
	if board.Grid == nil || board.Grid.Rows() == 0 {
		t.Fatal("Generate returned an empty grid")
	}
	if got := board.Grid.Get(board.Start.Y, board.Start.X); got != world.Path {
		t.Errorf("start cell = %v, want Path", got)
	}
}

func TestPlaceItems(t *testing.T) {
	g := newSeededGenerator(t, 3)

	cases := []struct {
		name    string
		paths   int
		wantErr error
	}{
		{"too few for items", 3, ErrNotEnoughPathCells},
		{"none left for player", 4, ErrNoPlayerStart},
		{"enough", 6, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			grid := world.NewGrid(7, 7)
			for x := 0; x < c.paths; x++ {
				grid.Set(0, x, world.Path)
			}
			start, err := g.PlaceItems(grid)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Errorf("PlaceItems err = %v, want %v", err, c.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("PlaceItems: %v", err)
			}
			if grid.Get(start.Y, start.X) != world.Path {
				t.Errorf("start %v holds %v, want Path", start, grid.Get(start.Y, start.X))
			}
			for _, item := range world.CollectibleItems() {
				if grid.Count(item) != 1 {
					t.Errorf("Count(%v) = %d, want 1", item, grid.Count(item))
				}
			}
			if grid.Count(world.Path) != c.paths-len(world.CollectibleItems()) {
				t.Errorf("Count(Path) = %d, want %d", grid.Count(world.Path), c.paths-len(world.CollectibleItems()))
			}
		})
	}
}
