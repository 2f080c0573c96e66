package generator

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"lanternmaze/pkg/engine/world"
)

// PathWalkerGenerator carves a narrow maze into a jagged grid with a
// depth-limited random walk that prefers to keep going straight and
// occasionally branches sideways
type PathWalkerGenerator struct {
	cfg Config
	rng Source
	log log.FieldLogger

	// onCarve is called with each cell just before it is carved.
	onCarve func(grid *world.Grid, y, x int)
}

// Option configures a PathWalkerGenerator
type Option func(*PathWalkerGenerator)

// WithLogger sets the logger used for generation quality warnings
func WithLogger(l log.FieldLogger) Option {
	return func(g *PathWalkerGenerator) {
		g.log = l
	}
}

// New creates a path walker with the given tuning and random source
func New(cfg Config, rng Source, opts ...Option) (*PathWalkerGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("invalid generator config: nil random source")
	}

	g := &PathWalkerGenerator{
		cfg: cfg,
		rng: rng,
		log: log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Name returns the name of this generator
func (g *PathWalkerGenerator) Name() string {
	return "Path Walker"
}

// Config returns the generator tuning
func (g *PathWalkerGenerator) Config() Config {
	return g.cfg
}

// Generate builds a fresh grid, carves a path through it and places the
// collectibles and the player start. Only placement can fail.
func (g *PathWalkerGenerator) Generate() (*Board, error) {
	grid := g.BuildGrid()

	pathSize, attempts, ok := g.CarvePath(grid)

	start, err := g.PlaceItems(grid)
	if err != nil {
		return nil, err
	}

	return &Board{
		Grid:       grid,
		Start:      start,
		PathSize:   pathSize,
		Attempts:   attempts,
		Degenerate: !ok,
	}, nil
}

// BuildGrid creates an all-Blank jagged grid with a random odd row count
// and independently drawn odd row lengths
func (g *PathWalkerGenerator) BuildGrid() *world.Grid {
	rows := g.randomOdd(g.cfg.MinSize, g.cfg.MaxSize)
	lengths := make([]int, rows)
	for y := range lengths {
		lengths[y] = g.randomOdd(g.cfg.MinSize, g.cfg.MaxSize)
	}
	return world.NewGrid(lengths...)
}

// CarvePath repeatedly carves a walk from a random start cell until one is
// big enough for the collectibles and MinPathSize, or MaxAttempts runs out.
// On exhaustion the last walk is left in place and ok is false.
func (g *PathWalkerGenerator) CarvePath(grid *world.Grid) (pathSize, attempts int, ok bool) {
	minItemPath := len(world.CollectibleItems()) * 2

	for attempts < g.cfg.MaxAttempts {
		attempts++

		if attempts > 1 {
			grid.Replace(world.Path, world.Blank)
		}

		y := g.rng.Intn(grid.Rows())
		x := g.rng.Intn(grid.RowLen(y))

		pathSize = 0
		if grid.Get(y, x) == world.Blank {
			pathSize = g.spreadPath(grid, y, x, g.cfg.Depth, world.Up, false)
		}

		if pathSize > minItemPath && pathSize > g.cfg.MinPathSize {
			return pathSize, attempts, true
		}
	}

	g.log.WithFields(log.Fields{
		"attempts":  attempts,
		"path_size": pathSize,
		"rows":      grid.Rows(),
	}).Warn("Path generation failed, using last attempt")

	return pathSize, attempts, false
}

// spreadPath carves (y, x) and keeps walking from it. It returns the number
// of cells carved. The width check happens before carving so no cell ever
// gets more than MaxWidth carved neighbours at the moment it is carved.
func (g *PathWalkerGenerator) spreadPath(grid *world.Grid, y, x, remaining int, last world.Direction, hasLast bool) int {
	if remaining <= 0 ||
		!grid.IsValidPosition(y, x) ||
		grid.Get(y, x) != world.Blank ||
		grid.CountAdjacent(y, x, world.Path) > g.cfg.MaxWidth {
		return 0
	}

	if g.onCarve != nil {
		g.onCarve(grid, y, x)
	}
	grid.Set(y, x, world.Path)
	pathSize := 1

	// Prefer long straight corridors
	if hasLast && g.rng.Float64() < g.cfg.ContinueDirectionChance {
		pathSize += g.tryDirection(grid, y, x, remaining, last)
	}

	for _, dir := range world.ShuffledDirections(g.rng) {
		if hasLast && (dir == last || dir == last.Opposite()) {
			continue
		}

		if g.rng.Float64() < g.cfg.SpreadChance {
			ny, nx, ok := grid.Step(y, x, dir)
			if ok && grid.CountAdjacent(ny, nx, world.Path) <= g.cfg.MaxWidth {
				pathSize += g.tryDirection(grid, y, x, remaining, dir)
			}
		}
	}

	return pathSize
}

// tryDirection continues the walk one cell in dir
func (g *PathWalkerGenerator) tryDirection(grid *world.Grid, y, x, remaining int, dir world.Direction) int {
	ny, nx, ok := grid.Step(y, x, dir)
	if !ok {
		return 0
	}
	return g.spreadPath(grid, ny, nx, remaining-1, dir, true)
}

// randomOdd returns a random odd number in [min, max], bumping even draws up by one
func (g *PathWalkerGenerator) randomOdd(min, max int) int {
	n := min + g.rng.Intn(max-min+1)
	if n%2 == 0 {
		n++
	}
	return n
}
