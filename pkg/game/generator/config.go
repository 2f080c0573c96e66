package generator

import "fmt"

// Config holds the maze generation tuning
type Config struct {
	// Row count and row lengths are drawn as odd numbers in [MinSize, MaxSize].
	MinSize int
	MaxSize int
	// An accepted walk must carve more than MinPathSize cells.
	MinPathSize int

	// Depth bounds the recursion of a single walk.
	Depth int
	// SpreadChance is the chance of branching into each side direction.
	SpreadChance float64
	// ContinueDirectionChance is the chance of carrying on straight.
	ContinueDirectionChance float64
	// MaxWidth caps the carved neighbours a cell may have when it is carved.
	MaxWidth int

	MaxAttempts int
}

// DefaultConfig returns the standard maze tuning
func DefaultConfig() Config {
	return Config{
		MinSize:                 11,
		MaxSize:                 17,
		MinPathSize:             70,
		Depth:                   100,
		SpreadChance:            0.4,
		ContinueDirectionChance: 0.85,
		MaxWidth:                1,
		MaxAttempts:             500,
	}
}

// Validate checks the config for values the generator cannot work with
func (c Config) Validate() error {
	switch {
	case c.MinSize <= 0:
		return fmt.Errorf("min size must be positive, got %d", c.MinSize)
	case c.MaxSize < c.MinSize:
		return fmt.Errorf("max size %d is below min size %d", c.MaxSize, c.MinSize)
	case c.MinPathSize < 0:
		return fmt.Errorf("min path size must not be negative, got %d", c.MinPathSize)
	case c.Depth <= 0:
		return fmt.Errorf("depth must be positive, got %d", c.Depth)
	case c.SpreadChance < 0 || c.SpreadChance > 1:
		return fmt.Errorf("spread chance must be within [0, 1], got %v", c.SpreadChance)
	case c.ContinueDirectionChance < 0 || c.ContinueDirectionChance > 1:
		return fmt.Errorf("continue direction chance must be within [0, 1], got %v", c.ContinueDirectionChance)
	case c.MaxWidth < 0:
		return fmt.Errorf("max width must not be negative, got %d", c.MaxWidth)
	case c.MaxAttempts <= 0:
		return fmt.Errorf("max attempts must be positive, got %d", c.MaxAttempts)
	}
	return nil
}
