package gameplay

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"lanternmaze/pkg/engine/world"
	"lanternmaze/pkg/game/generator"
)

func TestSeededFactory_SameSeedSameMaze(t *testing.T) {
	logger, _ := test.NewNullLogger()

	build := func() [][]world.Item {
		t.Helper()
		factory, err := SeededFactory(generator.DefaultConfig(), 42, logger)
		if err != nil {
			t.Fatalf("SeededFactory: %v", err)
		}
		g, err := factory()
		if err != nil {
			t.Fatalf("factory: %v", err)
		}
		return g.Grid().Snapshot()
	}

	a, b := build(), build()
	if len(a) != len(b) {
		t.Fatalf("row count = %d and %d, want equal", len(a), len(b))
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			t.Fatalf("row %d length = %d and %d, want equal", y, len(a[y]), len(b[y]))
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				t.Fatalf("cell (%d, %d) = %v and %v, want equal", y, x, a[y][x], b[y][x])
			}
		}
	}
}

func TestSeededFactory_InvalidConfig(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := generator.DefaultConfig()
	cfg.MaxAttempts = 0

	if _, err := SeededFactory(cfg, 1, logger); err == nil {
		t.Error("SeededFactory with invalid config should fail")
	}
}
