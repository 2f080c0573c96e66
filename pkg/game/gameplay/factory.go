package gameplay

import (
	"math/rand"

	log "github.com/sirupsen/logrus"

	"lanternmaze/pkg/game/generator"
	"lanternmaze/pkg/game/state"
)

// GeneratorFactory returns a Factory that builds every game with gen
func GeneratorFactory(gen generator.GridGenerator) Factory {
	return func() (*state.Game, error) {
		return state.NewGame(gen)
	}
}

// SeededFactory builds a path-walker generator on its own seeded source.
// The generator is not safe for concurrent use, so each session needs its own.
func SeededFactory(cfg generator.Config, seed int64, logger log.FieldLogger) (Factory, error) {
	gen, err := generator.New(cfg, rand.New(rand.NewSource(seed)), generator.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return GeneratorFactory(gen), nil
}
