package ebiten

import (
	"lanternmaze/pkg/engine/world"
	"lanternmaze/pkg/game/renderer"
	"lanternmaze/pkg/game/renderer/anim"
)

// RenderFrame captures a snapshot for the next Draw call and starts the
// slide animation when the player took a single step.
func (e *EbitenRenderer) RenderFrame(f renderer.Frame) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	if f.Game == nil || f.Game.Grid() == nil {
		e.snapshot.valid = false
		return
	}

	pos := f.Game.Position()
	prev := e.snapshot
	if prev.valid && prev.game == f.Game {
		e.slide.Start(anim.MoveDelta(prev.playerY, prev.playerX, pos.Y, pos.X))
	} else {
		e.slide.Start(0, 0)
	}

	visible := make([][]world.Item, len(f.Visible))
	for y, row := range f.Visible {
		visible[y] = append([]world.Item(nil), row...)
	}

	have := make(map[world.Item]bool)
	for _, item := range f.Game.Inventory() {
		have[item] = true
	}

	e.snapshot = renderSnapshot{
		valid:        true,
		game:         f.Game,
		visible:      visible,
		radius:       f.Radius,
		playerY:      pos.Y,
		playerX:      pos.X,
		facing:       f.Facing,
		collectibles: f.Game.Collectibles(),
		have:         have,
		messages:     append([]string(nil), f.Game.Messages...),
		won:          f.Won,
	}
}
