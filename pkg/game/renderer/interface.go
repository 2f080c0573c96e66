package renderer

import (
	"lanternmaze/pkg/engine/input"
	"lanternmaze/pkg/engine/world"
	"lanternmaze/pkg/game/state"
)

// Frame is everything a backend needs to draw one screen
type Frame struct {
	Game *state.Game

	// Visible is Game.VisibleGrid(Radius); the player is always at [Radius][Radius]
	Visible [][]world.Item
	Radius  int

	Won    bool
	Facing world.Direction
}

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame:
	// the visibility window, item legend, messages and win overlay
	RenderFrame(f Frame)

	// GetInput blocks until the next keypress and maps it to an Intent
	GetInput() input.Intent

	// ShowMessage displays a message to the user outside the frame
	ShowMessage(msg string)
}
