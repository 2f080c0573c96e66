// Package ebiten provides an Ebiten-based 2D graphical renderer for the maze.
package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "lanternmaze/pkg/engine/input"
	"lanternmaze/pkg/engine/world"
	"lanternmaze/pkg/game/renderer/anim"
	"lanternmaze/pkg/game/state"
)

// renderSnapshot holds a consistent snapshot of game state for rendering.
// RenderFrame runs on the game loop goroutine and Draw on Ebiten's, so Draw
// only ever reads this copy.
type renderSnapshot struct {
	valid bool

	game             *state.Game
	visible          [][]world.Item
	radius           int
	playerY, playerX int
	facing           world.Direction
	collectibles     []world.Item
	have             map[world.Item]bool
	messages         []string
	won              bool
}

// keyRepeatInfo tracks the repeat state for a key
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering
	tileSize int

	// Font sources for text rendering
	monoFontSource     *text.GoTextFaceSource // Monospace font for map tiles
	sansFontSource     *text.GoTextFaceSource // Sans-serif font for UI text
	sansBoldFontSource *text.GoTextFaceSource // Sans-serif bold for the win overlay

	// Cached font faces
	cachedMonoFace     *text.GoTextFace
	cachedSansFace     *text.GoTextFace
	cachedSansBoldFace *text.GoTextFace

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Map slide after each step; guarded by snapshotMutex
	slide anim.Slide

	// Offscreen map buffer, so the sliding map is clipped to its frame
	mapBuffer *ebiten.Image

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	// Set by Close; the next Update ends the Ebiten loop
	closing   bool
	closeOnce sync.Once
	closeMu   sync.Mutex

	// Key repeat state tracking
	keyRepeatState      map[string]keyRepeatInfo
	keyRepeatStateMutex sync.Mutex

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}
