package server

import (
	"lanternmaze/pkg/engine/world"
	"lanternmaze/pkg/game/gameplay"
)

// Client frame types
const (
	TypeMove  = "move"
	TypeReset = "reset"
)

// ClientMessage is a frame sent by the browser
type ClientMessage struct {
	Type string `json:"type"`
	Dir  string `json:"dir,omitempty"`
}

// Point is a grid position as the browser sees it
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Snapshot is sent after every accepted frame and once on connect
type Snapshot struct {
	Visible      [][]world.Item `json:"visible"`
	Radius       int            `json:"radius"`
	Player       Point          `json:"player"`
	Inventory    []world.Item   `json:"inventory"`
	Collectibles []world.Item   `json:"collectibles"`
	Moved        bool           `json:"moved"`
	Collected    *world.Item    `json:"collected,omitempty"`
	Won          bool           `json:"won"`
	Messages     []string       `json:"messages"`
}

// ErrorFrame reports a frame the server could not act on
type ErrorFrame struct {
	Error string `json:"error"`
}

// NewSnapshot builds the frame for the session's current game and the
// outcome of the last action.
func NewSnapshot(s *gameplay.Session, radius int, out gameplay.Outcome) Snapshot {
	pos := s.Game.Position()
	snap := Snapshot{
		Visible:      s.Game.VisibleGrid(radius),
		Radius:       radius,
		Player:       Point{X: pos.X, Y: pos.Y},
		Inventory:    append([]world.Item{}, s.Game.Inventory()...),
		Collectibles: s.Game.Collectibles(),
		Moved:        out.Moved,
		Won:          s.Won,
		Messages:     append([]string{}, s.Game.Messages...),
	}
	if out.HasCollected {
		item := out.Collected
		snap.Collected = &item
	}
	return snap
}
