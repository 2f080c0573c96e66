// Package anim holds the small tweens the graphical renderer plays between frames.
package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SlideDuration is how long the view takes to settle after a move, in seconds
const SlideDuration = 0.12

// Slide eases the map from its pre-move offset back to rest, so a step reads
// as movement rather than a jump.
type Slide struct {
	tween  *gween.Tween
	dx, dy float32
	value  float32
}

// Start begins a slide from (dx, dy) cells of offset to zero.
// A zero offset stops any running slide.
func (s *Slide) Start(dx, dy int) {
	if dx == 0 && dy == 0 {
		s.tween = nil
		s.value = 0
		return
	}
	s.dx = float32(dx)
	s.dy = float32(dy)
	s.value = 1
	s.tween = gween.New(1, 0, SlideDuration, ease.OutQuad)
}

// Update advances the slide by dt seconds
func (s *Slide) Update(dt float32) {
	if s.tween == nil {
		return
	}
	current, finished := s.tween.Update(dt)
	s.value = current
	if finished {
		s.tween = nil
		s.value = 0
	}
}

// Active reports whether a slide is still running
func (s *Slide) Active() bool {
	return s.tween != nil
}

// Offset returns the current offset in cells
func (s *Slide) Offset() (dx, dy float32) {
	return s.dx * s.value, s.dy * s.value
}

// MoveDelta returns the cell offset for a move from (fromY, fromX) to
// (toY, toX). Only single steps slide; vertical steps keep the view's column
// centered on the player, so they slide vertically only. Anything else (a new
// maze, a blocked move) returns zero.
func MoveDelta(fromY, fromX, toY, toX int) (dx, dy int) {
	switch {
	case fromY == toY && (toX-fromX == 1 || fromX-toX == 1):
		return toX - fromX, 0
	case toY-fromY == 1 || fromY-toY == 1:
		return 0, toY - fromY
	}
	return 0, 0
}
