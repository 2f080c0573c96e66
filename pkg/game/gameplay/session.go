// Package gameplay drives a maze game from player intents.
package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	engineinput "lanternmaze/pkg/engine/input"
	"lanternmaze/pkg/engine/world"
	"lanternmaze/pkg/game/devtools"
	"lanternmaze/pkg/game/renderer"
	"lanternmaze/pkg/game/state"
)

// screenshotRadius is the view saved by the screenshot action
const screenshotRadius = 5

// Factory builds a fresh game, usually by running a generator
type Factory func() (*state.Game, error)

// Chimer plays feedback sounds. *audio.Player satisfies it.
type Chimer interface {
	Pickup()
	Win()
}

// Outcome reports what a single intent did
type Outcome struct {
	Moved        bool
	Collected    world.Item
	HasCollected bool
	Won          bool
	Reset        bool
}

// Session owns the current game and the state a front-end keeps around it
type Session struct {
	Game   *state.Game
	Won    bool
	Quit   bool
	Facing world.Direction

	factory Factory
	retries int
	chime   Chimer
	log     log.FieldLogger
}

// Option configures a Session
type Option func(*Session)

// WithChimes plays sounds on pickup and win
func WithChimes(c Chimer) Option {
	return func(s *Session) {
		s.chime = c
	}
}

// WithLogger sets the logger used for generation failures
func WithLogger(l log.FieldLogger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// NewSession builds the first game. Construction is tried up to retries
// times before giving up.
func NewSession(factory Factory, retries int, opts ...Option) (*Session, error) {
	if factory == nil {
		return nil, fmt.Errorf("new session: nil factory")
	}
	if retries < 1 {
		retries = 1
	}

	s := &Session{
		Facing:  world.Right,
		factory: factory,
		retries: retries,
		log:     log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.NewGame(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewGame discards the current game and builds a new one
func (s *Session) NewGame() error {
	var err error
	for attempt := 1; attempt <= s.retries; attempt++ {
		var g *state.Game
		g, err = s.factory()
		if err == nil {
			s.Game = g
			s.Won = false
			s.Facing = world.Right
			s.Game.AddMessage(gotext.Get("WELCOME"))
			return nil
		}
		s.log.WithFields(log.Fields{
			"attempt": attempt,
			"retries": s.retries,
		}).WithError(err).Warn("Game construction failed")
	}
	return fmt.Errorf("new game after %d tries: %w", s.retries, err)
}

// Move tries to move the player; a successful move picks up whatever is
// under the player and then checks for the win.
func (s *Session) Move(dir world.Direction) Outcome {
	if dir == world.Left || dir == world.Right {
		s.Facing = dir
	}

	var out Outcome
	if !s.Game.Move(dir) {
		out.Won = s.Won
		return out
	}
	out.Moved = true

	if item, ok := s.Game.CheckForItem(); ok {
		out.Collected = item
		out.HasCollected = true
		s.Game.AddMessage(fmt.Sprintf(gotext.Get("COLLECTED"), renderer.ItemName(item)))
	}

	if !s.Won && s.Game.WinCondition() {
		s.Won = true
		s.Game.AddMessage(gotext.Get("YOU_WIN"))
		if s.chime != nil {
			s.chime.Win()
		}
	} else if out.HasCollected && s.chime != nil {
		s.chime.Pickup()
	}

	out.Won = s.Won
	return out
}

// ProcessIntent handles a high-level input intent from the tiered input system.
func (s *Session) ProcessIntent(intent engineinput.Intent) Outcome {
	switch intent.Action {
	case engineinput.ActionNone:
		return Outcome{Won: s.Won}

	case engineinput.ActionMoveUp:
		return s.Move(world.Up)
	case engineinput.ActionMoveDown:
		return s.Move(world.Down)
	case engineinput.ActionMoveLeft:
		return s.Move(world.Left)
	case engineinput.ActionMoveRight:
		return s.Move(world.Right)

	case engineinput.ActionNewGame:
		// Only once the current maze is won
		if !s.Won {
			return Outcome{}
		}
		if err := s.NewGame(); err != nil {
			s.Game.AddMessage(fmt.Sprintf(gotext.Get("NEW_GAME_FAILED"), err))
			return Outcome{Won: s.Won}
		}
		return Outcome{Reset: true}

	case engineinput.ActionQuit:
		s.Quit = true
		s.Game.AddMessage(gotext.Get("GOODBYE"))
		return Outcome{Won: s.Won}

	case engineinput.ActionDumpMap:
		path, err := devtools.DumpMapToFile(s.Game)
		if err != nil {
			s.Game.AddMessage(fmt.Sprintf(gotext.Get("MAP_DUMP_FAILED"), err))
		} else {
			s.Game.AddMessage(fmt.Sprintf(gotext.Get("MAP_DUMPED"), path))
		}
		return Outcome{Won: s.Won}

	case engineinput.ActionScreenshot:
		// Capture before the confirmation lands in the message log
		path, err := devtools.SaveScreenshotHTML(s.Frame(screenshotRadius))
		if err != nil {
			s.Game.AddMessage(fmt.Sprintf(gotext.Get("SCREENSHOT_FAILED"), err))
		} else {
			s.Game.AddMessage(fmt.Sprintf(gotext.Get("SCREENSHOT_SAVED"), path))
		}
		return Outcome{Won: s.Won}
	}

	s.Game.AddMessage(gotext.Get("UNKNOWN_COMMAND"))
	return Outcome{Won: s.Won}
}

// Frame captures what a renderer needs to draw the current game
func (s *Session) Frame(radius int) renderer.Frame {
	return renderer.Frame{
		Game:    s.Game,
		Visible: s.Game.VisibleGrid(radius),
		Radius:  radius,
		Won:     s.Won,
		Facing:  s.Facing,
	}
}
