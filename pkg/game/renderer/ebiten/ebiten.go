package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	engineinput "lanternmaze/pkg/engine/input"
	"lanternmaze/pkg/game/renderer"
)

// New creates a new Ebiten renderer sized for a view of the given radius
func New(radius int) *EbitenRenderer {
	side := 2*radius + 1
	width := side*defaultTileSize + mapMargin*2 + 200
	height := headerHeight + side*defaultTileSize + mapMargin*2 + legendHeight + messageLines*lineHeight + mapMargin

	return &EbitenRenderer{
		windowWidth:    width,
		windowHeight:   height,
		tileSize:       defaultTileSize,
		inputChan:      make(chan engineinput.Intent, inputBuffer),
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
}

// Init initializes the window and loads fonts
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("TITLE"))

	if err := e.loadFonts(); err != nil {
		log.WithError(err).Error("Cannot load fonts, text will not be drawn")
	}
}

// Clear is a no-op; Draw repaints the whole screen every frame
func (e *EbitenRenderer) Clear() {}

// GetInput blocks until Update has seen a keypress and returns its Intent.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	intent, ok := <-e.inputChan
	if !ok {
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
	return intent
}

// ShowMessage logs a message; in-game messages are drawn from the game's message log
func (e *EbitenRenderer) ShowMessage(msg string) {
	log.Info(msg)
}

// Layout returns the game's logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowWidth, e.windowHeight
}

// Close asks the Ebiten loop to stop after the current frame
func (e *EbitenRenderer) Close() {
	e.closeMu.Lock()
	e.closing = true
	e.closeMu.Unlock()
}

func (e *EbitenRenderer) isClosing() bool {
	e.closeMu.Lock()
	defer e.closeMu.Unlock()
	return e.closing
}

// Run starts the game loop on its own goroutine and blocks in Ebiten's loop
// until the window closes or Close is called.
func (e *EbitenRenderer) Run(loop func()) error {
	go func() {
		loop()
		e.Close()
	}()

	err := ebiten.RunGame(e)
	e.closeOnce.Do(func() {
		close(e.inputChan)
	})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

var _ renderer.Renderer = (*EbitenRenderer)(nil)
