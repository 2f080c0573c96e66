package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	engineinput "lanternmaze/pkg/engine/input"
)

// repeatKeys are held-key movement bindings, checked in order
var repeatKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
}

// pressKeys fire once per press
var pressKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyY, "y"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyM, "m"},
	{ebiten.KeyF9, "f9"},
	{ebiten.KeyP, "p"},
	{ebiten.KeyF12, "f12"},
}

// Update handles input and animation (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.isClosing() {
		return ebiten.Termination
	}

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.WithFields(log.Fields{"width": w, "height": h}).Info("Main window opened")
	}

	e.snapshotMutex.Lock()
	e.slide.Update(1 / float32(ebiten.TPS()))
	e.snapshotMutex.Unlock()

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		// Non-blocking send to input channel
		select {
		case e.inputChan <- intent:
		default:
			// Channel full, drop input
		}
	}

	return nil
}

// checkInput is the raw input layer: it turns the first active key into an Intent
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, k := range pressKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			return engineinput.IntentFromCode(engineinput.DeviceKeyboard, k.code)
		}
	}

	for _, k := range repeatKeys {
		key := k.key
		if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(key) }, k.code) {
			return engineinput.IntentFromCode(engineinput.DeviceKeyboard, k.code)
		}
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// shouldRepeatKey checks if a key should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(isPressed func() bool, code string) bool {
	now := time.Now().UnixMilli()

	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	state, exists := e.keyRepeatState[code]
	if !isPressed() {
		delete(e.keyRepeatState, code)
		return false
	}

	if !exists {
		// First press - record it and trigger immediately
		e.keyRepeatState[code] = keyRepeatInfo{
			firstPressed: now,
			lastRepeat:   now,
		}
		return true
	}

	// Key is held - repeat after the initial delay
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}
