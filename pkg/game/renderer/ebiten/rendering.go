package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"lanternmaze/pkg/engine/world"
	"lanternmaze/pkg/game/renderer"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.RLock()
	snap := e.snapshot
	slideX, slideY := e.slide.Offset()
	e.snapshotMutex.RUnlock()

	if !snap.valid || e.monoFontSource == nil || e.sansFontSource == nil {
		// Can't draw without valid snapshot or fonts
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()

	side := 2*snap.radius + 1
	mapSize := side * e.tileSize
	mapX := (screenWidth - mapSize) / 2
	mapY := headerHeight + mapMargin

	e.drawHeader(screen, screenWidth)

	vector.DrawFilledRect(screen, float32(mapX-mapMargin), float32(mapY-mapMargin),
		float32(mapSize+mapMargin*2), float32(mapSize+mapMargin*2),
		colorMapBackground, false)

	e.drawMap(screen, &snap, mapX, mapY, slideX, slideY)

	legendY := mapY + mapSize + mapMargin*2
	e.drawLegend(screen, &snap, legendY, screenWidth)
	e.drawMessages(screen, &snap, legendY+legendHeight, screenHeight)

	if snap.won {
		e.drawWinOverlay(screen, screenWidth, screenHeight)
	}
}

// drawHeader draws the title centered at the top
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, screenWidth int) {
	title := gotext.Get("TITLE")
	face := e.getSansFontFace()
	w, _ := text.Measure(title, face, 0)
	e.drawTextWithFace(screen, title, (float64(screenWidth)-w)/2, mapMargin/2, colorText, face)
}

// drawMap draws the visibility window into the map buffer at the slide
// offset, then blits the buffer so partial tiles are clipped to the frame.
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, snap *renderSnapshot, mapX, mapY int, slideX, slideY float32) {
	side := 2*snap.radius + 1
	mapSize := side * e.tileSize

	if e.mapBuffer == nil || e.mapBuffer.Bounds().Dx() != mapSize || e.mapBuffer.Bounds().Dy() != mapSize {
		e.mapBuffer = ebiten.NewImage(mapSize, mapSize)
	}
	e.mapBuffer.Clear()

	tile := float32(e.tileSize)
	offsetX := slideX * tile
	offsetY := slideY * tile

	for wy, row := range snap.visible {
		for wx, item := range row {
			if wy == snap.radius && wx == snap.radius {
				continue
			}
			x := float32(wx)*tile + offsetX
			y := float32(wy)*tile + offsetY
			e.drawCell(e.mapBuffer, item, x, y)
		}
	}

	// The player stays centered while the maze slides underneath
	center := float32(snap.radius) * tile
	e.drawCell(e.mapBuffer, world.Path, center, center)
	e.drawPlayer(e.mapBuffer, snap.facing, center, center)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(mapX), float64(mapY))
	screen.DrawImage(e.mapBuffer, op)
}

// drawCell draws one maze cell with its item glyph, if any
func (e *EbitenRenderer) drawCell(dst *ebiten.Image, item world.Item, x, y float32) {
	tile := float32(e.tileSize)
	const margin = 1

	if item == world.Blank {
		vector.DrawFilledRect(dst, x, y, tile, tile, renderer.ItemRGBA(world.Blank), false)
		return
	}

	vector.DrawFilledRect(dst, x+margin, y+margin, tile-margin*2, tile-margin*2, renderer.ItemRGBA(world.Path), false)
	if !item.IsCollectible() {
		return
	}

	inset := tile / 5
	vector.DrawFilledRect(dst, x+inset, y+inset, tile-inset*2, tile-inset*2, renderer.ItemRGBA(item), false)
	e.drawCenteredGlyph(dst, renderer.ItemIcon(item), x, y, colorMapBackground)
}

// drawPlayer draws the player with an eye on the side it last turned to
func (e *EbitenRenderer) drawPlayer(dst *ebiten.Image, facing world.Direction, x, y float32) {
	tile := float32(e.tileSize)
	inset := tile / 6
	size := tile - inset*2
	vector.DrawFilledRect(dst, x+inset, y+inset, size, size, renderer.PlayerRGBA(), false)

	eye := size / 5
	eyeX := x + inset + size - eye*2
	if facing == world.Left {
		eyeX = x + inset + eye
	}
	vector.DrawFilledRect(dst, eyeX, y+inset+eye, eye, eye, colorPlayerEye, false)
}

// drawLegend lists each collectible with a swatch and whether it is held
func (e *EbitenRenderer) drawLegend(screen *ebiten.Image, snap *renderSnapshot, y, screenWidth int) {
	face := e.getSansFontFace()
	swatch := float32(baseFontSize)

	slotWidth := screenWidth / max(1, len(snap.collectibles))
	for i, item := range snap.collectibles {
		x := float64(i*slotWidth + mapMargin)
		vector.DrawFilledRect(screen, float32(x), float32(y)+2, swatch, swatch, renderer.ItemRGBA(item), false)

		mark, markColor := "[ ]", colorMissing
		if snap.have[item] {
			mark, markColor = "[x]", colorHave
		}
		label := renderer.ItemName(item)
		e.drawTextWithFace(screen, label, x+float64(swatch)+6, float64(y), colorText, face)
		w, _ := text.Measure(label, face, 0)
		e.drawTextWithFace(screen, mark, x+float64(swatch)+12+w, float64(y), markColor, face)
	}
}

// drawMessages draws the last few log messages at the bottom
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap *renderSnapshot, y, screenHeight int) {
	face := e.getSansFontFace()
	messages := snap.messages
	if len(messages) > messageLines {
		messages = messages[len(messages)-messageLines:]
	}
	for i, msg := range messages {
		lineY := y + i*lineHeight
		if lineY+lineHeight > screenHeight {
			break
		}
		e.drawTextWithFace(screen, msg, mapMargin, float64(lineY), colorSubtle, face)
	}
}

// drawWinOverlay draws the win banner over the map
func (e *EbitenRenderer) drawWinOverlay(screen *ebiten.Image, screenWidth, screenHeight int) {
	vector.DrawFilledRect(screen, 0, 0, float32(screenWidth), float32(screenHeight), colorPanelBackground, false)

	bold := e.getSansBoldFontFace()
	title := gotext.Get("YOU_WIN")
	w, h := text.Measure(title, bold, 0)
	top := (float64(screenHeight) - h) / 2
	e.drawTextWithFace(screen, title, (float64(screenWidth)-w)/2, top, colorWin, bold)

	face := e.getSansFontFace()
	hint := gotext.Get("PLAY_AGAIN")
	hw, _ := text.Measure(hint, face, 0)
	e.drawTextWithFace(screen, hint, (float64(screenWidth)-hw)/2, top+h+10, colorText, face)
}

// drawCenteredGlyph draws a single glyph centered in the tile at (x, y)
func (e *EbitenRenderer) drawCenteredGlyph(dst *ebiten.Image, glyph string, x, y float32, col color.Color) {
	face := e.getMonoFontFace()
	w, h := text.Measure(glyph, face, 0)
	offsetX := (float64(e.tileSize) - w) / 2
	offsetY := (float64(e.tileSize) - h) / 2
	e.drawTextWithFace(dst, glyph, float64(x)+offsetX, float64(y)+offsetY, col, face)
}

// drawTextWithFace draws text with a specific color and font face
func (e *EbitenRenderer) drawTextWithFace(dst *ebiten.Image, str string, x, y float64, col color.Color, face text.Face) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(dst, str, face, op)
}

func (e *EbitenRenderer) String() string {
	return fmt.Sprintf("ebiten %dx%d tile %d", e.windowWidth, e.windowHeight, e.tileSize)
}
