package ebiten

import "image/color"

// Color palette; maze cell and item colors come from the renderer package
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorHave            = color.RGBA{100, 255, 150, 255} // Green
	colorMissing         = color.RGBA{255, 100, 100, 255} // Red
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorWin             = color.RGBA{255, 220, 100, 255} // Yellow
	colorPlayerEye       = color.RGBA{15, 15, 26, 255}
)

const (
	defaultTileSize = 48
	baseFontSize    = 16.0 // UI font size
	tileFontScale   = 0.6  // item glyph size relative to the tile

	mapMargin    = 20
	headerHeight = 44
	legendHeight = 40
	messageLines = 5
	lineHeight   = 20

	inputBuffer = 16
)

const (
	keyRepeatInitialDelay = 300 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 120 // Interval between repeat events (milliseconds)
)
