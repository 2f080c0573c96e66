package renderer

import (
	"image/color"

	gcolor "github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"lanternmaze/pkg/engine/world"
)

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet's non-constant format string check quiet.
var dynamicGet = gotext.Get

// Icon constants
const (
	PlayerIcon      = "@"
	PlayerIconLeft  = "◄"
	PlayerIconRight = "►"
	IconBlank       = "▒"
	IconPath        = "·"
)

var itemIcons = map[world.Item]string{
	world.Lantern:  "L",
	world.Gloves:   "G",
	world.Chainsaw: "C",
	world.Gasoline: "F",
}

// item colors, shared by every backend
var itemHex = map[world.Item]string{
	world.Lantern:  "#ffd700", // gold
	world.Gloves:   "#d3d3d3", // light grey
	world.Chainsaw: "#a9a9a9", // dark grey
	world.Gasoline: "#ff0000", // red
}

const (
	blankHex  = "#1a1a2e"
	pathHex   = "#3c3c50"
	playerHex = "#4caf50"
)

// ItemName returns the translated display name of an item
func ItemName(item world.Item) string {
	return dynamicGet(item.String())
}

// ItemIcon returns the one-character glyph drawn for an item
func ItemIcon(item world.Item) string {
	switch item {
	case world.Blank:
		return IconBlank
	case world.Path:
		return IconPath
	}
	if icon, ok := itemIcons[item]; ok {
		return icon
	}
	return "?"
}

// PlayerIconFacing returns the player glyph for the way it last turned
func PlayerIconFacing(facing world.Direction) string {
	switch facing {
	case world.Left:
		return PlayerIconLeft
	case world.Right:
		return PlayerIconRight
	default:
		return PlayerIcon
	}
}

// ItemHex returns the hex color for an item's cell
func ItemHex(item world.Item) string {
	switch item {
	case world.Blank:
		return blankHex
	case world.Path:
		return pathHex
	}
	if hex, ok := itemHex[item]; ok {
		return hex
	}
	return pathHex
}

// ItemRGBA returns ItemHex as an image color
func ItemRGBA(item world.Item) color.RGBA {
	return hexRGBA(ItemHex(item))
}

// PlayerRGBA returns the player's image color
func PlayerRGBA() color.RGBA {
	return hexRGBA(playerHex)
}

func hexRGBA(hex string) color.RGBA {
	rgb := gcolor.Hex2rgb(hex)
	if len(rgb) != 3 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2]), A: 0xff}
}
