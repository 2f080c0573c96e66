package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"

	"lanternmaze/pkg/engine/world"
	"lanternmaze/pkg/game/renderer"
)

// dynamicGet looks up translation keys chosen at runtime
var dynamicGet = gotext.Get

const screenshotStyle = `    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .player { color: #4caf50; font-weight: bold; }
        .won { color: #ffdc64; font-weight: bold; }
        .inventory {
            margin-top: 20px;
            color: #888;
        }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
`

// WriteScreenshotHTML writes the frame's visibility window as a standalone HTML page
func WriteScreenshotHTML(w io.Writer, f renderer.Frame) error {
	if f.Game == nil {
		return fmt.Errorf("screenshot: no game")
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n    <meta charset=\"UTF-8\">\n")
	b.WriteString(fmt.Sprintf("    <title>%s</title>\n", html.EscapeString(dynamicGet("TITLE"))))
	b.WriteString(screenshotStyle)
	b.WriteString("</head>\n<body>\n")

	b.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n", html.EscapeString(dynamicGet("TITLE"))))
	if f.Won {
		b.WriteString(fmt.Sprintf(`    <div class="won">%s</div>`+"\n", html.EscapeString(dynamicGet("YOU_WIN"))))
	}

	b.WriteString(`    <div class="map-container">` + "\n")
	for wy, row := range f.Visible {
		b.WriteString(`        <div class="map-row">`)
		for wx, item := range row {
			b.WriteString(cellHTML(f, wy, wx, item))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString(`    </div>` + "\n")

	b.WriteString(fmt.Sprintf(`    <div class="inventory">%s: `, html.EscapeString(dynamicGet("INVENTORY"))))
	for i, item := range f.Game.Collectibles() {
		if i > 0 {
			b.WriteString(", ")
		}
		mark := "✘"
		if f.Game.HasItem(item) {
			mark = "✔"
		}
		b.WriteString(fmt.Sprintf(`<span style="color:%s">%s %s</span>`,
			renderer.ItemHex(item), html.EscapeString(renderer.ItemName(item)), mark))
	}
	b.WriteString("</div>\n")

	if len(f.Game.Messages) > 0 {
		b.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range f.Game.Messages {
			b.WriteString(fmt.Sprintf(`        <div class="message">%s</div>`+"\n", html.EscapeString(msg)))
		}
		b.WriteString(`    </div>` + "\n")
	}

	b.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// SaveScreenshotHTML saves the current view as a timestamped HTML file
func SaveScreenshotHTML(f renderer.Frame) (string, error) {
	filename := fmt.Sprintf("screenshot-%s.html", time.Now().Format("20060102-150405"))

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("create screenshot: %w", err)
	}
	defer file.Close()

	if err := WriteScreenshotHTML(file, f); err != nil {
		return "", err
	}
	return filename, nil
}

// cellHTML returns the span for one window cell
func cellHTML(f renderer.Frame, wy, wx int, item world.Item) string {
	if wy == f.Radius && wx == f.Radius {
		return fmt.Sprintf(`<span class="player">%s</span>`, html.EscapeString(renderer.PlayerIconFacing(f.Facing)))
	}
	return fmt.Sprintf(`<span style="color:%s">%s</span>`, renderer.ItemHex(item), html.EscapeString(renderer.ItemIcon(item)))
}
