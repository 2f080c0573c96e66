package devtools

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/leonelquinteros/gotext"

	"lanternmaze/pkg/engine/world"
	"lanternmaze/pkg/game/renderer"
)

func TestMain(m *testing.M) {
	gotext.Configure("../../../locales", "en_GB", "default")
	os.Exit(m.Run())
}

func TestWriteScreenshotHTML(t *testing.T) {
	g := makeSmallGame(t)
	g.AddMessage("<found> & kept")
	f := renderer.Frame{
		Game:    g,
		Visible: g.VisibleGrid(1),
		Radius:  1,
		Facing:  world.Left,
	}

	var buf bytes.Buffer
	if err := WriteScreenshotHTML(&buf, f); err != nil {
		t.Fatalf("WriteScreenshotHTML: %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, `<div class="map-row">`); got != 3 {
		t.Errorf("map rows = %d, want 3", got)
	}
	if !strings.Contains(out, `<span class="player">`+renderer.PlayerIconLeft+`</span>`) {
		t.Errorf("screenshot missing left-facing player:\n%s", out)
	}
	if !strings.Contains(out, "&lt;found&gt; &amp; kept") {
		t.Errorf("messages should be escaped:\n%s", out)
	}
	if !strings.Contains(out, "Lantern ✘") {
		t.Errorf("screenshot missing legend entry:\n%s", out)
	}
	if strings.Contains(out, `class="won"`) {
		t.Error("screenshot of an unwon game shows the win banner")
	}
}

func TestWriteScreenshotHTML_NoGame(t *testing.T) {
	if err := WriteScreenshotHTML(&bytes.Buffer{}, renderer.Frame{}); err == nil {
		t.Error("WriteScreenshotHTML without a game err = nil, want error")
	}
}
