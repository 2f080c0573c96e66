package tui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"lanternmaze/pkg/engine/world"
	"lanternmaze/pkg/game/renderer"
	"lanternmaze/pkg/game/state"
)

func TestMain(m *testing.M) {
	gotext.Configure("../../../../locales", "en_GB", "default")
	os.Exit(m.Run())
}

func makeFrame(t *testing.T, won bool) renderer.Frame {
	t.Helper()
	grid := world.NewGridFromRows([][]world.Item{
		{world.Path, world.Lantern, world.Blank},
	})
	g, err := state.NewGameFromGrid(grid, world.Position{})
	if err != nil {
		t.Fatalf("NewGameFromGrid: %v", err)
	}
	g.AddMessage("hello from the maze")
	return renderer.Frame{
		Game:    g,
		Visible: g.VisibleGrid(1),
		Radius:  1,
		Won:     won,
		Facing:  world.Left,
	}
}

func render(t *testing.T, f renderer.Frame) string {
	t.Helper()
	var buf bytes.Buffer
	r := NewWithWriter(&buf)
	r.Init()
	r.RenderFrame(f)
	return color.ClearCode(buf.String())
}

func TestRenderFrame_WindowAndLegend(t *testing.T) {
	out := render(t, makeFrame(t, false))

	if !strings.Contains(out, renderer.PlayerIconLeft) {
		t.Errorf("frame missing left-facing player:\n%s", out)
	}
	for _, item := range world.CollectibleItems() {
		if !strings.Contains(out, renderer.ItemName(item)) {
			t.Errorf("legend missing %v:\n%s", item, out)
		}
	}
	if strings.Contains(out, IconHave) {
		t.Errorf("legend marks an item as held on a fresh game:\n%s", out)
	}
	if !strings.Contains(out, "hello from the maze") {
		t.Errorf("messages pane missing message:\n%s", out)
	}
	if strings.Contains(out, "YOU WIN") {
		t.Errorf("win overlay shown before winning:\n%s", out)
	}
}

func TestRenderFrame_WindowRows(t *testing.T) {
	f := makeFrame(t, false)
	out := render(t, f)

	// middle row: wall, player, lantern
	want := renderer.IconBlank + renderer.IconBlank + renderer.PlayerIconLeft + " " + renderer.ItemIcon(world.Lantern) + " "
	if !strings.Contains(out, want) {
		t.Errorf("frame missing middle row %q:\n%s", want, out)
	}
}

func TestRenderFrame_WinOverlay(t *testing.T) {
	out := render(t, makeFrame(t, true))
	if !strings.Contains(out, "YOU WIN") {
		t.Errorf("win overlay missing:\n%s", out)
	}
}

func TestClear_WritesToRendererOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewWithWriter(&buf)
	r.Clear()
	if buf.Len() == 0 {
		t.Error("Clear wrote nothing to the renderer's writer")
	}
}
