package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"lanternmaze/pkg/engine/input"
	"lanternmaze/pkg/engine/terminal"
	"lanternmaze/pkg/engine/world"
	"lanternmaze/pkg/game/renderer"
)

const (
	IconHave    = "✔"
	IconMissing = "✘"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorTitle   color.Style
	colorBlank   color.Style
	colorPath    color.Style
	colorPlayer  color.Style
	colorHave    color.Style
	colorMissing color.Style
	colorSubtle  color.Style
	colorWin     color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a TUI renderer writing to w
func NewWithWriter(w io.Writer) *TUIRenderer {
	return &TUIRenderer{out: w}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorBlank = color.Style{color.FgGray}
	t.colorPath = color.Style{color.FgDarkGray}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorHave = color.Style{color.FgGreen}
	t.colorMissing = color.Style{color.FgRed}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorWin = color.Style{color.FgYellow, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = t.out
	if err := c.Run(); err != nil {
		fmt.Fprint(t.out, "\033[H\033[2J")
	}
}

// GetInput reads one keypress from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	code, err := input.GetKey()
	if err != nil {
		log.WithError(err).Error("Cannot read keyboard input")
		return input.Intent{Action: input.ActionQuit}
	}
	return input.IntentFromCode(input.DeviceTerminal, code)
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(f renderer.Frame) {
	width, _ := terminal.GetSize()

	t.printCentered(width, t.colorTitle.Sprint(gotext.Get("TITLE")))
	fmt.Fprintln(t.out)

	t.printMap(f, width)
	t.printLegend(f)

	if f.Won {
		fmt.Fprintln(t.out)
		t.printCentered(width, t.colorWin.Sprint(gotext.Get("YOU_WIN")))
		t.printCentered(width, t.colorWin.Sprint(gotext.Get("PLAY_AGAIN")))
	}

	t.printMessagesPane(f.Game.Messages, width)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("HELP")))
}

// printCentered prints s centered in width columns, ignoring color codes
func (t *TUIRenderer) printCentered(width int, s string) {
	pad := (width - len([]rune(color.ClearCode(s)))) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(t.out, strings.Repeat(" ", pad)+s)
}

// renderCell returns the two-column string for one window cell
func (t *TUIRenderer) renderCell(f renderer.Frame, wy, wx int) string {
	if wy == f.Radius && wx == f.Radius {
		return t.colorPlayer.Sprint(renderer.PlayerIconFacing(f.Facing) + " ")
	}

	item := f.Visible[wy][wx]
	switch item {
	case world.Blank:
		return t.colorBlank.Sprint(strings.Repeat(renderer.IconBlank, 2))
	case world.Path:
		return t.colorPath.Sprint(renderer.IconPath + " ")
	default:
		return color.HEX(renderer.ItemHex(item)).Sprint(renderer.ItemIcon(item) + " ")
	}
}

// printMap renders the visibility window centered in the terminal
func (t *TUIRenderer) printMap(f renderer.Frame, width int) {
	side := 2*f.Radius + 1
	indent := (width - side*2) / 2
	if indent < 0 {
		indent = 0
	}

	for wy := range f.Visible {
		var row strings.Builder
		row.WriteString(strings.Repeat(" ", indent))
		for wx := range f.Visible[wy] {
			row.WriteString(t.renderCell(f, wy, wx))
		}
		fmt.Fprintln(t.out, row.String())
	}
	fmt.Fprintln(t.out)
}

// printLegend lists every collectible with whether the player holds it
func (t *TUIRenderer) printLegend(f renderer.Frame) {
	fmt.Fprint(t.out, t.colorSubtle.Sprint(gotext.Get("INVENTORY")+": "))

	parts := make([]string, 0, len(f.Game.Collectibles()))
	for _, item := range f.Game.Collectibles() {
		mark := t.colorMissing.Sprint(IconMissing)
		if f.Game.HasItem(item) {
			mark = t.colorHave.Sprint(IconHave)
		}
		icon := color.HEX(renderer.ItemHex(item)).Sprint(renderer.ItemIcon(item))
		parts = append(parts, fmt.Sprintf("%s %s %s", icon, renderer.ItemName(item), mark))
	}
	fmt.Fprintln(t.out, strings.Join(parts, t.colorSubtle.Sprint("  ")))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(messages []string, width int) {
	label := " " + gotext.Get("MESSAGES") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	if len(messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+gotext.Get("NO_MESSAGES")))
	} else {
		for _, msg := range messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
