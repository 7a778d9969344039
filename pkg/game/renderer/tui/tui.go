package tui

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/muesli/reflow/wordwrap"

	"dungeonexplorer/pkg/engine/terminal"
	"dungeonexplorer/pkg/game/locale"
	"dungeonexplorer/pkg/game/renderer"
	"dungeonexplorer/pkg/game/state"
)

// Minimum width the frame is wrapped to
const MinWidth = 20

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	catalog *locale.Catalog

	// ClearScreen clears the terminal before every frame
	ClearScreen bool
	// Width overrides the detected terminal width when positive
	Width int

	colorRoom        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorItem        color.Style
	colorSubtle      color.Style
	colorPlayer      color.Style
	colorVisited     color.Style
}

// Ensure TUIRenderer implements renderer.Renderer
var _ renderer.Renderer = (*TUIRenderer)(nil)

// New creates a new TUI renderer writing to out
func New(out io.Writer, catalog *locale.Catalog) *TUIRenderer {
	return &TUIRenderer{
		out:     out,
		catalog: catalog,
	}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorRoom = color.Style{color.FgBlue}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorVisited = color.Style{color.FgGray}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if !t.ClearScreen {
		return
	}
	c := exec.Command("clear")
	c.Stdout = t.out
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleVisited:
		return t.colorVisited.Sprint(text)
	default:
		return text
	}
}

func (t *TUIRenderer) markup(msg string) string {
	return renderer.Markup(msg, func(function, operand string) (string, bool) {
		switch function {
		case "GT":
			return t.catalog.Get(operand), true
		case "ITEM":
			return t.StyleText(operand, renderer.StyleItem), true
		case "ROOM":
			return t.StyleText(operand, renderer.StyleRoom), true
		case "ACTION":
			r := []rune(operand)
			return t.StyleText(string(r[:1]), renderer.StyleActionShort) + t.StyleText(string(r[1:]), renderer.StyleAction), true
		case "SUBTLE":
			return t.StyleText(operand, renderer.StyleSubtle), true
		case "DENIED":
			return t.StyleText(operand, renderer.StyleDenied), true
		default:
			return "", false
		}
	})
}

// ShowMessage displays a message wrapped to the terminal width
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, wordwrap.String(t.markup(msg), t.width()))
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	t.Clear()

	// Turn indicator in top left
	fmt.Fprintln(t.out, t.StyleText(fmt.Sprintf(t.catalog.Get(locale.Turn), g.Turn), renderer.StyleAction))
	fmt.Fprintln(t.out)

	t.printMap(g)
	t.printStatusBar(g)
	t.printMessagesPane(g)
}

func (t *TUIRenderer) width() int {
	w := t.Width
	if w <= 0 {
		w = terminal.GetWidth()
	}
	if w < MinWidth {
		w = MinWidth
	}
	return w
}

// printMap renders the grid centred, with the top row being the highest y
func (t *TUIRenderer) printMap(g *state.Game) {
	mapWidth := g.Grid.Size()*2 - 1
	indent := (t.width() - mapWidth) / 2
	if indent < 0 {
		indent = 0
	}

	for _, row := range renderer.MapRows(g) {
		for x, icon := range row {
			row[x] = t.StyleText(icon, iconStyles[icon])
		}
		fmt.Fprintln(t.out, strings.Repeat(" ", indent)+strings.Join(row, " "))
	}
}

var iconStyles = map[string]renderer.TextStyle{
	renderer.PlayerIcon:    renderer.StylePlayer,
	renderer.IconItem:      renderer.StyleItem,
	renderer.IconVisited:   renderer.StyleVisited,
	renderer.IconUnvisited: renderer.StyleSubtle,
}

// printStatusBar renders health, inventory and exploration progress
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	fmt.Fprintln(t.out)

	health := fmt.Sprintf("%d", g.Player.Health())
	if !g.Player.Alive() {
		health = t.colorDenied.Sprint(health)
	}
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(t.catalog.Get(locale.Health)+": ")+health)

	fmt.Fprint(t.out, t.colorSubtle.Sprint(t.catalog.Get(locale.Inventory)+": "))
	items := g.Player.Inventory()
	if len(items) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("(empty)"))
	} else {
		styled := make([]string, len(items))
		for i, item := range items {
			styled[i] = t.colorItem.Sprint(item)
		}
		fmt.Fprintln(t.out, strings.Join(styled, t.colorSubtle.Sprint(", ")))
	}

	total := g.Grid.Size() * g.Grid.Size()
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(t.catalog.Get(locale.Explored)+": ")+fmt.Sprintf("%d/%d", g.ExploredCount(), total))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := t.width()

	label := " " + t.catalog.Get(locale.Messages) + " "
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

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+t.catalog.Get(locale.NoMessages)))
	} else {
		for _, msg := range g.Messages {
			wrapped := wordwrap.String(t.markup(msg), width-2)
			fmt.Fprintf(t.out, "  %s\n", strings.ReplaceAll(wrapped, "\n", "\n  "))
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
	fmt.Fprintln(t.out)
}
