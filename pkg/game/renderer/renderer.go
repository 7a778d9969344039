package renderer

import (
	"regexp"
	"strings"

	"dungeonexplorer/pkg/engine/world"
	"dungeonexplorer/pkg/game/state"
)

// Map icons
const (
	PlayerIcon    = "@"
	IconUnvisited = "●"
	IconVisited   = "○"
	IconItem      = "?"
	IconVoid      = " "
)

// markupPattern matches FUNCTION{operand} spans such as ITEM{Sword} or GT{MENU_QUIT}
var markupPattern = regexp.MustCompile(`([A-Z_]+)\{([^{}]+)\}`)

// Markup applies fn to every FUNCTION{operand} span in msg.
// fn returns the replacement and false for functions it does not know,
// in which case the span is left untouched.
func Markup(msg string, fn func(function, operand string) (string, bool)) string {
	return markupPattern.ReplaceAllStringFunc(msg, func(span string) string {
		m := markupPattern.FindStringSubmatch(span)
		if val, ok := fn(m[1], m[2]); ok {
			return val
		}
		return span
	})
}

// Literal removes markup delimiters from text taken from outside the game,
// such as player names, so that it is always shown as written
func Literal(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '{' || r == '}' {
			return -1
		}
		return r
	}, text)
}

// StripMarkup replaces every markup span with its bare operand
func StripMarkup(msg string) string {
	return markupPattern.ReplaceAllString(msg, "$2")
}

// CellIcon returns the minimap icon for the room at pos
func CellIcon(g *state.Game, pos world.Vec2) string {
	room := g.Grid.Get(pos)
	switch {
	case room == nil:
		return IconVoid
	case pos.Equals(g.Position()):
		return PlayerIcon
	case room.Visited() && room.HasItem():
		return IconItem
	case room.Visited():
		return IconVisited
	default:
		return IconUnvisited
	}
}

// MapRows returns the grid icons row by row, top row first.
// The top row is the highest y so that Up points up on screen.
func MapRows(g *state.Game) [][]string {
	size := g.Grid.Size()
	rows := make([][]string, 0, size)
	for y := size - 1; y >= 0; y-- {
		icons := make([]string, size)
		for x := 0; x < size; x++ {
			icons[x] = CellIcon(g, world.V(x, y))
		}
		rows = append(rows, icons)
	}
	return rows
}
