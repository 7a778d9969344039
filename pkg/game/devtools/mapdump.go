// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dungeonexplorer/pkg/engine/world"
	"dungeonexplorer/pkg/game/state"
)

// roomSymbol returns the single-character symbol for a room (no player overlay)
func roomSymbol(room *world.Room) rune {
	switch {
	case room == nil:
		return '#'
	case room.HasItem() && room.Visited():
		return 'I'
	case room.HasItem():
		return 'i'
	case room.Visited():
		return 'v'
	default:
		return '.'
	}
}

// writeMapGrid writes the grid with the highest y first and the player as '@'
func writeMapGrid(w io.Writer, g *state.Game) {
	size := g.Grid.Size()
	for y := size - 1; y >= 0; y-- {
		fmt.Fprintf(w, "%2d ", y)
		for x := 0; x < size; x++ {
			pos := world.V(x, y)
			if pos.Equals(g.Position()) {
				fmt.Fprint(w, "@")
				continue
			}
			fmt.Fprintf(w, "%c", roomSymbol(g.Grid.Get(pos)))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, "   ")
	for x := 0; x < size; x++ {
		fmt.Fprintf(w, "%d", x%10)
	}
	fmt.Fprintln(w)
}

// DumpMap writes a full debug dump of the session: metadata, legend, map and
// every room with its description and items.
func DumpMap(w io.Writer, g *state.Game) error {
	if g == nil || g.Grid == nil {
		return fmt.Errorf("no grid")
	}

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "session_id: %s\n", g.ID)
	fmt.Fprintf(w, "grid_size: %d\n", g.Grid.Size())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical, up=+y)\n")
	fmt.Fprintf(w, "player: %q\n", g.Player.Name())
	fmt.Fprintf(w, "player_cell: %d,%d\n", g.Position().X, g.Position().Y)
	fmt.Fprintf(w, "health: %d\n", g.Player.Health())
	fmt.Fprintf(w, "inventory: %s\n", g.Player.InventorySummary())
	fmt.Fprintf(w, "turn: %d\n", g.Turn)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = unvisited, no items  i = unvisited with items  v = visited, no items  I = visited with items  @ = player")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, g)
	fmt.Fprintln(w, "")

	// --- Rooms ---
	fmt.Fprintln(w, "--- Rooms ---")
	g.Grid.ForEachRoom(func(pos world.Vec2, room *world.Room) {
		fmt.Fprintf(w, "  x: %d y: %d visited: %v description: %q\n", pos.X, pos.Y, room.Visited(), room.Description())
		if items := strings.TrimRight(room.ListItems(), "\n"); items != "" {
			for _, item := range strings.Split(items, "\n") {
				fmt.Fprintf(w, "    item: %q\n", item)
			}
		}
	})

	return nil
}

// DumpMapToFile writes DumpMap output to path and returns the absolute path written
func DumpMapToFile(g *state.Game, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMap(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}
