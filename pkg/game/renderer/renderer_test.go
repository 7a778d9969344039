package renderer

import (
	"math/rand"
	"strings"
	"testing"

	"dungeonexplorer/pkg/engine/world"
	"dungeonexplorer/pkg/game/state"
)

func TestMarkup(t *testing.T) {
	upper := func(function, operand string) (string, bool) {
		if function != "ITEM" {
			return "", false
		}
		return strings.ToUpper(operand), true
	}

	tests := []struct {
		in, want string
	}{
		{"You pick up ITEM{Sword}", "You pick up SWORD"},
		{"ITEM{a} and ITEM{b c}", "A and B C"},
		{"ROOM{kept} ITEM{x}", "ROOM{kept} X"},
		{"no markup here", "no markup here"},
		{"lower{case} stays", "lower{case} stays"},
	}
	for _, tt := range tests {
		if got := Markup(tt.in, upper); got != tt.want {
			t.Errorf("Markup(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Ada", "Ada"},
		{"GT{MENU_QUIT}", "GTMENU_QUIT"},
		{"{}", ""},
		{"Zoë", "Zoë"},
	}
	for _, tt := range tests {
		got := Literal(tt.in)
		if got != tt.want {
			t.Errorf("Literal(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if Markup(got, func(string, string) (string, bool) { return "X", true }) != got {
			t.Errorf("Literal(%q) = %q still contains markup", tt.in, got)
		}
	}
}

func TestStripMarkup(t *testing.T) {
	got := StripMarkup("You pick up ITEM{Healing Potion} in ROOM{the hall}")
	want := "You pick up Healing Potion in the hall"
	if got != want {
		t.Errorf("StripMarkup() = %q, want %q", got, want)
	}
}

func newGame(size int) *state.Game {
	grid := world.NewGrid(size, world.NewRandomRooms(world.DefaultVocabulary(), rand.New(rand.NewSource(2))))
	return state.NewGame(grid, state.NewPlayer("Ada", 10), world.V(0, 0))
}

func TestCellIcon(t *testing.T) {
	g := newGame(3)
	g.EnterCurrentRoom()

	g.Grid.Get(world.V(1, 0)).MarkVisited()
	visitedEmpty := world.NewRoom("empty")
	visitedEmpty.MarkVisited()
	g.Grid.Set(world.V(0, 1), visitedEmpty)

	tests := []struct {
		pos  world.Vec2
		want string
	}{
		{world.V(0, 0), PlayerIcon},
		{world.V(1, 0), IconItem},
		{world.V(0, 1), IconVisited},
		{world.V(2, 2), IconUnvisited},
		{world.V(5, 5), IconVoid},
	}
	for _, tt := range tests {
		if got := CellIcon(g, tt.pos); got != tt.want {
			t.Errorf("CellIcon(%v) = %q, want %q", tt.pos, got, tt.want)
		}
	}
}

func TestMapRows_TopRowIsHighestY(t *testing.T) {
	g := newGame(3)
	rows := MapRows(g)
	if len(rows) != 3 {
		t.Fatalf("MapRows() returned %d rows, want 3", len(rows))
	}
	if got, want := strings.Join(rows[2], ""), PlayerIcon+IconUnvisited+IconUnvisited; got != want {
		t.Errorf("bottom row = %q, want %q", got, want)
	}
	if strings.Contains(strings.Join(rows[0], ""), PlayerIcon) {
		t.Errorf("top row %v contains the player", rows[0])
	}
}
