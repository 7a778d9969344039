package state

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"dungeonexplorer/pkg/engine/world"
)

// Status is the state of the session state machine
type Status int

// Session states
const (
	Playing Status = iota
	Terminated
)

// Outcome tells why a session terminated
type Outcome int

// Termination causes
const (
	OutcomeNone Outcome = iota
	OutcomeDied
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDied:
		return "died"
	case OutcomeQuit:
		return "quit"
	default:
		return "none"
	}
}

// Game represents one exploration session.
// The current room is always read from the grid at Position, so the two cannot disagree.
type Game struct {
	ID uuid.UUID

	Grid *world.Grid

	Player *Player

	Messages []string

	Turn int

	position world.Vec2
	status   Status
	outcome  Outcome
	explored mapset.Set[world.Vec2]
}

// NewGame creates a session in the Playing state with the player standing at start.
// A start position outside the grid panics.
func NewGame(grid *world.Grid, player *Player, start world.Vec2) *Game {
	if grid == nil || player == nil {
		panic("state: game needs a grid and a player")
	}
	if !grid.InBounds(start) {
		panic(fmt.Sprintf("state: start position %v outside the grid", start))
	}

	return &Game{
		ID:       uuid.New(),
		Grid:     grid,
		Player:   player,
		Messages: make([]string, 0),
		position: start,
		status:   Playing,
		explored: mapset.New[world.Vec2](),
	}
}

// Position returns the player's grid coordinate
func (g *Game) Position() world.Vec2 {
	return g.position
}

// CurrentRoom returns the room at the player's position
func (g *Game) CurrentRoom() *world.Room {
	return g.Grid.Get(g.position)
}

// Status returns the current state machine state
func (g *Game) Status() Status {
	return g.status
}

// Outcome returns why the session ended, or OutcomeNone while playing
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Playing reports whether the session is still running
func (g *Game) Playing() bool {
	return g.status == Playing
}

// Terminate ends the session with the given cause. Once terminated the cause is fixed.
func (g *Game) Terminate(cause Outcome) {
	if g.status != Playing {
		return
	}
	g.status = Terminated
	g.outcome = cause
}

// EnterCurrentRoom marks the current room visited and records it as explored
func (g *Game) EnterCurrentRoom() *world.Room {
	room := g.CurrentRoom()
	room.MarkVisited()
	g.explored.Put(g.position)
	return room
}

// ExploredCount returns how many distinct rooms the player has entered
func (g *Game) ExploredCount() int {
	return g.explored.Size()
}

// Explored reports whether the player has entered the room at pos
func (g *Game) Explored(pos world.Vec2) bool {
	return g.explored.Has(pos)
}

// Exits returns the rooms reachable from the current position
func (g *Game) Exits() []world.Exit {
	return g.Grid.Neighbors(g.position)
}

// TakeItem moves the item at index from the current room into the player's inventory.
// The room gives the item up before the player receives it; an invalid index panics
// before either side changes.
func (g *Game) TakeItem(index int) string {
	item := g.CurrentRoom().PickUpItem(index)
	g.Player.PickUpItem(item)
	return item
}

// Move steps the player one room in dir and returns the room entered.
// Moving off the grid is a caller bug and panics without changing the position.
func (g *Game) Move(dir world.Direction) *world.Room {
	next := g.position.Add(dir.Offset())
	room := g.Grid.Get(next)
	if !dir.IsValid() || room == nil {
		panic(fmt.Sprintf("state: no room %v of %v", dir, g.position))
	}
	g.position = next
	return room
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}
