// Package world provides the 2D room grid primitives: coordinates, directions,
// rooms and the grid that owns them.
package world

import (
	"fmt"
	"strings"
)

// Room is a single cell of the grid.
// Items only ever leave a room; the visited flag only ever goes from false to true.
type Room struct {
	description string
	items       []string
	visited     bool
}

// NewRoom creates an unvisited room holding a copy of the given items
func NewRoom(description string, items ...string) *Room {
	return &Room{
		description: description,
		items:       append([]string(nil), items...),
	}
}

// Description returns the flavor text of the room
func (r *Room) Description() string {
	return r.description
}

// Items returns a copy of the items lying in the room, in order
func (r *Room) Items() []string {
	return append([]string(nil), r.items...)
}

// ItemCount returns the number of items in the room
func (r *Room) ItemCount() int {
	return len(r.items)
}

// HasItem returns true while at least one item is left in the room
func (r *Room) HasItem() bool {
	return len(r.items) > 0
}

// Visited returns true once the player has entered the room
func (r *Room) Visited() bool {
	return r.visited
}

// MarkVisited marks the room as visited
func (r *Room) MarkVisited() {
	r.visited = true
}

// PickUpItem removes and returns the item at index, keeping the order of the rest.
// An index outside [0, ItemCount()) is a caller bug and panics.
func (r *Room) PickUpItem(index int) string {
	if index < 0 || index >= len(r.items) {
		panic(fmt.Sprintf("world: item index %d out of range [0,%d)", index, len(r.items)))
	}

	item := r.items[index]
	r.items = append(r.items[:index], r.items[index+1:]...)
	return item
}

// ListItems returns the items one per line
func (r *Room) ListItems() string {
	var sb strings.Builder
	for _, item := range r.items {
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return sb.String()
}
