package world

import "fmt"

// DefaultSize is the width and height of the default grid
const DefaultSize = 4

// Grid is a fixed size×size matrix of rooms indexed by [x][y].
// The grid owns its rooms; callers receive pointers but never a second copy.
type Grid struct {
	rooms [][]*Room
	size  int
}

// Exit is a room adjacent to some position together with the direction leading to it
type Exit struct {
	Direction Direction
	Room      *Room
}

// Offset returns the displacement from the origin position to the exit's room
func (e Exit) Offset() Vec2 {
	return e.Direction.Offset()
}

// NewGrid creates a new size×size grid with every cell filled by gen
func NewGrid(size int, gen RoomGenerator) *Grid {
	g := &Grid{}
	g.Build(size, gen)
	return g
}

// Size returns the number of rooms along each side of the grid
func (g *Grid) Size() int {
	return g.size
}

// InBounds checks if a position lies inside the grid
func (g *Grid) InBounds(pos Vec2) bool {
	return pos.X >= 0 && pos.X < g.size && pos.Y >= 0 && pos.Y < g.size
}

// Get returns the room at the given position, or nil if out of bounds
func (g *Grid) Get(pos Vec2) *Room {
	if !g.InBounds(pos) {
		return nil
	}
	return g.rooms[pos.X][pos.Y]
}

// Set stores room at pos. Writing outside the grid or storing a nil room panics:
// both can only happen through a construction bug.
func (g *Grid) Set(pos Vec2, room *Room) {
	if !g.InBounds(pos) {
		panic(fmt.Sprintf("world: position %v outside %dx%d grid", pos, g.size, g.size))
	}
	if room == nil {
		panic(fmt.Sprintf("world: nil room for position %v", pos))
	}
	g.rooms[pos.X][pos.Y] = room
}

// GetRelative returns the room next to pos in the given direction, or nil
func (g *Grid) GetRelative(pos Vec2, dir Direction) *Room {
	if !dir.IsValid() {
		return nil
	}
	return g.Get(pos.Add(dir.Offset()))
}

// Neighbors returns the rooms adjacent to pos in Up, Down, Right, Left order.
// Directions leading off the grid are left out; there is no wraparound.
func (g *Grid) Neighbors(pos Vec2) []Exit {
	exits := make([]Exit, 0, len(offsets))
	for _, dir := range AllDirections() {
		if room := g.GetRelative(pos, dir); room != nil {
			exits = append(exits, Exit{Direction: dir, Room: room})
		}
	}
	return exits
}

// NeighborRooms is Neighbors split into two index-aligned slices of rooms and offsets
func (g *Grid) NeighborRooms(pos Vec2) ([]*Room, []Vec2) {
	exits := g.Neighbors(pos)
	rooms := make([]*Room, len(exits))
	offs := make([]Vec2, len(exits))
	for i, e := range exits {
		rooms[i] = e.Room
		offs[i] = e.Offset()
	}
	return rooms, offs
}

// ForEachRoom iterates over all rooms column by column
func (g *Grid) ForEachRoom(fn func(pos Vec2, room *Room)) {
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			fn(V(x, y), g.rooms[x][y])
		}
	}
}

// Build initializes the grid with the given size, asking gen for every room
func (g *Grid) Build(size int, gen RoomGenerator) {
	if size <= 0 {
		panic("Grid size must be positive")
	}
	if gen == nil {
		panic("Grid needs a room generator")
	}

	g.size = size
	g.rooms = make([][]*Room, size)

	for x := 0; x < size; x++ {
		g.rooms[x] = make([]*Room, size)

		for y := 0; y < size; y++ {
			g.Set(V(x, y), gen.NewRoom())
		}
	}
}
