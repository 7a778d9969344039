package world

import (
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/mapset"
)

// newSeededGrid builds a default-size grid from the default vocabulary with a fixed seed.
func newSeededGrid(t *testing.T, seed int64) *Grid {
	t.Helper()
	return NewGrid(DefaultSize, NewRandomRooms(DefaultVocabulary(), rand.New(rand.NewSource(seed))))
}

func TestNewGrid_EveryCellPopulated(t *testing.T) {
	g := newSeededGrid(t, 1)
	items := mapset.New[string]()
	for _, item := range DefaultVocabulary().Items {
		items.Put(item)
	}

	for x := 0; x < DefaultSize; x++ {
		for y := 0; y < DefaultSize; y++ {
			r := g.Get(V(x, y))
			if r == nil {
				t.Fatalf("Get(%d,%d) = nil, want room", x, y)
			}
			if r.Description() == "" {
				t.Errorf("Get(%d,%d).Description() is empty", x, y)
			}
			if r.ItemCount() != 1 {
				t.Errorf("Get(%d,%d).ItemCount() = %d, want 1", x, y, r.ItemCount())
			}
			if !items.Has(r.Items()[0]) {
				t.Errorf("Get(%d,%d) item %q not in vocabulary", x, y, r.Items()[0])
			}
			if r.Visited() {
				t.Errorf("Get(%d,%d).Visited() = true for a fresh grid", x, y)
			}
		}
	}
}

func TestGet_OutOfBounds(t *testing.T) {
	g := newSeededGrid(t, 1)
	positions := []Vec2{
		V(-1, 0), V(0, -1), V(DefaultSize, 0), V(0, DefaultSize),
		V(-1, -1), V(DefaultSize, DefaultSize), V(100, 2), V(2, -100),
	}
	for _, pos := range positions {
		if r := g.Get(pos); r != nil {
			t.Errorf("Get(%v) = %v, want nil", pos, r)
		}
	}
}

func TestSet_ReplacesRoom(t *testing.T) {
	g := newSeededGrid(t, 1)
	room := NewRoom("A test room.", "Key")
	g.Set(V(2, 3), room)
	if got := g.Get(V(2, 3)); got != room {
		t.Errorf("Get(2,3) after Set = %p, want %p", got, room)
	}
}

func TestSet_OutOfBoundsPanics(t *testing.T) {
	g := newSeededGrid(t, 1)
	defer func() {
		if recover() == nil {
			t.Error("Set outside the grid did not panic")
		}
	}()
	g.Set(V(DefaultSize, 0), NewRoom("x"))
}

func TestSet_NilRoomPanics(t *testing.T) {
	g := newSeededGrid(t, 1)
	defer func() {
		if recover() == nil {
			t.Error("Set with nil room did not panic")
		}
	}()
	g.Set(V(0, 0), nil)
}

func TestBuild_InvalidSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, ...) did not panic")
		}
	}()
	NewGrid(0, NewRandomRooms(DefaultVocabulary(), rand.New(rand.NewSource(1))))
}

func TestNeighbors_Counts(t *testing.T) {
	g := newSeededGrid(t, 7)
	tests := []struct {
		name string
		pos  Vec2
		want []Direction
	}{
		{"corner origin", V(0, 0), []Direction{Up, Right}},
		{"corner top right", V(3, 3), []Direction{Down, Left}},
		{"corner bottom right", V(3, 0), []Direction{Up, Left}},
		{"edge bottom", V(1, 0), []Direction{Up, Right, Left}},
		{"edge left", V(0, 2), []Direction{Up, Down, Right}},
		{"interior", V(1, 1), []Direction{Up, Down, Right, Left}},
		{"interior other", V(2, 2), []Direction{Up, Down, Right, Left}},
		{"outside", V(-1, 0), []Direction{Right}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exits := g.Neighbors(tt.pos)
			if len(exits) != len(tt.want) {
				t.Fatalf("Neighbors(%v) returned %d exits, want %d", tt.pos, len(exits), len(tt.want))
			}
			for i, e := range exits {
				if e.Direction != tt.want[i] {
					t.Errorf("Neighbors(%v)[%d].Direction = %v, want %v", tt.pos, i, e.Direction, tt.want[i])
				}
				if want := g.Get(tt.pos.Add(e.Offset())); e.Room != want {
					t.Errorf("Neighbors(%v)[%d].Room does not match Get(pos+offset)", tt.pos, i)
				}
			}
		})
	}
}

func TestNeighbors_NoDuplicateDirections(t *testing.T) {
	g := newSeededGrid(t, 3)
	g.ForEachRoom(func(pos Vec2, _ *Room) {
		exits := g.Neighbors(pos)
		if len(exits) > 4 {
			t.Errorf("Neighbors(%v) returned %d exits, want at most 4", pos, len(exits))
		}
		seen := mapset.New[Direction]()
		for _, e := range exits {
			if seen.Has(e.Direction) {
				t.Errorf("Neighbors(%v) repeats direction %v", pos, e.Direction)
			}
			seen.Put(e.Direction)
		}
	})
}

func TestNeighborRooms_Aligned(t *testing.T) {
	g := newSeededGrid(t, 5)
	g.ForEachRoom(func(pos Vec2, _ *Room) {
		rooms, offs := g.NeighborRooms(pos)
		if len(rooms) != len(offs) {
			t.Fatalf("NeighborRooms(%v): %d rooms, %d offsets", pos, len(rooms), len(offs))
		}
		for i := range rooms {
			if got := g.Get(pos.Add(offs[i])); got != rooms[i] {
				t.Errorf("NeighborRooms(%v)[%d]: room does not sit at pos+offset %v", pos, i, offs[i])
			}
			if _, ok := DirectionOf(offs[i]); !ok {
				t.Errorf("NeighborRooms(%v)[%d]: offset %v is not a unit direction", pos, i, offs[i])
			}
		}
	})
}

func TestForEachRoom_VisitsAllCells(t *testing.T) {
	g := newSeededGrid(t, 1)
	seen := mapset.New[Vec2]()
	g.ForEachRoom(func(pos Vec2, room *Room) {
		if room == nil {
			t.Errorf("ForEachRoom passed nil room at %v", pos)
		}
		seen.Put(pos)
	})
	if seen.Size() != DefaultSize*DefaultSize {
		t.Errorf("ForEachRoom visited %d cells, want %d", seen.Size(), DefaultSize*DefaultSize)
	}
}
