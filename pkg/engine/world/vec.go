package world

import "fmt"

// Vec2 is an integer coordinate on the grid, or an offset between two coordinates.
// The Y axis points up: moving Up increases Y.
type Vec2 struct {
	X int
	Y int
}

// Unit offsets for the four cardinal directions
var (
	UnitUp    = Vec2{X: 0, Y: 1}
	UnitDown  = Vec2{X: 0, Y: -1}
	UnitLeft  = Vec2{X: -1, Y: 0}
	UnitRight = Vec2{X: 1, Y: 0}
)

// V is shorthand for Vec2{X: x, Y: y}
func V(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of v and o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Equals reports whether both components match
func (v Vec2) Equals(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}
