package world

// Direction represents a cardinal direction
type Direction int

// Direction constants, declared in neighbor enumeration order
const (
	Up Direction = iota
	Down
	Right
	Left
)

// offsets maps every direction to its unit displacement
var offsets = [...]Vec2{
	Up:    UnitUp,
	Down:  UnitDown,
	Right: UnitRight,
	Left:  UnitLeft,
}

// AllDirections returns all valid directions in neighbor enumeration order
func AllDirections() []Direction {
	return []Direction{Up, Down, Right, Left}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Right:
		return "Right"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// Offset returns the unit displacement for this direction, or the zero vector
// for an invalid direction
func (d Direction) Offset() Vec2 {
	if !d.IsValid() {
		return Vec2{}
	}
	return offsets[d]
}

// DirectionOf returns the direction whose offset is exactly the given vector.
func DirectionOf(offset Vec2) (Direction, bool) {
	for _, d := range AllDirections() {
		if offsets[d].Equals(offset) {
			return d, true
		}
	}
	return 0, false
}
