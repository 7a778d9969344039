package world

import (
	"fmt"
	"math/rand"
)

// RoomGenerator produces the rooms a grid is filled with
type RoomGenerator interface {
	NewRoom() *Room
}

// RandomRooms generates rooms with a random description and a single random item
// drawn from a vocabulary
type RandomRooms struct {
	vocab Vocabulary
	rng   *rand.Rand
}

// Ensure RandomRooms implements RoomGenerator
var _ RoomGenerator = (*RandomRooms)(nil)

// NewRandomRooms creates a generator drawing from vocab with the given random source
func NewRandomRooms(vocab Vocabulary, rng *rand.Rand) *RandomRooms {
	return &RandomRooms{
		vocab: vocab,
		rng:   rng,
	}
}

// NewRoom returns a fresh room with a generated description and one item
func (g *RandomRooms) NewRoom() *Room {
	return NewRoom(g.Description(), g.Item())
}

// Description generates a flavor text such as
// "A dark, square room with stone walls and tiled flooring with a massive chandelier."
func (g *RandomRooms) Description() string {
	shape := g.pick(g.vocab.Shapes)
	light := g.pick(g.vocab.Lighting)
	wall := g.pick(g.vocab.Walls)
	floor := g.pick(g.vocab.Floors)
	feature := g.pick(g.vocab.Features)

	description := fmt.Sprintf("A %s, %s room with %s walls and %s flooring", light, shape, wall, floor)
	if feature != "" {
		description += " " + feature
	}

	return description + "."
}

// Item returns an item name chosen uniformly from the vocabulary
func (g *RandomRooms) Item() string {
	return g.pick(g.vocab.Items)
}

func (g *RandomRooms) pick(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return words[g.rng.Intn(len(words))]
}
