// Package setup bootstraps an exploration session: the grid, the starting room and the player.
package setup

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"dungeonexplorer/pkg/engine/world"
	"dungeonexplorer/pkg/game/renderer"
	"dungeonexplorer/pkg/game/state"
)

// Starting room contents
const (
	StartDescription = "A dark, rectangular room with brick walls and a wooden floor."
	StartItem        = "Sword"
	DefaultHealth    = 100
)

// StartPosition is where every session begins
var StartPosition = world.V(0, 0)

// ErrEmptyName is returned when the player name is blank after trimming
var ErrEmptyName = errors.New("player name is empty")

// Options configure a new session. Zero values fall back to the defaults.
// Health is a pointer so that an explicit zero or negative health starts the player dead.
type Options struct {
	Size       int
	Health     *int
	Vocabulary *world.Vocabulary
	Rand       *rand.Rand
}

// NameReader reads the player's name
type NameReader interface {
	ReadName(prompt string) (string, error)
}

// StartingRoom returns the fixed room every session starts in
func StartingRoom() *world.Room {
	return world.NewRoom(StartDescription, StartItem)
}

// NewSession builds the grid, places the starting room over the generated one and
// creates the player. The session starts in the Playing state at StartPosition.
func NewSession(name string, opts Options) (*state.Game, error) {
	name = strings.TrimSpace(renderer.Literal(name))
	if name == "" {
		return nil, ErrEmptyName
	}

	opts = opts.withDefaults()
	if err := opts.Vocabulary.Validate(); err != nil {
		return nil, err
	}

	grid := world.NewGrid(opts.Size, world.NewRandomRooms(*opts.Vocabulary, opts.Rand))
	grid.Set(StartPosition, StartingRoom())

	return state.NewGame(grid, state.NewPlayer(name, *opts.Health), StartPosition), nil
}

// ReadPlayerName asks r for a name until a non-blank one is given
func ReadPlayerName(r NameReader, prompt string) (string, error) {
	for {
		name, err := r.ReadName(prompt)
		if err != nil {
			return "", err
		}
		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}
	}
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = world.DefaultSize
	}
	if o.Health == nil {
		health := DefaultHealth
		o.Health = &health
	}
	if o.Vocabulary == nil {
		v := world.DefaultVocabulary()
		o.Vocabulary = &v
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}
