package world

import (
	"errors"
	"fmt"
)

// ErrInvalidVocabulary is returned when a vocabulary cannot generate rooms
var ErrInvalidVocabulary = errors.New("invalid vocabulary")

// Vocabulary holds the word lists room descriptions and items are drawn from.
// Empty strings in Features mean "no feature".
type Vocabulary struct {
	Lighting []string `yaml:"lighting"`
	Shapes   []string `yaml:"shapes"`
	Walls    []string `yaml:"walls"`
	Floors   []string `yaml:"floors"`
	Features []string `yaml:"features"`
	Items    []string `yaml:"items"`
}

// DefaultVocabulary returns the built-in word lists
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Shapes: []string{
			"square", "rectangular", "circular", "hexagonal", "L-shaped", "triangular", "narrow", "vast", "compact",
		},
		Lighting: []string{
			"dimly-lit", "well-lit", "dark", "sunlit", "moonlit", "candlelit", "pitch-black", "flickering", "muted",
		},
		Walls: []string{
			"stone", "brick", "wooden paneled", "marble", "concrete", "metal-plated", "moss-covered", "ivy-covered",
		},
		Floors: []string{
			"wooden", "stone", "marble", "carpeted", "tiled", "dirt", "metal grating", "moss-covered", "concrete", "checkered", "cracked",
		},
		// Roughly half of the rooms get no feature at all
		Features: []string{
			"with a crackling fireplace",
			"containing an ornate fountain",
			"with strange symbols etched into the floor",
			"with a massive chandelier",
			"featuring a mysterious altar",
			"with bookshelves lining the walls",
			"with cobwebs in every corner",
			"", "", "", "", "", "", "", "",
		},
		Items: []string{
			"Sword",
			"Healing Potion",
			"Strength Potion",
			"Shield",
			"Bow",
			"Map",
			"Key",
		},
	}
}

// Validate checks that every mandatory list has at least one non-empty word
func (v Vocabulary) Validate() error {
	lists := []struct {
		name  string
		words []string
	}{
		{"lighting", v.Lighting},
		{"shapes", v.Shapes},
		{"walls", v.Walls},
		{"floors", v.Floors},
		{"items", v.Items},
	}

	for _, l := range lists {
		if len(l.words) == 0 {
			return fmt.Errorf("%w: %s list is empty", ErrInvalidVocabulary, l.name)
		}
		for i, w := range l.words {
			if w == "" {
				return fmt.Errorf("%w: %s[%d] is empty", ErrInvalidVocabulary, l.name, i)
			}
		}
	}

	return nil
}
