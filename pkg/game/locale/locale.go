// Package locale holds the player-facing strings of the game as gettext catalogs.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var catalogs embed.FS

// DefaultLanguage is used when no language is configured
const DefaultLanguage = "en"

// ErrUnknownLanguage is returned when no catalog exists for a language
var ErrUnknownLanguage = errors.New("unknown language")

// Message keys
const (
	NamePrompt    = "NAME_PROMPT"
	Welcome       = "WELCOME"
	InvalidNumber = "INVALID_NUMBER"
	OutOfRange    = "OUT_OF_RANGE"
	SelectHelp    = "SELECT_HELP"

	MenuPrompt      = "MENU_PROMPT"
	MenuInspectRoom = "MENU_INSPECT_ROOM"
	MenuInspectSelf = "MENU_INSPECT_SELF"
	MenuExplore     = "MENU_EXPLORE"
	MenuExits       = "MENU_EXITS"
	MenuQuit        = "MENU_QUIT"

	RoomHeader = "ROOM_HEADER"
	SelfPlayer = "SELF_PLAYER"
	SelfHealth = "SELF_HEALTH"
	SelfItems  = "SELF_ITEMS"

	ExploreLook    = "EXPLORE_LOOK"
	ExploreNothing = "EXPLORE_NOTHING"
	ExploreFound   = "EXPLORE_FOUND"
	ExploreTake    = "EXPLORE_TAKE"
	ExploreLeave   = "EXPLORE_LEAVE"
	ExploreLeft    = "EXPLORE_LEFT"
	ExploreTook    = "EXPLORE_TOOK"

	ExitsPrompt    = "EXITS_PROMPT"
	ExitVisited    = "EXIT_VISITED"
	ExitNotVisited = "EXIT_NOT_VISITED"
	ExitsCancel    = "EXITS_CANCEL"
	EnteredRoom    = "ENTERED_ROOM"
	DirUp          = "DIR_UP"
	DirDown        = "DIR_DOWN"
	DirRight       = "DIR_RIGHT"
	DirLeft        = "DIR_LEFT"

	Turn       = "TURN"
	Health     = "HEALTH"
	Inventory  = "INVENTORY"
	Explored   = "EXPLORED"
	Messages   = "MESSAGES"
	NoMessages = "NO_MESSAGES"

	EndDied     = "END_DIED"
	EndQuit     = "END_QUIT"
	EndSummary  = "END_SUMMARY"
	InputClosed = "INPUT_CLOSED"
)

// Keys lists every message key the game looks up
func Keys() []string {
	return []string{
		NamePrompt, Welcome, InvalidNumber, OutOfRange, SelectHelp,
		MenuPrompt, MenuInspectRoom, MenuInspectSelf, MenuExplore, MenuExits, MenuQuit,
		RoomHeader, SelfPlayer, SelfHealth, SelfItems,
		ExploreLook, ExploreNothing, ExploreFound, ExploreTake, ExploreLeave, ExploreLeft, ExploreTook,
		ExitsPrompt, ExitVisited, ExitNotVisited, ExitsCancel, EnteredRoom,
		DirUp, DirDown, DirRight, DirLeft,
		Turn, Health, Inventory, Explored, Messages, NoMessages,
		EndDied, EndQuit, EndSummary, InputClosed,
	}
}

// lookup resolves keys known only at runtime, such as GT{} markup operands.
// Calling through a function value keeps vet from treating keys as format strings.
var lookup = (*gotext.Po).Get

// Catalog resolves message keys for one language
type Catalog struct {
	lang string
	po   *gotext.Po
}

// Load parses the embedded catalog for lang
func Load(lang string) (*Catalog, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		lang = DefaultLanguage
	}

	data, err := catalogs.ReadFile(path.Join("locales", lang+".po"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownLanguage, lang, strings.Join(Languages(), ", "))
		}
		return nil, fmt.Errorf("read catalog %s: %w", lang, err)
	}

	po := gotext.NewPo()
	po.Parse(data)

	return &Catalog{lang: lang, po: po}, nil
}

// MustLoad is like Load but panics on error. Meant for the built-in languages.
func MustLoad(lang string) *Catalog {
	c, err := Load(lang)
	if err != nil {
		panic(err)
	}
	return c
}

// Language returns the catalog's language code
func (c *Catalog) Language() string {
	return c.lang
}

// Get returns the unformatted message for key. Callers fill verbs with fmt.Sprintf.
// Unknown keys are returned unchanged.
func (c *Catalog) Get(key string) string {
	return lookup(c.po, key)
}

// Languages returns the language codes that have an embedded catalog
func Languages() []string {
	entries, err := catalogs.ReadDir("locales")
	if err != nil {
		return nil
	}

	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".po"); ok {
			langs = append(langs, name)
		}
	}
	sort.Strings(langs)
	return langs
}
