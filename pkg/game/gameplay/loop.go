// Package gameplay provides the turn loop that drives an exploration session.
package gameplay

import (
	"fmt"
	"log/slog"
	"strings"

	"dungeonexplorer/pkg/engine/input"
	"dungeonexplorer/pkg/engine/world"
	"dungeonexplorer/pkg/game/locale"
	"dungeonexplorer/pkg/game/renderer"
	"dungeonexplorer/pkg/game/state"
)

// Action is one entry of the main menu, in menu order
type Action int

const (
	ActionInspectRoom Action = iota
	ActionInspectSelf
	ActionExplore
	ActionExits
	ActionQuit
)

var actionKeys = [...]string{
	ActionInspectRoom: locale.MenuInspectRoom,
	ActionInspectSelf: locale.MenuInspectSelf,
	ActionExplore:     locale.MenuExplore,
	ActionExits:       locale.MenuExits,
	ActionQuit:        locale.MenuQuit,
}

var actionNames = [...]string{
	ActionInspectRoom: "inspect_room",
	ActionInspectSelf: "inspect_self",
	ActionExplore:     "explore",
	ActionExits:       "exits",
	ActionQuit:        "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

var directionKeys = map[world.Direction]string{
	world.Up:    locale.DirUp,
	world.Down:  locale.DirDown,
	world.Right: locale.DirRight,
	world.Left:  locale.DirLeft,
}

// Loop runs turns against a session until it terminates
type Loop struct {
	game     *state.Game
	chooser  input.Chooser
	renderer renderer.Renderer
	catalog  *locale.Catalog
	logger   *slog.Logger
}

// NewLoop creates a turn loop. A nil logger uses slog.Default().
func NewLoop(g *state.Game, chooser input.Chooser, r renderer.Renderer, catalog *locale.Catalog, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		game:     g,
		chooser:  chooser,
		renderer: r,
		catalog:  catalog,
		logger:   logger,
	}
}

// Run plays turns until the session terminates and returns the cause.
// An error from the chooser stops the loop with the session still playing.
func (l *Loop) Run() (state.Outcome, error) {
	for l.game.Playing() {
		if err := l.Turn(); err != nil {
			return l.game.Outcome(), err
		}
	}
	return l.game.Outcome(), nil
}

// Turn plays a single turn: death check, visited marking, main menu, dispatch
func (l *Loop) Turn() error {
	g := l.game
	if !g.Playing() {
		return nil
	}

	if !g.Player.Alive() {
		g.Terminate(state.OutcomeDied)
		l.logger.Info("session terminated", "cause", g.Outcome().String(), "turn", g.Turn)
		return nil
	}

	g.EnterCurrentRoom()
	g.Turn++

	l.renderer.RenderFrame(g)

	choice, err := l.chooser.Choose(l.catalog.Get(locale.MenuPrompt), l.menu())
	if err != nil {
		return fmt.Errorf("turn %d: %w", g.Turn, err)
	}

	action := Action(choice)
	l.logger.Debug("action chosen", "turn", g.Turn, "action", action.String())

	switch action {
	case ActionInspectRoom:
		l.inspectRoom()
	case ActionInspectSelf:
		l.inspectSelf()
	case ActionExplore:
		return l.explore()
	case ActionExits:
		return l.exits()
	case ActionQuit:
		g.Terminate(state.OutcomeQuit)
		l.logger.Info("session terminated", "cause", g.Outcome().String(), "turn", g.Turn)
	}

	return nil
}

// menu returns the main menu labels in Action order
func (l *Loop) menu() []string {
	labels := make([]string, len(actionKeys))
	for i, key := range actionKeys {
		labels[i] = l.catalog.Get(key)
	}
	return labels
}

func (l *Loop) inspectRoom() {
	l.say(l.catalog.Get(locale.RoomHeader) + "\nROOM{" + l.game.CurrentRoom().Description() + "}")
}

func (l *Loop) inspectSelf() {
	p := l.game.Player
	l.say(strings.Join([]string{
		fmt.Sprintf(l.catalog.Get(locale.SelfPlayer), p.Name()),
		"\t" + fmt.Sprintf(l.catalog.Get(locale.SelfHealth), p.Health()),
		"\t" + fmt.Sprintf(l.catalog.Get(locale.SelfItems), p.InventorySummary()),
	}, "\n"))
}

// explore offers every item of the current room plus a trailing "Leave"
func (l *Loop) explore() error {
	room := l.game.CurrentRoom()
	l.say(l.catalog.Get(locale.ExploreLook))

	if !room.HasItem() {
		l.say(l.catalog.Get(locale.ExploreNothing))
		return nil
	}

	items := room.Items()
	options := make([]string, 0, len(items)+1)
	for _, item := range items {
		options = append(options, fmt.Sprintf(l.catalog.Get(locale.ExploreTake), item))
	}
	options = append(options, l.catalog.Get(locale.ExploreLeave))

	choice, err := l.chooser.Choose(l.catalog.Get(locale.ExploreFound), options)
	if err != nil {
		return fmt.Errorf("explore: %w", err)
	}
	if choice == len(items) {
		l.say(l.catalog.Get(locale.ExploreLeft))
		return nil
	}

	item := l.game.TakeItem(choice)
	l.say(fmt.Sprintf(l.catalog.Get(locale.ExploreTook), item))
	l.logger.Info("item taken", "item", item, "position", l.game.Position().String())
	return nil
}

// exits offers every neighbouring room plus a trailing "Cancel"
func (l *Loop) exits() error {
	exits := l.game.Exits()

	options := make([]string, 0, len(exits)+1)
	for _, e := range exits {
		key := locale.ExitNotVisited
		if e.Room.Visited() {
			key = locale.ExitVisited
		}
		options = append(options, fmt.Sprintf(l.catalog.Get(key), l.catalog.Get(directionKeys[e.Direction])))
	}
	options = append(options, l.catalog.Get(locale.ExitsCancel))

	choice, err := l.chooser.Choose(l.catalog.Get(locale.ExitsPrompt), options)
	if err != nil {
		return fmt.Errorf("exits: %w", err)
	}
	if choice == len(exits) {
		return nil
	}

	from := l.game.Position()
	l.game.Move(exits[choice].Direction)
	l.say(l.catalog.Get(locale.EnteredRoom))
	l.logger.Info("room entered",
		"from", from.String(),
		"to", l.game.Position().String(),
		"direction", exits[choice].Direction.String())
	return nil
}

// say records a message in the session journal shown by the next frame
func (l *Loop) say(msg string) {
	l.game.AddMessage(msg)
	l.logger.Debug("journal", "turn", l.game.Turn, "text", renderer.StripMarkup(msg))
}
