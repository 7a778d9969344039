package renderer

import (
	"dungeonexplorer/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleItem
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
	StylePlayer
	StyleVisited
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, markup)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame:
	// turn, room map, status bar and messages pane
	RenderFrame(g *state.Game)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}
