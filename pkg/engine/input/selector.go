package input

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

// Selector is a Chooser driven by arrow keys: the highlighted option is picked with enter
type Selector struct {
	in  io.Reader
	out io.Writer

	// Help line rendered under the options
	Help string
}

// Ensure Selector implements Chooser
var _ Chooser = (*Selector)(nil)

// NewSelector creates a selector reading keys from in and drawing to out
func NewSelector(in io.Reader, out io.Writer) *Selector {
	return &Selector{
		in:   in,
		out:  out,
		Help: "↑/↓ move • enter select • esc quit",
	}
}

// Choose runs a small bubbletea program until an option is selected.
// Aborting with esc or ctrl+c returns ErrInputClosed.
func (s *Selector) Choose(prompt string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("choose %q: no options", prompt)
	}

	p := tea.NewProgram(newSelectModel(prompt, options, s.Help), tea.WithInput(s.in), tea.WithOutput(s.out))
	final, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("run selector: %w", err)
	}

	m := final.(selectModel)
	if !m.chosen {
		return 0, ErrInputClosed
	}
	return m.cursor, nil
}

type selectModel struct {
	prompt  string
	options []string
	help    string
	cursor  int
	chosen  bool
}

func newSelectModel(prompt string, options []string, help string) selectModel {
	return selectModel{
		prompt:  prompt,
		options: options,
		help:    help,
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.cursor = (m.cursor - 1 + len(m.options)) % len(m.options)
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % len(m.options)
	case "enter":
		m.chosen = true
		return m, tea.Quit
	default:
		// Digits jump straight to an option, like the numbered prompt
		if n, err := strconv.Atoi(key.String()); err == nil && n >= 0 && n < len(m.options) {
			m.cursor = n
			m.chosen = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m selectModel) View() string {
	if m.chosen {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(promptStyle.Render(m.prompt))
	sb.WriteString("\n\n")
	for i, opt := range m.options {
		if i == m.cursor {
			sb.WriteString(cursorStyle.Render("> " + opt))
		} else {
			sb.WriteString(optionStyle.Render("  " + opt))
		}
		sb.WriteString("\n")
	}
	if m.help != "" {
		sb.WriteString("\n")
		sb.WriteString(helpStyle.Render(m.help))
		sb.WriteString("\n")
	}
	return sb.String()
}
