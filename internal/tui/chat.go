// Package tui implements the interactive chat session.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paisa-ai/paisa/internal/cli"
	"github.com/paisa-ai/paisa/internal/conversation"
)

// resetCommand restarts the conversation without leaving the session.
const resetCommand = "/reset"

type exchange struct {
	query    string
	rendered string
}

// Model holds the chat session state. One conversation manager lives for
// the whole session; /reset clears it in place.
type Model struct {
	engine   *conversation.Engine
	manager  *conversation.Manager
	input    textinput.Model
	history  []exchange
	keymap   KeyMap
	width    int
	quitting bool
}

// New creates a chat model over the given engine.
func New(engine *conversation.Engine) Model {
	input := textinput.New()
	input.Placeholder = "Ask about your money, e.g. \"how much did I spend on food last week\""
	input.Prompt = cli.BoldStyle.Render("> ")
	input.Focus()

	return Model{
		engine:  engine,
		manager: conversation.NewManager(),
		input:   input,
		keymap:  DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Submit):
			return m.submit(), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() Model {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		return m
	}
	m.input.Reset()

	if query == resetCommand {
		m.manager.Reset()
		m.history = append(m.history, exchange{
			query:    query,
			rendered: cli.InfoStyle.Render("Conversation reset.") + "\n",
		})
		return m
	}

	resp := m.engine.Process(query, m.manager)
	m.history = append(m.history, exchange{
		query:    query,
		rendered: cli.FormatResponse(resp),
	})
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render("paisa chat") + "\n")
	b.WriteString(cli.SubtleStyle.Render("type /reset to start over, esc to quit") + "\n\n")

	for _, ex := range m.history {
		b.WriteString(cli.BoldStyle.Render("you: ") + ex.query + "\n")
		b.WriteString(ex.rendered)
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive chat session and blocks until it exits.
func Run(engine *conversation.Engine) error {
	program := tea.NewProgram(New(engine))
	_, err := program.Run()
	return err
}
