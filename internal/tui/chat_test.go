package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paisa-ai/paisa/internal/catalog"
	"github.com/paisa-ai/paisa/internal/classify"
	"github.com/paisa-ai/paisa/internal/conversation"
	"github.com/paisa-ai/paisa/internal/extract"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	anchor := time.Date(2025, time.October, 28, 14, 30, 0, 0, time.UTC)
	extractor := extract.New(cat, extract.WithNow(func() time.Time { return anchor }))
	engine := conversation.NewEngine(cat, classify.New(cat, extractor))
	return New(engine)
}

func submit(m Model, text string) Model {
	m.input.SetValue(text)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func TestChat_SubmitRendersResponse(t *testing.T) {
	m := newTestModel(t)

	m = submit(m, "how much did I spend on food last week")

	require.Len(t, m.history, 1)
	assert.Contains(t, m.history[0].rendered, "spending_query")
	assert.Contains(t, m.View(), "how much did I spend on food last week")
}

func TestChat_EmptyInputIsIgnored(t *testing.T) {
	m := newTestModel(t)

	m = submit(m, "   ")

	assert.Empty(t, m.history)
}

func TestChat_ResetCommand(t *testing.T) {
	m := newTestModel(t)

	m = submit(m, "how much did I spend on food last week")
	m = submit(m, "/reset")
	m = submit(m, "how can I save money")

	require.Len(t, m.history, 3)
	assert.Contains(t, m.history[1].rendered, "Conversation reset.")
	assert.Contains(t, m.history[2].rendered, "optimization")
}

func TestChat_QuitKey(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, updated.(Model).quitting)
	assert.NotNil(t, cmd)
}
