// Package conversation carries dialogue state across turns and orchestrates
// query processing. One Manager belongs to one chat session; callers must
// serialize calls per session and Reset when the user restarts the
// conversation. Nothing here persists across sessions.
package conversation

import (
	"github.com/paisa-ai/paisa/internal/model"
)

const (
	// historyLimit bounds the intent history ring.
	historyLimit = 5

	// inferredConfidence marks context-inferred entities as guesses rather
	// than observations.
	inferredConfidence = 0.7
)

// Manager owns the rolling context of one chat session.
type Manager struct {
	ctx model.Context
}

// NewManager creates an empty session at turn zero.
func NewManager() *Manager {
	return &Manager{ctx: emptyContext()}
}

// Update folds a freshly classified intent into the session: the intent
// name joins the bounded history, the turn counter advances, and every
// entity is recorded last-write-wins per type. Must be called exactly once
// per processed query, after inference, so inference only ever sees context
// from prior turns.
func (m *Manager) Update(intent model.Intent) {
	m.ctx.Turn++

	m.ctx.PreviousIntents = append(m.ctx.PreviousIntents, intent.Name)
	if len(m.ctx.PreviousIntents) > historyLimit {
		m.ctx.PreviousIntents = m.ctx.PreviousIntents[len(m.ctx.PreviousIntents)-historyLimit:]
	}

	for _, entity := range intent.Entities {
		switch entity.Type {
		case model.EntityCategory:
			if name, ok := entity.TextValue(); ok {
				m.ctx.LastCategory = name
			}
		case model.EntityTimePeriod:
			m.ctx.LastTimeframe = entity.Value
		}
		m.ctx.Entities[entity.Type] = entity
	}
}

// InferMissingEntities back-fills a category from context when the current
// intent arrived with no entities at all. Only intents that meaningfully
// reuse a category qualify; time periods are never back-filled, so "and
// yesterday?" style follow-ups stay explicit. The session context itself is
// not touched.
func (m *Manager) InferMissingEntities(intent model.Intent) model.Intent {
	if len(intent.Entities) > 0 || m.ctx.Turn == 0 || m.ctx.LastCategory == "" {
		return intent
	}

	switch intent.Name {
	case model.IntentSpendingQuery, model.IntentOptimization:
	default:
		return intent
	}

	augmented := intent
	augmented.Entities = []model.Entity{{
		Type:       model.EntityCategory,
		Value:      m.ctx.LastCategory,
		Normalized: model.Text(m.ctx.LastCategory),
		Confidence: inferredConfidence,
	}}
	return augmented
}

// Context returns a copy of the session state. Mutating the copy never
// affects the session.
func (m *Manager) Context() model.Context {
	snapshot := m.ctx
	snapshot.PreviousIntents = append([]string(nil), m.ctx.PreviousIntents...)
	snapshot.Entities = make(map[model.EntityType]model.Entity, len(m.ctx.Entities))
	for t, e := range m.ctx.Entities {
		snapshot.Entities[t] = e
	}
	return snapshot
}

// Reset returns the session to turn zero with empty history. Idempotent.
func (m *Manager) Reset() {
	m.ctx = emptyContext()
}

func emptyContext() model.Context {
	return model.Context{
		Entities: make(map[model.EntityType]model.Entity),
	}
}
