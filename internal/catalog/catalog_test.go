package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paisa-ai/paisa/internal/common"
	"github.com/paisa-ai/paisa/internal/model"
)

func TestLoad(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	assert.Len(t, cat.Intents, 18)
	assert.Equal(t, model.IntentSpendingQuery, cat.Intents[0].Name, "catalog order is the tie-break and spending_query must come first")

	for _, intent := range cat.Intents {
		assert.NotEmpty(t, intent.Patterns, "intent %s has no patterns", intent.Name)
		assert.NotEmpty(t, intent.Examples, "intent %s has no examples", intent.Name)
	}

	types := make(map[model.EntityType]bool)
	for _, rule := range cat.Entities {
		types[rule.Type] = true
		assert.Greater(t, rule.Confidence, 0.0)
		assert.LessOrEqual(t, rule.Confidence, 1.0)
	}
	for _, want := range []model.EntityType{
		model.EntityAmount,
		model.EntityCategory,
		model.EntityTimePeriod,
		model.EntityMerchant,
		model.EntityAction,
	} {
		assert.True(t, types[want], "missing entity rule for %s", want)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yaml")
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestFollowUps(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	t.Run("intent with its own suggestions", func(t *testing.T) {
		followUps := cat.FollowUps(model.IntentSpendingQuery)
		assert.Equal(t, []string{
			"How can I reduce this spending?",
			"Compare to last month",
			"Show me the breakdown by merchant",
		}, followUps)
	})

	t.Run("intent without suggestions falls back to defaults", func(t *testing.T) {
		assert.Equal(t, cat.DefaultFollowUps, cat.FollowUps(model.IntentAnomalyDetection))
	})

	t.Run("unknown intent falls back to defaults", func(t *testing.T) {
		assert.Equal(t, cat.DefaultFollowUps, cat.FollowUps("no_such_intent"))
	})
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "empty document",
			data: "",
		},
		{
			name: "intent with empty name",
			data: `
intents:
  - name: ""
    patterns: ['x']
`,
		},
		{
			name: "duplicate intent",
			data: `
intents:
  - name: spending_query
    patterns: ['spent']
  - name: spending_query
    patterns: ['spend']
`,
		},
		{
			name: "fallback used as trigger intent",
			data: `
intents:
  - name: general_query
    patterns: ['anything']
`,
		},
		{
			name: "intent without patterns",
			data: `
intents:
  - name: spending_query
`,
		},
		{
			name: "invalid regex",
			data: `
intents:
  - name: spending_query
    patterns: ['(']
`,
		},
		{
			name: "unknown entity type",
			data: `
intents:
  - name: spending_query
    patterns: ['spent']
entities:
  - type: emoji
    confidence: 0.5
    patterns: ['x']
`,
		},
		{
			name: "entity confidence out of range",
			data: `
intents:
  - name: spending_query
    patterns: ['spent']
entities:
  - type: amount
    confidence: 1.5
    patterns: ['x']
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidCatalog)
		})
	}
}

func TestIntentLookup(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	intent, err := cat.Intent(model.IntentBudgetStatus)
	require.NoError(t, err)
	assert.Equal(t, model.IntentBudgetStatus, intent.Name)

	_, err = cat.Intent("no_such_intent")
	assert.ErrorIs(t, err, common.ErrUnknownIntent)
}
