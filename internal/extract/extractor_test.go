package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paisa-ai/paisa/internal/catalog"
	"github.com/paisa-ai/paisa/internal/model"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return New(cat, WithNow(func() time.Time { return anchor }))
}

func entitiesOfType(entities []model.Entity, typ model.EntityType) []model.Entity {
	var out []model.Entity
	for _, e := range entities {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func TestExtract_SpendingQuery(t *testing.T) {
	extractor := newTestExtractor(t)

	entities := extractor.Extract("how much did I spend on food last week")

	categories := entitiesOfType(entities, model.EntityCategory)
	require.Len(t, categories, 2, "both category matchers hit; duplicates are allowed")
	for _, e := range categories {
		assert.Equal(t, "food", e.Value)
		normalized, ok := e.TextValue()
		require.True(t, ok)
		assert.Equal(t, "food", normalized)
		assert.InDelta(t, 0.9, e.Confidence, 1e-9)
	}

	periods := entitiesOfType(entities, model.EntityTimePeriod)
	require.Len(t, periods, 1)
	period, ok := periods[0].PeriodValue()
	require.True(t, ok)
	assert.Equal(t, "last week", period.Label)
	assert.InDelta(t, 0.92, periods[0].Confidence, 1e-9)

	assert.Empty(t, entitiesOfType(entities, model.EntityAmount))
	assert.Len(t, entities, 3)
}

func TestExtract_AmountMerchantAndTime(t *testing.T) {
	extractor := newTestExtractor(t)

	entities := extractor.Extract("I spent ₹1,500 at Zomato yesterday")

	amounts := entitiesOfType(entities, model.EntityAmount)
	require.Len(t, amounts, 1)
	assert.Equal(t, "₹1,500", amounts[0].Value)
	amount, ok := amounts[0].AmountValue()
	require.True(t, ok)
	assert.Equal(t, "1500", amount.String())
	assert.InDelta(t, 0.95, amounts[0].Confidence, 1e-9)

	merchants := entitiesOfType(entities, model.EntityMerchant)
	require.Len(t, merchants, 2, "positional and brand-list matchers both hit")
	for _, e := range merchants {
		assert.Equal(t, "Zomato", e.Value, "raw value keeps original casing")
		normalized, ok := e.TextValue()
		require.True(t, ok)
		assert.Equal(t, "zomato", normalized)
	}

	periods := entitiesOfType(entities, model.EntityTimePeriod)
	require.Len(t, periods, 1)
	period, ok := periods[0].PeriodValue()
	require.True(t, ok)
	assert.Equal(t, "yesterday", period.Label)
}

func TestExtract_Actions(t *testing.T) {
	extractor := newTestExtractor(t)

	entities := extractor.Extract("tell me about rockets")

	require.Len(t, entities, 1)
	assert.Equal(t, model.EntityAction, entities[0].Type)
	normalized, ok := entities[0].TextValue()
	require.True(t, ok)
	assert.Equal(t, "tell", normalized)
	assert.InDelta(t, 0.88, entities[0].Confidence, 1e-9)
}

func TestExtract_ZeroAmountDropped(t *testing.T) {
	extractor := newTestExtractor(t)

	entities := extractor.Extract("I spent ₹0 on food")

	assert.Empty(t, entitiesOfType(entities, model.EntityAmount),
		"an unusable amount is dropped, never surfaced as zero")
	assert.Len(t, entitiesOfType(entities, model.EntityCategory), 2)
}

func TestExtract_NoMatches(t *testing.T) {
	extractor := newTestExtractor(t)

	assert.Empty(t, extractor.Extract(""))
	assert.Empty(t, extractor.Extract("qwerty zxcvb"))
}
