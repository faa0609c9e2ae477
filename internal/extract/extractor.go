// Package extract pulls structured entities out of free-form query text.
//
// Extraction is a pure function of the input text: every matcher in the
// catalog runs against the whole text and every match is collected, so a
// single sentence can yield zero, one or many entities per type. Matches
// whose payload cannot be normalized (a malformed numeral, a time
// expression with no concrete resolution) contribute nothing.
package extract

import (
	"strings"
	"time"

	"github.com/paisa-ai/paisa/internal/catalog"
	"github.com/paisa-ai/paisa/internal/model"
)

// Extractor scans text with the catalog's entity matchers.
type Extractor struct {
	now   func() time.Time
	rules []catalog.EntityRule
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithNow overrides the clock used to resolve relative time expressions.
func WithNow(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// New creates an extractor over the given catalog's entity rules.
func New(cat *catalog.Catalog, opts ...Option) *Extractor {
	e := &Extractor{
		rules: cat.Entities,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns every entity found in text, in catalog order. It never
// fails; text with no matches yields an empty result.
func (e *Extractor) Extract(text string) []model.Entity {
	if text == "" {
		return nil
	}

	var entities []model.Entity
	for _, rule := range e.rules {
		for _, re := range rule.Patterns {
			for _, match := range re.FindAllStringSubmatch(text, -1) {
				if entity, ok := e.normalize(rule, match); ok {
					entities = append(entities, entity)
				}
			}
		}
	}
	return entities
}

// normalize builds the typed entity for one regex match. The raw matched
// substring is preserved in Value; Normalized carries the parsed payload.
func (e *Extractor) normalize(rule catalog.EntityRule, match []string) (model.Entity, bool) {
	entity := model.Entity{
		Type:       rule.Type,
		Value:      match[0],
		Confidence: rule.Confidence,
	}

	switch rule.Type {
	case model.EntityAmount:
		amount, ok := parseAmount(match[0])
		if !ok {
			return model.Entity{}, false
		}
		entity.Normalized = model.Amount{Value: amount}

	case model.EntityTimePeriod:
		period, ok := resolvePeriod(match[0], e.now())
		if !ok {
			return model.Entity{}, false
		}
		entity.Normalized = period

	case model.EntityCategory, model.EntityMerchant:
		name := captured(match)
		entity.Value = name
		entity.Normalized = model.Text(strings.ToLower(name))

	case model.EntityAction:
		entity.Normalized = model.Text(strings.ToLower(match[0]))

	default:
		// No normalizer for this type; the rule contributes nothing.
		return model.Entity{}, false
	}

	return entity, true
}

// captured returns the first capture group when the pattern has one, the
// whole match otherwise.
func captured(match []string) string {
	if len(match) > 1 && match[1] != "" {
		return match[1]
	}
	return match[0]
}
