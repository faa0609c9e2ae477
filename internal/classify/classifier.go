// Package classify scores query text against the intent trigger catalog.
//
// The classifier is deliberately precision-first and explainable: every
// decision traces back to a specific matcher in the catalog rather than a
// statistical model. The catalog is small and hand-curated, and an
// unexplainable misclassification in a finance assistant costs more than a
// fallback answer.
package classify

import (
	"log/slog"
	"math"

	"github.com/paisa-ai/paisa/internal/catalog"
	"github.com/paisa-ai/paisa/internal/extract"
	"github.com/paisa-ai/paisa/internal/model"
)

const (
	// fallbackConfidence is always below any pattern-matched score, so the
	// fallback never masks a real match.
	fallbackConfidence = 0.3

	baseConfidence       = 0.6
	perMatchBoost        = 0.15
	maxPatternConfidence = 0.95

	// Entities corroborate an intent but never override it.
	entityBoost   = 0.1
	maxConfidence = 0.98
)

// Classifier picks the best-scoring intent for a query.
type Classifier struct {
	catalog   *catalog.Catalog
	extractor *extract.Extractor
}

// New creates a classifier over the given catalog and entity extractor.
func New(cat *catalog.Catalog, extractor *extract.Extractor) *Classifier {
	return &Classifier{
		catalog:   cat,
		extractor: extractor,
	}
}

// Classify scores text against every intent in the catalog and returns the
// winner with its extracted entities attached. Text matching no trigger at
// all falls back to general_query at a fixed low confidence. Classify never
// fails; an empty string is just a general_query with no entities.
func (c *Classifier) Classify(text string) model.Intent {
	bestName := model.IntentGeneralQuery
	bestConfidence := fallbackConfidence

	for _, in := range c.catalog.Intents {
		matches := 0
		for _, re := range in.Patterns {
			if re.MatchString(text) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}

		confidence := math.Min(maxPatternConfidence, baseConfidence+perMatchBoost*float64(matches))
		// Strict comparison keeps the first-seen entry on ties; catalog
		// order is the documented tie-break.
		if confidence > bestConfidence {
			bestName = in.Name
			bestConfidence = confidence
		}
	}

	entities := c.extractor.Extract(text)
	if len(entities) > 0 {
		bestConfidence = math.Min(maxConfidence, bestConfidence+entityBoost)
	}

	slog.Debug("classified query",
		"intent", bestName,
		"confidence", bestConfidence,
		"entities", len(entities))

	return model.Intent{
		Name:       bestName,
		Confidence: bestConfidence,
		Entities:   entities,
	}
}
