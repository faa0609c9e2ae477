package classify

import (
	"regexp"
	"strings"

	"github.com/paisa-ai/paisa/internal/model"
)

var partSeparator = regexp.MustCompile(`(?i)\s+(?:and|then|also|plus)\s+`)

// minPartConfidence filters out fragments that classify poorly after a
// compound query is split.
const minPartConfidence = 0.5

// ClassifyAll handles compound queries joined by "and", "then", "also" or
// "plus". Each fragment is classified on its own and low-confidence
// fragments are discarded; a query with no separators returns its single
// classification unfiltered.
func (c *Classifier) ClassifyAll(text string) []model.Intent {
	parts := partSeparator.Split(text, -1)
	if len(parts) <= 1 {
		return []model.Intent{c.Classify(text)}
	}

	var intents []model.Intent
	for _, part := range parts {
		intent := c.Classify(strings.TrimSpace(part))
		if intent.Confidence > minPartConfidence {
			intents = append(intents, intent)
		}
	}
	return intents
}
