package conversation

import "github.com/paisa-ai/paisa/internal/model"

// Clarification prompts, one per degraded case.
const (
	clarifyRephrase   = "I'm not sure I understood that correctly. Could you rephrase your question?"
	clarifySpending   = `Would you like to see spending for a specific category or time period? (e.g., "food last week" or "this month")`
	clarifyComparison = `What would you like to compare? (e.g., "this month vs last month" or "food vs shopping")`
)

// lowConfidenceThreshold is the score below which the engine asks the user
// to rephrase instead of answering.
const lowConfidenceThreshold = 0.5

// clarificationFor decides whether the caller should surface a question
// instead of an answer. Checks run in a fixed order and the first hit wins:
// low confidence beats a missing entity, and at most one question is ever
// returned.
func clarificationFor(intent model.Intent) (string, bool) {
	if intent.Confidence < lowConfidenceThreshold {
		return clarifyRephrase, true
	}

	if intent.Name == model.IntentSpendingQuery &&
		!intent.HasEntity(model.EntityTimePeriod) && !intent.HasEntity(model.EntityCategory) {
		return clarifySpending, true
	}

	if intent.Name == model.IntentComparison && !intent.HasEntity(model.EntityComparison) {
		return clarifyComparison, true
	}

	return "", false
}
