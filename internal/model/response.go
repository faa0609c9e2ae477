package model

// Response is the engine's per-query output: the classified intent, a
// read-only snapshot of the session context, canned follow-up suggestions,
// and an optional clarification question the caller should surface instead
// of answering.
type Response struct {
	Intent                Intent   `json:"intent"`
	Context               Context  `json:"context"`
	SuggestedFollowUps    []string `json:"suggestedFollowUps"`
	ClarificationQuestion string   `json:"clarificationQuestion,omitempty"`
	RequiresClarification bool     `json:"requiresClarification"`
}
