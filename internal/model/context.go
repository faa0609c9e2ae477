package model

// Context is the rolling state of one chat session. It is owned and mutated
// exclusively by the conversation manager; callers only ever see copies.
type Context struct {
	Entities        map[EntityType]Entity `json:"entities"`
	LastCategory    string                `json:"lastCategory,omitempty"`
	LastTimeframe   string                `json:"lastTimeframe,omitempty"`
	PreviousIntents []string              `json:"previousIntents"`
	Turn            int                   `json:"conversationTurn"`
}
