// Package model defines the core domain models used throughout the engine.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntityType identifies the kind of fact an entity carries.
type EntityType string

// Entity type constants.
const (
	EntityAmount     EntityType = "amount"
	EntityDate       EntityType = "date"
	EntityCategory   EntityType = "category"
	EntityMerchant   EntityType = "merchant"
	EntityTimePeriod EntityType = "time_period"
	EntityComparison EntityType = "comparison"
	EntityAction     EntityType = "action"
)

// Normalized is the parsed payload of an entity, keyed by the entity type:
// amounts carry Amount, time periods carry Period, everything else carries
// Text. Consumers switch on the concrete type rather than casting.
type Normalized interface {
	isNormalized()
}

// Amount is a monetary value in base currency units (rupees).
type Amount struct {
	Value decimal.Decimal `json:"value"`
}

// Period is a concrete date interval resolved from a relative expression.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// Text is a lowercased category, merchant or action word.
type Text string

func (Amount) isNormalized() {}
func (Period) isNormalized() {}
func (Text) isNormalized()   {}

// Entity is a single structured fact extracted from query text.
// Entities are immutable once created; a query can yield duplicates
// when multiple matchers hit the same span.
type Entity struct {
	Normalized Normalized `json:"normalized"`
	Type       EntityType `json:"type"`
	Value      string     `json:"value"` // raw matched substring, original casing
	Confidence float64    `json:"confidence"`
}

// AmountValue returns the parsed amount when the entity carries one.
func (e Entity) AmountValue() (decimal.Decimal, bool) {
	a, ok := e.Normalized.(Amount)
	if !ok {
		return decimal.Decimal{}, false
	}
	return a.Value, true
}

// PeriodValue returns the resolved date interval when the entity carries one.
func (e Entity) PeriodValue() (Period, bool) {
	p, ok := e.Normalized.(Period)
	return p, ok
}

// TextValue returns the normalized string when the entity carries one.
func (e Entity) TextValue() (string, bool) {
	t, ok := e.Normalized.(Text)
	return string(t), ok
}
