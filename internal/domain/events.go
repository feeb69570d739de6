package domain

import "time"

// Event types
const (
	EventTypePartyCreated      = "party.created"
	EventTypeEntryCreated      = "entry.created"
	EventTypeEntryDeleted      = "entry.deleted"
	EventTypeSettlementCreated = "settlement.created"
	EventTypeSettlementUndone  = "settlement.undone"
)

// Aggregate types
const (
	AggregateTypeParty      = "party"
	AggregateTypeEntry      = "entry"
	AggregateTypeSettlement = "settlement"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}
