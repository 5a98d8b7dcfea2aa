package events

import (
	"time"

	"github.com/manyabajaj09/audience-assist/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventMessageIngested     EventType = "message_ingested"
	EventTicketCreated       EventType = "ticket_created"
	EventTicketEscalated     EventType = "ticket_escalated"
	EventTicketUpdated       EventType = "ticket_updated"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketAssigned      EventType = "ticket_assigned"
)

// Event represents a domain event emitted by services. UserID is nil for
// system-initiated events such as automatic escalation.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id,omitempty"`
	MessageID string      `json:"message_id,omitempty"`
	UserID    *string     `json:"user_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// MessageIngestedPayload payload.
type MessageIngestedPayload struct {
	Channel   string                  `json:"channel"`
	Sender    string                  `json:"sender"`
	Tag       domain.MessageTag       `json:"tag"`
	Sentiment domain.MessageSentiment `json:"sentiment"`
	Priority  int                     `json:"priority"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	MessageID string `json:"message_id"`
	Title     string `json:"title"`
}

// TicketEscalatedPayload payload.
type TicketEscalatedPayload struct {
	MessageID string `json:"message_id"`
	Priority  int    `json:"priority"`
	Title     string `json:"title"`
}

// TicketUpdatedPayload payload.
type TicketUpdatedPayload struct {
	Changes map[string]any `json:"changes"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	AssigneeID *string `json:"assignee_id,omitempty"`
}
