package domain

import "time"

// ActivityAction captures what kind of change an audit entry documents.
type ActivityAction string

const (
	ActionTicketCreated ActivityAction = "ticket_created"
	ActionTicketUpdated ActivityAction = "ticket_updated"
	ActionAssigned      ActivityAction = "assigned"
	ActionStatusChanged ActivityAction = "status_changed"
	ActionClosed        ActivityAction = "closed"
)

// ActivityLogEntry is an immutable audit trail record for one ticket
// mutation. UserID is nil for system-initiated actions. Payload holds the
// changed fields and their new values, one entry per mutating operation.
type ActivityLogEntry struct {
	ID       string
	TicketID string
	UserID   *string
	Action   ActivityAction
	Payload  map[string]any
	TS       time.Time
}
