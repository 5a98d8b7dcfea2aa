package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
)

// Ticket is a trackable unit of work created from exactly one Message.
// Any status is reachable from any other; there is no forward-only
// ordering. UpdatedAt is refreshed on every mutation.
type Ticket struct {
	ID         string
	Title      string
	MessageID  string
	AssigneeID *string
	Status     TicketStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidTicketStatus reports whether the value is one of the three
// accepted statuses.
func ValidTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved:
		return true
	}
	return false
}
