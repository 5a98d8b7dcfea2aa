package dto

import (
	"encoding/json"
	"time"

	"github.com/manyabajaj09/audience-assist/internal/domain"
	"github.com/manyabajaj09/audience-assist/internal/service"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	MessageID string  `json:"messageId"`
	Title     *string `json:"title"`
}

// UpdateTicketRequest is a partial update. AssigneeSet records whether the
// assignee key was present at all, so "assignee": null (unassign) can be
// told apart from an absent field.
type UpdateTicketRequest struct {
	Assignee    *string
	AssigneeSet bool
	Status      *string
}

// UnmarshalJSON tracks field presence alongside values.
func (r *UpdateTicketRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Assignee *string `json:"assignee"`
		Status   *string `json:"status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, r.AssigneeSet = keys["assignee"]
	r.Assignee = raw.Assignee
	r.Status = raw.Status
	return nil
}

// AssignTicketRequest payload; a null assignee unassigns.
type AssignTicketRequest struct {
	Assignee *string `json:"assignee"`
}

// SetStatusRequest payload.
type SetStatusRequest struct {
	Status string  `json:"status"`
	User   *string `json:"user"`
}

// CloseTicketRequest payload.
type CloseTicketRequest struct {
	User *string `json:"user"`
}

// TicketResponse serializes a ticket without resolved references.
type TicketResponse struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	MessageID string              `json:"messageId"`
	Assignee  *string             `json:"assignee"`
	Status    domain.TicketStatus `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// TicketDetailResponse serializes a ticket with its message and assignee
// resolved; either may be null when the reference no longer resolves.
type TicketDetailResponse struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Message   *MessageResponse    `json:"message"`
	Assignee  *UserResponse       `json:"assignee"`
	Status    domain.TicketStatus `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// ActivityEntryResponse serializes one audit trail entry.
type ActivityEntryResponse struct {
	ID      string                `json:"id"`
	Ticket  string                `json:"ticket"`
	User    *string               `json:"user"`
	Action  domain.ActivityAction `json:"action"`
	Payload map[string]any        `json:"payload"`
	TS      time.Time             `json:"ts"`
}

// NewTicketResponse maps a domain ticket.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:        ticket.ID,
		Title:     ticket.Title,
		MessageID: ticket.MessageID,
		Assignee:  ticket.AssigneeID,
		Status:    ticket.Status,
		CreatedAt: ticket.CreatedAt,
		UpdatedAt: ticket.UpdatedAt,
	}
}

// NewTicketDetailResponse maps a resolved ticket.
func NewTicketDetailResponse(detail *service.TicketDetail) TicketDetailResponse {
	resp := TicketDetailResponse{
		ID:        detail.Ticket.ID,
		Title:     detail.Ticket.Title,
		Status:    detail.Ticket.Status,
		CreatedAt: detail.Ticket.CreatedAt,
		UpdatedAt: detail.Ticket.UpdatedAt,
	}
	if detail.Message != nil {
		msg := NewMessageResponse(detail.Message)
		resp.Message = &msg
	}
	if detail.Assignee != nil {
		user := NewUserResponse(detail.Assignee)
		resp.Assignee = &user
	}
	return resp
}

// NewActivityEntryResponse maps an audit entry.
func NewActivityEntryResponse(entry *domain.ActivityLogEntry) ActivityEntryResponse {
	return ActivityEntryResponse{
		ID:      entry.ID,
		Ticket:  entry.TicketID,
		User:    entry.UserID,
		Action:  entry.Action,
		Payload: entry.Payload,
		TS:      entry.TS,
	}
}
