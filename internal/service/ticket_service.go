package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/manyabajaj09/audience-assist/internal/domain"
	"github.com/manyabajaj09/audience-assist/internal/events"
	"github.com/manyabajaj09/audience-assist/internal/repository"
	apperrors "github.com/manyabajaj09/audience-assist/pkg/util"
)

const (
	defaultTitleLimit    = 120
	defaultTicketTitle   = "Ticket"
	ticketListLimit      = 200
	activityHistoryLimit = 100
)

// TicketService validates and applies ticket state transitions, writing
// one audit entry per successful mutation. All transitions between the
// three statuses are allowed; there is no forward-only ordering.
type TicketService struct {
	tickets    repository.TicketRepository
	messages   repository.MessageRepository
	users      repository.UserRepository
	activity   repository.ActivityLogRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles repositories for the ticket service.
type TicketDependencies struct {
	TicketRepo   repository.TicketRepository
	MessageRepo  repository.MessageRepository
	UserRepo     repository.UserRepository
	ActivityRepo repository.ActivityLogRepository
	Dispatcher   events.Dispatcher
}

// TicketUpdateInput is an explicit partial update: a field is applied only
// when its presence flag (or pointer) says it was supplied. SetAssignee
// distinguishes "assignee: null" (unassign) from an absent field.
type TicketUpdateInput struct {
	SetAssignee bool
	Assignee    *string
	Status      *domain.TicketStatus
}

// TicketDetail is a ticket with its references resolved for read APIs.
// Message or Assignee may be nil when the referenced document is gone;
// readers tolerate such partial states.
type TicketDetail struct {
	Ticket   domain.Ticket
	Message  *domain.Message
	Assignee *domain.User
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		messages:   deps.MessageRepo,
		users:      deps.UserRepo,
		activity:   deps.ActivityRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicket opens a ticket for an existing message. The title defaults
// to the leading part of the message content.
func (s *TicketService) CreateTicket(ctx context.Context, messageID string, title *string) (*domain.Ticket, error) {
	if messageID == "" {
		return nil, apperrors.NewValidationError("messageId required", nil)
	}
	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("message", map[string]any{"message_id": messageID})
		}
		return nil, apperrors.NewStorageError(err)
	}

	ticket := &domain.Ticket{
		MessageID: msg.ID,
		Status:    domain.TicketStatusOpen,
	}
	if title != nil && *title != "" {
		ticket.Title = *title
	} else if msg.Content != "" {
		ticket.Title = truncate(msg.Content, defaultTitleLimit)
	} else {
		ticket.Title = defaultTicketTitle
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if err := s.audit(ctx, ticket.ID, nil, domain.ActionTicketCreated, map[string]any{"messageId": msg.ID}); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventTicketCreated,
		TicketID:  ticket.ID,
		MessageID: msg.ID,
		Payload: events.TicketCreatedPayload{
			MessageID: msg.ID,
			Title:     ticket.Title,
		},
	})
	return ticket, nil
}

// UpdateTicket applies the supplied fields. The audit entry carries
// exactly the changed fields; its acting user mirrors a newly supplied
// assignee, which conflates actor with change but matches the upstream
// contract. A call with no fields still refreshes updatedAt and writes an
// entry with an empty payload.
func (s *TicketService) UpdateTicket(ctx context.Context, id string, input TicketUpdateInput) (*domain.Ticket, error) {
	ticket, err := s.getTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil && !domain.ValidTicketStatus(*input.Status) {
		return nil, apperrors.NewValidationError("invalid status value", map[string]any{"status": string(*input.Status)})
	}

	changes := map[string]any{}
	if input.SetAssignee {
		ticket.AssigneeID = input.Assignee
		changes["assignee"] = ptrValue(input.Assignee)
	}
	if input.Status != nil {
		ticket.Status = *input.Status
		changes["status"] = string(*input.Status)
	}

	ticket.UpdatedAt = time.Now()
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	var actor *string
	if input.SetAssignee && input.Assignee != nil {
		actor = input.Assignee
	}
	if err := s.audit(ctx, ticket.ID, actor, domain.ActionTicketUpdated, changes); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketUpdated,
		TicketID: ticket.ID,
		UserID:   actor,
		Payload:  events.TicketUpdatedPayload{Changes: changes},
	})
	return ticket, nil
}

// AssignTicket sets the assignee unconditionally, nil meaning unassign.
func (s *TicketService) AssignTicket(ctx context.Context, id string, assignee *string) (*domain.Ticket, error) {
	ticket, err := s.getTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	ticket.AssigneeID = assignee
	ticket.UpdatedAt = time.Now()
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if err := s.audit(ctx, ticket.ID, assignee, domain.ActionAssigned, map[string]any{"assignee": ptrValue(assignee)}); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: ticket.ID,
		UserID:   assignee,
		Payload:  events.TicketAssignedPayload{AssigneeID: assignee},
	})
	return ticket, nil
}

// SetStatus moves the ticket to the given status.
func (s *TicketService) SetStatus(ctx context.Context, id string, status domain.TicketStatus, user *string) (*domain.Ticket, error) {
	if !domain.ValidTicketStatus(status) {
		return nil, apperrors.NewValidationError("invalid status value", map[string]any{"status": string(status)})
	}
	ticket, err := s.getTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := ticket.Status
	ticket.Status = status
	ticket.UpdatedAt = time.Now()
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if err := s.audit(ctx, ticket.ID, user, domain.ActionStatusChanged, map[string]any{"status": string(status)}); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		UserID:   user,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: ticket.Status,
		},
	})
	return ticket, nil
}

// CloseTicket resolves the ticket, logging the dedicated "closed" action
// with an empty payload instead of a status change.
func (s *TicketService) CloseTicket(ctx context.Context, id string, user *string) (*domain.Ticket, error) {
	ticket, err := s.getTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := ticket.Status
	ticket.Status = domain.TicketStatusResolved
	ticket.UpdatedAt = time.Now()
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if err := s.audit(ctx, ticket.ID, user, domain.ActionClosed, map[string]any{}); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		UserID:   user,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: ticket.Status,
		},
	})
	return ticket, nil
}

// GetTicket returns the ticket with its message and assignee resolved.
func (s *TicketService) GetTicket(ctx context.Context, id string) (*TicketDetail, error) {
	ticket, err := s.getTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := s.resolve(ctx, *ticket)
	return &detail, nil
}

// ListTickets returns up to 200 newest tickets, optionally filtered by
// status, with message and assignee resolved.
func (s *TicketService) ListTickets(ctx context.Context, status *domain.TicketStatus) ([]TicketDetail, error) {
	if status != nil && !domain.ValidTicketStatus(*status) {
		return nil, apperrors.NewValidationError("invalid status value", map[string]any{"status": string(*status)})
	}
	tickets, err := s.tickets.List(ctx, repository.TicketFilter{Status: status, Limit: ticketListLimit})
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	details := make([]TicketDetail, 0, len(tickets))
	for _, ticket := range tickets {
		details = append(details, s.resolve(ctx, ticket))
	}
	return details, nil
}

// ListActivity returns the audit trail for a ticket, newest first.
func (s *TicketService) ListActivity(ctx context.Context, ticketID string) ([]domain.ActivityLogEntry, error) {
	if _, err := s.getTicket(ctx, ticketID); err != nil {
		return nil, err
	}
	entries, err := s.activity.ListByTicket(ctx, ticketID, activityHistoryLimit)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return entries, nil
}

func (s *TicketService) getTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": id})
		}
		return nil, apperrors.NewStorageError(err)
	}
	return ticket, nil
}

// resolve attaches the source message and assignee; missing references
// stay nil rather than failing the read.
func (s *TicketService) resolve(ctx context.Context, ticket domain.Ticket) TicketDetail {
	detail := TicketDetail{Ticket: ticket}
	if msg, err := s.messages.GetByID(ctx, ticket.MessageID); err == nil {
		detail.Message = msg
	}
	if ticket.AssigneeID != nil {
		if user, err := s.users.GetByID(ctx, *ticket.AssigneeID); err == nil {
			detail.Assignee = user
		}
	}
	return detail
}

func (s *TicketService) audit(ctx context.Context, ticketID string, user *string, action domain.ActivityAction, payload map[string]any) error {
	entry := &domain.ActivityLogEntry{
		TicketID: ticketID,
		UserID:   user,
		Action:   action,
		Payload:  payload,
	}
	if err := s.activity.Append(ctx, entry); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func ptrValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
