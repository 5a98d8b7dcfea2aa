package service

import (
	"context"
	"math"
	"time"

	"github.com/manyabajaj09/audience-assist/internal/domain"
	"github.com/manyabajaj09/audience-assist/internal/repository"
	apperrors "github.com/manyabajaj09/audience-assist/pkg/util"
)

const (
	defaultTimelineLimit  = 20
	responseTimeSourceCap = 100
	responseTimeSampleCap = 10
)

// AnalyticsService computes read-only aggregates over messages and
// tickets on demand. It never mutates state and tolerates an empty store
// by returning zero counts and empty sequences.
type AnalyticsService struct {
	messages repository.MessageRepository
	tickets  repository.TicketRepository
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(messages repository.MessageRepository, tickets repository.TicketRepository) *AnalyticsService {
	return &AnalyticsService{messages: messages, tickets: tickets}
}

// Overview holds the headline counts.
type Overview struct {
	TotalMessages     int64
	TotalTickets      int64
	OpenTickets       int64
	InProgressTickets int64
	ResolvedTickets   int64
}

// ResponseTimeSample is one resolved ticket's time-to-resolution.
type ResponseTimeSample struct {
	TicketID          string
	ResponseTimeHours float64
}

// ResponseTimes aggregates resolution latency over resolved tickets.
type ResponseTimes struct {
	AverageResponseTimeHours float64
	Samples                  []ResponseTimeSample
}

// TimelineMessage is a message projected for the activity timeline.
type TimelineMessage struct {
	ID         string
	Channel    string
	Tag        domain.MessageTag
	Priority   int
	ReceivedAt time.Time
}

// TimelineTicket is a ticket projected for the activity timeline.
type TimelineTicket struct {
	ID        string
	Status    domain.TicketStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Timeline pairs the most recent messages and tickets.
type Timeline struct {
	RecentMessages []TimelineMessage
	RecentTickets  []TimelineTicket
}

// GetOverview returns total and per-status counts.
func (s *AnalyticsService) GetOverview(ctx context.Context) (*Overview, error) {
	totalMessages, err := s.messages.Count(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	totalTickets, err := s.tickets.Count(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	byStatus, err := s.tickets.CountByStatus(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	overview := &Overview{TotalMessages: totalMessages, TotalTickets: totalTickets}
	for _, bucket := range byStatus {
		switch domain.TicketStatus(bucket.Key) {
		case domain.TicketStatusOpen:
			overview.OpenTickets = bucket.Count
		case domain.TicketStatusInProgress:
			overview.InProgressTickets = bucket.Count
		case domain.TicketStatusResolved:
			overview.ResolvedTickets = bucket.Count
		}
	}
	return overview, nil
}

// MessagesByTag returns the tag distribution, most frequent first.
func (s *AnalyticsService) MessagesByTag(ctx context.Context) ([]repository.GroupCount, error) {
	return s.groups(s.messages.CountByTag)(ctx)
}

// MessagesByChannel returns the channel distribution, most frequent first.
func (s *AnalyticsService) MessagesByChannel(ctx context.Context) ([]repository.GroupCount, error) {
	return s.groups(s.messages.CountByChannel)(ctx)
}

// MessagesByPriority returns the priority distribution, ascending.
func (s *AnalyticsService) MessagesByPriority(ctx context.Context) ([]repository.PriorityCount, error) {
	buckets, err := s.messages.CountByPriority(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if buckets == nil {
		buckets = []repository.PriorityCount{}
	}
	return buckets, nil
}

// SentimentDistribution returns the sentiment counts.
func (s *AnalyticsService) SentimentDistribution(ctx context.Context) ([]repository.GroupCount, error) {
	return s.groups(s.messages.CountBySentiment)(ctx)
}

// TicketStatusDistribution returns counts per ticket status.
func (s *AnalyticsService) TicketStatusDistribution(ctx context.Context) ([]repository.GroupCount, error) {
	return s.groups(s.tickets.CountByStatus)(ctx)
}

// GetResponseTimes averages time-to-resolution in hours over resolved
// tickets whose source message still resolves. Tickets without a
// resolvable message are skipped, not errors.
func (s *AnalyticsService) GetResponseTimes(ctx context.Context) (*ResponseTimes, error) {
	resolved, err := s.tickets.ListResolved(ctx, responseTimeSourceCap)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	samples := make([]ResponseTimeSample, 0, len(resolved))
	var sum float64
	for _, ticket := range resolved {
		msg, err := s.messages.GetByID(ctx, ticket.MessageID)
		if err != nil || msg == nil {
			continue
		}
		if msg.ReceivedAt.IsZero() || ticket.UpdatedAt.IsZero() {
			continue
		}
		hours := roundTenth(ticket.UpdatedAt.Sub(msg.ReceivedAt).Hours())
		sum += hours
		samples = append(samples, ResponseTimeSample{TicketID: ticket.ID, ResponseTimeHours: hours})
	}

	result := &ResponseTimes{Samples: samples}
	if len(samples) > 0 {
		result.AverageResponseTimeHours = roundTenth(sum / float64(len(samples)))
	}
	if len(result.Samples) > responseTimeSampleCap {
		result.Samples = result.Samples[:responseTimeSampleCap]
	}
	return result, nil
}

// GetTimeline returns the most recent messages and tickets, each sorted
// independently by recency.
func (s *AnalyticsService) GetTimeline(ctx context.Context, limit int) (*Timeline, error) {
	if limit <= 0 {
		limit = defaultTimelineLimit
	}

	messages, err := s.messages.List(ctx, repository.MessageFilter{Limit: limit})
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	tickets, err := s.tickets.List(ctx, repository.TicketFilter{Limit: limit})
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	timeline := &Timeline{
		RecentMessages: make([]TimelineMessage, 0, len(messages)),
		RecentTickets:  make([]TimelineTicket, 0, len(tickets)),
	}
	for _, msg := range messages {
		timeline.RecentMessages = append(timeline.RecentMessages, TimelineMessage{
			ID:         msg.ID,
			Channel:    msg.Channel,
			Tag:        msg.Tag,
			Priority:   msg.Priority,
			ReceivedAt: msg.ReceivedAt,
		})
	}
	for _, ticket := range tickets {
		timeline.RecentTickets = append(timeline.RecentTickets, TimelineTicket{
			ID:        ticket.ID,
			Status:    ticket.Status,
			CreatedAt: ticket.CreatedAt,
			UpdatedAt: ticket.UpdatedAt,
		})
	}
	return timeline, nil
}

func (s *AnalyticsService) groups(fetch func(context.Context) ([]repository.GroupCount, error)) func(context.Context) ([]repository.GroupCount, error) {
	return func(ctx context.Context) ([]repository.GroupCount, error) {
		buckets, err := fetch(ctx)
		if err != nil {
			return nil, apperrors.NewStorageError(err)
		}
		if buckets == nil {
			buckets = []repository.GroupCount{}
		}
		return buckets, nil
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
