package dto

import (
	"time"

	"github.com/manyabajaj09/audience-assist/internal/domain"
	"github.com/manyabajaj09/audience-assist/internal/service"
)

// OverviewResponse carries the headline counts.
type OverviewResponse struct {
	TotalMessages     int64 `json:"totalMessages"`
	TotalTickets      int64 `json:"totalTickets"`
	OpenTickets       int64 `json:"openTickets"`
	InProgressTickets int64 `json:"inProgressTickets"`
	ResolvedTickets   int64 `json:"resolvedTickets"`
}

// TagCountResponse bucket.
type TagCountResponse struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

// ChannelCountResponse bucket.
type ChannelCountResponse struct {
	Channel string `json:"channel"`
	Count   int64  `json:"count"`
}

// PriorityCountResponse bucket.
type PriorityCountResponse struct {
	Priority int   `json:"priority"`
	Count    int64 `json:"count"`
}

// SentimentCountResponse bucket.
type SentimentCountResponse struct {
	Sentiment string `json:"sentiment"`
	Count     int64  `json:"count"`
}

// StatusCountResponse bucket.
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// ResponseTimeSampleResponse is one resolved ticket's latency.
type ResponseTimeSampleResponse struct {
	TicketID          string  `json:"ticketId"`
	ResponseTimeHours float64 `json:"responseTimeHours"`
}

// ResponseTimesResponse aggregates resolution latency.
type ResponseTimesResponse struct {
	AverageResponseTimeHours float64                      `json:"averageResponseTimeHours"`
	Samples                  []ResponseTimeSampleResponse `json:"samples"`
}

// TimelineMessageResponse projection.
type TimelineMessageResponse struct {
	ID         string            `json:"id"`
	Channel    string            `json:"channel"`
	Tag        domain.MessageTag `json:"tag"`
	Priority   int               `json:"priority"`
	ReceivedAt time.Time         `json:"receivedAt"`
}

// TimelineTicketResponse projection.
type TimelineTicketResponse struct {
	ID        string              `json:"id"`
	Status    domain.TicketStatus `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// TimelineResponse pairs recent messages and tickets.
type TimelineResponse struct {
	RecentMessages []TimelineMessageResponse `json:"recentMessages"`
	RecentTickets  []TimelineTicketResponse  `json:"recentTickets"`
}

// NewOverviewResponse maps the overview aggregate.
func NewOverviewResponse(o *service.Overview) OverviewResponse {
	return OverviewResponse{
		TotalMessages:     o.TotalMessages,
		TotalTickets:      o.TotalTickets,
		OpenTickets:       o.OpenTickets,
		InProgressTickets: o.InProgressTickets,
		ResolvedTickets:   o.ResolvedTickets,
	}
}

// NewResponseTimesResponse maps the latency aggregate.
func NewResponseTimesResponse(rt *service.ResponseTimes) ResponseTimesResponse {
	samples := make([]ResponseTimeSampleResponse, 0, len(rt.Samples))
	for _, sample := range rt.Samples {
		samples = append(samples, ResponseTimeSampleResponse{
			TicketID:          sample.TicketID,
			ResponseTimeHours: sample.ResponseTimeHours,
		})
	}
	return ResponseTimesResponse{
		AverageResponseTimeHours: rt.AverageResponseTimeHours,
		Samples:                  samples,
	}
}

// NewTimelineResponse maps the timeline aggregate.
func NewTimelineResponse(t *service.Timeline) TimelineResponse {
	messages := make([]TimelineMessageResponse, 0, len(t.RecentMessages))
	for _, msg := range t.RecentMessages {
		messages = append(messages, TimelineMessageResponse{
			ID:         msg.ID,
			Channel:    msg.Channel,
			Tag:        msg.Tag,
			Priority:   msg.Priority,
			ReceivedAt: msg.ReceivedAt,
		})
	}
	tickets := make([]TimelineTicketResponse, 0, len(t.RecentTickets))
	for _, ticket := range t.RecentTickets {
		tickets = append(tickets, TimelineTicketResponse{
			ID:        ticket.ID,
			Status:    ticket.Status,
			CreatedAt: ticket.CreatedAt,
			UpdatedAt: ticket.UpdatedAt,
		})
	}
	return TimelineResponse{RecentMessages: messages, RecentTickets: tickets}
}
