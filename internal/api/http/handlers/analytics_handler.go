package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/manyabajaj09/audience-assist/internal/api/dto"
	"github.com/manyabajaj09/audience-assist/internal/service"
)

// AnalyticsHandler serves the read-side aggregates.
type AnalyticsHandler struct {
	service       *service.AnalyticsService
	timelineLimit int
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService, timelineLimit int) *AnalyticsHandler {
	return &AnalyticsHandler{service: analyticsService, timelineLimit: timelineLimit}
}

// Overview GET /api/analytics/overview.
func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.service.GetOverview(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOverviewResponse(overview)})
}

// MessagesByTag GET /api/analytics/messages-by-tag.
func (h *AnalyticsHandler) MessagesByTag(c *fiber.Ctx) error {
	buckets, err := h.service.MessagesByTag(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.TagCountResponse, 0, len(buckets))
	for _, bucket := range buckets {
		items = append(items, dto.TagCountResponse{Tag: bucket.Key, Count: bucket.Count})
	}
	return c.JSON(fiber.Map{"data": items})
}

// MessagesByChannel GET /api/analytics/messages-by-channel.
func (h *AnalyticsHandler) MessagesByChannel(c *fiber.Ctx) error {
	buckets, err := h.service.MessagesByChannel(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.ChannelCountResponse, 0, len(buckets))
	for _, bucket := range buckets {
		items = append(items, dto.ChannelCountResponse{Channel: bucket.Key, Count: bucket.Count})
	}
	return c.JSON(fiber.Map{"data": items})
}

// MessagesByPriority GET /api/analytics/messages-by-priority.
func (h *AnalyticsHandler) MessagesByPriority(c *fiber.Ctx) error {
	buckets, err := h.service.MessagesByPriority(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.PriorityCountResponse, 0, len(buckets))
	for _, bucket := range buckets {
		items = append(items, dto.PriorityCountResponse{Priority: bucket.Priority, Count: bucket.Count})
	}
	return c.JSON(fiber.Map{"data": items})
}

// SentimentDistribution GET /api/analytics/sentiment-distribution.
func (h *AnalyticsHandler) SentimentDistribution(c *fiber.Ctx) error {
	buckets, err := h.service.SentimentDistribution(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.SentimentCountResponse, 0, len(buckets))
	for _, bucket := range buckets {
		items = append(items, dto.SentimentCountResponse{Sentiment: bucket.Key, Count: bucket.Count})
	}
	return c.JSON(fiber.Map{"data": items})
}

// TicketStatus GET /api/analytics/ticket-status.
func (h *AnalyticsHandler) TicketStatus(c *fiber.Ctx) error {
	buckets, err := h.service.TicketStatusDistribution(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.StatusCountResponse, 0, len(buckets))
	for _, bucket := range buckets {
		items = append(items, dto.StatusCountResponse{Status: bucket.Key, Count: bucket.Count})
	}
	return c.JSON(fiber.Map{"data": items})
}

// ResponseTimes GET /api/analytics/response-times.
func (h *AnalyticsHandler) ResponseTimes(c *fiber.Ctx) error {
	result, err := h.service.GetResponseTimes(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewResponseTimesResponse(result)})
}

// Timeline GET /api/analytics/timeline.
func (h *AnalyticsHandler) Timeline(c *fiber.Ctx) error {
	limit := h.timelineLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	timeline, err := h.service.GetTimeline(c.UserContext(), limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTimelineResponse(timeline)})
}
