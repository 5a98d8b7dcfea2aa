package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/manyabajaj09/audience-assist/internal/api/dto"
	"github.com/manyabajaj09/audience-assist/internal/domain"
	"github.com/manyabajaj09/audience-assist/internal/service"
	apperrors "github.com/manyabajaj09/audience-assist/pkg/util"
)

// MessagesHandler manages inbox endpoints.
type MessagesHandler struct {
	ingestion *service.IngestionService
	messages  *service.MessageService
}

// NewMessagesHandler constructs handler.
func NewMessagesHandler(ingestion *service.IngestionService, messages *service.MessageService) *MessagesHandler {
	return &MessagesHandler{ingestion: ingestion, messages: messages}
}

// Ingest POST /api/messages/ingest.
func (h *MessagesHandler) Ingest(c *fiber.Ctx) error {
	var req dto.IngestMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	msg, err := h.ingestion.Ingest(c.UserContext(), service.IngestInput{
		Channel:    req.Channel,
		Sender:     req.Sender,
		Content:    req.Content,
		ExternalID: req.ExternalID,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewMessageResponse(msg)})
}

// List GET /api/messages.
func (h *MessagesHandler) List(c *fiber.Ctx) error {
	filter := service.MessageListFilter{}
	if tag := c.Query("tag"); tag != "" {
		parsed := domain.MessageTag(tag)
		filter.Tag = &parsed
	}
	if priority := c.Query("priority"); priority != "" {
		parsed, err := strconv.Atoi(priority)
		if err != nil {
			return apperrors.NewValidationError("priority must be a number", nil)
		}
		filter.Priority = &parsed
	}

	messages, err := h.messages.ListMessages(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, dto.NewMessageResponse(&messages[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /api/messages/:id.
func (h *MessagesHandler) Get(c *fiber.Ctx) error {
	msg, err := h.messages.GetMessage(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMessageResponse(msg)})
}

// SuggestReply POST /api/messages/suggest-reply.
func (h *MessagesHandler) SuggestReply(c *fiber.Ctx) error {
	var req dto.SuggestReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	reply, err := h.messages.SuggestReply(c.UserContext(), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SuggestReplyResponse{Reply: reply}})
}
