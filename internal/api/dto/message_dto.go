package dto

import (
	"time"

	"github.com/manyabajaj09/audience-assist/internal/domain"
)

// IngestMessageRequest payload.
type IngestMessageRequest struct {
	Channel    string  `json:"channel"`
	Sender     string  `json:"sender"`
	Content    string  `json:"content"`
	ExternalID *string `json:"externalId"`
}

// SuggestReplyRequest payload.
type SuggestReplyRequest struct {
	Content string `json:"content"`
}

// SuggestReplyResponse carries a generated support reply.
type SuggestReplyResponse struct {
	Reply string `json:"reply"`
}

// MessageResponse serializes a message.
type MessageResponse struct {
	ID          string                  `json:"id"`
	Channel     string                  `json:"channel"`
	ExternalID  *string                 `json:"externalId,omitempty"`
	Sender      string                  `json:"sender"`
	Content     string                  `json:"content"`
	ReceivedAt  time.Time               `json:"receivedAt"`
	Tag         domain.MessageTag       `json:"tag"`
	Sentiment   domain.MessageSentiment `json:"sentiment"`
	Priority    int                     `json:"priority"`
	ProcessedBy *string                 `json:"processedBy,omitempty"`
}

// NewMessageResponse maps a domain message.
func NewMessageResponse(msg *domain.Message) MessageResponse {
	return MessageResponse{
		ID:          msg.ID,
		Channel:     msg.Channel,
		ExternalID:  msg.ExternalID,
		Sender:      msg.Sender,
		Content:     msg.Content,
		ReceivedAt:  msg.ReceivedAt,
		Tag:         msg.Tag,
		Sentiment:   msg.Sentiment,
		Priority:    msg.Priority,
		ProcessedBy: msg.ProcessedBy,
	}
}
