package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/manyabajaj09/audience-assist/internal/classifier"
	"github.com/manyabajaj09/audience-assist/internal/domain"
	"github.com/manyabajaj09/audience-assist/internal/repository"
	apperrors "github.com/manyabajaj09/audience-assist/pkg/util"
)

const messageListLimit = 200

// MessageService serves the inbox read APIs and reply suggestions.
type MessageService struct {
	messages   repository.MessageRepository
	classifier classifier.Classifier
	timeout    time.Duration
	logger     *zap.Logger
}

// NewMessageService constructs the service.
func NewMessageService(messages repository.MessageRepository, clf classifier.Classifier, timeout time.Duration, logger *zap.Logger) *MessageService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{messages: messages, classifier: clf, timeout: timeout, logger: logger}
}

// MessageListFilter captures inbox query parameters.
type MessageListFilter struct {
	Tag      *domain.MessageTag
	Priority *int
}

// ListMessages returns up to 200 newest messages matching the filter.
func (s *MessageService) ListMessages(ctx context.Context, filter MessageListFilter) ([]domain.Message, error) {
	if filter.Tag != nil && !domain.ValidTag(*filter.Tag) {
		return nil, apperrors.NewValidationError("invalid tag value", map[string]any{"tag": string(*filter.Tag)})
	}
	messages, err := s.messages.List(ctx, repository.MessageFilter{
		Tag:      filter.Tag,
		Priority: filter.Priority,
		Limit:    messageListLimit,
	})
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return messages, nil
}

// GetMessage fetches a single message.
func (s *MessageService) GetMessage(ctx context.Context, id string) (*domain.Message, error) {
	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("message", map[string]any{"message_id": id})
		}
		return nil, apperrors.NewStorageError(err)
	}
	return msg, nil
}

// SuggestReply asks the classifier for a support reply. Any classifier
// failure yields the fixed fallback string, never an error.
func (s *MessageService) SuggestReply(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", apperrors.NewValidationError("content is required", nil)
	}
	if s.classifier == nil {
		return classifier.FallbackReply, nil
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.classifier.SuggestReply(cctx, content)
	if err != nil || strings.TrimSpace(reply) == "" {
		if err != nil {
			s.logger.Warn("reply suggestion failed", zap.Error(err))
		}
		return classifier.FallbackReply, nil
	}
	return reply, nil
}
