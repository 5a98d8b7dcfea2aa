package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manyabajaj09/audience-assist/internal/classifier"
	"github.com/manyabajaj09/audience-assist/internal/domain"
	"github.com/manyabajaj09/audience-assist/internal/events"
	"github.com/manyabajaj09/audience-assist/internal/repository"
	apperrors "github.com/manyabajaj09/audience-assist/pkg/util"
)

const escalatedTitleLimit = 80

// IngestionService runs the message intake pipeline: validate, persist
// with defaults, classify best-effort, overlay the result, escalate.
type IngestionService struct {
	messages   repository.MessageRepository
	tickets    repository.TicketRepository
	activity   repository.ActivityLogRepository
	classifier classifier.Classifier
	policy     EscalationPolicy
	timeout    time.Duration
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// IngestionDependencies bundles collaborators for the pipeline.
type IngestionDependencies struct {
	MessageRepo  repository.MessageRepository
	TicketRepo   repository.TicketRepository
	ActivityRepo repository.ActivityLogRepository
	Classifier   classifier.Classifier
	Policy       EscalationPolicy
	Timeout      time.Duration
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// IngestInput describes one inbound message.
type IngestInput struct {
	Channel    string
	Sender     string
	Content    string
	ExternalID *string
}

// NewIngestionService constructs the service.
func NewIngestionService(deps IngestionDependencies) *IngestionService {
	timeout := deps.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IngestionService{
		messages:   deps.MessageRepo,
		tickets:    deps.TicketRepo,
		activity:   deps.ActivityRepo,
		classifier: deps.Classifier,
		policy:     deps.Policy,
		timeout:    timeout,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// Ingest records an inbound message, classifies it best-effort and opens a
// ticket when the final priority crosses the escalation threshold. The
// classifier call never fails the ingest; the message is durably stored
// with defaults before classification starts.
func (s *IngestionService) Ingest(ctx context.Context, input IngestInput) (*domain.Message, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.NewValidationError("content is required", nil)
	}

	msg := &domain.Message{
		Channel:   input.Channel,
		Sender:    input.Sender,
		Content:   input.Content,
		Tag:       domain.TagOther,
		Sentiment: domain.SentimentNeutral,
		Priority:  domain.DefaultPriority,
	}
	if msg.Channel == "" {
		msg.Channel = domain.DefaultChannel
	}
	if msg.Sender == "" {
		msg.Sender = domain.DefaultSender
	}
	if input.ExternalID != nil && *input.ExternalID != "" {
		msg.ExternalID = input.ExternalID
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	if result := s.classify(ctx, msg.Content); result != nil {
		if s.overlay(msg, result) {
			if err := s.messages.ApplyClassification(ctx, msg); err != nil {
				return nil, apperrors.NewStorageError(err)
			}
		}
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventMessageIngested,
		MessageID: msg.ID,
		Payload: events.MessageIngestedPayload{
			Channel:   msg.Channel,
			Sender:    msg.Sender,
			Tag:       msg.Tag,
			Sentiment: msg.Sentiment,
			Priority:  msg.Priority,
		},
	})

	if s.policy.ShouldEscalate(msg.Priority) {
		if err := s.escalate(ctx, msg); err != nil {
			return nil, err
		}
	}

	return msg, nil
}

// classify invokes the external capability with a hard deadline. Any
// failure is swallowed: the message keeps its defaults.
func (s *IngestionService) classify(ctx context.Context, content string) *classifier.Result {
	if s.classifier == nil {
		return nil
	}
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.classifier.Classify(cctx, content)
	if err != nil {
		s.logger.Warn("classification failed; keeping defaults", zap.Error(err))
		return nil
	}
	return result
}

// overlay applies only the fields present in the result, discarding values
// outside the accepted vocabulary. Reports whether anything changed.
func (s *IngestionService) overlay(msg *domain.Message, result *classifier.Result) bool {
	changed := false
	if result.Tag != nil {
		if tag := domain.MessageTag(*result.Tag); domain.ValidTag(tag) {
			msg.Tag = tag
			changed = true
		}
	}
	if result.Sentiment != nil {
		if sentiment := domain.MessageSentiment(*result.Sentiment); domain.ValidSentiment(sentiment) {
			msg.Sentiment = sentiment
			changed = true
		}
	}
	if result.Priority != nil {
		if p := *result.Priority; p >= domain.MinPriority && p <= domain.MaxPriority {
			msg.Priority = p
			changed = true
		}
	}
	return changed
}

// escalate opens a ticket for the message and records the audit entry.
func (s *IngestionService) escalate(ctx context.Context, msg *domain.Message) error {
	ticket := &domain.Ticket{
		Title:     truncate(msg.Content, escalatedTitleLimit),
		MessageID: msg.ID,
		Status:    domain.TicketStatusOpen,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return apperrors.NewStorageError(err)
	}

	entry := &domain.ActivityLogEntry{
		TicketID: ticket.ID,
		UserID:   nil,
		Action:   domain.ActionTicketCreated,
		Payload:  map[string]any{"messageId": msg.ID},
	}
	if err := s.activity.Append(ctx, entry); err != nil {
		return apperrors.NewStorageError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventTicketEscalated,
		TicketID:  ticket.ID,
		MessageID: msg.ID,
		Payload: events.TicketEscalatedPayload{
			MessageID: msg.ID,
			Priority:  msg.Priority,
			Title:     ticket.Title,
		},
	})
	return nil
}

func (s *IngestionService) publishEvent(ctx context.Context, event events.Event) {
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

// truncate clips s to at most max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
