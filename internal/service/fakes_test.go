package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/manyabajaj09/audience-assist/internal/classifier"
	"github.com/manyabajaj09/audience-assist/internal/domain"
	"github.com/manyabajaj09/audience-assist/internal/repository"
)

// In-memory repository fakes. They mirror the ordering and error behavior
// of the pgx implementations (pgx.ErrNoRows for missing rows) and allow
// failure injection per operation.

type fakeMessageRepo struct {
	byID      map[string]domain.Message
	order     []string
	createErr error
	updateErr error
	getErr    error
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{byID: map[string]domain.Message{}}
}

func (r *fakeMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	if r.createErr != nil {
		return r.createErr
	}
	msg.ID = uuid.NewString()
	if msg.ReceivedAt.IsZero() {
		msg.ReceivedAt = time.Now()
	}
	r.byID[msg.ID] = *msg
	r.order = append(r.order, msg.ID)
	return nil
}

func (r *fakeMessageRepo) ApplyClassification(ctx context.Context, msg *domain.Message) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	stored, ok := r.byID[msg.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Tag = msg.Tag
	stored.Sentiment = msg.Sentiment
	stored.Priority = msg.Priority
	r.byID[msg.ID] = stored
	return nil
}

func (r *fakeMessageRepo) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	msg, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &msg, nil
}

func (r *fakeMessageRepo) List(ctx context.Context, filter repository.MessageFilter) ([]domain.Message, error) {
	var result []domain.Message
	for _, id := range r.order {
		msg := r.byID[id]
		if filter.Tag != nil && msg.Tag != *filter.Tag {
			continue
		}
		if filter.Priority != nil && msg.Priority != *filter.Priority {
			continue
		}
		result = append(result, msg)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ReceivedAt.After(result[j].ReceivedAt)
	})
	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *fakeMessageRepo) CountByTag(ctx context.Context) ([]repository.GroupCount, error) {
	return r.group(func(m domain.Message) string { return string(m.Tag) }, true), nil
}

func (r *fakeMessageRepo) CountByChannel(ctx context.Context) ([]repository.GroupCount, error) {
	return r.group(func(m domain.Message) string { return m.Channel }, true), nil
}

func (r *fakeMessageRepo) CountByPriority(ctx context.Context) ([]repository.PriorityCount, error) {
	counts := map[int]int64{}
	for _, msg := range r.byID {
		counts[msg.Priority]++
	}
	var result []repository.PriorityCount
	for priority, count := range counts {
		result = append(result, repository.PriorityCount{Priority: priority, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Priority < result[j].Priority })
	return result, nil
}

func (r *fakeMessageRepo) CountBySentiment(ctx context.Context) ([]repository.GroupCount, error) {
	return r.group(func(m domain.Message) string { return string(m.Sentiment) }, false), nil
}

// group replicates the SQL ordering: count desc then key asc when
// byCount, plain key asc otherwise.
func (r *fakeMessageRepo) group(key func(domain.Message) string, byCount bool) []repository.GroupCount {
	counts := map[string]int64{}
	for _, msg := range r.byID {
		counts[key(msg)]++
	}
	var result []repository.GroupCount
	for k, count := range counts {
		result = append(result, repository.GroupCount{Key: k, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if byCount && result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Key < result[j].Key
	})
	return result
}

type fakeTicketRepo struct {
	byID      map[string]domain.Ticket
	order     []string
	createErr error
	updateErr error
	getErr    error
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{byID: map[string]domain.Ticket{}}
}

func (r *fakeTicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error {
	if r.createErr != nil {
		return r.createErr
	}
	ticket.ID = uuid.NewString()
	now := time.Now()
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = now
	}
	if ticket.UpdatedAt.IsZero() {
		ticket.UpdatedAt = now
	}
	r.byID[ticket.ID] = *ticket
	r.order = append(r.order, ticket.ID)
	return nil
}

func (r *fakeTicketRepo) Update(ctx context.Context, ticket *domain.Ticket) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[ticket.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.byID[ticket.ID] = *ticket
	return nil
}

func (r *fakeTicketRepo) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	ticket, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &ticket, nil
}

func (r *fakeTicketRepo) List(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for _, id := range r.order {
		ticket := r.byID[id]
		if filter.Status != nil && ticket.Status != *filter.Status {
			continue
		}
		result = append(result, ticket)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeTicketRepo) ListResolved(ctx context.Context, limit int) ([]domain.Ticket, error) {
	status := domain.TicketStatusResolved
	result, err := r.List(ctx, repository.TicketFilter{Status: &status, Limit: limit})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

func (r *fakeTicketRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *fakeTicketRepo) CountByStatus(ctx context.Context) ([]repository.GroupCount, error) {
	counts := map[string]int64{}
	for _, ticket := range r.byID {
		counts[string(ticket.Status)]++
	}
	var result []repository.GroupCount
	for key, count := range counts {
		result = append(result, repository.GroupCount{Key: key, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}

type fakeActivityRepo struct {
	entries   []domain.ActivityLogEntry
	appendErr error
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{}
}

func (r *fakeActivityRepo) Append(ctx context.Context, entry *domain.ActivityLogEntry) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	entry.ID = uuid.NewString()
	if entry.TS.IsZero() {
		entry.TS = time.Now()
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeActivityRepo) ListByTicket(ctx context.Context, ticketID string, limit int) ([]domain.ActivityLogEntry, error) {
	var result []domain.ActivityLogEntry
	for _, entry := range r.entries {
		if entry.TicketID == ticketID {
			result = append(result, entry)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].TS.After(result[j].TS) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeActivityRepo) forTicket(ticketID string) []domain.ActivityLogEntry {
	var result []domain.ActivityLogEntry
	for _, entry := range r.entries {
		if entry.TicketID == ticketID {
			result = append(result, entry)
		}
	}
	return result
}

type fakeUserRepo struct {
	byID map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]domain.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	r.byID[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	var result []domain.User
	for _, user := range r.byID {
		result = append(result, user)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// stubClassifier returns canned results.
type stubClassifier struct {
	result   *classifier.Result
	err      error
	reply    string
	replyErr error
	calls    int
}

func (s *stubClassifier) Classify(ctx context.Context, content string) (*classifier.Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubClassifier) SuggestReply(ctx context.Context, content string) (string, error) {
	if s.replyErr != nil {
		return "", s.replyErr
	}
	return s.reply, nil
}

// blockingClassifier waits for cancellation, simulating a hung provider.
type blockingClassifier struct{}

func (blockingClassifier) Classify(ctx context.Context, content string) (*classifier.Result, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingClassifier) SuggestReply(ctx context.Context, content string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func strptr(s string) *string { return &s }

func intptr(i int) *int { return &i }
