package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manyabajaj09/audience-assist/internal/domain"
	"github.com/manyabajaj09/audience-assist/internal/repository"
)

type analyticsFixture struct {
	messages *fakeMessageRepo
	tickets  *fakeTicketRepo
	svc      *AnalyticsService
}

func newAnalyticsFixture() *analyticsFixture {
	f := &analyticsFixture{
		messages: newFakeMessageRepo(),
		tickets:  newFakeTicketRepo(),
	}
	f.svc = NewAnalyticsService(f.messages, f.tickets)
	return f
}

func (f *analyticsFixture) seedMessage(t *testing.T, tag domain.MessageTag, channel string, priority int, sentiment domain.MessageSentiment, receivedAt time.Time) *domain.Message {
	t.Helper()
	msg := &domain.Message{
		Channel:    channel,
		Sender:     "someone",
		Content:    "content",
		Tag:        tag,
		Sentiment:  sentiment,
		Priority:   priority,
		ReceivedAt: receivedAt,
	}
	require.NoError(t, f.messages.Create(context.Background(), msg))
	return msg
}

func TestAnalyticsEmptyStore(t *testing.T) {
	f := newAnalyticsFixture()
	ctx := context.Background()

	overview, err := f.svc.GetOverview(ctx)
	require.NoError(t, err)
	assert.Zero(t, overview.TotalMessages)
	assert.Zero(t, overview.TotalTickets)
	assert.Zero(t, overview.OpenTickets)
	assert.Zero(t, overview.InProgressTickets)
	assert.Zero(t, overview.ResolvedTickets)

	byTag, err := f.svc.MessagesByTag(ctx)
	require.NoError(t, err)
	assert.NotNil(t, byTag)
	assert.Empty(t, byTag)

	byPriority, err := f.svc.MessagesByPriority(ctx)
	require.NoError(t, err)
	assert.NotNil(t, byPriority)
	assert.Empty(t, byPriority)

	responseTimes, err := f.svc.GetResponseTimes(ctx)
	require.NoError(t, err)
	assert.Zero(t, responseTimes.AverageResponseTimeHours)
	assert.NotNil(t, responseTimes.Samples)
	assert.Empty(t, responseTimes.Samples)

	timeline, err := f.svc.GetTimeline(ctx, 0)
	require.NoError(t, err)
	assert.NotNil(t, timeline.RecentMessages)
	assert.Empty(t, timeline.RecentMessages)
	assert.NotNil(t, timeline.RecentTickets)
	assert.Empty(t, timeline.RecentTickets)
}

func TestOverviewCountsByStatus(t *testing.T) {
	f := newAnalyticsFixture()
	ctx := context.Background()
	now := time.Now()

	msg := f.seedMessage(t, domain.TagOther, "email", 3, domain.SentimentNeutral, now)
	for _, status := range []domain.TicketStatus{
		domain.TicketStatusOpen,
		domain.TicketStatusOpen,
		domain.TicketStatusInProgress,
		domain.TicketStatusResolved,
	} {
		ticket := &domain.Ticket{Title: "T", MessageID: msg.ID, Status: status}
		require.NoError(t, f.tickets.Create(ctx, ticket))
	}

	overview, err := f.svc.GetOverview(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), overview.TotalMessages)
	assert.Equal(t, int64(4), overview.TotalTickets)
	assert.Equal(t, int64(2), overview.OpenTickets)
	assert.Equal(t, int64(1), overview.InProgressTickets)
	assert.Equal(t, int64(1), overview.ResolvedTickets)
}

func TestDistributionsOrdering(t *testing.T) {
	f := newAnalyticsFixture()
	ctx := context.Background()
	now := time.Now()

	f.seedMessage(t, domain.TagQuestion, "chat", 2, domain.SentimentNeutral, now)
	f.seedMessage(t, domain.TagQuestion, "chat", 5, domain.SentimentNegative, now)
	f.seedMessage(t, domain.TagComplaint, "email", 5, domain.SentimentNegative, now)

	byTag, err := f.svc.MessagesByTag(ctx)
	require.NoError(t, err)
	require.Len(t, byTag, 2)
	assert.Equal(t, repository.GroupCount{Key: "question", Count: 2}, byTag[0])
	assert.Equal(t, repository.GroupCount{Key: "complaint", Count: 1}, byTag[1])

	byChannel, err := f.svc.MessagesByChannel(ctx)
	require.NoError(t, err)
	require.Len(t, byChannel, 2)
	assert.Equal(t, "chat", byChannel[0].Key)

	byPriority, err := f.svc.MessagesByPriority(ctx)
	require.NoError(t, err)
	require.Len(t, byPriority, 2)
	assert.Equal(t, repository.PriorityCount{Priority: 2, Count: 1}, byPriority[0])
	assert.Equal(t, repository.PriorityCount{Priority: 5, Count: 2}, byPriority[1])

	sentiments, err := f.svc.SentimentDistribution(ctx)
	require.NoError(t, err)
	require.Len(t, sentiments, 2)
	assert.Equal(t, "negative", sentiments[0].Key)
	assert.Equal(t, "neutral", sentiments[1].Key)
}

func TestResponseTimesRounding(t *testing.T) {
	f := newAnalyticsFixture()
	ctx := context.Background()
	received := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	msg := f.seedMessage(t, domain.TagComplaint, "email", 5, domain.SentimentNegative, received)
	ticket := &domain.Ticket{
		Title:     "T",
		MessageID: msg.ID,
		Status:    domain.TicketStatusResolved,
		CreatedAt: received,
		UpdatedAt: received.Add(time.Hour),
	}
	require.NoError(t, f.tickets.Create(ctx, ticket))

	result, err := f.svc.GetResponseTimes(ctx)
	require.NoError(t, err)
	require.Len(t, result.Samples, 1)
	assert.Equal(t, 1.0, result.Samples[0].ResponseTimeHours)
	assert.Equal(t, 1.0, result.AverageResponseTimeHours)
	assert.Equal(t, ticket.ID, result.Samples[0].TicketID)
}

func TestResponseTimesSkipsDanglingMessages(t *testing.T) {
	f := newAnalyticsFixture()
	ctx := context.Background()
	received := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	msg := f.seedMessage(t, domain.TagOther, "chat", 3, domain.SentimentNeutral, received)
	good := &domain.Ticket{
		Title:     "good",
		MessageID: msg.ID,
		Status:    domain.TicketStatusResolved,
		CreatedAt: received,
		UpdatedAt: received.Add(90 * time.Minute),
	}
	require.NoError(t, f.tickets.Create(ctx, good))
	dangling := &domain.Ticket{
		Title:     "dangling",
		MessageID: "deleted-message",
		Status:    domain.TicketStatusResolved,
		CreatedAt: received,
		UpdatedAt: received.Add(time.Hour),
	}
	require.NoError(t, f.tickets.Create(ctx, dangling))

	result, err := f.svc.GetResponseTimes(ctx)
	require.NoError(t, err)
	require.Len(t, result.Samples, 1)
	assert.Equal(t, good.ID, result.Samples[0].TicketID)
	assert.Equal(t, 1.5, result.AverageResponseTimeHours)
}

func TestResponseTimesCapsSamples(t *testing.T) {
	f := newAnalyticsFixture()
	ctx := context.Background()
	received := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 15; i++ {
		msg := f.seedMessage(t, domain.TagOther, "chat", 3, domain.SentimentNeutral, received)
		ticket := &domain.Ticket{
			Title:     "T",
			MessageID: msg.ID,
			Status:    domain.TicketStatusResolved,
			CreatedAt: received,
			UpdatedAt: received.Add(2 * time.Hour),
		}
		require.NoError(t, f.tickets.Create(ctx, ticket))
	}

	result, err := f.svc.GetResponseTimes(ctx)
	require.NoError(t, err)
	assert.Len(t, result.Samples, responseTimeSampleCap)
	// The average still covers every resolved ticket, not just the sample page.
	assert.Equal(t, 2.0, result.AverageResponseTimeHours)
}

func TestTimelineProjectsRecency(t *testing.T) {
	f := newAnalyticsFixture()
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	older := f.seedMessage(t, domain.TagQuestion, "chat", 2, domain.SentimentNeutral, base)
	newer := f.seedMessage(t, domain.TagComplaint, "email", 5, domain.SentimentNegative, base.Add(time.Hour))
	ticket := &domain.Ticket{Title: "T", MessageID: newer.ID, Status: domain.TicketStatusOpen}
	require.NoError(t, f.tickets.Create(ctx, ticket))

	timeline, err := f.svc.GetTimeline(ctx, 0)
	require.NoError(t, err)
	require.Len(t, timeline.RecentMessages, 2)
	assert.Equal(t, newer.ID, timeline.RecentMessages[0].ID)
	assert.Equal(t, older.ID, timeline.RecentMessages[1].ID)
	require.Len(t, timeline.RecentTickets, 1)
	assert.Equal(t, ticket.ID, timeline.RecentTickets[0].ID)
	assert.Equal(t, domain.TicketStatusOpen, timeline.RecentTickets[0].Status)
}

func TestTimelineHonorsLimit(t *testing.T) {
	f := newAnalyticsFixture()
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		f.seedMessage(t, domain.TagOther, "chat", 3, domain.SentimentNeutral, base.Add(time.Duration(i)*time.Minute))
	}

	timeline, err := f.svc.GetTimeline(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, timeline.RecentMessages, 3)
}

func TestRoundTenth(t *testing.T) {
	assert.Equal(t, 1.0, roundTenth(1.04))
	assert.Equal(t, 1.1, roundTenth(1.05))
	assert.Equal(t, 0.0, roundTenth(0.04))
	assert.Equal(t, 2.5, roundTenth(2.49999))
}
