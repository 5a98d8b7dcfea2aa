package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTag(t *testing.T) {
	for _, tag := range []MessageTag{TagQuestion, TagRequest, TagComplaint, TagPraise, TagOther} {
		assert.True(t, ValidTag(tag), string(tag))
	}
	assert.False(t, ValidTag("spam"))
	assert.False(t, ValidTag(""))
	assert.False(t, ValidTag("Question"), "values are case sensitive")
}

func TestValidSentiment(t *testing.T) {
	for _, s := range []MessageSentiment{SentimentPositive, SentimentNeutral, SentimentNegative} {
		assert.True(t, ValidSentiment(s), string(s))
	}
	assert.False(t, ValidSentiment("angry"))
}

func TestValidTicketStatus(t *testing.T) {
	for _, s := range []TicketStatus{TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved} {
		assert.True(t, ValidTicketStatus(s), string(s))
	}
	assert.False(t, ValidTicketStatus("closed"))
	assert.False(t, ValidTicketStatus("Open"))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAgent))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("owner"))
}
