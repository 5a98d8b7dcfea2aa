package domain

import "time"

// MessageTag enumerates the intent categories assigned during triage.
type MessageTag string

const (
	TagQuestion  MessageTag = "question"
	TagRequest   MessageTag = "request"
	TagComplaint MessageTag = "complaint"
	TagPraise    MessageTag = "praise"
	TagOther     MessageTag = "other"
)

// MessageSentiment enumerates sentiment labels.
type MessageSentiment string

const (
	SentimentPositive MessageSentiment = "positive"
	SentimentNeutral  MessageSentiment = "neutral"
	SentimentNegative MessageSentiment = "negative"
)

// Classification defaults applied at ingestion time.
const (
	DefaultChannel  = "manual"
	DefaultSender   = "unknown"
	DefaultPriority = 3
)

// Priority bounds for classifier output.
const (
	MinPriority = 1
	MaxPriority = 5
)

// Message is an inbound item from any channel awaiting triage.
// Content is always non-empty; the classification fields (tag, sentiment,
// priority) start at their defaults and are overlaid at most once by a
// classifier result.
type Message struct {
	ID          string
	Channel     string
	ExternalID  *string
	Sender      string
	Content     string
	ReceivedAt  time.Time
	Tag         MessageTag
	Sentiment   MessageSentiment
	Priority    int
	ProcessedBy *string
}

// ValidTag reports whether the value is a known message tag.
func ValidTag(t MessageTag) bool {
	switch t {
	case TagQuestion, TagRequest, TagComplaint, TagPraise, TagOther:
		return true
	}
	return false
}

// ValidSentiment reports whether the value is a known sentiment label.
func ValidSentiment(s MessageSentiment) bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}
