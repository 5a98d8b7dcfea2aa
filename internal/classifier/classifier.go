package classifier

import "context"

// FallbackReply is returned to callers when reply generation fails.
const FallbackReply = "Sorry, I could not generate a reply at this time."

// Result is a partial classification: only non-nil fields were present in
// the provider's answer, everything else keeps its prior value.
type Result struct {
	Tag       *string `json:"tag,omitempty"`
	Sentiment *string `json:"sentiment,omitempty"`
	Priority  *int    `json:"priority,omitempty"`
}

// Classifier is the external classification capability. Both operations
// are best-effort: callers bound them with a context deadline and must
// tolerate errors.
type Classifier interface {
	Classify(ctx context.Context, content string) (*Result, error)
	SuggestReply(ctx context.Context, content string) (string, error)
}
