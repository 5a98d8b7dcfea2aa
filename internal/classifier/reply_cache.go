package classifier

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ReplyCache decorates a Classifier with a Redis cache for reply
// suggestions. Cache failures are logged and treated as misses; the
// classification path is never cached because results feed durable state.
type ReplyCache struct {
	inner  Classifier
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewReplyCache wraps inner with a reply cache. A nil client disables
// caching entirely.
func NewReplyCache(inner Classifier, client *redis.Client, ttl time.Duration, logger *zap.Logger) *ReplyCache {
	return &ReplyCache{inner: inner, client: client, ttl: ttl, logger: logger}
}

// Classify delegates to the wrapped classifier.
func (c *ReplyCache) Classify(ctx context.Context, content string) (*Result, error) {
	return c.inner.Classify(ctx, content)
}

// SuggestReply returns a cached reply when available, otherwise asks the
// wrapped classifier and stores the answer.
func (c *ReplyCache) SuggestReply(ctx context.Context, content string) (string, error) {
	if c.client == nil {
		return c.inner.SuggestReply(ctx, content)
	}

	key := replyKey(content)
	if cached, err := c.client.Get(ctx, key).Result(); err == nil && cached != "" {
		return cached, nil
	} else if err != nil && err != redis.Nil {
		c.logger.Warn("reply cache read failed", zap.Error(err))
	}

	reply, err := c.inner.SuggestReply(ctx, content)
	if err != nil {
		return "", err
	}
	if err := c.client.Set(ctx, key, reply, c.ttl).Err(); err != nil {
		c.logger.Warn("reply cache write failed", zap.Error(err))
	}
	return reply, nil
}

func replyKey(content string) string {
	sum := sha256.Sum256([]byte(content))
	return "suggest-reply:" + hex.EncodeToString(sum[:])
}
